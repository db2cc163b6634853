package cli

import (
	"github.com/spf13/cobra"
	"github.com/vfg2006/visibility-audit-api/internal/config"
	"github.com/vfg2006/visibility-audit-api/internal/usecases/projecting"
)

type CommissionCmd struct {
	referred   int
	avgRevenue float64
	rate       float64
	window     int
}

func NewCommissionCmd(cfg *config.Config) *cobra.Command {
	assumptions := cfg.CommissionAssumptions()
	cc := &CommissionCmd{}

	cmd := &cobra.Command{
		Use:   "commission",
		Short: "Projeta os ganhos de um parceiro com usuários indicados",
		RunE:  cc.run,
	}

	flags := cmd.Flags()
	flags.IntVar(&cc.referred, "referred", 0, "Quantidade de usuários indicados")
	flags.Float64Var(&cc.avgRevenue, "avg-revenue", assumptions.AvgRevenuePerUser, "Receita média por usuário")
	flags.Float64Var(&cc.rate, "rate", assumptions.CommissionRatePercent, "Taxa de comissão em %")
	flags.IntVar(&cc.window, "window", assumptions.ReferralWindowMonths, "Janela de indicação em meses")

	_ = cmd.MarkFlagRequired("referred")

	return cmd
}

func (cc *CommissionCmd) run(cmd *cobra.Command, _ []string) error {
	projection := projecting.ProjectCommissionOverWindow(cc.referred, cc.avgRevenue, cc.rate, cc.window)
	return printJSON(cmd.OutOrStdout(), projection)
}
