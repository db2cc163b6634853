package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/vfg2006/visibility-audit-api/internal/config"
	"github.com/vfg2006/visibility-audit-api/pkg/utils"
)

// NewRootCmd monta o CLI de projeções offline. As premissas padrão vêm da mesma
// configuração usada pela API.
func NewRootCmd(cfg *config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:           "projector",
		Short:         "Projeções de custo, comissão e normalização de scores",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		NewCostsCmd(cfg),
		NewCommissionCmd(cfg),
		NewScoreCmd(),
	)

	return root
}

func printJSON(out io.Writer, v any) error {
	pretty, err := utils.PrettyJSON(v)
	if err != nil {
		return fmt.Errorf("erro ao formatar saída: %w", err)
	}

	_, err = fmt.Fprintln(out, pretty)
	return err
}
