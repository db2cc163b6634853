package cli

import (
	"github.com/spf13/cobra"
	"github.com/vfg2006/visibility-audit-api/internal/config"
	"github.com/vfg2006/visibility-audit-api/internal/domain"
	"github.com/vfg2006/visibility-audit-api/internal/usecases/projecting"
)

type CostsCmd struct {
	companies    string
	defaultCount int
	assumptions  domain.CostAssumptions
}

func NewCostsCmd(cfg *config.Config) *cobra.Command {
	cc := &CostsCmd{
		assumptions:  cfg.CostAssumptions(),
		defaultCount: cfg.Projection.DefaultCompanyCount,
	}
	if cc.defaultCount < 1 {
		cc.defaultCount = projecting.DefaultCompanyCount
	}

	cmd := &cobra.Command{
		Use:   "costs",
		Short: "Projeta custo operacional e lucro para um volume de empresas",
		RunE:  cc.run,
	}

	flags := cmd.Flags()
	flags.StringVar(&cc.companies, "companies", "", "Quantidade de empresas (inválida ou ausente usa o padrão)")
	flags.Float64Var(&cc.assumptions.CostPerAudit, "cost-per-audit", cc.assumptions.CostPerAudit, "Custo por auditoria (USD)")
	flags.Float64Var(&cc.assumptions.CostPerScan, "cost-per-scan", cc.assumptions.CostPerScan, "Custo por scan (USD)")
	flags.Float64Var(&cc.assumptions.CostPerLeadBatch, "cost-per-lead-batch", cc.assumptions.CostPerLeadBatch, "Custo por lote de leads (USD)")
	flags.Float64Var(&cc.assumptions.CostPerFix, "cost-per-fix", cc.assumptions.CostPerFix, "Custo por correção com IA (USD)")
	flags.Float64Var(&cc.assumptions.AvgRevenuePerCompany, "avg-revenue", cc.assumptions.AvgRevenuePerCompany, "Receita média por empresa")
	flags.Float64Var(&cc.assumptions.ScanAdoptionRatio, "scan-ratio", cc.assumptions.ScanAdoptionRatio, "Fração das empresas que fazem scan")
	flags.Float64Var(&cc.assumptions.LeadBatchAdoptionRatio, "lead-ratio", cc.assumptions.LeadBatchAdoptionRatio, "Fração das empresas que compram leads")
	flags.Float64Var(&cc.assumptions.FixesPerCompany, "fixes-per-company", cc.assumptions.FixesPerCompany, "Correções por empresa")

	return cmd
}

func (cc *CostsCmd) run(cmd *cobra.Command, _ []string) error {
	count := projecting.ParseCompanyCount(cc.companies, cc.defaultCount)
	projection := projecting.ProjectCostsWithDefault(count, cc.defaultCount, cc.assumptions)

	return printJSON(cmd.OutOrStdout(), projection)
}
