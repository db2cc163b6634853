package projecting

import (
	"context"
	"strings"

	"github.com/vfg2006/visibility-audit-api/infrastructure/repository"
	"github.com/vfg2006/visibility-audit-api/internal/config"
	"github.com/vfg2006/visibility-audit-api/internal/domain"
	"github.com/vfg2006/visibility-audit-api/pkg/apiErrors"
	"github.com/vfg2006/visibility-audit-api/pkg/log"
)

//go:generate mockgen -source=service.go -destination=mocks/projector_mock.go -package=mocks
type Projector interface {
	ProjectCosts(rawCompanyCount string) domain.CompanyVolumeProjection
	ProjectCommission(referredUserCount int, avgRevenuePerUser, commissionRatePercent *float64) domain.PartnerCommissionProjection
	ProjectPartnerCommission(ctx context.Context, partnerID string, referredUserCount int) (*domain.PartnerCommissionProjection, error)
	ListPartners(ctx context.Context) ([]*domain.Partner, error)
}

type Service struct {
	partnerRepo         repository.PartnerRepository
	costs               domain.CostAssumptions
	commission          domain.CommissionAssumptions
	defaultCompanyCount int
}

func NewService(partnerRepo repository.PartnerRepository, cfg *config.Config) Projector {
	return &Service{
		partnerRepo:         partnerRepo,
		costs:               cfg.CostAssumptions(),
		commission:          cfg.CommissionAssumptions(),
		defaultCompanyCount: cfg.Projection.DefaultCompanyCount,
	}
}

// ProjectCosts aceita a quantidade como veio da query string
func (s *Service) ProjectCosts(rawCompanyCount string) domain.CompanyVolumeProjection {
	defaultCount := s.defaultCompanyCount
	if defaultCount < 1 {
		defaultCount = DefaultCompanyCount
	}

	count := ParseCompanyCount(rawCompanyCount, defaultCount)
	return ProjectCostsWithDefault(count, defaultCount, s.costs)
}

// ProjectCommission usa as premissas configuradas para o que não foi informado
func (s *Service) ProjectCommission(referredUserCount int, avgRevenuePerUser, commissionRatePercent *float64) domain.PartnerCommissionProjection {
	avg := s.commission.AvgRevenuePerUser
	if avgRevenuePerUser != nil {
		avg = *avgRevenuePerUser
	}

	rate := s.commission.CommissionRatePercent
	if commissionRatePercent != nil {
		rate = *commissionRatePercent
	}

	return ProjectCommissionOverWindow(referredUserCount, avg, rate, s.commission.ReferralWindowMonths)
}

// ProjectPartnerCommission projeta com a taxa do parceiro. Sem quantidade informada,
// usa o número de indicados registrado para ele.
func (s *Service) ProjectPartnerCommission(ctx context.Context, partnerID string, referredUserCount int) (*domain.PartnerCommissionProjection, error) {
	partnerID = strings.TrimSpace(partnerID)
	if partnerID == "" {
		return nil, NewProjectionError(ErrMissingPartnerID, apiErrors.ErrMissingRequiredData, "")
	}

	partner, err := s.partnerRepo.GetPartnerByID(ctx, partnerID)
	if err != nil {
		log.ForContext(ctx).WithError(err).Errorf("Erro ao buscar parceiro %s", partnerID)
		return nil, NewProjectionError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	if partner == nil {
		return nil, NewProjectionError(ErrPartnerNotFound, apiErrors.ErrPartnerNotFound, partnerID)
	}

	if referredUserCount <= 0 {
		referredUserCount = partner.ReferredUsers
	}

	rate := ResolveCommissionRate(partner, s.commission.CommissionRatePercent)
	projection := ProjectCommissionOverWindow(referredUserCount, s.commission.AvgRevenuePerUser, rate, s.commission.ReferralWindowMonths)

	return &projection, nil
}

func (s *Service) ListPartners(ctx context.Context) ([]*domain.Partner, error) {
	partners, err := s.partnerRepo.ListPartners(ctx)
	if err != nil {
		return nil, NewProjectionError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	return partners, nil
}
