package auditapi

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/visibility-audit-api/infrastructure/integrator/auditapi/auditclient"
	"github.com/vfg2006/visibility-audit-api/infrastructure/integrator/auditapi/auditdomain"
	"github.com/vfg2006/visibility-audit-api/internal/domain"
)

var (
	ErrAuditNotFound  = errors.New("auditoria não encontrada")
	ErrInvalidAuditID = errors.New("id de auditoria inválido")
)

//go:generate mockgen -source=service.go -destination=mocks/integrator_mock.go -package=mocks
type Integrator interface {
	GetAudit(ctx context.Context, auditID string) (*domain.AuditSnapshot, error)
	ListFixServices(ctx context.Context) ([]*domain.FixService, error)
	ListPartners(ctx context.Context) ([]*domain.Partner, error)
}

type AuditIntegrator struct {
	Client auditclient.Client
}

func New(client auditclient.Client) Integrator {
	return &AuditIntegrator{
		Client: client,
	}
}

func (s *AuditIntegrator) GetAudit(ctx context.Context, auditID string) (*domain.AuditSnapshot, error) {
	auditID = strings.TrimSpace(auditID)
	if !auditclient.IsValidPathSegment(auditID) {
		return nil, ErrInvalidAuditID
	}

	resp, err := s.Client.GetAudit(ctx, auditID)
	if err != nil {
		if errors.Is(err, auditclient.ErrNotFound) {
			return nil, ErrAuditNotFound
		}
		logrus.WithFields(logrus.Fields{
			"audit_id": auditID,
			"error":    err.Error(),
		}).Error("audits: failed to get audit from API")
		return nil, err
	}

	return FactoryAuditSnapshot(resp), nil
}

func (s *AuditIntegrator) ListFixServices(ctx context.Context) ([]*domain.FixService, error) {
	resp, err := s.Client.ListFixServices(ctx)
	if err != nil {
		logrus.WithError(err).Error("catalog: failed to list fix services from API")
		return nil, err
	}

	services := make([]*domain.FixService, 0, len(resp))
	for _, item := range resp {
		service := &domain.FixService{
			Type:        domain.FixServiceType(item.Type),
			Name:        item.Name,
			Price:       item.Price,
			Description: item.Description,
		}
		if !service.IsValid() {
			logrus.WithField("type", item.Type).Warn("catalog: ignoring invalid fix service")
			continue
		}
		services = append(services, service)
	}

	return services, nil
}

func (s *AuditIntegrator) ListPartners(ctx context.Context) ([]*domain.Partner, error) {
	resp, err := s.Client.ListPartners(ctx)
	if err != nil {
		logrus.WithError(err).Error("partners: failed to list partners from API")
		return nil, err
	}

	partners := make([]*domain.Partner, 0, len(resp))
	for _, item := range resp {
		rate := item.CommissionRate
		if rate != nil {
			clamped := domain.ClampCommissionRate(*rate)
			if clamped != *rate {
				logrus.WithFields(logrus.Fields{
					"partner_id":      item.ID,
					"commission_rate": *rate,
				}).Warn("partners: commission rate out of range, clamping")
			}
			rate = &clamped
		}

		partners = append(partners, &domain.Partner{
			ID:              item.ID,
			Name:            item.Name,
			Email:           item.Email,
			CommissionRate:  rate,
			ReferredUsers:   max(item.ReferredUsers, 0),
			TotalCommission: item.TotalCommission,
		})
	}

	return partners, nil
}

// FactoryAuditSnapshot converte o payload do backend para o modelo de domínio.
// Campos opcionais continuam nulos; a normalização decide o que fazer com eles.
func FactoryAuditSnapshot(audit *auditdomain.Audit) *domain.AuditSnapshot {
	if audit == nil {
		return nil
	}

	snapshot := &domain.AuditSnapshot{
		ID:                 audit.ID,
		BusinessName:       audit.BusinessName,
		Status:             domain.AuditStatus(strings.ToLower(audit.Status)),
		AIVisibilityScore:  audit.AIVisibilityScore,
		MapsPresenceScore:  audit.MapsPresenceScore,
		ReviewScore:        audit.ReviewScore,
		PhotoScore:         audit.PhotoScore,
		SEOScore:           audit.SEOScore,
		CompetitorGapScore: audit.CompetitorGapScore,
		OverallScore:       audit.OverallScore,
		ChatGPTScore:       audit.ChatGPTScore,
		GeminiScore:        audit.GeminiScore,
		PerplexityScore:    audit.PerplexityScore,
		MoneyLeaks:         make([]domain.MoneyLeak, 0, len(audit.MoneyLeaks)),
		LLMIssueSets:       make([]domain.LLMIssueSet, 0, len(audit.LLMAnalysis)),
		CreatedAt:          audit.CreatedAt,
		CompletedAt:        audit.CompletedAt,
	}

	if audit.EstimatedMonthlyLoss != nil {
		snapshot.EstimatedMonthlyLoss = *audit.EstimatedMonthlyLoss
	}

	for _, leak := range audit.MoneyLeaks {
		mapped := domain.MoneyLeak{
			Area:          leak.Area,
			Description:   leak.Description,
			EstimatedLoss: leak.EstimatedLoss,
			Priority:      domain.Priority(strings.ToLower(leak.Priority)),
		}
		if leak.FixService != nil && *leak.FixService != "" {
			ref := domain.FixServiceType(*leak.FixService)
			mapped.FixServiceRef = &ref
		}
		snapshot.MoneyLeaks = append(snapshot.MoneyLeaks, mapped)
	}

	for _, analysis := range audit.LLMAnalysis {
		set := domain.LLMIssueSet{
			Platform: domain.Platform(strings.ToLower(analysis.Platform)),
			Score:    analysis.Score,
			Summary:  analysis.Summary,
			Issues:   make([]domain.LLMIssue, 0, len(analysis.Issues)),
		}
		for _, issue := range analysis.Issues {
			set.Issues = append(set.Issues, domain.LLMIssue{
				Issue:       issue.Issue,
				Fix:         issue.Fix,
				Severity:    domain.Severity(strings.ToLower(issue.Severity)),
				FixCategory: issue.FixCategory,
			})
		}
		snapshot.LLMIssueSets = append(snapshot.LLMIssueSets, set)
	}

	return snapshot
}
