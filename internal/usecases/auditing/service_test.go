package auditing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/visibility-audit-api/infrastructure/integrator/auditapi"
	auditmocks "github.com/vfg2006/visibility-audit-api/infrastructure/integrator/auditapi/mocks"
	"github.com/vfg2006/visibility-audit-api/infrastructure/repository/mocks"
	"github.com/vfg2006/visibility-audit-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func floatPtr(f float64) *float64 {
	return &f
}

func fixRef(t domain.FixServiceType) *domain.FixServiceType {
	return &t
}

func completeSnapshot() *domain.AuditSnapshot {
	return &domain.AuditSnapshot{
		ID:                   "aud_1",
		BusinessName:         "Padaria Central",
		Status:               domain.AuditStatusComplete,
		OverallScore:         floatPtr(38.4),
		ReviewScore:          floatPtr(72),
		EstimatedMonthlyLoss: 1500,
		MoneyLeaks: []domain.MoneyLeak{
			{Area: "reviews", EstimatedLoss: floatPtr(1200), Priority: domain.PriorityHigh, FixServiceRef: fixRef("review_boost")},
			{Area: "photos", EstimatedLoss: floatPtr(300), Priority: domain.PriorityMedium, FixServiceRef: fixRef("unknown_fix")},
			{Area: "seo", EstimatedLoss: nil, Priority: domain.PriorityLow},
		},
	}
}

func TestService_GetReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIntegrator := auditmocks.NewMockIntegrator(ctrl)
	mockFixServiceRepo := mocks.NewMockFixServiceRepository(ctrl)

	service := NewService(mockIntegrator, mockFixServiceRepo, nil)
	ctx := context.Background()

	tests := []struct {
		name     string
		setup    func()
		validate func(t *testing.T, report *domain.AuditReport, err error)
	}{
		{
			name: "Auditoria completa com catálogo resolvido",
			setup: func() {
				mockIntegrator.EXPECT().GetAudit(ctx, "aud_1").Return(completeSnapshot(), nil)
				mockFixServiceRepo.EXPECT().ListFixServices(ctx).Return([]*domain.FixService{
					{Type: "review_boost", Name: "Review Boost", Price: 149},
				}, nil)
			},
			validate: func(t *testing.T, report *domain.AuditReport, err error) {
				require.NoError(t, err)
				require.NotNil(t, report.ScoreCard)
				require.NotNil(t, report.Losses)

				assert.Equal(t, domain.AuditStatusComplete, report.Status)
				assert.Equal(t, 38, report.ScoreCard.Overall.Value)
				assert.Equal(t, domain.OpportunityHigh, report.Opportunity)
				assert.Equal(t, 1500.0, report.Losses.Total)
				assert.Equal(t, 3, report.Losses.Count)
				assert.False(t, report.Losses.Empty)
				assert.Equal(t, 1, report.LeaksByPriority[domain.PriorityHigh])

				require.Len(t, report.MoneyLeaks, 3)
				assert.Equal(t, "reviews", report.MoneyLeaks[0].Area)
				require.NotNil(t, report.MoneyLeaks[0].FixService)
				assert.Equal(t, 149.0, report.MoneyLeaks[0].FixService.Price)
				assert.Nil(t, report.MoneyLeaks[1].FixService)
				assert.Nil(t, report.MoneyLeaks[2].FixService)
			},
		},
		{
			name: "Auditoria em andamento retorna apenas o status",
			setup: func() {
				mockIntegrator.EXPECT().GetAudit(ctx, "aud_1").Return(&domain.AuditSnapshot{ID: "aud_1", Status: domain.AuditStatusScanning}, nil)
			},
			validate: func(t *testing.T, report *domain.AuditReport, err error) {
				require.NoError(t, err)
				assert.Equal(t, domain.AuditStatusScanning, report.Status)
				assert.Nil(t, report.ScoreCard)
				assert.Nil(t, report.Losses)
			},
		},
		{
			name: "Auditoria sem vazamentos sinaliza lista vazia",
			setup: func() {
				snapshot := completeSnapshot()
				snapshot.MoneyLeaks = nil
				mockIntegrator.EXPECT().GetAudit(ctx, "aud_1").Return(snapshot, nil)
				mockFixServiceRepo.EXPECT().ListFixServices(ctx).Return([]*domain.FixService{}, nil)
			},
			validate: func(t *testing.T, report *domain.AuditReport, err error) {
				require.NoError(t, err)
				assert.True(t, report.Losses.Empty)
				assert.Equal(t, 0.0, report.Losses.Total)
				assert.Empty(t, report.MoneyLeaks)
			},
		},
		{
			name: "Catálogo indisponível não impede o relatório",
			setup: func() {
				mockIntegrator.EXPECT().GetAudit(ctx, "aud_1").Return(completeSnapshot(), nil)
				mockFixServiceRepo.EXPECT().ListFixServices(ctx).Return(nil, errors.New("db down"))
			},
			validate: func(t *testing.T, report *domain.AuditReport, err error) {
				require.NoError(t, err)
				assert.Nil(t, report.MoneyLeaks[0].FixService)
			},
		},
		{
			name: "Auditoria inexistente",
			setup: func() {
				mockIntegrator.EXPECT().GetAudit(ctx, "aud_1").Return(nil, auditapi.ErrAuditNotFound)
			},
			validate: func(t *testing.T, report *domain.AuditReport, err error) {
				assert.Nil(t, report)
				assert.ErrorIs(t, err, ErrAuditNotFound)
			},
		},
		{
			name: "Backend indisponível",
			setup: func() {
				mockIntegrator.EXPECT().GetAudit(ctx, "aud_1").Return(nil, errors.New("timeout"))
			},
			validate: func(t *testing.T, report *domain.AuditReport, err error) {
				assert.Nil(t, report)
				assert.ErrorIs(t, err, ErrExternalService)
			},
		},
		{
			name: "Status desconhecido",
			setup: func() {
				mockIntegrator.EXPECT().GetAudit(ctx, "aud_1").Return(&domain.AuditSnapshot{ID: "aud_1", Status: "archived"}, nil)
			},
			validate: func(t *testing.T, report *domain.AuditReport, err error) {
				assert.Nil(t, report)
				assert.ErrorIs(t, err, ErrUnknownStatus)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			report, err := service.GetReport(ctx, "aud_1")
			tt.validate(t, report, err)
		})
	}
}

func TestService_WatchAudit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIntegrator := auditmocks.NewMockIntegrator(ctrl)
	mockIntegrator.EXPECT().
		GetAudit(gomock.Any(), "aud_9").
		Return(&domain.AuditSnapshot{ID: "aud_9", Status: domain.AuditStatusComplete}, nil)

	watcher := NewWatcher(context.Background(), NewPoller(NewIntegratorFetcher(mockIntegrator), testInterval, time.Second))
	defer watcher.Stop()

	service := NewService(mockIntegrator, mocks.NewMockFixServiceRepository(ctrl), watcher)
	ctx := context.Background()

	watch, err := service.WatchAudit(ctx, "aud_9")
	require.NoError(t, err)
	assert.Equal(t, "aud_9", watch.AuditID)

	require.Eventually(t, func() bool {
		current, err := service.GetWatch(ctx, "aud_9")
		return err == nil && current.Done
	}, time.Second, 5*time.Millisecond)

	_, err = service.GetWatch(ctx, "aud_unknown")
	assert.ErrorIs(t, err, ErrWatchNotFound)

	_, err = service.WatchAudit(ctx, "")
	assert.ErrorIs(t, err, ErrInvalidAuditID)
}
