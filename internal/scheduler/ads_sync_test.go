package scheduler

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	metamocks "github.com/vfg2006/social-insights-api/infrastructure/integrator/meta/mocks"
	"github.com/vfg2006/social-insights-api/infrastructure/repository"
	"github.com/vfg2006/social-insights-api/infrastructure/repository/mocks"
	"github.com/vfg2006/social-insights-api/internal/domain"
	"github.com/vfg2006/social-insights-api/internal/usecases/attributing"
	"go.uber.org/mock/gomock"
)

func newTestService(adsRepo repository.AdsCacheRepository, integrator *metamocks.MockIntegrator) *AdsSyncService {
	return &AdsSyncService{
		config: AdsSyncConfig{
			MaxConcurrentJobs: 2,
			MonthLookBack:     1,
		},
		adsRepo:    adsRepo,
		integrator: integrator,
		attribution: &attributing.Config{
			AccountDefaults: map[string]string{
				"594963889574701": "pelikan",
			},
		},
	}
}

func TestAdsSyncService_processAdAccount(t *testing.T) {
	month := time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC)

	campaigns := []*domain.AdCampaign{
		{
			ID:          "c1",
			Name:        "Conversões Dezembro",
			AdAccountID: "594963889574701",
			Spend:       decimal.RequireFromString("150.50"),
			Impressions: 10000,
			Clicks:      200,
		},
	}

	tests := []struct {
		name    string
		setup   func(integrator *metamocks.MockIntegrator, adsRepo *mocks.MockAdsCacheRepository)
		wantErr string
	}{
		{
			name: "Campanhas do mês salvas com resumo derivado",
			setup: func(integrator *metamocks.MockIntegrator, adsRepo *mocks.MockAdsCacheRepository) {
				integrator.EXPECT().
					FetchMonthlyCampaignInsights("594963889574701", month).
					Return(campaigns, nil)

				adsRepo.EXPECT().
					SaveOrUpdate(gomock.Any()).
					DoAndReturn(func(entry *repository.AdsCacheEntry) error {
						assert.Equal(t, "594963889574701", entry.AdAccountID)
						assert.Equal(t, "2025-12", entry.Month)
						assert.Len(t, entry.Campaigns, 1)
						assert.Equal(t, 1, entry.Summary.Campaigns)
						assert.True(t, decimal.RequireFromString("150.50").Equal(entry.Summary.Spend))
						return nil
					})
			},
		},
		{
			name: "Conta sem campanhas no mês grava entrada vazia",
			setup: func(integrator *metamocks.MockIntegrator, adsRepo *mocks.MockAdsCacheRepository) {
				integrator.EXPECT().
					FetchMonthlyCampaignInsights("594963889574701", month).
					Return([]*domain.AdCampaign{}, nil)

				adsRepo.EXPECT().
					SaveOrUpdate(gomock.Any()).
					DoAndReturn(func(entry *repository.AdsCacheEntry) error {
						assert.Empty(t, entry.Campaigns)
						assert.Equal(t, 0, entry.Summary.Campaigns)
						return nil
					})
			},
		},
		{
			name: "Falha na Graph API não grava nada no cache",
			setup: func(integrator *metamocks.MockIntegrator, adsRepo *mocks.MockAdsCacheRepository) {
				integrator.EXPECT().
					FetchMonthlyCampaignInsights("594963889574701", month).
					Return(nil, errors.New("token expirado"))
			},
			wantErr: "erro ao obter insights de campanhas",
		},
		{
			name: "Falha ao gravar o cache é propagada",
			setup: func(integrator *metamocks.MockIntegrator, adsRepo *mocks.MockAdsCacheRepository) {
				integrator.EXPECT().
					FetchMonthlyCampaignInsights("594963889574701", month).
					Return(campaigns, nil)

				adsRepo.EXPECT().
					SaveOrUpdate(gomock.Any()).
					Return(errors.New("conexão recusada"))
			},
			wantErr: "erro ao salvar entrada do cache de anúncios",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			integrator := metamocks.NewMockIntegrator(ctrl)
			adsRepo := mocks.NewMockAdsCacheRepository(ctrl)
			tt.setup(integrator, adsRepo)

			service := newTestService(adsRepo, integrator)

			err := service.processAdAccount("594963889574701", month)

			if tt.wantErr != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestAdsSyncService_processMonth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	month := time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC)

	integrator := metamocks.NewMockIntegrator(ctrl)
	adsRepo := mocks.NewMockAdsCacheRepository(ctrl)
	service := newTestService(adsRepo, integrator)

	// Uma conta falha e a outra sincroniza normalmente
	integrator.EXPECT().
		FetchMonthlyCampaignInsights("acc-ok", month).
		Return([]*domain.AdCampaign{}, nil)
	integrator.EXPECT().
		FetchMonthlyCampaignInsights("acc-falha", month).
		Return(nil, errors.New("token expirado"))

	adsRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil)

	service.processMonth([]string{"acc-ok", "acc-falha"}, month)
}

func TestAdsSyncService_GetStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	adsRepo := mocks.NewMockAdsCacheRepository(ctrl)
	adsRepo.EXPECT().GetSyncedMonths().Return([]string{"2025-11", "2025-12"}, nil)

	service := newTestService(adsRepo, metamocks.NewMockIntegrator(ctrl))
	service.config.CronSchedule = "0 5 1 * *"
	service.config.SyncEnabled = true

	status := service.GetStatus()

	assert.Equal(t, false, status["sync_running"])
	assert.Equal(t, "0 5 1 * *", status["sync_cron"])
	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, []string{"2025-11", "2025-12"}, status["synced_months"])
}
