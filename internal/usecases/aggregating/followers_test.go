package aggregating_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/social-insights-api/internal/domain"
	"github.com/vfg2006/social-insights-api/internal/usecases/aggregating"
	"go.uber.org/mock/gomock"
)

func TestGetFollowerGrowthSemHistoricoAnterior(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newService(t, ctrl)

	decMonthEnd := time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC)
	novMonthEnd := time.Date(2025, time.November, 30, 0, 0, 0, 0, time.UTC)

	m.followerRepo.EXPECT().
		LatestPerAccount([]string{"acc-1"}, decMonthEnd).
		Return(map[string]*domain.FollowerSnapshot{
			"acc-1": {AccountID: "acc-1", Platform: domain.PlatformFacebook, SnapshotDate: decMonthEnd, FollowerCount: 0},
		}, nil)

	// Nenhuma observação até o fim do mês anterior: sem histórico
	m.followerRepo.EXPECT().
		LatestPerAccount([]string{"acc-1"}, novMonthEnd).
		Return(map[string]*domain.FollowerSnapshot{}, nil)

	report, err := service.GetFollowerGrowth(&aggregating.GrowthParams{
		FromMonth:  "2025-12",
		ToMonth:    "2025-12",
		Platform:   domain.PlatformFacebook,
		AccountIDs: []string{"acc-1"},
	})

	assert.NoError(t, err)
	assert.Len(t, report.Summary, 1)

	summary := report.Summary[0]
	assert.Equal(t, "2025-12", summary.Month)
	assert.Equal(t, int64(0), summary.EndFollowers)
	assert.Equal(t, int64(0), summary.NetChange)
	assert.False(t, summary.HasPrevData)
}

func TestGetFollowerGrowthZeroAnteriorEDadoValido(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newService(t, ctrl)

	decMonthEnd := time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC)
	novMonthEnd := time.Date(2025, time.November, 30, 0, 0, 0, 0, time.UTC)

	m.followerRepo.EXPECT().
		LatestPerAccount([]string{"acc-1"}, decMonthEnd).
		Return(map[string]*domain.FollowerSnapshot{
			"acc-1": {AccountID: "acc-1", Platform: domain.PlatformInstagram, SnapshotDate: decMonthEnd, FollowerCount: 120},
		}, nil)

	// Snapshot anterior com valor zero é dado válido, não ausência
	m.followerRepo.EXPECT().
		LatestPerAccount([]string{"acc-1"}, novMonthEnd).
		Return(map[string]*domain.FollowerSnapshot{
			"acc-1": {AccountID: "acc-1", Platform: domain.PlatformInstagram, SnapshotDate: novMonthEnd, FollowerCount: 0},
		}, nil)

	report, err := service.GetFollowerGrowth(&aggregating.GrowthParams{
		FromMonth:  "2025-12",
		ToMonth:    "2025-12",
		Platform:   domain.PlatformInstagram,
		AccountIDs: []string{"acc-1"},
	})

	assert.NoError(t, err)
	assert.Len(t, report.Summary, 1)

	summary := report.Summary[0]
	assert.True(t, summary.HasPrevData)
	assert.Equal(t, int64(120), summary.NetChange)
	// Base zero: percentual zero por convenção, nunca Infinity
	assert.Equal(t, 0.0, summary.PercentChange)
}

func TestGetFollowerGrowthSerieMultiMes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newService(t, ctrl)

	customer := &domain.Customer{ID: 7, Name: "Herlitz", Slug: "herlitz", Active: true}
	accounts := []*domain.CustomerAccount{
		{CustomerID: 7, AccountID: "ig-1", Platform: domain.PlatformInstagram},
		{CustomerID: 7, AccountID: "fb-1", Platform: domain.PlatformFacebook},
	}

	m.customerRepo.EXPECT().GetBySlug("herlitz").Return(customer, nil)
	m.customerRepo.EXPECT().ListAccounts(int64(7)).Return(accounts, nil)

	snapshot := func(count int64) map[string]*domain.FollowerSnapshot {
		return map[string]*domain.FollowerSnapshot{
			"ig-1": {AccountID: "ig-1", Platform: domain.PlatformInstagram, FollowerCount: count},
		}
	}

	octMonthEnd := time.Date(2025, time.October, 31, 0, 0, 0, 0, time.UTC)
	novMonthEnd := time.Date(2025, time.November, 30, 0, 0, 0, 0, time.UTC)
	decMonthEnd := time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC)

	// Novembro resolve os limites outubro/novembro; dezembro, novembro/dezembro
	m.followerRepo.EXPECT().LatestPerAccount([]string{"ig-1"}, octMonthEnd).Return(snapshot(500), nil)
	m.followerRepo.EXPECT().LatestPerAccount([]string{"ig-1"}, novMonthEnd).Return(snapshot(550), nil).Times(2)
	m.followerRepo.EXPECT().LatestPerAccount([]string{"ig-1"}, decMonthEnd).Return(snapshot(605), nil)

	report, err := service.GetFollowerGrowth(&aggregating.GrowthParams{
		FromMonth:    "2025-11",
		ToMonth:      "2025-12",
		CustomerSlug: "herlitz",
		Platform:     domain.PlatformInstagram,
	})

	assert.NoError(t, err)
	assert.Len(t, report.Summary, 2)
	assert.Len(t, report.Details, 2)

	assert.Equal(t, "2025-11", report.Summary[0].Month)
	assert.Equal(t, int64(50), report.Summary[0].NetChange)
	assert.Equal(t, 10.0, report.Summary[0].PercentChange)

	assert.Equal(t, "2025-12", report.Summary[1].Month)
	assert.Equal(t, int64(55), report.Summary[1].NetChange)
	assert.Equal(t, 10.0, report.Summary[1].PercentChange)
}

func TestGetFollowerGrowthParametrosInvalidos(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _ := newService(t, ctrl)

	tests := []struct {
		name    string
		params  *aggregating.GrowthParams
		wantErr string
	}{
		{
			name:    "Parâmetros ausentes",
			params:  nil,
			wantErr: "parâmetros de crescimento não informados",
		},
		{
			name: "Intervalo invertido",
			params: &aggregating.GrowthParams{
				FromMonth:    "2025-12",
				ToMonth:      "2025-01",
				CustomerSlug: "herlitz",
			},
			wantErr: "intervalo inválido",
		},
		{
			name: "Sem cliente e sem contas",
			params: &aggregating.GrowthParams{
				FromMonth: "2025-01",
				ToMonth:   "2025-12",
			},
			wantErr: "informe um cliente ou uma lista de contas",
		},
		{
			name: "Contas explícitas sem plataforma",
			params: &aggregating.GrowthParams{
				FromMonth:  "2025-01",
				ToMonth:    "2025-12",
				AccountIDs: []string{"acc-1"},
			},
			wantErr: "contas explícitas exigem a plataforma",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := service.GetFollowerGrowth(tt.params)

			assert.Error(t, err)
			assert.Nil(t, report)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
