package aggregating_test

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/social-insights-api/infrastructure/repository/mocks"
	"github.com/vfg2006/social-insights-api/internal/domain"
	"github.com/vfg2006/social-insights-api/internal/usecases/aggregating"
	"github.com/vfg2006/social-insights-api/internal/usecases/attributing"
	"go.uber.org/mock/gomock"
)

func int64Ptr(v int64) *int64 {
	return &v
}

func testAttributor(t *testing.T) attributing.Attributor {
	t.Helper()

	config := &attributing.Config{
		Version: "teste",
		AccountDefaults: map[string]string{
			"594963889574701": "pelikan",
		},
	}
	assert.NoError(t, config.Compile())

	return attributing.NewService(config)
}

type serviceMocks struct {
	customerRepo *mocks.MockCustomerRepository
	postRepo     *mocks.MockPostRepository
	metricRepo   *mocks.MockMetricSnapshotRepository
	followerRepo *mocks.MockFollowerSnapshotRepository
	adsRepo      *mocks.MockAdsCacheRepository
}

func newService(t *testing.T, ctrl *gomock.Controller) (aggregating.Overviewer, *serviceMocks) {
	t.Helper()

	m := &serviceMocks{
		customerRepo: mocks.NewMockCustomerRepository(ctrl),
		postRepo:     mocks.NewMockPostRepository(ctrl),
		metricRepo:   mocks.NewMockMetricSnapshotRepository(ctrl),
		followerRepo: mocks.NewMockFollowerSnapshotRepository(ctrl),
		adsRepo:      mocks.NewMockAdsCacheRepository(ctrl),
	}

	service := aggregating.NewService(
		nil,
		testAttributor(t),
		m.customerRepo,
		m.postRepo,
		m.metricRepo,
		m.followerRepo,
		m.adsRepo,
	)

	return service, m
}

func TestGetCustomerOverviewDezembro(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newService(t, ctrl)

	customer := &domain.Customer{ID: 1, Name: "Pelikan", Slug: "pelikan", Active: true}
	fbAccounts := []*domain.CustomerAccount{
		{CustomerID: 1, AccountID: "fb-1", Platform: domain.PlatformFacebook},
	}

	month := time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC)
	decStart := month
	decEnd := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	novStart := time.Date(2025, time.November, 1, 0, 0, 0, 0, time.UTC)
	decMonthEnd := time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC)
	novMonthEnd := time.Date(2025, time.November, 30, 0, 0, 0, 0, time.UTC)

	m.customerRepo.EXPECT().GetBySlug("pelikan").Return(customer, nil)

	// O ramo de posts e o de seguidores listam as contas de forma independente
	m.customerRepo.EXPECT().
		ListAccountsByPlatform(int64(1), domain.PlatformFacebook).
		Return(fbAccounts, nil).
		Times(2)
	m.customerRepo.EXPECT().
		ListAccountsByPlatform(int64(1), domain.PlatformInstagram).
		Return([]*domain.CustomerAccount{}, nil).
		Times(2)

	posts := []*domain.Post{
		{ID: "p1", AccountID: "fb-1", Platform: domain.PlatformFacebook, CreatedTime: decStart.AddDate(0, 0, 4)},
		{ID: "p2", AccountID: "fb-1", Platform: domain.PlatformFacebook, CreatedTime: decStart.AddDate(0, 0, 20)},
	}

	m.postRepo.EXPECT().
		ListByAccountsAndWindow([]string{"fb-1"}, domain.PlatformFacebook, decStart, decEnd).
		Return(posts, nil)
	m.postRepo.EXPECT().
		ListByAccountsAndWindow([]string{"fb-1"}, domain.PlatformFacebook, novStart, decStart).
		Return([]*domain.Post{}, nil)

	m.metricRepo.EXPECT().
		LatestPerPost([]string{"p1", "p2"}, decEnd).
		Return(map[string]*domain.MetricSnapshot{
			"p1": {
				PostID:      "p1",
				ObservedAt:  decEnd.AddDate(0, 0, -1),
				Reach:       int64Ptr(100),
				Impressions: int64Ptr(150),
				Reactions:   int64Ptr(10),
				Comments:    int64Ptr(2),
				Shares:      int64Ptr(1),
			},
			"p2": {
				PostID:      "p2",
				ObservedAt:  decEnd.AddDate(0, 0, -3),
				Reach:       int64Ptr(50),
				Impressions: int64Ptr(80),
				Reactions:   int64Ptr(5),
				Comments:    int64Ptr(1),
			},
		}, nil)

	m.followerRepo.EXPECT().
		LatestPerAccount([]string{"fb-1"}, decMonthEnd).
		Return(map[string]*domain.FollowerSnapshot{
			"fb-1": {AccountID: "fb-1", Platform: domain.PlatformFacebook, SnapshotDate: decMonthEnd, FollowerCount: 1050},
		}, nil)
	m.followerRepo.EXPECT().
		LatestPerAccount([]string{"fb-1"}, novMonthEnd).
		Return(map[string]*domain.FollowerSnapshot{
			"fb-1": {AccountID: "fb-1", Platform: domain.PlatformFacebook, SnapshotDate: novMonthEnd, FollowerCount: 1000},
		}, nil)

	m.adsRepo.EXPECT().
		GetCampaignsByMonth(month).
		Return([]*domain.AdCampaign{
			{
				ID:          "c1",
				Name:        "Conversões Dezembro",
				AdAccountID: "594963889574701",
				Spend:       decimal.RequireFromString("150.50"),
				Impressions: 10000,
				Clicks:      200,
				Reach:       8000,
				Conversions: 12,
			},
			{
				// Conta fora do mapa de atribuição: excluída dos totais
				ID:          "c2",
				Name:        "Campanha Avulsa",
				AdAccountID: "999999999999999",
				Spend:       decimal.RequireFromString("999.99"),
			},
		}, nil)

	overviews, err := service.GetCustomerOverview("2025-12", "pelikan")

	assert.NoError(t, err)
	assert.Len(t, overviews, 1)

	overview := overviews[0]
	assert.True(t, overview.Available)
	assert.Equal(t, "pelikan", overview.Slug)
	assert.Equal(t, "2025-12", overview.Month)

	assert.Equal(t, 2, overview.Facebook.Current.Posts)
	assert.Equal(t, int64(150), overview.Facebook.Current.Reach)
	assert.Equal(t, int64(230), overview.Facebook.Current.Impressions)
	assert.Equal(t, int64(15), overview.Facebook.Current.Reactions)
	assert.Equal(t, int64(3), overview.Facebook.Current.Comments)
	assert.Equal(t, 0, overview.Facebook.Previous.Posts)

	assert.Equal(t, int64(1000), overview.Facebook.Followers.StartFollowers)
	assert.Equal(t, int64(1050), overview.Facebook.Followers.EndFollowers)
	assert.Equal(t, int64(50), overview.Facebook.Followers.NetChange)
	assert.Equal(t, 5.0, overview.Facebook.Followers.PercentChange)
	assert.True(t, overview.Facebook.Followers.HasPrevData)

	assert.Equal(t, 0, overview.Instagram.Accounts)
	assert.False(t, overview.Instagram.Followers.HasPrevData)

	assert.Equal(t, 1, overview.Ads.Campaigns)
	assert.True(t, decimal.RequireFromString("150.50").Equal(overview.Ads.Spend))
	assert.True(t, decimal.RequireFromString("0.7525").Equal(overview.Ads.CPC))
	assert.True(t, decimal.RequireFromString("15.05").Equal(overview.Ads.CPM))
	assert.Equal(t, 2.0, overview.Ads.CTR)

	// Interações = reações + comentários, nunca shares, saves ou plays
	assert.Equal(t, 2, overview.Totals.Posts)
	assert.Equal(t, int64(150), overview.Totals.Reach)
	assert.Equal(t, int64(230), overview.Totals.Impressions)
	assert.Equal(t, int64(18), overview.Totals.Interactions)
	assert.True(t, decimal.RequireFromString("150.50").Equal(overview.Totals.AdSpend))
}

func TestGetCustomerOverviewMesMalformado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _ := newService(t, ctrl)

	tests := []string{"", "2025", "2025-13", "dezembro", "2025-12-01"}

	for _, monthStr := range tests {
		overviews, err := service.GetCustomerOverview(monthStr, "pelikan")

		assert.Error(t, err)
		assert.Nil(t, overviews)
	}
}

func TestGetCustomerOverviewIsolamentoPorCliente(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newService(t, ctrl)

	customers := []*domain.Customer{
		{ID: 1, Name: "Alfa", Slug: "alfa", Active: true},
		{ID: 2, Name: "Beta", Slug: "beta", Active: true},
		{ID: 3, Name: "Gama", Slug: "gama", Active: true},
	}

	m.customerRepo.EXPECT().ListActive().Return(customers, nil)

	// Clientes 1 e 3 não têm contas; a leitura do cliente 2 falha
	m.customerRepo.EXPECT().
		ListAccountsByPlatform(int64(1), gomock.Any()).
		Return([]*domain.CustomerAccount{}, nil).
		AnyTimes()
	m.customerRepo.EXPECT().
		ListAccountsByPlatform(int64(2), gomock.Any()).
		Return(nil, errors.New("conexão recusada")).
		AnyTimes()
	m.customerRepo.EXPECT().
		ListAccountsByPlatform(int64(3), gomock.Any()).
		Return([]*domain.CustomerAccount{}, nil).
		AnyTimes()

	m.adsRepo.EXPECT().
		GetCampaignsByMonth(gomock.Any()).
		Return([]*domain.AdCampaign{}, nil).
		AnyTimes()

	overviews, err := service.GetCustomerOverview("2025-12", "")

	assert.NoError(t, err)
	assert.Len(t, overviews, 3)

	bySlug := map[string]*domain.CustomerOverview{}
	for _, overview := range overviews {
		bySlug[overview.Slug] = overview
	}

	assert.True(t, bySlug["alfa"].Available)
	assert.True(t, bySlug["gama"].Available)

	assert.False(t, bySlug["beta"].Available)
	assert.Contains(t, bySlug["beta"].Unavailable, "conexão recusada")
	assert.Nil(t, bySlug["beta"].Totals)
}

func TestGetCustomerOverviewFalhaSistemica(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newService(t, ctrl)

	customers := []*domain.Customer{
		{ID: 1, Name: "Alfa", Slug: "alfa", Active: true},
		{ID: 2, Name: "Beta", Slug: "beta", Active: true},
	}

	m.customerRepo.EXPECT().ListActive().Return(customers, nil)
	m.customerRepo.EXPECT().
		ListAccountsByPlatform(gomock.Any(), gomock.Any()).
		Return([]*domain.CustomerAccount{}, nil).
		AnyTimes()

	// O cache de anúncios fora do ar derruba todos os clientes do lote
	m.adsRepo.EXPECT().
		GetCampaignsByMonth(gomock.Any()).
		Return(nil, errors.New("cache indisponível")).
		AnyTimes()

	overviews, err := service.GetCustomerOverview("2025-12", "")

	assert.Error(t, err)
	assert.Nil(t, overviews)
	assert.Contains(t, err.Error(), "falha sistêmica")
}

func TestGetCustomerOverviewClienteNaoEncontrado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newService(t, ctrl)

	m.customerRepo.EXPECT().GetBySlug("fantasma").Return(nil, nil)

	overviews, err := service.GetCustomerOverview("2025-12", "fantasma")

	assert.Error(t, err)
	assert.Nil(t, overviews)
	assert.Contains(t, err.Error(), "cliente não encontrado")
}

func TestGetCustomerOverviewIdempotente(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newService(t, ctrl)

	customer := &domain.Customer{ID: 1, Name: "Pelikan", Slug: "pelikan", Active: true}

	m.customerRepo.EXPECT().GetBySlug("pelikan").Return(customer, nil).Times(2)
	m.customerRepo.EXPECT().
		ListAccountsByPlatform(int64(1), gomock.Any()).
		Return([]*domain.CustomerAccount{}, nil).
		AnyTimes()
	m.adsRepo.EXPECT().
		GetCampaignsByMonth(gomock.Any()).
		Return([]*domain.AdCampaign{}, nil).
		Times(2)

	first, err := service.GetCustomerOverview("2025-12", "pelikan")
	assert.NoError(t, err)

	second, err := service.GetCustomerOverview("2025-12", "pelikan")
	assert.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGetMonthlyStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newService(t, ctrl)

	customer := &domain.Customer{ID: 1, Name: "Pelikan", Slug: "pelikan", Active: true}

	m.customerRepo.EXPECT().GetBySlug("pelikan").Return(customer, nil)
	m.customerRepo.EXPECT().
		ListAccountsByPlatform(int64(1), gomock.Any()).
		Return([]*domain.CustomerAccount{}, nil).
		AnyTimes()
	m.adsRepo.EXPECT().
		GetCampaignsByMonth(gomock.Any()).
		Return([]*domain.AdCampaign{
			{
				ID:          "c1",
				Name:        "Conversões Dezembro",
				AdAccountID: "594963889574701",
				Spend:       decimal.RequireFromString("80.00"),
				Impressions: 4000,
				Clicks:      100,
			},
		}, nil)

	stats, err := service.GetMonthlyStats("2025-12", "pelikan")

	assert.NoError(t, err)
	assert.Equal(t, "2025-12", stats.Month)
	assert.Equal(t, "pelikan", stats.Customer)
	assert.Equal(t, 1, stats.Customers)
	assert.Equal(t, 0, stats.Posts)
	assert.Equal(t, int64(100), stats.AdClicks)
	assert.Equal(t, int64(4000), stats.AdImpressions)
	assert.True(t, decimal.RequireFromString("80.00").Equal(stats.AdSpend))
	assert.False(t, stats.HasPrevData)
}
