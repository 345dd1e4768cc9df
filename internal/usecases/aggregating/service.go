package aggregating

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"github.com/vfg2006/social-insights-api/infrastructure/repository"
	"github.com/vfg2006/social-insights-api/internal/config"
	"github.com/vfg2006/social-insights-api/internal/domain"
	"github.com/vfg2006/social-insights-api/internal/usecases/attributing"
	"github.com/vfg2006/social-insights-api/pkg/utils"
)

// Service implementa o motor de agregação mensal. É uma transformação pura e
// idempotente sobre o Snapshot Store e o cache de anúncios: rodar duas vezes
// para o mesmo (cliente, mês) com dados inalterados produz resultados
// idênticos.
type Service struct {
	cfg          *config.Config
	attributor   attributing.Attributor
	customerRepo repository.CustomerRepository
	postRepo     repository.PostRepository
	metricRepo   repository.MetricSnapshotRepository
	followerRepo repository.FollowerSnapshotRepository
	adsRepo      repository.AdsCacheRepository

	maxConcurrentCustomers int
}

// NewService cria o serviço de agregação. O mapa de atribuição chega pronto
// via attributor; nenhum estado global é consultado.
func NewService(
	cfg *config.Config,
	attributor attributing.Attributor,
	customerRepo repository.CustomerRepository,
	postRepo repository.PostRepository,
	metricRepo repository.MetricSnapshotRepository,
	followerRepo repository.FollowerSnapshotRepository,
	adsRepo repository.AdsCacheRepository,
) Overviewer {
	maxConcurrent := 4
	if cfg != nil && cfg.Aggregation.MaxConcurrentCustomers > 0 {
		maxConcurrent = cfg.Aggregation.MaxConcurrentCustomers
	}

	return &Service{
		cfg:                    cfg,
		attributor:             attributor,
		customerRepo:           customerRepo,
		postRepo:               postRepo,
		metricRepo:             metricRepo,
		followerRepo:           followerRepo,
		adsRepo:                adsRepo,
		maxConcurrentCustomers: maxConcurrent,
	}
}

// GetCustomerOverview computa o overview mensal por cliente com fan-out
// limitado. Cada cliente é tudo-ou-nada: uma falha de leitura marca só o
// overview dele como indisponível e o lote continua (isolamento bulkhead).
func (s *Service) GetCustomerOverview(monthStr string, customerFilter string) ([]*domain.CustomerOverview, error) {
	month, err := utils.ParseMonth(monthStr)
	if err != nil {
		return nil, err
	}

	customers, err := s.resolveCustomers(customerFilter)
	if err != nil {
		// Sem a lista de clientes não há o que computar: falha sistêmica,
		// um único erro para o chamador
		return nil, err
	}

	overviews := make([]*domain.CustomerOverview, len(customers))

	group := errgroup.Group{}
	group.SetLimit(s.maxConcurrentCustomers)

	for i, customer := range customers {
		i, customer := i, customer
		group.Go(func() error {
			overview, err := s.buildOverview(customer, month)
			if err != nil {
				logrus.WithError(err).WithFields(logrus.Fields{
					"customer": customer.Slug,
					"month":    monthStr,
				}).Error("overview: falha ao computar overview do cliente")

				overview = unavailableOverview(customer, month, err)
			}

			overviews[i] = overview
			return nil
		})
	}

	// As goroutines nunca retornam erro: falhas por cliente viram overviews
	// indisponíveis e o lote segue
	_ = group.Wait()

	available := 0
	for _, overview := range overviews {
		if overview.Available {
			available++
		}
	}

	if len(overviews) > 0 && available == 0 {
		return nil, fmt.Errorf("nenhum overview pôde ser computado para %s: falha sistêmica de leitura", monthStr)
	}

	sort.Slice(overviews, func(i, j int) bool {
		return overviews[i].CustomerName < overviews[j].CustomerName
	})

	return overviews, nil
}

// GetMonthlyStats achata os overviews do mês em um único bloco de totais.
func (s *Service) GetMonthlyStats(monthStr string, customerFilter string) (*domain.MonthlyStats, error) {
	overviews, err := s.GetCustomerOverview(monthStr, customerFilter)
	if err != nil {
		return nil, err
	}

	stats := &domain.MonthlyStats{
		Month:    monthStr,
		Customer: customerFilter,
		AdSpend:  decimal.Zero,
	}

	if stats.Customer == "" {
		stats.Customer = "all"
	}

	for _, overview := range overviews {
		if !overview.Available {
			continue
		}

		stats.Customers++
		stats.Posts += overview.Totals.Posts
		stats.Reach += overview.Totals.Reach
		stats.Impressions += overview.Totals.Impressions
		stats.Interactions += overview.Totals.Interactions
		stats.AdSpend = stats.AdSpend.Add(overview.Totals.AdSpend)

		for _, block := range []*domain.PlatformStats{overview.Facebook, overview.Instagram} {
			if block == nil {
				continue
			}

			stats.Followers += block.Followers.EndFollowers
			stats.FollowerNetChange += block.Followers.NetChange
			if block.Followers.HasPrevData {
				stats.HasPrevData = true
			}
		}

		if overview.Ads != nil {
			stats.AdClicks += overview.Ads.Clicks
			stats.AdImpressions += overview.Ads.Impressions
		}
	}

	return stats, nil
}

func (s *Service) resolveCustomers(customerFilter string) ([]*domain.Customer, error) {
	if customerFilter != "" {
		customer, err := s.customerRepo.GetBySlug(customerFilter)
		if err != nil {
			return nil, fmt.Errorf("erro ao buscar cliente %q: %w", customerFilter, err)
		}
		if customer == nil {
			return nil, fmt.Errorf("cliente não encontrado: %s", customerFilter)
		}
		return []*domain.Customer{customer}, nil
	}

	customers, err := s.customerRepo.ListActive()
	if err != nil {
		return nil, fmt.Errorf("erro ao listar clientes ativos: %w", err)
	}

	return customers, nil
}

// buildOverview computa as quatro sub-agregações de um cliente em paralelo:
// posts do Facebook, posts do Instagram, anúncios e seguidores. Os ramos só
// fazem leituras independentes, então não há estado compartilhado para
// sincronizar; o bloco de totais espera os quatro.
func (s *Service) buildOverview(customer *domain.Customer, month time.Time) (*domain.CustomerOverview, error) {
	overview := &domain.CustomerOverview{
		CustomerID:   customer.ID,
		CustomerName: customer.Name,
		Slug:         customer.Slug,
		Month:        utils.FormatMonth(month),
		Available:    true,
	}

	var (
		fbStats, igStats   *domain.PlatformStats
		fbGrowth, igGrowth *growthResult
		adsStats           *domain.AdsStats

		fbErr, igErr, adsErr, followersErr error
	)

	wg := sync.WaitGroup{}
	wg.Add(4)

	go func() {
		defer wg.Done()
		fbStats, fbErr = s.aggregatePlatform(customer, domain.PlatformFacebook, month)
	}()

	go func() {
		defer wg.Done()
		igStats, igErr = s.aggregatePlatform(customer, domain.PlatformInstagram, month)
	}()

	go func() {
		defer wg.Done()
		adsStats, adsErr = s.aggregateAds(customer.Slug, month)
	}()

	go func() {
		defer wg.Done()
		fbGrowth, igGrowth, followersErr = s.aggregateFollowers(customer, month)
	}()

	wg.Wait()

	// Tudo-ou-nada por cliente: um overview parcial nunca é retornado como
	// se estivesse completo
	for _, err := range []error{fbErr, igErr, adsErr, followersErr} {
		if err != nil {
			return nil, err
		}
	}

	fbStats.Followers = *fbGrowth.totals
	igStats.Followers = *igGrowth.totals

	overview.Facebook = fbStats
	overview.Instagram = igStats
	overview.Ads = adsStats
	overview.ComputeTotals()

	return overview, nil
}

func unavailableOverview(customer *domain.Customer, month time.Time, err error) *domain.CustomerOverview {
	return &domain.CustomerOverview{
		CustomerID:   customer.ID,
		CustomerName: customer.Name,
		Slug:         customer.Slug,
		Month:        utils.FormatMonth(month),
		Available:    false,
		Unavailable:  err.Error(),
	}
}

func accountIDs(accounts []*domain.CustomerAccount) []string {
	ids := make([]string, 0, len(accounts))
	for _, account := range accounts {
		ids = append(ids, account.AccountID)
	}
	return ids
}
