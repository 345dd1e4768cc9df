package aggregating

import (
	"fmt"
	"sort"
	"time"

	"github.com/vfg2006/social-insights-api/internal/domain"
	"github.com/vfg2006/social-insights-api/pkg/utils"
)

// growthResult carrega o crescimento de um conjunto de contas em um mês, com
// os totais combinados e o detalhamento por conta.
type growthResult struct {
	totals  *domain.GrowthTotals
	details []*domain.AccountGrowth
}

// aggregateFollowers calcula o crescimento de seguidores do cliente no mês,
// separado por plataforma, para compor os blocos do overview.
func (s *Service) aggregateFollowers(customer *domain.Customer, month time.Time) (fb, ig *growthResult, err error) {
	fb, err = s.platformGrowth(customer, domain.PlatformFacebook, month)
	if err != nil {
		return nil, nil, err
	}

	ig, err = s.platformGrowth(customer, domain.PlatformInstagram, month)
	if err != nil {
		return nil, nil, err
	}

	return fb, ig, nil
}

func (s *Service) platformGrowth(customer *domain.Customer, platform domain.Platform, month time.Time) (*growthResult, error) {
	accounts, err := s.customerRepo.ListAccountsByPlatform(customer.ID, platform)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar contas %s do cliente %s: %w", platform, customer.Slug, err)
	}

	return s.accountsGrowth(accounts, month)
}

// accountsGrowth resolve os snapshots de seguidores nos dois limites do mês e
// deriva o crescimento por conta. O limite inferior é o último dia do mês
// anterior; o superior, o último dia do mês alvo. Contas ausentes do mapa do
// limite inferior ficam com HasPrevData=false.
func (s *Service) accountsGrowth(accounts []*domain.CustomerAccount, month time.Time) (*growthResult, error) {
	details := make([]*domain.AccountGrowth, 0, len(accounts))

	if len(accounts) == 0 {
		return &growthResult{totals: domain.CombineGrowth(details), details: details}, nil
	}

	ids := accountIDs(accounts)

	endAsOf := utils.MonthEnd(month)
	startAsOf := utils.MonthEnd(utils.PrevMonth(month))

	endSnapshots, err := s.followerRepo.LatestPerAccount(ids, endAsOf)
	if err != nil {
		return nil, fmt.Errorf("erro ao resolver snapshots de seguidores até %s: %w", endAsOf.Format("2006-01-02"), err)
	}

	startSnapshots, err := s.followerRepo.LatestPerAccount(ids, startAsOf)
	if err != nil {
		return nil, fmt.Errorf("erro ao resolver snapshots de seguidores até %s: %w", startAsOf.Format("2006-01-02"), err)
	}

	for _, account := range accounts {
		growth := domain.CalculateAccountGrowth(
			account.AccountID,
			account.Platform,
			startSnapshots[account.AccountID],
			endSnapshots[account.AccountID],
		)

		if account.DisplayName != nil {
			growth.DisplayName = *account.DisplayName
		}

		details = append(details, growth)
	}

	return &growthResult{totals: domain.CombineGrowth(details), details: details}, nil
}

// GetFollowerGrowth produz a série mensal de crescimento de seguidores para o
// conjunto de contas delimitado pelos parâmetros, mês a mês no intervalo
// [FromMonth, ToMonth].
func (s *Service) GetFollowerGrowth(params *GrowthParams) (*domain.FollowerGrowthReport, error) {
	if params == nil {
		return nil, fmt.Errorf("parâmetros de crescimento não informados")
	}

	from, err := utils.ParseMonth(params.FromMonth)
	if err != nil {
		return nil, err
	}

	to, err := utils.ParseMonth(params.ToMonth)
	if err != nil {
		return nil, err
	}

	if from.After(to) {
		return nil, fmt.Errorf("intervalo inválido: %s é posterior a %s", params.FromMonth, params.ToMonth)
	}

	accounts, err := s.resolveGrowthAccounts(params)
	if err != nil {
		return nil, err
	}

	report := &domain.FollowerGrowthReport{
		Summary: make([]*domain.MonthlySummary, 0),
		Details: make([]*domain.AccountDetail, 0),
	}

	if len(accounts) == 0 {
		return report, nil
	}

	for _, month := range utils.MonthsBetween(from, to) {
		result, err := s.accountsGrowth(accounts, month)
		if err != nil {
			return nil, err
		}

		monthStr := utils.FormatMonth(month)

		report.Summary = append(report.Summary, &domain.MonthlySummary{
			Month:          monthStr,
			StartFollowers: result.totals.StartFollowers,
			EndFollowers:   result.totals.EndFollowers,
			NetChange:      result.totals.NetChange,
			PercentChange:  result.totals.PercentChange,
			HasPrevData:    result.totals.HasPrevData,
		})

		for _, growth := range result.details {
			report.Details = append(report.Details, &domain.AccountDetail{
				Month:         monthStr,
				AccountGrowth: *growth,
			})
		}
	}

	return report, nil
}

// resolveGrowthAccounts monta o conjunto de contas da consulta: as contas do
// cliente (quando CustomerSlug é informado) mais as contas explícitas, sem
// duplicatas, filtradas por plataforma quando pedido.
func (s *Service) resolveGrowthAccounts(params *GrowthParams) ([]*domain.CustomerAccount, error) {
	if params.CustomerSlug == "" && len(params.AccountIDs) == 0 {
		return nil, fmt.Errorf("informe um cliente ou uma lista de contas")
	}

	accounts := make([]*domain.CustomerAccount, 0)
	seen := make(map[string]bool)

	if params.CustomerSlug != "" {
		customer, err := s.customerRepo.GetBySlug(params.CustomerSlug)
		if err != nil {
			return nil, fmt.Errorf("erro ao buscar cliente %q: %w", params.CustomerSlug, err)
		}
		if customer == nil {
			return nil, fmt.Errorf("cliente não encontrado: %s", params.CustomerSlug)
		}

		customerAccounts, err := s.customerRepo.ListAccounts(customer.ID)
		if err != nil {
			return nil, fmt.Errorf("erro ao listar contas do cliente %s: %w", params.CustomerSlug, err)
		}

		for _, account := range customerAccounts {
			if params.Platform != "" && account.Platform != params.Platform {
				continue
			}
			if seen[account.AccountID] {
				continue
			}
			seen[account.AccountID] = true
			accounts = append(accounts, account)
		}
	}

	if len(params.AccountIDs) > 0 {
		if params.Platform == "" {
			return nil, fmt.Errorf("contas explícitas exigem a plataforma")
		}

		for _, accountID := range params.AccountIDs {
			if seen[accountID] {
				continue
			}
			seen[accountID] = true
			accounts = append(accounts, &domain.CustomerAccount{
				AccountID: accountID,
				Platform:  params.Platform,
			})
		}
	}

	sort.Slice(accounts, func(i, j int) bool {
		return accounts[i].AccountID < accounts[j].AccountID
	})

	return accounts, nil
}
