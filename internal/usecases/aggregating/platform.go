package aggregating

import (
	"fmt"
	"time"

	"github.com/vfg2006/social-insights-api/internal/domain"
	"github.com/vfg2006/social-insights-api/pkg/utils"
)

// aggregatePlatform monta o bloco mensal de uma plataforma: posts criados na
// janela do mês alvo e do mês anterior, cada um com o snapshot de métricas
// resolvido no corte da própria janela.
func (s *Service) aggregatePlatform(customer *domain.Customer, platform domain.Platform, month time.Time) (*domain.PlatformStats, error) {
	accounts, err := s.customerRepo.ListAccountsByPlatform(customer.ID, platform)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar contas %s do cliente %s: %w", platform, customer.Slug, err)
	}

	stats := domain.NewPlatformStats(platform)
	stats.Accounts = len(accounts)

	if len(accounts) == 0 {
		// Bloco zerado, sem histórico: cliente sem presença nessa plataforma
		return stats, nil
	}

	ids := accountIDs(accounts)

	current, err := s.sumPostWindow(ids, platform, month)
	if err != nil {
		return nil, err
	}

	previous, err := s.sumPostWindow(ids, platform, utils.PrevMonth(month))
	if err != nil {
		return nil, err
	}

	stats.Current = *current
	stats.Previous = *previous

	return stats, nil
}

// sumPostWindow agrega as métricas dos posts criados na janela [início, fim)
// do mês. O corte de resolução dos snapshots é o fim exclusivo da janela: um
// relatório histórico nunca enxerga observações feitas depois do mês fechar.
func (s *Service) sumPostWindow(accountIDs []string, platform domain.Platform, month time.Time) (*domain.PostTotals, error) {
	start, end := utils.MonthWindow(month)

	posts, err := s.postRepo.ListByAccountsAndWindow(accountIDs, platform, start, end)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar posts %s da janela %s: %w", platform, utils.FormatMonth(month), err)
	}

	totals := &domain.PostTotals{}
	if len(posts) == 0 {
		return totals, nil
	}

	postIDs := make([]string, 0, len(posts))
	for _, post := range posts {
		postIDs = append(postIDs, post.ID)
	}

	snapshots, err := s.metricRepo.LatestPerPost(postIDs, end)
	if err != nil {
		return nil, fmt.Errorf("erro ao resolver snapshots de métricas da janela %s: %w", utils.FormatMonth(month), err)
	}

	for _, post := range posts {
		// Posts sem snapshot até o corte agregam com métricas zero
		totals.Add(snapshots[post.ID])
	}

	return totals, nil
}
