package aggregating

import (
	"fmt"
	"time"

	"github.com/vfg2006/social-insights-api/internal/domain"
	"github.com/vfg2006/social-insights-api/pkg/utils"
)

// aggregateAds soma as campanhas do mês atribuídas ao cliente. Campanhas não
// atribuíveis são excluídas de todos os clientes; campanhas de outros clientes
// na mesma conta de anúncios são separadas pelas overrides do mapa.
func (s *Service) aggregateAds(customerSlug string, month time.Time) (*domain.AdsStats, error) {
	campaigns, err := s.adsRepo.GetCampaignsByMonth(month)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler o cache de anúncios de %s: %w", utils.FormatMonth(month), err)
	}

	matched := make([]*domain.AdCampaign, 0)
	for _, campaign := range campaigns {
		slug, ok := s.attributor.ResolveCustomerForCampaign(campaign.AdAccountID, campaign.Name)
		if !ok || slug != customerSlug {
			continue
		}
		matched = append(matched, campaign)
	}

	return domain.SumCampaigns(matched), nil
}
