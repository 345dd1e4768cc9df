package meta

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/social-insights-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/social-insights-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/social-insights-api/internal/config"
	"github.com/vfg2006/social-insights-api/internal/domain"
	"github.com/vfg2006/social-insights-api/pkg/utils"
)

// Integrator busca na Graph API os insights mensais das campanhas de uma
// conta de anúncios, já convertidos para o modelo interno. É a única fonte de
// escrita do cache de anúncios.
type Integrator interface {
	FetchMonthlyCampaignInsights(adAccountID string, month time.Time) ([]*domain.AdCampaign, error)
}

type MetaIntegrator struct {
	cfg    *config.Config
	Client metaclient.Client
}

func New(cfg *config.Config, client metaclient.Client) Integrator {
	return &MetaIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// FetchMonthlyCampaignInsights lista as campanhas da conta e busca os
// insights de cada uma no intervalo do mês. Campanhas sem entrega no mês são
// puladas; falhas individuais não derrubam a conta inteira.
func (s *MetaIntegrator) FetchMonthlyCampaignInsights(adAccountID string, month time.Time) ([]*domain.AdCampaign, error) {
	campaigns, err := s.Client.GetAdCampaignsByAccountID(adAccountID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": adAccountID,
			"error":      err.Error(),
		}).Error("insights: falha ao listar campanhas da conta de anúncios")
		return nil, err
	}

	since, _ := utils.MonthWindow(month)
	until := utils.MonthEnd(month)
	delay := time.Duration(s.cfg.AdsSync.RequestDelaySeconds) * time.Second

	results := make([]*domain.AdCampaign, 0, len(campaigns))
	for i, campaign := range campaigns {
		if i > 0 && delay > 0 {
			// Espaçamento entre requisições para respeitar o rate limit
			time.Sleep(delay)
		}

		insight, err := s.Client.GetAdCampaignInsightsByID(campaign.ID, since, until)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"campaign_id": campaign.ID,
				"account_id":  adAccountID,
				"error":       err.Error(),
			}).Error("insights: falha ao buscar insights da campanha")
			continue
		}

		if insight == nil {
			// Sem entrega no mês
			continue
		}

		if logrus.IsLevelEnabled(logrus.DebugLevel) {
			logrus.Debugf("insights: payload da campanha %s: %s", campaign.ID, utils.PrettyJson(insight))
		}

		results = append(results, factoryAdCampaign(adAccountID, campaign, insight))
	}

	logrus.WithFields(logrus.Fields{
		"account_id": adAccountID,
		"month":      utils.FormatMonth(month),
		"campaigns":  len(results),
	}).Debug("insights: campanhas do mês coletadas")

	return results, nil
}

// factoryAdCampaign converte a resposta bruta da API para o modelo interno.
// Números malformados agregam como zero com aviso, nunca derrubam a coleta.
func factoryAdCampaign(adAccountID string, campaign metadomain.Campaign, insight *metadomain.CampaignInsight) *domain.AdCampaign {
	spend, err := decimal.NewFromString(insight.Spend)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_id": campaign.ID,
			"spend_value": insight.Spend,
		}).Warn("insights: erro ao converter investimento da campanha")
		spend = decimal.Zero
	}

	name := insight.CampaignName
	if name == "" {
		name = campaign.Name
	}

	return &domain.AdCampaign{
		ID:          campaign.ID,
		Name:        name,
		AdAccountID: adAccountID,
		Spend:       spend,
		Impressions: parseCount(campaign.ID, "impressions", insight.Impressions),
		Clicks:      parseCount(campaign.ID, "clicks", insight.Clicks),
		Reach:       parseCount(campaign.ID, "reach", insight.Reach),
		Conversions: insight.Conversions(),
	}
}

func parseCount(campaignID, field, value string) int64 {
	if value == "" {
		return 0
	}

	count, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_id": campaignID,
			"field":       field,
			"value":       value,
		}).Warn("insights: erro ao converter métrica da campanha")
		return 0
	}

	return count
}
