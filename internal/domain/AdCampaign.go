package domain

import (
	"github.com/shopspring/decimal"
	"github.com/vfg2006/social-insights-api/pkg/utils"
)

// AdCampaign representa os insights de uma campanha do Meta Ads para
// exatamente um mês, como sincronizados no cache de anúncios. Campanhas do
// mesmo nome se repetem mês a mês sem identidade entre meses além do ID bruto.
type AdCampaign struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	AdAccountID string          `json:"ad_account_id"`
	Spend       decimal.Decimal `json:"spend"`
	Impressions int64           `json:"impressions"`
	Clicks      int64           `json:"clicks"`
	Reach       int64           `json:"reach"`
	Conversions int64           `json:"conversions"`
}

// AdsStats agrega as campanhas atribuídas a um cliente em um mês.
type AdsStats struct {
	Campaigns   int             `json:"campaigns"`
	Spend       decimal.Decimal `json:"spend"`
	Impressions int64           `json:"impressions"`
	Clicks      int64           `json:"clicks"`
	Reach       int64           `json:"reach"`
	Conversions int64           `json:"conversions"`
	CPC         decimal.Decimal `json:"cpc"`
	CPM         decimal.Decimal `json:"cpm"`
	CTR         float64         `json:"ctr"`
}

// SumCampaigns soma as métricas das campanhas e deriva as razões com a
// convenção de zero explícito: denominador zero resulta em zero, nunca em
// NaN ou Infinity.
func SumCampaigns(campaigns []*AdCampaign) *AdsStats {
	stats := &AdsStats{
		Spend: decimal.Zero,
		CPC:   decimal.Zero,
		CPM:   decimal.Zero,
	}

	for _, campaign := range campaigns {
		if campaign == nil {
			continue
		}

		stats.Campaigns++
		stats.Spend = stats.Spend.Add(campaign.Spend)
		stats.Impressions += campaign.Impressions
		stats.Clicks += campaign.Clicks
		stats.Reach += campaign.Reach
		stats.Conversions += campaign.Conversions
	}

	stats.CPC = utils.SafeDivDecimal(stats.Spend, stats.Clicks)
	stats.CPM = utils.SafeDivDecimal(stats.Spend.Mul(decimal.NewFromInt(1000)), stats.Impressions)
	stats.CTR = utils.SafePercent(float64(stats.Clicks), float64(stats.Impressions))

	return stats
}
