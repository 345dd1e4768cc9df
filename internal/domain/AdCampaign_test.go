package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSumCampaigns(t *testing.T) {
	campaigns := []*AdCampaign{
		{
			ID:          "c1",
			Spend:       decimal.RequireFromString("100.00"),
			Impressions: 8000,
			Clicks:      150,
			Reach:       6000,
			Conversions: 10,
		},
		{
			ID:          "c2",
			Spend:       decimal.RequireFromString("50.50"),
			Impressions: 2000,
			Clicks:      50,
			Reach:       1500,
			Conversions: 2,
		},
		nil,
	}

	stats := SumCampaigns(campaigns)

	assert.Equal(t, 2, stats.Campaigns)
	assert.True(t, decimal.RequireFromString("150.50").Equal(stats.Spend))
	assert.Equal(t, int64(10000), stats.Impressions)
	assert.Equal(t, int64(200), stats.Clicks)
	assert.Equal(t, int64(12), stats.Conversions)

	assert.True(t, decimal.RequireFromString("0.7525").Equal(stats.CPC))
	assert.True(t, decimal.RequireFromString("15.05").Equal(stats.CPM))
	assert.Equal(t, 2.0, stats.CTR)
}

func TestSumCampaignsDenominadorZero(t *testing.T) {
	stats := SumCampaigns([]*AdCampaign{
		{ID: "c1", Spend: decimal.RequireFromString("75.00")},
	})

	// Denominador zero resulta em zero explícito, nunca NaN ou Infinity
	assert.True(t, stats.CPC.IsZero())
	assert.True(t, stats.CPM.IsZero())
	assert.Equal(t, 0.0, stats.CTR)
	assert.False(t, stats.Spend.IsZero())
}

func TestSumCampaignsVazio(t *testing.T) {
	stats := SumCampaigns(nil)

	assert.Equal(t, 0, stats.Campaigns)
	assert.True(t, stats.Spend.IsZero())
	assert.True(t, stats.CPC.IsZero())
}
