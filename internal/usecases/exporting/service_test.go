package exporting_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/social-insights-api/internal/domain"
	"github.com/vfg2006/social-insights-api/internal/usecases/aggregating"
	"github.com/vfg2006/social-insights-api/internal/usecases/exporting"
)

// stubOverviewer devolve respostas fixas: o exportador só enxerga a saída do
// agregador, nunca os repositórios.
type stubOverviewer struct {
	overviews []*domain.CustomerOverview
	report    *domain.FollowerGrowthReport
	err       error
}

func (s *stubOverviewer) GetCustomerOverview(month, customerFilter string) ([]*domain.CustomerOverview, error) {
	return s.overviews, s.err
}

func (s *stubOverviewer) GetMonthlyStats(month, customerFilter string) (*domain.MonthlyStats, error) {
	return nil, s.err
}

func (s *stubOverviewer) GetFollowerGrowth(params *aggregating.GrowthParams) (*domain.FollowerGrowthReport, error) {
	return s.report, s.err
}

func availableOverview() *domain.CustomerOverview {
	fb := domain.NewPlatformStats(domain.PlatformFacebook)
	fb.Accounts = 1
	fb.Current = domain.PostTotals{Posts: 2, Reach: 150, Impressions: 230, Reactions: 15, Comments: 3, Shares: 1}
	fb.Followers = domain.GrowthTotals{StartFollowers: 1000, EndFollowers: 1050, NetChange: 50, PercentChange: 5, HasPrevData: true}

	ig := domain.NewPlatformStats(domain.PlatformInstagram)
	ig.Accounts = 1
	ig.Followers = domain.GrowthTotals{EndFollowers: 200, HasPrevData: false}

	overview := &domain.CustomerOverview{
		CustomerID:   1,
		CustomerName: "Pelikan",
		Slug:         "pelikan",
		Month:        "2025-12",
		Facebook:     fb,
		Instagram:    ig,
		Ads: &domain.AdsStats{
			Campaigns:   1,
			Spend:       decimal.RequireFromString("150.50"),
			Impressions: 10000,
			Clicks:      200,
			CPC:         decimal.RequireFromString("0.7525"),
			CPM:         decimal.RequireFromString("15.05"),
			CTR:         2,
		},
		Available: true,
	}
	overview.ComputeTotals()

	return overview
}

func unavailableOverview() *domain.CustomerOverview {
	return &domain.CustomerOverview{
		CustomerID:   2,
		CustomerName: "Zeta",
		Slug:         "zeta",
		Month:        "2025-12",
		Available:    false,
		Unavailable:  "conexão recusada",
	}
}

func TestOverviewWorkbook(t *testing.T) {
	exporter := exporting.NewService(&stubOverviewer{
		overviews: []*domain.CustomerOverview{availableOverview(), unavailableOverview()},
	})

	f, err := exporter.OverviewWorkbook("2025-12", "")

	assert.NoError(t, err)
	assert.ElementsMatch(t, []string{"Overview", "Plataformas"}, f.GetSheetList())

	cell := func(sheet, ref string) string {
		value, err := f.GetCellValue(sheet, ref)
		assert.NoError(t, err)
		return value
	}

	assert.Equal(t, "Cliente", cell("Overview", "A1"))
	assert.Equal(t, "Status", cell("Overview", "J1"))

	assert.Equal(t, "Pelikan", cell("Overview", "A2"))
	assert.Equal(t, "2025-12", cell("Overview", "B2"))
	assert.Equal(t, "2", cell("Overview", "C2"))
	assert.Equal(t, "150", cell("Overview", "D2"))
	assert.Equal(t, "230", cell("Overview", "E2"))
	assert.Equal(t, "18", cell("Overview", "F2"))
	assert.Equal(t, "1250", cell("Overview", "G2"))
	assert.Equal(t, "50", cell("Overview", "H2"))
	assert.Equal(t, "150.50", cell("Overview", "I2"))
	assert.Equal(t, "ok", cell("Overview", "J2"))

	// Cliente indisponível aparece com o motivo, nunca some da planilha
	assert.Equal(t, "Zeta", cell("Overview", "A3"))
	assert.Equal(t, "—", cell("Overview", "C3"))
	assert.Equal(t, "indisponível: conexão recusada", cell("Overview", "J3"))

	assert.Equal(t, "facebook", cell("Plataformas", "C2"))
	assert.Equal(t, "15", cell("Plataformas", "H2"))
	assert.Equal(t, "1", cell("Plataformas", "J2"))
	// Facebook não fornece salvamentos; Instagram não fornece compartilhamentos
	assert.Equal(t, "—", cell("Plataformas", "K2"))
	assert.Equal(t, "instagram", cell("Plataformas", "C3"))
	assert.Equal(t, "—", cell("Plataformas", "J3"))
	assert.Equal(t, "0", cell("Plataformas", "K3"))
	// Sem histórico anterior a variação é o travessão
	assert.Equal(t, "—", cell("Plataformas", "N3"))

	// O cliente indisponível não gera linhas de plataforma
	assert.Equal(t, "", cell("Plataformas", "A4"))
}

func TestOverviewWorkbookErroDoAgregador(t *testing.T) {
	exporter := exporting.NewService(&stubOverviewer{err: errors.New("falha sistêmica")})

	f, err := exporter.OverviewWorkbook("2025-12", "")

	assert.Error(t, err)
	assert.Nil(t, f)
}

func TestSlideDeck(t *testing.T) {
	exporter := exporting.NewService(&stubOverviewer{
		overviews: []*domain.CustomerOverview{availableOverview()},
	})

	deck, err := exporter.SlideDeck("2025-12", "pelikan")

	assert.NoError(t, err)
	assert.Equal(t, "Pelikan", deck.Customer)
	assert.Equal(t, "2025-12", deck.Month)
	assert.Len(t, deck.Sections, 4)

	resumo := deck.Sections[0]
	assert.Equal(t, "Resumo do mês", resumo.Title)
	assert.Equal(t, "18", slideRowValue(t, resumo.Rows, "Interações"))
	assert.Equal(t, "R$ 150.50", slideRowValue(t, resumo.Rows, "Investimento em anúncios"))

	facebook := deck.Sections[1]
	assert.Equal(t, "Facebook", facebook.Title)
	assert.Equal(t, "+50", slideRowValue(t, facebook.Rows, "Variação de seguidores"))

	instagram := deck.Sections[2]
	assert.Equal(t, "—", slideRowValue(t, instagram.Rows, "Variação de seguidores"))

	anuncios := deck.Sections[3]
	assert.Equal(t, "Anúncios", anuncios.Title)
	assert.Equal(t, "R$ 0.75", slideRowValue(t, anuncios.Rows, "CPC"))
	assert.Equal(t, "2.00%", slideRowValue(t, anuncios.Rows, "CTR"))
}

func slideRowValue(t *testing.T, rows []exporting.SlideRow, label string) string {
	t.Helper()

	for _, row := range rows {
		if row.Label == label {
			return row.Value
		}
	}

	t.Fatalf("linha %q não encontrada no slide", label)
	return ""
}

func TestSlideDeckValidacoes(t *testing.T) {
	tests := []struct {
		name       string
		overviewer aggregating.Overviewer
		customer   string
		wantErr    string
	}{
		{
			name:       "Cliente obrigatório",
			overviewer: &stubOverviewer{},
			customer:   "",
			wantErr:    "informe o cliente",
		},
		{
			name:       "Cliente sem overview no mês",
			overviewer: &stubOverviewer{overviews: []*domain.CustomerOverview{}},
			customer:   "fantasma",
			wantErr:    "cliente não encontrado",
		},
		{
			name:       "Overview indisponível não vira slide",
			overviewer: &stubOverviewer{overviews: []*domain.CustomerOverview{unavailableOverview()}},
			customer:   "zeta",
			wantErr:    "overview indisponível",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exporter := exporting.NewService(tt.overviewer)

			deck, err := exporter.SlideDeck("2025-12", tt.customer)

			assert.Error(t, err)
			assert.Nil(t, deck)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestFollowerChart(t *testing.T) {
	exporter := exporting.NewService(&stubOverviewer{
		report: &domain.FollowerGrowthReport{
			Summary: []*domain.MonthlySummary{
				{Month: "2025-11", EndFollowers: 550, NetChange: 50, HasPrevData: true},
				{Month: "2025-12", EndFollowers: 605, NetChange: 55, HasPrevData: true},
			},
		},
	})

	chart, err := exporter.FollowerChart(&aggregating.GrowthParams{
		FromMonth:    "2025-11",
		ToMonth:      "2025-12",
		CustomerSlug: "herlitz",
	})

	assert.NoError(t, err)
	assert.Equal(t, []string{"2025-11", "2025-12"}, chart.Labels)
	assert.Len(t, chart.Series, 2)
	assert.Equal(t, "Seguidores", chart.Series[0].Name)
	assert.Equal(t, []float64{550, 605}, chart.Series[0].Values)
	assert.Equal(t, "Variação líquida", chart.Series[1].Name)
	assert.Equal(t, []float64{50, 55}, chart.Series[1].Values)
}
