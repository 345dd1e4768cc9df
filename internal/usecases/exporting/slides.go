package exporting

import (
	"fmt"

	"github.com/vfg2006/social-insights-api/internal/domain"
	"github.com/vfg2006/social-insights-api/internal/usecases/aggregating"
)

// SlideRow é uma linha rótulo/valor consumida pelo renderizador de
// apresentações, que roda fora do processo. Os valores já chegam formatados;
// o renderizador não aplica nenhuma regra de negócio.
type SlideRow struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// SlideSection agrupa as linhas de um bloco do slide (uma plataforma, ou o
// bloco de anúncios).
type SlideSection struct {
	Title string     `json:"title"`
	Rows  []SlideRow `json:"rows"`
}

// SlideDeck é a projeção de um overview mensal em dados de slide.
type SlideDeck struct {
	Customer string         `json:"customer"`
	Month    string         `json:"month"`
	Sections []SlideSection `json:"sections"`
}

// ChartSeries é a projeção de uma série temporal em rótulos e valores prontos
// para um gráfico de linhas.
type ChartSeries struct {
	Labels []string `json:"labels"`
	Series []Series `json:"series"`
}

type Series struct {
	Name   string    `json:"name"`
	Values []float64 `json:"values"`
}

// SlideDeck projeta o overview do cliente no mês em seções de slide.
func (s *Service) SlideDeck(month, customerSlug string) (*SlideDeck, error) {
	if customerSlug == "" {
		return nil, fmt.Errorf("informe o cliente da apresentação")
	}

	overviews, err := s.overviewer.GetCustomerOverview(month, customerSlug)
	if err != nil {
		return nil, err
	}

	if len(overviews) == 0 {
		return nil, fmt.Errorf("cliente não encontrado: %s", customerSlug)
	}

	overview := overviews[0]
	if !overview.Available {
		return nil, fmt.Errorf("overview indisponível para %s em %s: %s", customerSlug, month, overview.Unavailable)
	}

	deck := &SlideDeck{
		Customer: overview.CustomerName,
		Month:    overview.Month,
		Sections: []SlideSection{
			{
				Title: "Resumo do mês",
				Rows: []SlideRow{
					{Label: "Posts publicados", Value: fmt.Sprint(overview.Totals.Posts)},
					{Label: "Alcance", Value: fmt.Sprint(overview.Totals.Reach)},
					{Label: "Impressões", Value: fmt.Sprint(overview.Totals.Impressions)},
					{Label: "Interações", Value: fmt.Sprint(overview.Totals.Interactions)},
					{Label: "Investimento em anúncios", Value: "R$ " + overview.Totals.AdSpend.StringFixed(2)},
				},
			},
			platformSection("Facebook", overview.Facebook),
			platformSection("Instagram", overview.Instagram),
			adsSection(overview.Ads),
		},
	}

	return deck, nil
}

func platformSection(title string, block *domain.PlatformStats) SlideSection {
	section := SlideSection{Title: title}
	if block == nil {
		return section
	}

	section.Rows = []SlideRow{
		{Label: "Posts", Value: fmt.Sprint(block.Current.Posts)},
		{Label: "Alcance", Value: fmt.Sprint(block.Current.Reach)},
		{Label: "Reações", Value: fmt.Sprint(block.Current.Reactions)},
		{Label: "Comentários", Value: fmt.Sprint(block.Current.Comments)},
		{Label: "Seguidores", Value: fmt.Sprint(block.Followers.EndFollowers)},
		{Label: "Variação de seguidores", Value: netChangeLabel(&block.Followers)},
	}

	return section
}

func adsSection(ads *domain.AdsStats) SlideSection {
	section := SlideSection{Title: "Anúncios"}
	if ads == nil || ads.Campaigns == 0 {
		section.Rows = []SlideRow{{Label: "Campanhas ativas", Value: "0"}}
		return section
	}

	section.Rows = []SlideRow{
		{Label: "Campanhas ativas", Value: fmt.Sprint(ads.Campaigns)},
		{Label: "Investimento", Value: "R$ " + ads.Spend.StringFixed(2)},
		{Label: "Impressões", Value: fmt.Sprint(ads.Impressions)},
		{Label: "Cliques", Value: fmt.Sprint(ads.Clicks)},
		{Label: "CPC", Value: "R$ " + ads.CPC.StringFixed(2)},
		{Label: "CTR", Value: fmt.Sprintf("%.2f%%", ads.CTR)},
	}

	return section
}

// netChangeLabel formata a variação líquida de seguidores. Sem histórico
// anterior a saída é o travessão, nunca um "+0" enganoso.
func netChangeLabel(totals *domain.GrowthTotals) string {
	if !totals.HasPrevData {
		return notAvailable
	}
	return fmt.Sprintf("%+d", totals.NetChange)
}

// FollowerChart projeta a série mensal de seguidores em rótulos e duas
// séries: total de seguidores no fim de cada mês e variação líquida.
func (s *Service) FollowerChart(params *aggregating.GrowthParams) (*ChartSeries, error) {
	report, err := s.overviewer.GetFollowerGrowth(params)
	if err != nil {
		return nil, err
	}

	chart := &ChartSeries{
		Labels: make([]string, 0, len(report.Summary)),
		Series: []Series{
			{Name: "Seguidores", Values: make([]float64, 0, len(report.Summary))},
			{Name: "Variação líquida", Values: make([]float64, 0, len(report.Summary))},
		},
	}

	for _, row := range report.Summary {
		chart.Labels = append(chart.Labels, row.Month)
		chart.Series[0].Values = append(chart.Series[0].Values, float64(row.EndFollowers))
		chart.Series[1].Values = append(chart.Series[1].Values, float64(row.NetChange))
	}

	return chart, nil
}
