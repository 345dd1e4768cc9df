package domain

import (
	"github.com/shopspring/decimal"
)

// PostTotals soma as métricas resolvidas dos posts de uma janela mensal.
// Reactions guarda as curtidas (likes) quando a plataforma é o Instagram.
type PostTotals struct {
	Posts       int   `json:"posts"`
	Reach       int64 `json:"reach"`
	Impressions int64 `json:"impressions"`
	Reactions   int64 `json:"reactions"`
	Comments    int64 `json:"comments"`
	Shares      int64 `json:"shares"`
	Saves       int64 `json:"saves"`
	Plays       int64 `json:"plays"`
}

// Add acumula as métricas de um snapshot resolvido. Campos nulos agregam
// como zero; a distinção "campo indisponível" fica na tabela de capacidade
// da plataforma, não no valor.
func (t *PostTotals) Add(snapshot *MetricSnapshot) {
	t.Posts++

	if snapshot == nil {
		// Post nunca observado até o corte: conta como post com métricas zero
		return
	}

	t.Reach += ValueOrZero(snapshot.Reach)
	t.Impressions += ValueOrZero(snapshot.Impressions)
	t.Reactions += ValueOrZero(snapshot.Reactions)
	t.Comments += ValueOrZero(snapshot.Comments)
	t.Shares += ValueOrZero(snapshot.Shares)
	t.Saves += ValueOrZero(snapshot.Saves)
	t.Plays += ValueOrZero(snapshot.Plays)
}

// PlatformStats é o bloco mensal de uma plataforma dentro do overview.
type PlatformStats struct {
	Platform  Platform          `json:"platform"`
	Accounts  int               `json:"accounts"`
	Current   PostTotals        `json:"current"`
	Previous  PostTotals        `json:"previous"`
	Followers GrowthTotals      `json:"followers"`
	Fields    FieldAvailability `json:"fields"`
}

// NewPlatformStats cria um bloco zerado para a plataforma. Clientes sem
// contas na plataforma reportam exatamente este bloco, com HasPrevData=false.
func NewPlatformStats(platform Platform) *PlatformStats {
	return &PlatformStats{
		Platform: platform,
		Fields:   AvailabilityFor(platform),
	}
}

// OverviewTotals é o bloco unificado do overview de um cliente.
type OverviewTotals struct {
	Posts        int             `json:"posts"`
	Reach        int64           `json:"reach"`
	Impressions  int64           `json:"impressions"`
	Interactions int64           `json:"interactions"`
	AdSpend      decimal.Decimal `json:"ad_spend"`
}

// CustomerOverview é a visão mensal consolidada de um cliente. Nunca é
// persistida: é recomputada a cada requisição a partir das tabelas de
// snapshot e do cache de anúncios.
type CustomerOverview struct {
	CustomerID   int64           `json:"customer_id"`
	CustomerName string          `json:"customer_name"`
	Slug         string          `json:"slug"`
	Month        string          `json:"month"`
	Facebook     *PlatformStats  `json:"facebook"`
	Instagram    *PlatformStats  `json:"instagram"`
	Ads          *AdsStats       `json:"ads"`
	Totals       *OverviewTotals `json:"totals"`
	Available    bool            `json:"available"`
	Unavailable  string          `json:"unavailable_reason,omitempty"`
}

// ComputeTotals deriva o bloco de totais dos blocos por plataforma.
//
// A definição de interação é reações + comentários (curtidas + comentários no
// Instagram), excluindo shares, saves e plays. Essa fórmula é a usada nos
// relatórios históricos e não pode mudar sem quebrar comparabilidade.
func (o *CustomerOverview) ComputeTotals() {
	totals := &OverviewTotals{AdSpend: decimal.Zero}

	for _, block := range []*PlatformStats{o.Facebook, o.Instagram} {
		if block == nil {
			continue
		}

		totals.Posts += block.Current.Posts
		totals.Reach += block.Current.Reach
		totals.Impressions += block.Current.Impressions
		totals.Interactions += block.Current.Reactions + block.Current.Comments
	}

	if o.Ads != nil {
		totals.AdSpend = totals.AdSpend.Add(o.Ads.Spend)
	}

	o.Totals = totals
}
