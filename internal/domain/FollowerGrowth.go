package domain

import (
	"github.com/vfg2006/social-insights-api/pkg/utils"
)

// AccountGrowth representa a variação de seguidores de uma conta em um mês.
//
// HasPrevData distingue "não temos histórico anterior" de "o valor anterior
// era zero". Os dois casos eram conflados na origem dos dados; aqui a flag
// acompanha o resultado em todas as camadas para que a apresentação possa
// renderizar "–" em vez de um "+0" enganoso.
type AccountGrowth struct {
	AccountID      string   `json:"account_id"`
	Platform       Platform `json:"platform"`
	DisplayName    string   `json:"display_name,omitempty"`
	StartFollowers int64    `json:"start_followers"`
	EndFollowers   int64    `json:"end_followers"`
	NetChange      int64    `json:"net_change"`
	PercentChange  float64  `json:"percent_change"`
	HasPrevData    bool     `json:"has_prev_data"`
}

// GrowthTotals agrega o crescimento de seguidores de um conjunto de contas.
type GrowthTotals struct {
	StartFollowers int64   `json:"start_followers"`
	EndFollowers   int64   `json:"end_followers"`
	NetChange      int64   `json:"net_change"`
	PercentChange  float64 `json:"percent_change"`
	HasPrevData    bool    `json:"has_prev_data"`
}

// CalculateAccountGrowth calcula a variação de seguidores de uma conta a
// partir dos snapshots resolvidos nos limites do mês. end é o snapshot mais
// recente com data <= último dia do mês alvo; start, o mais recente com data
// <= último dia do mês anterior. Qualquer um dos dois pode ser nil.
func CalculateAccountGrowth(accountID string, platform Platform, start, end *FollowerSnapshot) *AccountGrowth {
	growth := &AccountGrowth{
		AccountID: accountID,
		Platform:  platform,
	}

	if end != nil {
		growth.EndFollowers = end.FollowerCount
	}

	if start == nil {
		// Sem histórico anterior: a variação líquida é zero por convenção,
		// mas somente com a flag desligada — um snapshot anterior com valor
		// zero é dado válido e cai no ramo de baixo.
		growth.HasPrevData = false
		growth.StartFollowers = growth.EndFollowers
		growth.NetChange = 0
		growth.PercentChange = 0
		return growth
	}

	growth.HasPrevData = true
	growth.StartFollowers = start.FollowerCount
	growth.NetChange = growth.EndFollowers - growth.StartFollowers
	growth.PercentChange = utils.SafePercent(float64(growth.NetChange), float64(growth.StartFollowers))

	return growth
}

// CombineGrowth soma elemento a elemento os resultados por conta. A flag
// HasPrevData do agregado é verdadeira se qualquer conta tiver histórico:
// cobertura parcial ainda produz um sinal de tendência utilizável.
func CombineGrowth(items []*AccountGrowth) *GrowthTotals {
	totals := &GrowthTotals{}

	for _, item := range items {
		if item == nil {
			continue
		}

		totals.StartFollowers += item.StartFollowers
		totals.EndFollowers += item.EndFollowers
		totals.NetChange += item.NetChange

		if item.HasPrevData {
			totals.HasPrevData = true
		}
	}

	totals.PercentChange = utils.SafePercent(float64(totals.NetChange), float64(totals.StartFollowers))

	return totals
}
