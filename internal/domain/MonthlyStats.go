package domain

import (
	"github.com/shopspring/decimal"
)

// MonthlyStats é o resumo achatado de um mês, para um cliente específico ou
// para todos ("all"). Derivado dos overviews, nunca persistido.
type MonthlyStats struct {
	Month             string          `json:"month"`
	Customer          string          `json:"customer"`
	Customers         int             `json:"customers"`
	Posts             int             `json:"posts"`
	Reach             int64           `json:"reach"`
	Impressions       int64           `json:"impressions"`
	Interactions      int64           `json:"interactions"`
	Followers         int64           `json:"followers"`
	FollowerNetChange int64           `json:"follower_net_change"`
	HasPrevData       bool            `json:"has_prev_data"`
	AdSpend           decimal.Decimal `json:"ad_spend"`
	AdClicks          int64           `json:"ad_clicks"`
	AdImpressions     int64           `json:"ad_impressions"`
}

// MonthlySummary é uma linha mensal da série de crescimento de seguidores.
type MonthlySummary struct {
	Month          string  `json:"month"`
	StartFollowers int64   `json:"start_followers"`
	EndFollowers   int64   `json:"end_followers"`
	NetChange      int64   `json:"net_change"`
	PercentChange  float64 `json:"percent_change"`
	HasPrevData    bool    `json:"has_prev_data"`
}

// AccountDetail é a linha por conta e mês do detalhamento de crescimento.
type AccountDetail struct {
	Month string `json:"month"`
	AccountGrowth
}

// FollowerGrowthReport é a resposta da operação de crescimento de seguidores.
type FollowerGrowthReport struct {
	Summary []*MonthlySummary `json:"summary"`
	Details []*AccountDetail  `json:"details"`
}
