package domain

import "time"

// FollowerSnapshot representa a contagem de seguidores de uma conta observada
// em um dia de calendário. No máximo um valor autoritativo por (conta, dia);
// quando há duplicatas na origem, a última vence.
type FollowerSnapshot struct {
	AccountID     string    `json:"account_id"`
	Platform      Platform  `json:"platform"`
	SnapshotDate  time.Time `json:"snapshot_date"`
	FollowerCount int64     `json:"follower_count"`
}
