package domain

import "time"

// Post representa uma publicação imutável coletada pela ingestão
type Post struct {
	ID          string    `json:"id"`
	AccountID   string    `json:"account_id"`
	Platform    Platform  `json:"platform"`
	CreatedTime time.Time `json:"created_time"`
	Body        string    `json:"body,omitempty"`
	MediaType   string    `json:"media_type,omitempty"`
	Permalink   string    `json:"permalink,omitempty"`
}
