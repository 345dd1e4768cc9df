package metadomain

import (
	"strconv"

	"github.com/sirupsen/logrus"
)

type Campaign struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

type Cursors struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

type Paging struct {
	Cursors Cursors `json:"cursors"`
	Next    string  `json:"next"`
}

type Action struct {
	ActionType string `json:"action_type"`
	Value      string `json:"value"`
}

// CampaignInsight é a resposta bruta da Graph API para os insights de uma
// campanha em um intervalo. Os números chegam como strings e são convertidos
// na camada do integrador.
type CampaignInsight struct {
	AccountID    string   `json:"account_id"`
	AccountName  string   `json:"account_name"`
	Actions      []Action `json:"actions"`
	CampaignID   string   `json:"campaign_id"`
	CampaignName string   `json:"campaign_name"`
	Clicks       string   `json:"clicks"`
	DateStart    string   `json:"date_start"`
	DateStop     string   `json:"date_stop"`
	Impressions  string   `json:"impressions"`
	Reach        string   `json:"reach"`
	Spend        string   `json:"spend"`
}

// Tipos de ação contados como conversão nos relatórios mensais.
var conversionActionTypes = map[string]bool{
	"purchase":                          true,
	"lead":                              true,
	"complete_registration":             true,
	"offsite_conversion.fb_pixel_lead":  true,
	"onsite_conversion.messaging_first_reply": true,
}

// Conversions soma as ações do tipo conversão reportadas pela API.
func (c *CampaignInsight) Conversions() int64 {
	var total int64

	for i := range c.Actions {
		action := c.Actions[i]
		if !conversionActionTypes[action.ActionType] {
			continue
		}

		value, err := strconv.ParseInt(action.Value, 10, 64)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"action_type":  action.ActionType,
				"action_value": action.Value,
			}).Warn("insights: erro ao converter valor da ação")
			continue
		}

		total += value
	}

	return total
}
