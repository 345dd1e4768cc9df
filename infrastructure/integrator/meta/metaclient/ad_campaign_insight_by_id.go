package metaclient

import (
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/social-insights-api/infrastructure/integrator/meta/domain"
)

type ResponseAdCampaignInsight struct {
	Data   []metadomain.CampaignInsight `json:"data"`
	Paging metadomain.Paging            `json:"paging"`
}

// GetAdCampaignInsightsByID busca os insights agregados da campanha no
// intervalo [since, until]. Campanha sem entrega no intervalo retorna nil,
// não erro.
func (c *MetaClient) GetAdCampaignInsightsByID(campaignID string, since, until time.Time) (*metadomain.CampaignInsight, error) {
	baseURL := fmt.Sprintf("%s/%s/insights", c.Cfg.Meta.URL, campaignID)

	timeRange := fmt.Sprintf("{\"since\":\"%s\",\"until\":\"%s\"}", since.Format(time.DateOnly), until.Format(time.DateOnly))

	params := url.Values{}
	params.Add("fields", "account_id,account_name,campaign_name,campaign_id,spend,impressions,reach,clicks,actions")
	params.Add("time_range", timeRange)
	params.Add("access_token", c.Cfg.Meta.AccessToken)

	body, err := c.get(baseURL + "?" + params.Encode())
	if err != nil {
		logrus.WithError(err).WithField("campaign_id", campaignID).Error("Erro ao buscar insights da campanha")
		return nil, err
	}

	var response ResponseAdCampaignInsight
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	if len(response.Data) == 0 {
		return nil, nil
	}

	return &response.Data[0], nil
}
