package metaclient

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/social-insights-api/infrastructure/integrator/meta/domain"
)

type ResponseAdCampaign struct {
	Data   []metadomain.Campaign `json:"data"`
	Paging metadomain.Paging     `json:"paging"`
}

// GetAdCampaignsByAccountID lista as campanhas ativas da conta de anúncios,
// seguindo a paginação até o fim.
func (c *MetaClient) GetAdCampaignsByAccountID(accountID string) ([]metadomain.Campaign, error) {
	baseURL := fmt.Sprintf("%s/act_%s/campaigns", c.Cfg.Meta.URL, accountID)

	params := url.Values{}
	params.Add("fields", "id,name,status")
	params.Add("effective_status", "['ACTIVE']")
	params.Add("limit", "100")
	params.Add("access_token", c.Cfg.Meta.AccessToken)

	requestURL := baseURL + "?" + params.Encode()

	campaigns := make([]metadomain.Campaign, 0)
	for requestURL != "" {
		body, err := c.get(requestURL)
		if err != nil {
			logrus.WithError(err).WithField("account_id", accountID).Error("Erro ao listar campanhas da conta")
			return nil, err
		}

		var response ResponseAdCampaign
		if err := json.Unmarshal(body, &response); err != nil {
			logrus.WithError(err).Error("Erro ao decodificar JSON")
			return nil, err
		}

		campaigns = append(campaigns, response.Data...)
		requestURL = response.Paging.Next
	}

	return campaigns, nil
}
