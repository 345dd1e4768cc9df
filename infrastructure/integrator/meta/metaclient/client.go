package metaclient

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	metadomain "github.com/vfg2006/social-insights-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/social-insights-api/internal/config"
)

type Client interface {
	GetAdCampaignsByAccountID(accountID string) ([]metadomain.Campaign, error)
	GetAdCampaignInsightsByID(campaignID string, since, until time.Time) (*metadomain.CampaignInsight, error)
}

// MetaClient fala com a Graph API usando o token de longa duração da
// configuração. O token é de sistema, renovado fora do processo; aqui só
// detectamos a expiração e devolvemos um erro acionável.
type MetaClient struct {
	Cfg        *config.Config
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &MetaClient{
		Cfg: cfg,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// handleResponse lê o corpo e traduz erros da Graph API. Respostas de token
// expirado viram um erro explícito para o operador trocar o token.
func (c *MetaClient) handleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler a resposta da API do Meta: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		errorResponse := &metadomain.ErrorResponse{}
		if err := json.Unmarshal(body, errorResponse); err == nil {
			if errorResponse.IsTokenExpired() {
				return nil, fmt.Errorf("token de acesso do Meta expirado, renove a credencial: %s", errorResponse.Error.Message)
			}
			return nil, fmt.Errorf("erro da API do Meta (código %d): %s", errorResponse.Error.Code, errorResponse.Error.Message)
		}
		return nil, fmt.Errorf("erro da API do Meta: status %d", resp.StatusCode)
	}

	return body, nil
}

func (c *MetaClient) get(url string) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao fazer a requisição: %w", err)
	}
	defer resp.Body.Close()

	return c.handleResponse(resp)
}
