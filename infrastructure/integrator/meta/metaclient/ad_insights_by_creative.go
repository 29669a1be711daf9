package metaclient

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/campaign-builder-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/campaign-builder-api/internal/domain"
)

type ResponseAdInsights struct {
	Data   []metadomain.AdInsight `json:"data"`
	Paging metadomain.Paging      `json:"paging"`
}

// GetAdInsightsByCreative retorna as linhas de insight (nível anúncio, uma
// linha por anúncio por dia) de todos os anúncios da conta que veiculam o
// criativo informado
func (c *MetaClient) GetAdInsightsByCreative(account *domain.AdAccount, platformCreativeID string, filters *domain.InsightFilters) ([]metadomain.AdInsight, error) {
	// Garantir que o token seja válido antes de fazer a requisição
	if err := c.EnsureValidToken(); err != nil {
		return nil, fmt.Errorf("erro ao verificar validade do token: %w", err)
	}

	baseURL := fmt.Sprintf("%s/act_%s/insights", c.Cfg.Meta.URL, account.ExternalID)

	timeRange := fmt.Sprintf("{\"since\":\"%s\",\"until\":\"%s\"}", filters.StartDate.Format(time.DateOnly), filters.EndDate.Format(time.DateOnly))
	filtering := fmt.Sprintf("[{\"field\":\"ad.creative_id\",\"operator\":\"EQUAL\",\"value\":\"%s\"}]", platformCreativeID)

	params := url.Values{}
	params.Add("level", "ad")
	params.Add("fields", "account_id,ad_id,ad_name,impressions,reach,spend,clicks,inline_link_clicks,frequency,actions")
	params.Add("time_range", timeRange)
	params.Add("time_increment", "1")
	params.Add("filtering", filtering)
	params.Add("limit", "500")
	params.Add("access_token", c.accessToken(account))

	url := baseURL + "?" + params.Encode()

	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, err
	}

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return nil, err
	}
	defer resp.Body.Close()

	// Usar o manipulador de resposta que verifica tokens expirados
	body, err := c.HandleResponse(resp)
	if err != nil {
		// Se o erro indica que o token foi renovado, tentar novamente
		if err.Error() == "token expirado e renovado, por favor tente novamente" {
			return c.GetAdInsightsByCreative(account, platformCreativeID, filters)
		}
		return nil, err
	}

	var response ResponseAdInsights
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	return response.Data, nil
}
