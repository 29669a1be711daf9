package metaclient

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/campaign-builder-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/campaign-builder-api/internal/domain"
)

// CreateCampaign cria uma campanha na conta e retorna o ID gerado
func (c *MetaClient) CreateCampaign(account *domain.AdAccount, request *metadomain.CreateCampaignRequest) (string, error) {
	if err := c.EnsureValidToken(); err != nil {
		return "", fmt.Errorf("erro ao verificar validade do token: %w", err)
	}

	endpoint := fmt.Sprintf("%s/act_%s/campaigns", c.Cfg.Meta.URL, account.ExternalID)

	specialAdCategories, err := json.Marshal(request.SpecialAdCategories)
	if err != nil {
		return "", fmt.Errorf("erro ao serializar special_ad_categories: %w", err)
	}

	params := url.Values{}
	params.Add("name", request.Name)
	params.Add("objective", request.Objective)
	params.Add("status", request.Status)
	params.Add("buying_type", request.BuyingType)
	params.Add("special_ad_categories", string(specialAdCategories))
	params.Add("access_token", c.accessToken(account))

	body, err := c.postForm(endpoint, params)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id":    account.ID,
			"campaign_name": request.Name,
			"error":         err.Error(),
		}).Error("executor: failed to create campaign on platform")
		return "", err
	}

	var response metadomain.CreateObjectResponse
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return "", err
	}

	return response.ID, nil
}
