package metaclient

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/campaign-builder-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/campaign-builder-api/internal/domain"
)

// CreateAdSet cria um ad set dentro da campanha informada e retorna o ID
// gerado. Erros da plataforma são retornados como *metadomain.APIError, com
// código e subcódigo preservados para a política de retry do chamador
func (c *MetaClient) CreateAdSet(account *domain.AdAccount, request *metadomain.AdSetRequest) (string, error) {
	if err := c.EnsureValidToken(); err != nil {
		return "", fmt.Errorf("erro ao verificar validade do token: %w", err)
	}

	endpoint := fmt.Sprintf("%s/act_%s/adsets", c.Cfg.Meta.URL, account.ExternalID)

	targeting, err := json.Marshal(request.Targeting)
	if err != nil {
		return "", fmt.Errorf("erro ao serializar targeting: %w", err)
	}

	params := url.Values{}
	params.Add("name", request.Name)
	params.Add("campaign_id", request.CampaignID)
	params.Add("daily_budget", strconv.Itoa(request.DailyBudgetCents))
	params.Add("billing_event", request.BillingEvent)
	params.Add("optimization_goal", request.OptimizationGoal)
	params.Add("bid_strategy", request.BidStrategy)
	params.Add("status", request.Status)
	params.Add("targeting", string(targeting))
	params.Add("access_token", c.accessToken(account))

	if request.DestinationType != "" {
		params.Add("destination_type", request.DestinationType)
	}

	if request.StartTime != "" {
		params.Add("start_time", request.StartTime)
	}

	if request.PromotedObject != nil {
		promotedObject, err := json.Marshal(request.PromotedObject)
		if err != nil {
			return "", fmt.Errorf("erro ao serializar promoted_object: %w", err)
		}
		params.Add("promoted_object", string(promotedObject))
	}

	body, err := c.postForm(endpoint, params)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id":  account.ID,
			"campaign_id": request.CampaignID,
			"adset_name":  request.Name,
			"error":       err.Error(),
		}).Error("executor: failed to create ad set on platform")
		return "", err
	}

	var response metadomain.CreateObjectResponse
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return "", err
	}

	return response.ID, nil
}
