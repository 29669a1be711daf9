package metaclient

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/campaign-builder-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/campaign-builder-api/internal/domain"
)

// CreateAd cria um anúncio no ad set informado e retorna o ID gerado
func (c *MetaClient) CreateAd(account *domain.AdAccount, request *metadomain.AdRequest) (string, error) {
	if err := c.EnsureValidToken(); err != nil {
		return "", fmt.Errorf("erro ao verificar validade do token: %w", err)
	}

	endpoint := fmt.Sprintf("%s/act_%s/ads", c.Cfg.Meta.URL, account.ExternalID)

	creative, err := json.Marshal(request.Creative)
	if err != nil {
		return "", fmt.Errorf("erro ao serializar creative: %w", err)
	}

	params := url.Values{}
	params.Add("name", request.Name)
	params.Add("adset_id", request.AdSetID)
	params.Add("status", request.Status)
	params.Add("creative", string(creative))
	params.Add("access_token", c.accessToken(account))

	body, err := c.postForm(endpoint, params)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": account.ID,
			"adset_id":   request.AdSetID,
			"ad_name":    request.Name,
			"error":      err.Error(),
		}).Error("executor: failed to create ad on platform")
		return "", err
	}

	var response metadomain.CreateObjectResponse
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return "", err
	}

	return response.ID, nil
}
