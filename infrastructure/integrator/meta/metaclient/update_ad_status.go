package metaclient

import (
	"fmt"
	"net/url"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-builder-api/internal/domain"
)

// UpdateAdStatus altera o status de um objeto de anúncio (campanha, ad set ou
// anúncio); a Graph API usa o mesmo formato para os três
func (c *MetaClient) UpdateAdStatus(account *domain.AdAccount, objectID, status string) error {
	if err := c.EnsureValidToken(); err != nil {
		return fmt.Errorf("erro ao verificar validade do token: %w", err)
	}

	endpoint := fmt.Sprintf("%s/%s", c.Cfg.Meta.URL, objectID)

	params := url.Values{}
	params.Add("status", status)
	params.Add("access_token", c.accessToken(account))

	if _, err := c.postForm(endpoint, params); err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": account.ID,
			"object_id":  objectID,
			"status":     status,
			"error":      err.Error(),
		}).Error("executor: failed to update object status on platform")
		return err
	}

	return nil
}
