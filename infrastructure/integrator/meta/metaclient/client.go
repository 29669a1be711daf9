package metaclient

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	metadomain "github.com/vfg2006/campaign-builder-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/campaign-builder-api/internal/config"
	"github.com/vfg2006/campaign-builder-api/internal/domain"
)

type Client interface {
	GetAdInsightsByCreative(account *domain.AdAccount, platformCreativeID string, filters *domain.InsightFilters) ([]metadomain.AdInsight, error)
	GetAdCampaignsByAccountID(account *domain.AdAccount) ([]metadomain.Campaign, error)
	CreateCampaign(account *domain.AdAccount, request *metadomain.CreateCampaignRequest) (string, error)
	CreateAdSet(account *domain.AdAccount, request *metadomain.AdSetRequest) (string, error)
	CreateAd(account *domain.AdAccount, request *metadomain.AdRequest) (string, error)
	UpdateAdStatus(account *domain.AdAccount, adID, status string) error
	RefreshToken() error
	EnsureValidToken() error
	HandleResponse(resp *http.Response) ([]byte, error)
}

type MetaClient struct {
	Cfg          *config.Config
	TokenManager *TokenManager
}

func NewClient(cfg *config.Config, tokenManager *TokenManager) Client {
	client := &MetaClient{
		Cfg:          cfg,
		TokenManager: tokenManager,
	}
	return client
}

// RefreshToken obtém um novo token de longa duração
func (c *MetaClient) RefreshToken() error {
	return c.TokenManager.RefreshToken()
}

// EnsureValidToken verifica se o token atual é válido e tenta renová-lo se necessário
func (c *MetaClient) EnsureValidToken() error {
	return c.TokenManager.EnsureValidToken()
}

// HandleResponse manipula a resposta HTTP e verifica erros de token expirado
func (c *MetaClient) HandleResponse(resp *http.Response) ([]byte, error) {
	return c.TokenManager.HandleResponse(resp)
}

// accessToken devolve a credencial da conta quando ela possui token próprio;
// caso contrário usa o token global do serviço
func (c *MetaClient) accessToken(account *domain.AdAccount) string {
	if account.HasLiveAccess() {
		return *account.MetaToken
	}
	return c.Cfg.Meta.AccessToken
}

// postForm envia um POST form-encoded para a Graph API e converte respostas
// não-2xx em *metadomain.APIError, preservando código e subcódigo
func (c *MetaClient) postForm(endpoint string, params url.Values) ([]byte, error) {
	resp, err := http.PostForm(endpoint, params)
	if err != nil {
		return nil, fmt.Errorf("erro ao fazer a requisição: %w", err)
	}
	defer resp.Body.Close()

	body, err := readBody(resp)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return body, nil
	}

	apiErr := &metadomain.APIError{StatusCode: resp.StatusCode}
	var errorResp metadomain.ErrorResponse
	if parseErr := json.Unmarshal(body, &errorResp); parseErr == nil {
		apiErr.Details = errorResp.Error
	} else {
		apiErr.Details = metadomain.ErrorDetails{Message: strings.TrimSpace(string(body))}
	}

	return nil, apiErr
}

func readBody(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler resposta: %w", err)
	}
	return body, nil
}
