package domain

type AdAccountStatus string

const (
	AdAccountStatusActive   AdAccountStatus = "ACTIVE"
	AdAccountStatusInactive AdAccountStatus = "INACTIVE"
)

// AdAccount é a conta de anúncios do anunciante. MetaToken é a credencial de
// acesso ao vivo à plataforma; contas sem token operam apenas com o cache
type AdAccount struct {
	ID         string          `json:"id"`
	ExternalID string          `json:"external_id"`
	Name       string          `json:"name"`
	Nickname   *string         `json:"nickname"`
	MetaToken  *string         `json:"-"`
	Origin     string          `json:"origin"`
	Status     AdAccountStatus `json:"status"`
}

// HasLiveAccess indica se a conta possui credencial para consultas ao vivo
func (a *AdAccount) HasLiveAccess() bool {
	return a != nil && a.MetaToken != nil && *a.MetaToken != ""
}

type AdAccountResponse struct {
	ID         string          `json:"id"`
	ExternalID string          `json:"external_id"`
	Name       string          `json:"name"`
	Nickname   *string         `json:"nickname"`
	HasToken   bool            `json:"hasToken"`
	Status     AdAccountStatus `json:"status"`
}
