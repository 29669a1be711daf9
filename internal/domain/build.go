package domain

// BuildCampaignRequest é a requisição de montagem automática de campanha
type BuildCampaignRequest struct {
	AccountID    string    `json:"-"`
	Objective    Objective `json:"objective"`
	DirectionID  string    `json:"direction_id,omitempty"`
	UserContext  string    `json:"user_context,omitempty"`
	ContextLimit int       `json:"context_limit,omitempty"`
}

// PauseUnderperformersRequest delimita a varredura de pausa de uma conta.
// A direction, quando informada, fornece o CPL alvo da pontuação
type PauseUnderperformersRequest struct {
	AccountID   string `json:"-"`
	DirectionID string `json:"direction_id,omitempty"`
}

// PauseSummary resume a varredura de pausa: quantos criativos foram
// pontuados, quais foram pausados e quantos anúncios a pausa alcançou
type PauseSummary struct {
	Scored          int      `json:"scored"`
	PausedCreatives []string `json:"paused_creatives"`
	PausedAds       int      `json:"paused_ads"`
}

// BuildCampaignResponse resume o plano aceito e o resultado da execução.
// PartialFailure fica verdadeiro quando alguma operação criou menos anúncios
// do que o solicitado
type BuildCampaignResponse struct {
	IdempotencyKey string             `json:"idempotency_key,omitempty"`
	Plan           *CampaignActionPlan `json:"plan"`
	Results        []*OperationResult `json:"results"`
	PartialFailure bool               `json:"partial_failure"`
}
