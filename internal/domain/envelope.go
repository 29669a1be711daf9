package domain

// AtomicOperation é uma instrução independente de "criar campanha/ad set com
// criativos". Cada operação pode ser executada isoladamente pelo executor
type AtomicOperation struct {
	CampaignName       string    `json:"campaign_name"`
	Objective          Objective `json:"objective"`
	CreativeIDs        []string  `json:"user_creative_ids"`
	DailyBudgetCents   int       `json:"daily_budget_cents"`
	UseDefaultSettings bool      `json:"use_default_settings"`
	AutoActivate       bool      `json:"auto_activate"`
}

// ExecutionEnvelope agrupa as operações atômicas de uma tentativa de montagem
// sob uma única chave de idempotência, para que uma reenvio da submissão seja
// reconhecido como a mesma requisição lógica
type ExecutionEnvelope struct {
	IdempotencyKey string             `json:"idempotency_key"`
	Operations     []*AtomicOperation `json:"operations"`
}

// CreatedAd é um anúncio criado com sucesso na plataforma
type CreatedAd struct {
	AdID               string `json:"ad_id"`
	CreativeID         string `json:"creative_id"`
	PlatformCreativeID string `json:"platform_creative_id"`
}

// OperationResult é o resultado da execução de uma operação atômica.
// RequestedAds maior que len(Ads) sinaliza falha parcial; anúncios já
// criados no lote não são desfeitos
type OperationResult struct {
	CampaignName string       `json:"campaign_name"`
	CampaignID   string       `json:"campaign_id,omitempty"`
	AdSetID      string       `json:"adset_id,omitempty"`
	Ads          []*CreatedAd `json:"ads"`
	RequestedAds int          `json:"requested_ads"`
	Error        string       `json:"error,omitempty"`
}

// PartialFailure indica se a operação criou menos anúncios do que o solicitado
func (r *OperationResult) PartialFailure() bool {
	return r != nil && r.Error == "" && len(r.Ads) < r.RequestedAds
}
