package domain

// PlatformCampaign é uma campanha ativa existente na plataforma, usada para
// vincular directions a campanhas reais
type PlatformCampaign struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

// PlatformAdSetParams são os parâmetros de criação de um ad set na
// plataforma. Targeting, lance e cobrança são derivados pela integração
type PlatformAdSetParams struct {
	CampaignID       string    `json:"campaign_id"`
	Name             string    `json:"name"`
	Objective        Objective `json:"objective"`
	DailyBudgetCents int       `json:"daily_budget_cents"`
	StartImmediately bool      `json:"start_immediately"`
	AutoActivate     bool      `json:"auto_activate"`
}
