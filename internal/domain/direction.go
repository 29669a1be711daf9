package domain

import (
	"time"
)

// Direction é um agrupamento definido pelo anunciante com campanha própria
// já existente na plataforma, orçamento e CPL alvo
type Direction struct {
	ID                 string    `json:"id"`
	AccountID          string    `json:"account_id"`
	Name               string    `json:"name"`
	ExternalCampaignID string    `json:"external_campaign_id"`
	Objective          Objective `json:"objective"`
	DailyBudgetCents   int       `json:"daily_budget_cents"`
	TargetCPLCents     int       `json:"target_cpl_cents"`
	Active             bool      `json:"active"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// TargetCPL retorna o CPL alvo em unidade monetária principal
func (d *Direction) TargetCPL() float64 {
	if d == nil {
		return 0
	}
	return float64(d.TargetCPLCents) / 100
}

// BudgetConstraints delimita o orçamento disponível para a montagem de uma
// campanha. O escopo pode ser uma direction ou, no formato legado, a conta
// inteira do anunciante
type BudgetConstraints struct {
	AvailableBudgetCents   int    `json:"available_budget_cents"`
	MinAdSetBudgetCents    int    `json:"min_adset_budget_cents"`
	MaxCampaignBudgetCents int    `json:"max_campaign_budget_cents"`
	TargetCPLCents         int    `json:"target_cpl_cents"`
	DirectionID            string `json:"direction_id,omitempty"`
}
