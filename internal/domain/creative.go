package domain

import (
	"time"
)

type RiskLevel string

const (
	RiskLevelLow      RiskLevel = "low"
	RiskLevelMedium   RiskLevel = "medium"
	RiskLevelHigh     RiskLevel = "high"
	RiskLevelCritical RiskLevel = "critical"
)

// AdEaterSignal marca um criativo que consome orçamento sem retorno
// proporcional. A prioridade orienta a ordem de pausa
type AdEaterSignal struct {
	Priority string `json:"priority"` // critical, high, medium
	Reason   string `json:"reason"`
}

// FatigueSignal indica fadiga da audiência: frequência média alta na janela
// de 7 dias ou queda acentuada do CTR entre as janelas de 7 e 3 dias
type FatigueSignal struct {
	Frequency      float64 `json:"frequency"`
	CTRDeclinePct  float64 `json:"ctr_decline_pct"`
	Recommendation string  `json:"recommendation"` // replace, urgent_replace
}

// CreativeScoring é o bloco opcional de pontuação calculado a partir do
// histórico de performance do criativo
type CreativeScoring struct {
	RiskScore      int            `json:"risk_score"`
	RiskLevel      RiskLevel      `json:"risk_level"`
	CreativeScore  float64        `json:"creative_score"`
	Trend          string         `json:"trend"` // improving, stable, declining
	Recommendation string         `json:"recommendation"`
	AdEater        *AdEaterSignal `json:"ad_eater,omitempty"`
	Fatigue        *FatigueSignal `json:"fatigue,omitempty"`
}

// Creative representa um criativo reutilizável do anunciante. Os IDs de
// plataforma são mantidos por objetivo, pois o Meta exige um creative
// distinto para cada tipo de campanha
type Creative struct {
	ID          string               `json:"id"`
	AccountID   string               `json:"account_id"`
	Title       string               `json:"title"`
	PlatformIDs map[Objective]string `json:"platform_ids"`
	Scoring     *CreativeScoring     `json:"scoring,omitempty"`
	Performance *PerformanceMetrics  `json:"performance,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
}

// PlatformIDForObjective retorna o ID do criativo na plataforma para o
// objetivo informado ("" quando o criativo não foi publicado para esse objetivo)
func (c *Creative) PlatformIDForObjective(objective Objective) string {
	if c.PlatformIDs == nil {
		return ""
	}
	return c.PlatformIDs[objective]
}

func (c *Creative) HasPerformance() bool {
	return c != nil && c.Performance != nil
}
