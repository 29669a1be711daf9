package domain

import (
	"time"
)

// PerformanceMetrics contém as métricas agregadas de um criativo para uma
// data de referência. Nunca é persistido por este serviço; é recalculado a
// cada resolução a partir das linhas brutas
type PerformanceMetrics struct {
	Impressions int      `json:"impressions"`
	Reach       int      `json:"reach"`
	Spend       float64  `json:"spend"`
	Clicks      int      `json:"clicks"`
	LinkClicks  int      `json:"link_clicks"`
	Leads       int      `json:"leads"`
	Frequency   float64  `json:"frequency"`
	CTR         float64  `json:"ctr"`
	CPM         float64  `json:"cpm"`
	CPL         *float64 `json:"cpl"`
	Date        string   `json:"date"`
}

// HasCPL indica se o criativo gerou ao menos um lead no período
func (m *PerformanceMetrics) HasCPL() bool {
	return m != nil && m.CPL != nil
}

// CreativeMetricRow é uma linha bruta de métricas de um único anúncio da
// plataforma que veicula o criativo, seja vinda do cache datado ou da
// consulta ao vivo. A agregação soma todas as linhas de um mesmo criativo
type CreativeMetricRow struct {
	ID           int64     `json:"id"`
	AccountID    string    `json:"account_id"`
	CreativeID   string    `json:"creative_id"`
	ExternalAdID string    `json:"external_ad_id"`
	Date         time.Time `json:"date"`
	Impressions  int       `json:"impressions"`
	Reach        int       `json:"reach"`
	Spend        float64   `json:"spend"`
	Clicks       int       `json:"clicks"`
	LinkClicks   int       `json:"link_clicks"`
	Leads        int       `json:"leads"`
	Frequency    float64   `json:"frequency"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// InsightFilters delimita a janela de datas das consultas de insights
type InsightFilters struct {
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

// TrailingMetrics resume as janelas móveis de 3 e 7 dias usadas pela
// pontuação de risco e pela detecção de fadiga
type TrailingMetrics struct {
	Spend3d        float64 `json:"spend_3d"`
	Leads3d        int     `json:"leads_3d"`
	Impressions3d  int     `json:"impressions_3d"`
	Clicks3d       int     `json:"clicks_3d"`
	Spend7d        float64 `json:"spend_7d"`
	Leads7d        int     `json:"leads_7d"`
	Impressions7d  int     `json:"impressions_7d"`
	Clicks7d       int     `json:"clicks_7d"`
	FrequencyAvg7d float64 `json:"frequency_avg_7d"`
}

// CPL3d retorna o CPL da janela de 3 dias (nil sem leads)
func (t *TrailingMetrics) CPL3d() *float64 {
	if t == nil || t.Leads3d == 0 {
		return nil
	}
	cpl := t.Spend3d / float64(t.Leads3d)
	return &cpl
}

// CPL7d retorna o CPL da janela de 7 dias (nil sem leads)
func (t *TrailingMetrics) CPL7d() *float64 {
	if t == nil || t.Leads7d == 0 {
		return nil
	}
	cpl := t.Spend7d / float64(t.Leads7d)
	return &cpl
}

// CTR3d retorna o CTR percentual da janela de 3 dias (nil sem impressões)
func (t *TrailingMetrics) CTR3d() *float64 {
	if t == nil || t.Impressions3d == 0 {
		return nil
	}
	ctr := float64(t.Clicks3d) / float64(t.Impressions3d) * 100
	return &ctr
}

// CTR7d retorna o CTR percentual da janela de 7 dias (nil sem impressões)
func (t *TrailingMetrics) CTR7d() *float64 {
	if t == nil || t.Impressions7d == 0 {
		return nil
	}
	ctr := float64(t.Clicks7d) / float64(t.Impressions7d) * 100
	return &ctr
}
