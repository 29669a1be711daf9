package domain

// CandidateCreative é a visão de um criativo enviada ao motor de decisão.
// Os IDs de plataforma são removidos de propósito: o motor escolhe por ID
// interno e a resolução de plataforma acontece apenas na execução
type CandidateCreative struct {
	ID             string              `json:"id"`
	Title          string              `json:"title"`
	Performance    *PerformanceMetrics `json:"performance,omitempty"`
	Scoring        *CreativeScoring    `json:"scoring,omitempty"`
	HasPerformance bool                `json:"has_performance"`
}

// ContextStats são as estatísticas agregadas calculadas sobre o conjunto
// completo de criativos, antes do truncamento do contexto
type ContextStats struct {
	WithPerformance    int      `json:"with_performance"`
	WithoutPerformance int      `json:"without_performance"`
	MeanCPL            *float64 `json:"mean_cpl"`
	MedianCTR          *float64 `json:"median_ctr"`
	MeanCPM            *float64 `json:"mean_cpm"`
	MinCPL             *float64 `json:"min_cpl"`
	MaxCPL             *float64 `json:"max_cpl"`
}

// BudgetView expressa o orçamento nas duas unidades, pois o motor de decisão
// raciocina melhor em unidade principal mas o contrato de saída é em centavos
type BudgetView struct {
	AvailableBudgetCents int     `json:"available_budget_cents"`
	AvailableBudget      float64 `json:"available_budget"`
	MinAdSetBudgetCents  int     `json:"min_adset_budget_cents"`
	MinAdSetBudget       float64 `json:"min_adset_budget"`
	TargetCPLCents       int     `json:"target_cpl_cents"`
	TargetCPL            float64 `json:"target_cpl"`
}

// DirectionInfo é o resumo da direction enviado no contexto de decisão
type DirectionInfo struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	CampaignID string `json:"campaign_id"`
}

// DecisionContext é o payload limitado enviado ao motor de decisão
type DecisionContext struct {
	Objective   string               `json:"objective"` // grafia do motor de decisão
	Candidates  []*CandidateCreative `json:"candidates"`
	Stats       *ContextStats        `json:"stats"`
	Budget      *BudgetView          `json:"budget"`
	Direction   *DirectionInfo       `json:"direction,omitempty"`
	UserContext string               `json:"user_context,omitempty"`
}
