package domain

// ActionType identifica a variante do plano de ação produzido pelo motor
// de decisão. As duas primeiras são o formato legado (campanha nova); as
// quatro últimas operam dentro da campanha existente de uma direction
type ActionType string

const (
	ActionCreateCampaignWithCreative     ActionType = "CreateCampaignWithCreative"
	ActionCreateCampaignWithMultiAdsets  ActionType = "CreateCampaignWithMultipleAdsets"
	ActionCreateDirectionAdset           ActionType = "CreateDirectionAdset"
	ActionCreateDirectionMultipleAdsets  ActionType = "CreateDirectionMultipleAdsets"
	ActionUseDirectionExistingAdset      ActionType = "UseDirectionExistingAdset"
	ActionUseDirectionExistingAdsetMulti ActionType = "UseDirectionExistingAdsetMultiple"
)

// KnownActionTypes é o conjunto de variantes aceitas na validação
var KnownActionTypes = map[ActionType]struct{}{
	ActionCreateCampaignWithCreative:     {},
	ActionCreateCampaignWithMultiAdsets:  {},
	ActionCreateDirectionAdset:           {},
	ActionCreateDirectionMultipleAdsets:  {},
	ActionUseDirectionExistingAdset:      {},
	ActionUseDirectionExistingAdsetMulti: {},
}

// IsDirectionScoped indica se a variante opera sobre a campanha existente de
// uma direction em vez de criar uma campanha nova
func (t ActionType) IsDirectionScoped() bool {
	switch t {
	case ActionCreateDirectionAdset,
		ActionCreateDirectionMultipleAdsets,
		ActionUseDirectionExistingAdset,
		ActionUseDirectionExistingAdsetMulti:
		return true
	}
	return false
}

// IsMultiAdset indica se a variante carrega uma lista de ad sets
func (t ActionType) IsMultiAdset() bool {
	switch t {
	case ActionCreateCampaignWithMultiAdsets,
		ActionCreateDirectionMultipleAdsets,
		ActionUseDirectionExistingAdsetMulti:
		return true
	}
	return false
}

type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// AdSetSpec descreve um ad set solicitado pelo plano. ExistingAdSetID só é
// usado nas variantes que reaproveitam ad sets da direction
type AdSetSpec struct {
	Name             string   `json:"name,omitempty"`
	ExistingAdSetID  string   `json:"existing_adset_id,omitempty"`
	CreativeIDs      []string `json:"user_creative_ids"`
	DailyBudgetCents int      `json:"daily_budget_cents"`
}

// SelectedCreative registra a justificativa do motor para cada criativo
type SelectedCreative struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Reason string `json:"reason"`
}

// ActionParams carrega os parâmetros da variante. Campos não usados pela
// variante ficam zerados; a validação garante os obrigatórios
type ActionParams struct {
	CampaignName       string      `json:"campaign_name,omitempty"`
	DirectionID        string      `json:"direction_id,omitempty"`
	ExistingAdSetID    string      `json:"existing_adset_id,omitempty"`
	Objective          Objective   `json:"objective,omitempty"`
	CreativeIDs        []string    `json:"user_creative_ids,omitempty"`
	DailyBudgetCents   int         `json:"daily_budget_cents,omitempty"`
	AdSets             []AdSetSpec `json:"adsets,omitempty"`
	UseDefaultSettings bool        `json:"use_default_settings,omitempty"`
	AutoActivate       bool        `json:"auto_activate,omitempty"`
}

// CampaignActionPlan é o plano canônico validado, consumido exatamente uma
// vez por requisição de montagem; é executado ou descartado, nunca persistido
type CampaignActionPlan struct {
	Type              ActionType         `json:"type"`
	Params            ActionParams       `json:"params"`
	SelectedCreatives []SelectedCreative `json:"selected_creatives,omitempty"`
	Reasoning         string             `json:"reasoning,omitempty"`
	EstimatedCPLCents int                `json:"estimated_cpl_cents,omitempty"`
	Confidence        Confidence         `json:"confidence,omitempty"`
}
