package deciding

import (
	"context"
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-builder-api/internal/config"
	"github.com/vfg2006/campaign-builder-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// DecisionEngine é o colaborador opaco que transforma o contexto de decisão
// em texto livre. O texto deve conter um objeto JSON com o plano ou um objeto
// {error, suggestions}
type DecisionEngine interface {
	GeneratePlan(ctx context.Context, systemInstruction string, payload []byte) (string, error)
}

// DecisionInput reúne tudo o que o contrato de decisão envia ao motor
type DecisionInput struct {
	Objective   domain.Objective
	Candidates  []*domain.Creative
	Stats       *domain.ContextStats
	Budget      *domain.BudgetConstraints
	Direction   *domain.Direction
	UserContext string
}

// Decider constrói a requisição ao motor de decisão e valida a resposta.
// Nenhum plano sai daqui sem passar por toda a máquina de validação; toda
// rejeição é terminal e não gera nenhuma chamada à plataforma
type Decider interface {
	Decide(ctx context.Context, input *DecisionInput) (*domain.CampaignActionPlan, error)
}

type Service struct {
	cfg    *config.Config
	engine DecisionEngine
}

func NewService(cfg *config.Config, engine DecisionEngine) Decider {
	return &Service{
		cfg:    cfg,
		engine: engine,
	}
}

func (s *Service) Decide(ctx context.Context, input *DecisionInput) (*domain.CampaignActionPlan, error) {
	decisionContext := BuildDecisionContext(input)

	payload, err := json.Marshal(decisionContext)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar o contexto de decisão: %w", err)
	}

	rawText, err := s.engine.GeneratePlan(ctx, SystemInstruction(), payload)
	if err != nil {
		return nil, err
	}

	plan, err := s.parseAndValidate(rawText, input)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"objective": string(input.Objective),
			"error":     err.Error(),
		}).Warn("decision: plan rejected by validation")
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"action_type": string(plan.Type),
		"confidence":  string(plan.Confidence),
	}).Info("decision: plan validated")

	return plan, nil
}

// BuildDecisionContext monta o payload limitado: candidatos sem IDs de
// plataforma, orçamento nas duas unidades e objetivo na grafia do motor
func BuildDecisionContext(input *DecisionInput) *domain.DecisionContext {
	candidates := make([]*domain.CandidateCreative, 0, len(input.Candidates))
	for _, creative := range input.Candidates {
		candidates = append(candidates, &domain.CandidateCreative{
			ID:             creative.ID,
			Title:          creative.Title,
			Performance:    creative.Performance,
			Scoring:        creative.Scoring,
			HasPerformance: creative.HasPerformance(),
		})
	}

	decisionContext := &domain.DecisionContext{
		Objective:   input.Objective.EngineName(),
		Candidates:  candidates,
		Stats:       input.Stats,
		UserContext: input.UserContext,
	}

	if input.Budget != nil {
		decisionContext.Budget = &domain.BudgetView{
			AvailableBudgetCents: input.Budget.AvailableBudgetCents,
			AvailableBudget:      float64(input.Budget.AvailableBudgetCents) / 100,
			MinAdSetBudgetCents:  input.Budget.MinAdSetBudgetCents,
			MinAdSetBudget:       float64(input.Budget.MinAdSetBudgetCents) / 100,
			TargetCPLCents:       input.Budget.TargetCPLCents,
			TargetCPL:            float64(input.Budget.TargetCPLCents) / 100,
		}
	}

	if input.Direction != nil {
		decisionContext.Direction = &domain.DirectionInfo{
			ID:         input.Direction.ID,
			Name:       input.Direction.Name,
			CampaignID: input.Direction.ExternalCampaignID,
		}
	}

	return decisionContext
}

type rawResponse struct {
	Error             string                    `json:"error,omitempty"`
	Suggestions       []string                  `json:"suggestions,omitempty"`
	Type              string                    `json:"type"`
	Params            *domain.ActionParams      `json:"params"`
	SelectedCreatives []domain.SelectedCreative `json:"selected_creatives,omitempty"`
	Reasoning         string                    `json:"reasoning,omitempty"`
	EstimatedCPLCents int                       `json:"estimated_cpl_cents,omitempty"`
	Confidence        domain.Confidence         `json:"confidence,omitempty"`
}

// parseAndValidate é a máquina de estados sobre o texto bruto do motor
func (s *Service) parseAndValidate(rawText string, input *DecisionInput) (*domain.CampaignActionPlan, error) {
	// 1. Extrair o primeiro objeto JSON balanceado
	jsonText := ExtractFirstJSONObject(rawText)
	if jsonText == "" {
		return nil, newPlanError(ErrMalformedResponse, "a resposta do motor não contém um objeto JSON")
	}

	var raw rawResponse
	if err := json.Unmarshal([]byte(jsonText), &raw); err != nil {
		return nil, newPlanError(ErrMalformedResponse, "erro ao decodificar o JSON da resposta: %v", err)
	}

	// 2. O motor pode recusar o contexto explicitamente
	if raw.Error != "" {
		return nil, &PlanError{
			Kind:        ErrDecisionRejected,
			Message:     raw.Error,
			Suggestions: raw.Suggestions,
		}
	}

	// 3. Variante conhecida
	actionType := domain.ActionType(raw.Type)
	if _, ok := domain.KnownActionTypes[actionType]; !ok {
		return nil, newPlanError(ErrInvalidActionType, "tipo de ação desconhecido: %q", raw.Type)
	}

	// 4. Params presente
	if raw.Params == nil {
		return nil, newPlanError(ErrInvalidActionStructure, "resposta sem o campo params")
	}

	plan := &domain.CampaignActionPlan{
		Type:              actionType,
		Params:            *raw.Params,
		SelectedCreatives: raw.SelectedCreatives,
		Reasoning:         raw.Reasoning,
		EstimatedCPLCents: raw.EstimatedCPLCents,
		Confidence:        raw.Confidence,
	}

	if err := s.validatePlan(plan, input); err != nil {
		return nil, err
	}

	return plan, nil
}

func (s *Service) validatePlan(plan *domain.CampaignActionPlan, input *DecisionInput) error {
	params := &plan.Params

	// 5. Identificador de escopo por variante
	if plan.Type.IsDirectionScoped() {
		if params.DirectionID == "" {
			return newPlanError(ErrInvalidActionStructure, "variante %s exige params.direction_id", plan.Type)
		}
	} else if params.CampaignName == "" {
		return newPlanError(ErrInvalidActionStructure, "variante %s exige params.campaign_name", plan.Type)
	}

	if plan.Type == domain.ActionUseDirectionExistingAdset && params.ExistingAdSetID == "" {
		return newPlanError(ErrInvalidActionStructure, "variante %s exige params.existing_adset_id", plan.Type)
	}

	// Renormalizar o objetivo para a grafia canônica
	if params.Objective != "" {
		normalized, ok := domain.NormalizeObjective(string(params.Objective))
		if !ok {
			return newPlanError(ErrInvalidActionStructure, "objetivo desconhecido: %q", params.Objective)
		}
		params.Objective = normalized
	} else if input.Direction != nil {
		params.Objective = input.Direction.Objective
	} else if !plan.Type.IsDirectionScoped() {
		return newPlanError(ErrInvalidActionStructure, "variante %s exige params.objective", plan.Type)
	}

	minBudget := s.cfg.Campaign.MinAdSetBudgetCents

	// 6/7. Criativos e orçamento por variante
	totalBudget := 0
	if plan.Type.IsMultiAdset() {
		if len(params.AdSets) == 0 {
			return newPlanError(ErrInvalidActionStructure, "variante %s exige params.adsets não vazio", plan.Type)
		}

		for i := range params.AdSets {
			adSet := &params.AdSets[i]
			if plan.Type == domain.ActionUseDirectionExistingAdsetMulti && adSet.ExistingAdSetID == "" {
				return newPlanError(ErrInvalidActionStructure, "ad set %q sem existing_adset_id", adSet.Name)
			}
			if len(adSet.CreativeIDs) == 0 {
				return newPlanError(ErrNoCreativesSelected, "ad set %q sem criativos selecionados", adSet.Name)
			}
			if adSet.DailyBudgetCents < minBudget {
				return newPlanError(ErrBudgetTooLow, "ad set %q com orçamento %d abaixo do mínimo %d", adSet.Name, adSet.DailyBudgetCents, minBudget)
			}
			totalBudget += adSet.DailyBudgetCents
		}
	} else {
		if len(params.CreativeIDs) == 0 {
			return newPlanError(ErrNoCreativesSelected, "plano sem criativos selecionados")
		}
		if params.DailyBudgetCents < minBudget {
			return newPlanError(ErrBudgetTooLow, "orçamento %d abaixo do mínimo %d", params.DailyBudgetCents, minBudget)
		}
		totalBudget = params.DailyBudgetCents
	}

	// A soma dos orçamentos não pode passar do disponível
	if input.Budget != nil && input.Budget.AvailableBudgetCents > 0 && totalBudget > input.Budget.AvailableBudgetCents {
		return newPlanError(ErrBudgetTooLow, "soma dos orçamentos %d excede o disponível %d", totalBudget, input.Budget.AvailableBudgetCents)
	}

	return nil
}

// ExtractFirstJSONObject varre o texto e retorna o primeiro objeto JSON com
// chaves balanceadas, ignorando chaves dentro de strings
func ExtractFirstJSONObject(text string) string {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i := 0; i < len(text); i++ {
		c := text[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			if start >= 0 {
				inString = true
			}
		case '{':
			if start < 0 {
				start = i
			}
			depth++
		case '}':
			if start < 0 {
				continue
			}
			depth--
			if depth == 0 {
				return text[start : i+1]
			}
		}
	}

	return ""
}
