package deciding_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/campaign-builder-api/internal/config"
	"github.com/vfg2006/campaign-builder-api/internal/domain"
	"github.com/vfg2006/campaign-builder-api/internal/usecases/deciding"
	"github.com/vfg2006/campaign-builder-api/internal/usecases/deciding/mocks"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	return &config.Config{
		Campaign: config.Campaign{
			MinAdSetBudgetCents: 1000,
		},
	}
}

func TestService_Decide(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEngine := mocks.NewMockDecisionEngine(ctrl)

	service := deciding.NewService(testConfig(), mockEngine)

	direction := &domain.Direction{
		ID:                 "DIR001",
		AccountID:          "ACC001",
		Name:               "Direção Principal",
		ExternalCampaignID: "98765",
		Objective:          domain.ObjectiveWhatsApp,
		DailyBudgetCents:   5000,
		Active:             true,
	}

	legacyInput := &deciding.DecisionInput{
		Objective: domain.ObjectiveWhatsApp,
		Budget:    &domain.BudgetConstraints{MinAdSetBudgetCents: 1000},
	}

	tests := []struct {
		name     string
		input    *deciding.DecisionInput
		raw      string
		rawErr   error
		validate func(t *testing.T, plan *domain.CampaignActionPlan, err error)
	}{
		{
			name:  "Plano válido com texto ao redor do JSON",
			input: legacyInput,
			raw: `Segue o plano solicitado:
{"type": "CreateCampaignWithCreative", "params": {"campaign_name": "Campanha Agosto", "objective": "WhatsApp", "user_creative_ids": ["CR-A"], "daily_budget_cents": 2000}, "confidence": "high"}
Espero que ajude.`,
			validate: func(t *testing.T, plan *domain.CampaignActionPlan, err error) {
				assert.NoError(t, err)
				assert.Equal(t, domain.ActionCreateCampaignWithCreative, plan.Type)
				assert.Equal(t, "Campanha Agosto", plan.Params.CampaignName)
				assert.Equal(t, domain.ConfidenceHigh, plan.Confidence)
			},
		},
		{
			name:  "Objetivo em grafia alternativa é renormalizado",
			input: legacyInput,
			raw:   `{"type": "CreateCampaignWithCreative", "params": {"campaign_name": "Campanha", "objective": "whatsapp", "user_creative_ids": ["CR-A"], "daily_budget_cents": 2000}}`,
			validate: func(t *testing.T, plan *domain.CampaignActionPlan, err error) {
				assert.NoError(t, err)
				assert.Equal(t, domain.ObjectiveWhatsApp, plan.Params.Objective)
			},
		},
		{
			name:  "Resposta sem JSON é MalformedResponse",
			input: legacyInput,
			raw:   "não consigo montar um plano com esse contexto",
			validate: func(t *testing.T, plan *domain.CampaignActionPlan, err error) {
				assert.Nil(t, plan)
				assert.True(t, deciding.IsKind(err, deciding.ErrMalformedResponse))
			},
		},
		{
			name:  "JSON inválido é MalformedResponse",
			input: legacyInput,
			raw:   `{"type": "CreateCampaignWithCreative", "params": {"daily_budget_cents": "dois mil"}}`,
			validate: func(t *testing.T, plan *domain.CampaignActionPlan, err error) {
				assert.Nil(t, plan)
				assert.True(t, deciding.IsKind(err, deciding.ErrMalformedResponse))
			},
		},
		{
			name:  "Recusa explícita do motor é DecisionRejected com sugestões",
			input: legacyInput,
			raw:   `{"error": "orçamento insuficiente para qualquer ad set", "suggestions": ["aumente o orçamento diário"]}`,
			validate: func(t *testing.T, plan *domain.CampaignActionPlan, err error) {
				assert.Nil(t, plan)
				planErr, ok := deciding.AsPlanError(err)
				assert.True(t, ok)
				assert.Equal(t, deciding.ErrDecisionRejected, planErr.Kind)
				assert.Equal(t, "orçamento insuficiente para qualquer ad set", planErr.Message)
				assert.Equal(t, []string{"aumente o orçamento diário"}, planErr.Suggestions)
			},
		},
		{
			name:  "Variante desconhecida é InvalidActionType",
			input: legacyInput,
			raw:   `{"type": "DeleteAllCampaigns", "params": {"campaign_name": "X"}}`,
			validate: func(t *testing.T, plan *domain.CampaignActionPlan, err error) {
				assert.True(t, deciding.IsKind(err, deciding.ErrInvalidActionType))
			},
		},
		{
			name:  "Resposta sem params é InvalidActionStructure",
			input: legacyInput,
			raw:   `{"type": "CreateCampaignWithCreative"}`,
			validate: func(t *testing.T, plan *domain.CampaignActionPlan, err error) {
				assert.True(t, deciding.IsKind(err, deciding.ErrInvalidActionStructure))
			},
		},
		{
			name:  "Variante legada sem campaign_name é InvalidActionStructure",
			input: legacyInput,
			raw:   `{"type": "CreateCampaignWithCreative", "params": {"objective": "WhatsApp", "user_creative_ids": ["CR-A"], "daily_budget_cents": 2000}}`,
			validate: func(t *testing.T, plan *domain.CampaignActionPlan, err error) {
				assert.True(t, deciding.IsKind(err, deciding.ErrInvalidActionStructure))
			},
		},
		{
			name:  "Objetivo desconhecido é InvalidActionStructure",
			input: legacyInput,
			raw:   `{"type": "CreateCampaignWithCreative", "params": {"campaign_name": "X", "objective": "Branding", "user_creative_ids": ["CR-A"], "daily_budget_cents": 2000}}`,
			validate: func(t *testing.T, plan *domain.CampaignActionPlan, err error) {
				assert.True(t, deciding.IsKind(err, deciding.ErrInvalidActionStructure))
			},
		},
		{
			name:  "Plano sem criativos é NoCreativesSelected",
			input: legacyInput,
			raw:   `{"type": "CreateCampaignWithCreative", "params": {"campaign_name": "X", "objective": "WhatsApp", "daily_budget_cents": 2000}}`,
			validate: func(t *testing.T, plan *domain.CampaignActionPlan, err error) {
				assert.True(t, deciding.IsKind(err, deciding.ErrNoCreativesSelected))
			},
		},
		{
			name:  "Orçamento abaixo do mínimo é BudgetTooLow",
			input: legacyInput,
			raw:   `{"type": "CreateCampaignWithCreative", "params": {"campaign_name": "X", "objective": "WhatsApp", "user_creative_ids": ["CR-A"], "daily_budget_cents": 500}}`,
			validate: func(t *testing.T, plan *domain.CampaignActionPlan, err error) {
				assert.True(t, deciding.IsKind(err, deciding.ErrBudgetTooLow))
			},
		},
		{
			name: "Soma dos ad sets acima do disponível é BudgetTooLow",
			input: &deciding.DecisionInput{
				Objective: domain.ObjectiveWhatsApp,
				Direction: direction,
				Budget: &domain.BudgetConstraints{
					AvailableBudgetCents: 5000,
					MinAdSetBudgetCents:  1000,
				},
			},
			raw: `{"type": "CreateDirectionMultipleAdsets", "params": {"direction_id": "DIR001", "adsets": [
				{"name": "A", "user_creative_ids": ["CR-A"], "daily_budget_cents": 3000},
				{"name": "B", "user_creative_ids": ["CR-B"], "daily_budget_cents": 3000}
			]}}`,
			validate: func(t *testing.T, plan *domain.CampaignActionPlan, err error) {
				assert.True(t, deciding.IsKind(err, deciding.ErrBudgetTooLow))
			},
		},
		{
			name: "Variante de direction sem direction_id é InvalidActionStructure",
			input: &deciding.DecisionInput{
				Objective: domain.ObjectiveWhatsApp,
				Direction: direction,
			},
			raw: `{"type": "CreateDirectionAdset", "params": {"user_creative_ids": ["CR-A"], "daily_budget_cents": 2000}}`,
			validate: func(t *testing.T, plan *domain.CampaignActionPlan, err error) {
				assert.True(t, deciding.IsKind(err, deciding.ErrInvalidActionStructure))
			},
		},
		{
			name: "UseDirectionExistingAdset sem existing_adset_id é InvalidActionStructure",
			input: &deciding.DecisionInput{
				Objective: domain.ObjectiveWhatsApp,
				Direction: direction,
			},
			raw: `{"type": "UseDirectionExistingAdset", "params": {"direction_id": "DIR001", "user_creative_ids": ["CR-A"], "daily_budget_cents": 2000}}`,
			validate: func(t *testing.T, plan *domain.CampaignActionPlan, err error) {
				assert.True(t, deciding.IsKind(err, deciding.ErrInvalidActionStructure))
			},
		},
		{
			name: "Variante de direction sem objetivo herda o da direction",
			input: &deciding.DecisionInput{
				Objective: domain.ObjectiveWhatsApp,
				Direction: direction,
			},
			raw: `{"type": "CreateDirectionAdset", "params": {"direction_id": "DIR001", "user_creative_ids": ["CR-A"], "daily_budget_cents": 2000}}`,
			validate: func(t *testing.T, plan *domain.CampaignActionPlan, err error) {
				assert.NoError(t, err)
				assert.Equal(t, domain.ObjectiveWhatsApp, plan.Params.Objective)
			},
		},
		{
			name:   "Erro do motor é propagado sem classificação",
			input:  legacyInput,
			rawErr: errors.New("erro ao chamar o motor de decisão"),
			validate: func(t *testing.T, plan *domain.CampaignActionPlan, err error) {
				assert.Nil(t, plan)
				_, ok := deciding.AsPlanError(err)
				assert.False(t, ok)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockEngine.EXPECT().
				GeneratePlan(gomock.Any(), deciding.SystemInstruction(), gomock.Any()).
				Return(tt.raw, tt.rawErr)

			plan, err := service.Decide(context.Background(), tt.input)
			tt.validate(t, plan, err)
		})
	}
}

func TestService_Decide_MultiAdsetValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEngine := mocks.NewMockDecisionEngine(ctrl)
	service := deciding.NewService(testConfig(), mockEngine)

	input := &deciding.DecisionInput{Objective: domain.ObjectiveSiteLeads}

	tests := []struct {
		name string
		raw  string
		kind deciding.ErrorKind
	}{
		{
			name: "Multi adset sem lista é InvalidActionStructure",
			raw:  `{"type": "CreateCampaignWithMultipleAdsets", "params": {"campaign_name": "X", "objective": "SiteLeads"}}`,
			kind: deciding.ErrInvalidActionStructure,
		},
		{
			name: "Ad set sem criativos é NoCreativesSelected",
			raw:  `{"type": "CreateCampaignWithMultipleAdsets", "params": {"campaign_name": "X", "objective": "SiteLeads", "adsets": [{"name": "A", "daily_budget_cents": 2000}]}}`,
			kind: deciding.ErrNoCreativesSelected,
		},
		{
			name: "Ad set abaixo do mínimo é BudgetTooLow",
			raw:  `{"type": "CreateCampaignWithMultipleAdsets", "params": {"campaign_name": "X", "objective": "SiteLeads", "adsets": [{"name": "A", "user_creative_ids": ["CR-A"], "daily_budget_cents": 500}]}}`,
			kind: deciding.ErrBudgetTooLow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockEngine.EXPECT().
				GeneratePlan(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(tt.raw, nil)

			plan, err := service.Decide(context.Background(), input)
			assert.Nil(t, plan)
			assert.True(t, deciding.IsKind(err, tt.kind))
		})
	}
}

func TestBuildDecisionContext(t *testing.T) {
	cpl := 12.5
	input := &deciding.DecisionInput{
		Objective: domain.ObjectiveWhatsApp,
		Candidates: []*domain.Creative{
			{
				ID:    "CR-A",
				Title: "Criativo A",
				PlatformIDs: map[domain.Objective]string{
					domain.ObjectiveWhatsApp: "777",
				},
				Performance: &domain.PerformanceMetrics{CTR: 2.0, CPL: &cpl},
			},
			{ID: "CR-B", Title: "Criativo B"},
		},
		Budget: &domain.BudgetConstraints{
			AvailableBudgetCents: 5000,
			MinAdSetBudgetCents:  1000,
			TargetCPLCents:       1500,
		},
		Direction: &domain.Direction{
			ID:                 "DIR001",
			Name:               "Direção Principal",
			ExternalCampaignID: "98765",
		},
		UserContext: "foco em remarketing",
	}

	decisionContext := deciding.BuildDecisionContext(input)

	assert.Equal(t, "WhatsApp", decisionContext.Objective)
	assert.Equal(t, "foco em remarketing", decisionContext.UserContext)

	// O payload não expõe os IDs de plataforma dos criativos
	assert.Len(t, decisionContext.Candidates, 2)
	assert.Equal(t, "CR-A", decisionContext.Candidates[0].ID)
	assert.True(t, decisionContext.Candidates[0].HasPerformance)
	assert.False(t, decisionContext.Candidates[1].HasPerformance)

	// Orçamento nas duas unidades
	assert.Equal(t, 5000, decisionContext.Budget.AvailableBudgetCents)
	assert.Equal(t, 50.0, decisionContext.Budget.AvailableBudget)
	assert.Equal(t, 15.0, decisionContext.Budget.TargetCPL)

	assert.Equal(t, "DIR001", decisionContext.Direction.ID)
	assert.Equal(t, "98765", decisionContext.Direction.CampaignID)
}

func TestExtractFirstJSONObject(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{
			name:     "Objeto puro",
			text:     `{"a": 1}`,
			expected: `{"a": 1}`,
		},
		{
			name:     "Texto ao redor",
			text:     "antes {\"a\": 1} depois",
			expected: `{"a": 1}`,
		},
		{
			name:     "Objetos aninhados param na chave balanceada",
			text:     `{"a": {"b": 2}} {"c": 3}`,
			expected: `{"a": {"b": 2}}`,
		},
		{
			name:     "Chaves dentro de strings são ignoradas",
			text:     `{"a": "valor com } e { no meio"}`,
			expected: `{"a": "valor com } e { no meio"}`,
		},
		{
			name:     "Aspas escapadas dentro de strings",
			text:     `{"a": "diz \" e } ainda"}`,
			expected: `{"a": "diz \" e } ainda"}`,
		},
		{
			name:     "Sem objeto retorna vazio",
			text:     "nenhum json por aqui",
			expected: "",
		},
		{
			name:     "Objeto não fechado retorna vazio",
			text:     `{"a": 1`,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, deciding.ExtractFirstJSONObject(tt.text))
		})
	}
}
