package building

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/campaign-builder-api/infrastructure/repository/mocks"
	"github.com/vfg2006/campaign-builder-api/internal/config"
	"github.com/vfg2006/campaign-builder-api/internal/domain"
	buildingmocks "github.com/vfg2006/campaign-builder-api/internal/usecases/building/mocks"
	"github.com/vfg2006/campaign-builder-api/internal/usecases/contexting"
	contextingmocks "github.com/vfg2006/campaign-builder-api/internal/usecases/contexting/mocks"
	"github.com/vfg2006/campaign-builder-api/internal/usecases/deciding"
	decidingmocks "github.com/vfg2006/campaign-builder-api/internal/usecases/deciding/mocks"
	executingmocks "github.com/vfg2006/campaign-builder-api/internal/usecases/executing/mocks"
	planningmocks "github.com/vfg2006/campaign-builder-api/internal/usecases/planning/mocks"
	resolvingmocks "github.com/vfg2006/campaign-builder-api/internal/usecases/resolving/mocks"
	"github.com/vfg2006/campaign-builder-api/internal/usecases/scoring"
	scoringmocks "github.com/vfg2006/campaign-builder-api/internal/usecases/scoring/mocks"
	"go.uber.org/mock/gomock"
)

type serviceMocks struct {
	accountRepo   *mocks.MockAccountRepository
	creativeRepo  *mocks.MockCreativeRepository
	directionRepo *mocks.MockDirectionRepository
	resolver      *resolvingmocks.MockResolver
	scorer        *scoringmocks.MockScorer
	ranker        *contextingmocks.MockRanker
	decider       *decidingmocks.MockDecider
	planner       *planningmocks.MockPlanner
	executor      *executingmocks.MockExecutor
}

func newServiceWithMocks(ctrl *gomock.Controller) (*Service, *serviceMocks) {
	m := &serviceMocks{
		accountRepo:   mocks.NewMockAccountRepository(ctrl),
		creativeRepo:  mocks.NewMockCreativeRepository(ctrl),
		directionRepo: mocks.NewMockDirectionRepository(ctrl),
		resolver:      resolvingmocks.NewMockResolver(ctrl),
		scorer:        scoringmocks.NewMockScorer(ctrl),
		ranker:        contextingmocks.NewMockRanker(ctrl),
		decider:       decidingmocks.NewMockDecider(ctrl),
		planner:       planningmocks.NewMockPlanner(ctrl),
		executor:      executingmocks.NewMockExecutor(ctrl),
	}

	service := &Service{
		cfg: &config.Config{
			Campaign: config.Campaign{
				MinAdSetBudgetCents: 1000,
				ContextLimit:        20,
			},
		},
		accountRepository:   m.accountRepo,
		creativeRepository:  m.creativeRepo,
		directionRepository: m.directionRepo,
		resolver:            m.resolver,
		scorer:              m.scorer,
		ranker:              m.ranker,
		decider:             m.decider,
		planner:             m.planner,
		executor:            m.executor,
	}

	return service, m
}

func TestService_BuildCampaign_FluxoLegado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newServiceWithMocks(ctrl)

	account := &domain.AdAccount{ID: "ACC001"}
	creatives := []*domain.Creative{
		{ID: "CR-A", AccountID: "ACC001"},
		{ID: "CR-B", AccountID: "ACC001"},
	}
	cpl := 12.5
	performanceByID := map[string]*domain.PerformanceMetrics{
		"CR-A": {CTR: 2.0, CPL: &cpl},
	}

	plan := &domain.CampaignActionPlan{
		Type: domain.ActionCreateCampaignWithCreative,
		Params: domain.ActionParams{
			CampaignName:     "Campanha Agosto",
			Objective:        domain.ObjectiveWhatsApp,
			CreativeIDs:      []string{"CR-A"},
			DailyBudgetCents: 2000,
		},
	}
	envelope := &domain.ExecutionEnvelope{
		IdempotencyKey: "KEY-1",
		Operations:     []*domain.AtomicOperation{{CampaignName: "Campanha Agosto"}},
	}

	m.accountRepo.EXPECT().GetAccountByID("ACC001").Return(account, nil)
	m.creativeRepo.EXPECT().ListByAccountID("ACC001").Return(creatives, nil)
	m.resolver.EXPECT().ResolvePerformance(account, creatives).Return(performanceByID, nil)
	m.scorer.EXPECT().ScoreAccountCreatives(account, creatives, 0.0).Return(2)
	m.ranker.EXPECT().
		BuildContext(creatives, 20).
		Return(&contexting.RankedContext{Candidates: creatives, Stats: &domain.ContextStats{WithPerformance: 1, WithoutPerformance: 1}})
	m.decider.EXPECT().
		Decide(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *deciding.DecisionInput) (*domain.CampaignActionPlan, error) {
			assert.Equal(t, domain.ObjectiveWhatsApp, input.Objective)
			assert.Nil(t, input.Direction)
			assert.Equal(t, 1000, input.Budget.MinAdSetBudgetCents)
			assert.Zero(t, input.Budget.AvailableBudgetCents)
			return plan, nil
		})
	m.planner.EXPECT().BuildEnvelope(plan).Return(envelope, nil)
	m.executor.EXPECT().
		ExecuteEnvelope(account, envelope, gomock.Any()).
		Return([]*domain.OperationResult{
			{CampaignName: "Campanha Agosto", CampaignID: "CAMP-1", RequestedAds: 1, Ads: []*domain.CreatedAd{{AdID: "AD-1"}}},
		})

	response, err := service.BuildCampaign(context.Background(), &domain.BuildCampaignRequest{
		AccountID: "ACC001",
		Objective: domain.ObjectiveWhatsApp,
	})

	assert.NoError(t, err)
	assert.Equal(t, "KEY-1", response.IdempotencyKey)
	assert.Equal(t, plan, response.Plan)
	assert.False(t, response.PartialFailure)

	// A performance resolvida é anexada aos criativos antes do ranqueamento
	assert.NotNil(t, creatives[0].Performance)
	assert.Nil(t, creatives[1].Performance)
}

func TestService_BuildCampaign_ComDirection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newServiceWithMocks(ctrl)

	account := &domain.AdAccount{ID: "ACC001"}
	direction := &domain.Direction{
		ID:                 "DIR001",
		AccountID:          "ACC001",
		Name:               "Direção Principal",
		ExternalCampaignID: "98765",
		Objective:          domain.ObjectiveSiteLeads,
		DailyBudgetCents:   5000,
		TargetCPLCents:     1500,
		Active:             true,
	}
	creatives := []*domain.Creative{{ID: "CR-A", AccountID: "ACC001"}}

	plan := &domain.CampaignActionPlan{
		Type: domain.ActionCreateDirectionAdset,
		Params: domain.ActionParams{
			DirectionID:      "DIR001",
			CreativeIDs:      []string{"CR-A"},
			DailyBudgetCents: 2000,
		},
	}

	m.accountRepo.EXPECT().GetAccountByID("ACC001").Return(account, nil)
	m.directionRepo.EXPECT().GetDirectionByID("DIR001").Return(direction, nil)
	m.creativeRepo.EXPECT().ListByAccountID("ACC001").Return(creatives, nil)
	m.resolver.EXPECT().ResolvePerformance(account, creatives).Return(nil, nil)
	m.scorer.EXPECT().ScoreAccountCreatives(account, creatives, 15.0).Return(1)
	m.ranker.EXPECT().
		BuildContext(creatives, 20).
		Return(&contexting.RankedContext{Candidates: creatives, Stats: &domain.ContextStats{}})
	m.decider.EXPECT().
		Decide(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *deciding.DecisionInput) (*domain.CampaignActionPlan, error) {
			// Sem objetivo na requisição vale o da direction, e o orçamento é
			// delimitado pelo orçamento diário dela
			assert.Equal(t, domain.ObjectiveSiteLeads, input.Objective)
			assert.Equal(t, direction, input.Direction)
			assert.Equal(t, 5000, input.Budget.AvailableBudgetCents)
			assert.Equal(t, 1500, input.Budget.TargetCPLCents)
			assert.Equal(t, "DIR001", input.Budget.DirectionID)
			return plan, nil
		})
	m.executor.EXPECT().
		ExecuteDirectionPlan(account, direction, plan, gomock.Any()).
		Return([]*domain.OperationResult{
			{CampaignID: "98765", AdSetID: "ADSET-1", RequestedAds: 1, Ads: []*domain.CreatedAd{{AdID: "AD-1"}}},
		})

	response, err := service.BuildCampaign(context.Background(), &domain.BuildCampaignRequest{
		AccountID:   "ACC001",
		DirectionID: "DIR001",
	})

	assert.NoError(t, err)
	assert.Empty(t, response.IdempotencyKey)
	assert.False(t, response.PartialFailure)
	assert.Len(t, response.Results, 1)
}

func TestService_BuildCampaign_PlanoRejeitadoNaoChamaAPlataforma(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newServiceWithMocks(ctrl)

	account := &domain.AdAccount{ID: "ACC001"}
	creatives := []*domain.Creative{{ID: "CR-A", AccountID: "ACC001"}}

	m.accountRepo.EXPECT().GetAccountByID("ACC001").Return(account, nil)
	m.creativeRepo.EXPECT().ListByAccountID("ACC001").Return(creatives, nil)
	m.resolver.EXPECT().ResolvePerformance(account, creatives).Return(nil, nil)
	m.scorer.EXPECT().ScoreAccountCreatives(account, creatives, 0.0).Return(1)
	m.ranker.EXPECT().
		BuildContext(creatives, 20).
		Return(&contexting.RankedContext{Candidates: creatives, Stats: &domain.ContextStats{}})
	m.decider.EXPECT().
		Decide(gomock.Any(), gomock.Any()).
		Return(nil, &deciding.PlanError{Kind: deciding.ErrBudgetTooLow, Message: "orçamento abaixo do mínimo"})

	// Nenhuma expectativa no planner nem no executor: um plano rejeitado não
	// gera nenhuma chamada de execução

	response, err := service.BuildCampaign(context.Background(), &domain.BuildCampaignRequest{
		AccountID: "ACC001",
		Objective: domain.ObjectiveWhatsApp,
	})

	assert.Nil(t, response)
	assert.True(t, deciding.IsKind(err, deciding.ErrBudgetTooLow))
}

func TestService_BuildCampaign_FalhaParcial(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newServiceWithMocks(ctrl)

	account := &domain.AdAccount{ID: "ACC001"}
	creatives := []*domain.Creative{{ID: "CR-A", AccountID: "ACC001"}}

	plan := &domain.CampaignActionPlan{
		Type: domain.ActionCreateCampaignWithCreative,
		Params: domain.ActionParams{
			CampaignName:     "Campanha",
			Objective:        domain.ObjectiveWhatsApp,
			CreativeIDs:      []string{"CR-A", "CR-B"},
			DailyBudgetCents: 2000,
		},
	}

	m.accountRepo.EXPECT().GetAccountByID("ACC001").Return(account, nil)
	m.creativeRepo.EXPECT().ListByAccountID("ACC001").Return(creatives, nil)
	m.resolver.EXPECT().ResolvePerformance(account, creatives).Return(nil, nil)
	m.scorer.EXPECT().ScoreAccountCreatives(account, creatives, 0.0).Return(1)
	m.ranker.EXPECT().
		BuildContext(creatives, 20).
		Return(&contexting.RankedContext{Candidates: creatives, Stats: &domain.ContextStats{}})
	m.decider.EXPECT().Decide(gomock.Any(), gomock.Any()).Return(plan, nil)
	m.planner.EXPECT().
		BuildEnvelope(plan).
		Return(&domain.ExecutionEnvelope{IdempotencyKey: "KEY-1", Operations: []*domain.AtomicOperation{{}}}, nil)
	m.executor.EXPECT().
		ExecuteEnvelope(account, gomock.Any(), gomock.Any()).
		Return([]*domain.OperationResult{
			{CampaignName: "Campanha", RequestedAds: 2, Ads: []*domain.CreatedAd{{AdID: "AD-1"}}},
		})

	response, err := service.BuildCampaign(context.Background(), &domain.BuildCampaignRequest{
		AccountID: "ACC001",
		Objective: domain.ObjectiveWhatsApp,
	})

	assert.NoError(t, err)
	assert.True(t, response.PartialFailure)
}

func TestService_BuildCampaign_ValidacoesDeEntrada(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newServiceWithMocks(ctrl)

	account := &domain.AdAccount{ID: "ACC001"}

	tests := []struct {
		name        string
		request     *domain.BuildCampaignRequest
		setup       func()
		expectedErr error
	}{
		{
			name:    "Conta inexistente",
			request: &domain.BuildCampaignRequest{AccountID: "ACC404", Objective: domain.ObjectiveWhatsApp},
			setup: func() {
				m.accountRepo.EXPECT().GetAccountByID("ACC404").Return(nil, nil)
			},
			expectedErr: ErrAccountNotFound,
		},
		{
			name:    "Direction de outra conta",
			request: &domain.BuildCampaignRequest{AccountID: "ACC001", DirectionID: "DIR001"},
			setup: func() {
				m.accountRepo.EXPECT().GetAccountByID("ACC001").Return(account, nil)
				m.directionRepo.EXPECT().
					GetDirectionByID("DIR001").
					Return(&domain.Direction{ID: "DIR001", AccountID: "ACC999", Active: true}, nil)
			},
			expectedErr: ErrDirectionNotFound,
		},
		{
			name:    "Direction inativa",
			request: &domain.BuildCampaignRequest{AccountID: "ACC001", DirectionID: "DIR001"},
			setup: func() {
				m.accountRepo.EXPECT().GetAccountByID("ACC001").Return(account, nil)
				m.directionRepo.EXPECT().
					GetDirectionByID("DIR001").
					Return(&domain.Direction{ID: "DIR001", AccountID: "ACC001", Active: false}, nil)
			},
			expectedErr: ErrDirectionInactive,
		},
		{
			name:    "Objetivo inválido sem direction",
			request: &domain.BuildCampaignRequest{AccountID: "ACC001", Objective: "BRANDING"},
			setup: func() {
				m.accountRepo.EXPECT().GetAccountByID("ACC001").Return(account, nil)
			},
			expectedErr: ErrInvalidObjective,
		},
		{
			name:    "Conta sem criativos",
			request: &domain.BuildCampaignRequest{AccountID: "ACC001", Objective: domain.ObjectiveWhatsApp},
			setup: func() {
				m.accountRepo.EXPECT().GetAccountByID("ACC001").Return(account, nil)
				m.creativeRepo.EXPECT().ListByAccountID("ACC001").Return(nil, nil)
			},
			expectedErr: ErrNoCreatives,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			response, err := service.BuildCampaign(context.Background(), tt.request)

			assert.Nil(t, response)
			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func TestService_BuildCampaign_AceitaGrafiaDoMotorNoObjetivo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newServiceWithMocks(ctrl)

	account := &domain.AdAccount{ID: "ACC001"}

	// A grafia do motor de decisão e a minúscula passam pela normalização;
	// a conta sem criativos interrompe o fluxo logo depois da validação
	for _, objective := range []domain.Objective{"WhatsApp", "whatsapp", "SiteLeads"} {
		t.Run(string(objective), func(t *testing.T) {
			m.accountRepo.EXPECT().GetAccountByID("ACC001").Return(account, nil)
			m.creativeRepo.EXPECT().ListByAccountID("ACC001").Return(nil, nil)

			response, err := service.BuildCampaign(context.Background(), &domain.BuildCampaignRequest{
				AccountID: "ACC001",
				Objective: objective,
			})

			assert.Nil(t, response)
			assert.NotErrorIs(t, err, ErrInvalidObjective)
			assert.ErrorIs(t, err, ErrNoCreatives)
		})
	}
}

func TestService_PauseUnderperformers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newServiceWithMocks(ctrl)

	account := &domain.AdAccount{ID: "ACC001"}
	creativeA := &domain.Creative{ID: "CR-A", AccountID: "ACC001"}
	creativeB := &domain.Creative{ID: "CR-B", AccountID: "ACC001"}
	creativeC := &domain.Creative{ID: "CR-C", AccountID: "ACC001"}
	direction := &domain.Direction{
		ID:             "DIR001",
		AccountID:      "ACC001",
		Active:         true,
		TargetCPLCents: 1500,
	}

	t.Run("Pausa os criativos condenados e tolera falhas individuais", func(t *testing.T) {
		m.accountRepo.EXPECT().GetAccountByID("ACC001").Return(account, nil)
		m.directionRepo.EXPECT().GetDirectionByID("DIR001").Return(direction, nil)
		m.creativeRepo.EXPECT().
			ListByAccountID("ACC001").
			Return([]*domain.Creative{creativeA, creativeB, creativeC}, nil)

		// CR-A: recomendação de pausa; CR-B: devorador crítico de orçamento;
		// CR-C: saudável, fica de fora
		m.scorer.EXPECT().
			ScoreCreative(account, creativeA, 15.0).
			Return(&domain.CreativeScoring{Recommendation: scoring.RecommendationPause}, nil)
		m.scorer.EXPECT().
			ScoreCreative(account, creativeB, 15.0).
			Return(&domain.CreativeScoring{
				Recommendation: scoring.RecommendationReduce,
				AdEater:        &domain.AdEaterSignal{Priority: scoring.AdEaterCritical},
			}, nil)
		m.scorer.EXPECT().
			ScoreCreative(account, creativeC, 15.0).
			Return(&domain.CreativeScoring{Recommendation: scoring.RecommendationScale}, nil)

		m.scorer.EXPECT().PauseCreativeAds(account, creativeA).Return(2, nil)
		m.scorer.EXPECT().PauseCreativeAds(account, creativeB).Return(0, errors.New("erro da plataforma"))

		summary, err := service.PauseUnderperformers(&domain.PauseUnderperformersRequest{
			AccountID:   "ACC001",
			DirectionID: "DIR001",
		})

		assert.NoError(t, err)
		assert.Equal(t, 3, summary.Scored)
		assert.Equal(t, []string{"CR-A"}, summary.PausedCreatives)
		assert.Equal(t, 2, summary.PausedAds)
	})

	t.Run("Falha na pontuação de um criativo não interrompe a varredura", func(t *testing.T) {
		m.accountRepo.EXPECT().GetAccountByID("ACC001").Return(account, nil)
		m.creativeRepo.EXPECT().
			ListByAccountID("ACC001").
			Return([]*domain.Creative{creativeA, creativeB}, nil)

		m.scorer.EXPECT().
			ScoreCreative(account, creativeA, 0.0).
			Return(nil, errors.New("erro de conexão"))
		m.scorer.EXPECT().
			ScoreCreative(account, creativeB, 0.0).
			Return(&domain.CreativeScoring{Recommendation: scoring.RecommendationPause}, nil)
		m.scorer.EXPECT().PauseCreativeAds(account, creativeB).Return(1, nil)

		summary, err := service.PauseUnderperformers(&domain.PauseUnderperformersRequest{AccountID: "ACC001"})

		assert.NoError(t, err)
		assert.Equal(t, 1, summary.Scored)
		assert.Equal(t, []string{"CR-B"}, summary.PausedCreatives)
		assert.Equal(t, 1, summary.PausedAds)
	})

	t.Run("Conta sem criativos não tem o que pausar", func(t *testing.T) {
		m.accountRepo.EXPECT().GetAccountByID("ACC001").Return(account, nil)
		m.creativeRepo.EXPECT().ListByAccountID("ACC001").Return(nil, nil)

		summary, err := service.PauseUnderperformers(&domain.PauseUnderperformersRequest{AccountID: "ACC001"})

		assert.Nil(t, summary)
		assert.ErrorIs(t, err, ErrNoCreatives)
	})
}

func TestService_ListActiveCampaigns(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newServiceWithMocks(ctrl)
	mockLister := buildingmocks.NewMockCampaignLister(ctrl)
	service.campaignLister = mockLister

	account := &domain.AdAccount{ID: "ACC001"}
	campaigns := []*domain.PlatformCampaign{{ID: "CAMP-1", Name: "Campanha Agosto", Status: "ACTIVE"}}

	m.accountRepo.EXPECT().GetAccountByID("ACC001").Return(account, nil)
	mockLister.EXPECT().GetActiveCampaigns(account).Return(campaigns, nil)

	result, err := service.ListActiveCampaigns("ACC001")

	assert.NoError(t, err)
	assert.Equal(t, campaigns, result)
}

func TestService_ListDirections(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newServiceWithMocks(ctrl)

	account := &domain.AdAccount{ID: "ACC001"}
	directions := []*domain.Direction{{ID: "DIR001", AccountID: "ACC001", Active: true}}

	m.accountRepo.EXPECT().GetAccountByID("ACC001").Return(account, nil)
	m.directionRepo.EXPECT().ListByAccountID("ACC001", true).Return(directions, nil)

	result, err := service.ListDirections("ACC001", true)

	assert.NoError(t, err)
	assert.Equal(t, directions, result)
}
