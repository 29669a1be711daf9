package executing

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/campaign-builder-api/internal/config"
	"github.com/vfg2006/campaign-builder-api/internal/domain"
	"github.com/vfg2006/campaign-builder-api/internal/usecases/executing/mocks"
	"go.uber.org/mock/gomock"
)

func TestService_ExecuteEnvelope(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPlatform := mocks.NewMockPlatform(ctrl)

	service := &Service{
		cfg:      &config.Config{},
		platform: mockPlatform,
	}

	account := &domain.AdAccount{ID: "ACC001"}
	creativeA := &domain.Creative{ID: "CR-A"}
	creativeB := &domain.Creative{ID: "CR-B"}
	creativesByID := map[string]*domain.Creative{
		"CR-A": creativeA,
		"CR-B": creativeB,
	}

	tests := []struct {
		name     string
		envelope *domain.ExecutionEnvelope
		setup    func()
		validate func(t *testing.T, results []*domain.OperationResult)
	}{
		{
			name: "Operação completa cria campanha, ad set e anúncios",
			envelope: &domain.ExecutionEnvelope{
				IdempotencyKey: "KEY-1",
				Operations: []*domain.AtomicOperation{
					{CampaignName: "Campanha A", Objective: domain.ObjectiveWhatsApp, CreativeIDs: []string{"CR-A", "CR-B"}, DailyBudgetCents: 2000},
				},
			},
			setup: func() {
				mockPlatform.EXPECT().
					CreateCampaign(account, "Campanha A", domain.ObjectiveWhatsApp, false).
					Return("CAMP-1", nil)
				mockPlatform.EXPECT().
					CreateAdSet(account, &domain.PlatformAdSetParams{
						CampaignID:       "CAMP-1",
						Name:             "Campanha A",
						Objective:        domain.ObjectiveWhatsApp,
						DailyBudgetCents: 2000,
					}).
					Return("ADSET-1", nil)
				mockPlatform.EXPECT().
					CreateAds(account, "ADSET-1", domain.ObjectiveWhatsApp, []*domain.Creative{creativeA, creativeB}, false).
					Return([]*domain.CreatedAd{
						{AdID: "AD-1", CreativeID: "CR-A"},
						{AdID: "AD-2", CreativeID: "CR-B"},
					})
			},
			validate: func(t *testing.T, results []*domain.OperationResult) {
				assert.Len(t, results, 1)
				assert.Equal(t, "CAMP-1", results[0].CampaignID)
				assert.Equal(t, "ADSET-1", results[0].AdSetID)
				assert.Len(t, results[0].Ads, 2)
				assert.Empty(t, results[0].Error)
				assert.False(t, results[0].PartialFailure())
			},
		},
		{
			name: "Falha de uma operação não impede as seguintes",
			envelope: &domain.ExecutionEnvelope{
				IdempotencyKey: "KEY-2",
				Operations: []*domain.AtomicOperation{
					{CampaignName: "Campanha A", Objective: domain.ObjectiveWhatsApp, CreativeIDs: []string{"CR-A"}, DailyBudgetCents: 2000},
					{CampaignName: "Campanha B", Objective: domain.ObjectiveWhatsApp, CreativeIDs: []string{"CR-B"}, DailyBudgetCents: 2000},
				},
			},
			setup: func() {
				mockPlatform.EXPECT().
					CreateCampaign(account, "Campanha A", domain.ObjectiveWhatsApp, false).
					Return("", errors.New("erro na API do Meta"))
				mockPlatform.EXPECT().
					CreateCampaign(account, "Campanha B", domain.ObjectiveWhatsApp, false).
					Return("CAMP-2", nil)
				mockPlatform.EXPECT().
					CreateAdSet(account, gomock.Any()).
					Return("ADSET-2", nil)
				mockPlatform.EXPECT().
					CreateAds(account, "ADSET-2", domain.ObjectiveWhatsApp, []*domain.Creative{creativeB}, false).
					Return([]*domain.CreatedAd{{AdID: "AD-1", CreativeID: "CR-B"}})
			},
			validate: func(t *testing.T, results []*domain.OperationResult) {
				assert.Len(t, results, 2)
				assert.NotEmpty(t, results[0].Error)
				assert.Empty(t, results[0].CampaignID)
				assert.Empty(t, results[1].Error)
				assert.Len(t, results[1].Ads, 1)
			},
		},
		{
			name: "Falha na criação do ad set interrompe apenas a operação",
			envelope: &domain.ExecutionEnvelope{
				IdempotencyKey: "KEY-3",
				Operations: []*domain.AtomicOperation{
					{CampaignName: "Campanha A", Objective: domain.ObjectiveWhatsApp, CreativeIDs: []string{"CR-A"}, DailyBudgetCents: 2000},
				},
			},
			setup: func() {
				mockPlatform.EXPECT().
					CreateCampaign(account, "Campanha A", domain.ObjectiveWhatsApp, false).
					Return("CAMP-1", nil)
				mockPlatform.EXPECT().
					CreateAdSet(account, gomock.Any()).
					Return("", errors.New("erro na API do Meta"))
			},
			validate: func(t *testing.T, results []*domain.OperationResult) {
				assert.Len(t, results, 1)
				assert.Equal(t, "CAMP-1", results[0].CampaignID)
				assert.Empty(t, results[0].AdSetID)
				assert.NotEmpty(t, results[0].Error)

				// A campanha já criada não é desfeita; o erro fica no resultado
				assert.False(t, results[0].PartialFailure())
			},
		},
		{
			name: "Menos anúncios criados que o solicitado é falha parcial",
			envelope: &domain.ExecutionEnvelope{
				IdempotencyKey: "KEY-4",
				Operations: []*domain.AtomicOperation{
					{CampaignName: "Campanha A", Objective: domain.ObjectiveWhatsApp, CreativeIDs: []string{"CR-A", "CR-B"}, DailyBudgetCents: 2000},
				},
			},
			setup: func() {
				mockPlatform.EXPECT().
					CreateCampaign(account, "Campanha A", domain.ObjectiveWhatsApp, false).
					Return("CAMP-1", nil)
				mockPlatform.EXPECT().
					CreateAdSet(account, gomock.Any()).
					Return("ADSET-1", nil)
				mockPlatform.EXPECT().
					CreateAds(account, "ADSET-1", domain.ObjectiveWhatsApp, gomock.Any(), false).
					Return([]*domain.CreatedAd{{AdID: "AD-1", CreativeID: "CR-A"}})
			},
			validate: func(t *testing.T, results []*domain.OperationResult) {
				assert.Len(t, results, 1)
				assert.Equal(t, 2, results[0].RequestedAds)
				assert.Len(t, results[0].Ads, 1)
				assert.True(t, results[0].PartialFailure())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			results := service.ExecuteEnvelope(account, tt.envelope, creativesByID)
			tt.validate(t, results)
		})
	}
}

func TestService_ExecuteDirectionPlan(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPlatform := mocks.NewMockPlatform(ctrl)

	service := &Service{
		cfg:      &config.Config{},
		platform: mockPlatform,
	}

	account := &domain.AdAccount{ID: "ACC001"}
	direction := &domain.Direction{
		ID:                 "DIR001",
		AccountID:          "ACC001",
		Name:               "Direção Principal",
		ExternalCampaignID: "98765",
		Objective:          domain.ObjectiveWhatsApp,
	}

	creativeA := &domain.Creative{ID: "CR-A"}
	creativesByID := map[string]*domain.Creative{"CR-A": creativeA}

	tests := []struct {
		name     string
		plan     *domain.CampaignActionPlan
		setup    func()
		validate func(t *testing.T, results []*domain.OperationResult)
	}{
		{
			name: "Ad set novo na campanha existente da direction",
			plan: &domain.CampaignActionPlan{
				Type: domain.ActionCreateDirectionAdset,
				Params: domain.ActionParams{
					DirectionID:      "DIR001",
					CampaignName:     "Ad Set Remarketing",
					CreativeIDs:      []string{"CR-A"},
					DailyBudgetCents: 2000,
				},
			},
			setup: func() {
				mockPlatform.EXPECT().
					CreateAdSet(account, &domain.PlatformAdSetParams{
						CampaignID:       "98765",
						Name:             "Ad Set Remarketing",
						Objective:        domain.ObjectiveWhatsApp,
						DailyBudgetCents: 2000,
					}).
					Return("ADSET-1", nil)
				mockPlatform.EXPECT().
					CreateAds(account, "ADSET-1", domain.ObjectiveWhatsApp, []*domain.Creative{creativeA}, false).
					Return([]*domain.CreatedAd{{AdID: "AD-1", CreativeID: "CR-A"}})
			},
			validate: func(t *testing.T, results []*domain.OperationResult) {
				assert.Len(t, results, 1)
				assert.Equal(t, "98765", results[0].CampaignID)
				assert.Equal(t, "ADSET-1", results[0].AdSetID)
				assert.Len(t, results[0].Ads, 1)
			},
		},
		{
			name: "Vários ad sets novos com objetivo herdado da direction",
			plan: &domain.CampaignActionPlan{
				Type: domain.ActionCreateDirectionMultipleAdsets,
				Params: domain.ActionParams{
					DirectionID: "DIR001",
					AdSets: []domain.AdSetSpec{
						{Name: "A", CreativeIDs: []string{"CR-A"}, DailyBudgetCents: 1000},
						{Name: "B", CreativeIDs: []string{"CR-A"}, DailyBudgetCents: 1000},
					},
				},
			},
			setup: func() {
				mockPlatform.EXPECT().
					CreateAdSet(account, gomock.Any()).
					Return("ADSET-1", nil).
					Times(2)
				mockPlatform.EXPECT().
					CreateAds(account, "ADSET-1", domain.ObjectiveWhatsApp, gomock.Any(), false).
					Return([]*domain.CreatedAd{{AdID: "AD-1", CreativeID: "CR-A"}}).
					Times(2)
			},
			validate: func(t *testing.T, results []*domain.OperationResult) {
				assert.Len(t, results, 2)
			},
		},
		{
			name: "Anúncios novos em ad set existente não criam ad set",
			plan: &domain.CampaignActionPlan{
				Type: domain.ActionUseDirectionExistingAdset,
				Params: domain.ActionParams{
					DirectionID:     "DIR001",
					ExistingAdSetID: "ADSET-EXISTENTE",
					CreativeIDs:     []string{"CR-A"},
				},
			},
			setup: func() {
				mockPlatform.EXPECT().
					CreateAds(account, "ADSET-EXISTENTE", domain.ObjectiveWhatsApp, []*domain.Creative{creativeA}, false).
					Return([]*domain.CreatedAd{{AdID: "AD-1", CreativeID: "CR-A"}})
			},
			validate: func(t *testing.T, results []*domain.OperationResult) {
				assert.Len(t, results, 1)
				assert.Equal(t, "ADSET-EXISTENTE", results[0].AdSetID)
				assert.Equal(t, "Direção Principal", results[0].CampaignName)
			},
		},
		{
			name: "Criativo desconhecido no plano é pulado",
			plan: &domain.CampaignActionPlan{
				Type: domain.ActionUseDirectionExistingAdset,
				Params: domain.ActionParams{
					DirectionID:     "DIR001",
					ExistingAdSetID: "ADSET-EXISTENTE",
					CreativeIDs:     []string{"CR-A", "CR-INEXISTENTE"},
				},
			},
			setup: func() {
				mockPlatform.EXPECT().
					CreateAds(account, "ADSET-EXISTENTE", domain.ObjectiveWhatsApp, []*domain.Creative{creativeA}, false).
					Return([]*domain.CreatedAd{{AdID: "AD-1", CreativeID: "CR-A"}})
			},
			validate: func(t *testing.T, results []*domain.OperationResult) {
				assert.Len(t, results, 1)
				assert.Equal(t, 2, results[0].RequestedAds)
				assert.True(t, results[0].PartialFailure())
			},
		},
		{
			name: "Variante legada não é aceita pelos pontos de entrada de direction",
			plan: &domain.CampaignActionPlan{
				Type: domain.ActionCreateCampaignWithCreative,
				Params: domain.ActionParams{
					CampaignName: "Campanha",
					CreativeIDs:  []string{"CR-A"},
				},
			},
			setup: func() {},
			validate: func(t *testing.T, results []*domain.OperationResult) {
				assert.Nil(t, results)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			results := service.ExecuteDirectionPlan(account, direction, tt.plan, creativesByID)
			tt.validate(t, results)
		})
	}
}

func TestService_ExecuteDirectionPlan_NomePadraoDoAdSet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPlatform := mocks.NewMockPlatform(ctrl)
	service := &Service{cfg: &config.Config{}, platform: mockPlatform}

	account := &domain.AdAccount{ID: "ACC001"}
	direction := &domain.Direction{
		Name:               "Direção Principal",
		ExternalCampaignID: "98765",
		Objective:          domain.ObjectiveTraffic,
	}

	var capturedName string
	mockPlatform.EXPECT().
		CreateAdSet(account, gomock.Any()).
		DoAndReturn(func(_ *domain.AdAccount, params *domain.PlatformAdSetParams) (string, error) {
			capturedName = params.Name
			return "ADSET-1", nil
		})
	mockPlatform.EXPECT().
		CreateAds(account, "ADSET-1", domain.ObjectiveTraffic, gomock.Any(), false).
		Return(nil)

	plan := &domain.CampaignActionPlan{
		Type: domain.ActionCreateDirectionAdset,
		Params: domain.ActionParams{
			DirectionID:      "DIR001",
			DailyBudgetCents: 2000,
		},
	}

	results := service.ExecuteDirectionPlan(account, direction, plan, nil)

	assert.Len(t, results, 1)
	assert.Contains(t, capturedName, "Direção Principal - ")
}
