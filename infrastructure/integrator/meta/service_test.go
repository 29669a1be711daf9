package meta

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	metadomain "github.com/vfg2006/campaign-builder-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/campaign-builder-api/infrastructure/integrator/meta/metaclient/mocks"
	"github.com/vfg2006/campaign-builder-api/internal/config"
	"github.com/vfg2006/campaign-builder-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	return &config.Config{
		Meta: config.Meta{
			PageID:         "PAGE-1",
			WhatsAppNumber: "+5511999999999",
		},
		Campaign: config.Campaign{
			DefaultCountry: "BR",
			DefaultAgeMin:  25,
			DefaultAgeMax:  65,
		},
	}
}

func whatsAppDestinationError() error {
	return &metadomain.APIError{
		StatusCode: 400,
		Details: metadomain.ErrorDetails{
			Code:         100,
			ErrorSubcode: metadomain.WhatsAppDestinationErrorSubcode,
			Message:      "The WhatsApp number is not eligible for this destination",
		},
	}
}

func TestMetaIntegrator_CreateAdSet_WhatsAppRetry(t *testing.T) {
	account := &domain.AdAccount{ID: "ACC001"}

	params := &domain.PlatformAdSetParams{
		CampaignID:       "CAMP-1",
		Name:             "Ad Set WhatsApp",
		Objective:        domain.ObjectiveWhatsApp,
		DailyBudgetCents: 2000,
		StartImmediately: true,
	}

	tests := []struct {
		name     string
		cfg      *config.Config
		setup    func(mockClient *mocks.MockClient)
		validate func(t *testing.T, adSetID string, err error)
	}{
		{
			name: "Recusa do destino WhatsApp tenta exatamente uma vez sem o número",
			cfg:  testConfig(),
			setup: func(mockClient *mocks.MockClient) {
				mockClient.EXPECT().
					CreateAdSet(account, gomock.Any()).
					DoAndReturn(func(_ *domain.AdAccount, request *metadomain.AdSetRequest) (string, error) {
						assert.Equal(t, metadomain.DestinationTypeWhatsApp, request.DestinationType)
						assert.Equal(t, "+5511999999999", request.PromotedObject.WhatsAppPhoneNumber)
						return "", whatsAppDestinationError()
					})
				mockClient.EXPECT().
					CreateAdSet(account, gomock.Any()).
					DoAndReturn(func(_ *domain.AdAccount, request *metadomain.AdSetRequest) (string, error) {
						assert.Empty(t, request.PromotedObject.WhatsAppPhoneNumber)
						return "ADSET-1", nil
					})
			},
			validate: func(t *testing.T, adSetID string, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "ADSET-1", adSetID)
			},
		},
		{
			name: "Recusa na segunda tentativa é terminal",
			cfg:  testConfig(),
			setup: func(mockClient *mocks.MockClient) {
				mockClient.EXPECT().
					CreateAdSet(account, gomock.Any()).
					Return("", whatsAppDestinationError()).
					Times(2)
			},
			validate: func(t *testing.T, adSetID string, err error) {
				assert.Error(t, err)
				assert.Empty(t, adSetID)
			},
		},
		{
			name: "Outro erro da plataforma não gera retry",
			cfg:  testConfig(),
			setup: func(mockClient *mocks.MockClient) {
				mockClient.EXPECT().
					CreateAdSet(account, gomock.Any()).
					Return("", &metadomain.APIError{
						StatusCode: 400,
						Details:    metadomain.ErrorDetails{Code: 100, ErrorSubcode: 12345},
					})
			},
			validate: func(t *testing.T, adSetID string, err error) {
				assert.Error(t, err)
			},
		},
		{
			name: "Sem número de WhatsApp configurado o destino é Messenger e não há retry",
			cfg: &config.Config{
				Meta:     config.Meta{PageID: "PAGE-1"},
				Campaign: config.Campaign{DefaultCountry: "BR", DefaultAgeMin: 25, DefaultAgeMax: 65},
			},
			setup: func(mockClient *mocks.MockClient) {
				mockClient.EXPECT().
					CreateAdSet(account, gomock.Any()).
					DoAndReturn(func(_ *domain.AdAccount, request *metadomain.AdSetRequest) (string, error) {
						assert.Equal(t, metadomain.DestinationTypeMessenger, request.DestinationType)
						return "", whatsAppDestinationError()
					})
			},
			validate: func(t *testing.T, adSetID string, err error) {
				assert.Error(t, err)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockClient := mocks.NewMockClient(ctrl)
			tt.setup(mockClient)

			service := New(tt.cfg, mockClient)

			adSetID, err := service.CreateAdSet(account, params)
			tt.validate(t, adSetID, err)
		})
	}
}

func TestMetaIntegrator_CreateAdSet_RequestDerivado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := New(testConfig(), mockClient)

	account := &domain.AdAccount{ID: "ACC001"}

	var captured *metadomain.AdSetRequest
	mockClient.EXPECT().
		CreateAdSet(account, gomock.Any()).
		DoAndReturn(func(_ *domain.AdAccount, request *metadomain.AdSetRequest) (string, error) {
			captured = request
			return "ADSET-1", nil
		})

	_, err := service.CreateAdSet(account, &domain.PlatformAdSetParams{
		CampaignID:       "CAMP-1",
		Name:             "Ad Set Tráfego",
		Objective:        domain.ObjectiveTraffic,
		DailyBudgetCents: 1500,
	})

	assert.NoError(t, err)
	assert.Equal(t, metadomain.OptimizationGoalLinkClicks, captured.OptimizationGoal)
	assert.Equal(t, metadomain.DestinationTypeWebsite, captured.DestinationType)
	assert.Equal(t, metadomain.BillingEventImpressions, captured.BillingEvent)
	assert.Equal(t, metadomain.StatusPaused, captured.Status)
	assert.Equal(t, []string{"BR"}, captured.Targeting.GeoLocations.Countries)
	assert.Equal(t, 25, captured.Targeting.AgeMin)
	assert.Equal(t, 65, captured.Targeting.AgeMax)

	// Sem StartImmediately o início é agendado para a próxima meia-noite
	assert.NotEmpty(t, captured.StartTime)
}

func TestMetaIntegrator_CreateAdSet_ObjetivoSemMapeamento(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := New(testConfig(), mocks.NewMockClient(ctrl))

	_, err := service.CreateAdSet(&domain.AdAccount{ID: "ACC001"}, &domain.PlatformAdSetParams{
		Objective: domain.Objective("BRANDING"),
	})

	assert.Error(t, err)
}

func TestMetaIntegrator_CreateAds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := New(testConfig(), mockClient)

	account := &domain.AdAccount{ID: "ACC001"}

	creatives := []*domain.Creative{
		{
			ID:    "CR-A",
			Title: "Criativo A",
			PlatformIDs: map[domain.Objective]string{
				domain.ObjectiveWhatsApp: "777",
			},
		},
		{
			// Sem ID de plataforma para o objetivo: pulado
			ID:    "CR-B",
			Title: "Criativo B",
			PlatformIDs: map[domain.Objective]string{
				domain.ObjectiveTraffic: "888",
			},
		},
		{
			ID:    "CR-C",
			Title: "Criativo C",
			PlatformIDs: map[domain.Objective]string{
				domain.ObjectiveWhatsApp: "999",
			},
		},
	}

	mockClient.EXPECT().
		CreateAd(account, &metadomain.AdRequest{
			Name:     "Criativo A",
			AdSetID:  "ADSET-1",
			Status:   metadomain.StatusPaused,
			Creative: metadomain.AdCreativeRef{CreativeID: "777"},
		}).
		Return("AD-1", nil)
	mockClient.EXPECT().
		CreateAd(account, &metadomain.AdRequest{
			Name:     "Criativo C",
			AdSetID:  "ADSET-1",
			Status:   metadomain.StatusPaused,
			Creative: metadomain.AdCreativeRef{CreativeID: "999"},
		}).
		Return("", errors.New("erro na API do Meta"))

	created := service.CreateAds(account, "ADSET-1", domain.ObjectiveWhatsApp, creatives, false)

	// CR-B não tem ID para o objetivo e CR-C falhou; o lote não é desfeito
	assert.Len(t, created, 1)
	assert.Equal(t, "AD-1", created[0].AdID)
	assert.Equal(t, "CR-A", created[0].CreativeID)
	assert.Equal(t, "777", created[0].PlatformCreativeID)
}

func TestMetaIntegrator_CreateCampaign(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := New(testConfig(), mockClient)

	account := &domain.AdAccount{ID: "ACC001"}

	mockClient.EXPECT().
		CreateCampaign(account, &metadomain.CreateCampaignRequest{
			Name:                "Campanha Agosto",
			Objective:           "OUTCOME_ENGAGEMENT",
			Status:              metadomain.StatusActive,
			BuyingType:          "AUCTION",
			SpecialAdCategories: []string{},
		}).
		Return("CAMP-1", nil)

	campaignID, err := service.CreateCampaign(account, "Campanha Agosto", domain.ObjectiveWhatsApp, true)

	assert.NoError(t, err)
	assert.Equal(t, "CAMP-1", campaignID)
}

func TestMetaIntegrator_UpdateAdStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := New(testConfig(), mockClient)

	account := &domain.AdAccount{ID: "ACC001"}

	t.Run("Pausa o anúncio na plataforma", func(t *testing.T) {
		mockClient.EXPECT().
			UpdateAdStatus(account, "AD1", metadomain.StatusPaused).
			Return(nil)

		assert.NoError(t, service.UpdateAdStatus(account, "AD1", metadomain.StatusPaused))
	})

	t.Run("Propaga o erro da plataforma", func(t *testing.T) {
		mockClient.EXPECT().
			UpdateAdStatus(account, "AD1", metadomain.StatusPaused).
			Return(errors.New("erro da plataforma"))

		assert.Error(t, service.UpdateAdStatus(account, "AD1", metadomain.StatusPaused))
	})
}

func TestNextMidnightStartTime(t *testing.T) {
	// 2026-08-28 10:00 UTC são 15:00 no fuso de referência UTC+5: a próxima
	// meia-noite local é 2026-08-29 00:00 UTC+5
	now := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)

	start := NextMidnightStartTime(now)

	assert.Equal(t, "2026-08-29T00:00:00+05:00", start.Format(time.RFC3339))
}

func TestNextMidnightStartTime_ViradaDeDiaNoFuso(t *testing.T) {
	// 2026-08-28 21:00 UTC já são 02:00 do dia 29 no fuso de referência
	now := time.Date(2026, 8, 28, 21, 0, 0, 0, time.UTC)

	start := NextMidnightStartTime(now)

	assert.Equal(t, "2026-08-30T00:00:00+05:00", start.Format(time.RFC3339))
}

func TestFactoryCreativeMetricRows(t *testing.T) {
	insights := []metadomain.AdInsight{
		{
			AdID:             "AD-1",
			Impressions:      "1000",
			Reach:            "800",
			Spend:            "50.25",
			Clicks:           "20",
			InlineLinkClicks: "15",
			Frequency:        "1.25",
			DateStart:        "2026-08-27",
			Actions: []metadomain.Action{
				{ActionType: "lead", Value: "2"},
				{ActionType: "link_click", Value: "15"},
				{ActionType: "post_engagement", Value: "40"},
			},
		},
		{
			// Data inválida: linha descartada
			AdID:      "AD-2",
			DateStart: "27/08/2026",
		},
	}

	rows := FactoryCreativeMetricRows("ACC001", "CR-A", insights)

	assert.Len(t, rows, 1)
	assert.Equal(t, "ACC001", rows[0].AccountID)
	assert.Equal(t, "CR-A", rows[0].CreativeID)
	assert.Equal(t, "AD-1", rows[0].ExternalAdID)
	assert.Equal(t, 1000, rows[0].Impressions)
	assert.Equal(t, 800, rows[0].Reach)
	assert.Equal(t, 50.25, rows[0].Spend)
	assert.Equal(t, 20, rows[0].Clicks)
	assert.Equal(t, 2, rows[0].Leads)
	assert.Equal(t, 1.25, rows[0].Frequency)
	assert.Equal(t, time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC), rows[0].Date)
}

func TestMetaIntegrator_GetCreativeAdMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := New(testConfig(), mockClient)

	account := &domain.AdAccount{ID: "ACC001"}
	creative := &domain.Creative{
		ID: "CR-A",
		PlatformIDs: map[domain.Objective]string{
			domain.ObjectiveWhatsApp: "777",
			domain.ObjectiveTraffic:  "",
		},
	}
	filters := &domain.InsightFilters{
		StartDate: time.Date(2026, 7, 29, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC),
	}

	// O ID vazio do objetivo Traffic não gera consulta
	mockClient.EXPECT().
		GetAdInsightsByCreative(account, "777", filters).
		Return([]metadomain.AdInsight{
			{AdID: "AD-1", Impressions: "100", DateStart: "2026-08-27"},
		}, nil)

	rows, err := service.GetCreativeAdMetrics(account, creative, filters)

	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, "AD-1", rows[0].ExternalAdID)
}
