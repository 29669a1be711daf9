package scoring

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/campaign-builder-api/infrastructure/repository/mocks"
	"github.com/vfg2006/campaign-builder-api/internal/domain"
	scoringmocks "github.com/vfg2006/campaign-builder-api/internal/usecases/scoring/mocks"
	"go.uber.org/mock/gomock"
)

func metricRow(daysAgo int, spend float64, leads int) *domain.CreativeMetricRow {
	return &domain.CreativeMetricRow{
		Date:  time.Now().AddDate(0, 0, -daysAgo),
		Spend: spend,
		Leads: leads,
	}
}

func TestService_ScoreCreative(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMetricRepo := mocks.NewMockCreativeMetricRepository(ctrl)
	mockCreativeRepo := mocks.NewMockCreativeRepository(ctrl)

	service := &Service{
		metricRepository:   mockMetricRepo,
		creativeRepository: mockCreativeRepo,
	}

	account := &domain.AdAccount{ID: "ACC001"}
	creative := &domain.Creative{ID: "CR-A", AccountID: "ACC001"}

	tests := []struct {
		name      string
		targetCPL float64
		rows      []*domain.CreativeMetricRow
		rowsErr   error
		saveErr   error
		validate  func(t *testing.T, scoring *domain.CreativeScoring, err error)
	}{
		{
			name:      "Criativo consistente dentro do alvo tem risco baixo e recomendação de escala",
			targetCPL: 20.0,
			// CPL estável em 10 nas duas janelas, gasto alto
			rows: []*domain.CreativeMetricRow{
				metricRow(1, 50, 5),
				metricRow(2, 50, 5),
				metricRow(5, 50, 5),
				metricRow(6, 50, 5),
			},
			validate: func(t *testing.T, scoring *domain.CreativeScoring, err error) {
				assert.NoError(t, err)
				assert.Equal(t, domain.RiskLevelLow, scoring.RiskLevel)
				assert.Equal(t, TrendStable, scoring.Trend)
				assert.Equal(t, RecommendationScale, scoring.Recommendation)
				assert.Equal(t, float64(100-scoring.RiskScore), scoring.CreativeScore)
				assert.Nil(t, scoring.AdEater)
				assert.Nil(t, scoring.Fatigue)
			},
		},
		{
			name:      "CPL muito acima do alvo e piorando tem risco alto",
			targetCPL: 10.0,
			// Janela de 7 dias: 300/6 = 50; janela de 3 dias: 200/2 = 100
			rows: []*domain.CreativeMetricRow{
				metricRow(1, 100, 1),
				metricRow(2, 100, 1),
				metricRow(5, 50, 2),
				metricRow(6, 50, 2),
			},
			validate: func(t *testing.T, scoring *domain.CreativeScoring, err error) {
				assert.NoError(t, err)
				assert.Equal(t, TrendDeclining, scoring.Trend)
				assert.GreaterOrEqual(t, scoring.RiskScore, 51)
				assert.Contains(t, []string{RecommendationReduce, RecommendationPause}, scoring.Recommendation)

				// CPL agregado de 50 contra alvo de 10 marca o criativo
				// como devorador de orçamento
				assert.NotNil(t, scoring.AdEater)
				assert.Equal(t, AdEaterCritical, scoring.AdEater.Priority)
			},
		},
		{
			name:      "Criativo novo sem linhas tem risco moderado por falta de dados",
			targetCPL: 20.0,
			rows:      nil,
			validate: func(t *testing.T, scoring *domain.CreativeScoring, err error) {
				assert.NoError(t, err)
				// 25 (sem CPL) + 10 (sem tendência) + 20 (sem gasto) = 55
				assert.Equal(t, 55, scoring.RiskScore)
				assert.Equal(t, domain.RiskLevelHigh, scoring.RiskLevel)
				assert.Equal(t, TrendStable, scoring.Trend)
			},
		},
		{
			name:      "Erro do repositório de métricas aborta a pontuação",
			targetCPL: 20.0,
			rowsErr:   errors.New("erro de conexão"),
			validate: func(t *testing.T, scoring *domain.CreativeScoring, err error) {
				assert.Error(t, err)
				assert.Nil(t, scoring)
			},
		},
		{
			name:      "Falha ao persistir não invalida a pontuação calculada",
			targetCPL: 20.0,
			rows:      []*domain.CreativeMetricRow{metricRow(1, 50, 5)},
			saveErr:   errors.New("erro ao salvar"),
			validate: func(t *testing.T, scoring *domain.CreativeScoring, err error) {
				assert.NoError(t, err)
				assert.NotNil(t, scoring)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockMetricRepo.EXPECT().
				GetByDateRange("ACC001", "CR-A", gomock.Any(), gomock.Any()).
				Return(tt.rows, tt.rowsErr)

			if tt.rowsErr == nil {
				mockCreativeRepo.EXPECT().
					SaveScoring("CR-A", gomock.Any()).
					Return(tt.saveErr)
			}

			scoring, err := service.ScoreCreative(account, creative, tt.targetCPL)
			tt.validate(t, scoring, err)
		})
	}
}

func TestService_ScoreAccountCreatives(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMetricRepo := mocks.NewMockCreativeMetricRepository(ctrl)
	mockCreativeRepo := mocks.NewMockCreativeRepository(ctrl)

	service := &Service{
		metricRepository:   mockMetricRepo,
		creativeRepository: mockCreativeRepo,
	}

	account := &domain.AdAccount{ID: "ACC001"}
	creativeA := &domain.Creative{ID: "CR-A", AccountID: "ACC001"}
	creativeB := &domain.Creative{ID: "CR-B", AccountID: "ACC001"}

	// CR-A pontua; CR-B falha na consulta e é pulado
	mockMetricRepo.EXPECT().
		GetByDateRange("ACC001", "CR-A", gomock.Any(), gomock.Any()).
		Return(nil, nil)
	mockCreativeRepo.EXPECT().
		SaveScoring("CR-A", gomock.Any()).
		Return(nil)
	mockMetricRepo.EXPECT().
		GetByDateRange("ACC001", "CR-B", gomock.Any(), gomock.Any()).
		Return(nil, errors.New("erro de conexão"))

	scored := service.ScoreAccountCreatives(account, []*domain.Creative{creativeA, creativeB}, 20.0)

	assert.Equal(t, 1, scored)
	assert.NotNil(t, creativeA.Scoring)
	assert.Nil(t, creativeB.Scoring)
}

func TestBuildTrailingMetrics(t *testing.T) {
	now := time.Now()
	rows := []*domain.CreativeMetricRow{
		{Date: now.AddDate(0, 0, -1), Spend: 30, Leads: 3, Impressions: 1000, Clicks: 10, Frequency: 2.0},
		{Date: now.AddDate(0, 0, -2), Spend: 20, Leads: 1, Impressions: 1000, Clicks: 10, Frequency: 3.0},
		{Date: now.AddDate(0, 0, -5), Spend: 50, Leads: 2, Impressions: 2000, Clicks: 60},
	}

	trailing := BuildTrailingMetrics(rows, now)

	assert.Equal(t, 50.0, trailing.Spend3d)
	assert.Equal(t, 4, trailing.Leads3d)
	assert.Equal(t, 100.0, trailing.Spend7d)
	assert.Equal(t, 6, trailing.Leads7d)
	assert.Equal(t, 2000, trailing.Impressions3d)
	assert.Equal(t, 20, trailing.Clicks3d)
	assert.Equal(t, 4000, trailing.Impressions7d)
	assert.Equal(t, 80, trailing.Clicks7d)

	assert.Equal(t, 12.5, *trailing.CPL3d())
	assert.InDelta(t, 16.67, *trailing.CPL7d(), 0.01)

	// CTR em percentual; frequência é a média das linhas que a informaram
	assert.Equal(t, 1.0, *trailing.CTR3d())
	assert.Equal(t, 2.0, *trailing.CTR7d())
	assert.Equal(t, 2.5, trailing.FrequencyAvg7d)
}

func TestDetermineTrend(t *testing.T) {
	cpl := func(f float64) *float64 { return &f }

	tests := []struct {
		name     string
		cpl3d    *float64
		cpl7d    *float64
		expected string
	}{
		{name: "Queda acima de 10% é melhora", cpl3d: cpl(8), cpl7d: cpl(10), expected: TrendImproving},
		{name: "Alta acima de 10% é piora", cpl3d: cpl(12), cpl7d: cpl(10), expected: TrendDeclining},
		{name: "Variação pequena é estável", cpl3d: cpl(10.5), cpl7d: cpl(10), expected: TrendStable},
		{name: "Sem janela de 3 dias é estável", cpl3d: nil, cpl7d: cpl(10), expected: TrendStable},
		{name: "Sem janela de 7 dias é estável", cpl3d: cpl(10), cpl7d: nil, expected: TrendStable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetermineTrend(tt.cpl3d, tt.cpl7d))
		})
	}
}

func TestDetectAdEater(t *testing.T) {
	cpl := func(f float64) *float64 { return &f }

	tests := []struct {
		name       string
		aggCPL     *float64
		targetCPL  float64
		totalSpend float64
		totalLeads int
		expected   string
	}{
		{name: "CPL acima de 3x o alvo é crítico", aggCPL: cpl(35), targetCPL: 10, totalSpend: 70, totalLeads: 2, expected: AdEaterCritical},
		{name: "Gasto alto sem nenhum lead é alto", aggCPL: nil, targetCPL: 10, totalSpend: 120, totalLeads: 0, expected: AdEaterHigh},
		{name: "CPL acima de 1.5x o alvo é médio", aggCPL: cpl(18), targetCPL: 10, totalSpend: 90, totalLeads: 5, expected: AdEaterMedium},
		{name: "CPL dentro do alvo não marca", aggCPL: cpl(9), targetCPL: 10, totalSpend: 90, totalLeads: 10, expected: ""},
		{name: "Sem leads mas gasto baixo não marca", aggCPL: nil, targetCPL: 10, totalSpend: 30, totalLeads: 0, expected: ""},
		{name: "Sem alvo configurado só o caso sem leads se aplica", aggCPL: cpl(500), targetCPL: 0, totalSpend: 40, totalLeads: 1, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			signal := DetectAdEater(tt.aggCPL, tt.targetCPL, tt.totalSpend, tt.totalLeads)
			if tt.expected == "" {
				assert.Nil(t, signal)
				return
			}
			assert.NotNil(t, signal)
			assert.Equal(t, tt.expected, signal.Priority)
			assert.NotEmpty(t, signal.Reason)
		})
	}
}

func TestDetectFatigue(t *testing.T) {
	tests := []struct {
		name     string
		trailing *domain.TrailingMetrics
		expected string
	}{
		{
			name:     "Frequência média acima do limiar pede troca",
			trailing: &domain.TrailingMetrics{FrequencyAvg7d: 3.5},
			expected: FatigueReplace,
		},
		{
			name:     "Frequência muito alta pede troca urgente",
			trailing: &domain.TrailingMetrics{FrequencyAvg7d: 5.0},
			expected: FatigueUrgentReplace,
		},
		{
			// CTR 7d = 2%, CTR 3d = 1.5% → queda de 25%
			name:     "Queda de CTR além do limiar pede troca",
			trailing: &domain.TrailingMetrics{Impressions3d: 1000, Clicks3d: 15, Impressions7d: 2000, Clicks7d: 40, FrequencyAvg7d: 1.0},
			expected: FatigueReplace,
		},
		{
			// CTR 7d = 2%, CTR 3d = 1% → queda de 50%
			name:     "Queda acentuada de CTR pede troca urgente",
			trailing: &domain.TrailingMetrics{Impressions3d: 1000, Clicks3d: 10, Impressions7d: 2000, Clicks7d: 40, FrequencyAvg7d: 1.0},
			expected: FatigueUrgentReplace,
		},
		{
			name:     "Frequência e CTR saudáveis não marcam fadiga",
			trailing: &domain.TrailingMetrics{Impressions3d: 1000, Clicks3d: 20, Impressions7d: 2000, Clicks7d: 40, FrequencyAvg7d: 2.0},
			expected: "",
		},
		{
			name:     "Sem impressões e frequência baixa não marca fadiga",
			trailing: &domain.TrailingMetrics{FrequencyAvg7d: 1.0},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			signal := DetectFatigue(tt.trailing)
			if tt.expected == "" {
				assert.Nil(t, signal)
				return
			}
			assert.NotNil(t, signal)
			assert.Equal(t, tt.expected, signal.Recommendation)
		})
	}
}

func TestService_PauseCreativeAds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMetricRepo := mocks.NewMockCreativeMetricRepository(ctrl)
	mockPauser := scoringmocks.NewMockAdPauser(ctrl)

	service := &Service{
		metricRepository: mockMetricRepo,
		platform:         mockPauser,
	}

	account := &domain.AdAccount{ID: "ACC001"}
	creative := &domain.Creative{ID: "CR-A", AccountID: "ACC001"}

	t.Run("Pausa cada anúncio distinto uma única vez", func(t *testing.T) {
		rows := []*domain.CreativeMetricRow{
			{ExternalAdID: "AD1"},
			{ExternalAdID: "AD2"},
			{ExternalAdID: "AD1"},
			{ExternalAdID: ""},
		}
		mockMetricRepo.EXPECT().
			GetByDateRange("ACC001", "CR-A", gomock.Any(), gomock.Any()).
			Return(rows, nil)
		mockPauser.EXPECT().UpdateAdStatus(account, "AD1", "PAUSED").Return(nil)
		mockPauser.EXPECT().UpdateAdStatus(account, "AD2", "PAUSED").Return(nil)

		paused, err := service.PauseCreativeAds(account, creative)

		assert.NoError(t, err)
		assert.Equal(t, 2, paused)
	})

	t.Run("Falha em um anúncio não interrompe os demais", func(t *testing.T) {
		rows := []*domain.CreativeMetricRow{
			{ExternalAdID: "AD1"},
			{ExternalAdID: "AD2"},
		}
		mockMetricRepo.EXPECT().
			GetByDateRange("ACC001", "CR-A", gomock.Any(), gomock.Any()).
			Return(rows, nil)
		mockPauser.EXPECT().UpdateAdStatus(account, "AD1", "PAUSED").Return(errors.New("erro da plataforma"))
		mockPauser.EXPECT().UpdateAdStatus(account, "AD2", "PAUSED").Return(nil)

		paused, err := service.PauseCreativeAds(account, creative)

		assert.NoError(t, err)
		assert.Equal(t, 1, paused)
	})

	t.Run("Erro na consulta do cache aborta a pausa", func(t *testing.T) {
		mockMetricRepo.EXPECT().
			GetByDateRange("ACC001", "CR-A", gomock.Any(), gomock.Any()).
			Return(nil, errors.New("erro de conexão"))

		paused, err := service.PauseCreativeAds(account, creative)

		assert.Error(t, err)
		assert.Equal(t, 0, paused)
	})
}

func TestDetermineRecommendation(t *testing.T) {
	assert.Equal(t, RecommendationScale, DetermineRecommendation(domain.RiskLevelLow, TrendStable))
	assert.Equal(t, RecommendationMonitor, DetermineRecommendation(domain.RiskLevelLow, TrendDeclining))
	assert.Equal(t, RecommendationMonitor, DetermineRecommendation(domain.RiskLevelMedium, TrendImproving))
	assert.Equal(t, RecommendationReduce, DetermineRecommendation(domain.RiskLevelHigh, TrendStable))
	assert.Equal(t, RecommendationPause, DetermineRecommendation(domain.RiskLevelCritical, TrendDeclining))
}
