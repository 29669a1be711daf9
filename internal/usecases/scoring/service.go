package scoring

import (
	"fmt"
	"math"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-builder-api/infrastructure/repository"
	"github.com/vfg2006/campaign-builder-api/internal/domain"
)

// Gasto mínimo (unidade principal) para confiança plena no volume de dados
const minSpendForConfidence = 50.0

// Status enviado à plataforma ao pausar um anúncio
const adStatusPaused = "PAUSED"

// Limiares de fadiga: frequência média da janela de 7 dias e queda percentual
// do CTR da janela de 3 dias frente à de 7 dias
const (
	fatigueFrequencyThreshold  = 3.0
	fatigueCTRDeclineThreshold = -20.0
)

const (
	TrendImproving = "improving"
	TrendStable    = "stable"
	TrendDeclining = "declining"

	RecommendationScale   = "scale"
	RecommendationMonitor = "monitor"
	RecommendationReduce  = "reduce"
	RecommendationPause   = "pause"

	AdEaterCritical = "critical"
	AdEaterHigh     = "high"
	AdEaterMedium   = "medium"

	FatigueReplace       = "replace"
	FatigueUrgentReplace = "urgent_replace"
)

// Scorer calcula o bloco de pontuação de risco de um criativo a partir das
// janelas móveis de 3 e 7 dias do cache de métricas, e pausa na plataforma os
// anúncios dos criativos condenados
type Scorer interface {
	ScoreCreative(account *domain.AdAccount, creative *domain.Creative, targetCPL float64) (*domain.CreativeScoring, error)
	ScoreAccountCreatives(account *domain.AdAccount, creatives []*domain.Creative, targetCPL float64) int
	PauseCreativeAds(account *domain.AdAccount, creative *domain.Creative) (int, error)
}

// AdPauser altera o status de objetos de anúncio na plataforma
type AdPauser interface {
	UpdateAdStatus(account *domain.AdAccount, objectID, status string) error
}

type Service struct {
	metricRepository   repository.CreativeMetricRepository
	creativeRepository repository.CreativeRepository
	platform           AdPauser
}

func NewService(
	metricRepository repository.CreativeMetricRepository,
	creativeRepository repository.CreativeRepository,
	platform AdPauser,
) Scorer {
	return &Service{
		metricRepository:   metricRepository,
		creativeRepository: creativeRepository,
		platform:           platform,
	}
}

// ScoreCreative calcula e persiste a pontuação de um criativo. Sem linhas no
// cache a pontuação reflete "criativo novo": risco moderado por falta de dados
func (s *Service) ScoreCreative(account *domain.AdAccount, creative *domain.Creative, targetCPL float64) (*domain.CreativeScoring, error) {
	now := time.Now()
	rows, err := s.metricRepository.GetByDateRange(account.ID, creative.ID, now.AddDate(0, 0, -7), now)
	if err != nil {
		return nil, err
	}

	trailing := BuildTrailingMetrics(rows, now)

	var totalSpend float64
	var totalLeads int
	for _, row := range rows {
		totalSpend += row.Spend
		totalLeads += row.Leads
	}

	var aggCPL *float64
	if totalLeads > 0 {
		cpl := totalSpend / float64(totalLeads)
		aggCPL = &cpl
	}

	riskScore, riskLevel := CalculateRiskScore(aggCPL, targetCPL, trailing.CPL3d(), trailing.CPL7d(), totalSpend)
	trend := DetermineTrend(trailing.CPL3d(), trailing.CPL7d())

	scoring := &domain.CreativeScoring{
		RiskScore:      riskScore,
		RiskLevel:      riskLevel,
		CreativeScore:  float64(100 - riskScore),
		Trend:          trend,
		Recommendation: DetermineRecommendation(riskLevel, trend),
		AdEater:        DetectAdEater(aggCPL, targetCPL, totalSpend, totalLeads),
		Fatigue:        DetectFatigue(trailing),
	}

	if err := s.creativeRepository.SaveScoring(creative.ID, scoring); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"account_id":  account.ID,
			"creative_id": creative.ID,
		}).Warn("scoring: failed to persist creative scoring")
	}

	return scoring, nil
}

// ScoreAccountCreatives pontua todos os criativos informados e retorna
// quantos foram pontuados com sucesso
func (s *Service) ScoreAccountCreatives(account *domain.AdAccount, creatives []*domain.Creative, targetCPL float64) int {
	scored := 0
	for _, creative := range creatives {
		scoring, err := s.ScoreCreative(account, creative, targetCPL)
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"account_id":  account.ID,
				"creative_id": creative.ID,
			}).Warn("scoring: failed to score creative")
			continue
		}

		creative.Scoring = scoring
		scored++
	}
	return scored
}

// PauseCreativeAds pausa na plataforma todos os anúncios que veicularam o
// criativo na janela de 7 dias. Falhas individuais são registradas e não
// interrompem a pausa dos demais anúncios
func (s *Service) PauseCreativeAds(account *domain.AdAccount, creative *domain.Creative) (int, error) {
	now := time.Now()
	rows, err := s.metricRepository.GetByDateRange(account.ID, creative.ID, now.AddDate(0, 0, -7), now)
	if err != nil {
		return 0, err
	}

	seen := make(map[string]bool)
	paused := 0
	for _, row := range rows {
		if row.ExternalAdID == "" || seen[row.ExternalAdID] {
			continue
		}
		seen[row.ExternalAdID] = true

		if err := s.platform.UpdateAdStatus(account, row.ExternalAdID, adStatusPaused); err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"account_id":  account.ID,
				"creative_id": creative.ID,
				"ad_id":       row.ExternalAdID,
			}).Warn("scoring: failed to pause ad")
			continue
		}
		paused++
	}

	return paused, nil
}

// BuildTrailingMetrics separa as linhas do cache nas janelas de 3 e 7 dias
// contadas a partir de "agora". A frequência da janela de 7 dias é a média
// das linhas que a informaram
func BuildTrailingMetrics(rows []*domain.CreativeMetricRow, now time.Time) *domain.TrailingMetrics {
	cutoff3d := now.AddDate(0, 0, -3)

	trailing := &domain.TrailingMetrics{}
	frequencySum := 0.0
	frequencyCount := 0
	for _, row := range rows {
		trailing.Spend7d += row.Spend
		trailing.Leads7d += row.Leads
		trailing.Impressions7d += row.Impressions
		trailing.Clicks7d += row.Clicks

		if row.Frequency > 0 {
			frequencySum += row.Frequency
			frequencyCount++
		}

		if row.Date.After(cutoff3d) {
			trailing.Spend3d += row.Spend
			trailing.Leads3d += row.Leads
			trailing.Impressions3d += row.Impressions
			trailing.Clicks3d += row.Clicks
		}
	}

	if frequencyCount > 0 {
		trailing.FrequencyAvg7d = frequencySum / float64(frequencyCount)
	}

	return trailing
}

// DetectAdEater marca o criativo que queima orçamento sem retorno: CPL acima
// de 3x o alvo é crítico, gasto relevante sem nenhum lead é alto e CPL acima
// de 1,5x o alvo é médio. Sem alvo configurado só o caso sem leads se aplica
func DetectAdEater(aggCPL *float64, targetCPL, totalSpend float64, totalLeads int) *domain.AdEaterSignal {
	if targetCPL > 0 && aggCPL != nil && *aggCPL > targetCPL*3 {
		return &domain.AdEaterSignal{
			Priority: AdEaterCritical,
			Reason:   fmt.Sprintf("CPL %.2f acima de 3x o alvo %.2f", *aggCPL, targetCPL),
		}
	}

	if totalLeads == 0 && totalSpend >= minSpendForConfidence*2 {
		return &domain.AdEaterSignal{
			Priority: AdEaterHigh,
			Reason:   fmt.Sprintf("nenhum lead com gasto de %.2f", totalSpend),
		}
	}

	if targetCPL > 0 && aggCPL != nil && *aggCPL > targetCPL*1.5 {
		return &domain.AdEaterSignal{
			Priority: AdEaterMedium,
			Reason:   fmt.Sprintf("CPL %.2f acima de 1.5x o alvo %.2f", *aggCPL, targetCPL),
		}
	}

	return nil
}

// DetectFatigue verifica fadiga da audiência: frequência média acima do
// limiar ou queda do CTR da janela de 3 dias frente à de 7 dias além do
// limiar. Ultrapassar 1,5x qualquer limiar pede troca urgente do criativo
func DetectFatigue(trailing *domain.TrailingMetrics) *domain.FatigueSignal {
	if trailing == nil {
		return nil
	}

	declinePct := 0.0
	ctr3d := trailing.CTR3d()
	ctr7d := trailing.CTR7d()
	if ctr3d != nil && ctr7d != nil && *ctr7d > 0 {
		declinePct = (*ctr3d - *ctr7d) / *ctr7d * 100
	}

	frequency := trailing.FrequencyAvg7d
	if frequency <= fatigueFrequencyThreshold && declinePct >= fatigueCTRDeclineThreshold {
		return nil
	}

	recommendation := FatigueReplace
	if frequency > fatigueFrequencyThreshold*1.5 || declinePct < fatigueCTRDeclineThreshold*1.5 {
		recommendation = FatigueUrgentReplace
	}

	return &domain.FatigueSignal{
		Frequency:      frequency,
		CTRDeclinePct:  math.Round(declinePct*10) / 10,
		Recommendation: recommendation,
	}
}

// CalculateRiskScore compõe o risco 0-100 de um criativo:
// desvio do CPL alvo (0-40) + tendência (0-20) + confiança de volume (0-20)
// + bônus de consistência (-20-0)
func CalculateRiskScore(aggCPL *float64, targetCPL float64, cpl3d, cpl7d *float64, totalSpend float64) (int, domain.RiskLevel) {
	score := 0.0

	// 1. Desvio do CPL em relação ao alvo (0-40)
	if aggCPL != nil && *aggCPL > 0 && targetCPL > 0 {
		ratio := *aggCPL / targetCPL
		switch {
		case ratio <= 1.0:
			// CPL dentro do alvo
		case ratio <= 1.5:
			score += (ratio - 1.0) * 40
		case ratio <= 2.0:
			score += 20 + (ratio-1.5)*30
		default:
			score += math.Min(40, 35+(ratio-2.0)*10)
		}
	} else {
		// Ainda sem leads: risco moderado
		score += 25
	}

	// 2. Tendência do CPL (0-20)
	if cpl3d != nil && cpl7d != nil && *cpl7d > 0 {
		trendPct := (*cpl3d - *cpl7d) / *cpl7d * 100
		switch {
		case trendPct <= -10:
			// Melhorando
		case trendPct <= 0:
			score += 5
		case trendPct <= 20:
			score += 5 + trendPct*0.5
		default:
			score += 15 + math.Min(5, (trendPct-20)*0.25)
		}
	} else {
		// Sem dados de tendência
		score += 10
	}

	// 3. Confiança de volume (0-20)
	switch {
	case totalSpend >= minSpendForConfidence*2:
		// Confiança alta
	case totalSpend >= minSpendForConfidence:
		score += 10
	case totalSpend >= minSpendForConfidence*0.5:
		score += 15
	default:
		score += 20
	}

	// 4. Bônus de consistência (-20-0): janelas de 3 e 7 dias próximas
	if cpl3d != nil && cpl7d != nil && *cpl7d > 0 {
		variancePct := math.Abs(*cpl3d-*cpl7d) / *cpl7d * 100
		switch {
		case variancePct <= 10:
			score -= 20
		case variancePct <= 20:
			score -= 10
		case variancePct <= 30:
			score -= 5
		}
	}

	rounded := int(math.Round(score))
	if rounded < 0 {
		rounded = 0
	}
	if rounded > 100 {
		rounded = 100
	}

	return rounded, riskLevelFor(rounded)
}

func riskLevelFor(score int) domain.RiskLevel {
	switch {
	case score <= 25:
		return domain.RiskLevelLow
	case score <= 50:
		return domain.RiskLevelMedium
	case score <= 75:
		return domain.RiskLevelHigh
	default:
		return domain.RiskLevelCritical
	}
}

// DetermineTrend compara as janelas de 3 e 7 dias: variação de ±10% define
// melhora ou piora; o resto é estável
func DetermineTrend(cpl3d, cpl7d *float64) string {
	if cpl3d == nil || cpl7d == nil || *cpl7d == 0 {
		return TrendStable
	}

	changePct := (*cpl3d - *cpl7d) / *cpl7d * 100
	switch {
	case changePct <= -10:
		return TrendImproving
	case changePct >= 10:
		return TrendDeclining
	default:
		return TrendStable
	}
}

// DetermineRecommendation cruza nível de risco e tendência
func DetermineRecommendation(riskLevel domain.RiskLevel, trend string) string {
	switch riskLevel {
	case domain.RiskLevelLow:
		if trend == TrendDeclining {
			return RecommendationMonitor
		}
		return RecommendationScale
	case domain.RiskLevelMedium:
		return RecommendationMonitor
	case domain.RiskLevelHigh:
		return RecommendationReduce
	default:
		return RecommendationPause
	}
}
