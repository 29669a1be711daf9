package resolving

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-builder-api/infrastructure/repository"
	"github.com/vfg2006/campaign-builder-api/internal/config"
	"github.com/vfg2006/campaign-builder-api/internal/domain"
	"github.com/vfg2006/campaign-builder-api/pkg/utils"
)

// LiveMetricsFetcher consulta a plataforma ao vivo pelos anúncios que
// veiculam um criativo
type LiveMetricsFetcher interface {
	GetCreativeAdMetrics(account *domain.AdAccount, creative *domain.Creative, filters *domain.InsightFilters) ([]*domain.CreativeMetricRow, error)
}

// Resolver resolve a performance recente de cada criativo: cache datado
// primeiro (hoje, depois ontem), consulta ao vivo apenas para os criativos
// sem cache
type Resolver interface {
	ResolvePerformance(account *domain.AdAccount, creatives []*domain.Creative) (map[string]*domain.PerformanceMetrics, error)
}

type Service struct {
	cfg              *config.Config
	metricRepository repository.CreativeMetricRepository
	fetcher          LiveMetricsFetcher
}

func NewService(
	cfg *config.Config,
	metricRepository repository.CreativeMetricRepository,
	fetcher LiveMetricsFetcher,
) Resolver {
	return &Service{
		cfg:              cfg,
		metricRepository: metricRepository,
		fetcher:          fetcher,
	}
}

// ResolvePerformance devolve o mapa criativo -> métricas agregadas. Criativos
// sem dados ficam ausentes do mapa; falhas individuais de consulta ao vivo
// degradam para "sem dados" e nunca abortam a resolução
func (s *Service) ResolvePerformance(account *domain.AdAccount, creatives []*domain.Creative) (map[string]*domain.PerformanceMetrics, error) {
	if len(creatives) == 0 {
		return map[string]*domain.PerformanceMetrics{}, nil
	}

	creativeIDs := make([]string, 0, len(creatives))
	for _, creative := range creatives {
		creativeIDs = append(creativeIDs, creative.ID)
	}

	cached, cacheDate, err := s.resolveFromCache(account, creativeIDs)
	if err != nil {
		return nil, err
	}

	missing := make([]*domain.Creative, 0)
	for _, creative := range creatives {
		if _, ok := cached[creative.ID]; !ok {
			missing = append(missing, creative)
		}
	}

	logrus.WithFields(logrus.Fields{
		"account_id": account.ID,
		"requested":  len(creatives),
		"cache_hits": len(cached),
		"cache_date": cacheDate,
	}).Debug("resolver: cache resolution finished")

	if len(missing) == 0 || !account.HasLiveAccess() {
		return cached, nil
	}

	live := s.resolveLive(account, missing)

	// Entradas do cache têm precedência quando existem nos dois mapas
	for creativeID, metrics := range live {
		if _, ok := cached[creativeID]; !ok {
			cached[creativeID] = metrics
		}
	}

	return cached, nil
}

// resolveFromCache consulta as linhas datadas de hoje; se não houver nenhuma,
// tenta ontem. Não há fallback além de ontem
func (s *Service) resolveFromCache(account *domain.AdAccount, creativeIDs []string) (map[string]*domain.PerformanceMetrics, string, error) {
	today := time.Now()

	rows, err := s.metricRepository.GetByAccountDateAndCreativeIDs(account.ID, today, creativeIDs)
	if err != nil {
		return nil, "", err
	}

	date := today
	if len(rows) == 0 {
		date = today.AddDate(0, 0, -1)
		rows, err = s.metricRepository.GetByAccountDateAndCreativeIDs(account.ID, date, creativeIDs)
		if err != nil {
			return nil, "", err
		}
	}

	dateStr := date.Format(time.DateOnly)

	grouped := make(map[string][]*domain.CreativeMetricRow)
	for _, row := range rows {
		grouped[row.CreativeID] = append(grouped[row.CreativeID], row)
	}

	metrics := make(map[string]*domain.PerformanceMetrics, len(grouped))
	for creativeID, creativeRows := range grouped {
		metrics[creativeID] = AggregateRows(creativeRows, dateStr)
	}

	return metrics, dateStr, nil
}

// resolveLive dispara uma consulta por criativo faltante, com fan-out
// limitado por semáforo. Resultados chegam em qualquer ordem mas o merge por
// ID é determinístico
func (s *Service) resolveLive(account *domain.AdAccount, missing []*domain.Creative) map[string]*domain.PerformanceMetrics {
	endDate := time.Now()
	filters := &domain.InsightFilters{
		StartDate: endDate.AddDate(0, 0, -s.cfg.Campaign.InsightsLookbackDays),
		EndDate:   endDate,
	}

	maxConcurrent := s.cfg.Campaign.LiveFetchMaxConcurrency
	if maxConcurrent <= 0 {
		maxConcurrent = 5
	}
	semaphore := make(chan struct{}, maxConcurrent)

	var fetchWg sync.WaitGroup

	// Mutex para proteger o mapa durante atualizações concorrentes
	var mutex sync.Mutex
	metrics := make(map[string]*domain.PerformanceMetrics)

	for _, creative := range missing {
		fetchWg.Add(1)

		go func(creative *domain.Creative) {
			defer fetchWg.Done()

			// Adquirir uma vaga no semáforo
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			rows, err := s.fetcher.GetCreativeAdMetrics(account, creative, filters)
			if err != nil {
				logrus.WithError(err).WithFields(logrus.Fields{
					"account_id":  account.ID,
					"creative_id": creative.ID,
				}).Warn("resolver: live fetch failed, creative resolves without performance data")
				return
			}

			if len(rows) == 0 {
				return
			}

			aggregated := AggregateRows(rows, filters.EndDate.Format(time.DateOnly))

			mutex.Lock()
			metrics[creative.ID] = aggregated
			mutex.Unlock()
		}(creative)
	}

	fetchWg.Wait()

	return metrics
}

// AggregateRows soma as linhas brutas de um criativo (todas as instâncias de
// anúncio que o veiculam), tira a média da frequência e deriva ctr, cpm e
// cpl com duas casas decimais. A agregação é independente da ordem das linhas
func AggregateRows(rows []*domain.CreativeMetricRow, date string) *domain.PerformanceMetrics {
	metrics := &domain.PerformanceMetrics{Date: date}

	var frequencySum float64
	for _, row := range rows {
		metrics.Impressions += row.Impressions
		metrics.Reach += row.Reach
		metrics.Spend += row.Spend
		metrics.Clicks += row.Clicks
		metrics.LinkClicks += row.LinkClicks
		metrics.Leads += row.Leads
		frequencySum += row.Frequency
	}

	if len(rows) > 0 {
		metrics.Frequency = utils.RoundWithTwoDecimalPlace(frequencySum / float64(len(rows)))
	}

	metrics.Spend = utils.RoundWithTwoDecimalPlace(metrics.Spend)

	if metrics.Impressions > 0 {
		metrics.CTR = utils.RoundWithTwoDecimalPlace(float64(metrics.Clicks) / float64(metrics.Impressions) * 100)
		metrics.CPM = utils.RoundWithTwoDecimalPlace(metrics.Spend / float64(metrics.Impressions) * 1000)
	}

	if metrics.Leads > 0 {
		cpl := utils.RoundWithTwoDecimalPlace(metrics.Spend / float64(metrics.Leads))
		metrics.CPL = &cpl
	}

	return metrics
}
