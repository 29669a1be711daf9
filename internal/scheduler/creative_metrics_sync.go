package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-builder-api/infrastructure/repository"
	"github.com/vfg2006/campaign-builder-api/internal/config"
	"github.com/vfg2006/campaign-builder-api/internal/domain"
	"github.com/vfg2006/campaign-builder-api/internal/usecases/resolving"
)

// CreativeMetricsSyncConfig representa a configuração do agendador de métricas de criativos
type CreativeMetricsSyncConfig struct {
	CronSchedule        string
	LookbackDays        int
	RequestDelaySeconds int
	MaxConcurrentJobs   int
	RetentionDays       int
	SyncEnabled         bool
}

// CreativeMetricsSyncService gerencia o agendamento e execução da sincronização
// do cache datado de métricas por criativo
type CreativeMetricsSyncService struct {
	scheduler           *gocron.Scheduler
	config              CreativeMetricsSyncConfig
	appConfig           *config.Config
	accountRepo         repository.AccountRepository
	creativeRepo        repository.CreativeRepository
	metricRepo          repository.CreativeMetricRepository
	fetcher             resolving.LiveMetricsFetcher
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewCreativeMetricsSyncService cria uma nova instância do serviço de sincronização
func NewCreativeMetricsSyncService(
	accountRepo repository.AccountRepository,
	creativeRepo repository.CreativeRepository,
	metricRepo repository.CreativeMetricRepository,
	fetcher resolving.LiveMetricsFetcher,
	appConfig *config.Config,
) *CreativeMetricsSyncService {
	syncConfig := CreativeMetricsSyncConfig{
		CronSchedule:        appConfig.CreativeMetricsSync.CronSchedule,
		LookbackDays:        appConfig.CreativeMetricsSync.LookbackDays,
		RequestDelaySeconds: appConfig.CreativeMetricsSync.RequestDelaySeconds,
		MaxConcurrentJobs:   appConfig.CreativeMetricsSync.MaxConcurrentJobs,
		RetentionDays:       appConfig.CreativeMetricsSync.RetentionDays,
		SyncEnabled:         appConfig.CreativeMetricsSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         syncConfig.CronSchedule,
		"lookback_days":         syncConfig.LookbackDays,
		"request_delay_seconds": syncConfig.RequestDelaySeconds,
		"max_concurrent_jobs":   syncConfig.MaxConcurrentJobs,
		"retention_days":        syncConfig.RetentionDays,
		"sync_enabled":          syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de métricas de criativos carregada")

	return &CreativeMetricsSyncService{
		scheduler:    scheduler,
		config:       syncConfig,
		appConfig:    appConfig,
		accountRepo:  accountRepo,
		creativeRepo: creativeRepo,
		metricRepo:   metricRepo,
		fetcher:      fetcher,
		syncRunning:  false,
	}
}

// Start inicia o agendador
func (s *CreativeMetricsSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de métricas de criativos desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de métricas de criativos")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllCreativeMetrics()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de métricas de criativos: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de métricas de criativos")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllCreativeMetrics sincroniza as métricas de todos os criativos das contas ativas
func (s *CreativeMetricsSyncService) syncAllCreativeMetrics() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de métricas de criativos já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando sincronização de métricas de criativos para todas as contas ativas")

	activeAccounts, err := s.getActiveAccounts()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar lista de contas para sincronização de métricas de criativos")
		return
	}

	if len(activeAccounts) == 0 {
		logrus.Info("Nenhuma conta ativa encontrada para sincronização de métricas de criativos")
		return
	}

	s.processAccounts(activeAccounts)

	if s.config.RetentionDays > 0 {
		deleted, err := s.metricRepo.DeleteOlderThan(s.config.RetentionDays)
		if err != nil {
			logrus.WithError(err).Error("Erro ao remover métricas de criativos fora da janela de retenção")
		} else if deleted > 0 {
			logrus.WithField("rows", deleted).Info("Métricas de criativos fora da janela de retenção removidas")
		}
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration": duration.String(),
		"accounts": len(activeAccounts),
		"days":     s.config.LookbackDays,
	}).Info("Sincronização de métricas de criativos concluída")

	s.lastSyncCompletedAt = time.Now()
}

// getActiveAccounts busca e filtra contas ativas
func (s *CreativeMetricsSyncService) getActiveAccounts() ([]*domain.AdAccount, error) {
	activeAccounts, err := s.accountRepo.ListAccounts([]domain.AdAccountStatus{domain.AdAccountStatusActive})
	if err != nil {
		return nil, err
	}

	if len(activeAccounts) == 0 {
		logrus.Info("Nenhuma conta encontrada para sincronização de métricas de criativos")
		return []*domain.AdAccount{}, nil
	}

	logrus.WithFields(logrus.Fields{
		"active_accounts": len(activeAccounts),
	}).Info("Contas encontradas para sincronização de métricas de criativos")

	return activeAccounts, nil
}

// processAccounts processa as contas em paralelo, com os criativos de cada
// conta em sequência para não estourar o rate limit da Graph API
func (s *CreativeMetricsSyncService) processAccounts(accounts []*domain.AdAccount) {
	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var wg sync.WaitGroup

	for _, account := range accounts {
		if account.ExternalID == "" {
			logrus.WithField("account_id", account.ID).Warn("Conta sem external_id. Pulando.")
			continue
		}

		wg.Add(1)
		semaphore <- struct{}{}

		go func(acc *domain.AdAccount) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			s.processAccountCreatives(acc)
		}(account)
	}

	wg.Wait()
}

// processAccountCreatives sincroniza as métricas de todos os criativos de uma conta
func (s *CreativeMetricsSyncService) processAccountCreatives(acc *domain.AdAccount) {
	creatives, err := s.creativeRepo.ListByAccountID(acc.ID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": acc.ID,
			"error":      err.Error(),
		}).Error("Erro ao listar criativos da conta para sincronização")
		return
	}

	if len(creatives) == 0 {
		logrus.WithField("account_id", acc.ID).Info("Conta sem criativos cadastrados, nada a sincronizar")
		return
	}

	now := time.Now()
	filters := &domain.InsightFilters{
		StartDate: now.AddDate(0, 0, -s.config.LookbackDays),
		EndDate:   now.AddDate(0, 0, -1),
	}

	logrus.WithFields(logrus.Fields{
		"account_id":   acc.ID,
		"external_id":  acc.ExternalID,
		"account_name": acc.Name,
		"creatives":    len(creatives),
		"start_date":   filters.StartDate.Format(time.DateOnly),
		"end_date":     filters.EndDate.Format(time.DateOnly),
	}).Info("Processando métricas de criativos para conta")

	for _, creative := range creatives {
		s.processCreativeMetrics(acc, creative, filters)

		// Aguardar antes da próxima requisição para evitar sobrecarga na API
		time.Sleep(time.Duration(s.config.RequestDelaySeconds) * time.Second)
	}
}

// processCreativeMetrics busca as linhas diárias de um criativo e grava no cache
func (s *CreativeMetricsSyncService) processCreativeMetrics(acc *domain.AdAccount, creative *domain.Creative, filters *domain.InsightFilters) {
	rows, err := s.fetcher.GetCreativeAdMetrics(acc, creative, filters)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id":  acc.ID,
			"creative_id": creative.ID,
			"error":       err.Error(),
		}).Error("Erro ao obter métricas do criativo na plataforma")
		return
	}

	if len(rows) == 0 {
		logrus.WithFields(logrus.Fields{
			"account_id":  acc.ID,
			"creative_id": creative.ID,
		}).Warn("Nenhuma métrica obtida para o criativo no período")
		return
	}

	saved := 0
	for _, row := range rows {
		if err := s.metricRepo.SaveOrUpdate(row); err != nil {
			logrus.WithFields(logrus.Fields{
				"account_id":  acc.ID,
				"creative_id": creative.ID,
				"date":        row.Date.Format(time.DateOnly),
				"error":       err.Error(),
			}).Error("Erro ao salvar métrica do criativo no banco de dados")
			continue
		}
		saved++
	}

	logrus.WithFields(logrus.Fields{
		"account_id":  acc.ID,
		"creative_id": creative.ID,
		"rows":        len(rows),
		"saved":       saved,
	}).Info("Métricas do criativo sincronizadas")
}

// TriggerManualSync inicia manualmente uma sincronização de métricas de criativos
func (s *CreativeMetricsSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de métricas de criativos já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de métricas de criativos")
	go s.syncAllCreativeMetrics()
}

// GetStatus retorna o status atual do agendador
func (s *CreativeMetricsSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_lookback_days":     s.config.LookbackDays,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"sync_request_delay_s":   s.config.RequestDelaySeconds,
		"retention_days":         s.config.RetentionDays,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
