package building

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-builder-api/infrastructure/repository"
	"github.com/vfg2006/campaign-builder-api/internal/config"
	"github.com/vfg2006/campaign-builder-api/internal/domain"
	"github.com/vfg2006/campaign-builder-api/internal/usecases/contexting"
	"github.com/vfg2006/campaign-builder-api/internal/usecases/deciding"
	"github.com/vfg2006/campaign-builder-api/internal/usecases/executing"
	"github.com/vfg2006/campaign-builder-api/internal/usecases/planning"
	"github.com/vfg2006/campaign-builder-api/internal/usecases/resolving"
	"github.com/vfg2006/campaign-builder-api/internal/usecases/scoring"
)

var (
	ErrAccountNotFound   = errors.New("conta não encontrada")
	ErrDirectionNotFound = errors.New("direction não encontrada para a conta")
	ErrDirectionInactive = errors.New("direction está inativa")
	ErrInvalidObjective  = errors.New("objetivo de campanha inválido")
	ErrNoCreatives       = errors.New("a conta não possui criativos cadastrados")
)

// CampaignLister lista as campanhas ativas da conta na plataforma de anúncios
type CampaignLister interface {
	GetActiveCampaigns(account *domain.AdAccount) ([]*domain.PlatformCampaign, error)
}

// Builder é o fluxo completo de montagem: resolve performance, pontua e
// ranqueia os criativos, consulta o motor de decisão e executa o plano
// aceito. Um plano rejeitado na validação não gera nenhuma chamada à
// plataforma de anúncios
type Builder interface {
	BuildCampaign(ctx context.Context, request *domain.BuildCampaignRequest) (*domain.BuildCampaignResponse, error)
	PauseUnderperformers(request *domain.PauseUnderperformersRequest) (*domain.PauseSummary, error)
	ListCreatives(accountID string) ([]*domain.Creative, error)
	ListDirections(accountID string, onlyActive bool) ([]*domain.Direction, error)
	ListActiveCampaigns(accountID string) ([]*domain.PlatformCampaign, error)
}

type Service struct {
	cfg                 *config.Config
	accountRepository   repository.AccountRepository
	creativeRepository  repository.CreativeRepository
	directionRepository repository.DirectionRepository
	resolver            resolving.Resolver
	scorer              scoring.Scorer
	ranker              contexting.Ranker
	decider             deciding.Decider
	planner             planning.Planner
	executor            executing.Executor
	campaignLister      CampaignLister
}

func NewService(
	cfg *config.Config,
	accountRepository repository.AccountRepository,
	creativeRepository repository.CreativeRepository,
	directionRepository repository.DirectionRepository,
	resolver resolving.Resolver,
	scorer scoring.Scorer,
	ranker contexting.Ranker,
	decider deciding.Decider,
	planner planning.Planner,
	executor executing.Executor,
	campaignLister CampaignLister,
) Builder {
	return &Service{
		cfg:                 cfg,
		accountRepository:   accountRepository,
		creativeRepository:  creativeRepository,
		directionRepository: directionRepository,
		resolver:            resolver,
		scorer:              scorer,
		ranker:              ranker,
		decider:             decider,
		planner:             planner,
		executor:            executor,
		campaignLister:      campaignLister,
	}
}

func (s *Service) BuildCampaign(ctx context.Context, request *domain.BuildCampaignRequest) (*domain.BuildCampaignResponse, error) {
	account, err := s.requireAccount(request.AccountID)
	if err != nil {
		return nil, err
	}

	direction, err := s.loadDirection(account, request.DirectionID)
	if err != nil {
		return nil, err
	}

	rawObjective := request.Objective
	if rawObjective == "" && direction != nil {
		rawObjective = direction.Objective
	}

	// Aceita tanto a grafia canônica quanto a grafia do motor de decisão
	objective, ok := domain.NormalizeObjective(string(rawObjective))
	if !ok {
		return nil, ErrInvalidObjective
	}

	creatives, err := s.creativeRepository.ListByAccountID(account.ID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar os criativos da conta")
	}
	if len(creatives) == 0 {
		return nil, ErrNoCreatives
	}

	performanceByID, err := s.resolver.ResolvePerformance(account, creatives)
	if err != nil {
		return nil, err
	}
	for _, creative := range creatives {
		creative.Performance = performanceByID[creative.ID]
	}

	var targetCPL float64
	if direction != nil {
		targetCPL = direction.TargetCPL()
	}
	s.scorer.ScoreAccountCreatives(account, creatives, targetCPL)

	rankedContext := s.ranker.BuildContext(creatives, s.contextLimit(request))

	plan, err := s.decider.Decide(ctx, &deciding.DecisionInput{
		Objective:   objective,
		Candidates:  rankedContext.Candidates,
		Stats:       rankedContext.Stats,
		Budget:      s.buildBudgetConstraints(direction),
		Direction:   direction,
		UserContext: request.UserContext,
	})
	if err != nil {
		return nil, err
	}

	creativesByID := make(map[string]*domain.Creative, len(creatives))
	for _, creative := range creatives {
		creativesByID[creative.ID] = creative
	}

	response := &domain.BuildCampaignResponse{Plan: plan}

	if plan.Type.IsDirectionScoped() {
		if direction == nil {
			return nil, ErrDirectionNotFound
		}
		response.Results = s.executor.ExecuteDirectionPlan(account, direction, plan, creativesByID)
	} else {
		envelope, err := s.planner.BuildEnvelope(plan)
		if err != nil {
			return nil, err
		}
		response.IdempotencyKey = envelope.IdempotencyKey
		response.Results = s.executor.ExecuteEnvelope(account, envelope, creativesByID)
	}

	for _, result := range response.Results {
		if result.Error != "" || result.PartialFailure() {
			response.PartialFailure = true
			break
		}
	}

	logrus.WithFields(logrus.Fields{
		"account_id":      account.ID,
		"action_type":     string(plan.Type),
		"operations":      len(response.Results),
		"partial_failure": response.PartialFailure,
	}).Info("building: campaign build finished")

	return response, nil
}

// PauseUnderperformers pontua todos os criativos da conta e pausa na
// plataforma os anúncios dos criativos com recomendação de pausa ou com
// sinal crítico de consumo de orçamento. Falhas de pausa em um criativo não
// interrompem a varredura dos demais
func (s *Service) PauseUnderperformers(request *domain.PauseUnderperformersRequest) (*domain.PauseSummary, error) {
	account, err := s.requireAccount(request.AccountID)
	if err != nil {
		return nil, err
	}

	direction, err := s.loadDirection(account, request.DirectionID)
	if err != nil {
		return nil, err
	}

	creatives, err := s.creativeRepository.ListByAccountID(account.ID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar os criativos da conta")
	}
	if len(creatives) == 0 {
		return nil, ErrNoCreatives
	}

	var targetCPL float64
	if direction != nil {
		targetCPL = direction.TargetCPL()
	}

	summary := &domain.PauseSummary{PausedCreatives: []string{}}
	for _, creative := range creatives {
		creativeScoring, err := s.scorer.ScoreCreative(account, creative, targetCPL)
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"account_id":  account.ID,
				"creative_id": creative.ID,
			}).Warn("building: failed to score creative during pause sweep")
			continue
		}
		summary.Scored++

		if !shouldPause(creativeScoring) {
			continue
		}

		paused, err := s.scorer.PauseCreativeAds(account, creative)
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"account_id":  account.ID,
				"creative_id": creative.ID,
			}).Warn("building: failed to pause creative ads")
			continue
		}

		summary.PausedCreatives = append(summary.PausedCreatives, creative.ID)
		summary.PausedAds += paused
	}

	logrus.WithFields(logrus.Fields{
		"account_id":       account.ID,
		"scored":           summary.Scored,
		"paused_creatives": len(summary.PausedCreatives),
		"paused_ads":       summary.PausedAds,
	}).Info("building: pause sweep finished")

	return summary, nil
}

func shouldPause(creativeScoring *domain.CreativeScoring) bool {
	if creativeScoring.Recommendation == scoring.RecommendationPause {
		return true
	}
	return creativeScoring.AdEater != nil && creativeScoring.AdEater.Priority == scoring.AdEaterCritical
}

// ListCreatives retorna os criativos da conta com a pontuação persistida
func (s *Service) ListCreatives(accountID string) ([]*domain.Creative, error) {
	account, err := s.requireAccount(accountID)
	if err != nil {
		return nil, err
	}

	return s.creativeRepository.ListByAccountID(account.ID)
}

// ListDirections retorna as directions cadastradas para a conta
func (s *Service) ListDirections(accountID string, onlyActive bool) ([]*domain.Direction, error) {
	account, err := s.requireAccount(accountID)
	if err != nil {
		return nil, err
	}

	return s.directionRepository.ListByAccountID(account.ID, onlyActive)
}

// ListActiveCampaigns consulta as campanhas ativas da conta na plataforma
func (s *Service) ListActiveCampaigns(accountID string) ([]*domain.PlatformCampaign, error) {
	account, err := s.requireAccount(accountID)
	if err != nil {
		return nil, err
	}

	return s.campaignLister.GetActiveCampaigns(account)
}

func (s *Service) requireAccount(accountID string) (*domain.AdAccount, error) {
	account, err := s.accountRepository.GetAccountByID(accountID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar a conta")
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}
	return account, nil
}

func (s *Service) loadDirection(account *domain.AdAccount, directionID string) (*domain.Direction, error) {
	if directionID == "" {
		return nil, nil
	}

	direction, err := s.directionRepository.GetDirectionByID(directionID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar a direction")
	}
	if direction == nil || direction.AccountID != account.ID {
		return nil, ErrDirectionNotFound
	}
	if !direction.Active {
		return nil, ErrDirectionInactive
	}

	return direction, nil
}

func (s *Service) contextLimit(request *domain.BuildCampaignRequest) int {
	if request.ContextLimit > 0 {
		return request.ContextLimit
	}
	if s.cfg.Campaign.ContextLimit > 0 {
		return s.cfg.Campaign.ContextLimit
	}
	return contexting.DefaultContextLimit
}

// buildBudgetConstraints delimita o orçamento enviado ao motor de decisão.
// Com direction o teto é o orçamento diário dela; no fluxo legado não há
// teto de conta e apenas o mínimo por ad set é imposto
func (s *Service) buildBudgetConstraints(direction *domain.Direction) *domain.BudgetConstraints {
	budget := &domain.BudgetConstraints{
		MinAdSetBudgetCents: s.cfg.Campaign.MinAdSetBudgetCents,
	}

	if direction != nil {
		budget.AvailableBudgetCents = direction.DailyBudgetCents
		budget.MaxCampaignBudgetCents = direction.DailyBudgetCents
		budget.TargetCPLCents = direction.TargetCPLCents
		budget.DirectionID = direction.ID
	}

	return budget
}
