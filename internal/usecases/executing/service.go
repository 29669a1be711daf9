package executing

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-builder-api/internal/config"
	"github.com/vfg2006/campaign-builder-api/internal/domain"
)

// Platform é a integração de escrita com a plataforma de anúncios
type Platform interface {
	CreateCampaign(account *domain.AdAccount, name string, objective domain.Objective, activate bool) (string, error)
	CreateAdSet(account *domain.AdAccount, params *domain.PlatformAdSetParams) (string, error)
	CreateAds(account *domain.AdAccount, adSetID string, objective domain.Objective, creatives []*domain.Creative, activate bool) []*domain.CreatedAd
}

// Executor executa envelopes legados (campanhas novas) e planos de direction
// (ad sets dentro de uma campanha existente). Falhas parciais na criação de
// anúncios não desfazem o que já foi criado
type Executor interface {
	ExecuteEnvelope(account *domain.AdAccount, envelope *domain.ExecutionEnvelope, creativesByID map[string]*domain.Creative) []*domain.OperationResult
	ExecuteDirectionPlan(account *domain.AdAccount, direction *domain.Direction, plan *domain.CampaignActionPlan, creativesByID map[string]*domain.Creative) []*domain.OperationResult
}

type Service struct {
	cfg      *config.Config
	platform Platform
}

func NewService(cfg *config.Config, platform Platform) Executor {
	return &Service{
		cfg:      cfg,
		platform: platform,
	}
}

// ExecuteEnvelope executa cada operação atômica de forma independente: a
// falha de uma campanha não impede as seguintes, e o resultado individual
// carrega o erro
func (s *Service) ExecuteEnvelope(account *domain.AdAccount, envelope *domain.ExecutionEnvelope, creativesByID map[string]*domain.Creative) []*domain.OperationResult {
	results := make([]*domain.OperationResult, 0, len(envelope.Operations))

	for _, operation := range envelope.Operations {
		result := &domain.OperationResult{
			CampaignName: operation.CampaignName,
			RequestedAds: len(operation.CreativeIDs),
		}
		results = append(results, result)

		campaignID, err := s.platform.CreateCampaign(account, operation.CampaignName, operation.Objective, operation.AutoActivate)
		if err != nil {
			result.Error = err.Error()
			continue
		}
		result.CampaignID = campaignID

		adSetID, err := s.platform.CreateAdSet(account, &domain.PlatformAdSetParams{
			CampaignID:       campaignID,
			Name:             operation.CampaignName,
			Objective:        operation.Objective,
			DailyBudgetCents: operation.DailyBudgetCents,
			AutoActivate:     operation.AutoActivate,
		})
		if err != nil {
			result.Error = err.Error()
			continue
		}
		result.AdSetID = adSetID

		creatives := s.resolveCreatives(account, operation.CreativeIDs, creativesByID)
		result.Ads = s.platform.CreateAds(account, adSetID, operation.Objective, creatives, operation.AutoActivate)

		if result.PartialFailure() {
			logrus.WithFields(logrus.Fields{
				"account_id":    account.ID,
				"campaign_name": operation.CampaignName,
				"requested":     result.RequestedAds,
				"created":       len(result.Ads),
			}).Warn("executor: operation finished with partial ad creation")
		}
	}

	return results
}

// ExecuteDirectionPlan executa as variantes de direction, que mutam a
// campanha já existente da direction em vez de criar campanhas novas
func (s *Service) ExecuteDirectionPlan(account *domain.AdAccount, direction *domain.Direction, plan *domain.CampaignActionPlan, creativesByID map[string]*domain.Creative) []*domain.OperationResult {
	params := plan.Params
	objective := params.Objective
	if objective == "" {
		objective = direction.Objective
	}

	switch plan.Type {
	case domain.ActionCreateDirectionAdset:
		result := s.createDirectionAdSet(account, direction, objective, &domain.AdSetSpec{
			Name:             params.CampaignName,
			CreativeIDs:      params.CreativeIDs,
			DailyBudgetCents: params.DailyBudgetCents,
		}, params.AutoActivate, creativesByID)
		return []*domain.OperationResult{result}

	case domain.ActionCreateDirectionMultipleAdsets:
		results := make([]*domain.OperationResult, 0, len(params.AdSets))
		for i := range params.AdSets {
			results = append(results, s.createDirectionAdSet(account, direction, objective, &params.AdSets[i], params.AutoActivate, creativesByID))
		}
		return results

	case domain.ActionUseDirectionExistingAdset:
		result := s.fillExistingAdSet(account, direction, objective, params.ExistingAdSetID, params.CreativeIDs, params.AutoActivate, creativesByID)
		return []*domain.OperationResult{result}

	case domain.ActionUseDirectionExistingAdsetMulti:
		results := make([]*domain.OperationResult, 0, len(params.AdSets))
		for i := range params.AdSets {
			adSet := &params.AdSets[i]
			results = append(results, s.fillExistingAdSet(account, direction, objective, adSet.ExistingAdSetID, adSet.CreativeIDs, params.AutoActivate, creativesByID))
		}
		return results
	}

	logrus.WithFields(logrus.Fields{
		"account_id":  account.ID,
		"action_type": string(plan.Type),
	}).Error("executor: plan variant is not direction-scoped")

	return nil
}

func (s *Service) createDirectionAdSet(account *domain.AdAccount, direction *domain.Direction, objective domain.Objective, adSet *domain.AdSetSpec, activate bool, creativesByID map[string]*domain.Creative) *domain.OperationResult {
	name := adSet.Name
	if name == "" {
		name = direction.Name + " - " + time.Now().Format(time.DateOnly)
	}

	result := &domain.OperationResult{
		CampaignName: name,
		CampaignID:   direction.ExternalCampaignID,
		RequestedAds: len(adSet.CreativeIDs),
	}

	adSetID, err := s.platform.CreateAdSet(account, &domain.PlatformAdSetParams{
		CampaignID:       direction.ExternalCampaignID,
		Name:             name,
		Objective:        objective,
		DailyBudgetCents: adSet.DailyBudgetCents,
		AutoActivate:     activate,
	})
	if err != nil {
		result.Error = err.Error()
		return result
	}
	result.AdSetID = adSetID

	creatives := s.resolveCreatives(account, adSet.CreativeIDs, creativesByID)
	result.Ads = s.platform.CreateAds(account, adSetID, objective, creatives, activate)

	return result
}

func (s *Service) fillExistingAdSet(account *domain.AdAccount, direction *domain.Direction, objective domain.Objective, adSetID string, creativeIDs []string, activate bool, creativesByID map[string]*domain.Creative) *domain.OperationResult {
	result := &domain.OperationResult{
		CampaignName: direction.Name,
		CampaignID:   direction.ExternalCampaignID,
		AdSetID:      adSetID,
		RequestedAds: len(creativeIDs),
	}

	creatives := s.resolveCreatives(account, creativeIDs, creativesByID)
	result.Ads = s.platform.CreateAds(account, adSetID, objective, creatives, activate)

	return result
}

func (s *Service) resolveCreatives(account *domain.AdAccount, creativeIDs []string, creativesByID map[string]*domain.Creative) []*domain.Creative {
	creatives := make([]*domain.Creative, 0, len(creativeIDs))
	for _, creativeID := range creativeIDs {
		creative, ok := creativesByID[creativeID]
		if !ok {
			logrus.WithFields(logrus.Fields{
				"account_id":  account.ID,
				"creative_id": creativeID,
			}).Warn("executor: plan references unknown creative id, skipping")
			continue
		}
		creatives = append(creatives, creative)
	}
	return creatives
}
