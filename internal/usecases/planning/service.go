package planning

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/vfg2006/campaign-builder-api/internal/domain"
)

// Planner converte um plano canônico validado no envelope de operações
// atômicas. Variantes de direction não são explodidas aqui: elas mutam uma
// campanha existente e seguem direto para os pontos de entrada do executor
type Planner interface {
	BuildEnvelope(plan *domain.CampaignActionPlan) (*domain.ExecutionEnvelope, error)
}

type Service struct{}

func NewService() Planner {
	return &Service{}
}

// BuildEnvelope gera uma chave de idempotência por tentativa de montagem,
// compartilhada por todas as operações do envelope: um reenvio da submissão
// é reconhecido como a mesma requisição lógica
func (s *Service) BuildEnvelope(plan *domain.CampaignActionPlan) (*domain.ExecutionEnvelope, error) {
	if plan.Type.IsDirectionScoped() {
		return nil, fmt.Errorf("variante %s não é explodida pelo planejador de execução", plan.Type)
	}

	envelope := &domain.ExecutionEnvelope{
		IdempotencyKey: uuid.NewString(),
	}

	params := plan.Params

	switch plan.Type {
	case domain.ActionCreateCampaignWithCreative:
		// Uma única operação com os params do plano, inalterados
		envelope.Operations = []*domain.AtomicOperation{{
			CampaignName:       params.CampaignName,
			Objective:          params.Objective,
			CreativeIDs:        params.CreativeIDs,
			DailyBudgetCents:   params.DailyBudgetCents,
			UseDefaultSettings: params.UseDefaultSettings,
			AutoActivate:       params.AutoActivate,
		}}

	case domain.ActionCreateCampaignWithMultiAdsets:
		// Uma operação por ad set solicitado; cada uma herda objetivo e flags
		// do plano e é nomeada "<campanha> - <ad set>"
		envelope.Operations = make([]*domain.AtomicOperation, 0, len(params.AdSets))
		for _, adSet := range params.AdSets {
			envelope.Operations = append(envelope.Operations, &domain.AtomicOperation{
				CampaignName:       fmt.Sprintf("%s - %s", params.CampaignName, adSet.Name),
				Objective:          params.Objective,
				CreativeIDs:        adSet.CreativeIDs,
				DailyBudgetCents:   adSet.DailyBudgetCents,
				UseDefaultSettings: params.UseDefaultSettings,
				AutoActivate:       params.AutoActivate,
			})
		}

	default:
		return nil, fmt.Errorf("variante desconhecida para o planejador: %s", plan.Type)
	}

	return envelope, nil
}
