package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-builder-api/internal/domain"
	"github.com/vfg2006/campaign-builder-api/internal/usecases/building"
	"github.com/vfg2006/campaign-builder-api/internal/usecases/deciding"
	"github.com/vfg2006/campaign-builder-api/pkg/apiErrors"
)

// BuildCampaign monta automaticamente uma campanha para a conta informada
func BuildCampaign(service building.Builder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accountID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if accountID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da conta não informado", nil)
			return
		}

		var request domain.BuildCampaignRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}
		request.AccountID = accountID

		response, err := service.BuildCampaign(r.Context(), &request)
		if err != nil {
			logrus.WithError(err).WithField("account_id", accountID).Error("Erro ao montar campanha")
			writeBuildError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// ListAccountCampaigns lista as campanhas ativas da conta na plataforma
func ListAccountCampaigns(service building.Builder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accountID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if accountID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da conta não informado", nil)
			return
		}

		campaigns, err := service.ListActiveCampaigns(accountID)
		if err != nil {
			logrus.WithError(err).WithField("account_id", accountID).Error("Erro ao listar campanhas da conta")
			writeBuildError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(campaigns); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// writeBuildError traduz os erros do fluxo de montagem para os códigos da API
func writeBuildError(w http.ResponseWriter, err error) {
	var planErr *deciding.PlanError
	if errors.As(err, &planErr) {
		apiErrors.WriteError(w, planErrorCode(planErr), planErr.Message, planErr.Suggestions)
		return
	}

	switch {
	case errors.Is(err, building.ErrAccountNotFound):
		apiErrors.WriteError(w, apiErrors.ErrUserNotFound, "Conta não encontrada", nil)
	case errors.Is(err, building.ErrDirectionNotFound):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Direction não encontrada para a conta", nil)
	case errors.Is(err, building.ErrDirectionInactive):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Direction está inativa", nil)
	case errors.Is(err, building.ErrInvalidObjective):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Objetivo de campanha inválido", nil)
	case errors.Is(err, building.ErrNoCreatives):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "A conta não possui criativos cadastrados", nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao montar campanha", nil)
	}
}

func planErrorCode(planErr *deciding.PlanError) string {
	switch planErr.Kind {
	case deciding.ErrMalformedResponse:
		return apiErrors.ErrMalformedResponse
	case deciding.ErrDecisionRejected:
		return apiErrors.ErrDecisionRejected
	case deciding.ErrInvalidActionType:
		return apiErrors.ErrInvalidActionType
	case deciding.ErrInvalidActionStructure:
		return apiErrors.ErrInvalidActionStructure
	case deciding.ErrNoCreativesSelected:
		return apiErrors.ErrNoCreativesSelected
	case deciding.ErrBudgetTooLow:
		return apiErrors.ErrBudgetTooLow
	}
	return apiErrors.ErrInternalServer
}
