package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-builder-api/internal/domain"
	"github.com/vfg2006/campaign-builder-api/internal/usecases/building"
	"github.com/vfg2006/campaign-builder-api/pkg/apiErrors"
)

// ListCreatives lista os criativos cadastrados da conta, com a última
// pontuação de risco persistida
func ListCreatives(service building.Builder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accountID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if accountID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da conta não informado", nil)
			return
		}

		creatives, err := service.ListCreatives(accountID)
		if err != nil {
			logrus.WithError(err).WithField("account_id", accountID).Error("Erro ao listar criativos da conta")
			writeBuildError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(creatives); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// PauseUnderperformers pontua os criativos da conta e pausa os anúncios dos
// que estão queimando orçamento
func PauseUnderperformers(service building.Builder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accountID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if accountID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da conta não informado", nil)
			return
		}

		var request domain.PauseUnderperformersRequest
		if r.Body != nil && r.ContentLength != 0 {
			if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
				return
			}
		}
		request.AccountID = accountID

		summary, err := service.PauseUnderperformers(&request)
		if err != nil {
			logrus.WithError(err).WithField("account_id", accountID).Error("Erro ao pausar criativos de baixa performance")
			writeBuildError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(summary); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}
