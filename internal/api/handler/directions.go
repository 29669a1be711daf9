package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-builder-api/internal/usecases/building"
	"github.com/vfg2006/campaign-builder-api/pkg/apiErrors"
)

// ListDirections lista as directions da conta. Por padrão retorna apenas as
// ativas; ?all=true inclui as desativadas
func ListDirections(service building.Builder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accountID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if accountID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da conta não informado", nil)
			return
		}

		onlyActive := r.URL.Query().Get("all") != "true"

		directions, err := service.ListDirections(accountID, onlyActive)
		if err != nil {
			logrus.WithError(err).WithField("account_id", accountID).Error("Erro ao listar directions da conta")
			writeBuildError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(directions); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}
