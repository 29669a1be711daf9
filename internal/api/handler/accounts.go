package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-builder-api/internal/domain"
	"github.com/vfg2006/campaign-builder-api/pkg/apiErrors"
)

// AccountLister lista as contas de anúncios cadastradas
type AccountLister interface {
	ListAccounts(availableStatus []domain.AdAccountStatus) ([]*domain.AdAccount, error)
}

// AdAccountList lista as contas cadastradas, com filtro opcional de status
// via query string (?status=ACTIVE,INACTIVE)
func AdAccountList(service AccountLister) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filterStatus := r.URL.Query().Get("status")

		availableStatus := make([]domain.AdAccountStatus, 0)
		if filterStatus != "" {
			for _, status := range strings.Split(filterStatus, ",") {
				availableStatus = append(availableStatus, domain.AdAccountStatus(status))
			}
		}

		accounts, err := service.ListAccounts(availableStatus)
		if err != nil {
			logrus.Error("Error listing accounts:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar contas no banco de dados", nil)
			return
		}

		response := make([]*domain.AdAccountResponse, 0, len(accounts))
		for _, account := range accounts {
			response = append(response, &domain.AdAccountResponse{
				ID:         account.ID,
				ExternalID: account.ExternalID,
				Name:       account.Name,
				Nickname:   account.Nickname,
				HasToken:   account.HasLiveAccess(),
				Status:     account.Status,
			})
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}
