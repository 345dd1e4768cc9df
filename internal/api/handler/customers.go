package handler

import (
	"encoding/json"
	"net/http"

	"github.com/vfg2006/social-insights-api/infrastructure/repository"
	"github.com/vfg2006/social-insights-api/internal/domain"
	"github.com/vfg2006/social-insights-api/pkg/log"
)

// ListCustomers retorna os clientes ativos para a navegação do dashboard
func ListCustomers(repo repository.CustomerRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		customers, err := repo.ListActive()
		if err != nil {
			logger.WithError(err).Error("customers: erro ao listar clientes ativos")
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		logger.WithField("customers", len(customers)).Info("customers: clientes listados com sucesso")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(customers); err != nil {
			logger.WithError(err).Error("customers: erro ao codificar resposta")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// GetAccountOwner resolve o cliente dono de uma conta orgânica via a tabela
// de vínculos. Conta sem dono responde 404, nunca um cliente vazio.
func GetAccountOwner(repo repository.CustomerRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		query := r.URL.Query()
		accountID := query.Get("account_id")
		platform := domain.Platform(query.Get("platform"))

		if accountID == "" {
			http.Error(w, "É necessário informar account_id", http.StatusBadRequest)
			return
		}

		if platform != domain.PlatformFacebook && platform != domain.PlatformInstagram {
			http.Error(w, "Plataforma inválida, use facebook ou instagram", http.StatusBadRequest)
			return
		}

		customer, err := repo.GetCustomerForAccount(accountID, platform)
		if err != nil {
			logger.WithError(err).WithField("account_id", accountID).Error("customers: erro ao resolver dono da conta")
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		if customer == nil {
			http.Error(w, "Conta sem cliente vinculado", http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(customer); err != nil {
			logger.WithError(err).Error("customers: erro ao codificar resposta")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
