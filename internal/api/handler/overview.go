package handler

import (
	"encoding/json"
	"net/http"

	"github.com/vfg2006/social-insights-api/internal/usecases/aggregating"
	"github.com/vfg2006/social-insights-api/pkg/log"
	"github.com/vfg2006/social-insights-api/pkg/utils"
)

// GetCustomerOverview retorna o overview mensal de todos os clientes ativos,
// ou de um cliente específico quando o parâmetro customer é informado
func GetCustomerOverview(service aggregating.Overviewer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		month := r.URL.Query().Get("month")
		customer := r.URL.Query().Get("customer")

		// Mês malformado é rejeitado na borda, antes de qualquer agregação
		if _, err := utils.ParseMonth(month); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		logger.WithFields(log.Fields{
			"month":    month,
			"customer": customer,
		}).Info("overview: computando overview mensal")

		overviews, err := service.GetCustomerOverview(month, customer)
		if err != nil {
			logger.WithError(err).WithFields(log.Fields{
				"month":    month,
				"customer": customer,
			}).Error("overview: erro ao computar overview mensal")

			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		logger.WithFields(log.Fields{
			"month":     month,
			"customers": len(overviews),
		}).Info("overview: overview mensal computado com sucesso")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(overviews); err != nil {
			logger.WithError(err).Error("overview: erro ao codificar resposta")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// GetMonthlyStats retorna os totais achatados de um mês
func GetMonthlyStats(service aggregating.Overviewer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		month := r.URL.Query().Get("month")
		customer := r.URL.Query().Get("customer")

		if _, err := utils.ParseMonth(month); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		stats, err := service.GetMonthlyStats(month, customer)
		if err != nil {
			logger.WithError(err).WithFields(log.Fields{
				"month":    month,
				"customer": customer,
			}).Error("monthly-stats: erro ao computar totais do mês")

			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		logger.WithFields(log.Fields{
			"month":     month,
			"customers": stats.Customers,
		}).Info("monthly-stats: totais do mês computados com sucesso")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(stats); err != nil {
			logger.WithError(err).Error("monthly-stats: erro ao codificar resposta")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
