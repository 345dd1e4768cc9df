package handler

import (
	"encoding/json"
	"net/http"

	"github.com/vfg2006/social-insights-api/internal/usecases/attributing"
	"github.com/vfg2006/social-insights-api/pkg/log"
)

// ResolveAttribution resolve o cliente dono de uma campanha de anúncios.
// Campanha não atribuível responde ok com attributed=false, não erro.
func ResolveAttribution(attributor attributing.Attributor) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		query := r.URL.Query()
		accountID := query.Get("account_id")
		campaignName := query.Get("campaign_name")

		if accountID == "" {
			http.Error(w, "É necessário informar account_id", http.StatusBadRequest)
			return
		}

		slug, ok := attributor.ResolveCustomerForCampaign(accountID, campaignName)

		logger.WithFields(log.Fields{
			"account_id":    accountID,
			"campaign_name": campaignName,
			"customer":      slug,
			"attributed":    ok,
		}).Info("attribution: campanha resolvida")

		response := map[string]any{
			"account_id":    accountID,
			"campaign_name": campaignName,
			"customer":      slug,
			"attributed":    ok,
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("attribution: erro ao codificar resposta")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// GetAttributionStats retorna os contadores de atribuição desde a subida do
// processo, incluindo as contas com campanhas não atribuídas
func GetAttributionStats(attributor attributing.Attributor) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		stats := attributor.Stats()

		logger.WithFields(log.Fields{
			"total_resolved":        stats.TotalResolved,
			"total_excluded":        stats.TotalExcluded,
			"unattributed_accounts": attributor.UnattributedAccounts(),
		}).Info("attribution: contadores consultados")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(stats); err != nil {
			logger.WithError(err).Error("attribution: erro ao codificar resposta")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
