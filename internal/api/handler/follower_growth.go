package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/vfg2006/social-insights-api/internal/domain"
	"github.com/vfg2006/social-insights-api/internal/usecases/aggregating"
	"github.com/vfg2006/social-insights-api/pkg/log"
	"github.com/vfg2006/social-insights-api/pkg/utils"
)

// GetFollowerGrowth retorna a série mensal de crescimento de seguidores para
// um cliente ou um conjunto explícito de contas
func GetFollowerGrowth(service aggregating.Overviewer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		query := r.URL.Query()
		from := query.Get("from")
		to := query.Get("to")

		if _, err := utils.ParseMonth(from); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		if _, err := utils.ParseMonth(to); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		platform := domain.Platform(query.Get("platform"))
		if platform != "" && platform != domain.PlatformFacebook && platform != domain.PlatformInstagram {
			http.Error(w, "plataforma inválida, use facebook ou instagram", http.StatusBadRequest)
			return
		}

		params := &aggregating.GrowthParams{
			FromMonth:    from,
			ToMonth:      to,
			CustomerSlug: query.Get("customer"),
			Platform:     platform,
		}

		if accounts := query.Get("account_ids"); accounts != "" {
			params.AccountIDs = strings.Split(accounts, ",")
		}

		if params.CustomerSlug == "" && len(params.AccountIDs) == 0 {
			http.Error(w, "informe um cliente ou uma lista de contas", http.StatusBadRequest)
			return
		}

		logger.WithFields(log.Fields{
			"from":     from,
			"to":       to,
			"customer": params.CustomerSlug,
			"platform": platform,
			"accounts": len(params.AccountIDs),
		}).Info("follower-growth: computando crescimento de seguidores")

		report, err := service.GetFollowerGrowth(params)
		if err != nil {
			logger.WithError(err).WithFields(log.Fields{
				"from": from,
				"to":   to,
			}).Error("follower-growth: erro ao computar crescimento de seguidores")

			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		logger.WithFields(log.Fields{
			"months":  len(report.Summary),
			"details": len(report.Details),
		}).Info("follower-growth: crescimento de seguidores computado com sucesso")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.WithError(err).Error("follower-growth: erro ao codificar resposta")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
