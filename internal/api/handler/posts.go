package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/social-insights-api/infrastructure/repository"
	"github.com/vfg2006/social-insights-api/pkg/log"
)

// GetPostMetricsHistory retorna todos os snapshots de métricas de um post em
// ordem de observação, para inspeção da evolução de um post específico.
func GetPostMetricsHistory(repo repository.MetricSnapshotRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		params := httprouter.ParamsFromContext(r.Context())
		postID := params.ByName("id")

		if postID == "" {
			http.Error(w, "É necessário informar o identificador do post", http.StatusBadRequest)
			return
		}

		snapshots, err := repo.GetHistory(postID)
		if err != nil {
			logger.WithError(err).WithField("post_id", postID).Error("posts: erro ao buscar histórico de métricas")
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		logger.WithFields(log.Fields{
			"post_id":   postID,
			"snapshots": len(snapshots),
		}).Info("posts: histórico de métricas consultado")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(snapshots); err != nil {
			logger.WithError(err).Error("posts: erro ao codificar resposta")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
