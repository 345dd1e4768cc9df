package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/vfg2006/social-insights-api/internal/domain"
	"github.com/vfg2006/social-insights-api/internal/usecases/aggregating"
	"github.com/vfg2006/social-insights-api/internal/usecases/exporting"
	"github.com/vfg2006/social-insights-api/pkg/log"
	"github.com/vfg2006/social-insights-api/pkg/utils"
)

// ExportOverviewWorkbook gera a planilha XLSX do overview mensal
func ExportOverviewWorkbook(service exporting.Exporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		month := r.URL.Query().Get("month")
		customer := r.URL.Query().Get("customer")

		if _, err := utils.ParseMonth(month); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		workbook, err := service.OverviewWorkbook(month, customer)
		if err != nil {
			logger.WithError(err).WithFields(log.Fields{
				"month":    month,
				"customer": customer,
			}).Error("export: erro ao gerar planilha do overview")

			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		filename := fmt.Sprintf("overview-%s.xlsx", month)

		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", "attachment; filename="+filename)

		if err := workbook.Write(w); err != nil {
			logger.WithError(err).Error("export: erro ao escrever a planilha na resposta")
			http.Error(w, "Erro ao escrever a planilha", http.StatusInternalServerError)
			return
		}

		logger.WithFields(log.Fields{
			"month":    month,
			"filename": filename,
		}).Info("export: planilha do overview gerada com sucesso")
	})
}

// ExportSlideDeck gera o conjunto de dados de slide de um cliente para o
// renderizador de apresentações
func ExportSlideDeck(service exporting.Exporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		month := r.URL.Query().Get("month")
		customer := r.URL.Query().Get("customer")

		if _, err := utils.ParseMonth(month); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		if customer == "" {
			http.Error(w, "É necessário informar o cliente", http.StatusBadRequest)
			return
		}

		deck, err := service.SlideDeck(month, customer)
		if err != nil {
			logger.WithError(err).WithFields(log.Fields{
				"month":    month,
				"customer": customer,
			}).Error("export: erro ao gerar dados de slide")

			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		logger.WithFields(log.Fields{
			"month":    month,
			"customer": customer,
			"sections": len(deck.Sections),
		}).Info("export: dados de slide gerados com sucesso")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(deck); err != nil {
			logger.WithError(err).Error("export: erro ao codificar resposta")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// ExportFollowerChart gera as séries de gráfico do crescimento de seguidores
func ExportFollowerChart(service exporting.Exporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		query := r.URL.Query()

		if _, err := utils.ParseMonth(query.Get("from")); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		if _, err := utils.ParseMonth(query.Get("to")); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		params := &aggregating.GrowthParams{
			FromMonth:    query.Get("from"),
			ToMonth:      query.Get("to"),
			CustomerSlug: query.Get("customer"),
			Platform:     domain.Platform(query.Get("platform")),
		}

		if accounts := query.Get("account_ids"); accounts != "" {
			params.AccountIDs = strings.Split(accounts, ",")
		}

		chart, err := service.FollowerChart(params)
		if err != nil {
			logger.WithError(err).WithFields(log.Fields{
				"from": params.FromMonth,
				"to":   params.ToMonth,
			}).Error("export: erro ao gerar séries de gráfico")

			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(chart); err != nil {
			logger.WithError(err).Error("export: erro ao codificar resposta")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
