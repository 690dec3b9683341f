package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/vfg2006/sales-target-api/internal/usecases/calendaring"
	"github.com/vfg2006/sales-target-api/internal/usecases/dashboarding"
	"github.com/vfg2006/sales-target-api/internal/usecases/targeting"
	"github.com/vfg2006/sales-target-api/pkg/apiErrors"
	"github.com/vfg2006/sales-target-api/pkg/log"
	"github.com/vfg2006/sales-target-api/pkg/utils"
)

// writeDashboardError distingue entrada inválida de falha de infraestrutura
// na resposta, preservando o código de erro adequado para o cliente
func writeDashboardError(w http.ResponseWriter, err error, message string) {
	if targeting.IsValidationError(err) || errors.Is(err, calendaring.ErrInvalidPeriod) {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, message, nil)
}

// GetDashboard monta o snapshot de meta versus realizado do vendedor.
// Ano e mês são opcionais e assumem o mês corrente quando ausentes.
func GetDashboard(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		salesPerson := r.URL.Query().Get("salesPerson")
		if salesPerson == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Informe o parâmetro salesPerson", nil)
			return
		}

		now := time.Now()
		year, month, err := utils.ParseYearMonth(
			r.URL.Query().Get("year"),
			r.URL.Query().Get("month"),
			now,
		)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		logger.WithFields(log.Fields{
			"sales_person": salesPerson,
			"year":         year,
			"month":        month,
		}).Info("dashboard: montando snapshot")

		snapshot, err := service.GetDashboard(salesPerson, year, month, now)
		if err != nil {
			logger.WithError(err).Error("dashboard: erro ao montar snapshot")
			writeDashboardError(w, err, "Não foi possível montar o dashboard")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(snapshot); err != nil {
			logger.WithError(err).Error("dashboard: erro ao codificar resposta")
		}
	})
}

// GetPerformance retorna o resumo compacto de desempenho do vendedor no mês
func GetPerformance(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		salesPerson := r.URL.Query().Get("salesPerson")
		if salesPerson == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Informe o parâmetro salesPerson", nil)
			return
		}

		now := time.Now()
		year, month, err := utils.ParseYearMonth(
			r.URL.Query().Get("year"),
			r.URL.Query().Get("month"),
			now,
		)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		report, err := service.GetPerformance(salesPerson, year, month, now)
		if err != nil {
			logger.WithError(err).Error("performance: erro ao montar resumo")
			writeDashboardError(w, err, "Não foi possível montar o resumo de desempenho")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.WithError(err).Error("performance: erro ao codificar resposta")
		}
	})
}
