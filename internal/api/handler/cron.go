package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-target-api/internal/api/handler/router"
	"github.com/vfg2006/sales-target-api/internal/scheduler"
	"github.com/vfg2006/sales-target-api/pkg/apiErrors"
)

// Tipos de cron job aceitos pela execução manual
const (
	CronJobTypeAchievements = "achievements"
	CronJobTypeAll          = "all"
)

// CronJobServices contém os serviços de cron disponíveis para execução manual
type CronJobServices struct {
	AchievementSyncService *scheduler.AchievementSyncService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := router.Param(r, "type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeAchievements, CronJobTypeAll:
			if services.AchievementSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de consolidação de vendas não disponível", nil)
				return
			}
			services.AchievementSyncService.TriggerManualSync()

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: achievements, all", nil)
			return
		}

		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		if services.AchievementSyncService == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de consolidação de vendas não disponível", nil)
			return
		}

		status := map[string]any{
			"achievements": services.AchievementSyncService.GetStatus(),
		}

		json.NewEncoder(w).Encode(status)
	}
}
