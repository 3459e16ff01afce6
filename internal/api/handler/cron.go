package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/nachobar3/perfectstore-app/internal/domain"
	"github.com/nachobar3/perfectstore-app/internal/scheduler"
	"github.com/nachobar3/perfectstore-app/pkg/apiErrors"
	"github.com/nachobar3/perfectstore-app/pkg/middleware"
)

// Tipos de cron job que se pueden ejecutar manualmente
const (
	CronJobTypeAlerts = "alerts"
	CronJobTypeAll    = "all"
)

// CronJobServices contiene los servicios de cron que se pueden disparar a mano
type CronJobServices struct {
	AlertDetectionService *scheduler.AlertDetectionService
}

// RunCronJob ejecuta manualmente una cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		// Solo administradores pueden ejecutar cron jobs
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != domain.RoleAdmin {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Solo administradores pueden ejecutar cron jobs", nil)
			return
		}

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "No se especificó el tipo de cron job", nil)
			return
		}

		switch cronType {
		case CronJobTypeAlerts, CronJobTypeAll:
			if services.AlertDetectionService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "El servicio de detección de alertas no está disponible", nil)
				return
			}
			services.AlertDetectionService.TriggerManualSync()
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceptados: alerts, all", nil)
			return
		}

		response := map[string]any{
			"message": "Cron job iniciada con éxito",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus devuelve el estado de las cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		// Solo administradores pueden consultar el estado de las crons
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != domain.RoleAdmin {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Solo administradores pueden consultar el estado de las cron jobs", nil)
			return
		}

		status := map[string]any{}
		if services.AlertDetectionService != nil {
			status["alerts"] = services.AlertDetectionService.GetStatus()
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(status)
	}
}
