package handler

import (
	"database/sql"
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/nachobar3/perfectstore-app/infrastructure/repository"
	"github.com/nachobar3/perfectstore-app/pkg/apiErrors"
)

const alertListLimit = 20

// ListAlerts devuelve las alertas más recientes, las no leídas primero si se
// pide con el query param unread=true
func ListAlerts(repo repository.AlertRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		unreadOnly := r.URL.Query().Get("unread") == "true"

		var (
			alerts interface{}
			err    error
		)

		if unreadOnly {
			alerts, err = repo.ListUnread(alertListLimit)
		} else {
			alerts, err = repo.ListRecent(alertListLimit)
		}

		if err != nil {
			logrus.Error("Error al listar alertas:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al listar alertas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(alerts)
		if err != nil {
			logrus.Error("Error al enviar la respuesta de alertas:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error al enviar la respuesta", nil)
			return
		}
	}
}

// MarkAlertRead marca una alerta como leída
func MarkAlertRead(repo repository.AlertRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		alertID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if alertID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Falta el identificador de la alerta", nil)
			return
		}

		err := repo.MarkRead(alertID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Alerta no encontrada", map[string]any{
					"alert_id": alertID,
				})
				return
			}

			logrus.Error("Error al marcar la alerta como leída:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al marcar la alerta como leída", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":      alertID,
			"is_read": true,
		})
	}
}
