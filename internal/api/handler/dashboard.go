package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/nachobar3/perfectstore-app/internal/usecases/dashboarding"
	"github.com/nachobar3/perfectstore-app/pkg/apiErrors"
)

// GetDashboard devuelve el view-model completo del tablero
func GetDashboard(service dashboarding.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dashboard, err := service.GetDashboard()
		if err != nil {
			logrus.Error("Error al armar el tablero:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error al armar el tablero", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(dashboard)
		if err != nil {
			logrus.Error("Error al enviar la respuesta del tablero:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error al enviar la respuesta", nil)
			return
		}
	}
}

// GetDashboardTrend devuelve solo la serie semanal de tendencia. Acepta el
// query param opcional weeks.
func GetDashboardTrend(service dashboarding.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		weeks := 0
		if raw := r.URL.Query().Get("weeks"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "El parámetro weeks debe ser numérico", nil)
				return
			}
			weeks = parsed
		}

		trend, err := service.GetTrend(weeks)
		if err != nil {
			logrus.Error("Error al armar la tendencia semanal:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error al armar la tendencia semanal", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(trend)
		if err != nil {
			logrus.Error("Error al enviar la respuesta de tendencia:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error al enviar la respuesta", nil)
			return
		}
	}
}
