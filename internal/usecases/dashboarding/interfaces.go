package dashboarding

import (
	"github.com/nachobar3/perfectstore-app/internal/domain"
)

// Dashboarder arma el view-model completo del tablero.
type Dashboarder interface {
	// GetDashboard recalcula el tablero entero: indicadores, participación
	// por región, tendencia semanal, mix de canales, ranking de productos,
	// puntajes de ejecución y alertas recientes.
	GetDashboard() (*domain.DashboardResponse, error)

	// GetTrend devuelve solo la serie semanal para la ventana de semanas
	// pedida.
	GetTrend(weeks int) ([]domain.WeekBucket, error)
}
