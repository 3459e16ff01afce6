package domain

// Valores fijos para disponibilidad: todavía no se calculan desde los datos
// de punto de venta. Quedan como constantes hasta que exista la fuente real.
const (
	PlaceholderAvailabilityPct       = 78.0
	PlaceholderAvailabilityChangePct = 2.3
)

// KPISnapshot es la foto puntual de indicadores del tablero. No se persiste:
// se recalcula en cada refresco a partir de dos ventanas disjuntas de 30 días.
type KPISnapshot struct {
	TotalRevenue          float64 `json:"total_revenue"`
	RevenueChangePct      float64 `json:"revenue_change_pct"`
	MarketSharePct        float64 `json:"market_share_pct"`
	ShareChangePct        float64 `json:"share_change_pct"`
	AvgOwnPrice           float64 `json:"avg_own_price"`
	PriceVsCompetitionPct float64 `json:"price_vs_competition_pct"`
	AvailabilityPct       float64 `json:"availability_pct"`
	AvailabilityChangePct float64 `json:"availability_change_pct"`
}
