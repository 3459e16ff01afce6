package domain

// RegionShare acumula la facturación propia y total de una región dentro de
// una ventana de fechas. SharePct se deriva como own/total*100 con resguardo
// de denominador cero.
type RegionShare struct {
	RegionName   string  `json:"region_name"`
	OwnRevenue   float64 `json:"own_revenue"`
	TotalRevenue float64 `json:"total_revenue"`
	SharePct     float64 `json:"share_pct"`
}

// ChannelSummary es el mix por canal: misma forma que RegionShare más las
// unidades vendidas de marca propia.
type ChannelSummary struct {
	ChannelName  string  `json:"channel_name"`
	OwnRevenue   float64 `json:"own_revenue"`
	TotalRevenue float64 `json:"total_revenue"`
	Units        int     `json:"units"`
	SharePct     float64 `json:"share_pct"`
}

// ProductSales acumula facturación y unidades por producto (solo marca propia).
type ProductSales struct {
	ProductName string  `json:"product_name"`
	Revenue     float64 `json:"revenue"`
	Units       int     `json:"units"`
}

// WeekBucket es un punto de la serie semanal de tendencia. WeekStart es el
// domingo que abre la semana, en formato YYYY-MM-DD. Los montos van
// redondeados al entero más cercano.
type WeekBucket struct {
	WeekStart         string `json:"week"`
	OwnRevenue        int64  `json:"own_revenue"`
	CompetitorRevenue int64  `json:"competitor_revenue"`
}

// MarketShareRow es una fila cruda de la vista v_market_share_by_region,
// usada por el camino de respaldo cuando el procedimiento agregado falla.
type MarketShareRow struct {
	RegionName   string  `json:"region_name"`
	TotalRevenue float64 `json:"total_revenue"`
	IsOwnBrand   bool    `json:"is_own_brand"`
}

// PerfectStoreScore es el puntaje compuesto 0-100 por región que devuelve el
// procedimiento calculate_perfect_store_score. Solo lectura.
type PerfectStoreScore struct {
	RegionID          string  `json:"region_id"`
	RegionName        string  `json:"region_name"`
	AvailabilityScore float64 `json:"availability_score"`
	PriceScore        float64 `json:"price_score"`
	DistributionScore float64 `json:"distribution_score"`
	OverallScore      float64 `json:"overall_score"`
}
