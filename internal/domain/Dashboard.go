package domain

import (
	"time"
)

// MarketShareSource indica de dónde salió el market share por región en un
// refresco dado: del procedimiento agregado o del recálculo manual sobre
// filas crudas. Se decide una sola vez por request, nunca por excepción.
type MarketShareSource string

const (
	SourcePreAggregated MarketShareSource = "pre_aggregated"
	SourceManual        MarketShareSource = "manual"
)

// DashboardResponse es el view-model completo que consume la capa de
// presentación. Cada refresco lo recalcula desde cero.
type DashboardResponse struct {
	KPIs              *KPISnapshot        `json:"kpis"`
	MarketShare       []RegionShare       `json:"market_share"`
	MarketShareSource MarketShareSource   `json:"market_share_source"`
	Trend             []WeekBucket        `json:"trend"`
	Channels          []ChannelSummary    `json:"channels"`
	TopProducts       []ProductSales      `json:"top_products"`
	PerfectStore      []PerfectStoreScore `json:"perfect_store"`
	Alerts            []Alert             `json:"alerts"`
	GeneratedAt       time.Time           `json:"generated_at"`
}
