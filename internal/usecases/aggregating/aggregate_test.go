package aggregating

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/nachobar3/perfectstore-app/internal/domain"
)

func record(date time.Time, product, region, channel string, own bool, units int, revenue, price float64) domain.SellOutRecord {
	return domain.SellOutRecord{
		Date:        date,
		ProductName: product,
		BrandName:   "NutriSnack",
		IsOwnBrand:  own,
		ChannelName: channel,
		RegionName:  region,
		Units:       units,
		Revenue:     revenue,
		Price:       price,
	}
}

func TestShareByRegion(t *testing.T) {
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		records  []domain.SellOutRecord
		validate func(t *testing.T, result []domain.RegionShare)
	}{
		{
			name: "Propia 100 sobre total 400 en AMBA da 25 por ciento",
			records: []domain.SellOutRecord{
				record(day, "Chips Clásicas", "AMBA", "Supermercado", true, 10, 100, 10),
				record(day, "Lays Original", "AMBA", "Supermercado", false, 30, 300, 10),
			},
			validate: func(t *testing.T, result []domain.RegionShare) {
				assert.Len(t, result, 1)
				assert.Equal(t, "AMBA", result[0].RegionName)
				assert.Equal(t, 100.0, result[0].OwnRevenue)
				assert.Equal(t, 400.0, result[0].TotalRevenue)
				assert.Equal(t, 25.0, result[0].SharePct)
			},
		},
		{
			name: "Región sin venta propia tiene participación cero",
			records: []domain.SellOutRecord{
				record(day, "Lays Original", "Córdoba", "Kiosco", false, 5, 50, 10),
			},
			validate: func(t *testing.T, result []domain.RegionShare) {
				assert.Len(t, result, 1)
				assert.Equal(t, 0.0, result[0].OwnRevenue)
				assert.Equal(t, 0.0, result[0].SharePct)
			},
		},
		{
			name:    "Entrada vacía devuelve lista vacía",
			records: []domain.SellOutRecord{},
			validate: func(t *testing.T, result []domain.RegionShare) {
				assert.NotNil(t, result)
				assert.Empty(t, result)
			},
		},
		{
			name: "El orden de salida respeta el orden de aparición",
			records: []domain.SellOutRecord{
				record(day, "Chips Clásicas", "Mendoza", "Almacén", true, 1, 10, 10),
				record(day, "Chips Clásicas", "AMBA", "Almacén", true, 1, 10, 10),
				record(day, "Chips Clásicas", "Mendoza", "Kiosco", true, 1, 10, 10),
			},
			validate: func(t *testing.T, result []domain.RegionShare) {
				assert.Len(t, result, 2)
				assert.Equal(t, "Mendoza", result[0].RegionName)
				assert.Equal(t, "AMBA", result[1].RegionName)
				assert.Equal(t, 20.0, result[0].OwnRevenue)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, ShareByRegion(tt.records))
		})
	}
}

func TestSummaryByChannel(t *testing.T) {
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	records := []domain.SellOutRecord{
		record(day, "Chips Clásicas", "AMBA", "Supermercado", true, 10, 200, 20),
		record(day, "Lays Original", "AMBA", "Supermercado", false, 10, 200, 20),
		record(day, "Maní Salado", "AMBA", "Kiosco", true, 5, 50, 10),
	}

	result := SummaryByChannel(records)

	assert.Len(t, result, 2)
	assert.Equal(t, "Supermercado", result[0].ChannelName)
	assert.Equal(t, 200.0, result[0].OwnRevenue)
	assert.Equal(t, 400.0, result[0].TotalRevenue)
	assert.Equal(t, 10, result[0].Units)
	assert.Equal(t, 50.0, result[0].SharePct)

	assert.Equal(t, "Kiosco", result[1].ChannelName)
	assert.Equal(t, 100.0, result[1].SharePct)
	assert.Equal(t, 5, result[1].Units)
}

func TestSalesByProductIgnoresCompetitors(t *testing.T) {
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	records := []domain.SellOutRecord{
		record(day, "Chips Clásicas", "AMBA", "Supermercado", true, 10, 100, 10),
		record(day, "Lays Original", "AMBA", "Supermercado", false, 99, 999, 10),
		record(day, "Chips Clásicas", "Córdoba", "Kiosco", true, 5, 50, 10),
	}

	result := SalesByProduct(records)

	assert.Len(t, result, 1)
	assert.Equal(t, "Chips Clásicas", result[0].ProductName)
	assert.Equal(t, 150.0, result[0].Revenue)
	assert.Equal(t, 15, result[0].Units)
}

func TestTopProducts(t *testing.T) {
	tests := []struct {
		name     string
		products []domain.ProductSales
		limit    int
		validate func(t *testing.T, result []domain.ProductSales)
	}{
		{
			name: "Ordena descendente por facturación y corta en el límite",
			products: []domain.ProductSales{
				{ProductName: "A", Revenue: 10},
				{ProductName: "B", Revenue: 60},
				{ProductName: "C", Revenue: 30},
				{ProductName: "D", Revenue: 50},
				{ProductName: "E", Revenue: 40},
				{ProductName: "F", Revenue: 20},
			},
			limit: TopProductsLimit,
			validate: func(t *testing.T, result []domain.ProductSales) {
				assert.Len(t, result, 5)
				assert.Equal(t, "B", result[0].ProductName)
				assert.Equal(t, "D", result[1].ProductName)
				assert.Equal(t, "E", result[2].ProductName)
				assert.Equal(t, "C", result[3].ProductName)
				assert.Equal(t, "F", result[4].ProductName)
			},
		},
		{
			name: "Los empates conservan el orden de entrada",
			products: []domain.ProductSales{
				{ProductName: "Primero", Revenue: 100},
				{ProductName: "Segundo", Revenue: 100},
				{ProductName: "Tercero", Revenue: 100},
			},
			limit: TopProductsLimit,
			validate: func(t *testing.T, result []domain.ProductSales) {
				assert.Len(t, result, 3)
				assert.Equal(t, "Primero", result[0].ProductName)
				assert.Equal(t, "Segundo", result[1].ProductName)
				assert.Equal(t, "Tercero", result[2].ProductName)
			},
		},
		{
			name: "Menos productos que el límite devuelve todos",
			products: []domain.ProductSales{
				{ProductName: "A", Revenue: 1},
				{ProductName: "B", Revenue: 2},
			},
			limit: TopProductsLimit,
			validate: func(t *testing.T, result []domain.ProductSales) {
				assert.Len(t, result, 2)
				assert.Equal(t, "B", result[0].ProductName)
			},
		},
		{
			name:     "Entrada vacía devuelve lista vacía",
			products: []domain.ProductSales{},
			limit:    TopProductsLimit,
			validate: func(t *testing.T, result []domain.ProductSales) {
				assert.Empty(t, result)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, TopProducts(tt.products, tt.limit))
		})
	}
}

func TestTopProductsDoesNotMutateInput(t *testing.T) {
	products := []domain.ProductSales{
		{ProductName: "A", Revenue: 1},
		{ProductName: "B", Revenue: 2},
	}

	TopProducts(products, TopProductsLimit)

	assert.Equal(t, "A", products[0].ProductName)
	assert.Equal(t, "B", products[1].ProductName)
}

func TestWeekStart(t *testing.T) {
	tests := []struct {
		name     string
		date     time.Time
		expected string
	}{
		{
			name:     "Un miércoles cae en el domingo anterior",
			date:     time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC),
			expected: "2025-03-09",
		},
		{
			name:     "Un domingo se mapea a sí mismo",
			date:     time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC),
			expected: "2025-03-09",
		},
		{
			name:     "Un sábado cae en el domingo que abre su semana",
			date:     time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
			expected: "2025-03-09",
		},
		{
			name:     "El piso cruza el límite de mes",
			date:     time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			expected: "2025-02-23",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, WeekStart(tt.date))
		})
	}
}

func TestWeeklyTrend(t *testing.T) {
	// Semana 1: domingo 2025-03-02. Semana 2: domingo 2025-03-09.
	sunday1 := time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)
	wednesday1 := time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)
	monday2 := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	records := []domain.SellOutRecord{
		record(monday2, "Chips Clásicas", "AMBA", "Supermercado", true, 1, 200.4, 10),
		record(sunday1, "Chips Clásicas", "AMBA", "Supermercado", true, 1, 100.6, 10),
		record(wednesday1, "Lays Original", "AMBA", "Supermercado", false, 1, 50, 10),
		record(wednesday1, "Chips Clásicas", "AMBA", "Kiosco", true, 1, 99.9, 10),
	}

	result := WeeklyTrend(records)

	assert.Len(t, result, 2)

	// Serie ascendente.
	assert.Equal(t, "2025-03-02", result[0].WeekStart)
	assert.Equal(t, "2025-03-09", result[1].WeekStart)

	// 100.6 + 99.9 = 200.5 redondea a 201.
	assert.Equal(t, int64(201), result[0].OwnRevenue)
	assert.Equal(t, int64(50), result[0].CompetitorRevenue)
	assert.Equal(t, int64(200), result[1].OwnRevenue)
	assert.Equal(t, int64(0), result[1].CompetitorRevenue)
}

func TestWeeklyTrendIsIdempotent(t *testing.T) {
	records := []domain.SellOutRecord{
		record(time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC), "A", "AMBA", "Kiosco", true, 1, 10, 10),
		record(time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC), "A", "AMBA", "Kiosco", false, 1, 20, 10),
		record(time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC), "A", "AMBA", "Kiosco", true, 1, 30, 10),
	}

	first := WeeklyTrend(records)
	second := WeeklyTrend(records)

	assert.Equal(t, first, second)
}

func TestWeeklyTrendConservesTotals(t *testing.T) {
	records := []domain.SellOutRecord{
		record(time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC), "A", "AMBA", "Kiosco", true, 1, 100, 10),
		record(time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC), "A", "AMBA", "Kiosco", true, 1, 200, 10),
		record(time.Date(2025, 3, 18, 0, 0, 0, 0, time.UTC), "A", "AMBA", "Kiosco", false, 1, 300, 10),
	}

	result := WeeklyTrend(records)

	var own, competitor int64
	for _, bucket := range result {
		own += bucket.OwnRevenue
		competitor += bucket.CompetitorRevenue
	}

	assert.Equal(t, int64(300), own)
	assert.Equal(t, int64(300), competitor)
}

func TestComputeKPIs(t *testing.T) {
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		current     []domain.SellOutRecord
		previous    []domain.SellOutRecord
		priceWindow []domain.SellOutRecord
		validate    func(t *testing.T, kpis *domain.KPISnapshot)
	}{
		{
			name: "Variaciones con dos ventanas pobladas",
			current: []domain.SellOutRecord{
				record(day, "A", "AMBA", "Kiosco", true, 1, 300, 10),
				record(day, "B", "AMBA", "Kiosco", false, 1, 700, 10),
			},
			previous: []domain.SellOutRecord{
				record(day.AddDate(0, 0, -40), "A", "AMBA", "Kiosco", true, 1, 200, 10),
				record(day.AddDate(0, 0, -40), "B", "AMBA", "Kiosco", false, 1, 800, 10),
			},
			priceWindow: []domain.SellOutRecord{
				record(day, "A", "AMBA", "Kiosco", true, 1, 100, 110),
				record(day, "B", "AMBA", "Kiosco", false, 1, 100, 100),
			},
			validate: func(t *testing.T, kpis *domain.KPISnapshot) {
				assert.Equal(t, 300.0, kpis.TotalRevenue)
				assert.Equal(t, 50.0, kpis.RevenueChangePct)
				assert.Equal(t, 30.0, kpis.MarketSharePct)
				// 30% actual contra 20% anterior: diferencia absoluta en puntos.
				assert.Equal(t, 10.0, kpis.ShareChangePct)
				assert.Equal(t, 110.0, kpis.AvgOwnPrice)
				assert.InDelta(t, 10.0, kpis.PriceVsCompetitionPct, 0.0001)
			},
		},
		{
			name: "Ventana anterior sin venta propia deja la variación en cero",
			current: []domain.SellOutRecord{
				record(day, "A", "AMBA", "Kiosco", true, 1, 300, 10),
			},
			previous: []domain.SellOutRecord{
				record(day.AddDate(0, 0, -40), "B", "AMBA", "Kiosco", false, 1, 800, 10),
			},
			priceWindow: []domain.SellOutRecord{},
			validate: func(t *testing.T, kpis *domain.KPISnapshot) {
				assert.Equal(t, 0.0, kpis.RevenueChangePct)
				assert.Equal(t, 100.0, kpis.MarketSharePct)
				assert.Equal(t, 100.0, kpis.ShareChangePct)
			},
		},
		{
			name:        "Sin precios de competidores la comparación queda en cero",
			current:     []domain.SellOutRecord{},
			previous:    []domain.SellOutRecord{},
			priceWindow: []domain.SellOutRecord{record(day, "A", "AMBA", "Kiosco", true, 1, 100, 120)},
			validate: func(t *testing.T, kpis *domain.KPISnapshot) {
				assert.Equal(t, 120.0, kpis.AvgOwnPrice)
				assert.Equal(t, 0.0, kpis.PriceVsCompetitionPct)
			},
		},
		{
			name:        "Todas las ventanas vacías producen indicadores en cero",
			current:     []domain.SellOutRecord{},
			previous:    []domain.SellOutRecord{},
			priceWindow: []domain.SellOutRecord{},
			validate: func(t *testing.T, kpis *domain.KPISnapshot) {
				assert.Equal(t, 0.0, kpis.TotalRevenue)
				assert.Equal(t, 0.0, kpis.RevenueChangePct)
				assert.Equal(t, 0.0, kpis.MarketSharePct)
				assert.Equal(t, 0.0, kpis.ShareChangePct)
				assert.Equal(t, 0.0, kpis.AvgOwnPrice)
				assert.Equal(t, 0.0, kpis.PriceVsCompetitionPct)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kpis := ComputeKPIs(tt.current, tt.previous, tt.priceWindow)

			// La disponibilidad sale siempre de las constantes fijas.
			assert.Equal(t, domain.PlaceholderAvailabilityPct, kpis.AvailabilityPct)
			assert.Equal(t, domain.PlaceholderAvailabilityChangePct, kpis.AvailabilityChangePct)

			tt.validate(t, kpis)
		})
	}
}

func TestShareFromRawRows(t *testing.T) {
	rows := []domain.MarketShareRow{
		{RegionName: "AMBA", TotalRevenue: 100, IsOwnBrand: true},
		{RegionName: "AMBA", TotalRevenue: 300, IsOwnBrand: false},
		{RegionName: "Rosario", TotalRevenue: 50, IsOwnBrand: false},
	}

	result := ShareFromRawRows(rows)

	assert.Len(t, result, 2)
	assert.Equal(t, "AMBA", result[0].RegionName)
	assert.Equal(t, 100.0, result[0].OwnRevenue)
	assert.Equal(t, 400.0, result[0].TotalRevenue)
	assert.Equal(t, 25.0, result[0].SharePct)
	assert.Equal(t, 0.0, result[1].SharePct)
}
