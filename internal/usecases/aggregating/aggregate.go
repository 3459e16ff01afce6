// Package aggregating concentra las funciones puras de agregación sobre filas
// de sell-out: participación por región, mix por canal, ranking de productos,
// tendencia semanal e indicadores con variación entre ventanas. Todas las
// funciones son deterministas y no tocan la base de datos.
package aggregating

import (
	"math"
	"sort"
	"time"

	"github.com/nachobar3/perfectstore-app/internal/domain"
	"github.com/nachobar3/perfectstore-app/pkg/utils"
)

// TopProductsLimit es la cantidad máxima de productos que devuelve el ranking.
const TopProductsLimit = 5

// ShareByRegion agrupa las filas por región y calcula la participación de la
// marca propia sobre el total facturado. El orden de salida respeta el orden
// de aparición de cada región en la entrada.
func ShareByRegion(records []domain.SellOutRecord) []domain.RegionShare {
	order := make([]string, 0)
	byRegion := make(map[string]*domain.RegionShare)

	for _, record := range records {
		share, ok := byRegion[record.RegionName]
		if !ok {
			share = &domain.RegionShare{RegionName: record.RegionName}
			byRegion[record.RegionName] = share
			order = append(order, record.RegionName)
		}

		share.TotalRevenue += record.Revenue
		if record.IsOwnBrand {
			share.OwnRevenue += record.Revenue
		}
	}

	shares := make([]domain.RegionShare, 0, len(order))
	for _, regionName := range order {
		share := byRegion[regionName]
		share.SharePct = sharePct(share.OwnRevenue, share.TotalRevenue)
		shares = append(shares, *share)
	}

	return shares
}

// SummaryByChannel agrupa las filas por canal. Las unidades acumuladas son
// solo de marca propia, igual que la facturación propia.
func SummaryByChannel(records []domain.SellOutRecord) []domain.ChannelSummary {
	order := make([]string, 0)
	byChannel := make(map[string]*domain.ChannelSummary)

	for _, record := range records {
		summary, ok := byChannel[record.ChannelName]
		if !ok {
			summary = &domain.ChannelSummary{ChannelName: record.ChannelName}
			byChannel[record.ChannelName] = summary
			order = append(order, record.ChannelName)
		}

		summary.TotalRevenue += record.Revenue
		if record.IsOwnBrand {
			summary.OwnRevenue += record.Revenue
			summary.Units += record.Units
		}
	}

	summaries := make([]domain.ChannelSummary, 0, len(order))
	for _, channelName := range order {
		summary := byChannel[channelName]
		summary.SharePct = sharePct(summary.OwnRevenue, summary.TotalRevenue)
		summaries = append(summaries, *summary)
	}

	return summaries
}

// SalesByProduct acumula facturación y unidades por producto considerando
// únicamente filas de marca propia, en orden de aparición.
func SalesByProduct(records []domain.SellOutRecord) []domain.ProductSales {
	order := make([]string, 0)
	byProduct := make(map[string]*domain.ProductSales)

	for _, record := range records {
		if !record.IsOwnBrand {
			continue
		}

		sales, ok := byProduct[record.ProductName]
		if !ok {
			sales = &domain.ProductSales{ProductName: record.ProductName}
			byProduct[record.ProductName] = sales
			order = append(order, record.ProductName)
		}

		sales.Revenue += record.Revenue
		sales.Units += record.Units
	}

	products := make([]domain.ProductSales, 0, len(order))
	for _, productName := range order {
		products = append(products, *byProduct[productName])
	}

	return products
}

// TopProducts ordena los productos por facturación descendente y corta el
// ranking en limit. El orden entre empates se preserva (orden estable).
func TopProducts(products []domain.ProductSales, limit int) []domain.ProductSales {
	ranked := make([]domain.ProductSales, len(products))
	copy(ranked, products)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Revenue > ranked[j].Revenue
	})

	if limit < len(ranked) {
		ranked = ranked[:limit]
	}

	return ranked
}

// WeeklyTrend agrupa las filas en semanas que abren el domingo y separa la
// facturación propia de la de competidores. Los montos se redondean al entero
// más cercano y la serie sale en orden cronológico ascendente.
func WeeklyTrend(records []domain.SellOutRecord) []domain.WeekBucket {
	type weekTotals struct {
		own        float64
		competitor float64
	}

	byWeek := make(map[string]*weekTotals)

	for _, record := range records {
		weekStart := WeekStart(record.Date)

		totals, ok := byWeek[weekStart]
		if !ok {
			totals = &weekTotals{}
			byWeek[weekStart] = totals
		}

		if record.IsOwnBrand {
			totals.own += record.Revenue
		} else {
			totals.competitor += record.Revenue
		}
	}

	weeks := make([]string, 0, len(byWeek))
	for weekStart := range byWeek {
		weeks = append(weeks, weekStart)
	}
	sort.Strings(weeks)

	buckets := make([]domain.WeekBucket, 0, len(weeks))
	for _, weekStart := range weeks {
		totals := byWeek[weekStart]
		buckets = append(buckets, domain.WeekBucket{
			WeekStart:         weekStart,
			OwnRevenue:        int64(math.Round(totals.own)),
			CompetitorRevenue: int64(math.Round(totals.competitor)),
		})
	}

	return buckets
}

// WeekStart devuelve el domingo que abre la semana de la fecha dada, en
// formato YYYY-MM-DD. Un domingo se mapea a sí mismo.
func WeekStart(date time.Time) string {
	return date.AddDate(0, 0, -int(date.Weekday())).Format("2006-01-02")
}

// ComputeKPIs arma la foto de indicadores a partir de tres ventanas: la
// actual y la anterior (30 días cada una) para facturación y participación,
// y una ventana corta para el precio promedio. La disponibilidad todavía sale
// de constantes fijas.
func ComputeKPIs(current, previous, priceWindow []domain.SellOutRecord) *domain.KPISnapshot {
	currentOwn, currentTotal := revenueTotals(current)
	previousOwn, previousTotal := revenueTotals(previous)

	revenueChangePct := 0.0
	if previousOwn > 0 {
		revenueChangePct = (currentOwn - previousOwn) / previousOwn * 100
	}

	currentShare := sharePct(currentOwn, currentTotal)
	previousShare := sharePct(previousOwn, previousTotal)

	avgOwnPrice, avgCompetitorPrice := averagePrices(priceWindow)

	priceVsCompetitionPct := 0.0
	if avgCompetitorPrice > 0 {
		priceVsCompetitionPct = (avgOwnPrice - avgCompetitorPrice) / avgCompetitorPrice * 100
	}

	return &domain.KPISnapshot{
		TotalRevenue:          currentOwn,
		RevenueChangePct:      revenueChangePct,
		MarketSharePct:        currentShare,
		ShareChangePct:        currentShare - previousShare,
		AvgOwnPrice:           avgOwnPrice,
		PriceVsCompetitionPct: priceVsCompetitionPct,
		AvailabilityPct:       domain.PlaceholderAvailabilityPct,
		AvailabilityChangePct: domain.PlaceholderAvailabilityChangePct,
	}
}

// ShareFromRawRows reconstruye la participación por región a partir de filas
// crudas de la vista, para cuando el procedimiento agregado no está
// disponible. Devuelve el mismo resultado que ShareByRegion sobre el detalle.
func ShareFromRawRows(rows []domain.MarketShareRow) []domain.RegionShare {
	order := make([]string, 0)
	byRegion := make(map[string]*domain.RegionShare)

	for _, row := range rows {
		share, ok := byRegion[row.RegionName]
		if !ok {
			share = &domain.RegionShare{RegionName: row.RegionName}
			byRegion[row.RegionName] = share
			order = append(order, row.RegionName)
		}

		share.TotalRevenue += row.TotalRevenue
		if row.IsOwnBrand {
			share.OwnRevenue += row.TotalRevenue
		}
	}

	shares := make([]domain.RegionShare, 0, len(order))
	for _, regionName := range order {
		share := byRegion[regionName]
		share.SharePct = sharePct(share.OwnRevenue, share.TotalRevenue)
		shares = append(shares, *share)
	}

	return shares
}

func sharePct(own, total float64) float64 {
	if total <= 0 {
		return 0
	}
	return utils.RoundWithTwoDecimalPlace(own / total * 100)
}

func revenueTotals(records []domain.SellOutRecord) (own, total float64) {
	for _, record := range records {
		total += record.Revenue
		if record.IsOwnBrand {
			own += record.Revenue
		}
	}
	return own, total
}

func averagePrices(records []domain.SellOutRecord) (own, competitor float64) {
	var ownSum, competitorSum float64
	var ownCount, competitorCount int

	for _, record := range records {
		if record.IsOwnBrand {
			ownSum += record.Price
			ownCount++
		} else {
			competitorSum += record.Price
			competitorCount++
		}
	}

	if ownCount > 0 {
		own = ownSum / float64(ownCount)
	}
	if competitorCount > 0 {
		competitor = competitorSum / float64(competitorCount)
	}

	return own, competitor
}
