package domain

import (
	"time"
)

// SellOutRecord representa una fila de venta sell-out ya tipada, proveniente
// de la vista v_sell_out_detail. Es un dato de solo lectura: el ciclo de vida
// de los registros pertenece por completo al almacén externo.
type SellOutRecord struct {
	Date        time.Time `json:"date" validate:"required"`
	ProductName string    `json:"product_name" validate:"required"`
	BrandName   string    `json:"brand_name"`
	IsOwnBrand  bool      `json:"is_own_brand"`
	ChannelName string    `json:"channel_name"`
	RegionName  string    `json:"region_name"`
	Units       int       `json:"units" validate:"gte=0"`
	Revenue     float64   `json:"revenue" validate:"gte=0"`
	Price       float64   `json:"price"`
}

// SellOutFilters define la ventana de fechas para las consultas de sell-out.
// El límite inferior es inclusivo y el superior exclusivo.
type SellOutFilters struct {
	StartDate *time.Time
	EndDate   *time.Time

	// OwnBrandOnly restringe la consulta a filas de marca propia cuando no es nil.
	OwnBrandOnly *bool
}

// LastDays arma filtros para los últimos n días hasta hoy (exclusivo mañana).
func LastDays(n int, now time.Time) *SellOutFilters {
	start := now.AddDate(0, 0, -n)
	end := now.AddDate(0, 0, 1)
	return &SellOutFilters{StartDate: &start, EndDate: &end}
}

// PreviousDays arma filtros para la ventana de n días inmediatamente anterior
// a la ventana de LastDays(n): [hoy-2n, hoy-n).
func PreviousDays(n int, now time.Time) *SellOutFilters {
	start := now.AddDate(0, 0, -2*n)
	end := now.AddDate(0, 0, -n)
	return &SellOutFilters{StartDate: &start, EndDate: &end}
}
