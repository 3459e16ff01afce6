package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/nachobar3/perfectstore-app/infrastructure/database/postgres"
	"github.com/nachobar3/perfectstore-app/internal/domain"
)

const (
	marketShareView = "v_market_share_by_region ms"
)

// MarketShareRepository expone el procedimiento agregado de market share y
// las filas crudas de la vista para el camino de respaldo.
type MarketShareRepository interface {
	GetShareByRegion() ([]domain.RegionShare, error)
	GetRawRows(since time.Time) ([]domain.MarketShareRow, error)
}

type marketShareRepository struct {
	conn *postgres.Connection
}

func NewMarketShareRepository(conn *postgres.Connection) MarketShareRepository {
	return &marketShareRepository{
		conn: conn,
	}
}

// GetShareByRegion invoca el procedimiento get_market_share_by_region. Si el
// procedimiento falla, el caller decide el camino manual; acá solo se
// devuelve el error.
func (r *marketShareRepository) GetShareByRegion() ([]domain.RegionShare, error) {
	rows, err := r.conn.Query("SELECT region_name, own_brand_share_pct, total_market FROM get_market_share_by_region()")
	if err != nil {
		return nil, fmt.Errorf("error al invocar get_market_share_by_region: %w", err)
	}
	defer rows.Close()

	shares := make([]domain.RegionShare, 0)
	for rows.Next() {
		var share domain.RegionShare
		if err := rows.Scan(&share.RegionName, &share.SharePct, &share.TotalRevenue); err != nil {
			return nil, fmt.Errorf("error al escanear share regional: %w", err)
		}

		// El procedimiento devuelve porcentaje y mercado total; la
		// facturación propia se reconstruye a partir de ambos.
		share.OwnRevenue = share.TotalRevenue * share.SharePct / 100

		shares = append(shares, share)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error durante la iteración de filas: %w", err)
	}

	return shares, nil
}

// GetRawRows trae las filas crudas de la vista de market share desde la fecha
// indicada, para recomputar el share manualmente cuando el procedimiento falla.
func (r *marketShareRepository) GetRawRows(since time.Time) ([]domain.MarketShareRow, error) {
	queryBuilder := squirrel.
		Select("ms.region_name", "ms.total_revenue", "ms.is_own_brand").
		From(marketShareView).
		Where(squirrel.GtOrEq{"ms.date": since.Format(time.DateOnly)}).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error al construir la consulta: %w", err)
	}

	rows, err := r.conn.Query(sqlQuery, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return []domain.MarketShareRow{}, nil
		}
		return nil, fmt.Errorf("error al ejecutar la consulta: %w", err)
	}
	defer rows.Close()

	raw := make([]domain.MarketShareRow, 0)
	for rows.Next() {
		var row domain.MarketShareRow
		if err := rows.Scan(&row.RegionName, &row.TotalRevenue, &row.IsOwnBrand); err != nil {
			return nil, fmt.Errorf("error al escanear fila de market share: %w", err)
		}
		raw = append(raw, row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error durante la iteración de filas: %w", err)
	}

	return raw, nil
}
