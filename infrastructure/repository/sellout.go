// Package repository contiene las implementaciones de acceso a datos
package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/nachobar3/perfectstore-app/infrastructure/database/postgres"
	"github.com/nachobar3/perfectstore-app/internal/domain"
)

const (
	sellOutView = "v_sell_out_detail so"
)

type SellOutRepository interface {
	GetByDateRange(filters *domain.SellOutFilters) ([]domain.SellOutRecord, error)
}

type sellOutRepository struct {
	conn     *postgres.Connection
	validate *validator.Validate
}

func NewSellOutRepository(conn *postgres.Connection) SellOutRepository {
	return &sellOutRepository{
		conn:     conn,
		validate: validator.New(),
	}
}

// GetByDateRange devuelve las filas de sell-out dentro de la ventana pedida.
// El límite inferior es inclusivo y el superior exclusivo. Las filas que no
// pasan la validación de esquema se descartan y se registran, para que un
// dato malformado del almacén nunca llegue a la aritmética de agregación.
func (r *sellOutRepository) GetByDateRange(filters *domain.SellOutFilters) ([]domain.SellOutRecord, error) {
	if filters == nil || filters.StartDate == nil || filters.EndDate == nil {
		return nil, fmt.Errorf("es necesario informar las fechas de inicio y fin")
	}

	queryBuilder := squirrel.
		Select(
			"so.date",
			"so.product_name",
			"so.brand_name",
			"so.is_own_brand",
			"so.channel_name",
			"so.region_name",
			"so.units",
			"so.revenue",
			"so.price",
		).
		From(sellOutView).
		Where(squirrel.GtOrEq{"so.date": filters.StartDate.Format(time.DateOnly)}).
		Where(squirrel.Lt{"so.date": filters.EndDate.Format(time.DateOnly)}).
		OrderBy("so.date ASC").
		PlaceholderFormat(squirrel.Dollar)

	if filters.OwnBrandOnly != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"so.is_own_brand": *filters.OwnBrandOnly})
	}

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error al construir la consulta: %w", err)
	}

	rows, err := r.conn.Query(sqlQuery, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return []domain.SellOutRecord{}, nil
		}
		return nil, fmt.Errorf("error al ejecutar la consulta: %w", err)
	}
	defer rows.Close()

	records := make([]domain.SellOutRecord, 0)
	discarded := 0

	for rows.Next() {
		var rec domain.SellOutRecord
		if err := rows.Scan(
			&rec.Date,
			&rec.ProductName,
			&rec.BrandName,
			&rec.IsOwnBrand,
			&rec.ChannelName,
			&rec.RegionName,
			&rec.Units,
			&rec.Revenue,
			&rec.Price,
		); err != nil {
			return nil, fmt.Errorf("error al escanear fila de sell-out: %w", err)
		}

		// Validación de esquema en el borde de ingesta
		if err := r.validate.Struct(rec); err != nil {
			discarded++
			logrus.WithError(err).WithFields(logrus.Fields{
				"product": rec.ProductName,
				"date":    rec.Date.Format(time.DateOnly),
			}).Warn("sellout: fila descartada por fallo de validación")
			continue
		}

		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error durante la iteración de filas: %w", err)
	}

	if discarded > 0 {
		logrus.WithField("discarded", discarded).Warn("sellout: filas malformadas descartadas en la ingesta")
	}

	return records, nil
}
