package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/nachobar3/perfectstore-app/infrastructure/database/postgres"
	"github.com/nachobar3/perfectstore-app/internal/domain"
)

const (
	alertsTable = "alerts a"
)

type AlertRepository interface {
	ListRecent(limit uint64) ([]domain.Alert, error)
	ListUnread(limit uint64) ([]domain.Alert, error)
	MarkRead(id string) error
	Save(alert *domain.Alert) error
	ExistsRecent(alertType domain.AlertType, title string, since time.Time) (bool, error)
	DeleteOlderThan(days int) (int64, error)
}

type alertRepository struct {
	conn *postgres.Connection
}

func NewAlertRepository(conn *postgres.Connection) AlertRepository {
	return &alertRepository{
		conn: conn,
	}
}

func (r *alertRepository) ListRecent(limit uint64) ([]domain.Alert, error) {
	return r.list(limit, nil)
}

func (r *alertRepository) ListUnread(limit uint64) ([]domain.Alert, error) {
	unread := squirrel.Eq{"a.is_read": false}
	return r.list(limit, unread)
}

func (r *alertRepository) list(limit uint64, extra squirrel.Sqlizer) ([]domain.Alert, error) {
	queryBuilder := squirrel.
		Select(
			"a.id",
			"a.type",
			"a.severity",
			"a.title",
			"a.description",
			"a.is_read",
			"a.product_id",
			"a.region_id",
			"a.created_at",
		).
		From(alertsTable).
		OrderBy("a.created_at DESC").
		Limit(limit).
		PlaceholderFormat(squirrel.Dollar)

	if extra != nil {
		queryBuilder = queryBuilder.Where(extra)
	}

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error al construir la consulta: %w", err)
	}

	rows, err := r.conn.Query(sqlQuery, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return []domain.Alert{}, nil
		}
		return nil, fmt.Errorf("error al ejecutar la consulta: %w", err)
	}
	defer rows.Close()

	alerts := make([]domain.Alert, 0)
	for rows.Next() {
		var alert domain.Alert
		if err := rows.Scan(
			&alert.ID,
			&alert.Type,
			&alert.Severity,
			&alert.Title,
			&alert.Description,
			&alert.IsRead,
			&alert.ProductID,
			&alert.RegionID,
			&alert.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("error al escanear alerta: %w", err)
		}
		alerts = append(alerts, alert)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error durante la iteración de filas: %w", err)
	}

	return alerts, nil
}

func (r *alertRepository) MarkRead(id string) error {
	queryBuilder := squirrel.
		Update("alerts").
		Set("is_read", true).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("error al construir la consulta: %w", err)
	}

	result, err := r.conn.Exec(sqlQuery, args...)
	if err != nil {
		return fmt.Errorf("error al ejecutar la consulta: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error al obtener filas afectadas: %w", err)
	}

	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *alertRepository) Save(alert *domain.Alert) error {
	queryBuilder := squirrel.
		Insert("alerts").
		Columns("id", "type", "severity", "title", "description", "is_read", "product_id", "region_id", "created_at").
		Values(
			alert.ID,
			alert.Type,
			alert.Severity,
			alert.Title,
			alert.Description,
			alert.IsRead,
			alert.ProductID,
			alert.RegionID,
			alert.CreatedAt,
		).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("error al construir la consulta: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("error de base de datos: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("error al ejecutar la consulta: %w", err)
	}

	return nil
}

// ExistsRecent responde si ya existe una alerta del mismo tipo y título desde
// la fecha dada. El detector la usa para no duplicar alertas día a día.
func (r *alertRepository) ExistsRecent(alertType domain.AlertType, title string, since time.Time) (bool, error) {
	queryBuilder := squirrel.
		Select("COUNT(1)").
		From(alertsTable).
		Where(squirrel.Eq{"a.type": alertType, "a.title": title}).
		Where(squirrel.GtOrEq{"a.created_at": since}).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return false, fmt.Errorf("error al construir la consulta: %w", err)
	}

	var count int
	if err := r.conn.QueryRow(sqlQuery, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("error al ejecutar la consulta: %w", err)
	}

	return count > 0, nil
}

func (r *alertRepository) DeleteOlderThan(days int) (int64, error) {
	cutoff := time.Now().AddDate(0, 0, -days)

	queryBuilder := squirrel.
		Delete("alerts").
		Where(squirrel.Lt{"created_at": cutoff}).
		Where(squirrel.Eq{"is_read": true}).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("error al construir la consulta: %w", err)
	}

	result, err := r.conn.Exec(sqlQuery, args...)
	if err != nil {
		return 0, fmt.Errorf("error al ejecutar la consulta: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("error al obtener filas afectadas: %w", err)
	}

	return affected, nil
}
