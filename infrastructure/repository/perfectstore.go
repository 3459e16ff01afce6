package repository

import (
	"fmt"

	"github.com/nachobar3/perfectstore-app/infrastructure/database/postgres"
	"github.com/nachobar3/perfectstore-app/internal/domain"
)

// PerfectStoreRepository expone el procedimiento calculate_perfect_store_score.
type PerfectStoreRepository interface {
	GetScores() ([]domain.PerfectStoreScore, error)
}

type perfectStoreRepository struct {
	conn *postgres.Connection
}

func NewPerfectStoreRepository(conn *postgres.Connection) PerfectStoreRepository {
	return &perfectStoreRepository{
		conn: conn,
	}
}

func (r *perfectStoreRepository) GetScores() ([]domain.PerfectStoreScore, error) {
	rows, err := r.conn.Query("SELECT region_id, region_name, availability_score, price_score, distribution_score, overall_score FROM calculate_perfect_store_score()")
	if err != nil {
		return nil, fmt.Errorf("error al invocar calculate_perfect_store_score: %w", err)
	}
	defer rows.Close()

	scores := make([]domain.PerfectStoreScore, 0)
	for rows.Next() {
		var score domain.PerfectStoreScore
		if err := rows.Scan(
			&score.RegionID,
			&score.RegionName,
			&score.AvailabilityScore,
			&score.PriceScore,
			&score.DistributionScore,
			&score.OverallScore,
		); err != nil {
			return nil, fmt.Errorf("error al escanear perfect store score: %w", err)
		}
		scores = append(scores, score)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error durante la iteración de filas: %w", err)
	}

	return scores, nil
}
