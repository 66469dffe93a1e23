package postgres

import (
	"context"
	"time"

	"adhtc/domain/core"
	"adhtc/ports"

	"github.com/jmoiron/sqlx"
)

const historySchema = `
CREATE TABLE IF NOT EXISTS analysis_history (
	id               UUID PRIMARY KEY,
	created_at       TIMESTAMPTZ NOT NULL,
	inputs           JSONB NOT NULL,
	total_power_kw   DOUBLE PRECISION NOT NULL,
	gt_efficiency    DOUBLE PRECISION NOT NULL,
	steam_efficiency DOUBLE PRECISION NOT NULL,
	biogas_m3_h      DOUBLE PRECISION NOT NULL,
	hydrochar_kg_h   DOUBLE PRECISION NOT NULL
)`

// HistoryRepositoryImpl implements HistoryRepository for PostgreSQL
type HistoryRepositoryImpl struct {
	db *sqlx.DB
}

// NewHistoryRepository creates a new PostgreSQL history repository and
// ensures the backing table exists.
func NewHistoryRepository(db *sqlx.DB) (ports.HistoryRepository, error) {
	if _, err := db.Exec(historySchema); err != nil {
		return nil, err
	}
	return &HistoryRepositoryImpl{db: db}, nil
}

// Save appends one analysis run summary
func (r *HistoryRepositoryImpl) Save(ctx context.Context, record *ports.AnalysisRecord) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO analysis_history (id, created_at, inputs, total_power_kw, gt_efficiency, steam_efficiency, biogas_m3_h, hydrochar_kg_h)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, record.ID.String(), record.CreatedAt.Time(), record.InputsJSON,
		record.TotalPowerKW, record.GTEfficiency, record.SteamEfficiency,
		record.BiogasM3h, record.HydrocharKgh)
	return err
}

// ListRecent returns the newest analysis runs, most recent first
func (r *HistoryRepositoryImpl) ListRecent(ctx context.Context, limit int) ([]*ports.AnalysisRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, created_at, inputs, total_power_kw, gt_efficiency, steam_efficiency, biogas_m3_h, hydrochar_kg_h
		FROM analysis_history
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*ports.AnalysisRecord
	for rows.Next() {
		var (
			record    ports.AnalysisRecord
			id        string
			createdAt time.Time
		)
		if err := rows.Scan(&id, &createdAt, &record.InputsJSON,
			&record.TotalPowerKW, &record.GTEfficiency, &record.SteamEfficiency,
			&record.BiogasM3h, &record.HydrocharKgh); err != nil {
			return nil, err
		}
		record.ID = core.AnalysisID(id)
		record.CreatedAt = core.NewTimestamp(createdAt)
		records = append(records, &record)
	}
	return records, rows.Err()
}
