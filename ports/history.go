package ports

import (
	"context"

	"adhtc/domain/core"
)

// AnalysisRecord is the persisted summary of one analysis run. The full
// Report stays ephemeral; only the inputs and headline metrics are kept so
// the history page can list past runs.
type AnalysisRecord struct {
	ID              core.AnalysisID `db:"id" json:"id"`
	CreatedAt       core.Timestamp  `db:"created_at" json:"created_at"`
	InputsJSON      []byte          `db:"inputs" json:"-"`
	TotalPowerKW    float64         `db:"total_power_kw" json:"total_power_kw"`
	GTEfficiency    float64         `db:"gt_efficiency" json:"gt_efficiency"`
	SteamEfficiency float64         `db:"steam_efficiency" json:"steam_efficiency"`
	BiogasM3h       float64         `db:"biogas_m3_h" json:"biogas_m3_h"`
	HydrocharKgh    float64         `db:"hydrochar_kg_h" json:"hydrochar_kg_h"`
}

// HistoryRepository stores analysis run summaries. Implementations must be
// safe for concurrent use; the dashboard may serve analyses in parallel.
type HistoryRepository interface {
	Save(ctx context.Context, record *AnalysisRecord) error
	ListRecent(ctx context.Context, limit int) ([]*AnalysisRecord, error)
}
