package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/BoulderInsight/Dental-Flow-sub000/pkg/core/debt"
	"github.com/BoulderInsight/Dental-Flow-sub000/pkg/core/forecast"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// SnapshotRepo persists the latest engine outputs per practice so the
// dashboard can render without recomputing. The engines themselves never
// touch the database; callers run them and hand the reports here.
type SnapshotRepo struct{}

// NewSnapshotRepo creates a new repository instance.
func NewSnapshotRepo() *SnapshotRepo {
	return &SnapshotRepo{}
}

// Snapshot bundles the persisted reports for one practice.
type Snapshot struct {
	ID         string                   `json:"id"`
	PracticeID string                   `json:"practice_id"`
	Forecast   *forecast.ForecastReport `json:"forecast"`
	Debt       *debt.DebtReport         `json:"debt"`
	CreatedAt  time.Time                `json:"created_at"`
}

// Save upserts the practice's snapshot, replacing any previous one.
//
// Schema assumption:
//
//	CREATE TABLE IF NOT EXISTS engine_snapshots (
//	  practice_id TEXT PRIMARY KEY,
//	  snapshot_id UUID,
//	  snapshot_json JSONB,
//	  updated_at TIMESTAMPTZ
//	);
func (r *SnapshotRepo) Save(ctx context.Context, practiceID string, fc *forecast.ForecastReport, dbt *debt.DebtReport) error {
	pool := GetPool()
	if pool == nil {
		return fmt.Errorf("database pool not initialized")
	}

	snap := Snapshot{
		ID:         uuid.NewString(),
		PracticeID: practiceID,
		Forecast:   fc,
		Debt:       dbt,
		CreatedAt:  time.Now(),
	}
	jsonData, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	query := `
		INSERT INTO engine_snapshots (practice_id, snapshot_id, snapshot_json, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (practice_id)
		DO UPDATE SET
			snapshot_id = EXCLUDED.snapshot_id,
			snapshot_json = EXCLUDED.snapshot_json,
			updated_at = EXCLUDED.updated_at;
	`

	if _, err := pool.Exec(ctx, query, practiceID, snap.ID, jsonData, snap.CreatedAt); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}

// Load retrieves the latest snapshot for a practice.
func (r *SnapshotRepo) Load(ctx context.Context, practiceID string) (*Snapshot, error) {
	pool := GetPool()
	if pool == nil {
		return nil, fmt.Errorf("database pool not initialized")
	}

	query := `SELECT snapshot_json FROM engine_snapshots WHERE practice_id = $1`

	var jsonData []byte
	err := pool.QueryRow(ctx, query, practiceID).Scan(&jsonData)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, fmt.Errorf("no snapshot found for practice %s", practiceID)
		}
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(jsonData, &snap); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}
	return &snap, nil
}
