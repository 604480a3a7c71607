package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/amarkin/studybot/internal/db"
	"github.com/amarkin/studybot/internal/domain"
)

// SQLitePlanStore implements PlanStore on a single-row SQLite table holding
// the aggregate as a JSON document.
type SQLitePlanStore struct {
	db  db.DBTX
	now func() time.Time
}

// NewSQLitePlanStore creates a new SQLitePlanStore.
func NewSQLitePlanStore(conn db.DBTX) *SQLitePlanStore {
	return &SQLitePlanStore{db: conn, now: time.Now}
}

func (s *SQLitePlanStore) Load(ctx context.Context) (*domain.PlanState, error) {
	var data string
	err := s.db.QueryRowContext(ctx, `SELECT data FROM plan_state WHERE id = 'default'`).Scan(&data)
	if err == sql.ErrNoRows {
		return domain.NewPlanState(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading plan state: %w", err)
	}

	var state domain.PlanState
	if err := json.Unmarshal([]byte(data), &state); err != nil {
		// A corrupt blob is treated as an empty store, not an error.
		return domain.NewPlanState(), nil
	}
	return &state, nil
}

func (s *SQLitePlanStore) Save(ctx context.Context, state *domain.PlanState) error {
	trimmed := *state
	if len(trimmed.BehaviorLog) > domain.MaxBehaviorLogEntries {
		trimmed.BehaviorLog = trimmed.BehaviorLog[len(trimmed.BehaviorLog)-domain.MaxBehaviorLogEntries:]
	}

	data, err := json.Marshal(&trimmed)
	if err != nil {
		return fmt.Errorf("encoding plan state: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO plan_state (id, data, updated_at) VALUES ('default', ?, ?)`,
		string(data), s.now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("saving plan state: %w", err)
	}
	return nil
}
