// Package store persists the whole plan aggregate as one document.
//
// The adapter carries no business logic: load returns the aggregate (or
// defaults when nothing usable is stored) and save replaces it wholesale.
package store

import (
	"context"

	"github.com/amarkin/studybot/internal/domain"
)

// PlanStore loads and saves the full plan state blob.
//
// Load never fails on a missing or corrupt blob; both cases yield the empty
// default state. Save replaces the entire blob in one call; with multiple
// processes sharing a store the last writer wins (no isolation is provided).
type PlanStore interface {
	Load(ctx context.Context) (*domain.PlanState, error)
	Save(ctx context.Context, state *domain.PlanState) error
}
