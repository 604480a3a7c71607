// Package planner orchestrates the study plan: it owns the in-memory
// aggregate, applies commands to it, and persists the whole aggregate after
// every mutation.
package planner

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/amarkin/studybot/internal/domain"
	"github.com/amarkin/studybot/internal/store"
	"github.com/google/uuid"
)

// Planner is the single mutable aggregate root. It is not safe for
// concurrent use; the design assumes one local user and one process.
type Planner struct {
	state *domain.PlanState
	store store.PlanStore
	now   func() time.Time
}

// Load reads the persisted aggregate (or defaults) and wraps it in a
// Planner.
func Load(ctx context.Context, st store.PlanStore) (*Planner, error) {
	state, err := st.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading plan: %w", err)
	}
	return &Planner{state: state, store: st, now: time.Now}, nil
}

// State exposes the aggregate for read-only consumers (exports, tests).
func (p *Planner) State() *domain.PlanState {
	return p.state
}

// WithClock overrides the planner's notion of now. Test hook.
func (p *Planner) WithClock(now func() time.Time) *Planner {
	p.now = now
	return p
}

func (p *Planner) today() string {
	return domain.FormatDay(p.now())
}

// save persists the full aggregate. A failed save is reported in the reply
// rather than escalated; nothing in this core is fatal.
func (p *Planner) save(ctx context.Context) string {
	if err := p.store.Save(ctx, p.state); err != nil {
		return fmt.Sprintf("\n(warning: your plan could not be saved: %v)", err)
	}
	return ""
}

// newShortID returns a short unique token for tasks and exams, derived from
// a UUID prefix and checked against both id spaces.
func (p *Planner) newShortID() string {
	for {
		id := strings.SplitN(uuid.NewString(), "-", 2)[0][:6]
		if p.state.FindTask(id) == nil && p.state.FindExam(id) == nil {
			return id
		}
	}
}

// Clear irreversibly resets the whole plan and persists the empty aggregate.
// A single command, no confirmation step.
func (p *Planner) Clear(ctx context.Context) string {
	p.state.Reset()
	warn := p.save(ctx)
	return "All subjects, tasks, exams and stats cleared. Fresh start!" + warn
}
