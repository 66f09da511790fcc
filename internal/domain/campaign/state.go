package campaign

import (
	"context"
	"time"
)

// State is the campaign progress that outlives one run: where the calendar stands
// and what is left in the account
type State struct {
	Date    time.Time
	Balance int64
}

// StateRepository stores State. A stored State marks the campaign as saved, so an
// empty stored shopping list or warehouse is taken as empty rather than unsaved.
type StateRepository interface {
	// Load returns the saved state, or nil when the campaign has never been saved
	Load(ctx context.Context) (*State, error)

	Save(ctx context.Context, state State) error
}
