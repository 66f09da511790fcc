package access

import (
	"time"

	"github.com/andrescamacho/starlane-logistics/internal/domain/shared"
)

// Contract is an employment contract as seen by the logistics engine
type Contract struct {
	ID       string
	Employer string
	Enemy    string
	Start    time.Time
	End      time.Time

	// PartsAvailability is the rarest availability grade the employer can supply
	PartsAvailability shared.Rating
}

// IsActiveOn reports whether the contract is running on date (end date inclusive).
// A zero End means open-ended.
func (c Contract) IsActiveOn(date time.Time) bool {
	if date.Before(c.Start) {
		return false
	}
	return c.End.IsZero() || !date.After(c.End)
}

// ActiveOn filters contracts down to those running on date
func ActiveOn(contracts []Contract, date time.Time) []Contract {
	active := make([]Contract, 0, len(contracts))
	for _, c := range contracts {
		if c.IsActiveOn(date) {
			active = append(active, c)
		}
	}
	return active
}

// MinPartsAvailability returns the most restrictive parts availability across contracts.
// ok is false when contracts is empty.
func MinPartsAvailability(contracts []Contract) (level shared.Rating, ok bool) {
	for i, c := range contracts {
		if i == 0 || c.PartsAvailability < level {
			level = c.PartsAvailability
		}
	}
	return level, len(contracts) > 0
}
