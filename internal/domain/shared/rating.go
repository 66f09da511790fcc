package shared

import (
	"fmt"
	"strings"
)

// Rating is a letter grade used for equipment availability, part quality and
// planetary socio-industrial data. A is the best/most common, X means unavailable.
type Rating int

const (
	RatingA Rating = iota
	RatingB
	RatingC
	RatingD
	RatingE
	RatingF
	RatingX
)

var ratingNames = [...]string{"A", "B", "C", "D", "E", "F", "X"}

// ParseRating converts a letter grade into a Rating
func ParseRating(value string) (Rating, error) {
	normalized := strings.ToUpper(strings.TrimSpace(value))
	for i, name := range ratingNames {
		if name == normalized {
			return Rating(i), nil
		}
	}
	return RatingA, NewValidationError("rating", fmt.Sprintf("unknown rating %q", value))
}

// IsValid reports whether r is one of the defined grades
func (r Rating) IsValid() bool {
	return r >= RatingA && r <= RatingX
}

func (r Rating) String() string {
	if !r.IsValid() {
		return fmt.Sprintf("Rating(%d)", int(r))
	}
	return ratingNames[r]
}

// MarshalText lets ratings round-trip through YAML and JSON as letters
func (r Rating) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText parses a letter grade
func (r *Rating) UnmarshalText(text []byte) error {
	parsed, err := ParseRating(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// AvailabilityModifier returns the acquisition target modifier for an availability grade
func (r Rating) AvailabilityModifier() int {
	switch r {
	case RatingA:
		return -4
	case RatingB:
		return -3
	case RatingC:
		return -2
	case RatingD:
		return -1
	case RatingE:
		return 0
	case RatingF:
		return 2
	default:
		return 5
	}
}
