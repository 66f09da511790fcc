package acquisition

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/andrescamacho/starlane-logistics/internal/domain/shared"
)

// TechBase is the origin of a piece of equipment
type TechBase int

const (
	TechBaseAll TechBase = iota
	TechBaseIS
	TechBaseClan
)

var techBaseNames = map[TechBase]string{
	TechBaseAll:  "all",
	TechBaseIS:   "is",
	TechBaseClan: "clan",
}

// ParseTechBase converts a configuration value into a TechBase
func ParseTechBase(value string) (TechBase, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	if normalized == "" {
		return TechBaseAll, nil
	}
	for base, name := range techBaseNames {
		if name == normalized {
			return base, nil
		}
	}
	return TechBaseAll, shared.NewValidationError("tech_base", fmt.Sprintf("unknown tech base %q", value))
}

func (t TechBase) String() string {
	if name, ok := techBaseNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TechBase(%d)", int(t))
}

// TechLevel is the rules level an item belongs to
type TechLevel int

const (
	TechLevelIntroductory TechLevel = iota
	TechLevelStandard
	TechLevelAdvanced
	TechLevelExperimental
)

var techLevelNames = [...]string{"introductory", "standard", "advanced", "experimental"}

// ParseTechLevel converts a configuration value into a TechLevel
func ParseTechLevel(value string) (TechLevel, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	if normalized == "" {
		return TechLevelStandard, nil
	}
	for i, name := range techLevelNames {
		if name == normalized {
			return TechLevel(i), nil
		}
	}
	return TechLevelStandard, shared.NewValidationError("tech_level", fmt.Sprintf("unknown tech level %q", value))
}

func (t TechLevel) String() string {
	if t >= 0 && int(t) < len(techLevelNames) {
		return techLevelNames[t]
	}
	return fmt.Sprintf("TechLevel(%d)", int(t))
}

// Payload describes the stock that arrives for each successful acquisition
type Payload struct {
	PartType string
	Quality  shared.Rating

	// Units delivered per success (shots for ammunition)
	Units int

	// AmmoFamily and RackSize are set for ammunition only
	AmmoFamily string
	RackSize   int
}

// IsAmmo reports whether the payload is ammunition
func (p Payload) IsAmmo() bool {
	return p.AmmoFamily != ""
}

// Work is a pending request to obtain an item: the AcquisitionWork of the campaign.
//
// Quantity and DaysToWait are only mutated by the resolver and the scheduler.
type Work struct {
	ID           uuid.UUID
	Name         string
	Quantity     int
	TechBase     TechBase
	TechLevel    TechLevel
	Availability shared.Rating
	IntroYear    int
	ExtinctYear  int
	ReintroYear  int
	DaysToWait   int
	BuyCost      int64
	Modifiers    []Modifier
	Payload      Payload
}

// NewWork creates a work item with validation
func NewWork(name string, quantity int, buyCost int64, availability shared.Rating) (*Work, error) {
	if name == "" {
		return nil, shared.NewValidationError("name", "cannot be empty")
	}
	if quantity < 0 {
		return nil, shared.NewValidationError("quantity", "cannot be negative")
	}
	if buyCost < 0 {
		return nil, shared.NewValidationError("buy_cost", "cannot be negative")
	}
	if !availability.IsValid() {
		return nil, shared.NewValidationError("availability", "unknown rating")
	}
	return &Work{
		ID:           uuid.New(),
		Name:         name,
		Quantity:     quantity,
		TechBase:     TechBaseAll,
		TechLevel:    TechLevelStandard,
		Availability: availability,
		BuyCost:      buyCost,
		Payload:      Payload{PartType: name, Quality: shared.RatingD, Units: 1},
	}, nil
}

// DecrementQuantity records one unit found. Quantity never drops below zero.
func (w *Work) DecrementQuantity() {
	if w.Quantity > 0 {
		w.Quantity--
	}
}

// ResetDaysToWait starts a new cooldown of period days
func (w *Work) ResetDaysToWait(period int) {
	if period < 0 {
		period = 0
	}
	w.DaysToWait = period
}

// DecrementDaysToWait counts the cooldown down by a day
func (w *Work) DecrementDaysToWait() {
	if w.DaysToWait > 0 {
		w.DaysToWait--
	}
}

// IsCoolingDown reports whether the item must wait before another attempt
func (w *Work) IsCoolingDown() bool {
	return w.DaysToWait > 0
}

// IsIntroducedBy reports whether the item exists in year (0 intro year means always)
func (w *Work) IsIntroducedBy(year int) bool {
	return w.IntroYear == 0 || year >= w.IntroYear
}

// IsExtinctIn reports whether production has lapsed in year and not restarted
func (w *Work) IsExtinctIn(year int) bool {
	if w.ExtinctYear == 0 || year < w.ExtinctYear {
		return false
	}
	return w.ReintroYear == 0 || year < w.ReintroYear
}

func (w *Work) String() string {
	return fmt.Sprintf("Work(%s x%d)", w.Name, w.Quantity)
}
