package transit

import (
	"fmt"
	"math"

	"github.com/andrescamacho/starlane-logistics/internal/domain/shared"
	"github.com/andrescamacho/starlane-logistics/internal/domain/system"
	"github.com/andrescamacho/starlane-logistics/pkg/utils"
)

// Unit is the granularity in which delivery times are rolled
type Unit string

const (
	UnitDay   Unit = "day"
	UnitWeek  Unit = "week"
	UnitMonth Unit = "month"
)

// ParseUnit converts a configuration string to a Unit
func ParseUnit(value string) (Unit, error) {
	switch Unit(value) {
	case UnitDay, UnitWeek, UnitMonth:
		return Unit(value), nil
	default:
		return UnitMonth, fmt.Errorf("unknown transit unit %q", value)
	}
}

const (
	// lightYearsPerJump is the distance covered by one jump
	lightYearsPerJump = 30.0

	// rechargeDaysPerJump is the flat wait between consecutive jumps
	rechargeDaysPerJump = 7
)

// Options configure the estimator
type Options struct {
	Unit Unit
}

// Estimator converts routes and availability grades into delivery delays
type Estimator struct {
	dice    shared.Dice
	clock   shared.Clock
	options Options
}

// NewEstimator creates an estimator drawing from dice and reading dates from clock
func NewEstimator(dice shared.Dice, clock shared.Clock, options Options) *Estimator {
	if options.Unit == "" {
		options.Unit = UnitMonth
	}
	return &Estimator{dice: dice, clock: clock, options: options}
}

// Unit returns the configured transit unit
func (e *Estimator) Unit() Unit {
	return e.options.Unit
}

// DaysFor estimates the days for a shipment from origin to the force at current.
//
// jumps = ceil(distance / 30); every jump but the first needs a 7 day recharge; both
// ends add the travel time to their jump point unless origin and current are the same
// system; a random padding term depends on the transit unit.
func (e *Estimator) DaysFor(current, origin *system.PlanetarySystem) int {
	if origin == nil {
		origin = current
	}
	if current == nil {
		current = origin
	}
	if current == nil {
		return e.padding(0)
	}

	distance := current.DistanceTo(origin)
	jumps := int(math.Ceil(distance / lightYearsPerJump))
	recharge := utils.Max(jumps-1, 0) * rechargeDaysPerJump

	currentTransit := 0
	originTransit := 0
	if current.ID() != origin.ID() {
		currentTransit = int(math.Ceil(current.TimeToJumpPoint(1.0)))
		originTransit = int(math.Ceil(origin.TimeToJumpPoint(1.0)))
	}

	return recharge + currentTransit + originTransit + e.padding(jumps)
}

// MinimumDaysFor is the deterministic lower bound of DaysFor (padding at its minimum)
func (e *Estimator) MinimumDaysFor(current, origin *system.PlanetarySystem) int {
	if current == nil || origin == nil {
		return 0
	}
	distance := current.DistanceTo(origin)
	jumps := int(math.Ceil(distance / lightYearsPerJump))
	total := utils.Max(jumps-1, 0) * rechargeDaysPerJump
	if current.ID() != origin.ID() {
		total += int(math.Ceil(current.TimeToJumpPoint(1.0))) + int(math.Ceil(origin.TimeToJumpPoint(1.0)))
	}
	base, dice := e.paddingShape(jumps)
	return total + base + dice
}

// DaysForAvailability estimates delivery for an item of the given availability code.
//
// The roll yields a count of transit units which is laid onto the campaign calendar;
// the returned value is the calendar day delta, not the raw count.
func (e *Estimator) DaysForAvailability(code int) int {
	total := (7 + shared.D6(e.dice, 1) + code) / 4
	if total < 1 {
		total = 1
	}

	start := e.clock.Today()
	arrival := start
	switch e.options.Unit {
	case UnitDay:
		arrival = start.AddDate(0, 0, total)
	case UnitWeek:
		arrival = start.AddDate(0, 0, 7*total)
	default:
		arrival = start.AddDate(0, total, 0)
	}
	return shared.DaysBetween(start, arrival)
}

func (e *Estimator) padding(jumps int) int {
	base, dice := e.paddingShape(jumps)
	return base + shared.D6(e.dice, dice)
}

// paddingShape returns the flat part and the number of d6 of the random padding
func (e *Estimator) paddingShape(jumps int) (base, dice int) {
	legs := 1 + jumps
	switch e.options.Unit {
	case UnitDay:
		return 0, legs
	case UnitWeek:
		return 7, 4 * legs
	default:
		return 30, 14 * legs
	}
}
