package acquisition

import (
	"fmt"
	"time"

	"github.com/andrescamacho/starlane-logistics/internal/domain/access"
	"github.com/andrescamacho/starlane-logistics/internal/domain/shared"
)

// Query is the campaign context an acquisition is evaluated against
type Query struct {
	Date      time.Time
	Contracts []access.Contract
}

// Outcome is the result of resolving one acquisition attempt
type Outcome struct {
	Success bool

	// Roll is the 2d6 total that decided the attempt (0 when no dice were rolled)
	Roll      int
	FirstRoll int
	Rerolled  bool
	XP        int
	Target    TargetRoll
}

// Resolver turns personnel skill, item rarity and campaign rules into acquisition outcomes
type Resolver struct {
	options Options
	dice    shared.Dice
}

// NewResolver creates a resolver drawing from dice
func NewResolver(options Options, dice shared.Dice) *Resolver {
	return &Resolver{options: options, dice: dice}
}

// Options returns the rules in use
func (r *Resolver) Options() Options {
	return r.options
}

// TargetRoll computes the difficulty for person to obtain work.
// Eligibility checks run first and short-circuit into a sentinel.
func (r *Resolver) TargetRoll(q Query, work *Work, person Person, checkDaysToWait bool) TargetRoll {
	if r.options.IsAutomatic() {
		return AutomaticSuccess("Automatic Success")
	}

	if person == nil {
		return Impossible("no one on your force is capable of acquiring parts")
	}
	skill, ok := person.Skill(r.options.AcquisitionSkill)
	if !ok {
		return Impossible(fmt.Sprintf("%s has no %s skill", person.FullName(), r.options.AcquisitionSkill))
	}

	if checkDaysToWait && work.IsCoolingDown() {
		return AutomaticFail("must wait until the new cycle to check for this part again")
	}

	if eligibility := r.eligibility(q.Date, work); eligibility.IsSentinel() {
		return eligibility
	}

	target := NewTargetRoll(skill.TargetNumber, skill.Name)
	return r.applyModifiers(q, work, target)
}

// eligibility returns a sentinel if campaign rules forbid the item, or a zero value roll
func (r *Resolver) eligibility(date time.Time, work *Work) TargetRoll {
	switch {
	case work.TechBase == TechBaseClan && !r.options.AllowClanPurchases:
		return Impossible("you cannot acquire Clan parts")
	case work.TechBase == TechBaseIS && !r.options.AllowISPurchases:
		return Impossible("you cannot acquire Inner Sphere parts")
	case work.TechLevel > r.options.TechLevel:
		return Impossible("you cannot acquire parts of this tech level")
	}

	year := date.Year()
	if r.options.LimitByYear && !work.IsIntroducedBy(year) {
		return Impossible("it has not been invented yet")
	}
	if r.options.DisallowExtinct && (work.Availability == shared.RatingX || work.IsExtinctIn(year)) {
		return Impossible("it is extinct")
	}
	return TargetRoll{}
}

func (r *Resolver) applyModifiers(q Query, work *Work, target TargetRoll) TargetRoll {
	target = target.WithModifier(work.Availability.AvailabilityModifier(), "availability ("+work.Availability.String()+")")

	if work.TechBase == TechBaseClan && !r.options.FactionIsClan && r.options.ClanPenalty != 0 {
		target = target.WithModifier(r.options.ClanPenalty, "clan-tech")
	}

	target = target.WithModifiers(work.Modifiers...)

	if r.options.RestrictPartsByContract {
		if minimum, ok := access.MinPartsAvailability(access.ActiveOn(q.Contracts, q.Date)); ok {
			if penalty := int(work.Availability) - int(minimum); penalty > 0 {
				target = target.WithModifier(penalty, "contract availability")
			}
		}
	}

	if r.options.CrisisPenalty != 0 && r.options.InCrisis(q.Date) {
		target = target.WithModifier(r.options.CrisisPenalty, "economic crisis")
	}
	return target
}

// Resolve rolls target for person. Sentinels are decided without dice. person may be
// nil only for automatic acquisitions.
func (r *Resolver) Resolve(work *Work, person Person, target TargetRoll) Outcome {
	outcome := Outcome{Target: target}

	switch target.Kind() {
	case KindAutomaticSuccess:
		outcome.Success = true
		if person != nil {
			person.IncrementAcquisitions()
		}
		return outcome
	case KindImpossible, KindAutomaticFail:
		return outcome
	}

	roll := shared.D6(r.dice, 2)
	outcome.FirstRoll = roll
	success := roll >= target.Value()

	if !success && r.options.UseSupportEdge && person != nil &&
		person.HasAcquisitionEdge() && person.CurrentEdge() > 0 && person.SpendEdge() {
		roll = shared.D6(r.dice, 2)
		outcome.Rerolled = true
		success = roll >= target.Value()
	}

	outcome.Roll = roll
	outcome.Success = success

	if person == nil {
		return outcome
	}

	xp := 0
	switch roll {
	case 12:
		xp += r.options.SuccessXP
	case 2:
		xp += r.options.MistakeXP
	}
	if success {
		person.RecordSuccessfulTask()
		if r.options.NTasksXP > 0 && person.SuccessfulTasks() >= r.options.NTasksXP {
			xp += r.options.TaskXP
			person.ResetSuccessfulTasks()
		}
	}
	if xp > 0 {
		person.AwardXP(xp)
	}
	outcome.XP = xp

	person.IncrementAcquisitions()
	return outcome
}

// Attempt computes the target and resolves it in one step
func (r *Resolver) Attempt(q Query, work *Work, person Person, checkDaysToWait bool) Outcome {
	return r.Resolve(work, person, r.TargetRoll(q, work, person, checkDaysToWait))
}
