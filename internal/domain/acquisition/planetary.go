package acquisition

import (
	"fmt"
	"time"

	"github.com/andrescamacho/starlane-logistics/internal/domain/shared"
	"github.com/andrescamacho/starlane-logistics/internal/domain/system"
)

// PlanetaryModifiers adjusts target for shopping at s. An unpopulated system, or a
// Clan item outside Clan space when crossover is forbidden, makes the roll impossible.
func (r *Resolver) PlanetaryModifiers(target TargetRoll, work *Work, s *system.PlanetarySystem, date time.Time) TargetRoll {
	if target.IsSentinel() {
		return target
	}
	if s == nil || !s.IsPopulated(date) {
		return Impossible("planet has no population")
	}

	if work.TechBase == TechBaseClan && r.options.NoClanCrossover && !r.isClanSystem(s, date) {
		return Impossible("no Clan parts outside Clan space")
	}

	ratings := s.SocioIndustrial()
	target = withRatingBonus(target, r.options.TechBonus, ratings.Tech, "planet tech")
	target = withRatingBonus(target, r.options.IndustryBonus, ratings.Industry, "planet industry")
	target = withRatingBonus(target, r.options.OutputBonus, ratings.Output, "planet output")
	return target
}

func withRatingBonus(target TargetRoll, table map[shared.Rating]int, rating shared.Rating, label string) TargetRoll {
	bonus, ok := table[rating]
	if !ok || bonus == 0 {
		return target
	}
	return target.WithModifier(bonus, fmt.Sprintf("%s (%s)", label, rating))
}

func (r *Resolver) isClanSystem(s *system.PlanetarySystem, date time.Time) bool {
	for _, faction := range s.Factions(date) {
		if r.options.IsClanFaction(faction) {
			return true
		}
	}
	return false
}

// ContactTarget is the target for finding a seller of work at s
func (r *Resolver) ContactTarget(q Query, work *Work, person Person, s *system.PlanetarySystem) TargetRoll {
	target := r.TargetRoll(q, work, person, false)
	return r.PlanetaryModifiers(target, work, s, q.Date)
}

// FindContact rolls whether person finds a seller for work at s. The roll does not
// count as an acquisition attempt.
func (r *Resolver) FindContact(q Query, work *Work, person Person, s *system.PlanetarySystem) (bool, TargetRoll) {
	target := r.ContactTarget(q, work, person, s)
	switch target.Kind() {
	case KindAutomaticSuccess:
		return true, target
	case KindImpossible, KindAutomaticFail:
		return false, target
	}
	return shared.D6(r.dice, 2) >= target.Value(), target
}
