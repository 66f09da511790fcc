package access

import (
	"time"

	"github.com/andrescamacho/starlane-logistics/internal/domain/system"
)

// Settings are the campaign options that drive access decisions
type Settings struct {
	// TravellingFaction is the faction code the force travels under
	TravellingFaction string

	// GMOverride bypasses every access and command circuit check
	GMOverride bool

	// TrackFactionStanding enables the outlaw rule; when false every system is open
	TrackFactionStanding bool

	// OutlawThreshold is the standing at or below which a faction bars entry
	OutlawThreshold float64

	// UseCommandCircuit enables command circuit travel for eligible contracts
	UseCommandCircuit bool

	// CommandCircuitThreshold is the employer standing required for circuit access
	CommandCircuitThreshold float64
}

// Standings maps faction code to the force's standing with that faction.
// Factions not present have neutral standing 0.
type Standings map[string]float64

// Of returns the standing with faction
func (s Standings) Of(faction string) float64 {
	return s[faction]
}

// Policy is a pure predicate over faction standing and contracts
type Policy struct {
	settings  Settings
	standings Standings
}

// NewPolicy creates an access policy. The standings map is copied.
func NewPolicy(settings Settings, standings Standings) *Policy {
	copied := make(Standings, len(standings))
	for faction, value := range standings {
		copied[faction] = value
	}
	return &Policy{settings: settings, standings: copied}
}

// Settings returns the options the policy was built with
func (p *Policy) Settings() Settings {
	return p.settings
}

// IsOutlawed reports whether faction currently bars the force from its space
func (p *Policy) IsOutlawed(faction string) bool {
	if faction == "" || faction == p.settings.TravellingFaction {
		return false
	}
	return p.standings.Of(faction) <= p.settings.OutlawThreshold
}

// CanEnter reports whether the force may jump from one system into another on date.
// An active contract with an outlawing faction as employer grants safe passage.
func (p *Policy) CanEnter(from, to *system.PlanetarySystem, date time.Time, contracts []Contract) bool {
	if p.settings.GMOverride || !p.settings.TrackFactionStanding {
		return true
	}
	if to == nil {
		return false
	}

	active := ActiveOn(contracts, date)
	for _, owner := range to.Factions(date) {
		if !p.IsOutlawed(owner) {
			continue
		}
		if !hasSafePassage(owner, active) {
			return false
		}
	}
	return true
}

// UseCommandCircuit reports whether jumps may use command circuit recharge times.
// It never affects access, only cost.
func (p *Policy) UseCommandCircuit(date time.Time, contracts []Contract) bool {
	if p.settings.GMOverride {
		return true
	}
	if !p.settings.UseCommandCircuit {
		return false
	}
	for _, c := range ActiveOn(contracts, date) {
		if p.standings.Of(c.Employer) >= p.settings.CommandCircuitThreshold {
			return true
		}
	}
	return false
}

func hasSafePassage(faction string, active []Contract) bool {
	for _, c := range active {
		if c.Employer == faction {
			return true
		}
	}
	return false
}
