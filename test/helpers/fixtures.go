package helpers

import (
	"testing"
	"time"

	"github.com/andrescamacho/starlane-logistics/internal/domain/access"
	"github.com/andrescamacho/starlane-logistics/internal/domain/acquisition"
	"github.com/andrescamacho/starlane-logistics/internal/domain/campaign"
	"github.com/andrescamacho/starlane-logistics/internal/domain/personnel"
	"github.com/andrescamacho/starlane-logistics/internal/domain/shared"
	"github.com/andrescamacho/starlane-logistics/internal/domain/system"
	"github.com/andrescamacho/starlane-logistics/internal/domain/warehouse"
)

// CampaignStart is the date every fixture is valid from
var CampaignStart = shared.NewDate(3025, time.January, 1)

// settled is early enough that population and ownership events are in effect
var settled = shared.NewDate(2400, time.January, 1)

// SystemOption customises a fixture system
type SystemOption func(*system.SystemSpec)

// Empty leaves the system without population
func Empty() SystemOption {
	return func(s *system.SystemSpec) { s.Population = nil }
}

// OwnedBy sets the controlling factions
func OwnedBy(factions ...string) SystemOption {
	return func(s *system.SystemSpec) {
		s.Ownership = []system.OwnershipEvent{{Date: settled, Factions: factions}}
	}
}

// RechargeHours sets the jump drive recharge time
func RechargeHours(hours float64) SystemOption {
	return func(s *system.SystemSpec) { s.RechargeHours = hours }
}

// JumpPointDays sets the travel time to the jump point
func JumpPointDays(days float64) SystemOption {
	return func(s *system.SystemSpec) { s.JumpPointDays = days }
}

// Ratings sets the socio-industrial ratings
func Ratings(tech, industry, output shared.Rating) SystemOption {
	return func(s *system.SystemSpec) {
		s.SocioIndustrial = system.SocioIndustrial{Tech: tech, Industry: industry, Output: output}
	}
}

// CommandCircuit puts the system on the command circuit
func CommandCircuit() SystemOption {
	return func(s *system.SystemSpec) {
		since := settled
		s.CommandCircuit = &since
	}
}

// BuildSystem builds a populated system at (x, y) with a 24 hour recharge
func BuildSystem(id string, x, y float64, opts ...SystemOption) (*system.PlanetarySystem, error) {
	spec := system.SystemSpec{
		ID:            id,
		X:             x,
		Y:             y,
		RechargeHours: 24,
		Population:    []system.PopulationEvent{{Date: settled, Population: 1_000_000}},
		SocioIndustrial: system.SocioIndustrial{
			Tech: shared.RatingC, Industry: shared.RatingC, Output: shared.RatingC,
		},
	}
	for _, opt := range opts {
		opt(&spec)
	}
	return system.NewPlanetarySystem(spec)
}

// NewSystem is BuildSystem failing the test on error
func NewSystem(t testing.TB, id string, x, y float64, opts ...SystemOption) *system.PlanetarySystem {
	t.Helper()
	s, err := BuildSystem(id, x, y, opts...)
	if err != nil {
		t.Fatalf("failed to build system %s: %v", id, err)
	}
	return s
}

// NewCatalog builds a catalog holding systems in order
func NewCatalog(t testing.TB, systems ...*system.PlanetarySystem) *system.Catalog {
	t.Helper()
	c, err := system.NewCatalogFrom(systems)
	if err != nil {
		t.Fatalf("failed to build catalog: %v", err)
	}
	return c
}

// NewScenario builds a scenario for the FS faction located at the first system,
// with an empty roster and shopping list
func NewScenario(t testing.TB, balance int64, systems ...*system.PlanetarySystem) *campaign.Scenario {
	t.Helper()
	if len(systems) == 0 {
		t.Fatalf("a scenario needs at least one system")
	}
	return &campaign.Scenario{
		Date:      CampaignStart,
		Faction:   "FS",
		Balance:   balance,
		Catalog:   NewCatalog(t, systems...),
		Location:  systems[0],
		Standings: access.Standings{},
		Roster:    personnel.NewRoster(),
		Shopping:  acquisition.NewShoppingList(),
		AmmoTypes: map[string]warehouse.AmmoType{},
	}
}
