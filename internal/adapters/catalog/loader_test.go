package catalog_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/starlane-logistics/internal/adapters/catalog"
	"github.com/andrescamacho/starlane-logistics/internal/domain/shared"
)

const minimalScenario = `
date: "3025-03-01"
faction: FS
balance: 1000
location: home
standings: {CC: -4}
systems:
  - id: home
    x: 0
    y: 0
    recharge_hours: 150
    population: [{date: "2400-01-01", population: 1000}]
    ownership: [{date: "2400-01-01", factions: [FS]}]
    tech: B
  - id: away
    x: 12
    y: 5
contracts:
  - id: c1
    employer: FS
    start: "3025-01-01"
personnel:
  - id: ana
    name: Ana
    skills: [{name: Administration, level: 2, target: 8}]
ammo_types:
  - {name: SRM-4 Ammo, family: SRM, rack_size: 4}
shopping:
  - name: SRM-4 Reload
    quantity: 2
    cost: 5000
    availability: C
    ammo_type: SRM-4 Ammo
    units: 25
stock:
  - {type: SRM-4 Ammo, quantity: 50, ammo_type: SRM-4 Ammo}
`

func TestParseScenario_BuildsDomainObjects(t *testing.T) {
	// Act
	scenario, err := catalog.ParseScenario([]byte(minimalScenario))

	// Assert
	require.NoError(t, err)
	assert.Equal(t, shared.NewDate(3025, time.March, 1), scenario.Date)
	assert.Equal(t, "FS", scenario.Faction)
	assert.Equal(t, int64(1000), scenario.Balance)
	assert.Equal(t, "home", scenario.Location.ID())
	assert.Equal(t, 2, scenario.Catalog.Len())
	assert.Equal(t, -4.0, scenario.Standings["CC"])

	home := scenario.Location.SocioIndustrial()
	assert.Equal(t, shared.RatingB, home.Tech)
	assert.Equal(t, shared.RatingC, home.Industry)
	assert.Equal(t, shared.RatingC, home.Output)

	away, err := scenario.System("away")
	require.NoError(t, err)
	assert.False(t, away.IsPopulated(scenario.Date))

	require.Len(t, scenario.Contracts, 1)
	assert.Equal(t, shared.RatingF, scenario.Contracts[0].PartsAvailability)
	assert.Len(t, scenario.ActiveContracts(), 1)

	require.Len(t, scenario.Roster.People(), 1)

	items := scenario.Shopping.Items()
	require.Len(t, items, 1)
	assert.True(t, items[0].Payload.IsAmmo())
	assert.Equal(t, "SRM-4 Ammo", items[0].Payload.PartType)
	assert.Equal(t, 4, items[0].Payload.RackSize)

	require.Len(t, scenario.Stock, 1)
	assert.True(t, scenario.Stock[0].IsAmmo())
	assert.Equal(t, shared.RatingD, scenario.Stock[0].Quality)
}

func TestParseScenario_RejectsMissingSystems(t *testing.T) {
	doc := `
date: "3025-03-01"
faction: FS
location: home
`
	_, err := catalog.ParseScenario([]byte(doc))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Systems")
}

func TestParseScenario_RejectsUnknownLocation(t *testing.T) {
	doc := `
date: "3025-03-01"
faction: FS
location: nowhere
systems:
  - id: home
`
	_, err := catalog.ParseScenario([]byte(doc))

	var notFound *shared.SystemNotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestParseScenario_RejectsUnknownAmmoType(t *testing.T) {
	doc := `
date: "3025-03-01"
faction: FS
location: home
systems:
  - id: home
stock:
  - {type: Mystery Ammo, quantity: 3, ammo_type: Mystery Ammo}
`
	_, err := catalog.ParseScenario([]byte(doc))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown ammo type")
}

func TestYAMLScenarioLoader_LoadsShippedScenario(t *testing.T) {
	// Arrange
	loader := catalog.NewYAMLScenarioLoader("../../../configs/scenarios/federated-suns.yaml")

	// Act
	scenario, err := loader.LoadScenario(context.Background())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "new-avalon", scenario.Location.ID())
	assert.True(t, scenario.Location.HasCommandCircuit(scenario.Date))
	assert.Equal(t, 3, scenario.Shopping.Len())
	assert.Len(t, scenario.Stock, 4)

	bristol, err := scenario.System("bristol")
	require.NoError(t, err)
	assert.False(t, bristol.IsPopulated(scenario.Date))

	systems, err := loader.LoadCatalog(context.Background())
	require.NoError(t, err)
	assert.Equal(t, scenario.Catalog.Len(), systems.Len())
}

func TestYAMLScenarioLoader_MissingFile(t *testing.T) {
	_, err := catalog.NewYAMLScenarioLoader("does-not-exist.yaml").LoadScenario(context.Background())

	assert.Error(t, err)
}
