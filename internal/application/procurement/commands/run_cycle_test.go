package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/starlane-logistics/internal/adapters/persistence"
	"github.com/andrescamacho/starlane-logistics/internal/application/campaign"
	"github.com/andrescamacho/starlane-logistics/internal/application/procurement"
	"github.com/andrescamacho/starlane-logistics/internal/application/procurement/commands"
	"github.com/andrescamacho/starlane-logistics/internal/domain/acquisition"
	domainCampaign "github.com/andrescamacho/starlane-logistics/internal/domain/campaign"
	"github.com/andrescamacho/starlane-logistics/internal/domain/shared"
	"github.com/andrescamacho/starlane-logistics/internal/domain/transit"
	"github.com/andrescamacho/starlane-logistics/internal/domain/warehouse"
	"github.com/andrescamacho/starlane-logistics/test/helpers"
)

// freshScenario is what the scenario file yields on every start: one Gyro to buy
func freshScenario(t *testing.T) *domainCampaign.Scenario {
	t.Helper()
	scenario := helpers.NewScenario(t, 100_000, helpers.NewSystem(t, "home", 0, 0))
	gyro, err := acquisition.NewWork("Gyro", 1, 30_000, shared.RatingC)
	require.NoError(t, err)
	scenario.Shopping.Add(gyro)
	return scenario
}

// startRun resumes the scenario from store and runs one day, the way the CLI does
func startRun(t *testing.T, store campaign.Store) (*commands.RunProcurementCycleResponse, *campaign.Engine, bool) {
	t.Helper()
	ctx := context.Background()
	scenario := freshScenario(t)
	resumed, err := store.Resume(ctx, scenario)
	require.NoError(t, err)

	settings := campaign.Settings{
		Transit:     transit.Options{Unit: transit.UnitDay},
		Procurement: procurement.Options{Mode: procurement.ModeAutomatic, WaitingPeriod: 7},
	}
	engine := campaign.NewEngine(scenario, settings, shared.NewScriptedDice())
	response, err := commands.NewRunProcurementCycleHandler(engine, store).
		Handle(ctx, &commands.RunProcurementCycleCommand{Days: 1})
	require.NoError(t, err)
	return response.(*commands.RunProcurementCycleResponse), engine, resumed
}

func newStore(t *testing.T) campaign.Store {
	t.Helper()
	db := helpers.NewTestDB(t)
	return campaign.Store{
		State:        persistence.NewGormCampaignStateRepository(db),
		ShoppingList: persistence.NewGormShoppingListRepository(db),
		Stock:        persistence.NewGormStockRepository(db),
		Transactions: persistence.NewGormTransactionRepository(db),
	}
}

func TestRunProcurementCycle_SecondRunResumesSavedCampaign(t *testing.T) {
	// Arrange
	store := newStore(t)
	first, _, resumed := startRun(t, store)
	require.False(t, resumed)
	require.Len(t, first.Reports, 1)
	require.Len(t, first.Reports[0].Deliveries, 1)
	assert.Equal(t, int64(70_000), first.Balance)

	// Act
	second, engine, resumed := startRun(t, store)

	// Assert: the bought Gyro is not bought again and the calendar keeps going
	assert.True(t, resumed)
	require.Len(t, second.Reports, 1)
	assert.Empty(t, second.Reports[0].Deliveries)
	assert.Empty(t, second.Remaining)
	assert.Equal(t, int64(70_000), second.Balance)
	assert.True(t, shared.NewDate(3025, time.January, 3).Equal(engine.Calendar.Today()), "got %s", engine.Calendar.Today())
	held := engine.Quartermaster.Warehouse().Len() + len(engine.Quartermaster.InTransit())
	assert.Equal(t, 1, held)
}

func TestRunProcurementCycle_EmptiedWarehouseStaysEmpty(t *testing.T) {
	// Arrange: a scenario that starts with stock, saved after the stock was used up
	ctx := context.Background()
	store := newStore(t)
	require.NoError(t, store.State.Save(ctx, domainCampaign.State{Date: helpers.CampaignStart, Balance: 5_000}))
	require.NoError(t, store.ShoppingList.Replace(ctx, acquisition.NewShoppingList()))
	require.NoError(t, store.Stock.Replace(ctx, nil))

	actuators, err := warehouse.NewPart("Actuator", shared.RatingC, 4, 1_200)
	require.NoError(t, err)
	scenario := freshScenario(t)
	scenario.Stock = []*warehouse.Part{actuators}

	// Act
	resumed, err := store.Resume(ctx, scenario)

	// Assert
	require.NoError(t, err)
	assert.True(t, resumed)
	assert.Empty(t, scenario.Stock)
	assert.True(t, scenario.Shopping.IsEmpty())
	assert.Equal(t, int64(5_000), scenario.Balance)
}

func TestRunProcurementCycle_NothingSavedKeepsScenario(t *testing.T) {
	store := newStore(t)
	scenario := freshScenario(t)

	resumed, err := store.Resume(context.Background(), scenario)

	require.NoError(t, err)
	assert.False(t, resumed)
	assert.Equal(t, 1, scenario.Shopping.Len())
	assert.Equal(t, int64(100_000), scenario.Balance)
	assert.True(t, helpers.CampaignStart.Equal(scenario.Date))
}
