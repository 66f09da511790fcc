package commands_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/starlane-logistics/internal/adapters/persistence"
	"github.com/andrescamacho/starlane-logistics/internal/application/campaign"
	"github.com/andrescamacho/starlane-logistics/internal/application/stock/commands"
	"github.com/andrescamacho/starlane-logistics/internal/application/stock/queries"
	"github.com/andrescamacho/starlane-logistics/internal/domain/shared"
	"github.com/andrescamacho/starlane-logistics/internal/domain/warehouse"
	"github.com/andrescamacho/starlane-logistics/test/helpers"
)

var (
	lrm5  = warehouse.AmmoType{Name: "LRM-5", Family: "LRM", RackSize: 5}
	lrm10 = warehouse.AmmoType{Name: "LRM-10", Family: "LRM", RackSize: 10}
)

func newEngine(t *testing.T, byType bool) *campaign.Engine {
	t.Helper()
	scenario := helpers.NewScenario(t, 50_000, helpers.NewSystem(t, "home", 0, 0))
	scenario.AmmoTypes[lrm5.Name] = lrm5
	scenario.AmmoTypes[lrm10.Name] = lrm10

	settings := campaign.Settings{Warehouse: warehouse.Options{UseAmmoByType: byType}}
	return campaign.NewEngine(scenario, settings, shared.NewScriptedDice())
}

func TestAddStockHandler_MergesIntoExistingEntry(t *testing.T) {
	// Arrange
	engine := newEngine(t, false)
	handler := commands.NewAddStockHandler(engine, campaign.Store{})
	ctx := context.Background()

	// Act
	_, err := handler.Handle(ctx, &commands.AddStockCommand{PartType: "Gyro", Quality: shared.RatingC, Quantity: 2, UnitCost: 900})
	require.NoError(t, err)
	response, err := handler.Handle(ctx, &commands.AddStockCommand{PartType: "Gyro", Quality: shared.RatingC, Quantity: 1, UnitCost: 900})

	// Assert
	require.NoError(t, err)
	added := response.(*commands.AddStockResponse)
	assert.Equal(t, "Gyro[C]", added.Key.String())
	assert.Equal(t, 3, added.Quantity)
	assert.Equal(t, 1, engine.Quartermaster.Warehouse().Len())
}

func TestAddStockHandler_RecognisesAmmunitionAndPersists(t *testing.T) {
	// Arrange
	engine := newEngine(t, false)
	repo := persistence.NewGormStockRepository(helpers.NewTestDB(t))
	handler := commands.NewAddStockHandler(engine, campaign.Store{Stock: repo})

	// Act
	_, err := handler.Handle(context.Background(), &commands.AddStockCommand{PartType: "LRM-10", Quality: shared.RatingD, Quantity: 12})
	require.NoError(t, err)

	// Assert
	stored, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.True(t, stored[0].IsAmmo())
	assert.Equal(t, 12, stored[0].Quantity)
}

func TestAddStockHandler_RejectsInvalidEntry(t *testing.T) {
	engine := newEngine(t, false)
	handler := commands.NewAddStockHandler(engine, campaign.Store{})

	_, err := handler.Handle(context.Background(), &commands.AddStockCommand{PartType: "", Quality: shared.RatingC, Quantity: 1})

	assert.Error(t, err)
	assert.Zero(t, engine.Quartermaster.Warehouse().Len())
}

func TestWithdrawAmmoHandler_ConvertsCompatibleStock(t *testing.T) {
	// Arrange
	engine := newEngine(t, true)
	_, err := engine.Quartermaster.AddAmmo(lrm5, shared.RatingD, 20)
	require.NoError(t, err)
	handler := commands.NewWithdrawAmmoHandler(engine, campaign.Store{})

	// Act
	response, err := handler.Handle(context.Background(), &commands.WithdrawAmmoCommand{AmmoType: "LRM-10", Shots: 3})

	// Assert
	require.NoError(t, err)
	withdrawal := response.(*warehouse.Withdrawal)
	assert.Equal(t, 3, withdrawal.Delivered)
	require.Len(t, withdrawal.Conversions, 1)
	assert.Equal(t, 6, withdrawal.Conversions[0].Consumed)
}

func TestWithdrawAmmoHandler_RejectsBadRequests(t *testing.T) {
	engine := newEngine(t, true)
	handler := commands.NewWithdrawAmmoHandler(engine, campaign.Store{})

	tests := []struct {
		name string
		cmd  *commands.WithdrawAmmoCommand
	}{
		{"unknown type", &commands.WithdrawAmmoCommand{AmmoType: "AC/20", Shots: 1}},
		{"no shots", &commands.WithdrawAmmoCommand{AmmoType: "LRM-10", Shots: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := handler.Handle(context.Background(), tt.cmd)
			assert.Error(t, err)
		})
	}
}

func TestListStockHandler_SplitsOnHandFromInTransit(t *testing.T) {
	// Arrange
	engine := newEngine(t, false)
	gyro, err := warehouse.NewPart("Gyro", shared.RatingC, 1, 0)
	require.NoError(t, err)
	engine.Quartermaster.AddPart(gyro)
	shipped, err := warehouse.NewPart("Actuator", shared.RatingD, 2, 0)
	require.NoError(t, err)
	engine.Quartermaster.Deliver(shipped, 4)

	// Act
	response, err := queries.NewListStockHandler(engine).Handle(context.Background(), &queries.ListStockQuery{})

	// Assert
	require.NoError(t, err)
	listing := response.(*queries.ListStockResponse)
	require.Len(t, listing.OnHand, 1)
	assert.Equal(t, "Gyro", listing.OnHand[0].Type)
	require.Len(t, listing.InTransit, 1)
	assert.Equal(t, 4, listing.InTransit[0].DaysToArrival)
	assert.Equal(t, int64(50_000), listing.Balance)
}

func TestHandlers_RejectWrongRequestType(t *testing.T) {
	engine := newEngine(t, false)

	_, err := commands.NewAddStockHandler(engine, campaign.Store{}).Handle(context.Background(), &commands.WithdrawAmmoCommand{})

	assert.Error(t, err)
}
