package persistence_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/starlane-logistics/internal/adapters/persistence"
	"github.com/andrescamacho/starlane-logistics/internal/domain/acquisition"
	"github.com/andrescamacho/starlane-logistics/internal/domain/campaign"
	"github.com/andrescamacho/starlane-logistics/internal/domain/finance"
	"github.com/andrescamacho/starlane-logistics/internal/domain/shared"
	"github.com/andrescamacho/starlane-logistics/internal/domain/warehouse"
	"github.com/andrescamacho/starlane-logistics/test/helpers"
)

func TestStockRepository_ReplaceAndLoad(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormStockRepository(db)
	ctx := context.Background()

	gyro, err := warehouse.NewPart("Gyro", shared.RatingC, 2, 12_000)
	require.NoError(t, err)
	ammo, err := warehouse.NewAmmoStorage(warehouse.AmmoType{Name: "LRM-10", Family: "LRM", RackSize: 10}, shared.RatingD, 24)
	require.NoError(t, err)
	ammo.DaysToArrival = 5

	// Act
	err = repo.Replace(ctx, []*warehouse.Part{gyro, ammo})
	require.NoError(t, err)
	loaded, err := repo.Load(ctx)

	// Assert
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, gyro.ID, loaded[0].ID)
	assert.Equal(t, "Gyro", loaded[0].Type)
	assert.Equal(t, shared.RatingC, loaded[0].Quality)
	assert.Equal(t, int64(12_000), loaded[0].UnitCost)
	assert.False(t, loaded[0].IsAmmo())

	require.True(t, loaded[1].IsAmmo())
	assert.Equal(t, "LRM", loaded[1].Ammo.Family)
	assert.Equal(t, 10, loaded[1].Ammo.RackSize)
	assert.Equal(t, 24, loaded[1].Quantity)
	assert.Equal(t, 5, loaded[1].DaysToArrival)
}

func TestStockRepository_ReplaceOverwritesPreviousStock(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormStockRepository(db)
	ctx := context.Background()

	first, err := warehouse.NewPart("Gyro", shared.RatingC, 2, 0)
	require.NoError(t, err)
	require.NoError(t, repo.Replace(ctx, []*warehouse.Part{first}))

	require.NoError(t, repo.Replace(ctx, nil))
	loaded, err := repo.Load(ctx)

	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestShoppingListRepository_ReplaceAndLoad(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormShoppingListRepository(db)
	ctx := context.Background()

	laser, err := acquisition.NewWork("Medium Laser", 2, 40_000, shared.RatingC)
	require.NoError(t, err)
	laser.TechBase = acquisition.TechBaseClan
	laser.TechLevel = acquisition.TechLevelAdvanced
	laser.IntroYear = 2820
	laser.DaysToWait = 3
	laser.Modifiers = []acquisition.Modifier{{Delta: -1, Label: "salvage"}}

	ammo, err := acquisition.NewWork("LRM-10 Ammo", 1, 30_000, shared.RatingD)
	require.NoError(t, err)
	ammo.Payload = acquisition.Payload{PartType: "LRM-10", Quality: shared.RatingD, Units: 12, AmmoFamily: "LRM", RackSize: 10}

	// Act
	require.NoError(t, repo.Replace(ctx, acquisition.NewShoppingList(laser, ammo)))
	loaded, err := repo.Load(ctx)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, loaded)
	items := loaded.Items()
	require.Len(t, items, 2)

	assert.Equal(t, laser.ID, items[0].ID)
	assert.Equal(t, acquisition.TechBaseClan, items[0].TechBase)
	assert.Equal(t, acquisition.TechLevelAdvanced, items[0].TechLevel)
	assert.Equal(t, 2820, items[0].IntroYear)
	assert.Equal(t, 3, items[0].DaysToWait)
	assert.Equal(t, laser.Modifiers, items[0].Modifiers)

	assert.True(t, items[1].Payload.IsAmmo())
	assert.Equal(t, ammo.Payload, items[1].Payload)
}

func TestShoppingListRepository_LoadEmptyReturnsNil(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormShoppingListRepository(db)

	loaded, err := repo.Load(context.Background())

	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestCampaignStateRepository_LoadBeforeSaveReturnsNil(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormCampaignStateRepository(db)

	loaded, err := repo.Load(context.Background())

	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestCampaignStateRepository_SaveOverwritesPreviousState(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormCampaignStateRepository(db)
	ctx := context.Background()

	// Act
	require.NoError(t, repo.Save(ctx, campaign.State{Date: shared.NewDate(3025, time.January, 2), Balance: 40_000}))
	require.NoError(t, repo.Save(ctx, campaign.State{Date: shared.NewDate(3025, time.January, 3), Balance: 0}))
	loaded, err := repo.Load(ctx)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.True(t, shared.NewDate(3025, time.January, 3).Equal(loaded.Date), "got %s", loaded.Date)
	assert.Equal(t, int64(0), loaded.Balance)

	var rows int64
	require.NoError(t, db.Model(&persistence.CampaignStateModel{}).Count(&rows).Error)
	assert.Equal(t, int64(1), rows)
}

func TestTransactionRepository_CreateAndList(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormTransactionRepository(db)
	ctx := context.Background()

	older, err := finance.NewTransaction(shared.NewDate(3025, time.January, 1), finance.TransactionTypeAcquisition,
		-500, 1_000, 500, "Acquisition of Gyro", "w1")
	require.NoError(t, err)
	newer, err := finance.NewTransaction(shared.NewDate(3025, time.January, 5), finance.TransactionTypePartSale,
		200, 500, 700, "Sale of 1 Gyro[C]", "p1")
	require.NoError(t, err)

	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))

	// Act
	all, err := repo.List(ctx, finance.DefaultQueryOptions())
	require.NoError(t, err)

	saleType := finance.TransactionTypePartSale
	sales, err := repo.List(ctx, finance.QueryOptions{TransactionType: &saleType})
	require.NoError(t, err)

	// Assert: newest first
	require.Len(t, all, 2)
	assert.Equal(t, newer.ID().String(), all[0].ID().String())
	assert.Equal(t, older.ID().String(), all[1].ID().String())
	assert.Equal(t, int64(-500), all[1].Amount())
	assert.Equal(t, "w1", all[1].RelatedEntityID())

	require.Len(t, sales, 1)
	assert.Equal(t, finance.TransactionTypePartSale, sales[0].TransactionType())
}
