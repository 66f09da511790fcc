package warehouse_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/starlane-logistics/internal/domain/finance"
	"github.com/andrescamacho/starlane-logistics/internal/domain/shared"
	"github.com/andrescamacho/starlane-logistics/internal/domain/warehouse"
	"github.com/andrescamacho/starlane-logistics/test/helpers"
)

var (
	lrm5  = warehouse.AmmoType{Name: "LRM-5", Family: "LRM", RackSize: 5}
	lrm10 = warehouse.AmmoType{Name: "LRM-10", Family: "LRM", RackSize: 10}
	lrm15 = warehouse.AmmoType{Name: "LRM-15", Family: "LRM", RackSize: 15}
	lrm20 = warehouse.AmmoType{Name: "LRM-20", Family: "LRM", RackSize: 20}
	srm4  = warehouse.AmmoType{Name: "SRM-4", Family: "SRM", RackSize: 4}
)

func byType(enabled bool) warehouse.Options {
	return warehouse.Options{UseAmmoByType: enabled}
}

func stockAmmo(t *testing.T, q *warehouse.Quartermaster, ammoType warehouse.AmmoType, shots int) {
	t.Helper()
	_, err := q.AddAmmo(ammoType, shared.RatingD, shots)
	require.NoError(t, err)
}

func shotsOf(q *warehouse.Quartermaster, ammoType warehouse.AmmoType) int {
	return q.Warehouse().Quantity(warehouse.Key{Type: ammoType.Name, Quality: shared.RatingD})
}

func TestQuartermaster_AddPartMergesIdenticalStock(t *testing.T) {
	// Arrange
	q := warehouse.NewQuartermaster(nil, nil, byType(false))
	first, err := warehouse.NewPart("Actuator", shared.RatingC, 2, 500)
	require.NoError(t, err)
	second, err := warehouse.NewPart("Actuator", shared.RatingC, 3, 500)
	require.NoError(t, err)
	other, err := warehouse.NewPart("Actuator", shared.RatingB, 1, 500)
	require.NoError(t, err)

	// Act
	q.AddPart(first)
	q.AddPart(second)
	q.AddPart(other)

	// Assert
	assert.Equal(t, 2, q.Warehouse().Len())
	assert.Equal(t, 5, q.Warehouse().Quantity(warehouse.Key{Type: "Actuator", Quality: shared.RatingC}))
}

func TestQuartermaster_RemovePartRejectsShortfall(t *testing.T) {
	q := warehouse.NewQuartermaster(nil, nil, byType(false))
	part, err := warehouse.NewPart("Actuator", shared.RatingC, 2, 500)
	require.NoError(t, err)
	q.AddPart(part)

	err = q.RemovePart("Actuator", shared.RatingC, 3)

	var shortfall *shared.InsufficientStockError
	require.ErrorAs(t, err, &shortfall)
	assert.Equal(t, 2, shortfall.Available)
	assert.Equal(t, 2, q.Warehouse().Quantity(part.Key()))

	require.NoError(t, q.RemovePart("Actuator", shared.RatingC, 2))
	assert.Zero(t, q.Warehouse().Len())
}

func TestQuartermaster_WithdrawExactAmmoFirst(t *testing.T) {
	q := warehouse.NewQuartermaster(nil, nil, byType(true))
	stockAmmo(t, q, lrm10, 4)
	stockAmmo(t, q, lrm5, 20)

	withdrawal := q.WithdrawAmmo(lrm10, 3)

	assert.Equal(t, 3, withdrawal.Delivered)
	assert.Equal(t, 3, withdrawal.FromExact)
	assert.Empty(t, withdrawal.Conversions)
	assert.Equal(t, 1, shotsOf(q, lrm10))
	assert.Equal(t, 20, shotsOf(q, lrm5))
}

func TestQuartermaster_NoConversionWhenDisabled(t *testing.T) {
	q := warehouse.NewQuartermaster(nil, nil, byType(false))
	stockAmmo(t, q, lrm5, 20)

	delivered := q.RemoveAmmo(lrm10, 3)

	assert.Zero(t, delivered)
	assert.Equal(t, 20, shotsOf(q, lrm5))
	assert.Zero(t, q.AmmoAvailable(lrm10))
}

func TestQuartermaster_ConvertsSmallerRacks(t *testing.T) {
	// Arrange
	q := warehouse.NewQuartermaster(nil, nil, byType(true))
	stockAmmo(t, q, lrm5, 20)
	stockAmmo(t, q, srm4, 50)

	// Act
	withdrawal := q.WithdrawAmmo(lrm10, 3)

	// Assert: 3 ten-missile shots need 6 five-missile shots
	require.Len(t, withdrawal.Conversions, 1)
	assert.Equal(t, 6, withdrawal.Conversions[0].Consumed)
	assert.Equal(t, 3, withdrawal.Conversions[0].Equivalent)
	assert.Zero(t, withdrawal.Loss)
	assert.Equal(t, 3, withdrawal.Delivered)
	assert.Equal(t, 14, shotsOf(q, lrm5))
	assert.Equal(t, 50, q.Warehouse().Quantity(warehouse.Key{Type: "SRM-4", Quality: shared.RatingD}))
}

func TestQuartermaster_ConversionSurplusReturnsToStock(t *testing.T) {
	// Arrange
	q := warehouse.NewQuartermaster(nil, nil, byType(true))
	stockAmmo(t, q, lrm20, 2)

	// Act
	withdrawal := q.WithdrawAmmo(lrm5, 3)

	// Assert: one twenty-missile shot frees four five-missile shots
	assert.Equal(t, 3, withdrawal.Delivered)
	assert.Equal(t, 1, withdrawal.Surplus)
	assert.Equal(t, 1, shotsOf(q, lrm20))
	assert.Equal(t, 1, shotsOf(q, lrm5))
}

func TestQuartermaster_ConversionRoundingLosesLessThanOneRack(t *testing.T) {
	q := warehouse.NewQuartermaster(nil, nil, byType(true))
	stockAmmo(t, q, lrm15, 1)

	withdrawal := q.WithdrawAmmo(lrm10, 1)

	require.Len(t, withdrawal.Conversions, 1)
	assert.Equal(t, 1, withdrawal.Delivered)
	assert.Equal(t, 5, withdrawal.Loss)
	assert.Zero(t, shotsOf(q, lrm15))
}

func TestQuartermaster_PartialConversionReportsShortfall(t *testing.T) {
	q := warehouse.NewQuartermaster(nil, nil, byType(true))
	stockAmmo(t, q, lrm5, 6)

	withdrawal := q.WithdrawAmmo(lrm10, 10)

	assert.Equal(t, 3, withdrawal.Delivered)
	assert.Equal(t, 7, withdrawal.Shortfall())
	assert.Zero(t, shotsOf(q, lrm5))
}

func TestQuartermaster_AmmoAvailableCountsConvertibleStock(t *testing.T) {
	q := warehouse.NewQuartermaster(nil, nil, byType(true))
	stockAmmo(t, q, lrm10, 2)
	stockAmmo(t, q, lrm5, 7)
	stockAmmo(t, q, lrm20, 1)

	// 2 exact + floor((35 + 20) / 10)
	assert.Equal(t, 7, q.AmmoAvailable(lrm10))
}

func TestQuartermaster_ShortEntryKeepsUnconvertedShots(t *testing.T) {
	// Arrange
	q := warehouse.NewQuartermaster(nil, nil, byType(true))
	stockAmmo(t, q, lrm15, 5)

	// Act
	withdrawal := q.WithdrawAmmo(lrm20, 10)

	// Assert: four fifteen-missile shots make exactly three twenty-missile shots
	assert.Equal(t, 3, withdrawal.Delivered)
	require.Len(t, withdrawal.Conversions, 1)
	assert.Equal(t, 4, withdrawal.Conversions[0].Consumed)
	assert.Zero(t, withdrawal.Loss)
	assert.Equal(t, 1, shotsOf(q, lrm15))
}

func TestQuartermaster_LeftoverRoundsCarryAcrossEntries(t *testing.T) {
	// Arrange
	q := warehouse.NewQuartermaster(nil, nil, byType(true))
	first, err := warehouse.NewAmmoStorage(lrm15, shared.RatingC, 1)
	require.NoError(t, err)
	second, err := warehouse.NewAmmoStorage(lrm15, shared.RatingD, 1)
	require.NoError(t, err)
	q.AddPart(first)
	q.AddPart(second)
	require.Equal(t, 3, q.AmmoAvailable(lrm10))

	// Act
	withdrawal := q.WithdrawAmmo(lrm10, 3)

	// Assert: 30 missiles make three ten-missile shots with nothing lost
	assert.Equal(t, 3, withdrawal.Delivered)
	assert.Zero(t, withdrawal.Loss)
	assert.Zero(t, withdrawal.Surplus)
	assert.Zero(t, q.Warehouse().Len())
}

// TestQuartermaster_ConversionNeverCreatesMissiles checks that value is conserved up to
// less than one rack of the requested type over the whole withdrawal, with several
// compatible entries of mixed rack sizes and qualities.
func TestQuartermaster_ConversionNeverCreatesMissiles(t *testing.T) {
	racks := []warehouse.AmmoType{lrm5, lrm10, lrm15, lrm20}
	qualities := []shared.Rating{shared.RatingB, shared.RatingC, shared.RatingD}
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 500; i++ {
		to := racks[rng.Intn(len(racks))]
		q := warehouse.NewQuartermaster(nil, nil, byType(true))

		stocked := 0
		for n := 1 + rng.Intn(4); n > 0; n-- {
			from := racks[rng.Intn(len(racks))]
			if from.Name == to.Name {
				continue
			}
			part, err := warehouse.NewAmmoStorage(from, qualities[rng.Intn(len(qualities))], 1+rng.Intn(12))
			require.NoError(t, err)
			q.AddPart(part)
			stocked += part.Quantity * from.RackSize
		}
		need := 1 + rng.Intn(30)

		withdrawal := q.WithdrawAmmo(to, need)

		left, held := 0, 0
		for _, entry := range q.Warehouse().Entries() {
			if entry.Ammo.Name == to.Name {
				held += entry.Quantity
				continue
			}
			left += entry.Quantity * entry.Ammo.RackSize
		}
		returned := (withdrawal.Delivered + withdrawal.Surplus) * to.RackSize
		loss := stocked - left - returned

		require.LessOrEqual(t, withdrawal.Delivered, need)
		require.GreaterOrEqual(t, loss, 0, "-> %s", to.Name)
		require.Less(t, loss, to.RackSize, "-> %s", to.Name)
		require.Equal(t, withdrawal.Loss, loss, "-> %s", to.Name)
		require.Equal(t, withdrawal.Surplus, held)
	}
}

func TestQuartermaster_BuyPartShipsAndArrives(t *testing.T) {
	// Arrange
	account := finance.NewAccount(10_000, shared.FixedClock{Date: helpers.CampaignStart})
	q := warehouse.NewQuartermaster(nil, account, byType(false))
	part, err := warehouse.NewPart("Heat Sink", shared.RatingD, 2, 2_000)
	require.NoError(t, err)

	// Act
	bought := q.BuyPart(part, 4_000, 2)

	// Assert
	require.True(t, bought)
	assert.Equal(t, int64(6_000), account.Balance())
	assert.Len(t, q.InTransit(), 1)
	assert.Zero(t, q.Warehouse().Len())

	assert.Empty(t, q.AdvanceDay())
	arrived := q.AdvanceDay()
	require.Len(t, arrived, 1)
	assert.Empty(t, q.InTransit())
	assert.Equal(t, 2, q.Warehouse().Quantity(part.Key()))

	transactions := account.Transactions()
	require.Len(t, transactions, 1)
	assert.Equal(t, finance.TransactionTypePartPurchase, transactions[0].TransactionType())
}

func TestQuartermaster_BuyPartRefusesWhenUnaffordable(t *testing.T) {
	account := finance.NewAccount(1_000, shared.FixedClock{Date: helpers.CampaignStart})
	q := warehouse.NewQuartermaster(nil, account, byType(false))
	part, err := warehouse.NewPart("Heat Sink", shared.RatingD, 1, 2_000)
	require.NoError(t, err)

	assert.False(t, q.BuyPart(part, 2_000, 0))
	assert.Equal(t, int64(1_000), account.Balance())
	assert.Zero(t, q.Warehouse().Len())
}

func TestQuartermaster_SellPartCreditsAccount(t *testing.T) {
	account := finance.NewAccount(0, shared.FixedClock{Date: helpers.CampaignStart})
	q := warehouse.NewQuartermaster(nil, account, byType(false))
	part, err := warehouse.NewPart("Gyro", shared.RatingC, 3, 0)
	require.NoError(t, err)
	q.AddPart(part)

	assert.True(t, q.SellPart("Gyro", shared.RatingC, 2, 1_500))
	assert.Equal(t, int64(3_000), account.Balance())
	assert.Equal(t, 1, q.Warehouse().Quantity(part.Key()))
	assert.False(t, q.SellPart("Gyro", shared.RatingC, 5, 1_500))
}

func TestRestore_SplitsStockFromShipments(t *testing.T) {
	onHand, err := warehouse.NewPart("Gyro", shared.RatingC, 1, 0)
	require.NoError(t, err)
	shipped, err := warehouse.NewPart("Actuator", shared.RatingC, 2, 0)
	require.NoError(t, err)
	shipped.DaysToArrival = 4

	q := warehouse.Restore([]*warehouse.Part{onHand, shipped}, nil, byType(false))

	assert.Equal(t, 1, q.Warehouse().Len())
	require.Len(t, q.InTransit(), 1)
	assert.Equal(t, 4, q.InTransit()[0].DaysToArrival)
	assert.Len(t, q.Snapshot(), 2)
}
