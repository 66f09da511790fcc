package transit_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/starlane-logistics/internal/domain/access"
	"github.com/andrescamacho/starlane-logistics/internal/domain/routing"
	"github.com/andrescamacho/starlane-logistics/internal/domain/shared"
	"github.com/andrescamacho/starlane-logistics/internal/domain/transit"
	"github.com/andrescamacho/starlane-logistics/test/helpers"
)

var today = shared.FixedClock{Date: shared.NewDate(3025, time.January, 1)}

func TestEstimator_DaysForNeighbouringSystems(t *testing.T) {
	// Arrange
	current := helpers.NewSystem(t, "current", 0, 0, helpers.JumpPointDays(3.2))
	origin := helpers.NewSystem(t, "origin", 10, 0, helpers.JumpPointDays(2))
	estimator := transit.NewEstimator(shared.NewScriptedDice(3, 5), today, transit.Options{Unit: transit.UnitDay})

	// Act
	days := estimator.DaysFor(current, origin)

	// Assert: one jump, no recharge, 4 + 2 days to the jump points, 2d6 padding
	assert.Equal(t, 14, days)
	assert.Equal(t, 8, estimator.MinimumDaysFor(current, origin))
}

func TestEstimator_DaysForAddsRechargeBetweenJumps(t *testing.T) {
	current := helpers.NewSystem(t, "current", 0, 0)
	origin := helpers.NewSystem(t, "origin", 65, 0)
	estimator := transit.NewEstimator(shared.NewScriptedDice(), today, transit.Options{Unit: transit.UnitDay})

	// three jumps, two recharges, four d6 each showing 1
	assert.Equal(t, 18, estimator.DaysFor(current, origin))
}

func TestEstimator_DaysForSameSystemIsPaddingOnly(t *testing.T) {
	here := helpers.NewSystem(t, "here", 0, 0, helpers.JumpPointDays(5))
	estimator := transit.NewEstimator(shared.NewScriptedDice(4, 4), today, transit.Options{Unit: transit.UnitDay})

	assert.Equal(t, 4, estimator.DaysFor(here, here))
	assert.Equal(t, 4, estimator.DaysFor(here, nil))
}

func TestEstimator_PaddingScalesWithUnit(t *testing.T) {
	current := helpers.NewSystem(t, "current", 0, 0)
	origin := helpers.NewSystem(t, "origin", 10, 0)

	tests := []struct {
		unit    transit.Unit
		minimum int
	}{
		{transit.UnitDay, 2},
		{transit.UnitWeek, 7 + 8},
		{transit.UnitMonth, 30 + 28},
	}

	for _, tt := range tests {
		t.Run(string(tt.unit), func(t *testing.T) {
			estimator := transit.NewEstimator(shared.NewScriptedDice(), today, transit.Options{Unit: tt.unit})

			assert.Equal(t, tt.minimum, estimator.MinimumDaysFor(current, origin))
			assert.Equal(t, tt.minimum, estimator.DaysFor(current, origin))
		})
	}
}

func TestEstimator_DaysForNeverBelowMinimum(t *testing.T) {
	current := helpers.NewSystem(t, "current", 0, 0, helpers.JumpPointDays(1.5))
	origin := helpers.NewSystem(t, "origin", 10, 0, helpers.JumpPointDays(2.5))
	estimator := transit.NewEstimator(shared.NewSeededDice(42), today, transit.Options{})

	minimum := estimator.MinimumDaysFor(current, origin)
	for i := 0; i < 200; i++ {
		days := estimator.DaysFor(current, origin)
		require.GreaterOrEqual(t, days, minimum)
		require.GreaterOrEqual(t, days, 2+3)
	}
}

func TestEstimator_DaysForAvailabilityUsesCalendar(t *testing.T) {
	tests := []struct {
		unit transit.Unit
		want int
	}{
		{transit.UnitDay, 3},
		{transit.UnitWeek, 21},
		// January through March 3025
		{transit.UnitMonth, 90},
	}

	for _, tt := range tests {
		t.Run(string(tt.unit), func(t *testing.T) {
			estimator := transit.NewEstimator(shared.NewScriptedDice(5), today, transit.Options{Unit: tt.unit})

			// (7 + 5 + 3) / 4 = 3 units
			assert.Equal(t, tt.want, estimator.DaysForAvailability(3))
		})
	}
}

func TestEstimator_DaysForAvailabilityIsAtLeastOneUnit(t *testing.T) {
	estimator := transit.NewEstimator(shared.NewScriptedDice(1), today, transit.Options{Unit: transit.UnitDay})

	assert.Equal(t, 1, estimator.DaysForAvailability(-10))
}

func TestEstimator_DefaultsToMonths(t *testing.T) {
	estimator := transit.NewEstimator(shared.NewScriptedDice(), today, transit.Options{})

	assert.Equal(t, transit.UnitMonth, estimator.Unit())
}

func TestParseUnit(t *testing.T) {
	unit, err := transit.ParseUnit("week")
	require.NoError(t, err)
	assert.Equal(t, transit.UnitWeek, unit)

	_, err = transit.ParseUnit("fortnight")
	assert.Error(t, err)
}

func TestNeighbouringSystems_RouteAndDeliveryTime(t *testing.T) {
	// Arrange
	a := helpers.NewSystem(t, "a", 0, 0, helpers.JumpPointDays(2.5))
	b := helpers.NewSystem(t, "b", 10, 0, helpers.JumpPointDays(4))
	router := routing.NewRouter(helpers.NewCatalog(t, a, b), access.NewPolicy(access.Settings{}, nil), routing.Options{})
	estimator := transit.NewEstimator(shared.NewSeededDice(11), today, transit.Options{Unit: transit.UnitDay})

	// Act
	path := router.Route(routing.Query{Date: today.Date}, a, b, false, false)

	// Assert
	require.True(t, path.Reached())
	assert.Equal(t, []string{"a", "b"}, path.IDs())
	for i := 0; i < 20; i++ {
		assert.GreaterOrEqual(t, estimator.DaysFor(a, b), 3+4)
	}
}
