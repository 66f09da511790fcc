package queries_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/starlane-logistics/internal/application/campaign"
	"github.com/andrescamacho/starlane-logistics/internal/application/common"
	"github.com/andrescamacho/starlane-logistics/internal/application/navigation/queries"
	"github.com/andrescamacho/starlane-logistics/internal/domain/routing"
	"github.com/andrescamacho/starlane-logistics/internal/domain/shared"
	"github.com/andrescamacho/starlane-logistics/internal/domain/transit"
	"github.com/andrescamacho/starlane-logistics/test/helpers"
)

func newMediator(t *testing.T) (common.Mediator, *campaign.Engine) {
	t.Helper()
	scenario := helpers.NewScenario(t, 0,
		helpers.NewSystem(t, "home", 0, 0),
		helpers.NewSystem(t, "relay", 20, 0),
		helpers.NewSystem(t, "rim", 40, 0),
		helpers.NewSystem(t, "void", 60, 0, helpers.Empty()),
	)
	settings := campaign.Settings{
		Routing: routing.Options{AvoidEmptySystems: true},
		Transit: transit.Options{Unit: transit.UnitDay},
	}
	engine := campaign.NewEngine(scenario, settings, shared.NewScriptedDice())

	med := common.NewMediator()
	require.NoError(t, common.RegisterHandler[*queries.PlanRouteQuery](med, queries.NewPlanRouteHandler(engine)))
	require.NoError(t, common.RegisterHandler[*queries.EstimateTransitQuery](med, queries.NewEstimateTransitHandler(engine)))
	return med, engine
}

func TestPlanRouteQuery_ReturnsPathAndTotals(t *testing.T) {
	// Arrange
	med, _ := newMediator(t)

	// Act
	response, err := med.Send(context.Background(), &queries.PlanRouteQuery{FromSystemID: "home", ToSystemID: "rim"})

	// Assert
	require.NoError(t, err)
	route := response.(*queries.PlanRouteResponse)
	assert.Equal(t, []string{"home", "relay", "rim"}, route.SystemIDs)
	assert.True(t, route.Reached)
	assert.Equal(t, routing.StopReached, route.Reason)
	assert.Equal(t, 2, route.Jumps)
	assert.InDelta(t, 2.0, route.RechargeDays, 1e-9)
	assert.InDelta(t, 40.0, route.DistanceLY, 1e-9)
}

func TestPlanRouteQuery_EmptyDestinationNeedsBypass(t *testing.T) {
	med, _ := newMediator(t)

	refused, err := med.Send(context.Background(), &queries.PlanRouteQuery{FromSystemID: "home", ToSystemID: "void"})
	require.NoError(t, err)
	bypassed, err := med.Send(context.Background(), &queries.PlanRouteQuery{
		FromSystemID:           "home",
		ToSystemID:             "void",
		BypassEmptySystemCheck: true,
	})
	require.NoError(t, err)

	assert.Equal(t, routing.StopEmptyDestination, refused.(*queries.PlanRouteResponse).Reason)
	assert.True(t, bypassed.(*queries.PlanRouteResponse).Reached)
}

func TestPlanRouteQuery_UnknownSystem(t *testing.T) {
	med, _ := newMediator(t)

	_, err := med.Send(context.Background(), &queries.PlanRouteQuery{FromSystemID: "home", ToSystemID: "atlantis"})

	var notFound *shared.SystemNotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestEstimateTransitQuery_FromSystem(t *testing.T) {
	med, _ := newMediator(t)

	response, err := med.Send(context.Background(), &queries.EstimateTransitQuery{OriginSystemID: "relay"})

	require.NoError(t, err)
	estimate := response.(*queries.EstimateTransitResponse)
	assert.Equal(t, "day", estimate.Unit)
	assert.Equal(t, estimate.MinimumDays, estimate.Days)
	assert.Equal(t, 2, estimate.Days)
}

func TestEstimateTransitQuery_ByAvailability(t *testing.T) {
	med, _ := newMediator(t)
	rating := shared.RatingC

	response, err := med.Send(context.Background(), &queries.EstimateTransitQuery{Availability: &rating})

	// (7 + 1 + 2) / 4 = 2 days
	require.NoError(t, err)
	assert.Equal(t, 2, response.(*queries.EstimateTransitResponse).Days)
}

func TestEstimateTransitQuery_NeedsOriginOrAvailability(t *testing.T) {
	med, _ := newMediator(t)

	_, err := med.Send(context.Background(), &queries.EstimateTransitQuery{})

	assert.Error(t, err)
}
