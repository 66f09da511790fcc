package queries

import (
	"context"
	"fmt"

	"github.com/andrescamacho/starlane-logistics/internal/adapters/metrics"
	"github.com/andrescamacho/starlane-logistics/internal/application/campaign"
	"github.com/andrescamacho/starlane-logistics/internal/application/common"
	"github.com/andrescamacho/starlane-logistics/internal/domain/shared"
)

// EstimateTransitQuery asks how long a shipment takes to reach the force.
// Set OriginSystemID for a shipment from a known system, or Availability for a
// shipment sourced by rarity alone.
type EstimateTransitQuery struct {
	OriginSystemID string
	Availability   *shared.Rating
}

// EstimateTransitResponse carries the estimate
type EstimateTransitResponse struct {
	Days        int
	MinimumDays int
	Unit        string
}

// EstimateTransitHandler handles the EstimateTransit query
type EstimateTransitHandler struct {
	engine *campaign.Engine
}

// NewEstimateTransitHandler creates a new EstimateTransitHandler
func NewEstimateTransitHandler(engine *campaign.Engine) *EstimateTransitHandler {
	return &EstimateTransitHandler{engine: engine}
}

// Handle executes the EstimateTransit query
func (h *EstimateTransitHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*EstimateTransitQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *EstimateTransitQuery")
	}

	estimator := h.engine.Estimator
	response := &EstimateTransitResponse{Unit: string(estimator.Unit())}

	switch {
	case query.Availability != nil:
		response.Days = estimator.DaysForAvailability(int(*query.Availability))
		metrics.RecordTransitEstimate("availability", response.Days)
	case query.OriginSystemID != "":
		origin, err := h.engine.Scenario.System(query.OriginSystemID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve origin: %w", err)
		}
		current := h.engine.Scenario.Location
		response.Days = estimator.DaysFor(current, origin)
		response.MinimumDays = estimator.MinimumDaysFor(current, origin)
		metrics.RecordTransitEstimate("system", response.Days)
	default:
		return nil, fmt.Errorf("either an origin system or an availability rating is required")
	}

	common.LoggerFromContext(ctx).Log(common.LevelInfo, "Transit estimated", map[string]interface{}{
		"origin":       query.OriginSystemID,
		"days":         response.Days,
		"minimum_days": response.MinimumDays,
		"unit":         response.Unit,
	})
	return response, nil
}
