package queries

import (
	"context"
	"fmt"

	"github.com/andrescamacho/starlane-logistics/internal/adapters/metrics"
	"github.com/andrescamacho/starlane-logistics/internal/application/campaign"
	"github.com/andrescamacho/starlane-logistics/internal/application/common"
	"github.com/andrescamacho/starlane-logistics/internal/domain/routing"
)

// PlanRouteQuery asks for a jump path between two systems
type PlanRouteQuery struct {
	FromSystemID           string
	ToSystemID             string
	BypassAccessCheck      bool
	BypassEmptySystemCheck bool
}

// PlanRouteResponse describes the computed path
type PlanRouteResponse struct {
	SystemIDs    []string
	Reached      bool
	Reason       routing.StopReason
	Expansions   int
	Escaping     bool
	Jumps        int
	RechargeDays float64
	DistanceLY   float64
	Path         routing.JumpPath
}

// PlanRouteHandler handles the PlanRoute query
type PlanRouteHandler struct {
	engine *campaign.Engine
}

// NewPlanRouteHandler creates a new PlanRouteHandler
func NewPlanRouteHandler(engine *campaign.Engine) *PlanRouteHandler {
	return &PlanRouteHandler{engine: engine}
}

// Handle executes the PlanRoute query
func (h *PlanRouteHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*PlanRouteQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *PlanRouteQuery")
	}
	logger := common.LoggerFromContext(ctx)

	from, err := h.engine.Scenario.System(query.FromSystemID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve origin: %w", err)
	}
	to, err := h.engine.Scenario.System(query.ToSystemID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve destination: %w", err)
	}

	q := h.engine.RouteQuery()
	result := h.engine.Router.Search(q, from, to, query.BypassAccessCheck, query.BypassEmptySystemCheck)
	useCC := h.engine.Policy.UseCommandCircuit(q.Date, q.Contracts)

	metrics.RecordRoute(string(result.Reason), result.Path.Reached(), result.Expansions, result.Path.Jumps())

	level := common.LevelInfo
	if !result.Path.Reached() {
		level = common.LevelWarn
	}
	logger.Log(level, "Route planned", map[string]interface{}{
		"from":       from.ID(),
		"to":         to.ID(),
		"reason":     string(result.Reason),
		"jumps":      result.Path.Jumps(),
		"expansions": result.Expansions,
		"escaping":   result.Escaping,
	})

	return &PlanRouteResponse{
		SystemIDs:    result.Path.IDs(),
		Reached:      result.Path.Reached(),
		Reason:       result.Reason,
		Expansions:   result.Expansions,
		Escaping:     result.Escaping,
		Jumps:        result.Path.Jumps(),
		RechargeDays: result.Path.TotalRechargeDays(q.Date, useCC),
		DistanceLY:   result.Path.TotalDistance(),
		Path:         result.Path,
	}, nil
}
