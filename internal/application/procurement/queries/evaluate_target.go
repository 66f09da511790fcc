package queries

import (
	"context"
	"fmt"

	"github.com/andrescamacho/starlane-logistics/internal/application/campaign"
	"github.com/andrescamacho/starlane-logistics/internal/application/common"
	"github.com/andrescamacho/starlane-logistics/internal/domain/acquisition"
)

// EvaluateTargetQuery asks for the target number a person faces for a shopping list
// item, optionally when shopping at a specific system
type EvaluateTargetQuery struct {
	ItemName string
	PersonID string
	SystemID string
}

// EvaluateTargetResponse carries the computed target
type EvaluateTargetResponse struct {
	Target      acquisition.TargetRoll
	Value       string
	Description string
}

// EvaluateTargetHandler handles the EvaluateTarget query
type EvaluateTargetHandler struct {
	engine *campaign.Engine
}

// NewEvaluateTargetHandler creates a new EvaluateTargetHandler
func NewEvaluateTargetHandler(engine *campaign.Engine) *EvaluateTargetHandler {
	return &EvaluateTargetHandler{engine: engine}
}

// Handle executes the EvaluateTarget query
func (h *EvaluateTargetHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*EvaluateTargetQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *EvaluateTargetQuery")
	}

	var work *acquisition.Work
	for _, item := range h.engine.Scenario.Shopping.Items() {
		if item.Name == query.ItemName {
			work = item
			break
		}
	}
	if work == nil {
		return nil, fmt.Errorf("item %q is not on the shopping list", query.ItemName)
	}

	var person acquisition.Person
	if query.PersonID != "" {
		found, ok := h.engine.Scenario.Roster.Find(query.PersonID)
		if !ok {
			return nil, fmt.Errorf("person %q not found", query.PersonID)
		}
		person = found
	} else if acquirers := h.engine.Scenario.Roster.Acquirers(h.engine.Resolver.Options().AcquisitionSkill); len(acquirers) > 0 {
		person = acquirers[0]
	}

	q := h.engine.AcquisitionQuery()
	target := h.engine.Resolver.TargetRoll(q, work, person, true)
	if query.SystemID != "" {
		s, err := h.engine.Scenario.System(query.SystemID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve system: %w", err)
		}
		target = h.engine.Resolver.PlanetaryModifiers(target, work, s, q.Date)
	}

	common.LoggerFromContext(ctx).Log(common.LevelDebug, "Target evaluated", map[string]interface{}{
		"item":   work.Name,
		"target": target.ValueString(),
	})
	return &EvaluateTargetResponse{
		Target:      target,
		Value:       target.ValueString(),
		Description: target.Description(),
	}, nil
}
