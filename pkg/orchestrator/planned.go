package orchestrator

import (
	"context"
	"encoding/json"

	"github.com/autoanalyst/analyst/pkg/models"
	"github.com/autoanalyst/analyst/pkg/planner"
	"github.com/autoanalyst/analyst/pkg/retriever"
)

// GetPlan builds an execution plan for the query from the agents enabled
// in the user's template preferences.
func (o *Orchestrator) GetPlan(ctx context.Context, query string, rets *retriever.Set, userID int) (*models.Plan, error) {
	agents := o.signatures.PlannerForUser(ctx, userID)

	datasetDesc, err := retriever.Top1(ctx, rets.Dataset, query)
	if err != nil {
		return nil, err
	}
	return o.planner.Plan(ctx, query, datasetDesc, agents)
}

// ExecutePlan runs a plan's steps strictly in order, emitting one event
// per step. The stream is the projection of plan.Steps: a step that
// cannot run still yields an error event in its slot.
//
// Degenerate plans produce exactly one event: the no-agents sentinel
// carries the remediation message, a nil plan yields plan_not_found, and
// an empty plan yields plan_not_formatted_correctly.
func (o *Orchestrator) ExecutePlan(ctx context.Context, plan *models.Plan, query string, rets *retriever.Set, userID *int) <-chan models.ExecutionEvent {
	events := make(chan models.ExecutionEvent)
	go func() {
		defer close(events)

		switch {
		case planner.IsNoAgentsPlan(plan):
			emit(ctx, events, errorEvent(models.PlanNoAgentsAvailable, planner.NoAgentsMessage))
			return
		case plan == nil:
			emit(ctx, events, errorEvent(models.EventPlanNotFound, "no plan was produced for this query"))
			return
		case plan.IsEmpty():
			emit(ctx, events, errorEvent(models.EventPlanNotFormatted, "the planner response could not be parsed into a plan"))
			return
		}

		available, err := o.signatures.Individual(ctx)
		if err != nil {
			emit(ctx, events, errorEvent(models.EventPlanNotFound, err.Error()))
			return
		}

		resolvable := 0
		for _, step := range plan.Steps {
			if _, ok := available[step]; ok {
				resolvable++
			}
		}
		if resolvable == 0 {
			emit(ctx, events, errorEvent(models.EventPlanNotFound, "no agent in the plan is available"))
			return
		}

		for _, step := range plan.Steps {
			sig, ok := available[step]
			if !ok {
				if !emit(ctx, events, errorEvent(step, "agent is not available")) {
					return
				}
				continue
			}

			inputs, err := buildInputs(ctx, sig, query, stepInstructions(plan, step), rets)
			if err != nil {
				if !emit(ctx, events, errorEvent(step, err.Error())) {
					return
				}
				continue
			}
			if !emit(ctx, events, o.runAgent(ctx, sig, inputs, query, userID)) {
				return
			}
		}
	}()
	return events
}

// stepInstructions renders a step's planner contract as JSON, or "" when
// the plan carries no instructions for it.
func stepInstructions(plan *models.Plan, step string) string {
	spec, ok := plan.Instructions[step]
	if !ok {
		return ""
	}
	raw, err := json.Marshal(spec)
	if err != nil {
		return ""
	}
	return string(raw)
}
