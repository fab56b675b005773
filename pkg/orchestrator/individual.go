package orchestrator

import (
	"context"
	"sort"
	"strings"

	"github.com/autoanalyst/analyst/pkg/models"
	"github.com/autoanalyst/analyst/pkg/retriever"
)

// ExecuteIndividual runs the agents the user named explicitly, in the
// order given. spec is a comma-separated agent list ("preprocessing_agent"
// or "preprocessing_agent,data_viz_agent"). Every name is resolved before
// any agent runs, so an unknown name fails the whole request instead of
// surfacing mid-stream.
//
// Execution is strictly sequential and failures are contained per agent:
// a failed step yields an error event and the remaining agents still run.
func (o *Orchestrator) ExecuteIndividual(ctx context.Context, spec, query string, rets *retriever.Set, userID *int) (<-chan models.ExecutionEvent, error) {
	available, err := o.signatures.Individual(ctx)
	if err != nil {
		return nil, err
	}

	var sigs []*models.AgentSignature
	for _, part := range strings.Split(spec, ",") {
		name := strings.TrimSpace(strings.ToLower(part))
		if name == "" {
			continue
		}
		sig, ok := available[name]
		if !ok {
			return nil, &UnknownAgentError{Name: name, Available: sortedNames(available)}
		}
		sigs = append(sigs, sig)
	}
	if len(sigs) == 0 {
		return nil, &UnknownAgentError{Name: spec, Available: sortedNames(available)}
	}

	events := make(chan models.ExecutionEvent)
	go func() {
		defer close(events)
		for _, sig := range sigs {
			inputs, err := buildInputs(ctx, sig, query, "", rets)
			if err != nil {
				if !emit(ctx, events, errorEvent(sig.Name, err.Error())) {
					return
				}
				continue
			}
			if !emit(ctx, events, o.runAgent(ctx, sig, inputs, query, userID)) {
				return
			}
		}
	}()
	return events, nil
}

func sortedNames(available map[string]*models.AgentSignature) []string {
	names := make([]string, 0, len(available))
	for name := range available {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
