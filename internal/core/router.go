// ABOUTME: Query router - classifies a question into one manual domain
// ABOUTME: Provider failures collapse to General and never block answering
package core

import (
	"fmt"
	"log"

	"github.com/harper/manualqa/internal/models"
)

const routePrompt = `Answer with exactly one word: which military domain does the question below belong to?
Valid answers: Operations, Logistics, Ammunition, Medical.
If it belongs to none of these, answer General.

Question: %s

Answer: `

// Router classifies questions into domain labels with one completion call.
//
// The label only decorates the synthesis prompt; retrieval is identical for
// every domain, so this call adds latency and cost without changing what is
// retrieved. Kept for behavioral parity with the original pipeline.
type Router struct {
	completer Completer
}

// NewRouter creates a router over the given completion provider.
func NewRouter(completer Completer) *Router {
	return &Router{completer: completer}
}

// Classify returns the domain label for the question. The raw response is
// matched against a strict allow-list; anything else, including a provider
// failure, becomes General. Routing must never block answering.
func (r *Router) Classify(question string) models.DomainLabel {
	resp, err := r.completer.Complete(fmt.Sprintf(routePrompt, question), 0)
	if err != nil {
		log.Printf("Warning: domain classification failed, defaulting to General: %v", err)
		return models.DomainGeneral
	}
	return models.ParseDomainLabel(resp)
}
