package agent

import (
	"context"

	"github.com/must-coursehub/course-advisor/pkg/logger"
)

// Router dispatches a classified intent to its handler and applies the
// post-processing every recommendation turn shares: response synthesis
// and lastRecommendedCourses injection into the updated context.
type Router struct {
	handlers    map[IntentType]Handler
	fallback    Handler
	synthesizer *Synthesizer
	logger      logger.Logger
}

// NewRouter wires the six handlers. newQuery doubles as the fallback
// for anything unregistered.
func NewRouter(newQuery, refine, supplement, compare, detail, chat Handler, synth *Synthesizer, log logger.Logger) *Router {
	return &Router{
		handlers: map[IntentType]Handler{
			IntentNewQuery:   newQuery,
			IntentRefine:     refine,
			IntentSupplement: supplement,
			IntentCompare:    compare,
			IntentDetail:     detail,
			IntentChat:       chat,
		},
		fallback:    newQuery,
		synthesizer: synth,
		logger:      log,
	}
}

// Route executes the handler for the intent. On a successful turn that
// produced courses, the message is replaced with synthesized prose and
// the batch is written into the updated context so the next turn can
// refer back to it.
func (r *Router) Route(ctx context.Context, intent Intent, convCtx ConversationContext) (*AgentResult, error) {
	handler, ok := r.handlers[intent.Type]
	if !ok {
		r.logger.Warn("No handler registered for intent, using fallback", "intent", string(intent.Type))
		handler = r.fallback
	}

	result, err := handler.Process(ctx, intent, convCtx)
	if err != nil {
		return nil, err
	}

	if result.Success && len(result.Courses) > 0 {
		result.Message = r.synthesizer.Synthesize(ctx, intent, result.Courses)
		if result.UpdatedContext == nil {
			result.UpdatedContext = convCtx.ToMap()
		}
		result.UpdatedContext["lastRecommendedCourses"] = CoursesToValue(result.Courses)
	}

	return result, nil
}
