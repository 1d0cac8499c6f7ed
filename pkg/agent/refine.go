package agent

import (
	"context"

	"github.com/must-coursehub/course-advisor/pkg/logger"
)

// RefineHandler narrows the previous recommendation batch with the new
// conditions. When the context carries no prior batch it degrades to a
// full catalog query, same as NEW_QUERY.
type RefineHandler struct {
	catalog  Catalog
	newQuery *NewQueryHandler
	logger   logger.Logger
}

// NewRefineHandler creates the REFINE handler
func NewRefineHandler(catalog Catalog, newQuery *NewQueryHandler, log logger.Logger) *RefineHandler {
	return &RefineHandler{catalog: catalog, newQuery: newQuery, logger: log}
}

// Process filters within lastRecommendedCourses. Keywords act as a
// containment filter here rather than a ranking boost: "上述课程中有
// 神经网络的吗" asks which of the batch match, not how to reorder it.
func (h *RefineHandler) Process(ctx context.Context, intent Intent, convCtx ConversationContext) (*AgentResult, error) {
	if !convCtx.HasLastRecommended() {
		h.logger.Debug("REFINE without prior recommendations, degrading to full query")
		return h.newQuery.Process(ctx, intent, convCtx)
	}

	merged := convCtx.Params.Merge(intent.Params)

	scheduled, err := scheduleSet(ctx, h.catalog, intent.Params)
	if err != nil {
		return nil, err
	}

	matched := filterCourses(convCtx.LastRecommended, intent.Params, scheduled)
	if len(intent.Keywords) > 0 {
		matched = filterByKeywords(matched, intent.Keywords)
	}

	updatedCtx := convCtx
	updatedCtx.Params = merged

	if len(matched) == 0 {
		return &AgentResult{
			IntentType:     IntentRefine,
			Success:        true,
			Message:        "之前推荐的课程里没有符合这个条件的。需要我在全部课程里重新帮您找找吗？",
			UpdatedContext: updatedCtx.ToMap(),
		}, nil
	}

	rankCourses(matched, nil)
	top := topCourses(matched)

	return &AgentResult{
		IntentType:     IntentRefine,
		Success:        true,
		Courses:        top,
		Message:        defaultRecommendationMessage(IntentRefine, top),
		UpdatedContext: updatedCtx.ToMap(),
	}, nil
}
