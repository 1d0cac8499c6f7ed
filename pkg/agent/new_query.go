package agent

import (
	"context"

	"github.com/must-coursehub/course-advisor/pkg/logger"
)

// NewQueryHandler answers fresh course queries: structured filter over
// the full catalog, keyword fallback, rank, cap at five.
type NewQueryHandler struct {
	catalog Catalog
	logger  logger.Logger
}

// NewNewQueryHandler creates the NEW_QUERY handler
func NewNewQueryHandler(catalog Catalog, log logger.Logger) *NewQueryHandler {
	return &NewQueryHandler{catalog: catalog, logger: log}
}

// Process runs the query pipeline. Catalog errors propagate to the
// caller; an empty result is a successful answer with an explanation.
func (h *NewQueryHandler) Process(ctx context.Context, intent Intent, convCtx ConversationContext) (*AgentResult, error) {
	merged := convCtx.Params.Merge(intent.Params)

	all, err := h.catalog.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	matched, err := selectCourses(ctx, h.catalog, all, merged, intent.Keywords)
	if err != nil {
		return nil, err
	}

	updatedCtx := convCtx
	updatedCtx.Params = merged

	if len(matched) == 0 {
		return &AgentResult{
			IntentType:     IntentNewQuery,
			Success:        true,
			Message:        "抱歉，暂时没有找到符合条件的课程。您可以换个学院、学分或时间再问我试试。",
			UpdatedContext: updatedCtx.ToMap(),
		}, nil
	}

	rankCourses(matched, intent.Keywords)
	top := topCourses(matched)

	return &AgentResult{
		IntentType:     IntentNewQuery,
		Success:        true,
		Courses:        top,
		Message:        defaultRecommendationMessage(IntentNewQuery, top),
		UpdatedContext: updatedCtx.ToMap(),
	}, nil
}
