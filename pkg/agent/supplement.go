package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/must-coursehub/course-advisor/pkg/logger"
)

// SupplementHandler re-runs the query with the cumulative slots plus
// the newly supplied ones. Same pipeline as NEW_QUERY; the difference
// is the empty-result message, which spells out every active condition
// so the user sees what combination came up empty.
type SupplementHandler struct {
	catalog Catalog
	logger  logger.Logger
}

// NewSupplementHandler creates the SUPPLEMENT handler
func NewSupplementHandler(catalog Catalog, log logger.Logger) *SupplementHandler {
	return &SupplementHandler{catalog: catalog, logger: log}
}

// Process merges conditions and re-queries the full catalog
func (h *SupplementHandler) Process(ctx context.Context, intent Intent, convCtx ConversationContext) (*AgentResult, error) {
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
			IntentType:     IntentSupplement,
			Success:        true,
			Message:        fmt.Sprintf("抱歉，没有找到同时满足%s的课程。您可以放宽其中某个条件再试试。", describeConditions(merged, intent.Keywords)),
			UpdatedContext: updatedCtx.ToMap(),
		}, nil
	}

	rankCourses(matched, intent.Keywords)
	top := topCourses(matched)

	return &AgentResult{
		IntentType:     IntentSupplement,
		Success:        true,
		Courses:        top,
		Message:        defaultRecommendationMessage(IntentSupplement, top),
		UpdatedContext: updatedCtx.ToMap(),
	}, nil
}

var weekdayNames = map[int]string{
	1: "周一", 2: "周二", 3: "周三", 4: "周四", 5: "周五", 6: "周六", 7: "周日",
}

var periodNames = map[int]string{
	1: "上午第一段", 2: "上午第二段", 3: "下午", 4: "晚上",
}

// describeConditions renders the merged slots as a readable Chinese list
func describeConditions(p Params, keywords []string) string {
	var parts []string
	if p.Faculty != "" {
		parts = append(parts, fmt.Sprintf("学院「%s」", p.Faculty))
	}
	if p.Teacher != "" {
		parts = append(parts, fmt.Sprintf("教师「%s」", p.Teacher))
	}
	if p.CourseType != "" {
		label := "选修"
		if strings.EqualFold(p.CourseType, "COMPULSORY") {
			label = "必修"
		}
		parts = append(parts, label+"课")
	}
	if p.Credits != nil {
		parts = append(parts, fmt.Sprintf("%.1f学分", *p.Credits))
	}
	if len(p.DayOfWeek) > 0 {
		var days []string
		for _, d := range p.DayOfWeek {
			if name, ok := weekdayNames[d]; ok {
				days = append(days, name)
			}
		}
		parts = append(parts, strings.Join(days, "或")+"上课")
	}
	if p.TimePeriod != nil {
		if name, ok := periodNames[*p.TimePeriod]; ok {
			parts = append(parts, name+"时段")
		}
	}
	if len(keywords) > 0 {
		parts = append(parts, fmt.Sprintf("关键词「%s」", strings.Join(keywords, "、")))
	}
	if len(parts) == 0 {
		return "这些条件"
	}
	return strings.Join(parts, "、")
}
