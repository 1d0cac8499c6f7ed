package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/must-coursehub/course-advisor/pkg/deepseek"
	"github.com/must-coursehub/course-advisor/pkg/logger"
)

// CompareHandler produces a side-by-side analysis of two or more
// courses resolved from the user's message or the prior batch.
type CompareHandler struct {
	catalog Catalog
	llm     Completer
	logger  logger.Logger
}

// NewCompareHandler creates the COMPARE handler
func NewCompareHandler(catalog Catalog, llm Completer, log logger.Logger) *CompareHandler {
	return &CompareHandler{catalog: catalog, llm: llm, logger: log}
}

// Process resolves the courses to compare, asks the LLM for an
// analysis and falls back to a fact sheet when the call fails.
func (h *CompareHandler) Process(ctx context.Context, intent Intent, convCtx ConversationContext) (*AgentResult, error) {
	all, err := h.catalog.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	names := intent.CoursesToCompare
	if len(names) < 2 && len(convCtx.LastRecommended) >= 2 {
		// "对比一下前两个" style reference to the prior batch
		names = []string{convCtx.LastRecommended[0].Name, convCtx.LastRecommended[1].Name}
	}

	var resolved []CourseInfo
	for _, name := range names {
		if c, ok := resolveCourseByName(all, name); ok {
			resolved = append(resolved, c)
		}
	}

	if len(resolved) < 2 {
		return &AgentResult{
			IntentType:     IntentCompare,
			Success:        true,
			Message:        "请告诉我您想对比哪两门课程，比如：对比一下Python程序设计和Java程序设计。",
			UpdatedContext: convCtx.ToMap(),
		}, nil
	}

	comparison := h.compareWithLLM(ctx, intent.OriginalMessage, resolved)

	return &AgentResult{
		IntentType:       IntentCompare,
		Success:          true,
		Message:          comparison,
		ComparisonResult: comparison,
		UpdatedContext:   convCtx.ToMap(),
	}, nil
}

// resolveCourseByName matches exactly first, then by bidirectional
// substring so "Python课" finds "Python程序设计".
func resolveCourseByName(all []CourseInfo, name string) (CourseInfo, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return CourseInfo{}, false
	}
	for _, c := range all {
		if strings.EqualFold(c.Name, name) {
			return c, true
		}
	}
	for _, c := range all {
		if substringEither(c.Name, name) {
			return c, true
		}
	}
	return CourseInfo{}, false
}

func (h *CompareHandler) compareWithLLM(ctx context.Context, question string, courses []CourseInfo) string {
	var facts strings.Builder
	for _, c := range courses {
		fmt.Fprintf(&facts, "课程：%s（%s）\n学分：%.1f\n类型：%s\n学院：%s\n教师：%s\n评分：%s（%d条评价）\n简介：%s\n\n",
			c.Name, c.Code, c.Credits, courseTypeLabel(c.Type), c.FacultyName, c.TeacherName,
			ratingLabel(c), c.ReviewCount, c.Description)
	}

	answer, err := h.llm.Complete(ctx, deepseek.CompletionRequest{
		SystemPrompt: "你是大学课程顾问。根据给出的课程信息客观对比这些课程，从内容、难度、评价等角度给出建议。用中文回答，条理清晰，不要编造信息中没有的内容。",
		UserPrompt:   fmt.Sprintf("用户问题：%s\n\n课程信息：\n%s", question, facts.String()),
		Temperature:  0.7,
		MaxTokens:    500,
	})
	if err != nil {
		h.logger.Warn("Comparison LLM call failed, using fact sheet", "error", err)
		return comparisonFallback(courses)
	}
	return answer
}

// comparisonFallback renders a deterministic per-course fact sheet
func comparisonFallback(courses []CourseInfo) string {
	var b strings.Builder
	b.WriteString("📊 **课程对比分析**\n")
	for _, c := range courses {
		fmt.Fprintf(&b, "\n**%s**\n- 学分：%.1f\n- 类型：%s\n- 教师：%s\n- 评分：%s（%d条评价）\n",
			c.Name, c.Credits, courseTypeLabel(c.Type), c.TeacherName, ratingLabel(c), c.ReviewCount)
	}
	return b.String()
}

func courseTypeLabel(t string) string {
	switch strings.ToUpper(t) {
	case "COMPULSORY":
		return "必修"
	case "ELECTIVE":
		return "选修"
	default:
		return t
	}
}

func ratingLabel(c CourseInfo) string {
	if c.AverageRating == nil {
		return "暂无评分"
	}
	return fmt.Sprintf("%.1f", *c.AverageRating)
}
