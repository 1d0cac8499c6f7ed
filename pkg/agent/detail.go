package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/must-coursehub/course-advisor/pkg/deepseek"
	"github.com/must-coursehub/course-advisor/pkg/logger"
)

const maxDetailReviews = 3

// DetailHandler answers questions about a single course with an LLM
// narrative built from course facts and recent review excerpts.
type DetailHandler struct {
	catalog Catalog
	reviews ReviewSource
	llm     Completer
	logger  logger.Logger
}

// NewDetailHandler creates the DETAIL handler
func NewDetailHandler(catalog Catalog, reviews ReviewSource, llm Completer, log logger.Logger) *DetailHandler {
	return &DetailHandler{catalog: catalog, reviews: reviews, llm: llm, logger: log}
}

// Process resolves the queried course, defaulting to the first prior
// recommendation when the message names none.
func (h *DetailHandler) Process(ctx context.Context, intent Intent, convCtx ConversationContext) (*AgentResult, error) {
	all, err := h.catalog.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	name := intent.CourseToQuery
	if name == "" && convCtx.HasLastRecommended() {
		name = convCtx.LastRecommended[0].Name
	}

	course, ok := resolveCourseByName(all, name)
	if !ok {
		return &AgentResult{
			IntentType:     IntentDetail,
			Success:        true,
			Message:        fmt.Sprintf("抱歉，没有找到课程「%s」的信息。您可以告诉我准确的课程名称。", name),
			UpdatedContext: convCtx.ToMap(),
		}, nil
	}

	excerpts := h.fetchReviews(ctx, course.ID)
	narrative := h.describeWithLLM(ctx, intent.OriginalMessage, course, excerpts)

	return &AgentResult{
		IntentType:     IntentDetail,
		Success:        true,
		Message:        narrative,
		CourseDetail:   &course,
		UpdatedContext: convCtx.ToMap(),
	}, nil
}

// fetchReviews tolerates review source failures; the narrative just
// loses its excerpts.
func (h *DetailHandler) fetchReviews(ctx context.Context, courseID int64) []ReviewExcerpt {
	excerpts, err := h.reviews.RecentReviews(ctx, courseID, maxDetailReviews)
	if err != nil {
		h.logger.Warn("Failed to load review excerpts for detail", "course_id", courseID, "error", err)
		return nil
	}
	return excerpts
}

func (h *DetailHandler) describeWithLLM(ctx context.Context, question string, c CourseInfo, excerpts []ReviewExcerpt) string {
	var facts strings.Builder
	fmt.Fprintf(&facts, "课程：%s（%s）\n学分：%.1f\n类型：%s\n学院：%s\n教师：%s\n评分：%s（%d条评价）\n简介：%s\n",
		c.Name, c.Code, c.Credits, courseTypeLabel(c.Type), c.FacultyName, c.TeacherName,
		ratingLabel(c), c.ReviewCount, c.Description)
	if len(excerpts) > 0 {
		facts.WriteString("\n学生评价摘录：\n")
		for _, r := range excerpts {
			fmt.Fprintf(&facts, "- （%d星）%s\n", r.Rating, r.Content)
		}
	}

	answer, err := h.llm.Complete(ctx, deepseek.CompletionRequest{
		SystemPrompt: "你是大学课程顾问。根据给出的课程信息和学生评价，自然地介绍这门课程并回答用户的问题。用中文回答，不要编造信息中没有的内容。",
		UserPrompt:   fmt.Sprintf("用户问题：%s\n\n%s", question, facts.String()),
		Temperature:  0.7,
		MaxTokens:    600,
	})
	if err != nil {
		h.logger.Warn("Detail LLM call failed, using fact template", "error", err)
		return detailFallback(c)
	}
	return answer
}

// detailFallback renders the deterministic fact template
func detailFallback(c CourseInfo) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📚 **%s**（%s）\n", c.Name, c.Code)
	fmt.Fprintf(&b, "- 学分：%.1f\n- 类型：%s\n- 学院：%s\n- 教师：%s\n- 评分：%s（%d条评价）\n",
		c.Credits, courseTypeLabel(c.Type), c.FacultyName, c.TeacherName, ratingLabel(c), c.ReviewCount)
	if c.Description != "" {
		fmt.Fprintf(&b, "\n%s", c.Description)
	}
	return b.String()
}
