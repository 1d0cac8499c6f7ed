package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/must-coursehub/course-advisor/pkg/deepseek"
	"github.com/must-coursehub/course-advisor/pkg/logger"
)

const synthesizerBasePrompt = "你是大学课程推荐助手。根据用户的需求和推荐出的课程列表，用一段自然、友好的中文介绍这些推荐结果。只介绍列表中的课程，不要增删课程，不要编造课程信息。控制在三句话以内。"

// Synthesizer turns a recommendation batch into conversational prose.
// It only rewrites the message; the course list is never altered.
type Synthesizer struct {
	llm    Completer
	logger logger.Logger
}

// NewSynthesizer creates the response synthesizer
func NewSynthesizer(llm Completer, log logger.Logger) *Synthesizer {
	return &Synthesizer{llm: llm, logger: log}
}

// Synthesize produces the final message for a successful recommendation
// turn, falling back to a deterministic template when the LLM fails.
func (s *Synthesizer) Synthesize(ctx context.Context, intent Intent, courses []CourseInfo) string {
	system := synthesizerBasePrompt
	switch intent.Type {
	case IntentRefine:
		system += "用户是在之前推荐的课程中进一步筛选，回应时要体现这是从上一轮结果中挑出来的。"
	case IntentSupplement:
		system += "用户补充了新的筛选条件，回应时要体现结果同时满足了新旧条件。"
	}

	answer, err := s.llm.Complete(ctx, deepseek.CompletionRequest{
		SystemPrompt: system,
		UserPrompt:   s.buildUserPrompt(intent, courses),
		Temperature:  0.7,
		MaxTokens:    300,
	})
	if err != nil {
		s.logger.Debug("Response synthesis failed, using template", "error", err)
		return defaultRecommendationMessage(intent.Type, courses)
	}
	return answer
}

func (s *Synthesizer) buildUserPrompt(intent Intent, courses []CourseInfo) string {
	var b strings.Builder
	fmt.Fprintf(&b, "用户消息：%s\n", intent.OriginalMessage)
	merged := intent.Params
	if !merged.IsEmpty() || len(intent.Keywords) > 0 {
		fmt.Fprintf(&b, "筛选条件：%s\n", describeConditions(merged, intent.Keywords))
	}
	b.WriteString("推荐课程：\n")
	for i, c := range courses {
		fmt.Fprintf(&b, "%d. %s（%.1f学分，%s，%s）\n", i+1, c.Name, c.Credits, courseTypeLabel(c.Type), c.FacultyName)
	}
	return b.String()
}

// defaultRecommendationMessage is the deterministic message used when
// synthesis is unavailable or fails.
func defaultRecommendationMessage(t IntentType, courses []CourseInfo) string {
	switch t {
	case IntentRefine:
		return fmt.Sprintf("🔄 在之前推荐的课程中，为您筛选出 %d 门：", len(courses))
	case IntentSupplement:
		return fmt.Sprintf("🎓 结合您补充的条件，为您找到 %d 门课程：", len(courses))
	default:
		return fmt.Sprintf("📋 根据您的需求，为您推荐以下 %d 门课程：", len(courses))
	}
}
