package agent

import (
	"context"

	"github.com/must-coursehub/course-advisor/pkg/logger"
)

const (
	// ResponseTypeRecommendation marks responses that carry courses
	ResponseTypeRecommendation = "recommendation"
	// ResponseTypeText marks plain conversational responses
	ResponseTypeText = "text"

	msgServiceUnavailable   = "AI服务未配置或未启用，请联系管理员。"
	msgTemporarilyUnusable  = "AI服务暂时不可用，请稍后再试。"
	errCodeNotConfigured    = "AI_SERVICE_NOT_CONFIGURED"
	errCodeProcessingFailed = "AI_PROCESSING_FAILED"
)

// Response is the caller-facing result of one chat turn
type Response struct {
	Type           string                 `json:"type"`
	Content        string                 `json:"content"`
	Courses        []CourseInfo           `json:"courses,omitempty"`
	UpdatedContext map[string]interface{} `json:"updatedContext,omitempty"`
	Success        bool                   `json:"success"`
	Error          string                 `json:"error,omitempty"`
}

// Service is the orchestration façade: gate, hydrate, classify, route,
// assemble. It holds no per-conversation state.
type Service struct {
	classifier *Classifier
	router     *Router
	llm        Completer
	logger     logger.Logger
}

// NewService wires the full pipeline
func NewService(classifier *Classifier, router *Router, llm Completer, log logger.Logger) *Service {
	return &Service{classifier: classifier, router: router, llm: llm, logger: log}
}

// Available reports whether the AI capability can serve requests
func (s *Service) Available() bool {
	return s.llm.Available()
}

// Chat processes one user turn. It never panics and never surfaces a
// transport error; every failure becomes a degraded Response.
func (s *Service) Chat(ctx context.Context, message string, contextMap map[string]interface{}, history []HistoryTurn) Response {
	if !s.llm.Available() {
		return Response{
			Type:    ResponseTypeText,
			Content: msgServiceUnavailable,
			Success: false,
			Error:   errCodeNotConfigured,
		}
	}

	convCtx := ContextFromMap(contextMap, history)
	intent := s.classifier.Classify(ctx, message, convCtx)

	s.logger.Info("Processing chat turn",
		"conversation_id", convCtx.ConversationID,
		"intent", string(intent.Type),
		"confidence", intent.Confidence)

	result, err := s.router.Route(ctx, intent, convCtx)
	if err != nil {
		s.logger.Error("Chat turn failed", "intent", string(intent.Type), "error", err)
		return Response{
			Type:    ResponseTypeText,
			Content: msgTemporarilyUnusable,
			Success: false,
			Error:   errCodeProcessingFailed,
		}
	}

	return buildResponse(result)
}

// buildResponse maps an AgentResult onto the wire shape. A DETAIL
// result with a resolved course is presented as a one-course
// recommendation so the frontend renders its course card.
func buildResponse(result *AgentResult) Response {
	resp := Response{
		Type:           ResponseTypeText,
		Content:        result.Message,
		UpdatedContext: result.UpdatedContext,
		Success:        result.Success,
	}
	switch {
	case len(result.Courses) > 0:
		resp.Type = ResponseTypeRecommendation
		resp.Courses = result.Courses
	case result.CourseDetail != nil:
		resp.Type = ResponseTypeRecommendation
		resp.Courses = []CourseInfo{*result.CourseDetail}
	case result.ComparisonResult != "":
		resp.Content = result.ComparisonResult
	}
	return resp
}
