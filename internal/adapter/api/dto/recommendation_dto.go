package dto

import (
	"github.com/must-coursehub/course-advisor/pkg/agent"
)

// HistoryItem is one prior turn sent by the client
type HistoryItem struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the body of POST /ai-recommendations/chat. Context is
// the opaque blob the client received in the previous response;
// sending it back is what gives the assistant its memory.
type ChatRequest struct {
	Message             string                 `json:"message" binding:"required"`
	Context             map[string]interface{} `json:"context"`
	ConversationID      string                 `json:"conversationId"`
	ConversationHistory []HistoryItem          `json:"conversationHistory"`
}

// ChatResponse is the result of one chat turn
type ChatResponse struct {
	Type           string                 `json:"type"`
	Content        string                 `json:"content"`
	Courses        []agent.CourseInfo     `json:"courses,omitempty"`
	UpdatedContext map[string]interface{} `json:"updatedContext,omitempty"`
	Success        bool                   `json:"success"`
	Error          string                 `json:"error,omitempty"`
}

// ChatResponseFromResult maps the pipeline response onto the wire DTO
func ChatResponseFromResult(r agent.Response) ChatResponse {
	return ChatResponse{
		Type:           r.Type,
		Content:        r.Content,
		Courses:        r.Courses,
		UpdatedContext: r.UpdatedContext,
		Success:        r.Success,
		Error:          r.Error,
	}
}

// HistoryTurns converts the request history into pipeline turns
func (r ChatRequest) HistoryTurns() []agent.HistoryTurn {
	turns := make([]agent.HistoryTurn, 0, len(r.ConversationHistory))
	for _, h := range r.ConversationHistory {
		turns = append(turns, agent.HistoryTurn{Role: h.Role, Content: h.Content})
	}
	return turns
}

// StatusResponse reports AI service availability
type StatusResponse struct {
	Available bool   `json:"available"`
	Message   string `json:"message"`
}
