package dto

import (
	"encoding/json"
	"time"

	"github.com/must-coursehub/course-advisor/internal/domain/conversation"
)

// CreateConversationRequest starts a new chat session
type CreateConversationRequest struct {
	Title string `json:"title"`
}

// UpdateConversationTitleRequest renames a session
type UpdateConversationTitleRequest struct {
	Title string `json:"title" binding:"required"`
}

// UpdateConversationContextRequest replaces the stored context blob
type UpdateConversationContextRequest struct {
	Context map[string]interface{} `json:"context" binding:"required"`
}

// ConversationResponse is the session representation
type ConversationResponse struct {
	ID        string                 `json:"id"`
	Title     string                 `json:"title"`
	Context   map[string]interface{} `json:"context,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt time.Time              `json:"updated_at"`
}

// ConversationResponseFromEntity maps a conversation onto the DTO
func ConversationResponseFromEntity(c conversation.Conversation) ConversationResponse {
	return ConversationResponse{
		ID:        c.ID.String(),
		Title:     c.Title,
		Context:   c.Context,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// CreateMessageRequest appends a message to a session
type CreateMessageRequest struct {
	Role        string          `json:"role" binding:"required,oneof=user ai"`
	Content     string          `json:"content" binding:"required"`
	MessageType string          `json:"message_type" binding:"omitempty,oneof=text recommendation"`
	Courses     json.RawMessage `json:"courses"`
}

// MessageResponseItem is one stored message
type MessageResponseItem struct {
	ID          string          `json:"id"`
	Role        string          `json:"role"`
	Content     string          `json:"content"`
	MessageType string          `json:"message_type"`
	Courses     json.RawMessage `json:"courses,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// MessageResponseFromEntity maps a message onto the DTO
func MessageResponseFromEntity(m conversation.Message) MessageResponseItem {
	return MessageResponseItem{
		ID:          m.ID.String(),
		Role:        m.Role,
		Content:     m.Content,
		MessageType: m.MessageType,
		Courses:     m.Courses,
		CreatedAt:   m.CreatedAt,
	}
}
