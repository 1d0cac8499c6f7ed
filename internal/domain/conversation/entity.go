package conversation

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// DefaultTitle is given to conversations created without a title
const DefaultTitle = "新对话"

// Message roles and types
const (
	RoleUser = "user"
	RoleAI   = "ai"

	TypeText           = "text"
	TypeRecommendation = "recommendation"
)

// Conversation is one AI chat session. Context carries the cumulative
// slot/recommendation blob the recommendation pipeline round-trips.
type Conversation struct {
	ID        uuid.UUID              `json:"id"`
	UserID    uuid.UUID              `json:"user_id"`
	Title     string                 `json:"title"`
	Context   map[string]interface{} `json:"context,omitempty"`
	Deleted   bool                   `json:"-"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt time.Time              `json:"updated_at"`
}

// NewConversation creates an empty session for a user
func NewConversation(userID uuid.UUID) *Conversation {
	return &Conversation{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     DefaultTitle,
		Context:   map[string]interface{}{},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

// Message is one turn of a conversation. Courses holds the serialized
// recommendation payload for recommendation-type messages.
type Message struct {
	ID             uuid.UUID       `json:"id"`
	ConversationID uuid.UUID       `json:"conversation_id"`
	Role           string          `json:"role"`
	Content        string          `json:"content"`
	MessageType    string          `json:"message_type"`
	Courses        json.RawMessage `json:"courses,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}
