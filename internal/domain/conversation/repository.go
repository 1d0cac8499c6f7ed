package conversation

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrConversationNotFound = errors.New("conversation not found")

// Repository defines conversation persistence operations. Delete is a
// soft delete; deleted conversations disappear from listings but their
// rows remain.
type Repository interface {
	Create(ctx context.Context, c *Conversation) error
	FindByID(ctx context.Context, id uuid.UUID) (*Conversation, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]Conversation, error)
	UpdateContext(ctx context.Context, id uuid.UUID, contextMap map[string]interface{}) error
	UpdateTitle(ctx context.Context, id uuid.UUID, title string) error
	Delete(ctx context.Context, id uuid.UUID) error

	AddMessage(ctx context.Context, m *Message) error
	FindMessages(ctx context.Context, conversationID uuid.UUID) ([]Message, error)
}
