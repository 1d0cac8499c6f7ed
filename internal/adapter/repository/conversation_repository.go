package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/must-coursehub/course-advisor/internal/domain/conversation"
	"github.com/must-coursehub/course-advisor/pkg/logger"
)

// ConversationRepository is the pgx implementation of
// conversation.Repository. The context blob is stored as jsonb.
type ConversationRepository struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

// NewConversationRepository creates a new conversation repository
func NewConversationRepository(db *pgxpool.Pool, logger logger.Logger) conversation.Repository {
	return &ConversationRepository{db: db, logger: logger}
}

// Create inserts a new conversation
func (r *ConversationRepository) Create(ctx context.Context, c *conversation.Conversation) error {
	contextJSON, err := json.Marshal(c.Context)
	if err != nil {
		return fmt.Errorf("failed to marshal context: %w", err)
	}

	query := `
		INSERT INTO ai_conversations (id, user_id, title, context, deleted, created_at, updated_at)
		VALUES ($1, $2, $3, $4, false, NOW(), NOW())
		RETURNING created_at, updated_at`

	err = r.db.QueryRow(ctx, query, c.ID, c.UserID, c.Title, contextJSON).
		Scan(&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		r.logger.Error("Failed to create conversation", "user_id", c.UserID, "error", err)
		return fmt.Errorf("failed to create conversation: %w", err)
	}
	return nil
}

// FindByID returns one conversation, including soft-deleted ones
func (r *ConversationRepository) FindByID(ctx context.Context, id uuid.UUID) (*conversation.Conversation, error) {
	query := `
		SELECT id, user_id, title, context, deleted, created_at, updated_at
		FROM ai_conversations WHERE id = $1 AND deleted = false`

	var c conversation.Conversation
	var contextJSON []byte
	err := r.db.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.UserID, &c.Title, &contextJSON, &c.Deleted, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, conversation.ErrConversationNotFound
		}
		return nil, fmt.Errorf("failed to find conversation: %w", err)
	}
	if len(contextJSON) > 0 {
		if err := json.Unmarshal(contextJSON, &c.Context); err != nil {
			r.logger.Warn("Conversation context blob is unreadable, resetting", "id", id, "error", err)
			c.Context = map[string]interface{}{}
		}
	}
	return &c, nil
}

// FindByUser returns a user's conversations, newest first
func (r *ConversationRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]conversation.Conversation, error) {
	query := `
		SELECT id, user_id, title, context, deleted, created_at, updated_at
		FROM ai_conversations WHERE user_id = $1 AND deleted = false
		ORDER BY updated_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversations: %w", err)
	}
	defer rows.Close()

	var conversations []conversation.Conversation
	for rows.Next() {
		var c conversation.Conversation
		var contextJSON []byte
		if err := rows.Scan(&c.ID, &c.UserID, &c.Title, &contextJSON, &c.Deleted, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan conversation: %w", err)
		}
		if len(contextJSON) > 0 {
			_ = json.Unmarshal(contextJSON, &c.Context)
		}
		conversations = append(conversations, c)
	}
	return conversations, rows.Err()
}

// UpdateContext replaces the stored context blob
func (r *ConversationRepository) UpdateContext(ctx context.Context, id uuid.UUID, contextMap map[string]interface{}) error {
	contextJSON, err := json.Marshal(contextMap)
	if err != nil {
		return fmt.Errorf("failed to marshal context: %w", err)
	}

	tag, err := r.db.Exec(ctx,
		"UPDATE ai_conversations SET context = $1, updated_at = NOW() WHERE id = $2 AND deleted = false",
		contextJSON, id)
	if err != nil {
		return fmt.Errorf("failed to update conversation context: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return conversation.ErrConversationNotFound
	}
	return nil
}

// UpdateTitle renames a conversation
func (r *ConversationRepository) UpdateTitle(ctx context.Context, id uuid.UUID, title string) error {
	tag, err := r.db.Exec(ctx,
		"UPDATE ai_conversations SET title = $1, updated_at = NOW() WHERE id = $2 AND deleted = false",
		title, id)
	if err != nil {
		return fmt.Errorf("failed to update conversation title: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return conversation.ErrConversationNotFound
	}
	return nil
}

// Delete soft-deletes a conversation
func (r *ConversationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx,
		"UPDATE ai_conversations SET deleted = true, updated_at = NOW() WHERE id = $1 AND deleted = false", id)
	if err != nil {
		return fmt.Errorf("failed to delete conversation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return conversation.ErrConversationNotFound
	}
	return nil
}

// AddMessage appends one message to a conversation
func (r *ConversationRepository) AddMessage(ctx context.Context, m *conversation.Message) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.MessageType == "" {
		m.MessageType = conversation.TypeText
	}

	query := `
		INSERT INTO ai_messages (id, conversation_id, role, content, message_type, courses, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING created_at`

	var courses interface{}
	if len(m.Courses) > 0 {
		courses = []byte(m.Courses)
	}
	err := r.db.QueryRow(ctx, query, m.ID, m.ConversationID, m.Role, m.Content, m.MessageType, courses).
		Scan(&m.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to add message: %w", err)
	}

	// keep the conversation bumped to the top of listings
	_, err = r.db.Exec(ctx, "UPDATE ai_conversations SET updated_at = NOW() WHERE id = $1", m.ConversationID)
	if err != nil {
		r.logger.Warn("Failed to bump conversation timestamp", "conversation_id", m.ConversationID, "error", err)
	}
	return nil
}

// FindMessages returns a conversation's messages in order
func (r *ConversationRepository) FindMessages(ctx context.Context, conversationID uuid.UUID) ([]conversation.Message, error) {
	query := `
		SELECT id, conversation_id, role, content, message_type, courses, created_at
		FROM ai_messages WHERE conversation_id = $1
		ORDER BY created_at`

	rows, err := r.db.Query(ctx, query, conversationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	defer rows.Close()

	var messages []conversation.Message
	for rows.Next() {
		var m conversation.Message
		var courses []byte
		if err := rows.Scan(&m.ID, &m.ConversationID, &m.Role, &m.Content, &m.MessageType, &courses, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		m.Courses = courses
		messages = append(messages, m)
	}
	return messages, rows.Err()
}
