package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/must-coursehub/course-advisor/internal/adapter/api/dto"
	"github.com/must-coursehub/course-advisor/internal/domain/conversation"
	"github.com/must-coursehub/course-advisor/pkg/auth"
	"github.com/must-coursehub/course-advisor/pkg/logger"
)

// ConversationController manages persisted AI chat sessions. This is
// the caller-side store for the recommendation pipeline's context
// blob; the pipeline itself stays stateless.
type ConversationController struct {
	conversations conversation.Repository
	logger        logger.Logger
}

// NewConversationController creates a new conversation controller
func NewConversationController(conversations conversation.Repository, logger logger.Logger) *ConversationController {
	return &ConversationController{conversations: conversations, logger: logger}
}

// List godoc
// @Summary List the current user's conversations
// @Tags conversations
// @Produce json
// @Success 200 {array} dto.ConversationResponse
// @Security BearerAuth
// @Router /conversations [get]
func (c *ConversationController) List(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	conversations, err := c.conversations.FindByUser(ctx.Request.Context(), userID)
	if err != nil {
		c.logger.Error("Failed to list conversations", "user_id", userID, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to list conversations"))
		return
	}

	resp := make([]dto.ConversationResponse, 0, len(conversations))
	for _, conv := range conversations {
		resp = append(resp, dto.ConversationResponseFromEntity(conv))
	}
	ctx.JSON(http.StatusOK, resp)
}

// Create godoc
// @Summary Start a new conversation
// @Tags conversations
// @Accept json
// @Produce json
// @Param request body dto.CreateConversationRequest false "Optional title"
// @Success 201 {object} dto.ConversationResponse
// @Security BearerAuth
// @Router /conversations [post]
func (c *ConversationController) Create(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req dto.CreateConversationRequest
	_ = ctx.ShouldBindJSON(&req)

	conv := conversation.NewConversation(userID)
	if req.Title != "" {
		conv.Title = req.Title
	}

	if err := c.conversations.Create(ctx.Request.Context(), conv); err != nil {
		c.logger.Error("Failed to create conversation", "user_id", userID, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to create conversation"))
		return
	}
	ctx.JSON(http.StatusCreated, dto.ConversationResponseFromEntity(*conv))
}

// Get godoc
// @Summary Get one conversation with its messages
// @Tags conversations
// @Produce json
// @Param id path string true "Conversation ID"
// @Success 200 {object} object{conversation=dto.ConversationResponse,messages=[]dto.MessageResponseItem}
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /conversations/{id} [get]
func (c *ConversationController) Get(ctx *gin.Context) {
	conv, ok := c.ownedConversation(ctx)
	if !ok {
		return
	}

	messages, err := c.conversations.FindMessages(ctx.Request.Context(), conv.ID)
	if err != nil {
		c.logger.Error("Failed to list messages", "conversation_id", conv.ID, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to list messages"))
		return
	}

	msgResp := make([]dto.MessageResponseItem, 0, len(messages))
	for _, m := range messages {
		msgResp = append(msgResp, dto.MessageResponseFromEntity(m))
	}
	ctx.JSON(http.StatusOK, gin.H{
		"conversation": dto.ConversationResponseFromEntity(*conv),
		"messages":     msgResp,
	})
}

// Delete godoc
// @Summary Delete a conversation
// @Tags conversations
// @Produce json
// @Param id path string true "Conversation ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /conversations/{id} [delete]
func (c *ConversationController) Delete(ctx *gin.Context) {
	conv, ok := c.ownedConversation(ctx)
	if !ok {
		return
	}

	if err := c.conversations.Delete(ctx.Request.Context(), conv.ID); err != nil {
		if errors.Is(err, conversation.ErrConversationNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(err.Error()))
			return
		}
		c.logger.Error("Failed to delete conversation", "id", conv.ID, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to delete conversation"))
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "conversation deleted"})
}

// UpdateTitle godoc
// @Summary Rename a conversation
// @Tags conversations
// @Accept json
// @Produce json
// @Param id path string true "Conversation ID"
// @Param request body dto.UpdateConversationTitleRequest true "New title"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /conversations/{id}/title [put]
func (c *ConversationController) UpdateTitle(ctx *gin.Context) {
	conv, ok := c.ownedConversation(ctx)
	if !ok {
		return
	}

	var req dto.UpdateConversationTitleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid request body", err.Error()))
		return
	}

	if err := c.conversations.UpdateTitle(ctx.Request.Context(), conv.ID, req.Title); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to update title"))
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "title updated"})
}

// UpdateContext godoc
// @Summary Save the conversation's context blob
// @Description Stores the updatedContext returned by the chat endpoint so the session survives page reloads.
// @Tags conversations
// @Accept json
// @Produce json
// @Param id path string true "Conversation ID"
// @Param request body dto.UpdateConversationContextRequest true "Context blob"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /conversations/{id}/context [put]
func (c *ConversationController) UpdateContext(ctx *gin.Context) {
	conv, ok := c.ownedConversation(ctx)
	if !ok {
		return
	}

	var req dto.UpdateConversationContextRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid request body", err.Error()))
		return
	}

	if err := c.conversations.UpdateContext(ctx.Request.Context(), conv.ID, req.Context); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to update context"))
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "context updated"})
}

// AddMessage godoc
// @Summary Append a message to a conversation
// @Tags conversations
// @Accept json
// @Produce json
// @Param id path string true "Conversation ID"
// @Param request body dto.CreateMessageRequest true "Message"
// @Success 201 {object} dto.MessageResponseItem
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /conversations/{id}/messages [post]
func (c *ConversationController) AddMessage(ctx *gin.Context) {
	conv, ok := c.ownedConversation(ctx)
	if !ok {
		return
	}

	var req dto.CreateMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid request body", err.Error()))
		return
	}

	m := &conversation.Message{
		ConversationID: conv.ID,
		Role:           req.Role,
		Content:        req.Content,
		MessageType:    req.MessageType,
		Courses:        req.Courses,
	}
	if err := c.conversations.AddMessage(ctx.Request.Context(), m); err != nil {
		c.logger.Error("Failed to add message", "conversation_id", conv.ID, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to add message"))
		return
	}
	ctx.JSON(http.StatusCreated, dto.MessageResponseFromEntity(*m))
}

// ownedConversation loads the conversation from the path and verifies
// it belongs to the authenticated user.
func (c *ConversationController) ownedConversation(ctx *gin.Context) (*conversation.Conversation, bool) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return nil, false
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid conversation id"))
		return nil, false
	}

	conv, err := c.conversations.FindByID(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, conversation.ErrConversationNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(err.Error()))
			return nil, false
		}
		c.logger.Error("Failed to find conversation", "id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to find conversation"))
		return nil, false
	}
	if conv.UserID != userID {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(conversation.ErrConversationNotFound.Error()))
		return nil, false
	}
	return conv, true
}

func currentUserID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(auth.UserID(ctx))
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("invalid token subject"))
		return uuid.Nil, false
	}
	return id, true
}
