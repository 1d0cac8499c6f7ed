package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/must-coursehub/course-advisor/internal/adapter/api/dto"
	"github.com/must-coursehub/course-advisor/pkg/agent"
	"github.com/must-coursehub/course-advisor/pkg/logger"
)

// RecommendationController exposes the conversational recommendation
// endpoints.
type RecommendationController struct {
	service *agent.Service
	logger  logger.Logger
}

// NewRecommendationController creates a new recommendation controller
func NewRecommendationController(service *agent.Service, logger logger.Logger) *RecommendationController {
	return &RecommendationController{service: service, logger: logger}
}

// Chat godoc
// @Summary Conversational course recommendation
// @Description Processes one chat turn: classifies intent, queries the catalog and returns recommendations or a text reply. Send back updatedContext on the next turn to keep the conversation stateful.
// @Tags ai-recommendations
// @Accept json
// @Produce json
// @Param request body dto.ChatRequest true "Chat turn"
// @Success 200 {object} dto.ChatResponse
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /ai-recommendations/chat [post]
func (c *RecommendationController) Chat(ctx *gin.Context) {
	var req dto.ChatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid request body", err.Error()))
		return
	}

	contextMap := req.Context
	if req.ConversationID != "" {
		if contextMap == nil {
			contextMap = map[string]interface{}{}
		}
		contextMap["conversationId"] = req.ConversationID
	}

	result := c.service.Chat(ctx.Request.Context(), req.Message, contextMap, req.HistoryTurns())

	// degraded answers still return 200; the body's success flag and
	// error code tell the client what happened
	ctx.JSON(http.StatusOK, dto.ChatResponseFromResult(result))
}

// Status godoc
// @Summary AI service availability
// @Description Reports whether the recommendation assistant is configured and enabled
// @Tags ai-recommendations
// @Produce json
// @Success 200 {object} dto.StatusResponse
// @Router /ai-recommendations/status [get]
func (c *RecommendationController) Status(ctx *gin.Context) {
	resp := dto.StatusResponse{Available: c.service.Available()}
	if resp.Available {
		resp.Message = "AI推荐服务运行正常"
	} else {
		resp.Message = "AI服务未配置或未启用"
	}
	ctx.JSON(http.StatusOK, resp)
}
