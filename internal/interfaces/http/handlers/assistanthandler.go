package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"secdesk/internal/application/assistant"
	"secdesk/internal/shared/logger"
	"secdesk/internal/shared/utils"
)

type AssistantHandler struct {
	assistant *assistant.Assistant
	logger    logger.Interface
}

func NewAssistantHandler(a *assistant.Assistant, logger logger.Interface) *AssistantHandler {
	return &AssistantHandler{assistant: a, logger: logger}
}

// Ask handles POST /assistant
func (h *AssistantHandler) Ask(c *gin.Context) {
	var req AssistantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	reply := h.assistant.Respond(req.Query)

	replyHTML, err := h.assistant.RespondHTML(req.Query)
	if err != nil {
		h.logger.Warnw("failed to render assistant reply", "error", err)
		replyHTML = ""
	}

	utils.SuccessResponse(c, http.StatusOK, "", AssistantResponse{
		Reply:     reply,
		ReplyHTML: replyHTML,
	})
}
