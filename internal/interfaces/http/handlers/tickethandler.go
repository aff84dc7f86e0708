package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"secdesk/internal/domain/ticket"
	"secdesk/internal/shared/logger"
	"secdesk/internal/shared/utils"
)

type TicketHandler struct {
	tickets ticket.Repository
	logger  logger.Interface
}

func NewTicketHandler(tickets ticket.Repository, logger logger.Interface) *TicketHandler {
	return &TicketHandler{tickets: tickets, logger: logger}
}

// Create handles POST /tickets
func (h *TicketHandler) Create(c *gin.Context) {
	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid create ticket request", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	t, err := ticket.NewTicket(
		sanitizeText(req.Subject),
		sanitizeText(req.Issue),
		ticket.Priority(req.Priority),
		c.GetString("username"),
		req.AssignedTo,
	)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.tickets.Create(c.Request.Context(), t); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, ticketToResponse(t), "ticket created")
}

// List handles GET /tickets
func (h *TicketHandler) List(c *gin.Context) {
	tickets, err := h.tickets.List(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	resp := make([]TicketResponse, 0, len(tickets))
	for _, t := range tickets {
		resp = append(resp, ticketToResponse(t))
	}
	utils.SuccessResponse(c, http.StatusOK, "", resp)
}

// Update handles PUT /tickets/:id
func (h *TicketHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	t, err := h.tickets.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if req.Priority != "" {
		if err := t.ChangePriority(ticket.Priority(req.Priority)); err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
	}
	if req.AssignedTo != "" {
		t.Assign(req.AssignedTo)
	}
	if req.Status != "" {
		if err := t.ChangeStatus(ticket.Status(req.Status)); err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
	}

	if err := h.tickets.Update(c.Request.Context(), t); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "ticket updated", ticketToResponse(t))
}

// Delete handles DELETE /tickets/:id
func (h *TicketHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.tickets.Delete(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "ticket deleted", nil)
}

func ticketToResponse(t *ticket.Ticket) TicketResponse {
	resp := TicketResponse{
		ID:         t.ID(),
		Subject:    t.Subject(),
		Issue:      t.Issue(),
		Priority:   string(t.Priority()),
		Status:     string(t.Status()),
		CreatedBy:  t.CreatedBy(),
		AssignedTo: t.AssignedTo(),
		CreatedOn:  t.CreatedAt().Format(time.RFC3339),
	}
	if resolved := t.ResolvedAt(); resolved != nil {
		s := resolved.Format(time.RFC3339)
		resp.ResolvedOn = &s
	}
	return resp
}
