package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"secdesk/internal/domain/incident"
	"secdesk/internal/shared/errors"
	"secdesk/internal/shared/logger"
	"secdesk/internal/shared/utils"
)

type IncidentHandler struct {
	incidents incident.Repository
	logger    logger.Interface
}

func NewIncidentHandler(incidents incident.Repository, logger logger.Interface) *IncidentHandler {
	return &IncidentHandler{incidents: incidents, logger: logger}
}

// Create handles POST /incidents
func (h *IncidentHandler) Create(c *gin.Context) {
	var req CreateIncidentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid create incident request", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	reporter := req.Reporter
	if reporter == "" {
		reporter = c.GetString("username")
	}

	inc, err := incident.NewIncident(
		sanitizeText(req.Category),
		incident.Severity(req.Severity),
		sanitizeText(req.Description),
		reporter,
	)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.incidents.Create(c.Request.Context(), inc); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, incidentToResponse(inc), "incident created")
}

// List handles GET /incidents
func (h *IncidentHandler) List(c *gin.Context) {
	incidents, err := h.incidents.List(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	resp := make([]IncidentResponse, 0, len(incidents))
	for _, inc := range incidents {
		resp = append(resp, incidentToResponse(inc))
	}
	utils.SuccessResponse(c, http.StatusOK, "", resp)
}

// UpdateStatus handles PUT /incidents/:id/status
func (h *IncidentHandler) UpdateStatus(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateIncidentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	inc, err := h.incidents.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := inc.ChangeStatus(incident.Status(req.Status)); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.incidents.Update(c.Request.Context(), inc); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "status updated", incidentToResponse(inc))
}

// Delete handles DELETE /incidents/:id
func (h *IncidentHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.incidents.Delete(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "incident deleted", nil)
}

func incidentToResponse(inc *incident.Incident) IncidentResponse {
	return IncidentResponse{
		ID:          inc.ID(),
		Category:    inc.Category(),
		Severity:    string(inc.Severity()),
		Status:      string(inc.Status()),
		Description: inc.Description(),
		Reporter:    inc.Reporter(),
	}
}

func parseIDParam(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid id parameter")
	}
	return uint(id), nil
}
