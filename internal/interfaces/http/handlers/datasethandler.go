package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"secdesk/internal/domain/dataset"
	"secdesk/internal/shared/logger"
	"secdesk/internal/shared/utils"
)

type DatasetHandler struct {
	datasets dataset.Repository
	logger   logger.Interface
}

func NewDatasetHandler(datasets dataset.Repository, logger logger.Interface) *DatasetHandler {
	return &DatasetHandler{datasets: datasets, logger: logger}
}

// Create handles POST /datasets
func (h *DatasetHandler) Create(c *gin.Context) {
	var req CreateDatasetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	d, err := dataset.NewDataset(sanitizeText(req.Name), req.Owner)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.datasets.Create(c.Request.Context(), d); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, datasetToResponse(d), "dataset created")
}

// List handles GET /datasets
func (h *DatasetHandler) List(c *gin.Context) {
	datasets, err := h.datasets.List(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	resp := make([]DatasetResponse, 0, len(datasets))
	for _, d := range datasets {
		resp = append(resp, datasetToResponse(d))
	}
	utils.SuccessResponse(c, http.StatusOK, "", resp)
}

// Update handles PUT /datasets/:id
func (h *DatasetHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateDatasetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	d, err := h.datasets.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if req.Name != "" {
		if err := d.Rename(sanitizeText(req.Name)); err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
	}
	if req.Owner != "" {
		if err := d.TransferOwnership(req.Owner); err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
	}

	if err := h.datasets.Update(c.Request.Context(), d); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "dataset updated", datasetToResponse(d))
}

// Delete handles DELETE /datasets/:id
func (h *DatasetHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.datasets.Delete(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "dataset deleted", nil)
}

func datasetToResponse(d *dataset.Dataset) DatasetResponse {
	return DatasetResponse{
		ID:    d.ID(),
		Name:  d.Name(),
		Owner: d.Owner(),
	}
}
