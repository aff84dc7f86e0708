package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"secdesk/internal/domain/user"
	"secdesk/internal/shared/authorization"
	"secdesk/internal/shared/errors"
	"secdesk/internal/shared/logger"
	"secdesk/internal/shared/utils"
)

type UserHandler struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewUserHandler(userRepo user.Repository, logger logger.Interface) *UserHandler {
	return &UserHandler{userRepo: userRepo, logger: logger}
}

// ListUsers handles GET /admin/users
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userRepo.List(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	resp := make([]UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, UserResponse{
			Username: u.Username(),
			Role:     u.Role().String(),
		})
	}

	utils.SuccessResponse(c, http.StatusOK, "", resp)
}

// UpdateRole handles PUT /admin/users/:username/role
func (h *UserHandler) UpdateRole(c *gin.Context) {
	username := c.Param("username")

	var req UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	exists, err := h.userRepo.ExistsByUsername(c.Request.Context(), username)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if !exists {
		utils.ErrorResponseWithError(c, errors.NewNotFoundError("user not found"))
		return
	}

	role := authorization.ParseUserRole(req.Role)
	if err := h.userRepo.UpdateRole(c.Request.Context(), username, role); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "role updated", UserResponse{
		Username: username,
		Role:     role.String(),
	})
}
