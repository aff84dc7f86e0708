// Package handlers contains the gin HTTP handlers. This layer owns request
// parsing, sessions (JWT), and response shaping; all business rules live in
// the application and domain layers.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appauth "secdesk/internal/application/auth"
	infraauth "secdesk/internal/infrastructure/auth"
	"secdesk/internal/shared/authorization"
	"secdesk/internal/shared/logger"
	"secdesk/internal/shared/utils"
)

type AuthHandler struct {
	registerUC *appauth.RegisterUseCase
	loginUC    *appauth.LoginUseCase
	jwtService *infraauth.JWTService
	logger     logger.Interface
}

func NewAuthHandler(
	registerUC *appauth.RegisterUseCase,
	loginUC *appauth.LoginUseCase,
	jwtService *infraauth.JWTService,
	logger logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		registerUC: registerUC,
		loginUC:    loginUC,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid register request", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd := appauth.RegisterCommand{
		Username: req.Username,
		Password: req.Password,
		Role:     authorization.UserRole(req.Role),
	}

	newUser, err := h.registerUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, UserResponse{
		Username: newUser.Username(),
		Role:     newUser.Role().String(),
	}, "user registered successfully")
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	identity, err := h.loginUC.Execute(c.Request.Context(), appauth.LoginCommand{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	token, err := h.jwtService.Generate(identity.Username, identity.Role)
	if err != nil {
		h.logger.Errorw("failed to issue token", "error", err)
		utils.ErrorResponse(c, http.StatusInternalServerError, "failed to issue token")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", LoginResponse{
		Username: identity.Username,
		Role:     identity.Role.String(),
		Token:    token,
	})
}
