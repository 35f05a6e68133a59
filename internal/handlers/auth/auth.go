// internal/handlers/auth/auth.go
package auth

import (
	"net/http"

	"secad-service/internal/pkg/auth"
	"secad-service/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type AuthHandler struct {
	tokens       *auth.Manager
	user         string
	passwordHash string
	logger       *zap.Logger
}

// NewAuthHandler wires the single-operator login. The credential is a bcrypt
// hash from configuration; no user table exists.
func NewAuthHandler(tokens *auth.Manager, user, passwordHash string, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		tokens:       tokens,
		user:         user,
		passwordHash: passwordHash,
		logger:       logger,
	}
}

// Login verifies the operator credential and issues a session token
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request", err)
		return
	}

	if req.Username != h.user ||
		bcrypt.CompareHashAndPassword([]byte(h.passwordHash), []byte(req.Password)) != nil {
		h.logger.Warn("failed login attempt",
			zap.String("username", req.Username),
			zap.String("ip", c.ClientIP()),
		)
		response.Unauthorized(c, "invalid credentials")
		return
	}

	token, err := h.tokens.Issue(req.Username)
	if err != nil {
		h.logger.Error("failed to issue token", zap.Error(err))
		response.Error(c, http.StatusInternalServerError, "failed to issue token", nil)
		return
	}

	response.Success(c, http.StatusOK, "login successful", gin.H{"token": token})
}
