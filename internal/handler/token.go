package handler

import (
	"net/http"

	"herotech/internal/model"
	"herotech/internal/service"

	"github.com/gin-gonic/gin"
)

// TokenHandler issues bearer tokens for the cart routes
type TokenHandler struct {
	tokens *service.TokenService
}

func NewTokenHandler(tokens *service.TokenService) *TokenHandler {
	return &TokenHandler{tokens: tokens}
}

// Issue handles POST /jwt and POST /generate-jwt. The posted body becomes
// the claims payload as-is; ownership checks downstream expect it to carry
// an email.
func (h *TokenHandler) Issue(c *gin.Context) {
	var claims map[string]any
	if err := c.ShouldBindJSON(&claims); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("Invalid JSON body", err.Error()))
		return
	}

	token, err := h.tokens.Issue(claims)
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.NewErrorResponse("Internal server error", err.Error()))
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
