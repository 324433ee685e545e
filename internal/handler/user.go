package handler

import (
	"errors"
	"net/http"

	"herotech/internal/config"
	"herotech/internal/model"
	"herotech/internal/service"
	"herotech/pkg/util"

	"github.com/gin-gonic/gin"
)

// UserHandler handles registration and user listing
type UserHandler struct {
	users *service.UserService
}

func NewUserHandler(users *service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// Register handles POST /users. A repeat registration is not a conflict:
// both outcomes answer 200, the repeat with the legacy message.
func (h *UserHandler) Register(c *gin.Context) {
	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("Invalid JSON body", err.Error()))
		return
	}

	result, err := h.users.Register(c.Request.Context(), payload)
	if err != nil {
		if errors.Is(err, service.ErrInvalidEmail) {
			c.JSON(http.StatusBadRequest, model.NewErrorResponse("Invalid email format", ""))
			return
		}
		c.JSON(http.StatusInternalServerError, model.NewErrorResponse("Internal server error", err.Error()))
		return
	}

	if result.AlreadyExists {
		c.JSON(http.StatusOK, gin.H{"message": "user already exists"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"acknowledged": true, "insertedId": result.User.ID.Hex()})
}

// List handles GET /all-users
func (h *UserHandler) List(c *gin.Context) {
	w := util.ParseWindow(c.Query("skip"), c.Query("limit"), config.DefaultPageSize, config.MaxPageSize)

	page, err := h.users.List(c.Request.Context(), w)
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.NewErrorResponse("Internal server error", err.Error()))
		return
	}
	c.JSON(http.StatusOK, page)
}
