package handler

import (
	"net/http"

	"herotech/internal/config"
	"herotech/internal/model"
	"herotech/internal/service"
	"herotech/pkg/util"

	"github.com/gin-gonic/gin"
)

// TechnologyHandler serves the public catalog
type TechnologyHandler struct {
	technologies *service.TechnologyService
}

func NewTechnologyHandler(technologies *service.TechnologyService) *TechnologyHandler {
	return &TechnologyHandler{technologies: technologies}
}

// List handles GET /all-technologies
func (h *TechnologyHandler) List(c *gin.Context) {
	w := util.ParseWindow(c.Query("skip"), c.Query("limit"), config.DefaultPageSize, config.MaxPageSize)

	page, err := h.technologies.List(c.Request.Context(), w)
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.NewErrorResponse("Internal server error", err.Error()))
		return
	}
	c.JSON(http.StatusOK, gin.H{"technologies": page})
}
