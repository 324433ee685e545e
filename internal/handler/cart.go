package handler

import (
	"errors"
	"net/http"

	"herotech/internal/config"
	"herotech/internal/middleware"
	"herotech/internal/model"
	"herotech/internal/service"
	"herotech/pkg/util"

	"github.com/gin-gonic/gin"
)

// CartHandler handles cart writes, owner reads, checkout and the global
// order listing. Every route here sits behind the auth middleware.
type CartHandler struct {
	carts *service.CartService
}

func NewCartHandler(carts *service.CartService) *CartHandler {
	return &CartHandler{carts: carts}
}

// callerEmail returns the email claim the auth middleware attached.
func callerEmail(c *gin.Context) (string, bool) {
	v, exists := c.Get(middleware.ContextEmailKey)
	if !exists {
		return "", false
	}
	email, ok := v.(string)
	return email, ok && email != ""
}

// AddToCart handles POST /add-to-cart
func (h *CartHandler) AddToCart(c *gin.Context) {
	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("Invalid JSON body", err.Error()))
		return
	}

	item, err := h.carts.AddItem(c.Request.Context(), payload)
	if err != nil {
		if errors.Is(err, service.ErrMissingCustomer) {
			c.JSON(http.StatusForbidden, gin.H{"error": "no info of the customer found!"})
			return
		}
		c.JSON(http.StatusInternalServerError, model.NewErrorResponse("Internal server error", err.Error()))
		return
	}

	c.JSON(http.StatusOK, gin.H{"acknowledged": true, "insertedId": item.ID.Hex()})
}

// MyCart handles GET /my-cart?email=...
// The email query is required and must match the token's email claim.
func (h *CartHandler) MyCart(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusForbidden, gin.H{"error": "no info of the customer found!"})
		return
	}

	claimed, ok := callerEmail(c)
	if !ok || claimed != email {
		c.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized access!"})
		return
	}

	w := util.ParseWindow(c.Query("skip"), c.Query("limit"), config.DefaultPageSize, config.MaxPageSize)
	page, err := h.carts.MyCart(c.Request.Context(), email, w)
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.NewErrorResponse("Internal server error", err.Error()))
		return
	}
	c.JSON(http.StatusOK, page)
}

// RemoveFromCart handles DELETE /my-cart/:id. Only the item's owner may
// remove it; an id that matches nothing simply deletes nothing.
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	id := c.Param("id")
	if _, err := util.ParseObjectID(id); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("Invalid item ID format", err.Error()))
		return
	}

	email, ok := callerEmail(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": "no info of the customer found!"})
		return
	}

	deleted, err := h.carts.RemoveItem(c.Request.Context(), email, id)
	if err != nil {
		if errors.Is(err, service.ErrNotCartOwner) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized access!"})
			return
		}
		c.JSON(http.StatusInternalServerError, model.NewErrorResponse("Internal server error", err.Error()))
		return
	}
	c.JSON(http.StatusOK, gin.H{"acknowledged": true, "deletedCount": deleted})
}

// Checkout handles POST /checkout: the caller's in-cart items become orders.
func (h *CartHandler) Checkout(c *gin.Context) {
	email, ok := callerEmail(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": "no info of the customer found!"})
		return
	}

	moved, err := h.carts.Checkout(c.Request.Context(), email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.NewErrorResponse("Internal server error", err.Error()))
		return
	}
	c.JSON(http.StatusOK, model.NewSuccessResponse("Checkout complete", gin.H{"modifiedCount": moved}))
}

// Orders handles GET /all-orders
func (h *CartHandler) Orders(c *gin.Context) {
	w := util.ParseWindow(c.Query("skip"), c.Query("limit"), config.DefaultPageSize, config.MaxPageSize)

	page, err := h.carts.Orders(c.Request.Context(), w)
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.NewErrorResponse("Internal server error", err.Error()))
		return
	}
	c.JSON(http.StatusOK, page)
}
