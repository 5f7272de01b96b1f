package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"boldserve-backend/internal/auth"
)

type addItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity"`
	Category  string `json:"category"`
}

type updateItemRequest struct {
	Quantity int    `json:"quantity"`
	Category string `json:"category"`
}

func (h *Handlers) getCartItems(c *gin.Context) {
	items, err := h.carts.Items(c.Request.Context(), auth.UserID(c))
	if err != nil {
		h.fail(c, "cart fetch", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *Handlers) addCartItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}
	err := h.carts.AddItem(c.Request.Context(), auth.UserID(c), req.ProductID, req.Quantity, req.Category)
	if err != nil {
		h.fail(c, "add to cart", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item added to cart"})
}

func (h *Handlers) updateCartItem(c *gin.Context) {
	var req updateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}
	err := h.carts.UpdateQuantity(c.Request.Context(), auth.UserID(c), c.Param("itemId"), req.Category, req.Quantity)
	if err != nil {
		h.fail(c, "update cart", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cart updated"})
}

func (h *Handlers) removeCartItem(c *gin.Context) {
	if err := h.carts.RemoveItem(c.Request.Context(), auth.UserID(c), c.Param("itemId")); err != nil {
		h.fail(c, "remove from cart", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item removed from cart"})
}

func (h *Handlers) getCartSummary(c *gin.Context) {
	summary, err := h.carts.Summary(c.Request.Context(), auth.UserID(c))
	if err != nil {
		h.fail(c, "cart summary", err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
