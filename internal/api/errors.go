package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"boldserve-backend/internal/auth"
	"boldserve-backend/internal/cart"
	"boldserve-backend/internal/user"
)

type errorMapping struct {
	target  error
	status  int
	message string
}

// Checked in order; the first errors.Is match wins. Catalog errors are the
// same values as their cart aliases.
var errorMappings = []errorMapping{
	{cart.ErrUnknownCategory, http.StatusBadRequest, "Invalid category"},
	{cart.ErrInvalidQuantity, http.StatusBadRequest, "Quantity must be at least 1"},
	{cart.ErrProductNotFound, http.StatusNotFound, "Product not found"},
	{cart.ErrCartNotFound, http.StatusNotFound, "Cart not found"},
	{cart.ErrItemNotFound, http.StatusNotFound, "Item not found in cart"},
	{auth.ErrPasswordTooShort, http.StatusBadRequest, "Password must be at least 8 characters"},
	{user.ErrInvalidInput, http.StatusBadRequest, "Name and email are required"},
	{user.ErrEmailTaken, http.StatusConflict, "Email already registered"},
	{user.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid email or password"},
	{user.ErrUserNotFound, http.StatusNotFound, "User not found"},
}

// fail writes the response for err. Anything unmapped is a persistence or
// programming failure: it is logged and answered with a generic 500, with
// the detail attached only in development.
func (h *Handlers) fail(c *gin.Context, op string, err error) {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			c.JSON(m.status, gin.H{"message": m.message})
			return
		}
	}

	h.log.Error(op+" failed",
		zap.Error(err),
		zap.String("request_id", c.GetString(requestIDKey)))
	body := gin.H{"message": "Server error"}
	if h.dev {
		body["error"] = err.Error()
	}
	c.JSON(http.StatusInternalServerError, body)
}

func badRequest(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
}
