package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"boldserve-backend/internal/auth"
	"boldserve-backend/internal/user"
)

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
	Password string `json:"password" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *Handlers) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}
	u, err := h.users.Register(c.Request.Context(), user.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
	})
	if err != nil {
		h.fail(c, "register", err)
		return
	}
	c.JSON(http.StatusCreated, u)
}

func (h *Handlers) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}
	u, token, err := h.users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.fail(c, "login", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": u, "token": token})
}

func (h *Handlers) getProfile(c *gin.Context) {
	u, err := h.users.Profile(c.Request.Context(), auth.UserID(c))
	if err != nil {
		h.fail(c, "profile", err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (h *Handlers) countUsers(c *gin.Context) {
	n, err := h.users.CountCustomers(c.Request.Context())
	if err != nil {
		h.fail(c, "count users", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "count": n})
}

func (h *Handlers) listUsers(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		h.fail(c, "list users", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": users})
}

// verifyToken answers for any token RequireUser accepted.
func (h *Handlers) verifyToken(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"valid":   true,
		"userId":  auth.UserID(c),
		"isAdmin": auth.IsAdmin(c),
	})
}
