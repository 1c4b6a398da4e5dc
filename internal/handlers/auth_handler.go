package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"storefront/internal/models"
	"storefront/internal/repository"
	"storefront/internal/session"
)

type AuthHandler struct {
	users    *repository.UserRepository
	sessions *session.Store
}

func NewAuthHandler(users *repository.UserRepository, sessions *session.Store) *AuthHandler {
	return &AuthHandler{
		users:    users,
		sessions: sessions,
	}
}

type registerRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	Address  string `json:"address"`
	Password string `json:"password" binding:"required,min=8"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// POST /v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "could not register user"})
		return
	}

	user := &models.User{
		UserID:       uuid.NewString(),
		Email:        req.Email,
		Name:         req.Name,
		Address:      req.Address,
		Role:         models.RoleCustomer,
		PasswordHash: string(hash),
	}

	if err := h.users.Create(c.Request.Context(), user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: "email already registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "could not register user"})
		return
	}

	c.JSON(http.StatusCreated, user)
}

// POST /v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.users.FindByEmail(c.Request.Context(), req.Email)
	if err != nil {
		// Credenciales inválidas sin distinguir usuario inexistente
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid credentials"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid credentials"})
		return
	}

	token := h.sessions.Create(user.UserID, user.Role)
	c.SetCookie(sessionCookie, token, 0, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{
		"session_token": token,
		"user":          user,
	})
}

// POST /v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if token := c.GetString(ctxSessionToken); token != "" {
		h.sessions.Destroy(token)
	}
	c.SetCookie(sessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, SuccessResponse{Message: "logged out"})
}
