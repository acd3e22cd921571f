package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rmacedo/registros-api/internal/jobs"
	"github.com/rmacedo/registros-api/internal/services"
)

type HealthHandler struct {
	worker *jobs.Worker
}

func NewHealthHandler(worker *jobs.Worker) *HealthHandler {
	return &HealthHandler{worker: worker}
}

// @Summary Health Check
// @Description Checks if the API is running, with background worker statistics
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *HealthHandler) Index(c *gin.Context) {
	resp := gin.H{
		"status":  "ok",
		"service": "registros-api",
		"version": "1.0.0",
	}
	if h.worker != nil {
		resp["worker"] = h.worker.GetStats()
	}
	c.JSON(http.StatusOK, resp)
}

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// @Summary Login
// @Description Authenticates a user and returns a bearer token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login Credentials"
// @Success 200 {object} Envelope
// @Failure 401 {object} Envelope
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, services.NewValidationError(err))
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "Login efetuado com sucesso", result)
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	FullName string `json:"full_name" binding:"required"`
}

// @Summary Register
// @Description Creates a user account
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "User Data"
// @Success 201 {object} Envelope
// @Failure 400 {object} Envelope
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, services.NewValidationError(err))
		return
	}

	user, err := h.authService.Register(c.Request.Context(), req.Email, req.Password, req.FullName)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusCreated, "Usuário cadastrado com sucesso", user.ToResponse())
}
