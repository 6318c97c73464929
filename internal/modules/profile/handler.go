package profile

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"equipshare/internal/domain"
	"equipshare/internal/middleware"
	"equipshare/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/profile", h.Get)
	rg.PUT("/profile", h.Put)
}

func (h *Handler) Get(c *gin.Context) {
	p, err := h.service.Get(c.Request.Context(), middleware.PID(c))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load profile")
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) Put(c *gin.Context) {
	var p domain.Profile
	if err := c.ShouldBindJSON(&p); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	persisted, err := h.service.Put(c.Request.Context(), middleware.PID(c), p)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to save profile")
		return
	}
	c.JSON(http.StatusOK, persisted)
}
