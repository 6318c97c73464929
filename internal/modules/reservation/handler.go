package reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"equipshare/internal/domain"
	"equipshare/internal/middleware"
	"equipshare/internal/modules/permission"
	"equipshare/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	res := rg.Group("/reservation")
	{
		res.GET("", h.List)
		res.GET("/type/", h.ListByType)
		res.GET("/user/:pid", h.ListByUser)
		res.GET("/:id", h.Get)
		res.POST("", h.Create)
		res.DELETE("/:id", h.Remove)
	}
}

func (h *Handler) List(c *gin.Context) {
	reservations, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list reservations")
		return
	}
	c.JSON(http.StatusOK, reservations)
}

func (h *Handler) ListByType(c *gin.Context) {
	role := domain.Role(middleware.Role(c))
	reservations, err := h.service.ListByType(c.Request.Context(), role, c.Query("type"))
	if err != nil {
		if errors.Is(err, permission.ErrForbidden) {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list reservations")
		return
	}
	c.JSON(http.StatusOK, reservations)
}

func (h *Handler) ListByUser(c *gin.Context) {
	pid, err := strconv.ParseInt(c.Param("pid"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "pid must be an integer")
		return
	}

	reservations, listErr := h.service.ListByUser(c.Request.Context(), pid)
	if listErr != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list reservations")
		return
	}
	c.JSON(http.StatusOK, reservations)
}

func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "id must be an integer")
		return
	}

	res, getErr := h.service.Get(c.Request.Context(), id)
	if getErr != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load reservation")
		return
	}
	if res == nil {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Reservation not found")
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) Create(c *gin.Context) {
	var res domain.Reservation
	if err := c.ShouldBindJSON(&res); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	created, err := h.service.Create(c.Request.Context(), res)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidUser):
			response.Error(c, http.StatusBadRequest, "INVALID_USER", "Reservation user must be persisted first")
		case errors.Is(err, ErrEquipmentNotFound):
			response.Error(c, http.StatusNotFound, "EQUIPMENT_NOT_FOUND", "Reserved equipment does not exist")
		case errors.Is(err, ErrAlreadyReserved):
			response.Error(c, http.StatusConflict, "RESERVATION_CONFLICT", "Equipment already has an active reservation")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create reservation")
		}
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *Handler) Remove(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "id must be an integer")
		return
	}

	if err := h.service.Remove(c.Request.Context(), id); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete reservation")
		return
	}
	c.Status(http.StatusOK)
}
