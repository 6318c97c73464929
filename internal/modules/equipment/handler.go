package equipment

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"equipshare/internal/domain"
	"equipshare/internal/middleware"
	"equipshare/internal/modules/permission"
	"equipshare/internal/pkg/response"
)

type Handler struct {
	service *Service
	hub     *Hub
}

func NewHandler(service *Service, hub *Hub) *Handler {
	return &Handler{service: service, hub: hub}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	eq := rg.Group("/equipment")
	{
		eq.GET("", h.List)
		eq.GET("/status/", h.ListByStatus)
		eq.GET("/type/", h.ListByType)
		eq.GET("/watch", h.Watch)
		eq.GET("/:id", h.Get)
		eq.POST("", h.Add)
		eq.PUT("", h.Update)
		eq.DELETE("", h.Remove)
	}
}

// List answers GET /api/equipment with a bare JSON array, the shape the
// client-side directory parses.
func (h *Handler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list equipment")
		return
	}
	c.JSON(http.StatusOK, items)
}

// ListByStatus answers GET /api/equipment/status/?status=0|1. The filter is
// applied server-side; the result shape is identical to List.
func (h *Handler) ListByStatus(c *gin.Context) {
	status, err := strconv.Atoi(c.DefaultQuery("status", "0"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "status must be an integer")
		return
	}

	items, listErr := h.service.ListByStatus(c.Request.Context(), status)
	if listErr != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list equipment")
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) ListByType(c *gin.Context) {
	items, err := h.service.ListByType(c.Request.Context(), c.Query("type"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list equipment")
		return
	}
	c.JSON(http.StatusOK, items)
}

// Get returns the item, or JSON null for an unknown id.
func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "id must be an integer")
		return
	}

	item, getErr := h.service.Get(c.Request.Context(), id)
	if getErr != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch equipment")
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *Handler) Add(c *gin.Context) {
	var e domain.Equipment
	if err := c.ShouldBindJSON(&e); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	created, err := h.service.Add(c.Request.Context(), domain.Role(middleware.Role(c)), e)
	if err != nil {
		h.writeServiceError(c, err, "Failed to add equipment")
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) Update(c *gin.Context) {
	var e domain.Equipment
	if err := c.ShouldBindJSON(&e); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	updated, err := h.service.Update(c.Request.Context(), domain.Role(middleware.Role(c)), e)
	if err != nil {
		h.writeServiceError(c, err, "Failed to update equipment")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Remove answers DELETE /api/equipment?equipment_id={id}. Deleting an absent
// item still succeeds.
func (h *Handler) Remove(c *gin.Context) {
	id, err := strconv.ParseInt(c.Query("equipment_id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "equipment_id must be an integer")
		return
	}

	if err := h.service.Remove(c.Request.Context(), domain.Role(middleware.Role(c)), id); err != nil {
		h.writeServiceError(c, err, "Failed to delete equipment")
		return
	}
	c.Status(http.StatusOK)
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Watch upgrades to a websocket and streams availability events until the
// client goes away.
func (h *Handler) Watch(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("equipment watch upgrade failed: %v", err)
		return
	}

	h.hub.Register(conn)

	// drain control frames; the first read error ends the subscription
	go func() {
		defer h.hub.Unregister(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func (h *Handler) writeServiceError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, permission.ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied")
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Name and type are required")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}
