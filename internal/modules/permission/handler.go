package permission

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
	rg.GET("/permission/check", h.Check)
}

// Check answers GET /api/permission/check?action=A&scope=S with a bare JSON
// boolean. UIs query it once per rendered action.
func (h *Handler) Check(c *gin.Context) {
	action := c.Query("action")
	scope := c.Query("scope")
	if action == "" || scope == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "action and scope are required")
		return
	}

	role := domain.Role(middleware.Role(c))
	ok, err := h.service.Check(c.Request.Context(), role, action, scope)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to evaluate permission")
		return
	}

	c.JSON(http.StatusOK, ok)
}
