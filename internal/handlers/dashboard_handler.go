package handler

import (
	"net/http"

	"invoice-dashboard/internal/services/dashboard"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	service *dashboard.Service
}

func NewDashboardHandler(s *dashboard.Service) *DashboardHandler {
	return &DashboardHandler{service: s}
}

// Overview renders the dashboard home page.
func (h *DashboardHandler) Overview(c *gin.Context) {
	overview, err := h.service.Overview(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"Title":    "Dashboard",
		"Overview": overview,
	})
}
