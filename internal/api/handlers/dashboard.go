package handlers

import (
	"net/http"

	service "github.com/aaravmahajanofficial/superadmin-catalog/internal/services"
	"github.com/aaravmahajanofficial/superadmin-catalog/internal/utils/response"
)

type DashboardHandler struct {
	dashboard service.DashboardService
}

func NewDashboardHandler(dashboard service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

func (h *DashboardHandler) GetDashboard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		counts, err := h.dashboard.GetDashboardCounts(r.Context())
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, counts)
	}
}
