package handlers

import (
	"net/http"

	"fuel-console/internal/dashboard"
	"fuel-console/pkg/utils"
)

// DashboardHandler serves the polled dashboard snapshot
type DashboardHandler struct {
	poller *dashboard.Poller
	hub    *dashboard.Hub
}

func NewDashboardHandler(poller *dashboard.Poller, hub *dashboard.Hub) *DashboardHandler {
	return &DashboardHandler{poller: poller, hub: hub}
}

// Snapshot handles GET /api/dashboard
func (h *DashboardHandler) Snapshot(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, h.poller.Snapshot())
}

// Stream handles GET /ws/dashboard
func (h *DashboardHandler) Stream(w http.ResponseWriter, r *http.Request) {
	h.hub.ServeWS(w, r, h.poller.Snapshot())
}
