package handlers

import (
	"log"
	"net/http"
)

// GetDashboardHandler godoc
// @Summary Analytics dashboard for the admin view
// @Description Daily and monthly revenue series, today's totals, and the low-stock count
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} repo.Dashboard
// @Failure 500 {string} string "Internal error"
// @Router /analytics/dashboard [get]
func GetDashboardHandler(w http.ResponseWriter, r *http.Request) {
	d, err := analyticsRepo.GetDashboard()
	if err != nil {
		log.Printf("failed to compute dashboard: %v", err)
		http.Error(w, "failed to compute dashboard", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, d)
}
