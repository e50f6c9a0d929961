package controllers

import (
	"fmt"
	"net/http"

	"bistro-boss/models"
	"bistro-boss/utils"

	"github.com/rs/zerolog"
)

// StatsController serves the admin dashboard
type StatsController struct {
	Stats  StatsStore
	logger zerolog.Logger
}

func NewStatsController(stats StatsStore, logger zerolog.Logger) *StatsController {
	return &StatsController{
		Stats:  stats,
		logger: logger.With().Str("controller", "stats").Logger(),
	}
}

// AdminStats handles GET /admin-stats
func (sc *StatsController) AdminStats(w http.ResponseWriter, r *http.Request) {
	counts, err := sc.Stats.Counts(r.Context())
	if err != nil {
		sc.logger.Error().Err(err).Msg("failed to count documents")
		utils.WriteError(w, http.StatusInternalServerError, "Error fetching stats")
		return
	}

	revenue, err := sc.Stats.Revenue(r.Context())
	if err != nil {
		sc.logger.Error().Err(err).Msg("failed to aggregate revenue")
		utils.WriteError(w, http.StatusInternalServerError, "Error fetching stats")
		return
	}

	utils.WriteJSON(w, http.StatusOK, models.AdminStats{
		Customers: counts.Users,
		Products:  counts.Menu,
		Orders:    counts.Payments,
		Revenue:   fmt.Sprintf("%.2f", revenue),
	})
}

// OrderStats handles GET /order-stats
func (sc *StatsController) OrderStats(w http.ResponseWriter, r *http.Request) {
	stats, err := sc.Stats.OrderStats(r.Context())
	if err != nil {
		sc.logger.Error().Err(err).Msg("failed to aggregate order stats")
		utils.WriteError(w, http.StatusInternalServerError, "Error fetching order stats")
		return
	}
	utils.WriteJSON(w, http.StatusOK, stats)
}
