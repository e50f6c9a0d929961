package controllers

import (
	"net/http"

	"bistro-boss/utils"

	"github.com/rs/zerolog"
)

const banner = "Bistro Boss restaurant server is running"

type HealthController struct {
	DB     Pinger
	logger zerolog.Logger
}

func NewHealthController(db Pinger, logger zerolog.Logger) *HealthController {
	return &HealthController{
		DB:     db,
		logger: logger.With().Str("controller", "health").Logger(),
	}
}

// Home handles GET /
func (hc *HealthController) Home(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, map[string]string{"message": banner})
}

// Health handles GET /health
func (hc *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	if err := hc.DB.Ping(r.Context()); err != nil {
		hc.logger.Error().Err(err).Msg("database ping failed")
		utils.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unhealthy"})
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}
