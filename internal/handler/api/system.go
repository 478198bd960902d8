package api

import (
	"net/http"

	resdto "braceria-backend/internal/handler/dto/response"
	"braceria-backend/internal/pkg/clock"
	"braceria-backend/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

type SystemHandler struct {
	serviceName string
	displayName string
	version     string
	clock       clock.Clock
}

func NewSystemHandler(cfg config.Config, clk clock.Clock) *SystemHandler {
	return &SystemHandler{
		serviceName: cfg.Server.ServiceName,
		displayName: "Backend Prenotazioni " + cfg.Restaurant.Name,
		version:     cfg.Server.Version,
		clock:       clk,
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags system
// @Produce json
// @Success 200 {object} resdto.HealthResponse
// @Router /health [get]
func (h *SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.HealthResponse{
		Status:    "ok",
		Service:   h.serviceName,
		Timestamp: h.clock.Now().UTC(),
	})
}

// @Summary Service info
// @Description Service name, version and the public endpoints
// @Tags system
// @Produce json
// @Success 200 {object} resdto.ServiceInfoResponse
// @Router / [get]
func (h *SystemHandler) Info(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.ServiceInfoResponse{
		Service: h.displayName,
		Version: h.version,
		Endpoints: map[string]string{
			"health":             "GET /health",
			"disabledSlots":      "GET /gestionale/get-disabled-time-slots/?date=YYYY-MM-DD",
			"createReservation":  "POST /api/braceria/prenota",
			"cancelReservation":  "GET /api/braceria/annulla/:id/:token",
			"legacyReservations": "POST /prenotazioni",
		},
	})
}
