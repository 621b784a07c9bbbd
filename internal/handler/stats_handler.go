package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/edustat/markboard-backend/internal/model"
	"github.com/edustat/markboard-backend/internal/response"
	"github.com/edustat/markboard-backend/internal/service"
	"github.com/edustat/markboard-backend/internal/validator"
)

// StatsHandler handles class statistics endpoints.
type StatsHandler struct {
	statsService *service.StatsService
	log          zerolog.Logger
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(statsService *service.StatsService, log zerolog.Logger) *StatsHandler {
	return &StatsHandler{statsService: statsService, log: log}
}

// ClassStats godoc
// POST /api/class-stats
func (h *StatsHandler) ClassStats(c *gin.Context) {
	var req model.ClassStatsRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	stats, err := h.statsService.ClassStats(c.Request.Context(), req.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Class stats computation failed")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, stats)
}
