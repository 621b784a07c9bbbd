package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/edustat/markboard-backend/internal/response"
	"github.com/edustat/markboard-backend/internal/service"
)

// FilterHandler serves the init endpoint's filter options.
type FilterHandler struct {
	filterService *service.FilterService
	log           zerolog.Logger
}

// NewFilterHandler creates a new FilterHandler.
func NewFilterHandler(filterService *service.FilterService, log zerolog.Logger) *FilterHandler {
	return &FilterHandler{filterService: filterService, log: log}
}

// Init godoc
// GET /api/init
func (h *FilterHandler) Init(c *gin.Context) {
	opts, err := h.filterService.Options(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Filter options lookup failed")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, opts)
}
