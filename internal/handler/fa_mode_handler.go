package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/edustat/markboard-backend/internal/model"
	"github.com/edustat/markboard-backend/internal/response"
	"github.com/edustat/markboard-backend/internal/service"
	"github.com/edustat/markboard-backend/internal/validator"
)

// FAModeHandler handles Formative Assessment mode endpoints.
type FAModeHandler struct {
	faService *service.FASettingService
	log       zerolog.Logger
}

// NewFAModeHandler creates a new FAModeHandler.
func NewFAModeHandler(faService *service.FASettingService, log zerolog.Logger) *FAModeHandler {
	return &FAModeHandler{faService: faService, log: log}
}

// Set godoc
// POST /api/fa-mode
func (h *FAModeHandler) Set(c *gin.Context) {
	var req model.SetFAModeRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	cc := model.ClassContext{
		Subject:    req.Subject,
		Division:   req.Division,
		Department: req.Department,
		Year:       req.Year,
	}
	setting, err := h.faService.Set(c.Request.Context(), cc, req.Mode)
	if err != nil {
		if errors.Is(err, service.ErrInvalidFAMode) {
			response.FailWithMessage(c, http.StatusBadRequest, err.Error())
			return
		}
		h.log.Error().Err(err).Msg("FA mode set failed")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, setting)
}

// Get godoc
// GET /api/fa-mode
func (h *FAModeHandler) Get(c *gin.Context) {
	var req model.GetFAModeQuery
	if fields := validator.BindQuery(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	cc := model.ClassContext{
		Subject:    req.Subject,
		Division:   req.Division,
		Department: req.Department,
		Year:       req.Year,
	}
	setting, err := h.faService.Get(c.Request.Context(), cc)
	if err != nil {
		h.log.Error().Err(err).Msg("FA mode get failed")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	// setting is nil when no mode has been set; the envelope carries null.
	response.Success(c, http.StatusOK, setting)
}
