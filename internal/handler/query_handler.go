package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/edustat/markboard-backend/internal/model"
	"github.com/edustat/markboard-backend/internal/repository"
	"github.com/edustat/markboard-backend/internal/response"
	"github.com/edustat/markboard-backend/internal/service"
	"github.com/edustat/markboard-backend/internal/validator"
)

// QueryHandler handles the student query workflow endpoints.
type QueryHandler struct {
	queryService *service.QueryService
	log          zerolog.Logger
}

// NewQueryHandler creates a new QueryHandler.
func NewQueryHandler(queryService *service.QueryService, log zerolog.Logger) *QueryHandler {
	return &QueryHandler{queryService: queryService, log: log}
}

// List godoc
// GET /api/queries
func (h *QueryHandler) List(c *gin.Context) {
	queries, notifications, err := h.queryService.List(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Query list failed")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	if queries == nil {
		queries = []model.Query{}
	}
	if notifications == nil {
		notifications = []model.Notification{}
	}

	response.Success(c, http.StatusOK, gin.H{
		"queries":       queries,
		"notifications": notifications,
	})
}

// Respond godoc
// POST /api/queries/respond
func (h *QueryHandler) Respond(c *gin.Context) {
	var req model.RespondQueryRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	query, err := h.queryService.Respond(c.Request.Context(), req.QueryID, req.Response)
	if err != nil {
		if errors.Is(err, repository.ErrQueryNotFound) {
			response.FailWithMessage(c, http.StatusNotFound, "Query not found")
			return
		}
		h.log.Error().Err(err).Int64("query_id", req.QueryID).Msg("Query respond failed")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, query)
}
