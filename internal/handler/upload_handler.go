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

// UploadHandler handles marks file uploads.
type UploadHandler struct {
	importService *service.ImportService
	log           zerolog.Logger
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(importService *service.ImportService, log zerolog.Logger) *UploadHandler {
	return &UploadHandler{importService: importService, log: log}
}

// UploadMarks godoc
// POST /api/upload-marks
// Multipart body: "file" plus the class context form fields.
func (h *UploadHandler) UploadMarks(c *gin.Context) {
	var req model.UploadMarksRequest
	if err := c.ShouldBind(&req); err != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, validator.TranslateErrors(err))
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrFileRequired)
		return
	}
	defer file.Close()

	result, err := h.importService.ImportUpload(c.Request.Context(), file, header, req.Context(), req.Paper)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnsupportedFileType):
			response.FailWithMessage(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrFileTooLarge):
			response.FailWithMessage(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrInvalidRow):
			// Row-level detail is safe to expose; nothing was committed.
			response.FailWithMessage(c, http.StatusBadRequest, err.Error())
		default:
			h.log.Error().Err(err).Msg("Marks import failed")
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	response.Success(c, http.StatusOK, result)
}
