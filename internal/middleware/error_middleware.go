package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/opennotes/backend/internal/app/models/dto"
	"github.com/opennotes/backend/internal/pkg/apperrors"
)

// HandleAPIError maps application errors to HTTP responses. Callers only
// get the HTTP status and the message text to tell failures apart, so
// external-dependency errors carry the underlying message through.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrSubjectNotFound),
		errors.Is(err, apperrors.ErrNoteNotFound),
		errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, err.Error())))

	case errors.Is(err, apperrors.ErrInvalidApprovalKind),
		errors.Is(err, apperrors.ErrBadRequest),
		errors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, err.Error())))

	case errors.Is(err, apperrors.ErrCompletionService):
		c.JSON(http.StatusBadGateway, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeExternalServiceError, err.Error())))

	case errors.Is(err, apperrors.ErrBlobStore),
		errors.Is(err, apperrors.ErrDocumentStore):
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeExternalServiceError, err.Error())))

	default:
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, err.Error())))
	}
}
