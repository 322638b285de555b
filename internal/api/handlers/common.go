package handlers

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "cmms-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// parseID parses a numeric path parameter. A second return of false means a
// 400 response has already been written.
func parseID(c *gin.Context, name string) (uint, bool) {
	idStr := c.Param(name)
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return uint(id), true
}

// handleServiceError maps the service error taxonomy onto HTTP statuses:
// lookup misses on the addressed resource are 404, unresolved references and
// shape errors in the body are 400, uniqueness breaches are 409, everything
// else is 500.
func handleServiceError(c *gin.Context, err error) {
	var fieldErrs validator.ValidationErrors
	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsReferenceNotFound(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperrors.IsValidation(err), errors.As(err, &fieldErrs):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperrors.IsAlreadyExists(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
