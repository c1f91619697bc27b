package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"legalcase/internal/models"
	"legalcase/internal/repositories"
	"legalcase/internal/responses"
)

// respondError maps service errors onto the HTTP taxonomy: validation 400,
// not found 404, duplicate email 400, broken reference and store failures
// 500. The in-flight write has already been rolled back by the time an error
// reaches here.
func respondError(c *gin.Context, err error, notFoundMessage string) {
	var fieldErr models.FieldError

	switch {
	case errors.As(err, &fieldErr):
		responses.Fail(c, http.StatusBadRequest, err, "Missing required fields")
	case errors.Is(err, models.ErrValidation):
		responses.Fail(c, http.StatusBadRequest, err, "Invalid field value")
	case errors.Is(err, models.ErrDuplicateEmail):
		responses.Fail(c, http.StatusBadRequest, err, "Email already exists")
	case errors.Is(err, models.ErrNotFound):
		responses.Fail(c, http.StatusNotFound, nil, notFoundMessage)
	case errors.Is(err, repositories.ErrInvalidReference):
		responses.Fail(c, http.StatusInternalServerError, err, "Integrity error occurred, check for constraints")
	default:
		responses.Fail(c, http.StatusInternalServerError, err, "An unexpected error occurred")
	}
}

// pathID parses a numeric id path parameter. Writes the 400 response itself
// when the parameter is not a number.
func pathID(c *gin.Context, param string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, nil, "Invalid ID format")
		return 0, false
	}
	return id, true
}
