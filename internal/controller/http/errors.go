package http

import (
	"errors"
	"net/http"

	"cliptube/internal/entity"

	"github.com/gin-gonic/gin"
)

// abortWithError maps domain outcomes to status codes; anything unrecognized
// is an upstream failure. The body always carries msg plus the error detail.
func abortWithError(c *gin.Context, err error, msg string) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, entity.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, entity.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, entity.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	case errors.Is(err, entity.ErrEmailTaken), errors.Is(err, entity.ErrSelfSubscribe):
		status = http.StatusBadRequest
	}

	c.JSON(status, gin.H{"msg": msg, "error": err.Error()})
}
