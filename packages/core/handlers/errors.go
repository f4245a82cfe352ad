package handlers

import (
	"net/http"

	"core/apperr"

	"github.com/gin-gonic/gin"
)

// respondError translates a service error into the HTTP response. Unknown
// errors are deliberately not echoed back to the client.
func respondError(c *gin.Context, err error) {
	switch apperr.KindOf(err) {
	case apperr.KindNotFound:
		c.JSON(http.StatusNotFound, gin.H{
			"error": err.Error(),
		})
	case apperr.KindConstraintViolation:
		c.JSON(http.StatusConflict, gin.H{
			"error": err.Error(),
		})
	case apperr.KindAlreadyFinished, apperr.KindInvalidWinner, apperr.KindInvalidInput:
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
