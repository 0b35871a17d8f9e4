package controller

import (
	"net/http"

	"microblog/logger"
	"microblog/util/common"

	"github.com/gin-gonic/gin"
)

// jsonError sends an error body with the given status code.
func jsonError(c *gin.Context, statusCode int, msg string) {
	c.JSON(statusCode, gin.H{"error": msg})
}

// jsonMsg sends a success message body.
func jsonMsg(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, gin.H{"message": msg})
}

// jsonFailure maps a service error onto the HTTP taxonomy: validation and
// auth errors are 400, not-found is 404, anything else is a store failure
// logged server-side and reported with the generic message only.
func jsonFailure(c *gin.Context, err error, genericMsg string) {
	switch {
	case common.IsValidationError(err):
		jsonError(c, http.StatusBadRequest, err.Error())
	case common.IsAuthError(err):
		jsonError(c, http.StatusBadRequest, err.Error())
	case common.IsNotFoundError(err):
		jsonError(c, http.StatusNotFound, err.Error())
	default:
		logger.Warning(genericMsg+":", err)
		jsonError(c, http.StatusInternalServerError, genericMsg)
	}
}
