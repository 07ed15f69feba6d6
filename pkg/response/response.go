package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/studieportaal/regiovoorlichting-api/pkg/errors"
)

// The portal wire contract is intentionally flat: GET returns the bare
// collection array, mutations return the bare record, deletes return
// {"success":true} and every failure is {"error":"..."} with a matching
// status code.

// JSON sends a success payload as-is.
func JSON(c *gin.Context, status int, data interface{}) {
	c.Header("Cache-Control", "no-store")
	c.JSON(status, data)
}

// Success sends the delete acknowledgement shape.
func Success(c *gin.Context) {
	JSON(c, http.StatusOK, gin.H{"success": true})
}

// Accepted responds with HTTP 202 for queued work.
func Accepted(c *gin.Context, data interface{}) {
	JSON(c, http.StatusAccepted, data)
}

// Error normalises the error and sends {"error": message}.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	c.Header("Cache-Control", "no-store")
	c.JSON(appErr.Status, gin.H{"error": appErr.Message})
}
