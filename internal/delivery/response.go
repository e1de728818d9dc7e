package delivery

import (
	"net/http"

	"github.com/Mo7amed-Boukab/E-Market-API/internal/validation"

	"github.com/gin-gonic/gin"
)

// ErrorResponse writes the uniform failure body: { "message": ... }.
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"message": message})
}

// ValidationErrorResponse writes a schema failure: the schema's blanket
// message plus the per-field errors.
func ValidationErrorResponse(c *gin.Context, verrs *validation.Errors) {
	c.JSON(http.StatusBadRequest, gin.H{
		"message": verrs.Message(),
		"errors":  verrs.Fields,
	})
}

// bindPayload parses the JSON body into an open map so unknown fields pass
// through to the validator untouched.
func bindPayload(c *gin.Context) (map[string]interface{}, bool) {
	var payload map[string]interface{}
	if err := c.ShouldBindJSON(&payload); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body.")
		return nil, false
	}
	return payload, true
}
