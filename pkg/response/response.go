package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK sends 200 JSON with the given body.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// BadRequest sends a 400 with the given message and optional suggestion.
func BadRequest(c *gin.Context, message, suggestion string) {
	c.JSON(http.StatusBadRequest, ErrResp{
		Error:      message,
		Suggestion: suggestion,
	})
}

// InternalError sends a generic 500. The concrete cause is for the logs,
// never for the caller.
func InternalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, ErrResp{
		Error: DefaultErrorMessage,
	})
}

// InternalErrorWithMessage sends a 500 with a non-leaking message override.
func InternalErrorWithMessage(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, ErrResp{
		Error: message,
	})
}

// TooManyRequests sends a 429 rate-limit response.
func TooManyRequests(c *gin.Context) {
	c.JSON(http.StatusTooManyRequests, ErrResp{
		Error: RateLimitMessage,
	})
}
