package http

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"taskbuster/internal/document"
	"taskbuster/internal/intent"
	"taskbuster/internal/task"
	"taskbuster/pkg/response"
)

// Delivery-level validation errors.
var (
	errTaskRequired = errors.New("task is required")
	errTaskTooLong  = errors.New("task description too long")
	errBadUpload    = errors.New("invalid file upload")
)

// User-facing messages. The concrete upstream failure stays in the logs.
const (
	msgTaskRequired = "Task is required"
	msgTaskTooLong  = "Task description too long. Maximum 500 characters allowed."
	msgBadUpload    = "Invalid file upload"
	msgBadFileType  = "Only plain text files are allowed"
	msgFileTooLarge = "File too large. Maximum size is 5 MB."
	msgFileRead     = "Failed to process file"

	suggestionUnknownIntent = "Try being more specific with your request."
)

// mapError translates domain/use-case errors into the HTTP error envelope.
// Validation and resolution misses are 400s; everything else is a generic
// 500 that never leaks upstream detail.
func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errTaskRequired):
		response.BadRequest(c, msgTaskRequired, "")
	case errors.Is(err, errTaskTooLong):
		response.BadRequest(c, msgTaskTooLong, "")
	case errors.Is(err, errBadUpload):
		response.BadRequest(c, msgBadUpload, "")
	case errors.Is(err, document.ErrUnsupportedMediaType):
		response.BadRequest(c, msgBadFileType, "")
	case errors.Is(err, document.ErrFileTooLarge):
		response.BadRequest(c, msgFileTooLarge, "")
	case errors.Is(err, task.ErrIntentNotRecognized):
		response.BadRequest(c, unknownIntentMessage(), suggestionUnknownIntent)
	case errors.Is(err, task.ErrDocumentRead):
		response.InternalErrorWithMessage(c, msgFileRead)
	default:
		response.InternalError(c)
	}
}

// unknownIntentMessage enumerates the supported intents for the caller.
func unknownIntentMessage() string {
	return fmt.Sprintf("Intent not recognized. Supported actions: %s",
		strings.Join(intent.Labels(), ", "))
}
