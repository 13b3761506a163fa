package task

import (
	"taskbuster/internal/document"
	"taskbuster/internal/intent"
)

// MaxDescriptionLength is the task description ceiling after trimming.
const MaxDescriptionLength = 500

// ProcessInput is the input for task processing. Description is validated by
// the delivery layer: non-empty after trim and at most MaxDescriptionLength
// characters. Upload is nil when no file was attached.
type ProcessInput struct {
	Description string
	Upload      *document.Upload
}

// ProcessOutput is the result of a successfully executed task.
type ProcessOutput struct {
	Result         string
	DetectedIntent intent.Intent
}
