package task

import "errors"

// Domain-specific errors for the task package.
var (
	// ErrIntentNotRecognized is the normal outcome when neither the remote
	// classifier nor the keyword fallback produced a candidate.
	ErrIntentNotRecognized = errors.New("intent not recognized")

	// ErrDocumentRead marks a failure reading an accepted upload.
	ErrDocumentRead = errors.New("failed to process file")
)
