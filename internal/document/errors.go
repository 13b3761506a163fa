package document

import "errors"

// Domain-specific errors for the document package.
var (
	ErrUnsupportedMediaType = errors.New("only plain text files are allowed")
	ErrFileTooLarge         = errors.New("file too large, maximum size is 5 MB")
)
