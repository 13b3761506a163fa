package hfinference

import "context"

// IInference defines the interface for the Hugging Face Inference API client.
// Implementations are safe for concurrent use.
type IInference interface {
	// ZeroShotClassification scores the candidate labels against the input text.
	ZeroShotClassification(ctx context.Context, input string, labels []string) (*Classification, error)

	// Summarization returns a summary of the input text bounded by maxLength tokens.
	Summarization(ctx context.Context, input string, maxLength int) (string, error)
}
