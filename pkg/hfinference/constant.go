package hfinference

const (
	// DefaultBaseURL is the default Hugging Face Inference API endpoint
	DefaultBaseURL = "https://api-inference.huggingface.co/models"

	// DefaultClassifyModel is the default zero-shot classification model
	DefaultClassifyModel = "facebook/bart-large-mnli"

	// DefaultSummaryModel is the default summarization model
	DefaultSummaryModel = "facebook/bart-large-cnn"
)
