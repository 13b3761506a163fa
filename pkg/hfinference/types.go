package hfinference

// Config holds client configuration.
type Config struct {
	APIToken      string
	BaseURL       string // optional, defaults to DefaultBaseURL
	ClassifyModel string // optional, defaults to DefaultClassifyModel
	SummaryModel  string // optional, defaults to DefaultSummaryModel
	Timeout       string // optional per-call timeout, e.g. "30s"
}

// classifyRequest is the request body for zero-shot classification.
type classifyRequest struct {
	Inputs     string         `json:"inputs"`
	Parameters classifyParams `json:"parameters"`
}

type classifyParams struct {
	CandidateLabels []string `json:"candidate_labels"`
	MultiLabel      bool     `json:"multi_label"`
}

// Classification is the parsed zero-shot classification result.
// Labels and Scores are parallel; callers must validate the pairing
// before trusting either.
type Classification struct {
	Sequence string    `json:"sequence"`
	Labels   []string  `json:"labels"`
	Scores   []float64 `json:"scores"`
}

// summaryRequest is the request body for summarization.
type summaryRequest struct {
	Inputs     string        `json:"inputs"`
	Parameters summaryParams `json:"parameters"`
}

type summaryParams struct {
	MaxLength int `json:"max_length"`
}

// summaryResult is a single summarization output entry.
type summaryResult struct {
	SummaryText string `json:"summary_text"`
}

// ErrorResponse is the error body returned by the Inference API.
type ErrorResponse struct {
	Error string `json:"error"`
}
