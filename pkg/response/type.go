package response

// TaskResp is the success body returned once a task has been executed.
type TaskResp struct {
	Result         string `json:"result"`
	DetectedIntent string `json:"detectedIntent"`
}

// ErrResp is the error body for every non-200 response.
type ErrResp struct {
	Error      string `json:"error"`
	Suggestion string `json:"suggestion,omitempty"`
}
