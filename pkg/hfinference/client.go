package hfinference

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultTimeout = 30 * time.Second

// Client is the Hugging Face Inference API client.
type Client struct {
	apiToken      string
	baseURL       string
	classifyModel string
	summaryModel  string
	httpClient    *http.Client
}

// New creates a new Hugging Face Inference client.
func New(cfg Config) (*Client, error) {
	if cfg.APIToken == "" {
		return nil, fmt.Errorf("hfinference: API token is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.ClassifyModel == "" {
		cfg.ClassifyModel = DefaultClassifyModel
	}
	if cfg.SummaryModel == "" {
		cfg.SummaryModel = DefaultSummaryModel
	}

	timeout := defaultTimeout
	if cfg.Timeout != "" {
		d, err := time.ParseDuration(cfg.Timeout)
		if err != nil {
			return nil, fmt.Errorf("hfinference: invalid timeout %q: %w", cfg.Timeout, err)
		}
		timeout = d
	}

	return &Client{
		apiToken:      cfg.APIToken,
		baseURL:       cfg.BaseURL,
		classifyModel: cfg.ClassifyModel,
		summaryModel:  cfg.SummaryModel,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

// SetBaseURL overrides the default Inference API base URL for testing purposes.
func (c *Client) SetBaseURL(url string) {
	c.baseURL = url
}

// ZeroShotClassification scores the candidate labels against the input text.
// No retries: a transport or service failure is returned to the caller once.
func (c *Client) ZeroShotClassification(ctx context.Context, input string, labels []string) (*Classification, error) {
	if len(labels) == 0 {
		return nil, fmt.Errorf("hfinference: at least one candidate label is required")
	}

	reqBody := classifyRequest{
		Inputs: input,
		Parameters: classifyParams{
			CandidateLabels: labels,
			MultiLabel:      false,
		},
	}

	raw, err := c.post(ctx, c.classifyModel, reqBody)
	if err != nil {
		return nil, err
	}

	return parseClassification(raw)
}

// Summarization returns a summary of the input text bounded by maxLength tokens.
func (c *Client) Summarization(ctx context.Context, input string, maxLength int) (string, error) {
	reqBody := summaryRequest{
		Inputs:     input,
		Parameters: summaryParams{MaxLength: maxLength},
	}

	raw, err := c.post(ctx, c.summaryModel, reqBody)
	if err != nil {
		return "", err
	}

	// The API returns a single-element array of results.
	var results []summaryResult
	if err := json.Unmarshal(raw, &results); err != nil {
		var single summaryResult
		if err2 := json.Unmarshal(raw, &single); err2 == nil && single.SummaryText != "" {
			return single.SummaryText, nil
		}
		return "", fmt.Errorf("hfinference: failed to decode summarization response: %w", err)
	}
	if len(results) == 0 {
		return "", fmt.Errorf("hfinference: empty summarization response")
	}

	return results[0].SummaryText, nil
}

// post marshals the body, calls the model endpoint and returns the raw response.
func (c *Client) post(ctx context.Context, model string, body any) ([]byte, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/%s", c.baseURL, model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiToken)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call inference API: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp ErrorResponse
		if jsonErr := json.Unmarshal(raw, &errResp); jsonErr == nil && errResp.Error != "" {
			return nil, fmt.Errorf("inference API error %d: %s", resp.StatusCode, errResp.Error)
		}
		return nil, fmt.Errorf("inference API error %d: %s", resp.StatusCode, string(raw))
	}

	return raw, nil
}

// parseClassification decodes a zero-shot result. The API sometimes wraps the
// result in a single-element array, so both shapes are accepted. The labels and
// scores arrays are returned as-is; the caller decides whether the pairing is
// usable.
func parseClassification(raw []byte) (*Classification, error) {
	var direct Classification
	if err := json.Unmarshal(raw, &direct); err == nil && len(direct.Labels) > 0 {
		return &direct, nil
	}

	var wrapped []Classification
	if err := json.Unmarshal(raw, &wrapped); err == nil && len(wrapped) > 0 {
		return &wrapped[0], nil
	}

	return nil, fmt.Errorf("hfinference: unrecognized classification response: %s", string(raw))
}
