package usecase

import (
	"context"
	"fmt"
	"strings"

	"taskbuster/internal/intent"
	"taskbuster/internal/task"
	"taskbuster/pkg/mailer"
)

const (
	// MaxSummaryTokens bounds the summarizer output length.
	MaxSummaryTokens = 100

	emailSubject       = "TaskBuster Summary"
	emailSentResult    = "Email sent successfully"
	emailNeedsFile     = "Please upload a file to email"
	chartStubResult    = "Chart creation feature coming soon"
	analysisPrefix     = "Analysis: "
	labelJoinSeparator = ", "
)

// Label sets for the classification-backed handlers.
var (
	extractLabels = []string{"important information", "key details", "main points"}
	analyzeLabels = []string{"positive", "negative", "neutral"}
)

// Process resolves the task description to an intent and executes the
// matching handler. Steps run in strict sequence: classification, then text
// extraction, then the handler call. There is no retry anywhere; a failed
// external call surfaces once.
func (uc *implUseCase) Process(ctx context.Context, input task.ProcessInput) (task.ProcessOutput, error) {
	resolution := uc.resolver.Resolve(ctx, input.Description)
	if resolution.Unknown {
		return task.ProcessOutput{}, task.ErrIntentNotRecognized
	}

	uc.l.Infof(ctx, "task: detected intent %q source=%s", resolution.Intent, resolution.Source)

	text, err := uc.loader.Extract(ctx, input.Upload)
	if err != nil {
		uc.l.Errorf(ctx, "task: document extraction failed: %v", err)
		return task.ProcessOutput{}, fmt.Errorf("%w: %v", task.ErrDocumentRead, err)
	}

	result, err := uc.dispatch(ctx, resolution.Intent, input, text)
	if err != nil {
		return task.ProcessOutput{}, err
	}

	uc.l.Infof(ctx, "task: completed intent %q", resolution.Intent)

	return task.ProcessOutput{
		Result:         result,
		DetectedIntent: resolution.Intent,
	}, nil
}

// dispatch maps a resolved intent to its handler, invoked exactly once per
// request.
func (uc *implUseCase) dispatch(ctx context.Context, it intent.Intent, input task.ProcessInput, text string) (string, error) {
	switch it {
	case intent.IntentSummarize:
		return uc.summarize(ctx, text)
	case intent.IntentExtract:
		return uc.extract(ctx, text)
	case intent.IntentEmail:
		return uc.email(ctx, input, text)
	case intent.IntentCreateChart:
		// Intentional stub: no external call, callers must not infer chart
		// output from the response.
		return chartStubResult, nil
	case intent.IntentAnalyze:
		return uc.analyze(ctx, text)
	default:
		return "", fmt.Errorf("no handler for intent %q", it)
	}
}

func (uc *implUseCase) summarize(ctx context.Context, text string) (string, error) {
	summary, err := uc.inference.Summarization(ctx, text, MaxSummaryTokens)
	if err != nil {
		return "", fmt.Errorf("summarization failed: %w", err)
	}
	return summary, nil
}

func (uc *implUseCase) extract(ctx context.Context, text string) (string, error) {
	result, err := uc.inference.ZeroShotClassification(ctx, text, extractLabels)
	if err != nil {
		return "", fmt.Errorf("extraction failed: %w", err)
	}
	return strings.Join(result.Labels, labelJoinSeparator), nil
}

// email summarizes the uploaded document and mails the summary to the
// configured recipient. Without an upload it returns an advisory string and
// touches no external service. Sending is not idempotent: identical requests
// send identical emails again.
func (uc *implUseCase) email(ctx context.Context, input task.ProcessInput, text string) (string, error) {
	if input.Upload == nil {
		return emailNeedsFile, nil
	}

	summary, err := uc.summarize(ctx, text)
	if err != nil {
		return "", err
	}

	if err := uc.mail.Send(mailer.Message{Subject: emailSubject, Body: summary}); err != nil {
		return "", fmt.Errorf("mail send failed: %w", err)
	}

	return emailSentResult, nil
}

func (uc *implUseCase) analyze(ctx context.Context, text string) (string, error) {
	result, err := uc.inference.ZeroShotClassification(ctx, text, analyzeLabels)
	if err != nil {
		return "", fmt.Errorf("analysis failed: %w", err)
	}
	return analysisPrefix + strings.Join(result.Labels, labelJoinSeparator), nil
}
