package usecase_test

import (
	"context"

	"taskbuster/internal/document"
	"taskbuster/internal/intent"
	"taskbuster/pkg/hfinference"
	"taskbuster/pkg/mailer"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Debugf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, args ...any)  {}

// fakeResolver returns a fixed resolution.
type fakeResolver struct {
	resolution intent.Resolution
	calls      int
}

func (f *fakeResolver) Resolve(ctx context.Context, description string) intent.Resolution {
	f.calls++
	return f.resolution
}

// fakeLoader returns fixed extracted text.
type fakeLoader struct {
	text  string
	err   error
	calls int
}

func (f *fakeLoader) Extract(ctx context.Context, up *document.Upload) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	if up == nil {
		return document.NoFileSentinel, nil
	}
	return f.text, nil
}

// fakeInference counts calls and returns canned results.
type fakeInference struct {
	summary        string
	summaryErr     error
	summaryCalls   int
	classification *hfinference.Classification
	classifyErr    error
	classifyCalls  int
	classifyLabels []string
}

func (f *fakeInference) ZeroShotClassification(ctx context.Context, input string, labels []string) (*hfinference.Classification, error) {
	f.classifyCalls++
	f.classifyLabels = labels
	return f.classification, f.classifyErr
}

func (f *fakeInference) Summarization(ctx context.Context, input string, maxLength int) (string, error) {
	f.summaryCalls++
	return f.summary, f.summaryErr
}

// fakeMailer counts sends and records the last message.
type fakeMailer struct {
	err      error
	sends    int
	lastSent mailer.Message
}

func (f *fakeMailer) Send(msg mailer.Message) error {
	f.sends++
	f.lastSent = msg
	return f.err
}
