package document_test

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/textproto"
	"strings"
	"testing"

	"taskbuster/internal/document"
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

// parseForm builds a multipart form with a single file part and parses it
// with the given in-memory budget (a tiny budget forces temp files on disk).
func parseForm(t *testing.T, contentType, content string, maxMemory int64) *multipart.Form {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="doc.txt"`)
	header.Set("Content-Type", contentType)
	part, err := w.CreatePart(header)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	if _, err := part.Write([]byte(content)); err != nil {
		t.Fatalf("write part: %v", err)
	}
	w.Close()

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(maxMemory)
	if err != nil {
		t.Fatalf("read form: %v", err)
	}
	return form
}

func fileHeader(t *testing.T, form *multipart.Form) *multipart.FileHeader {
	t.Helper()
	headers := form.File["file"]
	if len(headers) != 1 {
		t.Fatalf("expected 1 file header, got %d", len(headers))
	}
	return headers[0]
}

func TestFromMultipart(t *testing.T) {
	t.Run("Nil Header", func(t *testing.T) {
		up, err := document.FromMultipart(nil)
		if err != nil || up != nil {
			t.Errorf("expected nil upload without error, got %v, %v", up, err)
		}
	})

	t.Run("Plain Text Accepted", func(t *testing.T) {
		form := parseForm(t, "text/plain", "hello", 1<<20)
		defer form.RemoveAll()

		up, err := document.FromMultipart(fileHeader(t, form))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if up.Name != "doc.txt" || up.Size != 5 {
			t.Errorf("unexpected upload metadata: %+v", up)
		}
	})

	t.Run("Charset Parameter Accepted", func(t *testing.T) {
		form := parseForm(t, "text/plain; charset=utf-8", "hello", 1<<20)
		defer form.RemoveAll()

		if _, err := document.FromMultipart(fileHeader(t, form)); err != nil {
			t.Errorf("charset parameter must not be rejected: %v", err)
		}
	})

	t.Run("Unsupported Media Type", func(t *testing.T) {
		form := parseForm(t, "application/pdf", "%PDF-1.4", 1<<20)
		defer form.RemoveAll()

		_, err := document.FromMultipart(fileHeader(t, form))
		if !errors.Is(err, document.ErrUnsupportedMediaType) {
			t.Errorf("expected ErrUnsupportedMediaType, got %v", err)
		}
	})

	t.Run("Missing Media Type", func(t *testing.T) {
		form := parseForm(t, "", "hello", 1<<20)
		defer form.RemoveAll()

		_, err := document.FromMultipart(fileHeader(t, form))
		if !errors.Is(err, document.ErrUnsupportedMediaType) {
			t.Errorf("expected ErrUnsupportedMediaType, got %v", err)
		}
	})

	t.Run("Too Large", func(t *testing.T) {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Type", "text/plain")
		fh := &multipart.FileHeader{
			Filename: "big.txt",
			Header:   header,
			Size:     document.MaxFileSize + 1,
		}

		_, err := document.FromMultipart(fh)
		if !errors.Is(err, document.ErrFileTooLarge) {
			t.Errorf("expected ErrFileTooLarge, got %v", err)
		}
	})
}

func TestLoader_Extract(t *testing.T) {
	ld := document.NewLoader(&mockLogger{})
	ctx := context.Background()

	t.Run("No File Sentinel", func(t *testing.T) {
		text, err := ld.Extract(ctx, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if text != document.NoFileSentinel {
			t.Errorf("expected sentinel, got %q", text)
		}
	})

	t.Run("Reads Content", func(t *testing.T) {
		form := parseForm(t, "text/plain", "the quick brown fox", 1<<20)
		defer form.RemoveAll()

		up, err := document.FromMultipart(fileHeader(t, form))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		text, err := ld.Extract(ctx, up)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if text != "the quick brown fox" {
			t.Errorf("unexpected content: %q", text)
		}
	})

	t.Run("Reads From Disk Backed Form", func(t *testing.T) {
		// A 1-byte memory budget forces the part onto a temp file.
		form := parseForm(t, "text/plain", strings.Repeat("x", 1024), 1)

		up, err := document.FromMultipart(fileHeader(t, form))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		text, err := ld.Extract(ctx, up)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(text) != 1024 {
			t.Errorf("expected 1024 bytes, got %d", len(text))
		}

		// Cleanup releases the backing temp file; the handle must be gone.
		document.Cleanup(ctx, &mockLogger{}, form)
		if _, err := fileHeader(t, form).Open(); err == nil {
			t.Errorf("expected open to fail after cleanup")
		}
	})

	t.Run("Cleanup Is Nil Safe", func(t *testing.T) {
		document.Cleanup(ctx, &mockLogger{}, nil)
	})
}
