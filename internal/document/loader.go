package document

import (
	"context"
	"fmt"
	"io"
	"mime"
	"mime/multipart"

	pkgLog "taskbuster/pkg/log"
)

const (
	// MaxFileSize is the upload ceiling: 5 MiB.
	MaxFileSize = 5 << 20

	// MediaTypePlainText is the only accepted upload media type.
	MediaTypePlainText = "text/plain"

	// NoFileSentinel is the extracted text when no file accompanies a task.
	NoFileSentinel = "No file provided."
)

// Upload is an accepted, validated attachment. A nil *Upload means the
// request carried no file.
type Upload struct {
	Name        string
	ContentType string
	Size        int64

	header *multipart.FileHeader
}

// ILoader defines the interface for reading uploaded documents.
type ILoader interface {
	Extract(ctx context.Context, up *Upload) (string, error)
}

// Loader reads uploaded text documents into memory.
type Loader struct {
	l pkgLog.Logger
}

// NewLoader creates a new document loader.
func NewLoader(l pkgLog.Logger) *Loader {
	return &Loader{l: l}
}

// FromMultipart validates a multipart file header and wraps it as an Upload.
// A nil header yields a nil Upload without error.
func FromMultipart(fh *multipart.FileHeader) (*Upload, error) {
	if fh == nil {
		return nil, nil
	}

	contentType := fh.Header.Get("Content-Type")
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil || mediaType != MediaTypePlainText {
		return nil, ErrUnsupportedMediaType
	}

	if fh.Size > MaxFileSize {
		return nil, ErrFileTooLarge
	}

	return &Upload{
		Name:        fh.Filename,
		ContentType: mediaType,
		Size:        fh.Size,
		header:      fh,
	}, nil
}

// Extract reads the full upload as text. Without an upload it returns the
// sentinel string. The open handle is always closed; temp storage backing the
// multipart form is released by Cleanup at the end of the request.
func (ld *Loader) Extract(ctx context.Context, up *Upload) (string, error) {
	if up == nil {
		return NoFileSentinel, nil
	}

	f, err := up.header.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file %q: %w", up.Name, err)
	}
	defer f.Close()

	// The header size was already checked; the limit guards a lying client.
	raw, err := io.ReadAll(io.LimitReader(f, MaxFileSize+1))
	if err != nil {
		return "", fmt.Errorf("failed to read uploaded file %q: %w", up.Name, err)
	}
	if int64(len(raw)) > MaxFileSize {
		return "", ErrFileTooLarge
	}

	ld.l.Infof(ctx, "document: read %d bytes from %q", len(raw), up.Name)
	return string(raw), nil
}

// Cleanup releases the temp storage backing a parsed multipart form. It is
// called exactly once per request, on every exit path.
func Cleanup(ctx context.Context, l pkgLog.Logger, form *multipart.Form) {
	if form == nil {
		return
	}
	if err := form.RemoveAll(); err != nil {
		l.Errorf(ctx, "document: failed to clean up uploaded files: %v", err)
		return
	}
	l.Debugf(ctx, "document: cleaned up uploaded files")
}
