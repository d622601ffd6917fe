// Package document loads the raw text of an HTML file used as a search corpus
package document

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"
	"unicode/utf8"
)

// Error types for load operations
var (
	ErrInvalidSource  = errors.New("invalid source")
	ErrNotRegularFile = errors.New("not a regular file")
	ErrInvalidText    = errors.New("document is not valid UTF-8")
)

// Document is the immutable text of a loaded HTML file
type Document struct {
	// Path is the file the document was read from, empty for in-memory documents
	Path string
	// Size is the size of the source in bytes
	Size int64
	// ModTime is the last modification time of the source
	ModTime time.Time

	text string
}

// New creates an in-memory document from text
func New(text string) *Document {
	return &Document{
		Size: int64(len(text)),
		text: text,
	}
}

// Text returns the raw document content
func (d *Document) Text() string {
	return d.text
}

// Load reads the whole file at path as UTF-8 text
func Load(ctx context.Context, path string) (*Document, error) {
	if path == "" {
		return nil, ErrInvalidSource
	}

	// Check context cancellation
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrNotRegularFile, path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	if !utf8.Valid(content) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidText, path)
	}

	return &Document{
		Path:    path,
		Size:    info.Size(),
		ModTime: info.ModTime(),
		text:    string(content),
	}, nil
}
