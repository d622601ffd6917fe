// Package query runs a single element lookup against an HTML document and
// formats the outcome
package query

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alevsk/htmlfind/internal/document"
	"github.com/alevsk/htmlfind/internal/finder"
	"github.com/alevsk/htmlfind/internal/formatter"
	"github.com/alevsk/htmlfind/internal/logger"
	"github.com/alevsk/htmlfind/internal/types"
)

// Version is reported in every result
var Version = "dev"

// Options holds configuration for a query run
type Options struct {
	// OutputFormat is one of table, json, yaml or markdown
	OutputFormat string
	// IncludeMetadata includes metadata in the formatted output
	IncludeMetadata bool
}

// DefaultOptions returns the default query options
func DefaultOptions() *Options {
	return &Options{
		OutputFormat:    string(formatter.TypeTable),
		IncludeMetadata: true,
	}
}

// Runner loads documents and runs lookups against them
type Runner struct {
	opts *Options
}

// New creates a new Runner with the given options
func New(opts *Options) *Runner {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &Runner{
		opts: opts,
	}
}

// Error types for query operations
var (
	ErrInvalidSource   = errors.New("invalid source")
	ErrInvalidSelector = errors.New("invalid selector")
)

// Run loads source, resolves strategy and returns every element matching
// selector. A lookup with no matches is a successful result.
func (r *Runner) Run(ctx context.Context, source, strategy, selector string) (*types.Result, error) {
	if source == "" {
		return nil, ErrInvalidSource
	}
	if strings.TrimSpace(selector) == "" {
		return nil, ErrInvalidSelector
	}

	s, err := finder.ParseStrategy(strategy)
	if err != nil {
		return nil, err
	}

	format := r.opts.OutputFormat
	if format == "" {
		format = string(formatter.TypeTable)
	}
	formatType, err := formatter.ParseType(format)
	if err != nil {
		return nil, err
	}

	doc, err := document.Load(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", source, err)
	}
	logger.Debug().Str("source", doc.Path).Int64("size", doc.Size).Msg("document loaded")

	elements, err := finder.FromDocument(doc).Find(s, selector)
	if err != nil {
		return nil, err
	}
	logger.Debug().
		Str("strategy", string(s)).
		Str("selector", selector).
		Int("matches", len(elements)).
		Msg("lookup finished")

	result := &types.Result{
		Version:   Version,
		Source:    doc.Path,
		Strategy:  string(s),
		Selector:  selector,
		Success:   true,
		Timestamp: time.Now().Unix(),
		Matches:   types.NewMatches(elements, finder.InnerText),
		Extra: map[string]interface{}{
			"size":    doc.Size,
			"modTime": doc.ModTime.Unix(),
		},
	}

	f, err := formatter.NewFormatter(formatType, &formatter.Options{
		IncludeMetadata: r.opts.IncludeMetadata,
		MaxHTMLWidth:    formatter.DefaultOptions().MaxHTMLWidth,
	})
	if err != nil {
		return nil, err
	}

	result.OutputFormatted, err = f.Format(*result)
	if err != nil {
		return nil, fmt.Errorf("failed to format result: %w", err)
	}

	return result, nil
}
