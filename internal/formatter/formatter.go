package formatter

import (
	"encoding/json"
	"fmt"

	"github.com/alevsk/htmlfind/internal/types"
	"gopkg.in/yaml.v3"
)

// Formatter defines the interface for formatting data
type Formatter interface {
	Format(data types.Result) (string, error)
}

// Format formats data as JSON
func (j *JSON) Format(data types.Result) (string, error) {
	bytes, err := json.MarshalIndent(parse(data, j.opts), "", "  ")
	if err != nil {
		return "", fmt.Errorf("error formatting as JSON: %w", err)
	}
	return string(bytes), nil
}

// Format formats data as YAML
func (y *YAML) Format(data types.Result) (string, error) {
	bytes, err := yaml.Marshal(parse(data, y.opts))
	if err != nil {
		return "", fmt.Errorf("error formatting as YAML: %w", err)
	}
	return string(bytes), nil
}

// Format formats data as a table using go-pretty/v6/table
func (t *Table) Format(data types.Result) (string, error) {
	metadataTable, matchesTable := buildTables(data, t.opts)
	if metadataTable == nil {
		return matchesTable.Render() + "\n", nil
	}
	return metadataTable.Render() + "\n\n" + matchesTable.Render() + "\n", nil
}

// Format formats data as markdown tables
func (m *Markdown) Format(data types.Result) (string, error) {
	metadataTable, matchesTable := buildTables(data, m.opts)
	if metadataTable == nil {
		return matchesTable.RenderMarkdown() + "\n", nil
	}
	return metadataTable.RenderMarkdown() + "\n\n" + matchesTable.RenderMarkdown() + "\n", nil
}

// parse flattens a result into the serializable output shape
func parse(data types.Result, opts *Options) ParsedData {
	parsed := ParsedData{
		Count:   len(data.Matches),
		Matches: make([]MatchEntry, 0, len(data.Matches)),
	}

	if opts.IncludeMetadata {
		parsed.Metadata = &Metadata{
			Version:   data.Version,
			Source:    data.Source,
			Strategy:  data.Strategy,
			Selector:  data.Selector,
			Timestamp: data.Timestamp,
			Extra:     data.Extra,
		}
	}

	for _, m := range data.Matches {
		parsed.Matches = append(parsed.Matches, MatchEntry{
			Index: m.Index,
			Text:  m.Text,
			HTML:  m.HTML,
		})
	}

	return parsed
}

// ParseType converts a string to a Type
func ParseType(s string) (Type, error) {
	switch Type(s) {
	case TypeJSON, TypeYAML, TypeTable, TypeMarkdown:
		return Type(s), nil
	default:
		return "", fmt.Errorf("unknown formatter type: %s", s)
	}
}

// NewFormatter creates a new formatter of the specified type
func NewFormatter(t Type, opts *Options) (Formatter, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	switch t {
	case TypeJSON:
		return &JSON{opts: opts}, nil
	case TypeYAML:
		return &YAML{opts: opts}, nil
	case TypeTable:
		return &Table{opts: opts}, nil
	case TypeMarkdown:
		return &Markdown{opts: opts}, nil
	default:
		return nil, fmt.Errorf("unknown formatter type: %s", t)
	}
}
