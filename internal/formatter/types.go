package formatter

// Type represents the type of formatter
type Type string

const (
	// TypeJSON formats data as JSON
	TypeJSON Type = "json"
	// TypeYAML formats data as YAML
	TypeYAML Type = "yaml"
	// TypeTable formats data as a table
	TypeTable Type = "table"
	// TypeMarkdown formats data as markdown
	TypeMarkdown Type = "markdown"
)

// Options controls what the formatters include in their output
type Options struct {
	// IncludeMetadata adds source, strategy and timestamp details
	IncludeMetadata bool
	// MaxHTMLWidth wraps the HTML column of tables, zero disables wrapping
	MaxHTMLWidth int
}

// DefaultOptions returns the default formatter options
func DefaultOptions() *Options {
	return &Options{
		IncludeMetadata: true,
		MaxHTMLWidth:    80,
	}
}

// JSON implements JSON formatting
type JSON struct {
	opts *Options
}

// YAML implements YAML formatting
type YAML struct {
	opts *Options
}

// Table implements table formatting
type Table struct {
	opts *Options
}

// Markdown implements markdown formatting
type Markdown struct {
	opts *Options
}

type MatchEntry struct {
	Index int    `json:"index" yaml:"index"`
	Text  string `json:"text" yaml:"text"`
	HTML  string `json:"html" yaml:"html"`
}

type Metadata struct {
	Version   string                 `json:"version" yaml:"version"`
	Source    string                 `json:"source" yaml:"source"`
	Strategy  string                 `json:"strategy" yaml:"strategy"`
	Selector  string                 `json:"selector" yaml:"selector"`
	Timestamp int64                  `json:"timestamp" yaml:"timestamp"`
	Extra     map[string]interface{} `json:"extra,omitempty" yaml:"extra,omitempty"`
}

type ParsedData struct {
	Metadata *Metadata    `json:"metadata,omitempty" yaml:"metadata,omitempty"`
	Count    int          `json:"count" yaml:"count"`
	Matches  []MatchEntry `json:"matches" yaml:"matches"`
}
