package types

// Match represents a single element found in a document
type Match struct {
	// Index is the position of the match in document order, starting at 1
	Index int `json:"index" yaml:"index"`
	// HTML is the matched substring from opening to closing tag
	HTML string `json:"html" yaml:"html"`
	// Text is the matched element with tags stripped
	Text string `json:"text" yaml:"text"`
}

// Result represents the outcome of a single query against a document
type Result struct {
	// Basic information
	Version   string `json:"version" yaml:"version"`
	Source    string `json:"source" yaml:"source"`
	Strategy  string `json:"strategy" yaml:"strategy"`
	Selector  string `json:"selector" yaml:"selector"`
	Success   bool   `json:"success" yaml:"success"`
	Error     string `json:"error,omitempty" yaml:"error,omitempty"`
	Timestamp int64  `json:"timestamp" yaml:"timestamp"`

	// Matched elements in document order
	Matches []Match `json:"matches" yaml:"matches"`

	// Formatted output
	OutputFormatted string `json:"-" yaml:"-"`

	// Additional data
	Extra map[string]interface{} `json:"extra,omitempty" yaml:"extra,omitempty"`
}

// NewMatches numbers elements in order, pairing each with its text
func NewMatches(elements []string, text func(string) string) []Match {
	matches := make([]Match, 0, len(elements))
	for i, el := range elements {
		m := Match{Index: i + 1, HTML: el}
		if text != nil {
			m.Text = text(el)
		}
		matches = append(matches, m)
	}
	return matches
}

// Count returns the number of matched elements
func (r *Result) Count() int {
	return len(r.Matches)
}
