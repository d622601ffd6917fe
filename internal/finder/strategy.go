package finder

import (
	"errors"
	"fmt"
	"strings"
)

// Strategy names the kind of lookup a selector is resolved with
type Strategy string

const (
	// StrategyTagName matches elements by tag name
	StrategyTagName Strategy = "tag"
	// StrategyID matches elements by id attribute
	StrategyID Strategy = "id"
	// StrategyName matches elements by name attribute
	StrategyName Strategy = "name"
	// StrategyClassName matches elements by a class token
	StrategyClassName Strategy = "class"
	// StrategyCSSSelector matches a small subset of CSS selectors
	StrategyCSSSelector Strategy = "css"
	// StrategyLinkText matches anchors by exact text
	StrategyLinkText Strategy = "link"
	// StrategyPartialLinkText matches anchors by a text fragment
	StrategyPartialLinkText Strategy = "partial-link"
	// StrategyXPath matches the //tagname form only
	StrategyXPath Strategy = "xpath"
)

// ErrUnknownStrategy is returned for strategy names that cannot be resolved
var ErrUnknownStrategy = errors.New("unknown strategy")

// Strategies lists every supported strategy in a stable order
func Strategies() []Strategy {
	return []Strategy{
		StrategyTagName,
		StrategyID,
		StrategyName,
		StrategyClassName,
		StrategyCSSSelector,
		StrategyLinkText,
		StrategyPartialLinkText,
		StrategyXPath,
	}
}

// ParseStrategy converts a user supplied name into a Strategy.
// Common long forms such as "tag_name" or "partial_link_text" are accepted.
func ParseStrategy(s string) (Strategy, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	name = strings.NewReplacer("_", "-", " ", "-").Replace(name)

	switch name {
	case "tag", "tag-name":
		return StrategyTagName, nil
	case "id":
		return StrategyID, nil
	case "name":
		return StrategyName, nil
	case "class", "class-name":
		return StrategyClassName, nil
	case "css", "css-selector":
		return StrategyCSSSelector, nil
	case "link", "link-text":
		return StrategyLinkText, nil
	case "partial-link", "partial-link-text":
		return StrategyPartialLinkText, nil
	case "xpath":
		return StrategyXPath, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownStrategy, s)
	}
}
