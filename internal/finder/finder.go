// Package finder locates HTML elements in raw document text using regular
// expressions instead of a parsed DOM tree.
//
// Matching is case-insensitive and spans newlines. It is not nesting-aware:
// for nested elements with the same tag name the first closing tag wins.
package finder

import (
	"fmt"
	"strings"

	"github.com/alevsk/htmlfind/internal/document"
	"github.com/alevsk/htmlfind/internal/logger"
	"github.com/dlclark/regexp2"
)

const reOptions = regexp2.IgnoreCase | regexp2.Singleline

var (
	tagPattern   = regexp2.MustCompile(`<.*?>`, regexp2.Singleline)
	xpathPattern = regexp2.MustCompile(`^//([a-zA-Z0-9]+)$`, regexp2.None)
)

// Finder runs element lookups against a single immutable document text
type Finder struct {
	html string
}

// New creates a Finder over the given document text
func New(html string) *Finder {
	return &Finder{html: html}
}

// FromDocument creates a Finder over a loaded document
func FromDocument(doc *document.Document) *Finder {
	return New(doc.Text())
}

// HTML returns the text the finder searches
func (f *Finder) HTML() string {
	return f.html
}

// ByTagName returns every <tag ...>...</tag> element, closing at the first
// matching end tag
func (f *Finder) ByTagName(tag string) []string {
	t := regexp2.Escape(tag)
	return f.findAll(fmt.Sprintf(`<(%s)(?:\s[^>]*)?>(.*?)</%s>`, t, t))
}

// ByID returns elements whose opening tag carries id="id"
func (f *Finder) ByID(id string) []string {
	return f.findAll(attributePattern("id", regexp2.Escape(id)))
}

// ByName returns elements whose opening tag carries name="name"
func (f *Finder) ByName(name string) []string {
	return f.findAll(attributePattern("name", regexp2.Escape(name)))
}

// ByClassName returns elements whose class attribute lists cls as a whole word
func (f *Finder) ByClassName(cls string) []string {
	value := fmt.Sprintf(`[^'"]*\b%s\b[^'"]*`, regexp2.Escape(cls))
	return f.findAll(attributePattern("class", value))
}

// ByCSSSelector supports "#id", ".class", "tag.class" and "tag" selectors.
// For "tag.class" the tag matches are filtered with a plain substring check
// on the class token.
func (f *Finder) ByCSSSelector(selector string) []string {
	sel := strings.TrimSpace(selector)
	switch {
	case strings.HasPrefix(sel, "#"):
		return f.ByID(sel[1:])
	case strings.HasPrefix(sel, "."):
		return f.ByClassName(sel[1:])
	case strings.Contains(sel, "."):
		tag, cls, _ := strings.Cut(sel, ".")
		var out []string
		for _, el := range f.ByTagName(tag) {
			if strings.Contains(el, `class="`+cls) ||
				strings.Contains(el, `class='`+cls) ||
				strings.Contains(el, " "+cls+" ") {
				out = append(out, el)
			}
		}
		return out
	default:
		return f.ByTagName(sel)
	}
}

// ByLinkText returns anchors whose text is exactly text, ignoring
// surrounding whitespace. Nested markup inside the anchor prevents a match.
func (f *Finder) ByLinkText(text string) []string {
	return f.findAll(fmt.Sprintf(`<a(?:\s[^>]*)?>(\s*%s\s*)</a>`, regexp2.Escape(text)))
}

// ByPartialLinkText returns anchors whose tag-stripped text contains partial.
// The containment check is case-sensitive.
func (f *Finder) ByPartialLinkText(partial string) []string {
	var out []string
	for _, el := range f.findAll(`<a(?:\s[^>]*)?>(.*?)</a>`) {
		if strings.Contains(InnerText(el), partial) {
			out = append(out, el)
		}
	}
	return out
}

// ByXPath only understands the absolute form //tagname; any other
// expression yields no elements
func (f *Finder) ByXPath(path string) []string {
	m, err := xpathPattern.FindStringMatch(path)
	if err != nil || m == nil {
		logger.Debug().Str("xpath", path).Msg("unsupported xpath expression")
		return nil
	}
	return f.ByTagName(m.GroupByNumber(1).String())
}

// HasAttribute reports whether some opening <tag ...> carries attr="value"
func (f *Finder) HasAttribute(tag, attr, value string) bool {
	pattern := fmt.Sprintf(`<%s[^>]*\s%s=['"]%s['"]`,
		regexp2.Escape(tag), regexp2.Escape(attr), regexp2.Escape(value))
	re, err := regexp2.Compile(pattern, regexp2.IgnoreCase)
	if err != nil {
		return false
	}
	ok, err := re.MatchString(f.html)
	return err == nil && ok
}

// Find dispatches a lookup by strategy
func (f *Finder) Find(strategy Strategy, selector string) ([]string, error) {
	switch strategy {
	case StrategyTagName:
		return f.ByTagName(selector), nil
	case StrategyID:
		return f.ByID(selector), nil
	case StrategyName:
		return f.ByName(selector), nil
	case StrategyClassName:
		return f.ByClassName(selector), nil
	case StrategyCSSSelector:
		return f.ByCSSSelector(selector), nil
	case StrategyLinkText:
		return f.ByLinkText(selector), nil
	case StrategyPartialLinkText:
		return f.ByPartialLinkText(selector), nil
	case StrategyXPath:
		return f.ByXPath(selector), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownStrategy, strategy)
	}
}

// InnerText strips every tag from an element and trims surrounding whitespace
func InnerText(element string) string {
	text, err := tagPattern.Replace(element, "", -1, -1)
	if err != nil {
		return strings.TrimSpace(element)
	}
	return strings.TrimSpace(text)
}

// attributePattern matches any element whose opening tag has attr set to a
// value matching valuePattern, closed by the same tag name
func attributePattern(attr, valuePattern string) string {
	return fmt.Sprintf(`<([a-z0-9]+)(?:\s[^>]*)?\s%s=['"]%s['"](?:[^>]*)>(.*?)</\1>`, attr, valuePattern)
}

// findAll compiles pattern and collects every match in document order
func (f *Finder) findAll(pattern string) []string {
	re, err := regexp2.Compile(pattern, reOptions)
	if err != nil {
		logger.Debug().Err(err).Str("pattern", pattern).Msg("pattern did not compile")
		return nil
	}

	var out []string
	m, err := re.FindStringMatch(f.html)
	for err == nil && m != nil {
		out = append(out, m.String())
		m, err = re.FindNextMatch(m)
	}
	if err != nil {
		logger.Warn().Err(err).Str("pattern", pattern).Msg("match aborted")
	}
	return out
}
