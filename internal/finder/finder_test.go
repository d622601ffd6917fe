package finder

import (
	"context"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/alevsk/htmlfind/internal/document"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixturePath = filepath.Join("..", "..", "testdata", "index.html")

// loadFixture loads the shared index.html page
func loadFixture(t *testing.T) *Finder {
	t.Helper()
	doc, err := document.Load(context.Background(), fixturePath)
	require.NoError(t, err, "failed to load fixture")
	return FromDocument(doc)
}

func TestByTagName(t *testing.T) {
	page := loadFixture(t)

	tests := []struct {
		tag  string
		want int
	}{
		{tag: "tr", want: 3},
		{tag: "TR", want: 3},
		{tag: "td", want: 4},
		{tag: "th", want: 2},
		{tag: "table", want: 1},
		{tag: "a", want: 3},
		{tag: "option", want: 3},
		{tag: "input", want: 0},
		{tag: "article", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			assert.Len(t, page.ByTagName(tt.tag), tt.want)
		})
	}
}

func TestByID(t *testing.T) {
	page := loadFixture(t)

	els := page.ByID("primera")
	require.NotEmpty(t, els)
	assert.Contains(t, strings.ToLower(els[0]), "table")
	assert.True(t, strings.HasPrefix(els[0], "<table"))
	assert.True(t, strings.HasSuffix(els[0], "</table>"))

	assert.Len(t, page.ByID("PRIMERA"), 1, "id lookup is case-insensitive")
	assert.Empty(t, page.ByID("segunda"))
}

func TestByClassName(t *testing.T) {
	page := loadFixture(t)

	rojo := page.ByClassName("rojo")
	require.Len(t, rojo, 2)
	assert.Contains(t, InnerText(rojo[0]), "1")
	assert.Equal(t, "4", InnerText(rojo[1]))

	assert.Len(t, page.ByClassName("negrita"), 2, "class listed among several")
	assert.Empty(t, page.ByClassName("roj"), "partial class token must not match")
}

func TestByName(t *testing.T) {
	page := loadFixture(t)

	selects := page.ByName("ingrediente")
	require.Len(t, selects, 1)
	assert.True(t, strings.HasPrefix(selects[0], "<select"))

	assert.Len(t, page.ByName("tabla_prueba"), 1)
	assert.Empty(t, page.ByName("cantidad"), "void elements have no closing tag to match")
}

func TestByLinkText(t *testing.T) {
	page := loadFixture(t)

	exact := page.ByLinkText("Pagina 2")
	require.Len(t, exact, 1)
	assert.Contains(t, exact[0], `href="pagina2.html"`)

	assert.Len(t, page.ByLinkText("pagina 2"), 1, "link text match is case-insensitive")
	assert.Empty(t, page.ByLinkText("Pagina"), "link text must match exactly")
	assert.Empty(t, page.ByLinkText("Link 3"), "nested markup prevents an exact match")
}

func TestByPartialLinkText(t *testing.T) {
	page := loadFixture(t)

	tests := []struct {
		partial string
		want    int
	}{
		{partial: "Link 1", want: 1},
		{partial: "Link", want: 2},
		{partial: "Pagina", want: 1},
		{partial: "link", want: 0},
		{partial: "", want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.partial, func(t *testing.T) {
			assert.Len(t, page.ByPartialLinkText(tt.partial), tt.want)
		})
	}
}

func TestByCSSSelector(t *testing.T) {
	page := loadFixture(t)

	tests := []struct {
		name     string
		selector string
		want     int
	}{
		{name: "id", selector: "#primera", want: 1},
		{name: "class", selector: ".rojo", want: 2},
		{name: "tag with class", selector: "td.rojo", want: 2},
		{name: "tag with trailing class token", selector: "td.negrita", want: 0},
		{name: "tag", selector: "tr", want: 3},
		{name: "surrounding whitespace", selector: "  table  ", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, page.ByCSSSelector(tt.selector), tt.want)
		})
	}
}

func TestByXPath(t *testing.T) {
	page := loadFixture(t)

	assert.Len(t, page.ByXPath("//tr"), 3)
	assert.Equal(t, page.ByTagName("option"), page.ByXPath("//option"))

	for _, unsupported := range []string{"//table/tr", "/html", "//tr[1]", "tr", ""} {
		assert.Empty(t, page.ByXPath(unsupported), "xpath %q", unsupported)
	}
}

func TestTableNameAttribute(t *testing.T) {
	page := loadFixture(t)

	pattern := regexp.MustCompile(`(?i)<table[^>]*\sname=['"]tabla_prueba['"]`)
	assert.True(t, pattern.MatchString(page.HTML()))

	byID := regexp.MustCompile(`(?i)<table[^>]*id=['"]primera['"]`)
	assert.NotEmpty(t, byID.FindAllString(page.HTML(), -1))

	assert.True(t, page.HasAttribute("table", "name", "tabla_prueba"))
	assert.False(t, page.HasAttribute("table", "name", "otra"))
	assert.False(t, page.HasAttribute("select", "name", "tabla_prueba"))
}

func TestFindIsIdempotent(t *testing.T) {
	page := loadFixture(t)

	for _, s := range Strategies() {
		first, err := page.Find(s, "rojo")
		require.NoError(t, err)
		second, err := page.Find(s, "rojo")
		require.NoError(t, err)
		assert.Equal(t, first, second, "strategy %s", s)
	}
}

func TestFindDispatch(t *testing.T) {
	page := loadFixture(t)

	tests := []struct {
		strategy Strategy
		selector string
		want     int
	}{
		{StrategyTagName, "tr", 3},
		{StrategyID, "primera", 1},
		{StrategyName, "ingrediente", 1},
		{StrategyClassName, "rojo", 2},
		{StrategyCSSSelector, "td.rojo", 2},
		{StrategyLinkText, "Pagina 2", 1},
		{StrategyPartialLinkText, "Link", 2},
		{StrategyXPath, "//tr", 3},
	}

	for _, tt := range tests {
		t.Run(string(tt.strategy), func(t *testing.T) {
			got, err := page.Find(tt.strategy, tt.selector)
			require.NoError(t, err)
			assert.Len(t, got, tt.want)
		})
	}

	_, err := page.Find(Strategy("shadow-dom"), "x")
	assert.ErrorIs(t, err, ErrUnknownStrategy)
}

func TestNestedSameTagClosesEarly(t *testing.T) {
	page := New(`<div id="outer"><div class="inner">a</div>b</div>`)

	outer := page.ByID("outer")
	require.Len(t, outer, 1)
	assert.Equal(t, `<div id="outer"><div class="inner">a</div>`, outer[0])

	assert.Equal(t, []string{`<div id="outer"><div class="inner">a</div>`}, page.ByTagName("div"))
}

func TestSelectorsAreEscaped(t *testing.T) {
	page := New(`<p class="a.b">dot</p><p class="axb">x</p><a href="#">1+1</a>`)

	assert.Len(t, page.ByClassName("a.b"), 1)
	assert.Len(t, page.ByLinkText("1+1"), 1)
	assert.Empty(t, page.ByTagName("p|a"))
}

func TestSingleQuotedAttributes(t *testing.T) {
	page := New("<ul>\n<li id='uno' class='x y'>\n1\n</li>\n</ul>")

	assert.Len(t, page.ByID("uno"), 1)
	assert.Len(t, page.ByClassName("y"), 1)
	assert.Equal(t, "1", InnerText(page.ByID("uno")[0]))
}

func TestInnerText(t *testing.T) {
	tests := []struct {
		name    string
		element string
		want    string
	}{
		{name: "plain", element: "<td>1</td>", want: "1"},
		{name: "nested", element: "<a href=\"#\"><span>Link 3</span></a>", want: "Link 3"},
		{name: "multiline tag", element: "<a\n href=\"#\">\n  x \n</a>", want: "x"},
		{name: "no tags", element: "  text ", want: "text"},
		{name: "empty", element: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InnerText(tt.element))
		})
	}
}

// TestCountsAgreeWithParser cross-checks flat fixture lookups against a real
// HTML parser. Only lookups without nested same-tag elements are compared.
func TestCountsAgreeWithParser(t *testing.T) {
	page := loadFixture(t)
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page.HTML()))
	require.NoError(t, err)

	assert.Equal(t, doc.Find("tr").Length(), len(page.ByTagName("tr")))
	assert.Equal(t, doc.Find("a").Length(), len(page.ByTagName("a")))
	assert.Equal(t, doc.Find("#primera").Length(), len(page.ByID("primera")))
	assert.Equal(t, doc.Find(".rojo").Length(), len(page.ByClassName("rojo")))
	assert.Equal(t, doc.Find(`[name="ingrediente"]`).Length(), len(page.ByName("ingrediente")))

	rojo := page.ByClassName("rojo")
	doc.Find(".rojo").Each(func(i int, s *goquery.Selection) {
		assert.Equal(t, strings.TrimSpace(s.Text()), InnerText(rojo[i]))
	})
}
