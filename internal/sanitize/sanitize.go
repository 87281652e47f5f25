// Package sanitize holds the single HTML policy applied to board content.
// Content is sanitized once, at write time; the read path serves it as-is.
package sanitize

import (
	"regexp"

	"github.com/microcosm-cc/bluemonday"
)

var (
	colorPattern    = regexp.MustCompile(`^.*$`)
	fontSizePattern = regexp.MustCompile(`^\d+(?:px|em|rem|%)$`)
)

var policy = buildPolicy()

func buildPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()

	p.AllowElements(
		"a", "b", "blockquote", "br", "caption", "code", "div", "em",
		"hr", "i", "li", "ol", "p", "pre", "s", "small", "strong",
		"sub", "sup", "table", "tbody", "td", "th", "thead", "tr",
		"u", "ul",
		// rich-editor extras on top of the safe baseline
		"img", "h1", "h2", "h3", "span",
	)

	p.AllowAttrs("href", "name", "target", "rel").OnElements("a")
	p.AllowAttrs("src", "alt", "width", "height").OnElements("img")
	p.AllowStandardURLs()

	p.AllowAttrs("style").Globally()
	p.AllowStyles("color").Matching(colorPattern).Globally()
	p.AllowStyles("text-align").MatchingEnum("left", "right", "center", "justify").Globally()
	p.AllowStyles("font-size").Matching(fontSizePattern).Globally()

	return p
}

// HTML strips everything outside the allow-list. Running it over already
// sanitized content returns the same output.
func HTML(content string) string {
	return policy.Sanitize(content)
}
