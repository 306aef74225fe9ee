// Package sanitize re-validates parser output before it reaches a document.
//
// Line fragments are escaped by the transformer already; the policy here is
// a second, independent allow-list that only lets span elements with a class
// attribute through.
package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/ziadkadry99/prompter/internal/script"
)

var (
	linePolicy  = newLinePolicy()
	stripPolicy = bluemonday.StrictPolicy()
)

func newLinePolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("span")
	p.AllowAttrs("class").Matching(bluemonday.SpaceSeparatedTokens).OnElements("span")
	return p
}

// Fragment strips everything except span elements and their class attribute.
func Fragment(fragment string) string {
	return linePolicy.Sanitize(fragment)
}

// Script returns a copy of s with every line fragment passed through Fragment.
func Script(s script.Script) script.Script {
	out := make(script.Script, len(s))
	for i, slide := range s {
		blocks := make([]script.Block, len(slide.Blocks))
		for j, b := range slide.Blocks {
			if b.Kind == script.KindLine {
				b.HTML = Fragment(b.HTML)
			}
			blocks[j] = b
		}
		out[i] = script.Slide{Title: slide.Title, Blocks: blocks}
	}
	return out
}

// PlainText removes all markup from a fragment and decodes entities, for
// terminal output.
func PlainText(fragment string) string {
	return strings.TrimSpace(html.UnescapeString(stripPolicy.Sanitize(fragment)))
}
