package script

import (
	"regexp"
	"strings"
)

// cueBody matches the content of an all-caps bracket: an uppercase letter,
// more uppercase letters or spaces, then optionally one tail introduced by
// an em dash, hyphen, period, comma, '!', '?' or any Unicode space.
const cueBody = `([A-Z][A-Z ]*(?:[\x{2014}\-.,!?\s\p{Z}\x{FEFF}].*)?)`

var (
	blockCueRe  = regexp.MustCompile(`^\[` + cueBody + `\]$`)
	directionRe = regexp.MustCompile(`\[` + cueBody + `\]`)
	slowRe      = regexp.MustCompile(`\*\*(.+?)\*\*`)

	htmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
)

// Transform converts one spoken line into an HTML fragment. The text is
// escaped before any markup is expanded, so the only tags in the result are
// the spans Transform inserts itself. Transform is not idempotent: running
// it on its own output escapes those spans.
func Transform(text string) string {
	html := htmlEscaper.Replace(text)
	html = slowRe.ReplaceAllString(html, `<span class="slow">${1}</span>`)
	html = directionRe.ReplaceAllString(html, `<span class="d">[${1}]</span>`)
	return html
}

// matchBlockCue reports whether line is a single all-caps bracket and
// returns its trimmed content.
func matchBlockCue(line string) (string, bool) {
	m := blockCueRe.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return strings.TrimFunc(m[1], isSpace), true
}
