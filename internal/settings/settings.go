// Package settings resolves display preferences and renders the matching
// favicon.
package settings

import (
	"fmt"
	"strings"
)

// Theme is a colour scheme.
type Theme string

const (
	ThemeNight Theme = "night"
	ThemeNavy  Theme = "navy"
	ThemeDay   Theme = "day"
	ThemeAuto  Theme = "auto"
)

// Accent is the highlight colour.
type Accent string

const (
	AccentGold Accent = "gold"
	AccentTeal Accent = "teal"
)

const (
	DefaultTheme  = ThemeNight
	DefaultAccent = AccentGold
)

// Themes lists the valid themes in menu order.
var Themes = []Theme{ThemeNight, ThemeNavy, ThemeDay, ThemeAuto}

// Accents lists the valid accents in menu order.
var Accents = []Accent{AccentGold, AccentTeal}

var accentHex = map[Accent]string{
	AccentGold: "#c9a84c",
	AccentTeal: "#3dbfa8",
}

type faviconColors struct {
	border string
	line   string
}

var faviconParams = map[Theme]faviconColors{
	ThemeNight: {border: "rgba(255,255,255,0.18)", line: "rgba(255,255,255,0.15)"},
	ThemeNavy:  {border: "rgba(208,216,240,0.18)", line: "rgba(208,216,240,0.15)"},
	ThemeDay:   {border: "rgba(26,26,26,0.18)", line: "rgba(26,26,26,0.18)"},
}

// ParseTheme returns the theme named s, or the default and false.
func ParseTheme(s string) (Theme, bool) {
	for _, t := range Themes {
		if string(t) == s {
			return t, true
		}
	}
	return DefaultTheme, false
}

// ParseAccent returns the accent named s, or the default and false.
func ParseAccent(s string) (Accent, bool) {
	if _, ok := accentHex[Accent(s)]; ok {
		return Accent(s), true
	}
	return DefaultAccent, false
}

// Resolve maps auto to night or day following the system preference.
// Other themes are returned unchanged; unknown ones become the default.
func Resolve(t Theme, prefersDark bool) Theme {
	if t == ThemeAuto {
		if prefersDark {
			return ThemeNight
		}
		return ThemeDay
	}
	if _, ok := faviconParams[t]; !ok {
		return DefaultTheme
	}
	return t
}

// AccentHex returns the CSS colour of a, falling back to the default accent.
func AccentHex(a Accent) string {
	if hex, ok := accentHex[a]; ok {
		return hex
	}
	return accentHex[DefaultAccent]
}

// Favicon renders the prompter icon for a theme and accent as an SVG
// document.
func Favicon(t Theme, a Accent, prefersDark bool) string {
	c := faviconParams[Resolve(t, prefersDark)]
	var b strings.Builder
	b.WriteString(`<svg xmlns='http://www.w3.org/2000/svg' viewBox='0 0 64 64'>`)
	fmt.Fprintf(&b, `<rect x='8' y='4' width='48' height='56' rx='8' fill='none' stroke='%s' stroke-width='4'/>`, c.border)
	fmt.Fprintf(&b, `<rect x='16' y='22' width='18' height='4' rx='2' fill='%s'/>`, c.line)
	fmt.Fprintf(&b, `<rect x='14' y='33' width='36' height='6' rx='3' fill='%s'/>`, AccentHex(a))
	fmt.Fprintf(&b, `<rect x='16' y='46' width='22' height='4' rx='2' fill='%s'/>`, c.line)
	b.WriteString(`</svg>`)
	return b.String()
}

// FaviconDataURL returns Favicon as a data: URL usable in a link element.
func FaviconDataURL(t Theme, a Accent, prefersDark bool) string {
	return "data:image/svg+xml," + escapeComponent(Favicon(t, a, prefersDark))
}

// escapeComponent percent-encodes everything outside the URI component
// unreserved set, leaving the characters JavaScript's encodeURIComponent
// leaves.
func escapeComponent(s string) string {
	const hex = "0123456789ABCDEF"
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z' || c >= '0' && c <= '9' || strings.IndexByte("-_.!~*'()", c) >= 0 {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&0x0f])
	}
	return b.String()
}
