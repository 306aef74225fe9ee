package settings

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		theme Theme
		dark  bool
		want  Theme
	}{
		{ThemeAuto, true, ThemeNight},
		{ThemeAuto, false, ThemeDay},
		{ThemeNavy, false, ThemeNavy},
		{ThemeDay, true, ThemeDay},
		{"sepia", true, ThemeNight},
	}
	for _, tt := range tests {
		if got := Resolve(tt.theme, tt.dark); got != tt.want {
			t.Errorf("Resolve(%q, %v) = %q, want %q", tt.theme, tt.dark, got, tt.want)
		}
	}
}

func TestParse(t *testing.T) {
	if th, ok := ParseTheme("navy"); !ok || th != ThemeNavy {
		t.Errorf("ParseTheme(navy) = %q, %v", th, ok)
	}
	if th, ok := ParseTheme("neon"); ok || th != DefaultTheme {
		t.Errorf("ParseTheme(neon) = %q, %v", th, ok)
	}
	if a, ok := ParseAccent("teal"); !ok || a != AccentTeal {
		t.Errorf("ParseAccent(teal) = %q, %v", a, ok)
	}
	if a, ok := ParseAccent("pink"); ok || a != DefaultAccent {
		t.Errorf("ParseAccent(pink) = %q, %v", a, ok)
	}
}

func TestFaviconColours(t *testing.T) {
	svg := Favicon(ThemeDay, AccentTeal, true)
	if !strings.Contains(svg, "fill='#3dbfa8'") {
		t.Error("expected teal accent bar")
	}
	if !strings.Contains(svg, "stroke='rgba(26,26,26,0.18)'") {
		t.Error("expected day border")
	}

	auto := Favicon(ThemeAuto, AccentGold, true)
	if auto != Favicon(ThemeNight, AccentGold, false) {
		t.Error("auto with a dark system preference should match night")
	}
	if !strings.Contains(auto, "#c9a84c") {
		t.Error("expected gold accent bar")
	}
}

func TestFaviconDataURL(t *testing.T) {
	got := FaviconDataURL(ThemeNight, AccentGold, true)
	if !strings.HasPrefix(got, "data:image/svg+xml,%3Csvg%20xmlns%3D'http%3A%2F%2Fwww.w3.org") {
		t.Errorf("unexpected prefix: %.60s", got)
	}
	if strings.ContainsAny(got[len("data:image/svg+xml,"):], "<> #,") {
		t.Error("data URL contains unescaped characters")
	}
	if !strings.Contains(got, "%23c9a84c") {
		t.Error("expected escaped accent colour")
	}
}

func TestFaviconRoute(t *testing.T) {
	r := chi.NewRouter()
	RegisterRoutes(r, ThemeNavy, AccentGold)

	tests := []struct {
		query string
		want  []string
	}{
		{"", []string{"rgba(208,216,240,0.18)", "#c9a84c"}},
		{"?theme=day&accent=teal", []string{"rgba(26,26,26,0.18)", "#3dbfa8"}},
		{"?theme=auto&dark=0", []string{"rgba(26,26,26,0.18)"}},
		{"?theme=bogus&accent=bogus", []string{"rgba(208,216,240,0.18)", "#c9a84c"}},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/favicon.svg"+tt.query, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("%s: status %d", tt.query, w.Code)
		}
		if ct := w.Header().Get("Content-Type"); ct != "image/svg+xml" {
			t.Errorf("%s: content type %q", tt.query, ct)
		}
		for _, s := range tt.want {
			if !strings.Contains(w.Body.String(), s) {
				t.Errorf("%s: body missing %q", tt.query, s)
			}
		}
	}
}

func TestAccentHexFallsBack(t *testing.T) {
	if AccentHex(AccentTeal) == AccentHex(AccentGold) {
		t.Fatal("teal and gold share a colour")
	}
	if got := AccentHex(Accent("purple")); got != AccentHex(DefaultAccent) {
		t.Errorf("AccentHex(purple) = %q, want default %q", got, AccentHex(DefaultAccent))
	}
}
