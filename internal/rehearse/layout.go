package rehearse

import (
	"fmt"
	"strings"
	"time"

	"github.com/ziadkadry99/prompter/internal/sanitize"
	"github.com/ziadkadry99/prompter/internal/script"
	"github.com/ziadkadry99/prompter/internal/session"
)

// Row heights in pixels of the virtual page.
const (
	headingHeight = 56
	lineHeight    = 40
	cueHeight     = 32
)

// Row is one printable row of the virtual page.
type Row struct {
	Text   string
	Line   int // global line index, -1 for headings and cues
	Y      float64
	Height float64
}

// Layout stacks the script's headings and blocks top to bottom and returns
// the rows with the total page height.
func Layout(sc script.Script) ([]Row, float64) {
	var rows []Row
	y := 0.0
	line := 0
	add := func(text string, idx int, h float64) {
		rows = append(rows, Row{Text: text, Line: idx, Y: y, Height: h})
		y += h
	}

	for _, slide := range sc {
		if slide.Title != "" {
			add("## "+slide.Title, -1, headingHeight)
		}
		for _, b := range slide.Blocks {
			switch b.Kind {
			case script.KindLine:
				add(sanitize.PlainText(b.HTML), line, lineHeight)
				line++
			case script.KindClick:
				add("    [CLICK]", -1, cueHeight)
			case script.KindPause:
				add("    ["+b.Cue+"]", -1, cueHeight)
			case script.KindNote:
				add("    (note) "+b.Text, -1, cueHeight)
			}
		}
	}
	return rows, y
}

// Outline renders the layout as plain text with spoken lines numbered.
func Outline(sc script.Script) string {
	rows, _ := Layout(sc)
	var b strings.Builder
	for _, r := range rows {
		if r.Line >= 0 {
			fmt.Fprintf(&b, "%4d  %s\n", r.Line+1, r.Text)
		} else {
			fmt.Fprintf(&b, "      %s\n", r.Text)
		}
	}
	return b.String()
}

// EstimateDuration is how long auto-scroll at level takes to carry the
// reading line from the first row to the end of the page.
func EstimateDuration(sc script.Script, level int) time.Duration {
	_, height := Layout(sc)
	seconds := height / session.Speed(level)
	return time.Duration(seconds * float64(time.Second))
}
