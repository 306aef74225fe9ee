// Package script parses teleprompter scripts into slides and blocks.
//
// The dialect is deliberately small: "## " starts a slide, a line that is
// only an all-caps bracket such as [PAUSE] or [CLICK] is a presenter cue,
// and every other non-blank line is spoken text with **slow** emphasis and
// inline [DIRECTION] markers.
package script

import (
	"strings"
	"unicode"
)

// Parse splits text into slides. It never fails: every input line is either
// skipped, a slide boundary, a block cue, or a spoken line, and the result
// always holds at least one slide.
func Parse(text string) Script {
	var slides Script
	current := Slide{}

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimFunc(raw, isSpace)

		if line == "" || line == "---" {
			continue
		}

		if title, ok := strings.CutPrefix(line, "## "); ok {
			if len(current.Blocks) > 0 || current.Title != "" {
				slides = append(slides, current)
			}
			current = Slide{Title: strings.TrimFunc(title, isSpace)}
			continue
		}

		if tag, ok := matchBlockCue(line); ok {
			current.Blocks = append(current.Blocks, cueBlock(tag))
			continue
		}

		current.Blocks = append(current.Blocks, Line(Transform(line)))
	}

	return append(slides, current)
}

func cueBlock(tag string) Block {
	switch {
	case tag == "CLICK":
		return Click()
	case strings.HasPrefix(tag, "NOTE"):
		return Note(strings.TrimSpace(tag[len("NOTE"):]))
	default:
		// PAUSE, LOOK UP, SMILE and any other cue keep their full text.
		return Pause(tag)
	}
}

// isSpace also treats a byte-order mark as blank, so a script saved with
// one still opens on its first heading.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\ufeff'
}
