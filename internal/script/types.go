package script

// Kind identifies the variant of a Block.
type Kind string

const (
	KindLine  Kind = "line"
	KindClick Kind = "click"
	KindPause Kind = "pause"
	KindNote  Kind = "note"
)

// Block is one parsed unit within a slide. Only the field matching Kind is
// populated: HTML for lines, Cue for pauses, Text for notes.
type Block struct {
	Kind Kind   `json:"type"`
	HTML string `json:"html,omitempty"`
	Cue  string `json:"cue,omitempty"`
	Text string `json:"text,omitempty"`
}

// Line returns a spoken line block holding an already transformed fragment.
func Line(html string) Block { return Block{Kind: KindLine, HTML: html} }

// Click returns a presenter click cue.
func Click() Block { return Block{Kind: KindClick} }

// Pause returns a pause cue preserving the full bracket content.
func Pause(cue string) Block { return Block{Kind: KindPause, Cue: cue} }

// Note returns a note cue.
func Note(text string) Block { return Block{Kind: KindNote, Text: text} }

// Slide is a titled group of blocks delimited by a "## " heading.
type Slide struct {
	Title  string  `json:"title"`
	Blocks []Block `json:"blocks"`
}

// Script is the parsed result of one document. It always holds at least
// one slide when produced by Parse.
type Script []Slide

// TotalLines counts the line blocks across all slides.
func (s Script) TotalLines() int {
	n := 0
	for _, slide := range s {
		for _, b := range slide.Blocks {
			if b.Kind == KindLine {
				n++
			}
		}
	}
	return n
}

// Lines returns the line blocks flattened in slide order. The position of a
// block in the result is its global line index.
func (s Script) Lines() []Block {
	var lines []Block
	for _, slide := range s {
		for _, b := range slide.Blocks {
			if b.Kind == KindLine {
				lines = append(lines, b)
			}
		}
	}
	return lines
}

// LineOffsets returns, for every slide, the global index of its first line.
// A slide without lines gets the index its next line would have.
func (s Script) LineOffsets() []int {
	offsets := make([]int, len(s))
	n := 0
	for i, slide := range s {
		offsets[i] = n
		for _, b := range slide.Blocks {
			if b.Kind == KindLine {
				n++
			}
		}
	}
	return offsets
}

// SlideOfLine returns the index of the slide containing global line index
// line, or -1 when line is out of range.
func (s Script) SlideOfLine(line int) int {
	if line < 0 {
		return -1
	}
	n := 0
	for i, slide := range s {
		for _, b := range slide.Blocks {
			if b.Kind != KindLine {
				continue
			}
			if n == line {
				return i
			}
			n++
		}
	}
	return -1
}

// FirstLineOfSlide returns the global index of the first line in slide i,
// or -1 when the slide does not exist or has no lines.
func (s Script) FirstLineOfSlide(i int) int {
	if i < 0 || i >= len(s) {
		return -1
	}
	offset := s.LineOffsets()[i]
	for _, b := range s[i].Blocks {
		if b.Kind == KindLine {
			return offset
		}
	}
	return -1
}
