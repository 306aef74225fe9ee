package script

import (
	"strings"
	"testing"
)

func TestParseSlideBoundaries(t *testing.T) {
	slides := Parse("## Slide One\n\nHello.\n\n## Slide Two\n\nWorld.")
	if len(slides) != 2 {
		t.Fatalf("expected 2 slides, got %d", len(slides))
	}
	if slides[0].Title != "Slide One" {
		t.Errorf("slides[0].Title = %q, want %q", slides[0].Title, "Slide One")
	}
	if slides[1].Title != "Slide Two" {
		t.Errorf("slides[1].Title = %q, want %q", slides[1].Title, "Slide Two")
	}
}

func TestParseImplicitFirstSlide(t *testing.T) {
	slides := Parse("Hello world.")
	if len(slides) != 1 {
		t.Fatalf("expected 1 slide, got %d", len(slides))
	}
	if slides[0].Title != "" {
		t.Errorf("Title = %q, want empty", slides[0].Title)
	}
	if len(slides[0].Blocks) != 1 {
		t.Errorf("expected 1 block, got %d", len(slides[0].Blocks))
	}
}

func TestParseLeadingContentAddsSlide(t *testing.T) {
	slides := Parse("Intro line.\n## One\nA\n## Two\nB")
	if len(slides) != 3 {
		t.Fatalf("expected 3 slides, got %d", len(slides))
	}
	if slides[0].Title != "" || slides[1].Title != "One" || slides[2].Title != "Two" {
		t.Errorf("titles = %q, %q, %q", slides[0].Title, slides[1].Title, slides[2].Title)
	}
}

func TestParseIgnoresDividersAndBlankLines(t *testing.T) {
	slides := Parse("## Slide One\n\n\n\nHello.\n\n---\n\n## Slide Two\n\nWorld.\n\n\n")
	if len(slides) != 2 {
		t.Fatalf("expected 2 slides, got %d", len(slides))
	}
	if len(slides[0].Blocks) != 1 {
		t.Errorf("expected 1 block in first slide, got %d", len(slides[0].Blocks))
	}
}

func TestParseEmptyInput(t *testing.T) {
	for _, input := range []string{"", "   \n   ", "   \n   \n   ", "\n---\n"} {
		slides := Parse(input)
		if len(slides) != 1 {
			t.Errorf("Parse(%q): expected 1 slide, got %d", input, len(slides))
			continue
		}
		if len(slides[0].Blocks) != 0 {
			t.Errorf("Parse(%q): expected 0 blocks, got %d", input, len(slides[0].Blocks))
		}
		if slides[0].Title != "" {
			t.Errorf("Parse(%q): Title = %q, want empty", input, slides[0].Title)
		}
	}
}

func TestParseTrailingEmptySlideIsKept(t *testing.T) {
	slides := Parse("## One\nHello.\n## Two")
	if len(slides) != 2 {
		t.Fatalf("expected 2 slides, got %d", len(slides))
	}
	if len(slides[1].Blocks) != 0 {
		t.Errorf("expected empty last slide, got %d blocks", len(slides[1].Blocks))
	}
}

func TestParseHeadingCount(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 7; i++ {
		b.WriteString("## Heading\nline\n")
	}
	if got := len(Parse(b.String())); got != 7 {
		t.Errorf("expected 7 slides, got %d", got)
	}
	if got := len(Parse("preamble\n" + b.String())); got != 8 {
		t.Errorf("expected 8 slides with preamble, got %d", got)
	}
}

func TestParseCRLF(t *testing.T) {
	slides := Parse("## One\r\n\r\n[CLICK]\r\nHello.\r\n")
	if len(slides) != 1 {
		t.Fatalf("expected 1 slide, got %d", len(slides))
	}
	if slides[0].Title != "One" {
		t.Errorf("Title = %q, want %q", slides[0].Title, "One")
	}
	if len(slides[0].Blocks) != 2 || slides[0].Blocks[0].Kind != KindClick {
		t.Errorf("blocks = %+v", slides[0].Blocks)
	}
}

func TestParseByteOrderMark(t *testing.T) {
	slides := Parse("\ufeff## Opening\nHello.")
	if len(slides) != 1 {
		t.Fatalf("expected 1 slide, got %d", len(slides))
	}
	if slides[0].Title != "Opening" {
		t.Errorf("Title = %q, want %q", slides[0].Title, "Opening")
	}
	if len(slides[0].Blocks) != 1 || slides[0].Blocks[0].HTML != "Hello." {
		t.Errorf("blocks = %+v", slides[0].Blocks)
	}
}

func TestParseUnicodeSpaceInCue(t *testing.T) {
	slides := Parse("[PAUSE\u00a0breathe]\nGo.")
	blocks := slides[0].Blocks
	if len(blocks) != 2 {
		t.Fatalf("blocks = %+v", blocks)
	}
	if blocks[0] != Pause("PAUSE\u00a0breathe") {
		t.Errorf("cue = %+v, want pause", blocks[0])
	}
}

func TestParseBlockCues(t *testing.T) {
	tests := []struct {
		line string
		want Block
	}{
		{"[CLICK]", Click()},
		{"[PAUSE]", Pause("PAUSE")},
		{"[PAUSE — let this land. 4 seconds.]", Pause("PAUSE — let this land. 4 seconds.")},
		{"[LOOK UP]", Pause("LOOK UP")},
		{"[SMILE]", Pause("SMILE")},
		{"  [SMILE]  ", Pause("SMILE")},
		{"[NOTE — refer to slide]", Note("— refer to slide")},
		{"[NOTE]", Note("")},
		{"[CLICK AGAIN]", Pause("CLICK AGAIN")},
	}
	for _, tt := range tests {
		blocks := Parse("## S\n\n" + tt.line)[0].Blocks
		if len(blocks) != 1 {
			t.Errorf("%q: expected 1 block, got %d", tt.line, len(blocks))
			continue
		}
		if blocks[0] != tt.want {
			t.Errorf("%q: got %+v, want %+v", tt.line, blocks[0], tt.want)
		}
	}
}

func TestParseNonCueBrackets(t *testing.T) {
	for _, line := range []string{"[footnote 1]", "[]", "[unclosed", "[1 DAY]", "[PAUSE] then talk"} {
		blocks := Parse(line)[0].Blocks
		if len(blocks) != 1 {
			t.Errorf("%q: expected 1 block, got %d", line, len(blocks))
			continue
		}
		if blocks[0].Kind != KindLine {
			t.Errorf("%q: Kind = %q, want %q", line, blocks[0].Kind, KindLine)
		}
	}
}

func TestParseUnclosedBracketIsPlainText(t *testing.T) {
	b := Parse("[unclosed")[0].Blocks[0]
	if b.Kind != KindLine {
		t.Fatalf("Kind = %q, want line", b.Kind)
	}
	if strings.Contains(b.HTML, `class="d"`) {
		t.Errorf("unexpected direction span in %q", b.HTML)
	}
	if b.HTML != "[unclosed" {
		t.Errorf("HTML = %q, want %q", b.HTML, "[unclosed")
	}
}

func TestParseLowercaseBracketNeverDirection(t *testing.T) {
	for _, input := range []string{"[footnote 1]", "See [footnote 1] for details."} {
		b := Parse(input)[0].Blocks[0]
		if strings.Contains(b.HTML, `<span class="d">`) {
			t.Errorf("%q produced a direction span: %q", input, b.HTML)
		}
	}
}

func TestParseBlockOrder(t *testing.T) {
	blocks := Parse("## S\nOne.\n[CLICK]\nTwo.\n[NOTE x]\n[PAUSE]\nThree.")[0].Blocks
	want := []Kind{KindLine, KindClick, KindLine, KindNote, KindPause, KindLine}
	if len(blocks) != len(want) {
		t.Fatalf("expected %d blocks, got %d", len(want), len(blocks))
	}
	for i, k := range want {
		if blocks[i].Kind != k {
			t.Errorf("blocks[%d].Kind = %q, want %q", i, blocks[i].Kind, k)
		}
	}
}

func TestScriptLineIndexing(t *testing.T) {
	s := Parse("## A\nOne.\n[CLICK]\nTwo.\n## Empty\n[PAUSE]\n## C\nThree.")
	if got := s.TotalLines(); got != 3 {
		t.Fatalf("TotalLines = %d, want 3", got)
	}
	if got := len(s.Lines()); got != 3 {
		t.Errorf("len(Lines) = %d, want 3", got)
	}

	offsets := s.LineOffsets()
	wantOffsets := []int{0, 2, 2}
	for i, w := range wantOffsets {
		if offsets[i] != w {
			t.Errorf("LineOffsets[%d] = %d, want %d", i, offsets[i], w)
		}
	}

	slideTests := []struct{ line, want int }{{-1, -1}, {0, 0}, {1, 0}, {2, 2}, {3, -1}}
	for _, tt := range slideTests {
		if got := s.SlideOfLine(tt.line); got != tt.want {
			t.Errorf("SlideOfLine(%d) = %d, want %d", tt.line, got, tt.want)
		}
	}

	firstTests := []struct{ slide, want int }{{0, 0}, {1, -1}, {2, 2}, {3, -1}, {-1, -1}}
	for _, tt := range firstTests {
		if got := s.FirstLineOfSlide(tt.slide); got != tt.want {
			t.Errorf("FirstLineOfSlide(%d) = %d, want %d", tt.slide, got, tt.want)
		}
	}
}
