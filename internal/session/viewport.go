package session

import "math"

// ScrollBehavior mirrors the document scroll-behavior setting.
type ScrollBehavior string

const (
	// BehaviorInstant applies each scroll immediately; used while
	// auto-scrolling so per-frame steps are not animated.
	BehaviorInstant ScrollBehavior = "auto"
	BehaviorSmooth  ScrollBehavior = "smooth"
)

// Viewport is the scrollable surface the integrator moves.
type Viewport interface {
	ScrollOffset() float64
	MaxScrollOffset() float64
	ScrollBy(px int)
	SetScrollBehavior(b ScrollBehavior)
}

// VirtualViewport models a document of a known height behind a window of a
// known height. Remote clients report their real metrics into it; the
// rehearsal command sizes it from the script layout.
type VirtualViewport struct {
	documentHeight float64
	viewportHeight float64
	offset         float64
	behavior       ScrollBehavior

	onScroll   func(px int, offset float64)
	onBehavior func(ScrollBehavior)
}

// NewVirtualViewport returns a viewport at offset zero with smooth behavior.
func NewVirtualViewport(documentHeight, viewportHeight float64) *VirtualViewport {
	return &VirtualViewport{
		documentHeight: documentHeight,
		viewportHeight: viewportHeight,
		behavior:       BehaviorSmooth,
	}
}

// SetMetrics replaces the document and window sizes and the current offset.
func (v *VirtualViewport) SetMetrics(documentHeight, viewportHeight, offset float64) {
	v.documentHeight = documentHeight
	v.viewportHeight = viewportHeight
	v.offset = math.Max(0, math.Min(offset, v.MaxScrollOffset()))
}

// OnScroll registers a callback for every applied scroll step.
func (v *VirtualViewport) OnScroll(fn func(px int, offset float64)) { v.onScroll = fn }

// OnBehavior registers a callback for scroll behavior changes.
func (v *VirtualViewport) OnBehavior(fn func(ScrollBehavior)) { v.onBehavior = fn }

func (v *VirtualViewport) ScrollOffset() float64 { return v.offset }

func (v *VirtualViewport) MaxScrollOffset() float64 {
	return math.Max(0, v.documentHeight-v.viewportHeight)
}

func (v *VirtualViewport) ViewportHeight() float64 { return v.viewportHeight }

func (v *VirtualViewport) ScrollBy(px int) {
	next := math.Min(v.offset+float64(px), v.MaxScrollOffset())
	next = math.Max(0, next)
	applied := int(next - v.offset)
	v.offset = next
	if v.onScroll != nil && applied != 0 {
		v.onScroll(applied, v.offset)
	}
}

// ScrollTo jumps to an absolute offset, clamped to the document.
func (v *VirtualViewport) ScrollTo(offset float64) {
	v.ScrollBy(int(offset - v.offset))
}

func (v *VirtualViewport) Behavior() ScrollBehavior { return v.behavior }

func (v *VirtualViewport) SetScrollBehavior(b ScrollBehavior) {
	if v.behavior == b {
		return
	}
	v.behavior = b
	if v.onBehavior != nil {
		v.onBehavior(b)
	}
}
