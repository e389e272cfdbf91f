package board

import "evilboard/src/base"

type Button uint8

const (
	ButtonLeft Button = iota
	ButtonRight
)

type EventKind uint8

const (
	Pressed EventKind = iota
	Released
	Moved
)

// Rect is the area the host gives the widget, in pixels.
type Rect struct {
	X, Y, W, H float64
}

// Event is one pointer event tagged with the current widget bounds.
type Event struct {
	Kind   EventKind
	Button Button
	Pos    base.Point
	Bounds Rect
}

// Layer names one of the five cache slots, back to front.
type Layer uint8

const (
	LayerBoard Layer = iota
	LayerBoardOverlay
	LayerPieces
	LayerDrag
	LayerArrows
	layerCount
)

func (l Layer) String() string {
	switch l {
	case LayerBoard:
		return "board"
	case LayerBoardOverlay:
		return "board-overlay"
	case LayerPieces:
		return "pieces"
	case LayerDrag:
		return "drag"
	case LayerArrows:
		return "arrows"
	default:
		return "unknown"
	}
}

// Invalidation is a set of stale layers.
type Invalidation uint8

const InvalidateAll Invalidation = 1<<layerCount - 1

func invalidate(layers ...Layer) Invalidation {
	var inv Invalidation
	for _, l := range layers {
		inv |= 1 << l
	}
	return inv
}

func (i Invalidation) Has(l Layer) bool { return i&(1<<l) != 0 }

// Response is what the host gets back for one event.
type Response struct {
	Move      base.Move
	Committed bool
	Redraw    bool
}

// Interaction is the pointer affordance the host should show.
type Interaction uint8

const (
	Idle Interaction = iota
	Grab
	Grabbing
)

// SquareEvent builds a pointer event aimed at the centre of sq, for hosts
// that address squares instead of pixels.
func SquareEvent(kind EventKind, btn Button, sq base.Square, bounds Rect, flipped bool) Event {
	return Event{Kind: kind, Button: btn, Pos: SquareCenter(bounds, sq, flipped), Bounds: bounds}
}
