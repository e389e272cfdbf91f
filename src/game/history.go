package game

import (
	"errors"

	"evilboard/src/base"
)

var ErrEmptyHistory = errors.New("empty history")

// History is the host-owned ordered list of states. Pushing while browsing
// an earlier state truncates the future states.
type History struct {
	states  []GameState
	current int
}

func NewHistory(start GameState) *History {
	return &History{states: []GameState{start}}
}

func (h *History) Len() int           { return len(h.states) }
func (h *History) CurrentMove() int   { return h.current }
func (h *History) Current() GameState { return h.states[h.current] }
func (h *History) AtTip() bool        { return h.current == len(h.states)-1 }

// Push applies mv to the current state and makes the result current.
func (h *History) Push(mv base.Move) GameState {
	next := h.states[h.current].Apply(mv)
	h.states = append(h.states[:h.current+1], next)
	h.current++
	return next
}

func (h *History) GotoMove(index int) error {
	if len(h.states) == 0 {
		return ErrEmptyHistory
	}
	if index < 0 || index >= len(h.states) {
		return errors.New("invalid index")
	}
	h.current = index
	return nil
}

func (h *History) Undo() error {
	return h.GotoMove(h.current - 1)
}

func (h *History) Redo() error {
	return h.GotoMove(h.current + 1)
}

// Reset drops every state and starts over from start.
func (h *History) Reset(start GameState) {
	h.states = []GameState{start}
	h.current = 0
}

// Moves returns the annotations from the first state up to the tip.
func (h *History) Moves() []Annotation {
	out := make([]Annotation, 0, len(h.states)-1)
	for _, st := range h.states[1:] {
		if st.Annotation != nil {
			out = append(out, *st.Annotation)
		}
	}
	return out
}
