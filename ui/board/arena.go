package board

import "github.com/google/uuid"

// Arena owns several boards, each addressed by its own id.
type Arena struct {
	boards map[uuid.UUID]*Board
}

func NewArena() *Arena {
	return &Arena{boards: map[uuid.UUID]*Board{}}
}

func (a *Arena) Add(b *Board) uuid.UUID {
	id := uuid.New()
	a.boards[id] = b
	return id
}

func (a *Arena) Get(id uuid.UUID) (*Board, bool) {
	b, ok := a.boards[id]
	return b, ok
}
