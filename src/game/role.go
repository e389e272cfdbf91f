package game

import (
	"fmt"
	"strings"

	"evilboard/src/base"
)

type roleKind uint8

const (
	roleSpectator roleKind = iota
	rolePlayer
	roleAnalyst
)

// Role decides whose pointer input may produce moves. The zero value is a
// spectator.
type Role struct {
	kind roleKind
	side base.Side
}

func Player(side base.Side) Role { return Role{kind: rolePlayer, side: side} }
func Analyst() Role              { return Role{kind: roleAnalyst} }
func Spectator() Role            { return Role{kind: roleSpectator} }

func (r Role) CanMove(toMove base.Side) bool {
	switch r.kind {
	case rolePlayer:
		return r.side == toMove
	case roleAnalyst:
		return true
	default:
		return false
	}
}

func (r Role) String() string {
	switch r.kind {
	case rolePlayer:
		return r.side.String()
	case roleAnalyst:
		return "analyst"
	default:
		return "spectator"
	}
}

func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "white":
		return Player(base.White), nil
	case "black":
		return Player(base.Black), nil
	case "analyst", "":
		return Analyst(), nil
	case "spectator":
		return Spectator(), nil
	default:
		return Role{}, fmt.Errorf("unknown role %q", s)
	}
}
