package board

import (
	"evilboard/src/base"
	"evilboard/src/game"
)

// Feedback classifies an external state transition, e.g. for sound.
type Feedback uint8

const (
	FeedbackNone Feedback = iota
	FeedbackGameStart
	FeedbackGameEnd
	FeedbackMoveCheck
	FeedbackPromote
	FeedbackCapture
	FeedbackCastle
	FeedbackMoveSelf
)

func (f Feedback) String() string {
	switch f {
	case FeedbackGameStart:
		return "game-start"
	case FeedbackGameEnd:
		return "game-end"
	case FeedbackMoveCheck:
		return "move-check"
	case FeedbackPromote:
		return "promote"
	case FeedbackCapture:
		return "capture"
	case FeedbackCastle:
		return "castle"
	case FeedbackMoveSelf:
		return "move-self"
	default:
		return "none"
	}
}

// Classify picks the one feedback signal for arriving at st.
func Classify(st game.GameState) Feedback {
	if st.Board != nil && st.Board.Status() == base.Checkmate {
		return FeedbackGameEnd
	}
	if st.Annotation == nil {
		return FeedbackGameStart
	}
	if st.Board != nil && st.Board.Status() == base.Check {
		return FeedbackMoveCheck
	}
	switch st.Annotation.Kind {
	case base.Promotion:
		return FeedbackPromote
	case base.Capture, base.EnPassant:
		return FeedbackCapture
	case base.Castling:
		return FeedbackCastle
	default:
		return FeedbackMoveSelf
	}
}
