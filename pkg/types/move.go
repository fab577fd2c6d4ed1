// Package types contains shared type definitions for the pocketcube application.
package types

// Move represents one of the six elementary quarter turns of a pocket cube.
//
// Only turns of the front, left and top faces are moves: the
// red-yellow-blue corner stays fixed in the bottom-back-right position, so
// turning the back, right or bottom face would move the reference frame
// instead of the pieces.
//
// The numeric values double as the on-disk move codes in the state table
// (see the table package). Zero is reserved as the terminal/"solved" marker
// and never appears as a stored code.
type Move byte

const (
	MoveNone Move = 0 // reserved terminal marker, not a turn

	FrontCW  Move = 1 // front face clockwise
	FrontCCW Move = 2 // front face counter-clockwise
	LeftCW   Move = 3 // left face clockwise
	LeftCCW  Move = 4 // left face counter-clockwise
	TopCW    Move = 5 // top face clockwise
	TopCCW   Move = 6 // top face counter-clockwise
)

// Moves lists all six turns in code order. Handy for iteration.
var Moves = [6]Move{FrontCW, FrontCCW, LeftCW, LeftCCW, TopCW, TopCCW}

// Valid reports whether m is one of the six turns.
func (m Move) Valid() bool {
	return m >= FrontCW && m <= TopCCW
}

// Inverse returns the inverse of this move.
// F becomes F', F' becomes F, and so on.
func (m Move) Inverse() Move {
	switch m {
	case FrontCW:
		return FrontCCW
	case FrontCCW:
		return FrontCW
	case LeftCW:
		return LeftCCW
	case LeftCCW:
		return LeftCW
	case TopCW:
		return TopCCW
	case TopCCW:
		return TopCW
	default:
		return MoveNone
	}
}

// Notation returns the standard cube notation string for this move.
// Examples: F, F', L, L', U, U'
func (m Move) Notation() string {
	switch m {
	case FrontCW:
		return "F"
	case FrontCCW:
		return "F'"
	case LeftCW:
		return "L"
	case LeftCCW:
		return "L'"
	case TopCW:
		return "U"
	case TopCCW:
		return "U'"
	default:
		return "?"
	}
}

func (m Move) String() string {
	return m.Notation()
}

// Sequence is an ordered list of moves, applied first to last.
type Sequence []Move

// Notation returns the space-separated notation for the whole sequence.
func (s Sequence) Notation() string {
	if len(s) == 0 {
		return ""
	}
	out := s[0].Notation()
	for _, m := range s[1:] {
		out += " " + m.Notation()
	}
	return out
}
