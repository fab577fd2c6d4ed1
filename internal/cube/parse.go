package cube

import (
	"errors"
	"fmt"
)

// Sentinel errors for layout parsing.
var (
	ErrLayoutLength = errors.New("cube: layout must contain exactly 24 colors")
	ErrBadColor     = errors.New("cube: invalid color character")
	ErrColorCount   = errors.New("cube: each color must appear exactly 4 times")
	ErrBadReference = errors.New("cube: red-yellow-blue corner must sit bottom-back-right")
	ErrImpossible   = errors.New("cube: layout is not a possible cube state")
)

// Layout cell numbering used for text entry, matching the net of Layout:
//
//	        |00|01|
//	        |02|03|
//
//	|04|05| |08|09| |12|13| |16|17|
//	|06|07| |10|11| |14|15| |18|19|
//
//	        |20|21|
//	        |22|23|
//
// Cells 15, 18 and 23 belong to the fixed corner and must read b, y, r.

// positionCells maps each position (0-6) to the entry cells holding its
// top/bottom, front/back and left/right colors.
var positionCells = [7][3]int{
	{2, 8, 5},   // top-front-left
	{20, 10, 7}, // bottom-front-left
	{3, 9, 12},  // top-front-right
	{21, 11, 14}, // bottom-front-right
	{0, 17, 4},  // top-back-left
	{22, 19, 6}, // bottom-back-left
	{1, 16, 13}, // top-back-right
}

// Parse converts a 24-character layout string into the integer encoding.
// Spaces are ignored; any other character outside orwygb is rejected.
//
// Validation covers everything the core engine assumes: 24 cells, each of
// the 6 colors exactly 4 times, the fixed reference corner in place, and
// every corner being a real piece in a realizable orientation. Parse does
// not check membership in the reachable state space; that is the solver's
// unsolvable result.
func Parse(s string) (Cube, error) {
	var cells [24]byte
	n := 0
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch ch {
		case ' ', '\t', '\n':
			continue
		case 'o', 'r', 'w', 'y', 'g', 'b':
			if n == 24 {
				return 0, ErrLayoutLength
			}
			cells[n] = ch
			n++
		default:
			return 0, fmt.Errorf("%w: %q", ErrBadColor, ch)
		}
	}
	if n != 24 {
		return 0, ErrLayoutLength
	}

	counts := map[byte]int{}
	for _, ch := range cells {
		counts[ch]++
	}
	for _, ch := range []byte("orwygb") {
		if counts[ch] != 4 {
			return 0, fmt.Errorf("%w: have %d %q", ErrColorCount, counts[ch], ch)
		}
	}

	if cells[15] != 'b' || cells[18] != 'y' || cells[23] != 'r' {
		return 0, ErrBadReference
	}

	// Identify which piece sits in each position, then recover each
	// piece's state from its color ordering via its class table.
	var states [7]int
	var seen [7]bool
	for pos, pc := range positionCells {
		corner := [3]byte{cells[pc[0]], cells[pc[1]], cells[pc[2]]}
		piece, ok := identifyPiece(corner)
		if !ok {
			return 0, fmt.Errorf("%w: no piece has colors %q%q%q",
				ErrImpossible, corner[0], corner[1], corner[2])
		}
		if seen[piece] {
			return 0, fmt.Errorf("%w: piece %d appears twice", ErrImpossible, piece)
		}
		seen[piece] = true
		state, ok := pieceState(piece, pos, corner)
		if !ok {
			return 0, fmt.Errorf("%w: piece %d cannot be oriented %q%q%q at position %d",
				ErrImpossible, piece, corner[0], corner[1], corner[2], pos)
		}
		states[piece] = state
	}

	var c Cube
	for i := 6; i >= 0; i-- {
		c = c*21 + Cube(states[i])
	}
	return c, nil
}

// identifyPiece finds the movable piece with exactly the given color set.
func identifyPiece(corner [3]byte) (int, bool) {
	for piece, colors := range pieceColors {
		if hasColor(corner, colors[0]) && hasColor(corner, colors[1]) && hasColor(corner, colors[2]) {
			return piece, true
		}
	}
	return 0, false
}

func hasColor(corner [3]byte, ch byte) bool {
	return corner[0] == ch || corner[1] == ch || corner[2] == ch
}

// pieceState derives the state (position*3 + orientation) of a piece from
// the color ordering observed at a position. Reports false when the
// ordering matches none of the three orientations allowed there.
func pieceState(piece, pos int, corner [3]byte) (int, bool) {
	var ord [3]byte
	for i, ch := range corner {
		switch ch {
		case 'r', 'o':
			ord[i] = 0
		case 'y', 'w':
			ord[i] = 1
		case 'g', 'b':
			ord[i] = 2
		}
	}

	table := classTable(piece)
	for o := 0; o < 3; o++ {
		state := pos*3 + o
		if table[state] == ord {
			return state, true
		}
	}
	return 0, false
}
