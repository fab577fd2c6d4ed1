// Package cube implements the 2x2 pocket cube as a compact integer.
//
// # Encoding
//
// The red-yellow-blue corner is fixed in the bottom-back-right position and
// acts as the reference frame, so only the remaining 7 corner pieces are
// stored. Each piece has a state in [0, 21): state = position*3 + orientation
// with position in [0, 7) and orientation in [0, 3). A whole cube is the
// mixed-radix (base 21) sum over the 7 piece states:
//
//	cube = state[0] + state[1]*21 + state[2]*21^2 + ... + state[6]*21^6
//
// Pieces are numbered so that on a solved cube piece p sits in position p:
//
//	0: orange-white-green     (top-front-left)
//	1: red-white-green        (bottom-front-left)
//	2: orange-white-blue      (top-front-right)
//	3: red-white-blue         (bottom-front-right)
//	4: orange-yellow-green    (top-back-left)
//	5: red-yellow-green       (bottom-back-left)
//	6: orange-yellow-blue     (top-back-right)
//	7: red-yellow-blue        (bottom-back-right, fixed, never stored)
//
// Not every integer in [0, 21^7) is a real cube: only the 3,674,160 states
// reachable from solved have physical meaning. Apply performs no validation;
// callers must only hand it configurations obtained from Solved, Parse, or a
// prior Apply. Behavior on an out-of-space integer is unspecified.
//
// Encoding scheme after Antti Valmari.
package cube

import "github.com/jeffmartin/pocketcube/pkg/types"

// Cube is the integer encoding of one pocket cube configuration.
type Cube uint32

// Solved is the encoding of the solved cube: piece p in position p with the
// solved orientation of its class table.
//
//	0 + 5*21 + 6*21^2 + 9*21^3 + 13*21^4 + 15*21^5 + 18*21^6 = 0x5FD3097E
const Solved Cube = 0x5FD3097E

// NumStates is the size of the reachable state space, solved included.
// 7! positions times 3^6 free orientations.
const NumStates = 3674160

// Powers of 21 for the mixed-radix encoding.
const (
	pow21_1 = 21
	pow21_2 = 441
	pow21_3 = 9261
	pow21_4 = 194481
	pow21_5 = 4084101
	pow21_6 = 85766121
)

// turnTable maps each of the six turns to a permutation of the 21 piece
// states. turnTable[m-1][s] is the state a piece in state s ends up in after
// move code m. Rows follow the move-code order of the types package:
// F, F', L, L', U, U'.
var turnTable = [6][21]Cube{
	{8, 6, 7, 2, 0, 1, 10, 11, 9, 4, 5, 3, 12, 13, 14, 15, 16, 17, 18, 19, 20}, // F
	{4, 5, 3, 11, 9, 10, 1, 2, 0, 8, 6, 7, 12, 13, 14, 15, 16, 17, 18, 19, 20}, // F'
	{5, 3, 4, 16, 17, 15, 6, 7, 8, 9, 10, 11, 2, 0, 1, 13, 14, 12, 18, 19, 20}, // L
	{13, 14, 12, 1, 2, 0, 6, 7, 8, 9, 10, 11, 17, 15, 16, 5, 3, 4, 18, 19, 20}, // L'
	{14, 12, 13, 3, 4, 5, 2, 0, 1, 9, 10, 11, 19, 20, 18, 15, 16, 17, 7, 8, 6}, // U
	{7, 8, 6, 3, 4, 5, 20, 18, 19, 9, 10, 11, 1, 2, 0, 15, 16, 17, 14, 12, 13}, // U'
}

// Apply performs one quarter turn and returns the resulting configuration.
// Each of the 7 piece states is remapped independently through the turn's
// permutation table. Pure; the receiver is not modified.
//
// m must be one of the six turn codes and c must be a valid configuration;
// neither is checked here.
func (c Cube) Apply(m types.Move) Cube {
	t := &turnTable[m-1]

	s6 := c / pow21_6
	s5 := (c % pow21_6) / pow21_5
	s4 := (c % pow21_5) / pow21_4
	s3 := (c % pow21_4) / pow21_3
	s2 := (c % pow21_3) / pow21_2
	s1 := (c % pow21_2) / pow21_1
	s0 := c % pow21_1

	return t[s0] +
		t[s1]*pow21_1 +
		t[s2]*pow21_2 +
		t[s3]*pow21_3 +
		t[s4]*pow21_4 +
		t[s5]*pow21_5 +
		t[s6]*pow21_6
}

// ApplyAll applies a sequence of moves in order and returns the result.
func (c Cube) ApplyAll(moves []types.Move) Cube {
	for _, m := range moves {
		c = c.Apply(m)
	}
	return c
}

// IsSolved reports whether c is the solved configuration.
func (c Cube) IsSolved() bool {
	return c == Solved
}

// states returns the 7 piece states of c, lowest-order piece first.
func (c Cube) states() [7]int {
	var s [7]int
	for i := 0; i < 7; i++ {
		s[i] = int(c % pow21_1)
		c /= pow21_1
	}
	return s
}
