package cube

import (
	"errors"
	"testing"

	"github.com/jeffmartin/pocketcube/pkg/types"
)

// solvedLayout is the entry string for a solved cube.
const solvedLayout = "oooo gggg wwww bbbb yyyy rrrr"

func TestSolvedConstant(t *testing.T) {
	// Piece states of the solved cube, piece 0 first.
	states := []Cube{0, 5, 6, 9, 13, 15, 18}
	var c Cube
	for i := len(states) - 1; i >= 0; i-- {
		c = c*21 + states[i]
	}
	if c != Solved {
		t.Errorf("solved encoding = %#x, want %#x", c, Solved)
	}
}

func TestFourTurnsIsIdentity(t *testing.T) {
	for _, m := range types.Moves {
		c := Solved
		for i := 0; i < 4; i++ {
			c = c.Apply(m)
		}
		if c != Solved {
			t.Errorf("%v x 4 should return to solved, got %d", m, c)
		}
	}
}

func TestMoveInverse(t *testing.T) {
	// Walk away from solved so inverses are checked on non-trivial cubes.
	c := Solved
	for _, walk := range []types.Move{types.FrontCW, types.LeftCCW, types.TopCW, types.LeftCW} {
		for _, m := range types.Moves {
			if got := c.Apply(m).Apply(m.Inverse()); got != c {
				t.Errorf("%v then %v should undo on cube %d, got %d", m, m.Inverse(), c, got)
			}
		}
		c = c.Apply(walk)
	}
}

func TestDistinctNeighbors(t *testing.T) {
	// The six turns produce six distinct neighbors of solved.
	seen := map[Cube]types.Move{}
	for _, m := range types.Moves {
		next := Solved.Apply(m)
		if next == Solved {
			t.Errorf("%v should not fix the solved cube", m)
		}
		if prev, ok := seen[next]; ok {
			t.Errorf("%v and %v produce the same cube %d", prev, m, next)
		}
		seen[next] = m
	}
}

func TestDecodeSolved(t *testing.T) {
	want := "      |o|o|\n" +
		"      |o|o|\n\n" +
		"|g|g| |w|w| |b|b| |y|y|\n" +
		"|g|g| |w|w| |b|b| |y|y|\n\n" +
		"      |r|r|\n" +
		"      |r|r|\n"
	if got := Solved.Decode().String(); got != want {
		t.Errorf("solved net mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestParseSolved(t *testing.T) {
	c, err := Parse(solvedLayout)
	if err != nil {
		t.Fatalf("Parse(solved) failed: %v", err)
	}
	if c != Solved {
		t.Errorf("Parse(solved) = %d, want %d", c, Solved)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	// decode to a layout and parse it back for a sample of scrambles
	c := Solved
	scramble := []types.Move{
		types.FrontCW, types.TopCW, types.LeftCCW, types.FrontCCW,
		types.TopCCW, types.LeftCW, types.FrontCW, types.TopCW,
	}
	for i, m := range scramble {
		c = c.Apply(m)
		got, err := Parse(c.Decode().Colors())
		if err != nil {
			t.Fatalf("step %d: Parse(Decode(%d)) failed: %v", i, c, err)
		}
		if got != c {
			t.Errorf("step %d: round trip = %d, want %d", i, got, c)
		}
	}
}

func TestParseIgnoresWhitespace(t *testing.T) {
	c, err := Parse("oooogggg\twwwwbbbb yyyy\nrrrr")
	if err != nil {
		t.Fatalf("Parse with mixed whitespace failed: %v", err)
	}
	if c != Solved {
		t.Errorf("got %d, want %d", c, Solved)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		layout string
		want   error
	}{
		{"bad color", "xooo gggg wwww bbbb yyyy rrrr", ErrBadColor},
		{"too short", "oooo gggg wwww bbbb yyyy rrr", ErrLayoutLength},
		{"too long", "oooo gggg wwww bbbb yyyy rrrrr", ErrLayoutLength},
		{"wrong counts", "oooo oggg wwww bbbb yyyy rrrr", ErrColorCount},
		// swap the whole top and bottom faces: the fixed corner's red
		// sticker (cell 23) is no longer red
		{"misoriented", "rrrr gggg wwww bbbb yyyy oooo", ErrBadReference},
		// swap two stickers of the top-front-left corner (cells 2 and 5):
		// the ordering is an odd permutation, not a legal twist
		{"impossible twist", "oogo gogg wwww bbbb yyyy rrrr", ErrImpossible},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.layout)
			if !errors.Is(err, tt.want) {
				t.Errorf("Parse(%q) error = %v, want %v", tt.layout, err, tt.want)
			}
		})
	}
}

func TestOrientationClassesDiffer(t *testing.T) {
	// The two symmetry classes need separate orientation tables; a single
	// shared table would silently mis-render half the pieces.
	if orientClass0356 == orientClass1247 {
		t.Error("orientation class tables must differ")
	}
}
