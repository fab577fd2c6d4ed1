package cube

import (
	"fmt"
	"strings"
)

// Layout is the human-viewable unfolded net of a cube: 6 rows by 8 columns
// of color characters (o r w y g b), with '-' in the unused cells.
//
// Solved cube:
//
//	      o o
//	      o o
//	  g g w w b b y y
//	  g g w w b b y y
//	      r r
//	      r r
//
// The rows hold, top to bottom: top face, the green/white/blue/yellow band
// (left, front, right, back faces), and the bottom face.
type Layout struct {
	Cells [6][8]byte
}

// pieceColors holds the three colors of each movable piece in
// top/bottom, front/back, left/right order for the solved cube.
var pieceColors = [7][3]byte{
	{'o', 'w', 'g'},
	{'r', 'w', 'g'},
	{'o', 'w', 'b'},
	{'r', 'w', 'b'},
	{'o', 'y', 'g'},
	{'r', 'y', 'g'},
	{'o', 'y', 'b'},
}

// A corner piece shows its three colors on three faces, but only 3 of the 6
// orderings of those colors can occur at any given position, and which 3
// depends on the piece's symmetry class. The 7 movable pieces split into two
// classes, {0,3,5,6} and {1,2,4,7}, that are an odd number of moves apart;
// each class gets its own 21-row table mapping a piece state to the color
// ordering (0 = red/orange, 1 = yellow/white, 2 = green/blue) in
// top/bottom, front/back, left/right face order. Using a single table for
// both classes silently produces wrong orientations.

// orientClass0356 covers pieces 0, 3, 5 and 6
// (piece 0 has orientation 0 when solved).
var orientClass0356 = [21][3]byte{
	{0, 1, 2}, {2, 0, 1}, {1, 2, 0},
	{0, 2, 1}, {2, 1, 0}, {1, 0, 2},
	{1, 0, 2}, {0, 2, 1}, {2, 1, 0},
	{0, 1, 2}, {2, 0, 1}, {1, 2, 0},
	{2, 1, 0}, {1, 0, 2}, {0, 2, 1},
	{0, 1, 2}, {2, 0, 1}, {1, 2, 0},
	{0, 1, 2}, {2, 0, 1}, {1, 2, 0},
}

// orientClass1247 covers pieces 1, 2, 4 and the fixed piece 7
// (piece 2 has orientation 0 when solved).
var orientClass1247 = [21][3]byte{
	{1, 0, 2}, {2, 1, 0}, {0, 2, 1},
	{1, 2, 0}, {2, 0, 1}, {0, 1, 2},
	{0, 1, 2}, {1, 2, 0}, {2, 0, 1},
	{1, 0, 2}, {2, 1, 0}, {0, 2, 1},
	{2, 1, 0}, {0, 1, 2}, {1, 0, 2},
	{1, 0, 2}, {2, 1, 0}, {0, 2, 1},
	{2, 1, 0}, {1, 0, 2}, {0, 2, 1},
}

// classTable returns the orientation table for a piece number.
func classTable(piece int) *[21][3]byte {
	switch piece {
	case 0, 3, 5, 6:
		return &orientClass0356
	default:
		return &orientClass1247
	}
}

// faceCells maps a position (0-6) to the layout cells showing its
// top/bottom, front/back and left/right colors, as {row, col} pairs.
var faceCells = [7][3][2]int{
	{{1, 2}, {2, 2}, {2, 1}}, // 0: top-front-left
	{{4, 2}, {3, 2}, {3, 1}}, // 1: bottom-front-left
	{{1, 3}, {2, 3}, {2, 4}}, // 2: top-front-right
	{{4, 3}, {3, 3}, {3, 4}}, // 3: bottom-front-right
	{{0, 2}, {2, 7}, {2, 0}}, // 4: top-back-left
	{{5, 2}, {3, 7}, {3, 0}}, // 5: bottom-back-left
	{{0, 3}, {2, 6}, {2, 5}}, // 6: top-back-right
}

// Decode expands the integer encoding into the unfolded color net.
// Purely presentational; the inverse direction is Parse.
func (c Cube) Decode() *Layout {
	l := &Layout{}
	for i := range l.Cells {
		for j := range l.Cells[i] {
			l.Cells[i][j] = '-'
		}
	}

	// The fixed red-yellow-blue corner.
	l.Cells[5][3] = 'r'
	l.Cells[3][5] = 'b'
	l.Cells[3][6] = 'y'

	for piece, state := range c.states() {
		ord := classTable(piece)[state]
		colors := pieceColors[piece]
		pos := state / 3
		for face, cell := range faceCells[pos] {
			l.Cells[cell[0]][cell[1]] = colors[ord[face]]
		}
	}
	return l
}

// EntryCells maps the text-entry cell numbers 0-23 to {row, col} in the
// layout grid. Entry order runs top face, then the left/front/right/back
// band, then the bottom face, left to right and top to bottom within each.
var EntryCells = [24][2]int{
	{0, 2}, {0, 3}, {1, 2}, {1, 3}, // top face
	{2, 0}, {2, 1}, {3, 0}, {3, 1}, // left face
	{2, 2}, {2, 3}, {3, 2}, {3, 3}, // front face
	{2, 4}, {2, 5}, {3, 4}, {3, 5}, // right face
	{2, 6}, {2, 7}, {3, 6}, {3, 7}, // back face
	{4, 2}, {4, 3}, {5, 2}, {5, 3}, // bottom face
}

// Colors returns the 24 sticker colors in entry-cell order, the format
// accepted by Parse.
func (l *Layout) Colors() string {
	var out [24]byte
	for i, cell := range EntryCells {
		out[i] = l.Cells[cell[0]][cell[1]]
	}
	return string(out[:])
}

// String renders the net as plain text.
func (l *Layout) String() string {
	var b strings.Builder

	pair := func(r, c int) string {
		return fmt.Sprintf("|%c|%c|", l.Cells[r][c], l.Cells[r][c+1])
	}
	band := func(r int) string {
		return pair(r, 0) + " " + pair(r, 2) + " " + pair(r, 4) + " " + pair(r, 6)
	}

	b.WriteString("      " + pair(0, 2) + "\n")
	b.WriteString("      " + pair(1, 2) + "\n\n")
	b.WriteString(band(2) + "\n")
	b.WriteString(band(3) + "\n\n")
	b.WriteString("      " + pair(4, 2) + "\n")
	b.WriteString("      " + pair(5, 2) + "\n")

	return b.String()
}
