// Package table builds, stores and queries the pocket cube distance table:
// for every reachable configuration except solved, the move that first
// discovered it during a breadth-first search from the solved cube.
// Applying the inverse of that move brings a cube one step closer to
// solved along a shortest path.
package table

import (
	"encoding/binary"
	"errors"
	"sort"

	"github.com/jeffmartin/pocketcube/internal/cube"
	"github.com/jeffmartin/pocketcube/pkg/types"
)

const (
	// NumRecords is the number of table entries: every reachable
	// configuration except solved itself.
	NumRecords = cube.NumStates - 1

	// recordSize is the on-disk width of one entry: a 4-byte big-endian
	// configuration followed by a 1-byte move code.
	recordSize = 5

	// FileSize is the exact byte length of a persisted table.
	FileSize = NumRecords * recordSize
)

// Sentinel errors for table construction and loading.
var (
	ErrIncomplete = errors.New("table: build did not reach every state")
	ErrFrontier   = errors.New("table: BFS frontier overflowed")
	ErrCorrupt    = errors.New("table: persisted table has wrong size")
)

// Table is the completed, immutable distance table: NumRecords fixed-width
// records sorted ascending by configuration value. Safe for concurrent
// lookups.
type Table struct {
	data []byte // len == FileSize
}

// Record is one (configuration, discovery move) pair.
type Record struct {
	Cube cube.Cube
	Move types.Move
}

// Len returns the number of records.
func (t *Table) Len() int { return len(t.data) / recordSize }

// Record returns the i'th record in configuration order.
func (t *Table) Record(i int) Record {
	off := i * recordSize
	return Record{
		Cube: cube.Cube(binary.BigEndian.Uint32(t.data[off:])),
		Move: types.Move(t.data[off+4]),
	}
}

// Lookup finds the discovery move for a configuration by binary search.
// The second return value is false when the configuration is not in the
// table; the solved cube is never stored, so looking it up also reports
// false.
func (t *Table) Lookup(c cube.Cube) (types.Move, bool) {
	lo, hi := 0, t.Len()-1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		v := cube.Cube(binary.BigEndian.Uint32(t.data[mid*recordSize:]))
		switch {
		case v < c:
			lo = mid + 1
		case v > c:
			hi = mid - 1
		default:
			return types.Move(t.data[mid*recordSize+4]), true
		}
	}
	return types.MoveNone, false
}

// fromRecords materializes the flat sorted byte array from an unordered
// discovery map.
func fromRecords(discovered map[cube.Cube]types.Move) *Table {
	cubes := make([]cube.Cube, 0, len(discovered))
	for c := range discovered {
		cubes = append(cubes, c)
	}
	sort.Slice(cubes, func(i, j int) bool { return cubes[i] < cubes[j] })

	data := make([]byte, len(cubes)*recordSize)
	for i, c := range cubes {
		off := i * recordSize
		binary.BigEndian.PutUint32(data[off:], uint32(c))
		data[off+4] = byte(discovered[c])
	}
	return &Table{data: data}
}
