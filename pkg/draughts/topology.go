package draughts

import "fmt"

// Diagonal line of squares going out from some origin square (origin excluded),
// ordered from the nearest square to the board edge
type Ray struct {
	Dir     Direction
	Squares []Square
}

// Immutable board geometry, built once per board size and shared by every
// position and move generator working on that size.
//
// Only the playable squares are stored, in 'packed' order: scanning the full
// board index (row*size + col) from 0 and counting squares where (row+col) is even.
type Topology struct {
	size          int
	boardToPacked []Square // SquareNone for non-playable squares
	packedToBoard []int
	rays          [][]Ray
	mainRoad      []Square
}

// Build the topology for a board of given size, size must be even and at least 2
func NewTopology(size int) (*Topology, error) {
	if size < 2 || size%2 != 0 {
		return nil, fmt.Errorf("%w: %d, must be even and at least 2", ErrInvalidSize, size)
	}

	full := size * size
	t := &Topology{
		size:          size,
		boardToPacked: make([]Square, full),
		packedToBoard: make([]int, 0, full/2),
		rays:          make([][]Ray, full/2),
	}

	for i := 0; i < full; i++ {
		if _isPlayable(i/size, i%size) {
			t.boardToPacked[i] = Square(len(t.packedToBoard))
			t.packedToBoard = append(t.packedToBoard, i)
		} else {
			t.boardToPacked[i] = SquareNone
		}
	}

	// Walk each diagonal until the edge, rays with no squares are dropped
	for sq := range t.packedToBoard {
		row, col := t.RowCol(Square(sq))
		rays := make([]Ray, 0, nDirections)
		for d := Direction(0); d < nDirections; d++ {
			ray := Ray{Dir: d}
			r, c := row+_dirSteps[d][0], col+_dirSteps[d][1]
			for r >= 0 && r < size && c >= 0 && c < size {
				ray.Squares = append(ray.Squares, t.boardToPacked[r*size+c])
				r, c = r+_dirSteps[d][0], c+_dirSteps[d][1]
			}
			if len(ray.Squares) > 0 {
				rays = append(rays, ray)
			}
		}
		t.rays[sq] = rays
	}

	t.mainRoad = append([]Square{0}, t.Ray(0, DirUpRight)...)
	return t, nil
}

// Same as NewTopology, but panics on invalid size
func MustTopology(size int) *Topology {
	t, err := NewTopology(size)
	if err != nil {
		panic(err)
	}
	return t
}

func _isPlayable(row, col int) bool {
	return (row+col)%2 == 0
}

// Side length of the board
func (t *Topology) Size() int {
	return t.size
}

// Number of playable squares, size*size/2
func (t *Topology) PackedCount() int {
	return len(t.packedToBoard)
}

// Convert packed square into full board index
func (t *Topology) ToBoard(sq Square) int {
	return t.packedToBoard[sq]
}

// Convert full board index into a packed square, returns false
// if the index is out of the board or on a non-playable square
func (t *Topology) ToPack(index int) (Square, bool) {
	if index < 0 || index >= len(t.boardToPacked) {
		return SquareNone, false
	}
	sq := t.boardToPacked[index]
	return sq, sq != SquareNone
}

// Get (row, col) of the packed square
func (t *Topology) RowCol(sq Square) (row, col int) {
	i := t.packedToBoard[sq]
	return i / t.size, i % t.size
}

// Get all non-empty rays going out from given square (at most 4)
func (t *Topology) Rays(sq Square) []Ray {
	return t.rays[sq]
}

// Get the ray in given direction, nil if the square is on that edge
func (t *Topology) Ray(sq Square, dir Direction) []Square {
	for _, ray := range t.rays[sq] {
		if ray.Dir == dir {
			return ray.Squares
		}
	}
	return nil
}

// Whether the square lies on the final row for the given color
func (t *Topology) IsKingRow(c Color, sq Square) bool {
	half := t.size / 2
	if c == White {
		return int(sq) >= len(t.packedToBoard)-half
	}
	return int(sq) < half
}

// The long diagonal, from the corner at packed square 0 to the opposite corner
func (t *Topology) MainRoad() []Square {
	return t.mainRoad
}

// Whether the square lies on the long diagonal
func (t *Topology) OnMainRoad(sq Square) bool {
	row, col := t.RowCol(sq)
	return row == col
}
