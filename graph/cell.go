package graph

import "strconv"

// Cell is the value stored at one position of the adjacency matrix. A cell is
// exactly one of NoEdge, Uncoloured or Coloured(c) with c >= 1. Its integer
// encoding (-1, 0, c) is the one used by graph documents.
type Cell int

const (
	// NoEdge marks the absence of an edge between two vertices.
	NoEdge Cell = -1

	// Uncoloured marks an edge that has not been assigned a colour yet.
	Uncoloured Cell = 0
)

// Coloured returns the cell of an edge with colour c. It panics if c is not a
// valid colour (c < 1).
func Coloured(c int) Cell {
	if c < 1 {
		panic("graph: colour must be greater than 0, got " + strconv.Itoa(c))
	}
	return Cell(c)
}

// IsEdge returns true if the cell holds an edge, coloured or not.
func (c Cell) IsEdge() bool {
	return c != NoEdge
}

// IsColoured returns true if the cell holds a coloured edge.
func (c Cell) IsColoured() bool {
	return c > Uncoloured
}

// Colour returns the colour of the edge and true if the cell holds a coloured
// edge. Otherwise, it returns 0 and false.
func (c Cell) Colour() (int, bool) {
	if !c.IsColoured() {
		return 0, false
	}
	return int(c), true
}

func (c Cell) String() string {
	switch {
	case c == NoEdge:
		return "none"
	case c == Uncoloured:
		return "uncoloured"
	case c > Uncoloured:
		return "colour(" + strconv.Itoa(int(c)) + ")"
	default:
		return "invalid(" + strconv.Itoa(int(c)) + ")"
	}
}
