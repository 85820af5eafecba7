// Package graph contains an undirected graph with coloured edges stored as a
// dense adjacency matrix, together with its random generator and the document
// format used to persist it.
package graph

import (
	"fmt"

	"github.com/rhartert/sparsesets"
)

// Rand is the source of randomness used to generate and colour graphs.
// *rand.Rand satisfies this interface.
type Rand interface {
	// Intn returns a uniform random number in [0, n).
	Intn(n int) int
}

// Graph represents an undirected simple graph whose edges can be coloured
// with colours in [1, ColourCount()].
type Graph struct {
	vertices int
	edges    int
	colours  int
	root     int

	// matrix[i][j] is the cell of edge (i, j). The matrix is always symmetric
	// and its diagonal only contains NoEdge.
	matrix [][]Cell
}

// New returns a graph with the given parameters and no edge. Parameter edges
// is the number of edges Generate must insert. The root is not checked
// against the number of vertices.
func New(vertices, edges, colours, root int) *Graph {
	return &Graph{
		vertices: vertices,
		edges:    edges,
		colours:  colours,
		root:     root,
		matrix:   newMatrix(vertices),
	}
}

func newMatrix(n int) [][]Cell {
	if n < 0 {
		n = 0
	}
	m := make([][]Cell, n)
	for i := range m {
		m[i] = make([]Cell, n)
		for j := range m[i] {
			m[i][j] = NoEdge
		}
	}
	return m
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	return g.vertices
}

// EdgeCount returns the number of edges requested for the graph. Use
// CountEdges to count the edges actually present in the matrix.
func (g *Graph) EdgeCount() int {
	return g.edges
}

// ColourCount returns the size of the colour palette.
func (g *Graph) ColourCount() int {
	return g.colours
}

// SetColourCount changes the size of the palette used by AssignColours.
// Colours already assigned are left untouched.
func (g *Graph) SetColourCount(c int) {
	g.colours = c
}

// Root returns the vertex where traversals start.
func (g *Graph) Root() int {
	return g.root
}

// SetRoot changes the root vertex.
func (g *Graph) SetRoot(r int) {
	g.root = r
}

// ConnectivityFeasible returns true if there are enough edges to connect all
// the vertices.
func (g *Graph) ConnectivityFeasible() bool {
	return g.edges >= g.vertices-1
}

// CompletenessFeasible returns true if the number of edges does not exceed
// the number of edges of the complete graph.
func (g *Graph) CompletenessFeasible() bool {
	return g.edges <= maxEdges(g.vertices)
}

func maxEdges(vertices int) int {
	return vertices * (vertices - 1) / 2
}

// Colour returns the cell of edge (u, v).
func (g *Graph) Colour(u, v int) Cell {
	return g.matrix[u][v]
}

// HasEdge returns true if there is an edge between u and v.
func (g *Graph) HasEdge(u, v int) bool {
	return g.matrix[u][v].IsEdge()
}

// SetEdge sets the cell of edge (u, v) in both directions. Setting NoEdge
// removes the edge.
func (g *Graph) SetEdge(u, v int, c Cell) error {
	if u < 0 || u >= g.vertices || v < 0 || v >= g.vertices {
		return fmt.Errorf("edge (%d, %d) with %d vertices: %w", u, v, g.vertices, ErrInvalidEdge)
	}
	if u == v {
		return fmt.Errorf("self-loop on vertex %d: %w", u, ErrInvalidEdge)
	}
	if c < NoEdge {
		return fmt.Errorf("edge (%d, %d) with cell %d: %w", u, v, int(c), ErrInvalidEdge)
	}
	g.setEdge(u, v, c)
	return nil
}

func (g *Graph) setEdge(u, v int, c Cell) {
	g.matrix[u][v] = c
	g.matrix[v][u] = c
}

// Neighbors returns the vertices adjacent to v in increasing order.
func (g *Graph) Neighbors(v int) []int {
	var nbors []int
	for i, c := range g.matrix[v] {
		if c.IsEdge() {
			nbors = append(nbors, i)
		}
	}
	return nbors
}

func (g *Graph) hasNeighbor(v int) bool {
	for _, c := range g.matrix[v] {
		if c.IsEdge() {
			return true
		}
	}
	return false
}

// CountEdges returns the number of (undirected) edges in the graph.
func (g *Graph) CountEdges() int {
	n := 0
	for i := 0; i < g.vertices; i++ {
		for j := i + 1; j < g.vertices; j++ {
			if g.matrix[i][j].IsEdge() {
				n++
			}
		}
	}
	return n
}

// Connected returns true if every vertex can be reached from every other
// vertex. Graphs with less than two vertices are connected.
func (g *Graph) Connected() bool {
	if g.vertices < 2 {
		return true
	}

	// The dense part of the set doubles as the BFS queue: vertices are
	// appended in the order they are discovered.
	seen := sparsesets.New(g.vertices)
	seen.Insert(0)
	for i := 0; i < len(seen.Content()); i++ {
		u := seen.Content()[i]
		for v, c := range g.matrix[u] {
			if c.IsEdge() && !seen.Contains(v) {
				seen.Insert(v)
			}
		}
	}
	return len(seen.Content()) == g.vertices
}

// ClearColours resets the colour of every edge. The edges themselves are
// preserved.
func (g *Graph) ClearColours() {
	for i := range g.matrix {
		for j, c := range g.matrix[i] {
			if c.IsEdge() {
				g.matrix[i][j] = Uncoloured
			}
		}
	}
}

// AssignColours gives a uniform random colour in [1, ColourCount()] to each
// uncoloured edge. Edges are coloured independently of each other, in
// row-major order of the upper triangle of the matrix.
func (g *Graph) AssignColours(rng Rand) error {
	if g.colours < 1 {
		return fmt.Errorf("assign colours with palette size %d: %w", g.colours, ErrNoColours)
	}
	for i := 0; i < g.vertices; i++ {
		for j := i + 1; j < g.vertices; j++ {
			if g.matrix[i][j] == Uncoloured {
				g.setEdge(i, j, Coloured(1+rng.Intn(g.colours)))
			}
		}
	}
	return nil
}
