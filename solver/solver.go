// Package solver contains a greedy heuristic that computes a colour-consistent
// spanning traversal of a coloured graph.
//
// Starting from the graph's root, the solver repeatedly extends the set of
// visited vertices with one unvisited neighbor of a visited vertex u. The cost
// of extending u with edge (u, v) is the absolute difference between the
// colour of (u, v) and the colour of the edge that brought u into the visited
// set. Extensions from the root are free.
package solver

import (
	"errors"
	"fmt"
	"math"

	"github.com/rhartert/comin/graph"
	"github.com/rhartert/sparsesets"
	"github.com/rhartert/yagh"
)

var (
	// ErrUnreachableVertices is returned when no visited vertex has an
	// unvisited neighbor while some vertices are still unvisited.
	ErrUnreachableVertices = errors.New("solver: unreachable vertices")

	// ErrInvalidRoot is returned when the root of the graph is not one of its
	// vertices.
	ErrInvalidRoot = errors.New("solver: invalid root")

	// ErrNeedRand is returned when a random solver has no random source.
	ErrNeedRand = errors.New("solver: random source is required")

	// ErrSolved is returned when stepping a completed traversal.
	ErrSolved = errors.New("solver: traversal already completed")
)

// noColour is the incoming colour of the root and of unvisited vertices.
const noColour = -1

// noCandidate is the heap key of visited vertices without unvisited
// neighbors. It is greater than the key of any extension.
const noCandidate = math.MaxInt

// Rand is the source of randomness of random solvers. *rand.Rand satisfies
// this interface.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

type Config struct {
	// Random makes the solver select each extension uniformly at random among
	// all the possible (visited, unvisited neighbor) pairs instead of
	// selecting the cheapest one. Costs are still accumulated.
	Random bool
}

// Extension is one step of the traversal: vertex To is visited through edge
// (From, To).
type Extension struct {
	From   int
	To     int
	Colour graph.Cell
	Cost   int
}

// Result summarizes a traversal.
type Result struct {
	Vertices  int `json:"v"`
	Edges     int `json:"e"`
	Colours   int `json:"c"`
	Root      int `json:"r"`
	TotalCost int `json:"t"`
}

type Solver struct {
	Graph *graph.Graph
	Cfg   Config

	rng       Rand
	visited   *sparsesets.Set
	incoming  []int
	totalCost int
	steps     []Extension

	// Number of unvisited neighbors of each visited vertex.
	frontier []int

	// Cheapest unvisited neighbor of each visited vertex (-1 if none).
	// Visited vertices are ordered in bestByCost by key cost*n+u so that
	// vertices with the same cost come out by increasing index. Vertices
	// without unvisited neighbors have key noCandidate.
	best       []int
	bestByCost *yagh.IntMap[int]

	// Visited vertices weighted by their number of unvisited neighbors.
	pairWheel *wheel
}

// New returns a solver that computes a traversal of g starting from its root.
// The random source is only used (and required) if cfg.Random is set. The
// solver does not modify g which must not be modified during the traversal.
func New(g *graph.Graph, cfg Config, rng Rand) (*Solver, error) {
	n := g.VertexCount()
	if r := g.Root(); r < 0 || r >= n {
		return nil, fmt.Errorf("root %d with %d vertices: %w", r, n, ErrInvalidRoot)
	}
	if cfg.Random && rng == nil {
		return nil, ErrNeedRand
	}

	s := &Solver{
		Graph:      g,
		Cfg:        cfg,
		rng:        rng,
		visited:    sparsesets.New(n),
		incoming:   make([]int, n),
		steps:      make([]Extension, 0, n-1),
		frontier:   make([]int, n),
		best:       make([]int, n),
		bestByCost: yagh.New[int](n),
		pairWheel:  newWheel(n),
	}
	for v := range s.incoming {
		s.incoming[v] = noColour
		s.best[v] = -1
	}

	s.visit(g.Root(), noColour)
	return s, nil
}

// Done returns true if all the vertices have been visited.
func (s *Solver) Done() bool {
	return len(s.visited.Content()) == s.Graph.VertexCount()
}

// Solve extends the traversal until all vertices are visited. It returns an
// error wrapping ErrUnreachableVertices if some vertices cannot be reached
// from the root. Calling Solve on a completed traversal does nothing.
func (s *Solver) Solve() error {
	// A traversal makes at most one extension per vertex other than the root.
	for i := len(s.steps); i < s.Graph.VertexCount()-1 && !s.Done(); i++ {
		if _, err := s.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Step visits one more vertex and returns the extension that was applied.
func (s *Solver) Step() (Extension, error) {
	if s.Done() {
		return Extension{}, ErrSolved
	}

	var ext Extension
	var ok bool
	if s.Cfg.Random {
		ext, ok = s.randomExtension()
	} else {
		ext, ok = s.cheapestExtension()
	}
	if !ok {
		unvisited := s.Graph.VertexCount() - len(s.visited.Content())
		return Extension{}, fmt.Errorf("%d vertices cannot be reached from root %d: %w",
			unvisited, s.Graph.Root(), ErrUnreachableVertices)
	}

	s.totalCost += ext.Cost
	s.steps = append(s.steps, ext)
	s.visit(ext.To, int(ext.Colour))
	return ext, nil
}

// cheapestExtension returns the cheapest extension. If several extensions have
// the same cost, the one from the smallest visited vertex is returned.
func (s *Solver) cheapestExtension() (Extension, bool) {
	entry := s.bestByCost.Min()
	if entry == nil {
		return Extension{}, false
	}
	u := entry.Elem
	if s.best[u] == -1 {
		return Extension{}, false // no visited vertex has unvisited neighbors
	}
	return s.extension(u, s.best[u]), true
}

// randomExtension returns an extension selected uniformly at random among all
// the possible ones. A visited vertex u is first selected with probability
// proportional to its number of unvisited neighbors, then one of them is
// selected uniformly.
func (s *Solver) randomExtension() (Extension, bool) {
	u := s.pairWheel.roll(s.rng.Float64())
	if u == -1 {
		return Extension{}, false
	}
	k := s.rng.Intn(s.frontier[u])
	for _, v := range s.Graph.Neighbors(u) {
		if s.visited.Contains(v) {
			continue
		}
		if k == 0 {
			return s.extension(u, v), true
		}
		k--
	}
	panic(fmt.Sprintf("vertex %d has less than %d unvisited neighbors", u, s.frontier[u]))
}

func (s *Solver) extension(u, v int) Extension {
	return Extension{
		From:   u,
		To:     v,
		Colour: s.Graph.Colour(u, v),
		Cost:   s.cost(u, v),
	}
}

// cost returns the cost of visiting v from the visited vertex u.
func (s *Solver) cost(u, v int) int {
	in := s.incoming[u]
	if in == noColour {
		return 0
	}
	d := in - int(s.Graph.Colour(u, v))
	if d < 0 {
		return -d
	}
	return d
}

// visit marks v as visited and updates the selection structures of v and of
// its visited neighbors, which are the only vertices whose candidates change.
func (s *Solver) visit(v int, colour int) {
	s.visited.Insert(v)
	s.incoming[v] = colour

	for _, u := range s.Graph.Neighbors(v) {
		if s.visited.Contains(u) {
			s.update(u)
		}
	}
	s.update(v)
}

// update recomputes the candidates of visited vertex u.
func (s *Solver) update(u int) {
	best, bestCost, count := -1, 0, 0
	for _, v := range s.Graph.Neighbors(u) {
		if s.visited.Contains(v) {
			continue
		}
		count++
		// Strict comparison: the first neighbor with the minimum cost wins.
		if c := s.cost(u, v); best == -1 || c < bestCost {
			best, bestCost = v, c
		}
	}

	s.frontier[u] = count
	s.best[u] = best
	s.pairWheel.setWeight(u, float64(count))
	if best == -1 {
		s.bestByCost.Put(u, noCandidate)
	} else {
		s.bestByCost.Put(u, bestCost*s.Graph.VertexCount()+u)
	}
}

// TotalCost returns the sum of the costs of the extensions applied so far.
func (s *Solver) TotalCost() int {
	return s.totalCost
}

// Steps returns the extensions applied so far, in order.
func (s *Solver) Steps() []Extension {
	return append([]Extension(nil), s.steps...)
}

// IncomingColour returns the colour of the edge used to visit v, or -1 if v is
// the root or has not been visited.
func (s *Solver) IncomingColour(v int) int {
	return s.incoming[v]
}

// VertexCount returns the number of vertices of the graph.
func (s *Solver) VertexCount() int {
	return s.Graph.VertexCount()
}

// EdgeCount returns the number of edges of the graph.
func (s *Solver) EdgeCount() int {
	return s.Graph.EdgeCount()
}

// ColourCount returns the number of colours of the graph.
func (s *Solver) ColourCount() int {
	return s.Graph.ColourCount()
}

// Root returns the vertex where the traversal starts.
func (s *Solver) Root() int {
	return s.Graph.Root()
}

// Result returns a summary of the traversal.
func (s *Solver) Result() Result {
	return Result{
		Vertices:  s.VertexCount(),
		Edges:     s.EdgeCount(),
		Colours:   s.ColourCount(),
		Root:      s.Root(),
		TotalCost: s.TotalCost(),
	}
}
