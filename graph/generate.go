package graph

import "fmt"

// GenerateConfig contains the parameters of Generate.
type GenerateConfig struct {
	// MaxFillAttempts bounds the number of random vertex pairs drawn to
	// insert the edges that remain after every vertex has been connected.
	// Zero means 64 draws per vertex pair of the complete graph (plus 64),
	// which is far above what rejection sampling needs in practice even
	// when the requested graph is complete.
	MaxFillAttempts int
}

func (cfg GenerateConfig) maxFillAttempts(vertices int) int {
	if cfg.MaxFillAttempts > 0 {
		return cfg.MaxFillAttempts
	}
	return 64*maxEdges(vertices) + 64
}

// Generate replaces the edges of g with EdgeCount() random uncoloured edges
// such that no vertex is isolated. It returns an error wrapping
// ErrConstraintViolation if the vertex and edge counts are not feasible, and
// ErrGenerationExhausted if the edges could not be inserted within the
// attempt budget of cfg. On error, g is left unchanged.
//
// Generation first connects each isolated vertex to a uniform random vertex,
// then inserts edges between uniform random pairs of vertices until the
// requested number of edges is reached. Note that the first phase does not
// guarantee that the graph is connected, see Connected.
func (g *Graph) Generate(rng Rand, cfg GenerateConfig) error {
	if !g.ConnectivityFeasible() {
		return fmt.Errorf("connectivity: %d edges cannot connect %d vertices (need at least %d): %w",
			g.edges, g.vertices, g.vertices-1, ErrConstraintViolation)
	}
	if !g.CompletenessFeasible() {
		return fmt.Errorf("completeness: %d edges exceed the %d edges of a complete graph with %d vertices: %w",
			g.edges, maxEdges(g.vertices), g.vertices, ErrConstraintViolation)
	}

	prev := g.matrix
	g.matrix = newMatrix(g.vertices)
	if g.vertices < 2 {
		return nil // no edge can exist
	}

	// Each vertex inserts at most one edge in this phase and the vertex picked
	// by vertex 0 never does, so at most vertices-1 edges are inserted and
	// remaining cannot become negative.
	remaining := g.edges
	for i := 0; i < g.vertices; i++ {
		if g.hasNeighbor(i) {
			continue
		}
		g.setEdge(i, randomOther(rng, g.vertices, i), Uncoloured)
		remaining--
	}

	maxAttempts := cfg.maxFillAttempts(g.vertices)
	for attempts := 0; remaining > 0; attempts++ {
		if attempts == maxAttempts {
			g.matrix = prev
			return fmt.Errorf("%d edges left to insert after %d attempts: %w",
				remaining, attempts, ErrGenerationExhausted)
		}
		u := rng.Intn(g.vertices)
		v := randomOther(rng, g.vertices, u)
		if g.matrix[u][v].IsEdge() {
			continue
		}
		g.setEdge(u, v, Uncoloured)
		remaining--
	}

	return nil
}

// randomOther returns a uniform random vertex in [0, n) different from
// excluded. It requires n >= 2.
func randomOther(rng Rand, n int, excluded int) int {
	v := rng.Intn(n - 1)
	if v >= excluded {
		v++
	}
	return v
}
