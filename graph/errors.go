package graph

import "errors"

var (
	// ErrConstraintViolation is returned when the vertex and edge counts of a
	// graph cannot describe a connected simple graph.
	ErrConstraintViolation = errors.New("graph: constraint violation")

	// ErrGenerationExhausted is returned when random edge insertion could not
	// reach the requested number of edges within its attempt budget.
	ErrGenerationExhausted = errors.New("graph: generation exhausted")

	// ErrMalformedDocument is returned when a graph document is missing a
	// field or is structurally inconsistent.
	ErrMalformedDocument = errors.New("graph: malformed graph document")

	// ErrNoColours is returned when colours are assigned with an empty palette.
	ErrNoColours = errors.New("graph: no colours")

	// ErrInvalidEdge is returned when an edge refers to unknown vertices or
	// is a self-loop.
	ErrInvalidEdge = errors.New("graph: invalid edge")
)
