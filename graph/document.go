package graph

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Document is the persisted form of a graph.
type Document struct {
	Graph DocumentGraph `json:"graph"`
}

// DocumentGraph holds the fields of a persisted graph. Matrix uses the cell
// encoding of Cell: -1 for no edge, 0 for an uncoloured edge, and c >= 1 for
// an edge of colour c.
type DocumentGraph struct {
	Root     int     `json:"root"`
	Vertices int     `json:"num_of_v"`
	Edges    int     `json:"num_of_e"`
	Colours  int     `json:"num_of_c"`
	Matrix   [][]int `json:"matrix"`
}

// rawDocument mirrors Document with optional fields so that missing fields
// can be told apart from zero values.
type rawDocument struct {
	Graph *struct {
		Root     *int    `json:"root"`
		Vertices *int    `json:"num_of_v"`
		Edges    *int    `json:"num_of_e"`
		Colours  *int    `json:"num_of_c"`
		Matrix   [][]int `json:"matrix"`
	} `json:"graph"`
}

// Document returns the persisted form of g.
func (g *Graph) Document() Document {
	m := make([][]int, g.vertices)
	for i, row := range g.matrix {
		m[i] = make([]int, len(row))
		for j, c := range row {
			m[i][j] = int(c)
		}
	}
	return Document{Graph: DocumentGraph{
		Root:     g.root,
		Vertices: g.vertices,
		Edges:    g.edges,
		Colours:  g.colours,
		Matrix:   m,
	}}
}

// FromDocument returns the graph described by doc. The document must be
// structurally consistent (see Decode) but the feasibility of its vertex and
// edge counts is not checked.
func FromDocument(doc Document) (*Graph, error) {
	dg := doc.Graph
	if dg.Vertices < 0 {
		return nil, malformed("num_of_v", "negative value %d", dg.Vertices)
	}
	if dg.Edges < 0 {
		return nil, malformed("num_of_e", "negative value %d", dg.Edges)
	}
	if dg.Colours < 0 {
		return nil, malformed("num_of_c", "negative value %d", dg.Colours)
	}
	if len(dg.Matrix) != dg.Vertices {
		return nil, malformed("matrix", "%d rows for %d vertices", len(dg.Matrix), dg.Vertices)
	}

	for i, row := range dg.Matrix {
		if len(row) != dg.Vertices {
			return nil, malformed("matrix", "row %d has %d cells for %d vertices", i, len(row), dg.Vertices)
		}
	}

	g := New(dg.Vertices, dg.Edges, dg.Colours, dg.Root)
	for i, row := range dg.Matrix {
		for j, v := range row {
			switch {
			case v < int(NoEdge) || v > dg.Colours:
				return nil, malformed("matrix", "cell (%d, %d) = %d not in [-1, %d]", i, j, v, dg.Colours)
			case i == j && v != int(NoEdge):
				return nil, malformed("matrix", "self-loop on vertex %d", i)
			case dg.Matrix[j][i] != v:
				return nil, malformed("matrix", "cell (%d, %d) = %d but cell (%d, %d) = %d", i, j, v, j, i, dg.Matrix[j][i])
			}
			g.matrix[i][j] = Cell(v)
		}
	}
	return g, nil
}

func malformed(field string, format string, args ...any) error {
	return fmt.Errorf("field %q: %s: %w", field, fmt.Sprintf(format, args...), ErrMalformedDocument)
}

// Decode reads a graph document from r. It returns an error wrapping
// ErrMalformedDocument if a field is missing or if the matrix is not a
// symmetric square matrix of valid cells matching the number of vertices.
func Decode(r io.Reader) (*Graph, error) {
	var raw rawDocument
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decoding graph document: %w: %s", ErrMalformedDocument, err)
	}

	rg := raw.Graph
	if rg == nil {
		return nil, malformed("graph", "missing")
	}
	switch {
	case rg.Root == nil:
		return nil, malformed("root", "missing")
	case rg.Vertices == nil:
		return nil, malformed("num_of_v", "missing")
	case rg.Edges == nil:
		return nil, malformed("num_of_e", "missing")
	case rg.Colours == nil:
		return nil, malformed("num_of_c", "missing")
	case rg.Matrix == nil:
		return nil, malformed("matrix", "missing")
	}

	return FromDocument(Document{Graph: DocumentGraph{
		Root:     *rg.Root,
		Vertices: *rg.Vertices,
		Edges:    *rg.Edges,
		Colours:  *rg.Colours,
		Matrix:   rg.Matrix,
	}})
}

// Encode writes the document of g to w in its human-readable form (see
// String).
func (g *Graph) Encode(w io.Writer) error {
	_, err := io.WriteString(w, g.String())
	return err
}

// String returns the document of g as indented JSON where each row of the
// matrix is printed on its own line with cells padded to three characters.
func (g *Graph) String() string {
	sb := strings.Builder{}
	sb.WriteString("{\n")
	sb.WriteString("\t\"graph\" : {\n")
	fmt.Fprintf(&sb, "\t\t\"root\"     : %d,\n", g.root)
	fmt.Fprintf(&sb, "\t\t\"num_of_v\" : %d,\n", g.vertices)
	fmt.Fprintf(&sb, "\t\t\"num_of_e\" : %d,\n", g.edges)
	fmt.Fprintf(&sb, "\t\t\"num_of_c\" : %d,\n", g.colours)
	sb.WriteString("\t\t\"matrix\"   :\n")
	sb.WriteString("\t\t\t[")
	for i, row := range g.matrix {
		if i > 0 {
			sb.WriteString(",\n\t\t\t ")
		}
		sb.WriteByte('[')
		for j, c := range row {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%3d", int(c))
		}
		sb.WriteByte(']')
	}
	sb.WriteString("]\n")
	sb.WriteString("\t}\n")
	sb.WriteString("}\n")
	return sb.String()
}
