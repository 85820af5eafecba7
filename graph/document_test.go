package graph

import (
	"bytes"
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestString(t *testing.T) {
	g := mustGraph(t, 2, 5, 1, [][3]int{{0, 1, 3}})

	want := "{\n" +
		"\t\"graph\" : {\n" +
		"\t\t\"root\"     : 1,\n" +
		"\t\t\"num_of_v\" : 2,\n" +
		"\t\t\"num_of_e\" : 1,\n" +
		"\t\t\"num_of_c\" : 5,\n" +
		"\t\t\"matrix\"   :\n" +
		"\t\t\t[[ -1,   3],\n" +
		"\t\t\t [  3,  -1]]\n" +
		"\t}\n" +
		"}\n"

	if diff := cmp.Diff(want, g.String()); diff != "" {
		t.Errorf("String(): mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeDecode_roundTrip(t *testing.T) {
	testCases := []struct {
		desc     string
		vertices int
		edges    int
		colours  int
		root     int
	}{
		{"empty", 0, 0, 1, 0},
		{"single vertex", 1, 0, 3, 0},
		{"small", 5, 6, 10, 1},
		{"large colours", 12, 40, 250, 11},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			rng := rand.New(rand.NewSource(3))
			g := New(tc.vertices, tc.edges, tc.colours, tc.root)
			if err := g.Generate(rng, GenerateConfig{}); err != nil {
				t.Fatalf("Generate(): %s", err)
			}
			if err := g.AssignColours(rng); err != nil {
				t.Fatalf("AssignColours(): %s", err)
			}

			buf := &bytes.Buffer{}
			if err := g.Encode(buf); err != nil {
				t.Fatalf("Encode(): %s", err)
			}
			got, err := Decode(buf)
			if err != nil {
				t.Fatalf("Decode(): want no error, got %s", err)
			}

			if diff := cmp.Diff(g.Document(), got.Document()); diff != "" {
				t.Errorf("Decode(): mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecode_compactDocument(t *testing.T) {
	doc := `{"graph": {"root": 0, "num_of_v": 3, "num_of_e": 2, "num_of_c": 4,
		"matrix": [[-1, 2, -1], [2, -1, 0], [-1, 0, -1]]}}`

	g, err := Decode(strings.NewReader(doc))

	if err != nil {
		t.Fatalf("Decode(): want no error, got %s", err)
	}
	want := [][]Cell{
		{NoEdge, Coloured(2), NoEdge},
		{Coloured(2), NoEdge, Uncoloured},
		{NoEdge, Uncoloured, NoEdge},
	}
	if diff := cmp.Diff(want, g.matrix); diff != "" {
		t.Errorf("Decode(): matrix mismatch (-want +got):\n%s", diff)
	}
}

func TestDecode_infeasibleCountsAccepted(t *testing.T) {
	// num_of_e is not checked against the matrix nor against the number of
	// vertices.
	doc := `{"graph": {"root": 7, "num_of_v": 2, "num_of_e": 99, "num_of_c": 1,
		"matrix": [[-1, -1], [-1, -1]]}}`

	g, err := Decode(strings.NewReader(doc))

	if err != nil {
		t.Fatalf("Decode(): want no error, got %s", err)
	}
	if g.EdgeCount() != 99 || g.Root() != 7 {
		t.Errorf("Decode(): want (e=99, r=7), got (e=%d, r=%d)", g.EdgeCount(), g.Root())
	}
}

func TestDecode_malformed(t *testing.T) {
	testCases := []struct {
		desc      string
		doc       string
		wantField string
	}{{
		desc:      "not json",
		doc:       `{"graph": `,
		wantField: "",
	}, {
		desc:      "missing graph",
		doc:       `{"root": 0}`,
		wantField: `"graph"`,
	}, {
		desc:      "missing root",
		doc:       `{"graph": {"num_of_v": 1, "num_of_e": 0, "num_of_c": 1, "matrix": [[-1]]}}`,
		wantField: `"root"`,
	}, {
		desc:      "missing vertices",
		doc:       `{"graph": {"root": 0, "num_of_e": 0, "num_of_c": 1, "matrix": [[-1]]}}`,
		wantField: `"num_of_v"`,
	}, {
		desc:      "missing edges",
		doc:       `{"graph": {"root": 0, "num_of_v": 1, "num_of_c": 1, "matrix": [[-1]]}}`,
		wantField: `"num_of_e"`,
	}, {
		desc:      "missing colours",
		doc:       `{"graph": {"root": 0, "num_of_v": 1, "num_of_e": 0, "matrix": [[-1]]}}`,
		wantField: `"num_of_c"`,
	}, {
		desc:      "missing matrix",
		doc:       `{"graph": {"root": 0, "num_of_v": 1, "num_of_e": 0, "num_of_c": 1}}`,
		wantField: `"matrix"`,
	}, {
		desc:      "negative vertices",
		doc:       `{"graph": {"root": 0, "num_of_v": -1, "num_of_e": 0, "num_of_c": 1, "matrix": []}}`,
		wantField: `"num_of_v"`,
	}, {
		desc:      "too few rows",
		doc:       `{"graph": {"root": 0, "num_of_v": 2, "num_of_e": 0, "num_of_c": 1, "matrix": [[-1, -1]]}}`,
		wantField: `"matrix"`,
	}, {
		desc:      "not square",
		doc:       `{"graph": {"root": 0, "num_of_v": 2, "num_of_e": 0, "num_of_c": 1, "matrix": [[-1, -1], [-1]]}}`,
		wantField: `"matrix"`,
	}, {
		desc:      "colour out of palette",
		doc:       `{"graph": {"root": 0, "num_of_v": 2, "num_of_e": 1, "num_of_c": 1, "matrix": [[-1, 2], [2, -1]]}}`,
		wantField: `"matrix"`,
	}, {
		desc:      "invalid cell",
		doc:       `{"graph": {"root": 0, "num_of_v": 2, "num_of_e": 1, "num_of_c": 1, "matrix": [[-1, -3], [-3, -1]]}}`,
		wantField: `"matrix"`,
	}, {
		desc:      "asymmetric",
		doc:       `{"graph": {"root": 0, "num_of_v": 2, "num_of_e": 1, "num_of_c": 3, "matrix": [[-1, 1], [2, -1]]}}`,
		wantField: `"matrix"`,
	}, {
		desc:      "self-loop",
		doc:       `{"graph": {"root": 0, "num_of_v": 1, "num_of_e": 1, "num_of_c": 1, "matrix": [[0]]}}`,
		wantField: `"matrix"`,
	}}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tc.doc))

			if !errors.Is(err, ErrMalformedDocument) {
				t.Fatalf("Decode(): want ErrMalformedDocument, got %v", err)
			}
			if !strings.Contains(err.Error(), tc.wantField) {
				t.Errorf("Decode(): want error naming %s, got %q", tc.wantField, err)
			}
		})
	}
}
