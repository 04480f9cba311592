package edgefile

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/spantree/graph"
)

// MaxVertices bounds the vertex count of a decoded graph. Endpoints must be
// below it and a vertices key may not exceed it.
const MaxVertices = 1 << 20

// Sentinel errors for edge files.
var (
	// ErrMixedEdgeKinds indicates a file with both [[edge]] and [[labeled_edge]] tables.
	ErrMixedEdgeKinds = errors.New("edgefile: both edge and labeled_edge present")

	// ErrUnknownKey indicates keys the schema does not define.
	ErrUnknownKey = errors.New("edgefile: unknown key")

	// ErrNegativeWeight indicates an edge weight below zero.
	ErrNegativeWeight = errors.New("edgefile: negative weight")

	// ErrBadVertex indicates a vertex index outside [0, MaxVertices). A
	// vertices count outside [0, MaxVertices] or below the largest
	// endpoint + 1 is reported the same way.
	ErrBadVertex = errors.New("edgefile: bad vertex index")

	// ErrBadLabel indicates a label that is not exactly one character.
	ErrBadLabel = errors.New("edgefile: label must be a single character")

	// ErrWeightOverflow indicates a weight that a TOML integer cannot hold.
	ErrWeightOverflow = errors.New("edgefile: weight exceeds TOML integer range")
)

// File is the decoded form of an edge file.
type File struct {
	Name         string          `toml:"name,omitempty"`
	Vertices     int             `toml:"vertices,omitempty"`
	Edges        []EdgeRecord    `toml:"edge,omitempty"`
	LabeledEdges []LabeledRecord `toml:"labeled_edge,omitempty"`
}

// EdgeRecord is one [[edge]] table.
type EdgeRecord struct {
	From   int64 `toml:"from"`
	To     int64 `toml:"to"`
	Weight int64 `toml:"weight"`
}

// LabeledRecord is one [[labeled_edge]] table.
type LabeledRecord struct {
	From   string `toml:"from"`
	To     string `toml:"to"`
	Weight int64  `toml:"weight"`
}

// Decode parses an edge file from r. Keys outside the schema are rejected.
func Decode(r io.Reader) (*File, error) {
	var f File
	md, err := toml.NewDecoder(r).Decode(&f)
	if err != nil {
		return nil, fmt.Errorf("edgefile: decode: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(keys, ", "))
	}

	return &f, nil
}

// Load opens and decodes the edge file at path.
func Load(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("edgefile: %w", err)
	}
	defer fh.Close()

	f, err := Decode(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return f, nil
}

// Graph validates the records and builds the graph they describe.
func (f *File) Graph() (*graph.Graph, error) {
	if len(f.Edges) > 0 && len(f.LabeledEdges) > 0 {
		return nil, ErrMixedEdgeKinds
	}
	if f.Vertices < 0 || f.Vertices > MaxVertices {
		return nil, fmt.Errorf("%w: vertices=%d outside [0, %d]", ErrBadVertex, f.Vertices, MaxVertices)
	}

	var (
		edges []graph.Edge
		err   error
	)
	if len(f.LabeledEdges) > 0 {
		edges, err = f.labeled()
	} else {
		edges, err = f.indexed()
	}
	if err != nil {
		return nil, err
	}

	g := graph.FromEdges(edges)
	if f.Vertices == 0 || f.Vertices == g.VertexCount() {
		return g, nil
	}
	if f.Vertices < g.VertexCount() {
		return nil, fmt.Errorf("%w: vertices=%d but edges reach vertex %d", ErrBadVertex, f.Vertices, g.VertexCount()-1)
	}
	sized := graph.New(f.Vertices)
	for _, e := range edges {
		sized.AddEdge(e)
	}

	return sized, nil
}

func (f *File) indexed() ([]graph.Edge, error) {
	edges := make([]graph.Edge, len(f.Edges))
	for i, r := range f.Edges {
		if !validIndex(r.From) || !validIndex(r.To) {
			return nil, fmt.Errorf("edge %d: %w: %d - %d", i, ErrBadVertex, r.From, r.To)
		}
		if r.Weight < 0 {
			return nil, fmt.Errorf("edge %d: %w: %d", i, ErrNegativeWeight, r.Weight)
		}
		edges[i] = graph.NewEdge(int(r.From), int(r.To), graph.Weight(r.Weight))
	}

	return edges, nil
}

func validIndex(v int64) bool {
	return v >= 0 && v < MaxVertices
}

func (f *File) labeled() ([]graph.Edge, error) {
	edges := make([]graph.Edge, len(f.LabeledEdges))
	for i, r := range f.LabeledEdges {
		from, err := labelIndex(r.From)
		if err != nil {
			return nil, fmt.Errorf("labeled_edge %d from: %w", i, err)
		}
		to, err := labelIndex(r.To)
		if err != nil {
			return nil, fmt.Errorf("labeled_edge %d to: %w", i, err)
		}
		if r.Weight < 0 {
			return nil, fmt.Errorf("labeled_edge %d: %w: %d", i, ErrNegativeWeight, r.Weight)
		}
		edges[i] = graph.NewEdge(from, to, graph.Weight(r.Weight))
	}

	return edges, nil
}

// labelIndex maps a one-character label to its vertex index.
func labelIndex(s string) (int, error) {
	r, err := singleRune(s)
	if err != nil {
		return 0, err
	}

	return graph.VertexIndex(r)
}

func singleRune(s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%w: %q", ErrBadLabel, s)
	}
	r, _ := utf8.DecodeRuneInString(s)

	return r, nil
}

// FromGraph captures g's canonical edges and vertex count as an indexed
// File. TOML integers are signed 64-bit, so weights above math.MaxInt64
// yield ErrWeightOverflow.
func FromGraph(name string, g *graph.Graph) (*File, error) {
	f := &File{Name: name, Vertices: g.VertexCount()}
	for _, e := range g.ListOfEdges() {
		if e.Weight > math.MaxInt64 {
			return nil, fmt.Errorf("%w: %v", ErrWeightOverflow, e)
		}
		f.Edges = append(f.Edges, EdgeRecord{From: int64(e.Start), To: int64(e.End), Weight: int64(e.Weight)})
	}

	return f, nil
}

// Encode writes f as TOML.
func Encode(w io.Writer, f *File) error {
	if err := toml.NewEncoder(w).Encode(f); err != nil {
		return fmt.Errorf("edgefile: encode: %w", err)
	}

	return nil
}
