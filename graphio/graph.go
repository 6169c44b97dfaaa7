package graphio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/xqaoa/graph"
)

// Format selects a graph serialisation.
type Format int

const (
	// FormatEdgeList is the plain "u v" per line format.
	FormatEdgeList Format = iota
	// FormatYAML is the nodes/edges YAML document.
	FormatYAML
)

// String returns the format name used by the CLI flags.
func (f Format) String() string {
	switch f {
	case FormatEdgeList:
		return "edgelist"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// ParseFormat maps "edgelist"/"txt" and "yaml"/"yml" to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "edgelist", "txt", "edges":
		return FormatEdgeList, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return 0, fmt.Errorf("ParseFormat(%q): %w", s, ErrUnknownFormat)
	}
}

// FormatForPath picks FormatYAML for .yaml/.yml and FormatEdgeList otherwise.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatEdgeList
	}
}

// document is the YAML shape of a graph.
type document struct {
	Nodes *int       `yaml:"nodes"`
	Edges []yamlPair `yaml:"edges"`
}

// yamlPair marshals as a flow sequence "[u, v]".
type yamlPair []int

// MarshalYAML renders the pair in flow style.
func (p yamlPair) MarshalYAML() (interface{}, error) {
	n := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, x := range p {
		n.Content = append(n.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(x)})
	}

	return n, nil
}

// LoadGraph opens path and reads it in the format implied by its extension.
func LoadGraph(path string) (*graph.Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g, err := ReadGraph(f, FormatForPath(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// ReadGraph decodes a graph from r and builds the Model. Graph construction
// errors (self-loops, out-of-range ids) are returned wrapped, so callers can
// still match graph sentinels with errors.Is.
func ReadGraph(r io.Reader, format Format) (*graph.Model, error) {
	var (
		n     int
		pairs []graph.Pair
		err   error
	)
	switch format {
	case FormatEdgeList:
		n, pairs, err = readEdgeList(r)
	case FormatYAML:
		n, pairs, err = readYAML(r)
	default:
		err = fmt.Errorf("ReadGraph: format %d: %w", int(format), ErrUnknownFormat)
	}
	if err != nil {
		return nil, err
	}

	return graph.New(n, pairs)
}

func readEdgeList(r io.Reader) (int, []graph.Pair, error) {
	var (
		pairs     []graph.Pair
		n         = -1
		maxID     = -1
		seenData  bool
		lineNo    int
		scanner   = bufio.NewScanner(r)
		parseInts = func(fields []string) ([]int, error) {
			out := make([]int, len(fields))
			for i, f := range fields {
				v, err := strconv.Atoi(f)
				if err != nil {
					return nil, err
				}
				out[i] = v
			}
			return out, nil
		}
	)

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)

		if !seenData && len(fields) == 1 {
			seenData = true
			v, err := strconv.Atoi(fields[0])
			if err != nil {
				return 0, nil, fmt.Errorf("line %d: node count %q: %w", lineNo, fields[0], ErrSyntax)
			}
			n = v
			continue
		}
		seenData = true

		if len(fields) < 2 || len(fields) > 3 {
			return 0, nil, fmt.Errorf("line %d: want \"u v\", got %q: %w", lineNo, line, ErrSyntax)
		}
		ids, err := parseInts(fields[:2])
		if err != nil {
			return 0, nil, fmt.Errorf("line %d: %v: %w", lineNo, err, ErrSyntax)
		}
		pairs = append(pairs, graph.Pair{ids[0], ids[1]})
		for _, id := range ids {
			if id > maxID {
				maxID = id
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return 0, nil, err
	}

	if n < 0 {
		n = maxID + 1
	}

	return n, pairs, nil
}

func readYAML(r io.Reader) (int, []graph.Pair, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if err == io.EOF {
			return 0, nil, nil
		}
		return 0, nil, fmt.Errorf("yaml: %v: %w", err, ErrSyntax)
	}

	pairs := make([]graph.Pair, len(doc.Edges))
	maxID := -1
	for i, e := range doc.Edges {
		if len(e) != 2 {
			return 0, nil, fmt.Errorf("edges[%d]: want 2 ids, got %d: %w", i, len(e), ErrSyntax)
		}
		pairs[i] = graph.Pair{e[0], e[1]}
		for _, id := range e {
			if id > maxID {
				maxID = id
			}
		}
	}

	n := maxID + 1
	if doc.Nodes != nil {
		n = *doc.Nodes
	}

	return n, pairs, nil
}

// WriteGraph encodes g in the given format. Edges are written in canonical
// order, so the output is stable and reads back to an identical Model.
func WriteGraph(w io.Writer, g *graph.Model, format Format) error {
	switch format {
	case FormatEdgeList:
		bw := bufio.NewWriter(w)
		fmt.Fprintf(bw, "%d\n", g.NumNodes())
		for _, k := range g.EdgeKeys() {
			fmt.Fprintf(bw, "%d %d\n", k.U, k.V)
		}
		return bw.Flush()

	case FormatYAML:
		n := g.NumNodes()
		doc := document{Nodes: &n, Edges: make([]yamlPair, 0, g.NumEdges())}
		for _, k := range g.EdgeKeys() {
			doc.Edges = append(doc.Edges, yamlPair{k.U, k.V})
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(&doc); err != nil {
			return err
		}
		return enc.Close()

	default:
		return fmt.Errorf("WriteGraph: format %d: %w", int(format), ErrUnknownFormat)
	}
}
