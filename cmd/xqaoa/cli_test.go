package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/xqaoa/ansatz"
	"github.com/katalvlaran/xqaoa/graphio"
)

// execute runs the root command with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestInfo(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "g.txt", "4\n0 1\n1 2\n0 2\n")

	out, err := execute(t, "info", p)
	require.NoError(t, err)
	assert.Contains(t, out, "nodes:      4\n")
	assert.Contains(t, out, "edges:      3\n")
	assert.Contains(t, out, "angles:     11\n")
	assert.Contains(t, out, "triangles:  1\n")
	assert.Contains(t, out, "max degree: 2\n")
	assert.Contains(t, out, "components: 2 [3 1]\n")
}

func TestEval(t *testing.T) {
	dir := t.TempDir()
	tri := writeFile(t, dir, "tri.yaml", "nodes: 3\nedges: [[0, 1], [1, 2], [0, 2]]\n")
	edge := writeFile(t, dir, "edge.txt", "0 1\n")
	angles := writeFile(t, dir, "angles.txt", "0 0\n0.39269908169872414, 0.39269908169872414\n1.5707963267948966\n")
	short := writeFile(t, dir, "short.txt", "0 0 0\n")

	out, err := execute(t, "eval", tri)
	require.NoError(t, err)
	assert.Equal(t, "cost: 1.5000000000\n", out)

	out, err = execute(t, "eval", edge, "--angles", angles, "--edges")
	require.NoError(t, err)
	assert.Equal(t, "0#1\t1.0000000000\ncost: 1.0000000000\n", out)

	_, err = execute(t, "eval", edge, "--angles", short)
	assert.ErrorIs(t, err, ansatz.ErrAngleCount)

	_, err = execute(t, "eval", filepath.Join(dir, "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestGenerate(t *testing.T) {
	out, err := execute(t, "generate", "wheel", "--n", "5")
	require.NoError(t, err)
	assert.Equal(t, "5\n0 1\n0 3\n0 4\n1 2\n1 4\n2 3\n2 4\n3 4\n", out)

	out, err = execute(t, "generate", "random-regular", "--n", "8", "--d", "3", "--seed", "11", "--format", "yaml")
	require.NoError(t, err)
	g, err := graphio.ReadGraph(strings.NewReader(out), graphio.FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, 8, g.NumNodes())
	assert.Equal(t, 12, g.NumEdges())

	again, err := execute(t, "generate", "random-regular", "--n", "8", "--d", "3", "--seed", "11", "--format", "yaml")
	require.NoError(t, err)
	assert.Equal(t, out, again)

	out, err = execute(t, "generate", "octahedron", "--center")
	require.NoError(t, err)
	g, err = graphio.ReadGraph(strings.NewReader(out), graphio.FormatEdgeList)
	require.NoError(t, err)
	assert.Equal(t, 7, g.NumNodes())
	assert.Equal(t, 18, g.NumEdges())

	_, err = execute(t, "generate", "petersen")
	assert.ErrorContains(t, err, "unknown family")

	_, err = execute(t, "generate", "grid", "--format", "json")
	assert.ErrorIs(t, err, graphio.ErrUnknownFormat)
}

func TestOptimize(t *testing.T) {
	dir := t.TempDir()
	edge := writeFile(t, dir, "edge.txt", "2\n0 1\n")
	best := filepath.Join(dir, "best.txt")

	out, err := execute(t, "optimize", edge, "--restarts", "3", "--seed", "5", "--out", best)
	require.NoError(t, err)
	assert.Contains(t, out, "of 3)")

	f, err := os.Open(best)
	require.NoError(t, err)
	defer f.Close()
	angles, err := graphio.ReadAngles(f)
	require.NoError(t, err)
	require.Len(t, angles, 5)

	g, err := graphio.LoadGraph(edge)
	require.NoError(t, err)
	ev, err := ansatz.New(g)
	require.NoError(t, err)
	c, err := ev.Cost(angles)
	require.NoError(t, err)
	assert.Greater(t, c, 0.99)

	_, err = execute(t, "optimize", edge, "--method", "adam")
	assert.Error(t, err)
}

func TestOptimize_ConfigAndFlags(t *testing.T) {
	dir := t.TempDir()
	edge := writeFile(t, dir, "edge.txt", "0 1\n")
	cfg := writeFile(t, dir, "cfg.yaml", "method: lbfgs\nrestarts: 3\nworkers: 1\nlog_level: warn\n")

	out, err := execute(t, "--config", cfg, "optimize", edge)
	require.NoError(t, err)
	assert.Contains(t, out, "of 3)")
	// Without --out the angles follow the cost line.
	assert.Equal(t, 6, strings.Count(out, "\n"))

	out, err = execute(t, "--config", cfg, "optimize", edge, "--restarts", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "of 2)")
}
