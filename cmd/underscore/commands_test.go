package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-underscore/codec"
)

func runOn(t *testing.T, doc string, op operation) string {
	t.Helper()
	var out bytes.Buffer
	require.NoError(t, run(strings.NewReader(doc), &out, false, op))
	return strings.TrimSpace(out.String())
}

func TestRunPluck(t *testing.T) {
	doc := `[{"name": "moe", "age": 40}, {"name": "larry"}, {"age": 60}]`
	require.Equal(t, `["moe","larry",null]`, runOn(t, doc, pluck("name")))
	require.Equal(t, `["x"]`, runOn(t, `{"a": {"b": {"c": "x"}}}`, pluck("b.c")))
}

func TestRunUniq(t *testing.T) {
	require.Equal(t, `[1,2,3]`, runOn(t, `[1, 2, 1, 3]`, uniq))
}

func TestRunFirstLast(t *testing.T) {
	require.Equal(t, `[5,4]`, runOn(t, `[5, 4, 3, 2, 1]`, first(2)))
	require.Equal(t, `[1]`, runOn(t, `[5, 4, 3, 2, 1]`, last(1)))
	require.Equal(t, `["x"]`, runOn(t, `{"a": "x", "b": "y"}`, first(0)))
}

func TestRunContains(t *testing.T) {
	require.Equal(t, `[0,2]`, runOn(t, `[1, 2, 1]`, contains(`1`)))
	require.Equal(t, `["b"]`, runOn(t, `{"a": "x", "b": "y"}`, contains(`"y"`)))
	require.Equal(t, `[]`, runOn(t, `[1, 2]`, contains(`3`)))

	err := run(strings.NewReader(`[1]`), &bytes.Buffer{}, false, contains(`{`))
	require.ErrorContains(t, err, "invalid value")
}

func TestRunKeysValues(t *testing.T) {
	doc := `{"zeta": 1, "alpha": 2}`
	require.Equal(t, `["zeta","alpha"]`, runOn(t, doc, keys))
	require.Equal(t, `[1,2]`, runOn(t, doc, values))
	require.Equal(t, `[0,1]`, runOn(t, `["a", "b"]`, keys))
}

func TestRunShuffle(t *testing.T) {
	got := runOn(t, `[1, 2, 3]`, shuffle)
	require.NotEqual(t, `[1,2,3]`, got)
	require.Len(t, got, len(`[1,2,3]`))
}

func TestRunReduce(t *testing.T) {
	require.Equal(t, `"ab"`, runOn(t, `["a", "b"]`, reduce))
	require.Equal(t, `6`, runOn(t, `{"x": 1, "y": 2, "z": 3}`, reduce))
	require.Equal(t, `"a1"`, runOn(t, `["a", 1]`, reduce))

	err := run(strings.NewReader(`[]`), &bytes.Buffer{}, false, reduce)
	require.ErrorContains(t, err, "reduce of empty container")
}

func TestRunIndent(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(strings.NewReader(`[1]`), &out, true, values))
	require.Equal(t, "[\n  1\n]\n", out.String())
}

func TestRunRejectsScalars(t *testing.T) {
	err := run(strings.NewReader(`42`), &bytes.Buffer{}, false, values)
	require.ErrorIs(t, err, codec.ErrUnsupportedDocument)
}

func TestInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.json")
	require.NoError(t, os.WriteFile(path, []byte(`[1]`), 0o600))

	in, closeIn, err := input(path)
	require.NoError(t, err)
	defer closeIn()
	var out bytes.Buffer
	require.NoError(t, run(in, &out, false, values))
	require.Equal(t, "[1]\n", out.String())

	in, _, err = input("")
	require.NoError(t, err)
	require.Same(t, os.Stdin, in)

	_, _, err = input(filepath.Join(t.TempDir(), "missing.json"))
	require.ErrorContains(t, err, "failed to open")
}
