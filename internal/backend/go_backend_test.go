package backend_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slugc/slug/internal/backend"
	"github.com/slugc/slug/internal/ir"
	"github.com/slugc/slug/internal/lexer"
	"github.com/slugc/slug/internal/lower"
	"github.com/slugc/slug/internal/parser"
)

func buildModule(t *testing.T) *ir.Module {
	t.Helper()
	toks, err := lexer.New().Lex("fn main(): void { return; }")
	require.NoError(t, err)
	prog, err := parser.NewParser(toks).ParseProgram()
	require.NoError(t, err)
	m, err := lower.Lower(prog)
	require.NoError(t, err)
	return m
}

func TestTextObjectWriterWritesDump(t *testing.T) {
	m := buildModule(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "main.slugir")

	w := backend.NewTextObjectWriter()
	require.NoError(t, w.EmitObject(m, path))

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(contents), "define i32 @main()")
	assert.Contains(t, string(contents), "; build ")
}

func TestTextObjectWriterCreatesParentDirectories(t *testing.T) {
	m := buildModule(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "out", "main.slugir")

	w := backend.NewTextObjectWriter()
	require.NoError(t, w.EmitObject(m, path))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestObjectPathDerivesFromSourceName(t *testing.T) {
	assert.Equal(t, filepath.Join("output", "example.slugir"), backend.ObjectPath("example.slg"))
	assert.Equal(t, filepath.Join("output", "example.slugir"), backend.ObjectPath("/tmp/dir/example.slg"))
}
