package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileFileWritesObject(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "main.slg")
	require.NoError(t, os.WriteFile(src, []byte("fn main(): void { return; }"), 0o644))

	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(cwd)

	require.NoError(t, compileFile(src))

	out, err := os.ReadFile(filepath.Join("output", "main.slugir"))
	require.NoError(t, err)
	assert.Contains(t, string(out), "define i32 @main()")
}

func TestCompileFileReportsLexerOrParserError(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "broken.slg")
	require.NoError(t, os.WriteFile(src, []byte("fn main(): void { return"), 0o644))

	err := compileFile(src)
	require.Error(t, err)
}

func TestCompileFileMissingFile(t *testing.T) {
	err := compileFile(filepath.Join(t.TempDir(), "missing.slg"))
	require.Error(t, err)
}

func TestCompileFileRejectsWrongExtension(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "main.txt")
	require.NoError(t, os.WriteFile(src, []byte("fn main(): void { return; }"), 0o644))

	err := compileFile(src)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ".slg")
}
