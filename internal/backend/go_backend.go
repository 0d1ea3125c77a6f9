// Package backend defines the seam between the compiler core and the
// native-code emitter spec.md places out of scope: target machine
// selection, object file writing, and relocation are a real backend's
// job. What lives here stands in for that backend so the pipeline has
// somewhere to hand a verified module.
package backend

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/slugc/slug/internal/ir"
)

// Backend accepts a verified IR module and emits it to path. A real
// backend would select a target machine and write an object file;
// EmitObject is the seam it would plug into.
type Backend interface {
	EmitObject(module *ir.Module, path string) error
}

// TextObjectWriter is the one Backend this repository implements: it
// writes the module's canonical textual dump (ir.Module.Dump) to disk,
// tagged with a build ID, in place of a real object file.
type TextObjectWriter struct{}

// NewTextObjectWriter constructs the stand-in backend.
func NewTextObjectWriter() *TextObjectWriter {
	return &TextObjectWriter{}
}

// EmitObject writes module.Dump() to path, creating parent directories
// as needed. The module must already have passed ir.Verify — this
// function does not re-verify it.
func (w *TextObjectWriter) EmitObject(module *ir.Module, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("backend: creating output directory: %w", err)
	}

	buildID := uuid.New().String()
	contents := fmt.Sprintf("; build %s\n%s", buildID, module.Dump())

	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		return fmt.Errorf("backend: writing %s: %w", path, err)
	}
	return nil
}

// ObjectPath derives the output path for a given source file: the
// source's base name with its extension replaced by .slugir, inside an
// "output" directory relative to the current working directory.
func ObjectPath(sourcePath string) string {
	base := filepath.Base(sourcePath)
	ext := filepath.Ext(base)
	name := base[:len(base)-len(ext)]
	return filepath.Join("output", name+".slugir")
}
