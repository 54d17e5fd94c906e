// Package fs provides file-based persistence for grab results.
package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/fwojciec/docgrab"
	"github.com/google/uuid"
)

// Ensure Writer implements docgrab.ResultWriter at compile time.
var _ docgrab.ResultWriter = (*Writer)(nil)

// Writer writes a result set as a single JSON file. The write is atomic
// from the pipeline's point of view: content goes to a temporary file in
// the target directory first and is renamed over the final path.
type Writer struct {
	dir  string
	name string
}

// NewWriter creates a new Writer. dir is the output directory (created if
// missing), name is the output file name within it.
func NewWriter(dir, name string) *Writer {
	return &Writer{dir: dir, name: name}
}

// Path returns the final output path.
func (w *Writer) Path() string {
	return filepath.Join(w.dir, w.name)
}

// WriteResultSet writes the set to its destination, replacing any
// previous content atomically.
func (w *Writer) WriteResultSet(ctx context.Context, set *docgrab.ResultSet) error {
	if set == nil {
		return docgrab.Errorf(docgrab.EINVALID, "result set required")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := encodeResultSet(set)
	if err != nil {
		return docgrab.Errorf(docgrab.EINTERNAL, "failed to encode result set: %v", err)
	}

	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return docgrab.Errorf(docgrab.EINTERNAL, "failed to create output directory %q: %v", w.dir, err)
	}

	// Write to a uniquely named temp file in the same directory so the
	// rename below cannot cross filesystems.
	tempPath := filepath.Join(w.dir, w.name+"."+uuid.New().String()+".tmp")
	if err := os.WriteFile(tempPath, data, 0644); err != nil {
		return docgrab.Errorf(docgrab.EINTERNAL, "failed to write %q: %v", tempPath, err)
	}

	if err := os.Rename(tempPath, w.Path()); err != nil {
		_ = os.Remove(tempPath)
		return docgrab.Errorf(docgrab.EINTERNAL, "failed to finalize %q: %v", w.Path(), err)
	}

	return nil
}

// encodeResultSet renders the set as indented JSON. HTML escaping is off
// so markdown content stays readable in the output file.
func encodeResultSet(set *docgrab.ResultSet) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(set); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
