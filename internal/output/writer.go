package output

import (
	"fmt"
	"strings"

	"github.com/spf13/afero"

	"github.com/lizergic/Transcribe-Tool/internal/format"
)

// DerivePath maps an input media path to the default destination for a
// format: the input path with its extension replaced by the format's.
// Pure — no filesystem state is consulted.
func DerivePath(inputPath string, f format.Format) string {
	base := inputPath
	if i := strings.LastIndexByte(base, '.'); i > strings.LastIndexAny(base, `/\`) {
		base = base[:i]
	}
	return base + f.Extension()
}

// Writer persists formatted documents. The filesystem is injected so tests
// run against an in-memory fs.
type Writer struct {
	fs afero.Fs
}

// NewWriter creates a writer over the real filesystem.
func NewWriter() *Writer {
	return &Writer{fs: afero.NewOsFs()}
}

// NewWriterFs creates a writer over the given filesystem.
func NewWriterFs(fs afero.Fs) *Writer {
	return &Writer{fs: fs}
}

// Write stores doc as the complete content of path, UTF-8, overwriting any
// existing file. A missing or unwritable destination directory is a fatal
// error surfaced to the caller; nothing is retried.
func (w *Writer) Write(path, doc string) error {
	if err := afero.WriteFile(w.fs, path, []byte(doc), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
