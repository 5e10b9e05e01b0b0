package dumper

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Dumper writes one output file describing part of the host catalog.
type Dumper interface {
	// Name returns the output file name, relative to the output directory.
	Name() string
	Dump(enc *Encoder, dir string) error
}

// Encoder is the JSON configuration shared by every dumper of a run:
// indented, without HTML escaping. Nil pointers and slices without omitempty
// are written as null.
type Encoder struct {
	indent string
}

func NewEncoder(indent string) *Encoder {
	return &Encoder{indent: indent}
}

// Encode writes v followed by a newline.
func (e *Encoder) Encode(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if e.indent != "" {
		enc.SetIndent("", e.indent)
	}
	return enc.Encode(v)
}

// WriteFile streams the output of write into dir/name through a temporary
// file in dir, renaming it into place only when write succeeds.
func WriteFile(dir, name string, write func(w io.Writer) error) error {
	tmp, err := os.CreateTemp(dir, "."+name+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := write(tmp); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close %s: %w", name, err)
	}
	if err := os.Rename(tmpPath, filepath.Join(dir, name)); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
