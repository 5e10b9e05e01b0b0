package registries

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"github.com/OCharnyshevich/datadumper/internal/dumper"
	"github.com/OCharnyshevich/datadumper/pkg/catalog"
)

const FileName = "registries.nbt"

// Compression selects how the snapshot bytes are stored.
type Compression string

const (
	CompressionNone Compression = "none"
	CompressionGzip Compression = "gzip"
	CompressionZstd Compression = "zstd"
)

// ParseCompression accepts "none", "gzip" and "zstd". An empty string means none.
func ParseCompression(s string) (Compression, error) {
	switch c := Compression(s); c {
	case "":
		return CompressionNone, nil
	case CompressionNone, CompressionGzip, CompressionZstd:
		return c, nil
	default:
		return "", fmt.Errorf("unknown compression %q", s)
	}
}

// FileName returns the output file name for snapshots stored with c.
func (c Compression) FileName() string {
	switch c {
	case CompressionGzip:
		return FileName + ".gz"
	case CompressionZstd:
		return FileName + ".zst"
	default:
		return FileName
	}
}

// Dumper writes the host's dynamic registry snapshot as-is.
type Dumper struct {
	snapshotter catalog.RegistrySnapshotter
	compression Compression
	log         *slog.Logger
}

func NewDumper(s catalog.RegistrySnapshotter, compression Compression, log *slog.Logger) *Dumper {
	return &Dumper{snapshotter: s, compression: compression, log: log}
}

func (d *Dumper) Name() string { return d.compression.FileName() }

// Dump ignores the JSON encoder; the snapshot format belongs to the host.
func (d *Dumper) Dump(_ *dumper.Encoder, dir string) error {
	data, err := d.snapshotter.Snapshot()
	if err != nil {
		return fmt.Errorf("snapshot registries: %w", err)
	}
	d.log.Info("encoded registry snapshot", "bytes", len(data), "compression", string(d.compression))

	return dumper.WriteFile(dir, d.Name(), func(w io.Writer) error {
		return d.write(w, data)
	})
}

func (d *Dumper) write(w io.Writer, data []byte) error {
	switch d.compression {
	case CompressionGzip:
		zw := gzip.NewWriter(w)
		if _, err := zw.Write(data); err != nil {
			zw.Close()
			return err
		}
		return zw.Close()
	case CompressionZstd:
		zw, err := zstd.NewWriter(w)
		if err != nil {
			return fmt.Errorf("create zstd writer: %w", err)
		}
		if _, err := zw.Write(data); err != nil {
			zw.Close()
			return err
		}
		return zw.Close()
	default:
		_, err := w.Write(data)
		return err
	}
}
