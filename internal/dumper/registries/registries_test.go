package registries

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OCharnyshevich/datadumper/internal/dumper"
)

type staticSnapshot struct {
	data []byte
	err  error
}

func (s staticSnapshot) Snapshot() ([]byte, error) { return s.data, s.err }

var snapshot = []byte{10, 0, 0, 0}

func discard() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func TestParseCompression(t *testing.T) {
	for in, want := range map[string]Compression{
		"":     CompressionNone,
		"none": CompressionNone,
		"gzip": CompressionGzip,
		"zstd": CompressionZstd,
	} {
		got, err := ParseCompression(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseCompression("lz4")
	require.Error(t, err)
}

func TestDumpWritesBytesAsIs(t *testing.T) {
	dir := t.TempDir()
	d := NewDumper(staticSnapshot{data: snapshot}, CompressionNone, discard())

	require.Equal(t, "registries.nbt", d.Name())
	require.NoError(t, d.Dump(dumper.NewEncoder(""), dir))

	got, err := os.ReadFile(filepath.Join(dir, "registries.nbt"))
	require.NoError(t, err)
	assert.Equal(t, snapshot, got)
}

func TestDumpGzip(t *testing.T) {
	dir := t.TempDir()
	d := NewDumper(staticSnapshot{data: snapshot}, CompressionGzip, discard())
	require.NoError(t, d.Dump(nil, dir))

	raw, err := os.ReadFile(filepath.Join(dir, "registries.nbt.gz"))
	require.NoError(t, err)
	zr, err := gzip.NewReader(bytes.NewReader(raw))
	require.NoError(t, err)
	got, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Equal(t, snapshot, got)
}

func TestDumpZstd(t *testing.T) {
	dir := t.TempDir()
	d := NewDumper(staticSnapshot{data: snapshot}, CompressionZstd, discard())
	require.NoError(t, d.Dump(nil, dir))

	raw, err := os.ReadFile(filepath.Join(dir, "registries.nbt.zst"))
	require.NoError(t, err)
	zr, err := zstd.NewReader(nil)
	require.NoError(t, err)
	defer zr.Close()
	got, err := zr.DecodeAll(raw, nil)
	require.NoError(t, err)
	assert.Equal(t, snapshot, got)
}

func TestDumpSnapshotFailureWritesNothing(t *testing.T) {
	dir := t.TempDir()
	boom := errors.New("encode failed")
	d := NewDumper(staticSnapshot{err: boom}, CompressionNone, discard())

	err := d.Dump(nil, dir)
	require.ErrorIs(t, err, boom)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
