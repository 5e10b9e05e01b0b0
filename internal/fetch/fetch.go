package fetch

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	getter "github.com/hashicorp/go-getter"
)

// Fetcher resolves catalog sources to local paths. Sources use go-getter
// syntax, e.g. "git::https://example.com/catalogs.git//vanilla" or an
// https URL to an archive.
type Fetcher struct {
	workDir string
	log     *slog.Logger
}

func New(workDir string, log *slog.Logger) *Fetcher {
	return &Fetcher{workDir: workDir, log: log}
}

// Dir returns the directory a source is downloaded into.
func (f *Fetcher) Dir(src string) string {
	sum := sha256.Sum256([]byte(src))
	return filepath.Join(f.workDir, "catalog-"+hex.EncodeToString(sum[:6]))
}

// Fetch returns a local path for src. Existing local files and directories
// are returned as they are. Anything else is downloaded into Dir(src),
// replacing a previous download. When the download holds a single file, the
// path of that file is returned.
func (f *Fetcher) Fetch(ctx context.Context, src string) (string, error) {
	if _, err := os.Stat(src); err == nil {
		return src, nil
	}

	dst := f.Dir(src)
	if err := os.RemoveAll(dst); err != nil {
		return "", fmt.Errorf("clean %s: %w", dst, err)
	}
	pwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	f.log.Info("start downloading catalog", "src", src, "dst", dst)
	client := &getter.Client{
		Ctx:  ctx,
		Src:  src,
		Dst:  dst,
		Pwd:  pwd,
		Mode: getter.ClientModeAny,
	}
	if err := client.Get(); err != nil {
		return "", fmt.Errorf("download catalog %s: %w", src, err)
	}
	f.log.Info("done downloading catalog", "dst", dst)

	return singleFile(dst), nil
}

func singleFile(dir string) string {
	entries, err := os.ReadDir(dir)
	if err != nil || len(entries) != 1 {
		return dir
	}
	p := filepath.Join(dir, entries[0].Name())
	if info, err := os.Stat(p); err == nil && info.Mode().IsRegular() {
		return p
	}
	return dir
}
