package gamedata

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

var catalogs = map[string]func() (*Catalog, error){}

// Register makes a built-in catalog available to Load under name.
func Register(name string, factory func() (*Catalog, error)) {
	catalogs[name] = factory
}

func Load(name string) (*Catalog, error) {
	f, ok := catalogs[name]
	if !ok {
		return nil, fmt.Errorf("unknown catalog: %s", name)
	}
	return f()
}

func RegisteredCatalogs() []string {
	names := make([]string, 0, len(catalogs))
	for name := range catalogs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Parse decodes a YAML or JSON catalog definition and builds it. Unknown
// fields are rejected.
func Parse(data []byte) (*Catalog, error) {
	var def Definition
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&def); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return Build(&def)
}

func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// IndexFiles are the names Open looks for inside a catalog directory.
var IndexFiles = []string{"catalog.yaml", "catalog.yml", "catalog.json"}

// Open loads a catalog from a definition file or from a directory holding
// one of IndexFiles.
func Open(path string) (*Catalog, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	if !info.IsDir() {
		return LoadFile(path)
	}
	for _, name := range IndexFiles {
		p := filepath.Join(path, name)
		if _, err := os.Stat(p); err == nil {
			return LoadFile(p)
		}
	}
	return nil, fmt.Errorf("open catalog: no %v in %s", IndexFiles, path)
}
