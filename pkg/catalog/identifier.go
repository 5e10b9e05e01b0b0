package catalog

import (
	"fmt"
	"strings"
)

// DefaultNamespace is assumed for identifiers written without a namespace.
const DefaultNamespace = "minecraft"

// Identifier is a namespaced registry key such as "minecraft:stone".
type Identifier struct {
	Namespace string
	Path      string
}

// ParseIdentifier splits s at the first colon. A missing namespace defaults
// to DefaultNamespace.
func ParseIdentifier(s string) (Identifier, error) {
	ns, path, ok := strings.Cut(s, ":")
	if !ok {
		ns, path = DefaultNamespace, s
	}
	if ns == "" || path == "" {
		return Identifier{}, fmt.Errorf("invalid identifier %q", s)
	}
	return Identifier{Namespace: ns, Path: path}, nil
}

func (id Identifier) String() string {
	return id.Namespace + ":" + id.Path
}
