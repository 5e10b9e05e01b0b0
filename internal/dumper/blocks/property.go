package blocks

import (
	"fmt"

	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/OCharnyshevich/datadumper/pkg/catalog"
)

// Kind is the semantic kind of a state property.
type Kind int

const (
	KindBoolean Kind = iota
	KindInteger
	KindEnum
)

func (k Kind) String() string {
	switch k {
	case KindBoolean:
		return "boolean"
	case KindInteger:
		return "integer"
	default:
		return "enum"
	}
}

// "type" collides with the type tag consumers generate for each property.
var propertyNameRemap = map[string]string{
	"type": "kind",
}

// NameOf returns the output name of p.
func NameOf(p catalog.Property) string {
	if renamed, ok := propertyNameRemap[p.Name()]; ok {
		return renamed
	}
	return p.Name()
}

// Classify decides the kind of p from its declared host type. Other
// implementations of catalog.Property are boolean or integer when every
// value has that Go type. Everything else is rendered as a lower-cased
// string, which covers enum and direction properties alike.
func Classify(p catalog.Property) Kind {
	switch p.(type) {
	case catalog.BoolProperty, *catalog.BoolProperty:
		return KindBoolean
	case catalog.IntProperty, *catalog.IntProperty:
		return KindInteger
	case catalog.EnumProperty, *catalog.EnumProperty, catalog.DirectionProperty, *catalog.DirectionProperty:
		return KindEnum
	}
	values := p.Values()
	switch {
	case len(values) == 0:
		return KindEnum
	case lo.EveryBy(values, isBool):
		return KindBoolean
	case lo.EveryBy(values, isInt):
		return KindInteger
	default:
		return KindEnum
	}
}

func isBool(v any) bool {
	_, ok := v.(bool)
	return ok
}

func isInt(v any) bool {
	_, ok := v.(int)
	return ok
}

// Render returns the legal values of p in declaration order, in canonical form.
func Render(p catalog.Property, kind Kind) []any {
	return lo.Map(p.Values(), func(v any, _ int) any {
		return RenderValue(kind, v)
	})
}

// RenderValue converts one value of a property of the given kind to a JSON
// primitive: booleans and integers stay native, everything else becomes a
// lower-case string.
func RenderValue(kind Kind, v any) any {
	switch kind {
	case KindBoolean:
		if b, ok := v.(bool); ok {
			return b
		}
	case KindInteger:
		if i, ok := v.(int); ok {
			return i
		}
	}
	return cases.Lower(language.Und).String(stringOf(v))
}

func stringOf(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(v)
	}
}
