package catalog

import "strings"

// Property is a named axis of variation of a block's states. Hosts should use
// the concrete kinds below; other implementations are classified by the Go
// type of their values.
type Property interface {
	Name() string
	// Values returns the legal values in declaration order.
	Values() []any
}

type BoolProperty struct {
	PropName string
}

func (p BoolProperty) Name() string { return p.PropName }

func (p BoolProperty) Values() []any { return []any{true, false} }

// IntProperty ranges over Min..Max inclusive.
type IntProperty struct {
	PropName string
	Min, Max int
}

func (p IntProperty) Name() string { return p.PropName }

func (p IntProperty) Values() []any {
	if p.Max < p.Min {
		return nil
	}
	vals := make([]any, 0, p.Max-p.Min+1)
	for v := p.Min; v <= p.Max; v++ {
		vals = append(vals, v)
	}
	return vals
}

// EnumProperty holds string-valued constants. Values keep the host spelling;
// rendering normalizes case.
type EnumProperty struct {
	PropName string
	Options  []string
}

func (p EnumProperty) Name() string { return p.PropName }

func (p EnumProperty) Values() []any {
	vals := make([]any, len(p.Options))
	for i, o := range p.Options {
		vals[i] = o
	}
	return vals
}

// Direction is one of the six block faces.
type Direction int

const (
	Down Direction = iota
	Up
	North
	South
	West
	East
)

var directionNames = [...]string{"DOWN", "UP", "NORTH", "SOUTH", "WEST", "EAST"}

func (d Direction) String() string {
	if d < 0 || int(d) >= len(directionNames) {
		return "UNKNOWN"
	}
	return directionNames[d]
}

// ParseDirection accepts a face name in any case.
func ParseDirection(s string) (Direction, bool) {
	for i, n := range directionNames {
		if strings.EqualFold(n, s) {
			return Direction(i), true
		}
	}
	return 0, false
}

type DirectionProperty struct {
	PropName   string
	Directions []Direction
}

func (p DirectionProperty) Name() string { return p.PropName }

func (p DirectionProperty) Values() []any {
	vals := make([]any, len(p.Directions))
	for i, d := range p.Directions {
		vals[i] = d
	}
	return vals
}
