package blocks

import (
	"math"
	"slices"

	"github.com/OCharnyshevich/datadumper/pkg/catalog"
)

// shapeKey compares boxes by the bit patterns of their coordinates, so -0 and
// 0 are distinct and a NaN coordinate still matches itself.
type shapeKey [6]uint64

func keyOf(b catalog.Box) shapeKey {
	return shapeKey{
		math.Float64bits(b.MinX), math.Float64bits(b.MinY), math.Float64bits(b.MinZ),
		math.Float64bits(b.MaxX), math.Float64bits(b.MaxY), math.Float64bits(b.MaxZ),
	}
}

// ShapeTable assigns first-seen indices to distinct collision boxes.
// It is not safe for concurrent use.
type ShapeTable struct {
	index map[shapeKey]int
	boxes []catalog.Box
}

func NewShapeTable() *ShapeTable {
	return &ShapeTable{index: make(map[shapeKey]int)}
}

// Intern returns the index of b, adding it at the end of the table if no
// identical box was interned before.
func (t *ShapeTable) Intern(b catalog.Box) int {
	k := keyOf(b)
	if idx, ok := t.index[k]; ok {
		return idx
	}
	idx := len(t.boxes)
	t.index[k] = idx
	t.boxes = append(t.boxes, b)
	return idx
}

func (t *ShapeTable) Len() int {
	return len(t.boxes)
}

// Boxes returns a copy of the interned boxes in index order.
func (t *ShapeTable) Boxes() []catalog.Box {
	return slices.Clone(t.boxes)
}
