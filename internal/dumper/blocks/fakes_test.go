package blocks

import (
	"bytes"
	"io"
	"log/slog"

	"github.com/OCharnyshevich/datadumper/pkg/catalog"
)

var fullCube = catalog.Box{MaxX: 1, MaxY: 1, MaxZ: 1}

type fakeState struct {
	entries     []catalog.Entry
	luminance   int
	opaque      bool
	replaceable bool
	motion      bool
	air         bool
	boxes       []catalog.Box
}

func (s *fakeState) Entries() []catalog.Entry      { return s.entries }
func (s *fakeState) Luminance() int                { return s.luminance }
func (s *fakeState) Opaque() bool                  { return s.opaque }
func (s *fakeState) Replaceable() bool             { return s.replaceable }
func (s *fakeState) BlocksMotion() bool            { return s.motion }
func (s *fakeState) IsAir() bool                   { return s.air }
func (s *fakeState) CollisionBoxes() []catalog.Box { return s.boxes }

type fakeBlock struct {
	id     int
	name   string
	props  []catalog.Property
	states []*fakeState
	def    catalog.BlockState
}

// newFakeBlock builds every property combination, the last property varying
// fastest. Each state is a solid full cube and the first state is the default.
func newFakeBlock(id int, name string, props ...catalog.Property) *fakeBlock {
	b := &fakeBlock{id: id, name: name, props: props}
	combos := [][]catalog.Entry{{}}
	for _, p := range props {
		var next [][]catalog.Entry
		for _, c := range combos {
			for _, v := range p.Values() {
				e := append(append([]catalog.Entry(nil), c...), catalog.Entry{Property: p, Value: v})
				next = append(next, e)
			}
		}
		combos = next
	}
	for _, c := range combos {
		b.states = append(b.states, &fakeState{
			entries: c,
			opaque:  true,
			motion:  true,
			boxes:   []catalog.Box{fullCube},
		})
	}
	b.def = b.states[0]
	return b
}

func (b *fakeBlock) RawID() int { return b.id }
func (b *fakeBlock) Name() catalog.Identifier {
	return catalog.Identifier{Namespace: catalog.DefaultNamespace, Path: b.name}
}
func (b *fakeBlock) TranslationKey() string         { return "block.minecraft." + b.name }
func (b *fakeBlock) Properties() []catalog.Property { return b.props }
func (b *fakeBlock) DefaultState() catalog.BlockState {
	return b.def
}

func (b *fakeBlock) States() []catalog.BlockState {
	out := make([]catalog.BlockState, len(b.states))
	for i, s := range b.states {
		out[i] = s
	}
	return out
}

type fakeBlocks []catalog.Block

func (f fakeBlocks) All() []catalog.Block { return f }

type fakeItems map[string]int

func (f fakeItems) ItemID(b catalog.Block) int { return f[b.Name().Path] }

type fakeEntity struct {
	id       int
	path     string
	supports func(s catalog.BlockState) bool
}

func (e *fakeEntity) RawID() int { return e.id }
func (e *fakeEntity) ID() catalog.Identifier {
	return catalog.Identifier{Namespace: catalog.DefaultNamespace, Path: e.path}
}
func (e *fakeEntity) Supports(s catalog.BlockState) bool { return e.supports(s) }

type fakeEntities []catalog.BlockEntityType

func (f fakeEntities) All() []catalog.BlockEntityType { return f }

// statesOf returns a predicate matching exactly the states of b.
func statesOf(b *fakeBlock) func(catalog.BlockState) bool {
	return func(s catalog.BlockState) bool {
		for _, own := range b.states {
			if catalog.BlockState(own) == s {
				return true
			}
		}
		return false
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func bufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, nil)), &buf
}

var (
	facing = catalog.DirectionProperty{
		PropName:   "facing",
		Directions: []catalog.Direction{catalog.North, catalog.South, catalog.East, catalog.West},
	}
	lit      = catalog.BoolProperty{PropName: "lit"}
	age      = catalog.IntProperty{PropName: "age", Min: 0, Max: 3}
	slabType = catalog.EnumProperty{PropName: "type", Options: []string{"TOP", "BOTTOM", "DOUBLE"}}
)
