package blocks

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OCharnyshevich/datadumper/internal/dumper"
	"github.com/OCharnyshevich/datadumper/pkg/catalog"
)

func walk(t *testing.T, blocks []catalog.Block, entities ...catalog.BlockEntityType) *Document {
	t.Helper()
	return Walk(fakeBlocks(blocks), fakeEntities(entities), fakeItems{"furnace": 5, "stone": 1}, discardLogger())
}

func TestWalkEnumeratesEveryCombination(t *testing.T) {
	furnace := newFakeBlock(3, "furnace", facing, lit)

	doc := walk(t, []catalog.Block{furnace})

	require.Len(t, doc.Blocks, 1)
	b := doc.Blocks[0]
	assert.Equal(t, 3, b.ID)
	assert.Equal(t, "furnace", b.Name)
	assert.Equal(t, "block.minecraft.furnace", b.TranslationKey)
	assert.Equal(t, 5, b.ItemID)
	require.Len(t, b.States, 8)

	first := b.States[0].Properties
	assert.Equal(t, StateProperties{{Name: "facing", Value: "north"}, {Name: "lit", Value: true}}, first)
	last := b.States[7].Properties
	assert.Equal(t, StateProperties{{Name: "facing", Value: "west"}, {Name: "lit", Value: false}}, last)
}

func TestWalkRendersPropertySchemaPerBlock(t *testing.T) {
	doc := walk(t, []catalog.Block{
		newFakeBlock(0, "furnace", facing, lit),
		newFakeBlock(1, "observer", facing),
	})

	want := PropertyRecord{Name: "facing", Type: "enum", Values: []any{"north", "south", "east", "west"}}
	assert.Equal(t, want, doc.Blocks[0].Properties[0])
	assert.Equal(t, want, doc.Blocks[1].Properties[0])
	assert.Equal(t, PropertyRecord{Name: "lit", Type: "boolean", Values: []any{true, false}}, doc.Blocks[0].Properties[1])
}

func TestWalkStateIDsAreGlobal(t *testing.T) {
	doc := walk(t, []catalog.Block{
		newFakeBlock(0, "stone"),
		newFakeBlock(1, "furnace", facing, lit),
		newFakeBlock(2, "wheat", age),
	})

	next := 0
	for _, b := range doc.Blocks {
		for _, s := range b.States {
			assert.Equal(t, next, s.ID, "block %s", b.Name)
			next++
		}
	}
	assert.Equal(t, 1+8+4, next)
}

func TestWalkMarksOneDefaultState(t *testing.T) {
	furnace := newFakeBlock(0, "furnace", facing, lit)
	// A default that is equal to, but not the same object as, the 4th state.
	furnace.def = &fakeState{entries: append([]catalog.Entry(nil), furnace.states[3].entries...)}
	wheat := newFakeBlock(1, "wheat", age)

	doc := walk(t, []catalog.Block{furnace, wheat})

	require.NotNil(t, doc.Blocks[0].DefaultStateID)
	assert.Equal(t, 3, *doc.Blocks[0].DefaultStateID)
	require.NotNil(t, doc.Blocks[1].DefaultStateID)
	assert.Equal(t, 8, *doc.Blocks[1].DefaultStateID)
}

func TestWalkMissingDefaultIsOmitted(t *testing.T) {
	stone := newFakeBlock(0, "stone")
	stone.def = &fakeState{entries: []catalog.Entry{{Property: lit, Value: true}}}
	log, buf := bufferLogger()

	doc := Walk(fakeBlocks{stone}, fakeEntities{}, fakeItems{}, log)

	assert.Nil(t, doc.Blocks[0].DefaultStateID)
	assert.Contains(t, buf.String(), "default state not among block states")
}

func TestWalkRemapsTypeProperty(t *testing.T) {
	slab := newFakeBlock(0, "oak_slab", slabType, catalog.BoolProperty{PropName: "waterlogged"})

	doc := walk(t, []catalog.Block{slab})

	b := doc.Blocks[0]
	assert.Equal(t, "kind", b.Properties[0].Name)
	assert.Equal(t, "waterlogged", b.Properties[1].Name)
	for _, s := range b.States {
		_, hasType := s.Properties.Get("type")
		assert.False(t, hasType)
		v, ok := s.Properties.Get("kind")
		require.True(t, ok)
		assert.Contains(t, []any{"top", "bottom", "double"}, v)
	}
}

func TestWalkDeduplicatesShapesAcrossBlocks(t *testing.T) {
	stone := newFakeBlock(0, "stone")
	dirt := newFakeBlock(1, "dirt")
	slab := newFakeBlock(2, "slab")
	slab.states[0].boxes = []catalog.Box{{MaxX: 1, MaxY: 1, MaxZ: 0.5}}

	doc := walk(t, []catalog.Block{stone, dirt, slab})

	assert.Equal(t, []int{0}, doc.Blocks[0].States[0].CollisionShapes)
	assert.Equal(t, []int{0}, doc.Blocks[1].States[0].CollisionShapes)
	assert.Equal(t, []int{1}, doc.Blocks[2].States[0].CollisionShapes)
	assert.Equal(t, []ShapeRecord{
		{MaxX: 1, MaxY: 1, MaxZ: 1},
		{MaxX: 1, MaxY: 1, MaxZ: 0.5},
	}, doc.Shapes)
}

func TestWalkKeepsDuplicateBoxesWithinState(t *testing.T) {
	odd := newFakeBlock(0, "odd")
	odd.states[0].boxes = []catalog.Box{fullCube, fullCube}
	air := newFakeBlock(1, "air")
	air.states[0].boxes = nil
	air.states[0].air = true

	doc := walk(t, []catalog.Block{odd, air})

	assert.Equal(t, []int{0, 0}, doc.Blocks[0].States[0].CollisionShapes)
	assert.Equal(t, []int{}, doc.Blocks[1].States[0].CollisionShapes)
	assert.True(t, doc.Blocks[1].States[0].IsAir)
	assert.Len(t, doc.Shapes, 1)
}

func TestWalkPassesPhysicalFlagsThrough(t *testing.T) {
	torch := newFakeBlock(0, "torch")
	s := torch.states[0]
	s.luminance, s.opaque, s.replaceable, s.motion = 14, false, true, false

	doc := walk(t, []catalog.Block{torch})

	st := doc.Blocks[0].States[0]
	assert.Equal(t, 14, st.Luminance)
	assert.False(t, st.Opaque)
	assert.True(t, st.Replaceable)
	assert.False(t, st.BlocksMotion)
	assert.False(t, st.IsAir)
}

func TestWalkCorrelatesBlockEntityTypes(t *testing.T) {
	stone := newFakeBlock(0, "stone")
	furnace := newFakeBlock(1, "furnace", lit)
	chest := &fakeEntity{id: 0, path: "chest", supports: func(catalog.BlockState) bool { return false }}
	furnaceEntity := &fakeEntity{id: 1, path: "furnace", supports: statesOf(furnace)}

	doc := walk(t, []catalog.Block{stone, furnace}, chest, furnaceEntity)

	assert.Nil(t, doc.Blocks[0].States[0].BlockEntityType)
	for _, s := range doc.Blocks[1].States {
		require.NotNil(t, s.BlockEntityType)
		assert.Equal(t, 1, *s.BlockEntityType)
	}
	assert.Equal(t, []BlockEntityTypeRecord{
		{ID: 0, Ident: "minecraft:chest", Name: "chest"},
		{ID: 1, Ident: "minecraft:furnace", Name: "furnace"},
	}, doc.BlockEntityTypes)
}

func TestWalkAmbiguousBlockEntityKeepsFirst(t *testing.T) {
	furnace := newFakeBlock(0, "furnace")
	first := &fakeEntity{id: 4, path: "furnace", supports: statesOf(furnace)}
	second := &fakeEntity{id: 9, path: "smoker", supports: statesOf(furnace)}
	log, buf := bufferLogger()

	doc := Walk(fakeBlocks{furnace}, fakeEntities{first, second}, fakeItems{}, log)

	require.NotNil(t, doc.Blocks[0].States[0].BlockEntityType)
	assert.Equal(t, 4, *doc.Blocks[0].States[0].BlockEntityType)
	assert.Contains(t, buf.String(), "more than one block entity type")
}

func TestDocumentJSONLayout(t *testing.T) {
	furnace := newFakeBlock(0, "furnace", facing, lit, age)
	entity := &fakeEntity{id: 0, path: "furnace", supports: statesOf(furnace)}
	doc := walk(t, []catalog.Block{furnace}, entity)

	var buf bytes.Buffer
	require.NoError(t, dumper.NewEncoder("").Encode(&buf, doc))
	out := buf.String()

	assert.Regexp(t, `^\{"block_entity_types":.*,"shapes":.*,"blocks":`, out)
	assert.Contains(t, out, `"properties":{"facing":"north","lit":true,"age":0}`)
	assert.Contains(t, out, `{"id":0,"name":"furnace","translation_key":"block.minecraft.furnace","item_id":5,"properties":[`)
	assert.Contains(t, out, `"default_state_id":0,"states":[`)
	assert.Contains(t, out, `{"id":0,"luminance":0,"opaque":true,"replaceable":false,"blocks_motion":true,"is_air":false,"properties":`)
	assert.Contains(t, out, `"collision_shapes":[0],"block_entity_type":0}`)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	state := decoded["blocks"].([]any)[0].(map[string]any)["states"].([]any)[0].(map[string]any)
	props := state["properties"].(map[string]any)
	assert.IsType(t, "", props["facing"])
	assert.IsType(t, true, props["lit"])
	assert.IsType(t, float64(0), props["age"])
}

func TestStatePropertiesEmpty(t *testing.T) {
	out, err := json.Marshal(StateProperties{})
	require.NoError(t, err)
	assert.Equal(t, "{}", string(out))
}

func TestStatePropertiesNoHTMLEscape(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, dumper.NewEncoder("").Encode(&buf, StateProperties{{Name: "a<b", Value: "x&y"}}))
	assert.Equal(t, "{\"a<b\":\"x&y\"}\n", buf.String())
}

func TestWalkIsDeterministic(t *testing.T) {
	build := func() []catalog.Block {
		slab := newFakeBlock(2, "slab", slabType)
		slab.states[1].boxes = []catalog.Box{{MaxX: 1, MaxY: 0.5, MaxZ: 1}}
		return []catalog.Block{
			newFakeBlock(0, "stone"),
			newFakeBlock(1, "furnace", facing, lit),
			slab,
		}
	}
	blocks := build()

	encode := func() []byte {
		var buf bytes.Buffer
		doc := walk(t, blocks)
		require.NoError(t, dumper.NewEncoder("  ").Encode(&buf, doc))
		return buf.Bytes()
	}

	assert.Equal(t, encode(), encode())
}
