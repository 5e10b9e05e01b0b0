package gamedata

import (
	"github.com/samber/lo"

	"github.com/OCharnyshevich/datadumper/pkg/catalog"
)

// Catalog is an immutable in-memory host catalog.
type Catalog struct {
	blocks     []*Block
	items      map[catalog.Identifier]int
	entities   []*BlockEntityType
	biomes     []*Biome
	registries []registry
}

func (c *Catalog) Blocks() catalog.BlockRegistry { return blockList(c.blocks) }

func (c *Catalog) BlockEntityTypes() catalog.BlockEntityRegistry { return entityList(c.entities) }

func (c *Catalog) Biomes() catalog.BiomeRegistry { return biomeList(c.biomes) }

// ItemID resolves the item of b. Unknown blocks and blocks without an item
// map to the empty item, id 0.
func (c *Catalog) ItemID(b catalog.Block) int {
	name := b.Name()
	if gb, ok := b.(*Block); ok {
		name = gb.item
	}
	return c.items[name]
}

// Block returns the block with the given identifier.
func (c *Catalog) Block(name string) (*Block, bool) {
	id, err := catalog.ParseIdentifier(name)
	if err != nil {
		return nil, false
	}
	for _, b := range c.blocks {
		if b.name == id {
			return b, true
		}
	}
	return nil, false
}

type blockList []*Block

func (l blockList) All() []catalog.Block {
	out := make([]catalog.Block, len(l))
	for i, b := range l {
		out[i] = b
	}
	return out
}

type entityList []*BlockEntityType

func (l entityList) All() []catalog.BlockEntityType {
	out := make([]catalog.BlockEntityType, len(l))
	for i, e := range l {
		out[i] = e
	}
	return out
}

type biomeList []*Biome

func (l biomeList) All() []catalog.Biome {
	out := make([]catalog.Biome, len(l))
	for i, b := range l {
		out[i] = b
	}
	return out
}

type Block struct {
	rawID          int
	name           catalog.Identifier
	translationKey string
	item           catalog.Identifier
	properties     []catalog.Property
	states         []*State
	defaultState   *State
}

func (b *Block) RawID() int                       { return b.rawID }
func (b *Block) Name() catalog.Identifier         { return b.name }
func (b *Block) TranslationKey() string           { return b.translationKey }
func (b *Block) Properties() []catalog.Property   { return b.properties }
func (b *Block) DefaultState() catalog.BlockState { return b.defaultState }

func (b *Block) States() []catalog.BlockState {
	out := make([]catalog.BlockState, len(b.states))
	for i, s := range b.states {
		out[i] = s
	}
	return out
}

type State struct {
	block        *Block
	entries      []catalog.Entry
	luminance    int
	opaque       bool
	replaceable  bool
	blocksMotion bool
	air          bool
	boxes        []catalog.Box
}

func (s *State) Block() *Block                 { return s.block }
func (s *State) Entries() []catalog.Entry      { return s.entries }
func (s *State) Luminance() int                { return s.luminance }
func (s *State) Opaque() bool                  { return s.opaque }
func (s *State) Replaceable() bool             { return s.replaceable }
func (s *State) BlocksMotion() bool            { return s.blocksMotion }
func (s *State) IsAir() bool                   { return s.air }
func (s *State) CollisionBoxes() []catalog.Box { return s.boxes }

// BlockEntityType supports every state of its listed blocks.
type BlockEntityType struct {
	rawID  int
	id     catalog.Identifier
	blocks []catalog.Identifier
}

func (e *BlockEntityType) RawID() int             { return e.rawID }
func (e *BlockEntityType) ID() catalog.Identifier { return e.id }

func (e *BlockEntityType) Supports(s catalog.BlockState) bool {
	gs, ok := s.(*State)
	if !ok || gs.block == nil {
		return false
	}
	return lo.Contains(e.blocks, gs.block.name)
}

type Biome struct {
	rawID            int
	name             catalog.Identifier
	hasPrecipitation bool
	temperature      float32
	effects          catalog.BiomeEffects
}

func (b *Biome) RawID() int                    { return b.rawID }
func (b *Biome) Name() catalog.Identifier      { return b.name }
func (b *Biome) HasPrecipitation() bool        { return b.hasPrecipitation }
func (b *Biome) Temperature() float32          { return b.temperature }
func (b *Biome) Effects() catalog.BiomeEffects { return b.effects }

type registry struct {
	id      catalog.Identifier
	entries []registryEntry
}

type registryEntry struct {
	name    catalog.Identifier
	element map[string]any
}
