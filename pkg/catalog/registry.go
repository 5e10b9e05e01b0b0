package catalog

// BlockRegistry iterates block types in registry order.
type BlockRegistry interface {
	All() []Block
}

// ItemRegistry resolves the raw id of the item corresponding to a block.
// Blocks without an item resolve to the id of the empty item.
type ItemRegistry interface {
	ItemID(b Block) int
}

type BlockEntityRegistry interface {
	All() []BlockEntityType
}

type BiomeRegistry interface {
	All() []Biome
}

// RegistrySnapshotter encodes every dynamically loaded registry of the host
// into one binary document. The format is owned by the host.
type RegistrySnapshotter interface {
	Snapshot() ([]byte, error)
}
