package catalog

// Block is one block type of the host catalog.
type Block interface {
	RawID() int
	Name() Identifier
	TranslationKey() string
	// Properties returns the state properties in declaration order.
	Properties() []Property
	// States returns every property combination in host enumeration order.
	States() []BlockState
	DefaultState() BlockState
}

// BlockState is one concrete combination of property values of a block.
type BlockState interface {
	// Entries returns the property assignments in property declaration order.
	Entries() []Entry
	Luminance() int
	Opaque() bool
	Replaceable() bool
	BlocksMotion() bool
	IsAir() bool
	// CollisionBoxes returns the collision geometry of the state placed at the
	// origin of an otherwise empty world.
	CollisionBoxes() []Box
}

// Entry assigns Value to Property within a state.
type Entry struct {
	Property Property
	Value    any
}

// Box is an axis-aligned box in block-local coordinates.
type Box struct {
	MinX, MinY, MinZ float64
	MaxX, MaxY, MaxZ float64
}

// BlockEntityType is an auxiliary registry entry correlated with block states
// through Supports.
type BlockEntityType interface {
	RawID() int
	ID() Identifier
	Supports(s BlockState) bool
}
