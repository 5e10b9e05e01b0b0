package gamedata

// Definition is the on-disk description of a catalog. Files are YAML; JSON
// documents are accepted as well.
type Definition struct {
	// Items lists item identifiers in raw id order. The first item is the
	// empty item used by blocks without one; it defaults to "air".
	Items            []string             `yaml:"items"`
	Blocks           []BlockDef           `yaml:"blocks"`
	BlockEntityTypes []BlockEntityTypeDef `yaml:"block_entity_types"`
	Biomes           []BiomeDef           `yaml:"biomes"`
	Registries       []RegistryDef        `yaml:"registries"`
}

type BlockDef struct {
	Name           string `yaml:"name"`
	TranslationKey string `yaml:"translation_key"`
	// Item defaults to the block name when such an item exists.
	Item       string        `yaml:"item"`
	Properties []PropertyDef `yaml:"properties"`
	// Default assigns property values of the default state. Properties left
	// out take their first value.
	Default map[string]string `yaml:"default"`

	Air          bool  `yaml:"air"`
	Luminance    int   `yaml:"luminance"`
	Opaque       *bool `yaml:"opaque"`
	Replaceable  *bool `yaml:"replaceable"`
	BlocksMotion *bool `yaml:"blocks_motion"`
	// Collision boxes as [minX, minY, minZ, maxX, maxY, maxZ]. Absent means a
	// full cube, or nothing for air.
	Collision *[][]float64  `yaml:"collision"`
	Overrides []OverrideDef `yaml:"overrides"`
}

type PropertyDef struct {
	Name string `yaml:"name"`
	// Type is one of boolean, integer, enum, direction.
	Type   string   `yaml:"type"`
	Values []string `yaml:"values"`
	Min    int      `yaml:"min"`
	Max    int      `yaml:"max"`
}

// OverrideDef changes the flags or geometry of every state matching When.
// Overrides apply in order.
type OverrideDef struct {
	When         map[string]string `yaml:"when"`
	Luminance    *int              `yaml:"luminance"`
	Opaque       *bool             `yaml:"opaque"`
	Replaceable  *bool             `yaml:"replaceable"`
	BlocksMotion *bool             `yaml:"blocks_motion"`
	Collision    *[][]float64      `yaml:"collision"`
}

type BlockEntityTypeDef struct {
	ID     string   `yaml:"id"`
	Blocks []string `yaml:"blocks"`
}

type BiomeDef struct {
	Name             string     `yaml:"name"`
	HasPrecipitation bool       `yaml:"has_precipitation"`
	Temperature      float32    `yaml:"temperature"`
	Effects          EffectsDef `yaml:"effects"`
}

type EffectsDef struct {
	FogColor           int    `yaml:"fog_color"`
	WaterColor         int    `yaml:"water_color"`
	WaterFogColor      int    `yaml:"water_fog_color"`
	SkyColor           int    `yaml:"sky_color"`
	FoliageColor       *int   `yaml:"foliage_color"`
	GrassColor         *int   `yaml:"grass_color"`
	GrassColorModifier string `yaml:"grass_color_modifier"`
}

// RegistryDef is one dynamic registry. Element values are written to the
// snapshot with their YAML types.
type RegistryDef struct {
	ID      string             `yaml:"id"`
	Entries []RegistryEntryDef `yaml:"entries"`
}

type RegistryEntryDef struct {
	Name    string         `yaml:"name"`
	Element map[string]any `yaml:"element"`
}
