package gamedata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/OCharnyshevich/datadumper/pkg/catalog"
)

var fullCube = catalog.Box{MaxX: 1, MaxY: 1, MaxZ: 1}

// Build validates def and expands it into a Catalog. Raw ids follow
// declaration order.
func Build(def *Definition) (*Catalog, error) {
	c := &Catalog{items: make(map[catalog.Identifier]int)}

	items := def.Items
	if len(items) == 0 {
		items = []string{"air"}
	}
	for i, raw := range items {
		id, err := catalog.ParseIdentifier(raw)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		if _, dup := c.items[id]; dup {
			return nil, fmt.Errorf("duplicate item %s", id)
		}
		c.items[id] = i
	}

	seen := make(map[catalog.Identifier]bool)
	for i := range def.Blocks {
		b, err := buildBlock(i, &def.Blocks[i], c.items)
		if err != nil {
			return nil, fmt.Errorf("block %q: %w", def.Blocks[i].Name, err)
		}
		if seen[b.name] {
			return nil, fmt.Errorf("duplicate block %s", b.name)
		}
		seen[b.name] = true
		c.blocks = append(c.blocks, b)
	}

	for i, ed := range def.BlockEntityTypes {
		e, err := buildBlockEntityType(i, ed, seen)
		if err != nil {
			return nil, fmt.Errorf("block entity type %q: %w", ed.ID, err)
		}
		for _, other := range c.entities {
			if other.id == e.id {
				return nil, fmt.Errorf("duplicate block entity type %s", e.id)
			}
		}
		c.entities = append(c.entities, e)
	}

	biomes := make(map[catalog.Identifier]bool)
	for i, bd := range def.Biomes {
		b, err := buildBiome(i, bd)
		if err != nil {
			return nil, fmt.Errorf("biome %q: %w", bd.Name, err)
		}
		if biomes[b.name] {
			return nil, fmt.Errorf("duplicate biome %s", b.name)
		}
		biomes[b.name] = true
		c.biomes = append(c.biomes, b)
	}

	regs := make(map[catalog.Identifier]bool)
	for _, rd := range def.Registries {
		r, err := buildRegistry(rd)
		if err != nil {
			return nil, fmt.Errorf("registry %q: %w", rd.ID, err)
		}
		if regs[r.id] {
			return nil, fmt.Errorf("duplicate registry %s", r.id)
		}
		regs[r.id] = true
		c.registries = append(c.registries, r)
	}
	return c, nil
}

func buildBlock(rawID int, bd *BlockDef, items map[catalog.Identifier]int) (*Block, error) {
	name, err := catalog.ParseIdentifier(bd.Name)
	if err != nil {
		return nil, err
	}
	b := &Block{
		rawID:          rawID,
		name:           name,
		translationKey: bd.TranslationKey,
	}
	if b.translationKey == "" {
		b.translationKey = "block." + name.Namespace + "." + name.Path
	}

	switch {
	case bd.Item != "":
		item, err := catalog.ParseIdentifier(bd.Item)
		if err != nil {
			return nil, fmt.Errorf("item: %w", err)
		}
		if _, ok := items[item]; !ok {
			return nil, fmt.Errorf("unknown item %s", item)
		}
		b.item = item
	default:
		if _, ok := items[name]; ok {
			b.item = name
		}
	}

	for _, pd := range bd.Properties {
		p, err := buildProperty(pd)
		if err != nil {
			return nil, fmt.Errorf("property %q: %w", pd.Name, err)
		}
		for _, q := range b.properties {
			if q.Name() == p.Name() {
				return nil, fmt.Errorf("duplicate property %q", p.Name())
			}
		}
		b.properties = append(b.properties, p)
	}

	base, err := baseState(bd)
	if err != nil {
		return nil, err
	}
	for i, o := range bd.Overrides {
		for key := range o.When {
			if findProperty(b.properties, key) == nil {
				return nil, fmt.Errorf("override %d names unknown property %q", i, key)
			}
		}
	}
	for _, entries := range combinations(b.properties) {
		s := base
		s.block = b
		s.entries = entries
		for i, o := range bd.Overrides {
			if !matches(entries, o.When) {
				continue
			}
			if err := applyOverride(&s, o); err != nil {
				return nil, fmt.Errorf("override %d: %w", i, err)
			}
		}
		b.states = append(b.states, &s)
	}

	for key := range bd.Default {
		if findProperty(b.properties, key) == nil {
			return nil, fmt.Errorf("default names unknown property %q", key)
		}
	}
	for _, s := range b.states {
		if isDefault(s.entries, bd.Default) {
			b.defaultState = s
			break
		}
	}
	if b.defaultState == nil {
		return nil, fmt.Errorf("default %v matches no state", bd.Default)
	}
	return b, nil
}

func buildProperty(pd PropertyDef) (catalog.Property, error) {
	if pd.Name == "" {
		return nil, fmt.Errorf("missing name")
	}
	switch pd.Type {
	case "boolean", "bool":
		return catalog.BoolProperty{PropName: pd.Name}, nil
	case "integer", "int":
		if pd.Max < pd.Min {
			return nil, fmt.Errorf("max %d below min %d", pd.Max, pd.Min)
		}
		return catalog.IntProperty{PropName: pd.Name, Min: pd.Min, Max: pd.Max}, nil
	case "enum":
		if len(pd.Values) == 0 {
			return nil, fmt.Errorf("enum without values")
		}
		return catalog.EnumProperty{PropName: pd.Name, Options: pd.Values}, nil
	case "direction":
		values := pd.Values
		if len(values) == 0 {
			values = []string{"down", "up", "north", "south", "west", "east"}
		}
		dirs := make([]catalog.Direction, len(values))
		for i, v := range values {
			d, ok := catalog.ParseDirection(v)
			if !ok {
				return nil, fmt.Errorf("unknown direction %q", v)
			}
			dirs[i] = d
		}
		return catalog.DirectionProperty{PropName: pd.Name, Directions: dirs}, nil
	default:
		return nil, fmt.Errorf("unknown property type %q", pd.Type)
	}
}

func baseState(bd *BlockDef) (State, error) {
	s := State{
		luminance:    bd.Luminance,
		air:          bd.Air,
		opaque:       !bd.Air,
		blocksMotion: !bd.Air,
		replaceable:  bd.Air,
	}
	if !bd.Air {
		s.boxes = []catalog.Box{fullCube}
	}
	if bd.Opaque != nil {
		s.opaque = *bd.Opaque
	}
	if bd.Replaceable != nil {
		s.replaceable = *bd.Replaceable
	}
	if bd.BlocksMotion != nil {
		s.blocksMotion = *bd.BlocksMotion
	}
	if bd.Collision != nil {
		boxes, err := parseBoxes(*bd.Collision)
		if err != nil {
			return State{}, err
		}
		s.boxes = boxes
	}
	return s, nil
}

func applyOverride(s *State, o OverrideDef) error {
	if o.Luminance != nil {
		s.luminance = *o.Luminance
	}
	if o.Opaque != nil {
		s.opaque = *o.Opaque
	}
	if o.Replaceable != nil {
		s.replaceable = *o.Replaceable
	}
	if o.BlocksMotion != nil {
		s.blocksMotion = *o.BlocksMotion
	}
	if o.Collision != nil {
		boxes, err := parseBoxes(*o.Collision)
		if err != nil {
			return err
		}
		s.boxes = boxes
	}
	return nil
}

func parseBoxes(raw [][]float64) ([]catalog.Box, error) {
	boxes := make([]catalog.Box, 0, len(raw))
	for i, r := range raw {
		if len(r) != 6 {
			return nil, fmt.Errorf("collision box %d: want 6 coordinates, got %d", i, len(r))
		}
		boxes = append(boxes, catalog.Box{
			MinX: r[0], MinY: r[1], MinZ: r[2],
			MaxX: r[3], MaxY: r[4], MaxZ: r[5],
		})
	}
	return boxes, nil
}

// combinations enumerates every assignment of property values with the last
// property varying fastest.
func combinations(props []catalog.Property) [][]catalog.Entry {
	out := [][]catalog.Entry{nil}
	for _, p := range props {
		var next [][]catalog.Entry
		for _, prefix := range out {
			for _, v := range p.Values() {
				entries := make([]catalog.Entry, len(prefix), len(prefix)+1)
				copy(entries, prefix)
				next = append(next, append(entries, catalog.Entry{Property: p, Value: v}))
			}
		}
		out = next
	}
	return out
}

func matches(entries []catalog.Entry, when map[string]string) bool {
	for name, want := range when {
		ok := false
		for _, e := range entries {
			if e.Property.Name() == name && valueString(e.Value) == strings.ToLower(want) {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	return true
}

// isDefault reports whether entries carry the requested values, with
// unnamed properties at their first value.
func isDefault(entries []catalog.Entry, want map[string]string) bool {
	for _, e := range entries {
		if v, ok := want[e.Property.Name()]; ok {
			if valueString(e.Value) != strings.ToLower(v) {
				return false
			}
			continue
		}
		if e.Value != e.Property.Values()[0] {
			return false
		}
	}
	return true
}

func findProperty(props []catalog.Property, name string) catalog.Property {
	for _, p := range props {
		if p.Name() == name {
			return p
		}
	}
	return nil
}

func valueString(v any) string {
	switch v := v.(type) {
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case fmt.Stringer:
		return strings.ToLower(v.String())
	case string:
		return strings.ToLower(v)
	default:
		return strings.ToLower(fmt.Sprint(v))
	}
}

func buildBlockEntityType(rawID int, ed BlockEntityTypeDef, blocks map[catalog.Identifier]bool) (*BlockEntityType, error) {
	id, err := catalog.ParseIdentifier(ed.ID)
	if err != nil {
		return nil, err
	}
	e := &BlockEntityType{rawID: rawID, id: id}
	for _, raw := range ed.Blocks {
		name, err := catalog.ParseIdentifier(raw)
		if err != nil {
			return nil, err
		}
		if !blocks[name] {
			return nil, fmt.Errorf("unknown block %s", name)
		}
		e.blocks = append(e.blocks, name)
	}
	return e, nil
}

func buildBiome(rawID int, bd BiomeDef) (*Biome, error) {
	name, err := catalog.ParseIdentifier(bd.Name)
	if err != nil {
		return nil, err
	}
	mod := catalog.GrassColorNone
	if bd.Effects.GrassColorModifier != "" {
		m, ok := catalog.ParseGrassColorModifier(bd.Effects.GrassColorModifier)
		if !ok {
			return nil, fmt.Errorf("unknown grass color modifier %q", bd.Effects.GrassColorModifier)
		}
		mod = m
	}
	return &Biome{
		rawID:            rawID,
		name:             name,
		hasPrecipitation: bd.HasPrecipitation,
		temperature:      bd.Temperature,
		effects: catalog.BiomeEffects{
			FogColor:           bd.Effects.FogColor,
			WaterColor:         bd.Effects.WaterColor,
			WaterFogColor:      bd.Effects.WaterFogColor,
			SkyColor:           bd.Effects.SkyColor,
			FoliageColor:       bd.Effects.FoliageColor,
			GrassColor:         bd.Effects.GrassColor,
			GrassColorModifier: mod,
		},
	}, nil
}

func buildRegistry(rd RegistryDef) (registry, error) {
	id, err := catalog.ParseIdentifier(rd.ID)
	if err != nil {
		return registry{}, err
	}
	r := registry{id: id}
	names := make(map[catalog.Identifier]bool)
	for _, ed := range rd.Entries {
		name, err := catalog.ParseIdentifier(ed.Name)
		if err != nil {
			return registry{}, err
		}
		if names[name] {
			return registry{}, fmt.Errorf("duplicate entry %s", name)
		}
		names[name] = true
		r.entries = append(r.entries, registryEntry{name: name, element: ed.Element})
	}
	return r, nil
}
