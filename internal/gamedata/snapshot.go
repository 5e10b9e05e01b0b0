package gamedata

import (
	"bytes"
	"fmt"

	"github.com/OCharnyshevich/datadumper/internal/nbt"
	"github.com/OCharnyshevich/datadumper/pkg/catalog"
)

var biomeRegistryID = catalog.Identifier{Namespace: catalog.DefaultNamespace, Path: "worldgen/biome"}

// Snapshot encodes every dynamic registry as one unnamed NBT compound keyed
// by registry id. Each registry holds its id under "type" and its entries
// under "value" as {name, id, element} compounds. A biome registry is
// derived from the catalog biomes unless the definition provides one.
func (c *Catalog) Snapshot() ([]byte, error) {
	root := make(nbt.Compound, 0, len(c.registries)+1)
	hasBiomes := false
	for _, r := range c.registries {
		if r.id == biomeRegistryID {
			hasBiomes = true
		}
		root = append(root, nbt.Field{Name: r.id.String(), Value: registryCompound(r)})
	}
	if !hasBiomes && len(c.biomes) > 0 {
		root = append(root, nbt.Field{Name: biomeRegistryID.String(), Value: registryCompound(c.biomeRegistry())})
	}

	var buf bytes.Buffer
	w := nbt.NewWriter(&buf)
	w.WriteValue("", root)
	if err := w.Err(); err != nil {
		return nil, fmt.Errorf("encode registries: %w", err)
	}
	return buf.Bytes(), nil
}

func registryCompound(r registry) nbt.Compound {
	values := make([]any, len(r.entries))
	for i, e := range r.entries {
		element := e.element
		if element == nil {
			element = map[string]any{}
		}
		values[i] = nbt.Compound{
			{Name: "name", Value: e.name.String()},
			{Name: "id", Value: int32(i)},
			{Name: "element", Value: element},
		}
	}
	return nbt.Compound{
		{Name: "type", Value: r.id.String()},
		{Name: "value", Value: values},
	}
}

func (c *Catalog) biomeRegistry() registry {
	r := registry{id: biomeRegistryID}
	for _, b := range c.biomes {
		fx := b.effects
		effects := nbt.Compound{
			{Name: "fog_color", Value: int32(fx.FogColor)},
			{Name: "water_color", Value: int32(fx.WaterColor)},
			{Name: "water_fog_color", Value: int32(fx.WaterFogColor)},
			{Name: "sky_color", Value: int32(fx.SkyColor)},
		}
		if fx.FoliageColor != nil {
			effects = append(effects, nbt.Field{Name: "foliage_color", Value: int32(*fx.FoliageColor)})
		}
		if fx.GrassColor != nil {
			effects = append(effects, nbt.Field{Name: "grass_color", Value: int32(*fx.GrassColor)})
		}
		if fx.GrassColorModifier != catalog.GrassColorNone {
			effects = append(effects, nbt.Field{Name: "grass_color_modifier", Value: fx.GrassColorModifier.String()})
		}
		r.entries = append(r.entries, registryEntry{
			name: b.name,
			element: map[string]any{
				"has_precipitation": b.hasPrecipitation,
				"temperature":       b.temperature,
				"effects":           effects,
			},
		})
	}
	return r
}
