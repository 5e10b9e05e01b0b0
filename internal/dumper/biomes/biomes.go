package biomes

import (
	"io"
	"log/slog"

	"github.com/OCharnyshevich/datadumper/internal/dumper"
	"github.com/OCharnyshevich/datadumper/pkg/catalog"
)

const FileName = "biomes.json"

// Document is the content of biomes.json.
type Document struct {
	Biomes              []BiomeRecord `json:"biomes"`
	GrassColorModifiers []string      `json:"grass_color_modifiers"`
}

type BiomeRecord struct {
	ID               int           `json:"id"`
	Name             string        `json:"name"`
	HasPrecipitation bool          `json:"has_precipitation"`
	Temperature      float32       `json:"temperature"`
	Effects          EffectsRecord `json:"effects"`
}

// EffectsRecord omits foliage_color and grass_color when the biome does not
// define them.
type EffectsRecord struct {
	FogColor           int    `json:"fog_color"`
	WaterColor         int    `json:"water_color"`
	WaterFogColor      int    `json:"water_fog_color"`
	SkyColor           int    `json:"sky_color"`
	FoliageColor       *int   `json:"foliage_color,omitempty"`
	GrassColor         *int   `json:"grass_color,omitempty"`
	GrassColorModifier string `json:"grass_color_modifier"`
}

// Walk flattens the biome registry in registry order. The modifier list is
// every defined modifier, used or not.
func Walk(biomes catalog.BiomeRegistry) *Document {
	all := biomes.All()
	doc := &Document{
		Biomes:              make([]BiomeRecord, 0, len(all)),
		GrassColorModifiers: make([]string, 0, len(catalog.GrassColorModifiers())),
	}

	for _, b := range all {
		fx := b.Effects()
		doc.Biomes = append(doc.Biomes, BiomeRecord{
			ID:               b.RawID(),
			Name:             b.Name().Path,
			HasPrecipitation: b.HasPrecipitation(),
			Temperature:      b.Temperature(),
			Effects: EffectsRecord{
				FogColor:           fx.FogColor,
				WaterColor:         fx.WaterColor,
				WaterFogColor:      fx.WaterFogColor,
				SkyColor:           fx.SkyColor,
				FoliageColor:       copyColor(fx.FoliageColor),
				GrassColor:         copyColor(fx.GrassColor),
				GrassColorModifier: fx.GrassColorModifier.String(),
			},
		})
	}

	for _, m := range catalog.GrassColorModifiers() {
		doc.GrassColorModifiers = append(doc.GrassColorModifiers, m.String())
	}
	return doc
}

func copyColor(c *int) *int {
	if c == nil {
		return nil
	}
	v := *c
	return &v
}

// Dumper writes biomes.json.
type Dumper struct {
	biomes catalog.BiomeRegistry
	log    *slog.Logger
}

func NewDumper(biomes catalog.BiomeRegistry, log *slog.Logger) *Dumper {
	return &Dumper{biomes: biomes, log: log}
}

func (d *Dumper) Name() string { return FileName }

func (d *Dumper) Dump(enc *dumper.Encoder, dir string) error {
	doc := Walk(d.biomes)
	d.log.Info("walked biome catalog", "biomes", len(doc.Biomes))

	return dumper.WriteFile(dir, FileName, func(w io.Writer) error {
		return enc.Encode(w, doc)
	})
}
