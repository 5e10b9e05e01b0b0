package catalog

type Biome interface {
	RawID() int
	Name() Identifier
	HasPrecipitation() bool
	Temperature() float32
	Effects() BiomeEffects
}

// BiomeEffects holds the client-side appearance of a biome. FoliageColor and
// GrassColor are nil when the biome does not override them.
type BiomeEffects struct {
	FogColor           int
	WaterColor         int
	WaterFogColor      int
	SkyColor           int
	FoliageColor       *int
	GrassColor         *int
	GrassColorModifier GrassColorModifier
}

type GrassColorModifier int

const (
	GrassColorNone GrassColorModifier = iota
	GrassColorDarkForest
	GrassColorSwamp
)

var grassColorModifierNames = [...]string{"none", "dark_forest", "swamp"}

func (m GrassColorModifier) String() string {
	if m < 0 || int(m) >= len(grassColorModifierNames) {
		return "unknown"
	}
	return grassColorModifierNames[m]
}

// GrassColorModifiers returns every defined modifier in declaration order.
func GrassColorModifiers() []GrassColorModifier {
	mods := make([]GrassColorModifier, len(grassColorModifierNames))
	for i := range mods {
		mods[i] = GrassColorModifier(i)
	}
	return mods
}

// ParseGrassColorModifier looks up a modifier by its canonical name.
func ParseGrassColorModifier(s string) (GrassColorModifier, bool) {
	for i, n := range grassColorModifierNames {
		if n == s {
			return GrassColorModifier(i), true
		}
	}
	return 0, false
}
