package gamedata

import _ "embed"

// SampleName is the name the bundled sample catalog is registered under.
const SampleName = "sample"

//go:embed sample.yaml
var sampleDefinition []byte

func init() {
	Register(SampleName, func() (*Catalog, error) {
		return Parse(sampleDefinition)
	})
}
