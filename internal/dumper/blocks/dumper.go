package blocks

import (
	"io"
	"log/slog"

	"github.com/OCharnyshevich/datadumper/internal/dumper"
	"github.com/OCharnyshevich/datadumper/pkg/catalog"
)

const FileName = "blocks.json"

// Dumper writes blocks.json.
type Dumper struct {
	blocks   catalog.BlockRegistry
	entities catalog.BlockEntityRegistry
	items    catalog.ItemRegistry
	log      *slog.Logger
}

func NewDumper(blocks catalog.BlockRegistry, entities catalog.BlockEntityRegistry, items catalog.ItemRegistry, log *slog.Logger) *Dumper {
	return &Dumper{blocks: blocks, entities: entities, items: items, log: log}
}

func (d *Dumper) Name() string { return FileName }

func (d *Dumper) Dump(enc *dumper.Encoder, dir string) error {
	doc := Walk(d.blocks, d.entities, d.items, d.log)

	states := 0
	for _, b := range doc.Blocks {
		states += len(b.States)
	}
	d.log.Info("walked block catalog",
		"blocks", len(doc.Blocks),
		"states", states,
		"shapes", len(doc.Shapes),
		"blockEntityTypes", len(doc.BlockEntityTypes),
	)

	return dumper.WriteFile(dir, FileName, func(w io.Writer) error {
		return enc.Encode(w, doc)
	})
}
