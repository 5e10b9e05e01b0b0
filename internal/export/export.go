package export

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/OCharnyshevich/datadumper/internal/dumper"
	"github.com/OCharnyshevich/datadumper/internal/dumper/biomes"
	"github.com/OCharnyshevich/datadumper/internal/dumper/blocks"
	"github.com/OCharnyshevich/datadumper/internal/dumper/registries"
	"github.com/OCharnyshevich/datadumper/pkg/catalog"
)

// Host is the process that owns the catalog. It is asked to shut down once
// the run is over.
type Host interface {
	Shutdown()
}

// Sources are the host registries read by the standard dumpers.
type Sources struct {
	Blocks        catalog.BlockRegistry
	Items         catalog.ItemRegistry
	BlockEntities catalog.BlockEntityRegistry
	Biomes        catalog.BiomeRegistry
	Registries    catalog.RegistrySnapshotter
}

// Options configure the output of a run.
type Options struct {
	OutputDir   string
	Indent      string
	Compression registries.Compression
}

// Orchestrator runs a fixed list of dumpers into one output directory.
type Orchestrator struct {
	dir     string
	enc     *dumper.Encoder
	dumpers []dumper.Dumper
	log     *slog.Logger
}

// New returns an orchestrator for the standard dumpers, in order:
// blocks.json, biomes.json, then the registry snapshot.
func New(src Sources, opts Options, log *slog.Logger) *Orchestrator {
	return NewWithDumpers(opts.OutputDir, dumper.NewEncoder(opts.Indent), log,
		blocks.NewDumper(src.Blocks, src.BlockEntities, src.Items, log.With("dumper", blocks.FileName)),
		biomes.NewDumper(src.Biomes, log.With("dumper", biomes.FileName)),
		registries.NewDumper(src.Registries, opts.Compression, log.With("dumper", opts.Compression.FileName())),
	)
}

func NewWithDumpers(dir string, enc *dumper.Encoder, log *slog.Logger, dumpers ...dumper.Dumper) *Orchestrator {
	return &Orchestrator{dir: dir, enc: enc, dumpers: dumpers, log: log}
}

// Run writes every dumper's file and then shuts the host down. Only a failure
// to create the output directory is returned; it stops the run before any
// dumper starts. Dumper failures are logged and the next dumper still runs.
func (o *Orchestrator) Run(host Host) error {
	defer host.Shutdown()

	log := o.log.With("run", uuid.NewString())

	if err := os.MkdirAll(o.dir, 0o755); err != nil {
		log.Error("create output directory", "dir", o.dir, "error", err)
		return fmt.Errorf("create output directory %s: %w", o.dir, err)
	}

	log.Info("dump started", "dir", o.dir, "dumpers", len(o.dumpers))
	failed := 0
	for _, d := range o.dumpers {
		if err := d.Dump(o.enc, o.dir); err != nil {
			failed++
			log.Error("dump failed", "file", d.Name(), "error", err)
			continue
		}
		log.Info("dump written", "file", d.Name())
	}
	log.Info("dump finished", "written", len(o.dumpers)-failed, "failed", failed)
	return nil
}
