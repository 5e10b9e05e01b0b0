package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/OCharnyshevich/datadumper/internal/config"
	"github.com/OCharnyshevich/datadumper/internal/dumper/registries"
	"github.com/OCharnyshevich/datadumper/internal/export"
	"github.com/OCharnyshevich/datadumper/internal/fetch"
	"github.com/OCharnyshevich/datadumper/internal/gamedata"
)

// host owns the loaded catalog for the lifetime of the process.
type host struct {
	cancel context.CancelFunc
	log    *slog.Logger
}

func (h *host) Shutdown() {
	h.log.Info("host shutdown requested")
	h.cancel()
}

func main() {
	cfg := config.DefaultConfig()

	configPath := flag.String("config", "", "YAML config file")
	saveConfig := flag.String("save-config", "", "write the effective config to this file and exit")
	list := flag.Bool("list-catalogs", false, "print built-in catalogs and exit")
	flag.StringVar(&cfg.OutputDir, "out", cfg.OutputDir, "output directory")
	flag.StringVar(&cfg.Catalog, "catalog", cfg.Catalog, "built-in catalog name, local path or go-getter source")
	flag.StringVar(&cfg.WorkDir, "work-dir", cfg.WorkDir, "download directory for remote catalogs")
	flag.StringVar(&cfg.Compression, "compression", cfg.Compression, "registry snapshot compression: none, gzip or zstd")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn or error")
	flag.Parse()

	if *list {
		for _, name := range gamedata.RegisteredCatalogs() {
			fmt.Println(name)
		}
		return
	}

	if *configPath != "" {
		explicit := make(map[string]bool)
		flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
		fromFile, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		config.Merge(cfg, fromFile, explicit)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	level, _ := cfg.Level()
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	if *saveConfig != "" {
		if err := config.Save(*saveConfig, cfg); err != nil {
			log.Error("save config", "error", err)
			os.Exit(1)
		}
		log.Info("config saved", "path", *saveConfig)
		return
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cat, err := openCatalog(ctx, cfg, log)
	if err != nil {
		log.Error("load catalog", "catalog", cfg.Catalog, "error", err)
		os.Exit(1)
	}

	compression, _ := registries.ParseCompression(cfg.Compression)
	src := export.Sources{
		Blocks:        cat.Blocks(),
		Items:         cat,
		BlockEntities: cat.BlockEntityTypes(),
		Biomes:        cat.Biomes(),
		Registries:    cat,
	}
	opts := export.Options{
		OutputDir:   cfg.OutputDir,
		Indent:      cfg.Indent,
		Compression: compression,
	}
	if err := export.New(src, opts, log).Run(&host{cancel: cancel, log: log}); err != nil {
		log.Error("export", "error", err)
		os.Exit(1)
	}
}

func openCatalog(ctx context.Context, cfg *config.Config, log *slog.Logger) (*gamedata.Catalog, error) {
	for _, name := range gamedata.RegisteredCatalogs() {
		if name == cfg.Catalog {
			log.Info("using built-in catalog", "name", name)
			return gamedata.Load(name)
		}
	}
	path, err := fetch.New(cfg.WorkDir, log).Fetch(ctx, cfg.Catalog)
	if err != nil {
		return nil, err
	}
	log.Info("using catalog", "path", path)
	return gamedata.Open(path)
}
