package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/OCharnyshevich/datadumper/internal/fetch"
	"github.com/OCharnyshevich/datadumper/internal/gamedata"
)

func main() {
	var (
		src   = flag.String("src", "", "catalog source, e.g. git::https://example.com/catalogs.git//vanilla")
		out   = flag.String("o", "./work", "download directory")
		check = flag.Bool("check", true, "parse the downloaded catalog")
	)
	flag.Parse()

	if *src == "" {
		fmt.Fprintln(os.Stderr, "source required")
		os.Exit(2)
	}

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	path, err := fetch.New(*out, log).Fetch(ctx, *src)
	if err != nil {
		log.Error("fetch catalog", "error", err)
		os.Exit(1)
	}

	if *check {
		c, err := gamedata.Open(path)
		if err != nil {
			log.Error("check catalog", "path", path, "error", err)
			os.Exit(1)
		}
		log.Info("catalog ok", "path", path,
			"blocks", len(c.Blocks().All()),
			"biomes", len(c.Biomes().All()),
			"block_entity_types", len(c.BlockEntityTypes().All()))
	}
	fmt.Println(path)
}
