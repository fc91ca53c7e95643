package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/osse101/BaroWiki_Go/internal/config"
	"github.com/osse101/BaroWiki_Go/internal/database"
	"github.com/osse101/BaroWiki_Go/internal/logger"
	"github.com/osse101/BaroWiki_Go/internal/metrics"
	"github.com/osse101/BaroWiki_Go/internal/output"
	"github.com/osse101/BaroWiki_Go/internal/render"
)

// renderFunc produces the artifacts of one command from a loaded game.
type renderFunc func(cfg *config.Config, db *database.DB) ([]output.Artifact, error)

// GenerateCommand loads the game data and writes the artifacts of render.
type GenerateCommand struct {
	name        string
	description string
	render      renderFunc
	stderr      io.Writer
}

func (c *GenerateCommand) Name() string {
	return c.name
}

func (c *GenerateCommand) Description() string {
	return c.description
}

func (c *GenerateCommand) Run(args []string) error {
	fs := flag.NewFlagSet(c.name, flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	var flags config.Flags
	fs.StringVar(&flags.GamePath, flagGame, "", "game installation directory (overrides "+config.EnvGamePath+")")
	fs.StringVar(&flags.OutputDir, flagOut, "", "output directory (overrides "+config.EnvOutputDir+")")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(flags)
	if err != nil {
		return err
	}
	initLogger(cfg)

	ctx := logger.WithRunID(context.Background(), logger.GenerateRunID())
	return c.run(ctx, cfg)
}

func (c *GenerateCommand) run(ctx context.Context, cfg *config.Config) (err error) {
	log := logger.FromContext(ctx)
	started := time.Now()
	log.Info(LogMsgRunStarted, "command", c.name, "game", cfg.GamePath, "out", cfg.OutputDir)

	defer func() {
		metrics.RecordRun(started, err == nil)
		if err == nil {
			log.Info(LogMsgRunFinished, "command", c.name, "duration", time.Since(started))
		}
		if cfg.MetricsTextfile == "" {
			return
		}
		if werr := metrics.WriteTextfile(cfg.MetricsTextfile); werr != nil {
			log.Warn(LogMsgMetricsFailed, "path", cfg.MetricsTextfile, "error", werr)
			return
		}
		log.Debug(LogMsgMetricsWritten, "path", cfg.MetricsTextfile)
	}()

	db, err := database.Load(ctx, cfg.GamePath)
	if err != nil {
		return err
	}
	ctx = logger.WithGameVersion(ctx, db.Version)
	log = logger.FromContext(ctx)

	// Render everything before touching the output directory.
	artifacts, err := c.render(cfg, db)
	if err != nil {
		return err
	}
	for _, a := range artifacts {
		log.Debug(LogMsgArtifactRendered, "artifact", a.Name, "bytes", len(a.Data))
	}

	return output.WriteAll(ctx, cfg.OutputDir, artifacts)
}

// FabricationArtifact returns the file name of a station's fabrication table.
func FabricationArtifact(station string) string {
	return fmt.Sprintf(artifactFabricationFmt, station)
}

func renderPrices(_ *config.Config, db *database.DB) ([]output.Artifact, error) {
	data, err := render.PricesCSV(db.Items)
	if err != nil {
		return nil, err
	}
	return []output.Artifact{{Name: ArtifactPrices, Data: data}}, nil
}

func renderFabrication(cfg *config.Config, db *database.DB) ([]output.Artifact, error) {
	artifacts := make([]output.Artifact, 0, len(cfg.Fabricators))
	for _, station := range cfg.Fabricators {
		table, err := render.FabricationTable(db, station)
		if err != nil {
			return nil, fmt.Errorf("station %s: %w", station, err)
		}
		artifacts = append(artifacts, output.Artifact{Name: FabricationArtifact(station), Data: []byte(table)})
	}
	return artifacts, nil
}

func renderDeconstruction(_ *config.Config, db *database.DB) ([]output.Artifact, error) {
	table, err := render.DeconstructionTable(db)
	if err != nil {
		return nil, err
	}
	return []output.Artifact{{Name: ArtifactDeconstruction, Data: []byte(table)}}, nil
}

func renderInfoboxes(_ *config.Config, db *database.DB) ([]output.Artifact, error) {
	boxes, err := render.Infoboxes(db)
	if err != nil {
		return nil, err
	}
	return []output.Artifact{{Name: ArtifactInfoboxes, Data: []byte(boxes)}}, nil
}

func renderCatalog(_ *config.Config, db *database.DB) ([]output.Artifact, error) {
	data, err := render.CatalogYAML(db)
	if err != nil {
		return nil, err
	}
	return []output.Artifact{{Name: ArtifactCatalog, Data: data}}, nil
}

// renderAll combines renderers into one, failing on the first error.
func renderAll(fns ...renderFunc) renderFunc {
	return func(cfg *config.Config, db *database.DB) ([]output.Artifact, error) {
		var artifacts []output.Artifact
		for _, fn := range fns {
			a, err := fn(cfg, db)
			if err != nil {
				return nil, err
			}
			artifacts = append(artifacts, a...)
		}
		return artifacts, nil
	}
}
