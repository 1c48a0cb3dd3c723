package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/claude/ironplan/internal/config"
	"github.com/claude/ironplan/internal/seed"
	"github.com/claude/ironplan/internal/storage"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	seedPath := flag.String("file", "", "path to catalog seed YAML (required)")
	dryRun := flag.Bool("dry-run", false, "parse and report counts without writing to the database")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if *seedPath == "" {
		fmt.Fprintf(os.Stderr, "Usage: ironplan-seed -config config.yaml -file catalog.yaml [-dry-run]\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	f, err := os.Open(*seedPath)
	if err != nil {
		log.Error("failed to open seed file", "path", *seedPath, "error", err)
		os.Exit(1)
	}
	data, err := seed.Parse(f)
	f.Close()
	if err != nil {
		log.Error("failed to parse seed file", "error", err)
		os.Exit(1)
	}

	log.Info("catalog parsed",
		"exercises", len(data.Exercises),
		"muscle_groups", len(data.MuscleGroups),
		"categories", len(data.Categories),
		"muscle_maps", len(data.MuscleMaps),
		"category_maps", len(data.CategoryMaps),
		"benchmarks", len(data.Benchmarks),
		"skills", len(data.Skills),
		"skill_plans", len(data.SkillPlans),
	)

	if *dryRun {
		log.Info("DRY RUN mode — no data will be written to the database")
		return
	}

	// Load config
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	dsn := cfg.Database.DSN()

	// Run migrations
	if err := storage.RunMigrations(dsn, "migrations"); err != nil {
		log.Error("migration failed", "error", err)
		os.Exit(1)
	}
	log.Info("migrations applied")

	ctx := context.Background()

	// Connect database
	db, err := storage.New(ctx, dsn)
	if err != nil {
		log.Error("failed to connect database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	log.Info("database connected")

	if err := db.ReplaceCatalog(ctx, data); err != nil {
		log.Error("catalog replace failed", "error", err)
		os.Exit(1)
	}
	log.Info("catalog seeded")
}
