package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/claude/ironplan/internal/setlog"
	"github.com/google/uuid"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	serverURL := flag.String("server", "", "IronPlan server URL (e.g. https://ironplan.tail1234.ts.net)")
	logPath := flag.String("file", "", "path to set log file (exercise;weight_kg;reps per line)")
	apiKey := flag.String("api-key", os.Getenv("IRONPLAN_API_KEY"), "API key (defaults to IRONPLAN_API_KEY)")
	dryRun := flag.Bool("dry-run", false, "parse the log but don't send to server")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println("ironplan-log", Version)
		return
	}

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if *logPath == "" {
		fmt.Fprintf(os.Stderr, "Usage: ironplan-log -server <URL> -file sets.csv [-api-key KEY] [-dry-run]\n\n")
		flag.PrintDefaults()
		os.Exit(1)
	}
	if !*dryRun && (*serverURL == "" || *apiKey == "") {
		fmt.Fprintf(os.Stderr, "Error: -server and -api-key are required (or use -dry-run)\n")
		os.Exit(1)
	}
	*serverURL = strings.TrimRight(*serverURL, "/")

	entries, err := setlog.ReadFile(*logPath)
	if err != nil {
		log.Error("failed to read set log", "path", *logPath, "error", err)
		os.Exit(1)
	}
	log.Info("set log parsed", "path", *logPath, "entries", len(entries))

	if *dryRun {
		log.Info("DRY RUN mode — sets will not be sent")
		for _, e := range entries {
			log.Info("set", "line", e.Line, "exercise", e.Exercise, "weight", e.Weight, "reps", e.Reps)
		}
		return
	}

	// Open state database
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Error("failed to get home directory", "error", err)
		os.Exit(1)
	}
	state, err := setlog.OpenStateDB(filepath.Join(homeDir, ".ironplan-log"))
	if err != nil {
		log.Error("failed to open state database", "error", err)
		os.Exit(1)
	}
	defer state.Close()

	client := setlog.NewClient(*serverURL, *apiKey)

	absPath, err := filepath.Abs(*logPath)
	if err != nil {
		absPath = *logPath
	}

	sent, skipped, prs := 0, 0, 0
	for _, e := range entries {
		fp := setlog.Fingerprint(absPath, e)
		if _, done, err := state.IsSent(fp); err != nil {
			log.Error("state lookup failed", "line", e.Line, "error", err)
			os.Exit(1)
		} else if done {
			skipped++
			continue
		}

		sourceSetID := uuid.NewString()
		recorded, err := client.SendSet(e, sourceSetID)
		if err != nil {
			log.Error("send failed", "line", e.Line, "exercise", e.Exercise, "error", err)
			os.Exit(1)
		}
		if err := state.MarkSent(fp, sourceSetID); err != nil {
			log.Error("state update failed", "line", e.Line, "error", err)
			os.Exit(1)
		}
		sent++
		if recorded {
			prs++
			log.Info("new PR", "exercise", e.Exercise, "weight", e.Weight, "reps", e.Reps)
		}
	}

	log.Info("set log synced", "sent", sent, "skipped", skipped, "new_prs", prs)
}
