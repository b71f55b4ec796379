// Command socsim runs the Star Society population and social-interaction
// engine: lazy background population growth plus the HTTP read surface.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/avens/star-society/internal/api"
	"github.com/avens/star-society/internal/geo"
	"github.com/avens/star-society/internal/persistence"
	"github.com/avens/star-society/internal/population"
	"github.com/avens/star-society/internal/social"
)

func main() {
	var (
		port       int
		dbPath     string
		configPath string
		seed       int64
	)

	root := &cobra.Command{
		Use:   "socsim",
		Short: "Galaxy-scale population and social-interaction simulation",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(port, dbPath, configPath, seed)
		},
	}
	root.Flags().IntVar(&port, "port", 8080, "HTTP API port")
	root.Flags().StringVar(&dbPath, "db", "data/society.db", "SQLite sink path (empty disables the sink)")
	root.Flags().StringVar(&configPath, "config", "", "galaxy YAML file (empty uses the built-in galaxy)")
	root.Flags().Int64Var(&seed, "seed", 42, "generation seed")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(port int, dbPath, configPath string, seed int64) error {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// ── Galaxy ────────────────────────────────────────────────────────
	galaxy := geo.DefaultGalaxy()
	if configPath != "" {
		loaded, err := geo.Load(configPath)
		if err != nil {
			return fmt.Errorf("load galaxy: %w", err)
		}
		galaxy = loaded
	}
	slog.Info("galaxy ready",
		"systems", len(galaxy.Systems()),
		"planets", len(galaxy.Planets()),
		"population_target", galaxy.TotalTarget(),
	)

	// ── Sink ──────────────────────────────────────────────────────────
	var db *persistence.DB
	if dbPath != "" {
		os.MkdirAll(filepath.Dir(dbPath), 0755)
		var err error
		db, err = persistence.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open sink: %w", err)
		}
		defer db.Close()
		slog.Info("sink opened", "path", dbPath)
	} else {
		slog.Warn("sink disabled, state is process-lifetime only")
	}

	// ── Engine ────────────────────────────────────────────────────────
	var popSink population.Sink
	var socSink social.Sink
	if db != nil {
		popSink = db
		socSink = db
	}

	gen := population.NewGenerator(galaxy, seed, popSink)
	graph := social.NewGraph(gen, seed, social.WithSink(socSink))
	sched := population.NewScheduler(gen)
	go sched.Run()

	server := &api.Server{Gen: gen, Graph: graph, Port: port}
	server.Start()

	fmt.Printf("Star Society is growing: target %d souls across %d systems.\n",
		galaxy.TotalTarget(), len(galaxy.Systems()))
	fmt.Printf("API: http://localhost:%d/api/v1/status\n", port)

	// ── Shutdown ──────────────────────────────────────────────────────
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	slog.Info("received signal, shutting down", "signal", sig)

	sched.Stop()
	server.Stop()

	stats := gen.PopulationStats()
	fmt.Printf("Simulation stopped at %d generated profiles (%.1f%% of target).\n",
		stats.TotalGenerated, stats.CompletionPercentage)
	return nil
}
