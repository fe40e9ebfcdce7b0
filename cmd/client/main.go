package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/iudanet/weekendly/internal/client/api"
	"github.com/iudanet/weekendly/internal/client/auth"
	"github.com/iudanet/weekendly/internal/client/cache"
	"github.com/iudanet/weekendly/internal/client/cli"
	"github.com/iudanet/weekendly/internal/client/config"
	"github.com/iudanet/weekendly/internal/client/data"
	"github.com/iudanet/weekendly/internal/client/engine"
	"github.com/iudanet/weekendly/internal/client/iocli"
	"github.com/iudanet/weekendly/internal/client/netmon"
	"github.com/iudanet/weekendly/internal/client/storage/boltdb"
	clientsync "github.com/iudanet/weekendly/internal/client/sync"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// drainerAdapter подгоняет координатор под интерфейс монитора
type drainerAdapter struct {
	coordinator clientsync.Service
}

func (d drainerAdapter) Drain(ctx context.Context) error {
	_, err := d.coordinator.Drain(ctx)
	return err
}

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	configPath := flag.String("config", defaultConfigPath(), "Path to config file")
	serverURL := flag.String("server", "", "Server URL (overrides config)")
	dbPath := flag.String("db", "", "Path to local database (overrides config)")
	offline := flag.Bool("offline", false, "Force offline mode")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	io := iocli.NewStdio()

	args := flag.Args()
	if len(args) == 0 {
		// Без команды печатаем справку без инициализации хранилища
		usageOnly := cli.New(cli.Deps{IO: io})
		usageOnly.PrintUsage()
		os.Exit(1)
	}
	command := args[0]

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *serverURL != "" {
		cfg.ServerURL = *serverURL
	}
	if *dbPath != "" {
		cfg.DBPath = *dbPath
	}

	// Контекст с отменой по SIGINT/SIGTERM: нужен агенту,
	// остальным командам не мешает
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	boltStorage, err := boltdb.New(ctx, cfg.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	apiClient := api.NewClient(cfg.ServerURL)

	// Монитор связности: health-проба сервера + pub/sub событий
	monitor := netmon.New(apiClient, logger, cfg.ProbeInterval.Std())
	if *offline {
		monitor.SetForcedOffline(ctx, true)
	} else {
		// Одна синхронная проба, чтобы команды видели актуальное состояние
		monitor.Probe(ctx)
	}

	coordinator := clientsync.NewService(
		apiClient, boltStorage, boltStorage, boltStorage, monitor, monitor, logger)
	monitor.SetDrainer(drainerAdapter{coordinator: coordinator})

	classifier := cache.NewClassifier(cfg.APIAllowlist)
	fetcher := cache.NewHTTPFetcher(0)
	executor := cache.NewExecutor(boltStorage, fetcher, classifier, monitor, logger, cfg.CacheVersion)

	plans := data.NewService(boltStorage, coordinator, logger)
	eng := engine.New(monitor, executor, plans, coordinator, cfg.AssetURLs, logger)
	defer eng.Close()

	authService := auth.NewService(apiClient, boltStorage)

	c := cli.New(cli.Deps{
		IO:          io,
		Engine:      eng,
		Monitor:     monitor,
		AuthService: authService,
		Plans:       plans,
		Coordinator: coordinator,
		Metadata:    boltStorage,
		APIClient:   apiClient,
		Logger:      logger,
		DrainCron:   cfg.DrainCron,
	})

	c.Run(ctx, command, args[1:])
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "weekendly.yaml"
	}
	return filepath.Join(home, ".weekendly", "config.yaml")
}

func printVersion() {
	fmt.Printf("Weekendly Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
