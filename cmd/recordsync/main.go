package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	apihttp "github.com/offlinekit/recordsync/internal/client/api"
	"github.com/offlinekit/recordsync/internal/client/auth"
	"github.com/offlinekit/recordsync/internal/client/cli"
	"github.com/offlinekit/recordsync/internal/client/data"
	"github.com/offlinekit/recordsync/internal/client/iocli"
	"github.com/offlinekit/recordsync/internal/client/storage/boltdb"
	"github.com/offlinekit/recordsync/internal/client/storage/sqlite"
	"github.com/offlinekit/recordsync/internal/device"
	"github.com/offlinekit/recordsync/internal/netmon"
	"github.com/offlinekit/recordsync/internal/queue"
	"github.com/offlinekit/recordsync/internal/sync"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Глобальные флаги
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", "http://localhost:8080", "Record server URL")
	dbPath := flag.String("db", "recordsync.db", "Path to local record database")
	queuePath := flag.String("queue-db", "recordsync-queue.db", "Path to sync queue database")
	interval := flag.Duration("interval", 30*time.Second, "Auto-sync interval (watch mode)")
	verbose := flag.Bool("v", false, "Verbose logging")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	args := flag.Args()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx := context.Background()

	// Локальное хранилище записей (BoltDB)
	boltStorage, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open record database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			logger.Error("failed to close record database", "error", err)
		}
	}()

	// Очередь синхронизации (SQLite)
	queueStorage, err := sqlite.New(ctx, *queuePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open queue database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := queueStorage.Close(); err != nil {
			logger.Error("failed to close queue database", "error", err)
		}
	}()

	deviceID, err := device.EnsureID(ctx, boltStorage)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize device identity: %v\n", err)
		os.Exit(1)
	}

	apiClient := apihttp.NewClient(*serverURL)
	monitor := netmon.NewPollingMonitor(apiClient, *interval, logger)

	authService := auth.NewService(boltStorage, logger)
	queueService := queue.NewService(queueStorage, logger)
	dataService := data.NewService(boltStorage, queueService, deviceID, logger)
	syncService := sync.NewService(sync.Config{
		API:      apiClient,
		Records:  boltStorage,
		Queue:    queueService,
		Monitor:  monitor,
		Tokens:   authService,
		Logger:   logger,
		DeviceID: deviceID,
		Interval: *interval,
	})

	if len(args) > 0 && args[0] == "watch" {
		runWatch(ctx, monitor, syncService, logger)
		return
	}

	// Start опрашивает сервер синхронно: разовые команды видят
	// актуальное состояние связи сразу
	monitor.Start(ctx)
	defer monitor.Stop()

	app := cli.New(iocli.NewStdio(), authService, dataService, syncService, queueService)
	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runWatch держит процесс в фоне: монитор следит за связью,
// оркестратор синхронизирует очередь по событиям и таймеру.
func runWatch(ctx context.Context, monitor *netmon.PollingMonitor, syncService sync.Service, logger *slog.Logger) {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	monitor.Start(ctx)
	defer monitor.Stop()

	logger.Info("Watching for changes; press Ctrl+C to stop")
	syncService.Run(ctx)
}

func printVersion() {
	fmt.Printf("recordsync\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
