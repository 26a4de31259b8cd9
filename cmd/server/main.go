package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"circular-lab/api"
	"circular-lab/directory"
	"circular-lab/domain/event"
	"circular-lab/internal"
	"circular-lab/moderation"
	"circular-lab/notifications"
	"circular-lab/observability"
	"circular-lab/repositories"
	"circular-lab/resolver"
	"circular-lab/search"
	"circular-lab/services"
	"circular-lab/workers"

	"github.com/Netflix/go-env"
	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components, manages the server lifecycle, and centralizes error reporting.
// This pattern is preferred over calling os.Exit or panic directly because:
// 1. It ensures all 'defer' statements (like database cleanup) are executed before the program exits.
// 2. It improves testability by decoupling the initialization logic from the main entry point.
// 3. It provides a structured way to handle graceful shutdowns for the API and background workers.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Database (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.INFO))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	//  Defer will be executed before run() returned anything to main()
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 3. Search index (Bluge)
	blugeWriter, err := bluge.OpenWriter(bluge.DefaultConfig(config.BlugeFilepath))
	if err != nil {
		return fmt.Errorf("search index opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing Bluge writer...")
		_ = blugeWriter.Close()
	}()

	// 4. Moderation
	maskRune, err := internal.MaskRune(config.MaskCharacter)
	if err != nil {
		return err
	}
	var bannedWords []string
	if config.BannedWordsPath != "" {
		bannedWords, err = moderation.LoadWordList(config.BannedWordsPath)
		if err != nil {
			return fmt.Errorf("banned words loading failed: %w", err)
		}
	}
	moderator, err := moderation.NewModerator(bannedWords, maskRune)
	if err != nil {
		return fmt.Errorf("moderator setup failed: %w", err)
	}

	// 5. Core wiring
	monitoring := observability.NewMonitoringManager()
	events := make(chan event.DomainEvent, config.EventBufferSize)
	dir := directory.NewBadgerDirectory(db, log)
	circularRepository := repositories.NewCircularRepository(db, log)
	notificationRepository := notifications.NewNotificationRepository(db)
	index := search.NewIndex(blugeWriter, log)
	res := resolver.NewResolver(log, dir, config.LookupMaxTries, config.LookupTimeout)

	service := services.NewBroadcastService(
		log, circularRepository, res, dir, moderator, index, monitoring, events,
	)

	// 6. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 7. Background workers under supervision
	sup := workers.NewSupervisor(log, config.RestartInterval)
	sup.Add(
		notifications.NewNotifier(log, notificationRepository, events, monitoring),
		workers.NewHeartbeatWorker(log, monitoring, config.HeartbeatInterval),
	)
	go sup.Run(ctx)

	// 8. Debug server (read-only inspection)
	internal.StartDebugServer(db, config.DebugPort, monitoring.AsMap)

	// 9. HTTP API
	address := fmt.Sprintf("%s:%d", config.Host, config.Port)
	server := api.NewServer(log, service, notificationRepository, []byte(config.JWTSecret))
	httpServer := &http.Server{
		Addr:              address,
		Handler:           server.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Use an error channel to capture ListenAndServe() issues
	errChan := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "address", address, "at", time.Now().UTC())
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// 10. Wait for Stop or Error
	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case err := <-errChan:
		return err
	}

	// 11. Final Cleanup
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Warn("HTTP shutdown did not finish cleanly", "err", err)
	}
	log.Info("Program stopped cleanly")

	return nil
}
