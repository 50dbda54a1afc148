package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/kwatari/article-quadrant/internal/application"
	"github.com/kwatari/article-quadrant/internal/transport/server"
)

var (
	Version   string = "dev"
	Commit    string = "unknown"
	BuildTime string = "unknown"
)

func main() {
	var (
		showHelp    = flag.Bool("help", false, "Show help message")
		showVersion = flag.Bool("version", false, "Show version information")
	)
	flag.Parse()

	if *showHelp {
		fmt.Printf("Article Quadrant Analyzer Server\n\n")
		fmt.Printf("Usage: %s [options]\n\n", os.Args[0])
		fmt.Printf("Options:\n")
		flag.PrintDefaults()
		fmt.Printf("\nEnvironment Variables:\n")
		fmt.Printf("  GEMINI_API_KEY        Gemini API key (required)\n")
		fmt.Printf("  AUTH_TOKEN            Bearer token for POST endpoints\n")
		fmt.Printf("  PORT                  Server port (default: 8080)\n")
		fmt.Printf("  HOST                  Server host (default: 0.0.0.0)\n")
		fmt.Printf("  CACHE_TYPE            Cache type: memory or cloud-storage (default: memory)\n")
		fmt.Printf("  WATCH_URLS            Comma-separated URLs to refresh on schedule\n")
		fmt.Printf("  WATCH_SCHEDULE        Cron schedule for watch refresh (default: 0 8 * * *)\n")
		os.Exit(0)
	}

	if *showVersion {
		fmt.Printf("Article Quadrant Analyzer Server\n")
		fmt.Printf("Version: %s\n", Version)
		fmt.Printf("Commit: %s\n", Commit)
		fmt.Printf("Build Time: %s\n", BuildTime)
		os.Exit(0)
	}

	// Build application with all dependencies
	app, err := application.New()
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}
	defer app.Close()

	router := server.Routes(app)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", app.Config.Host, app.Config.Port),
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Schedule watch-URL refresh with cron
	c := cron.New()
	if len(app.Config.WatchURLs) > 0 {
		_, err := c.AddFunc(app.Config.WatchSchedule, func() {
			log.Printf("🕐 Scheduled watch refresh starting")
			app.WatchService.Refresh(ctx)
		})
		if err != nil {
			log.Printf("❌ Failed to schedule watch refresh: %v", err)
		} else {
			log.Printf("📅 Scheduled watch refresh for %d URLs with cron: %s",
				len(app.Config.WatchURLs), app.Config.WatchSchedule)
		}
	}
	c.Start()
	defer c.Stop()

	// Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Start server
	go func() {
		log.Printf("🚀 Starting server on %s:%s", app.Config.Host, app.Config.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for shutdown signal
	<-sigChan
	log.Println("🛑 Shutting down server...")

	// Cancel background tasks
	cancel()

	// Stop cron scheduler
	c.Stop()

	// Shutdown HTTP server
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	log.Println("✅ Server stopped")
}
