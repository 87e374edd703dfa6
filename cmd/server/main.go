package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"comment-lens/internal/api"
	"comment-lens/internal/sentiment"
	"comment-lens/internal/youtube"
	"comment-lens/shared/config"
	"comment-lens/shared/monitoring"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Create context that responds to signals
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	client, err := youtube.NewClient(ctx, &cfg.YouTube)
	if err != nil {
		log.Fatalf("Failed to create YouTube client: %v", err)
	}

	fetcher := youtube.NewFetcher(client, cfg.Analysis.PageDelay)
	analyzer := sentiment.NewAnalyzer(ctx, cfg)
	monitor := monitoring.NewMonitor()

	server := api.NewServer(cfg, fetcher, client, analyzer, monitor)

	go func() {
		<-ctx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("Warning: shutdown did not complete cleanly: %v", err)
		}
	}()

	if err := server.Start(); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
