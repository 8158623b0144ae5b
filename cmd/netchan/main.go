package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"netchan/internal/config"
	"netchan/internal/discord"
	"netchan/internal/storage"
	"netchan/internal/version"
)

func main() {
	log.Printf("[INFO] Starting %s %s", version.AppName, version.AppVersion)

	cfg, err := config.New()
	if err != nil {
		log.Fatalf("[ERR] Failed to load config: %v", err)
	}

	store, err := storage.New(cfg.StoragePath)
	if err != nil {
		log.Fatalf("[ERR] Failed to open datastore: %v", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Printf("[ERR] Failed to close datastore: %v", err)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bot := discord.New(cfg, store)

	errCh := make(chan error, 1)
	go func() {
		errCh <- bot.Run(ctx)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Printf("[INFO] Received signal: %v", sig)
		cancel()
		if err := <-errCh; err != nil {
			log.Printf("[ERR] Discord bot exited with error: %v", err)
		}
	case err := <-errCh:
		if err != nil {
			log.Fatalf("[ERR] Discord bot failed: %v", err)
		}
	}

	log.Println("[INFO] Discord bot exited cleanly")
}
