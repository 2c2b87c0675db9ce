package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"textcatalog/internal/adapters/cli"
	"textcatalog/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Configuration invalide: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.NewCommand(cfg).Run(ctx, os.Args); err != nil {
		log.Printf("❌ %v", err)
		stop()
		os.Exit(1)
	}
}
