package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	convertercmd "github.com/louisbranch/roman/internal/cmd/converter"
	entrypoint "github.com/louisbranch/roman/internal/platform/cmd"
	"github.com/louisbranch/roman/internal/platform/config"
)

func main() {
	cfg, err := convertercmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: parse flags: %v", err)
	}
	log.SetPrefix(entrypoint.LogPrefix(entrypoint.ServiceConverter))
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := convertercmd.Run(ctx, cfg); err != nil {
		log.Fatalf("failed to serve: %v", err)
	}
}
