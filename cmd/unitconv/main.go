package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/unitconv/internal/adapters/driven/config/file"
	"github.com/custodia-labs/unitconv/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/unitconv/internal/adapters/driving/cli"
	"github.com/custodia-labs/unitconv/internal/core/ports/driven"
	"github.com/custodia-labs/unitconv/internal/core/services"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.SetServiceBuilder(buildServices)

	if err := cli.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// watchableStore is a config store that reports changes.
type watchableStore interface {
	driven.ConfigStore
	Watch(ctx context.Context, onChange func()) error
}

// buildServices wires the selected settings store into the core services.
func buildServices(opts cli.ConfigOptions) (*cli.Services, error) {
	var store watchableStore
	if opts.InMemory {
		store = memory.NewConfigStore()
	} else {
		fileStore, err := file.NewConfigStore(opts.Dir)
		if err != nil {
			return nil, fmt.Errorf("opening config: %w", err)
		}
		store = fileStore
	}

	settings := services.NewSettingsService(store)

	return &cli.Services{
		Converter: services.NewConverterService(settings),
		Settings:  settings,
		Watch:     store.Watch,
	}, nil
}
