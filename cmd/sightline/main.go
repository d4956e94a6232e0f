// Command sightline runs the voice-controlled assistive vision demo.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/custodia-labs/sightline-cli/internal/adapters/driven/audio"
	"github.com/custodia-labs/sightline-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/sightline-cli/internal/adapters/driven/config/memory"
	"github.com/custodia-labs/sightline-cli/internal/adapters/driven/fixture"
	"github.com/custodia-labs/sightline-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/sightline-cli/internal/core/domain"
	"github.com/custodia-labs/sightline-cli/internal/core/ports/driven"
	"github.com/custodia-labs/sightline-cli/internal/core/services"
	"github.com/custodia-labs/sightline-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.SetVersion(version)
	if err := cli.Execute(ctx, buildServices); err != nil {
		os.Exit(1)
	}
}

// buildServices wires the driven adapters into the core services.
func buildServices(opts cli.Options) (*cli.Services, error) {
	store, err := openConfigStore(opts)
	if err != nil {
		return nil, err
	}
	logger.Debug("Config: %s", store.Path())

	settings := services.NewSettingsService(store)

	readingText := domain.DefaultReadingText
	if current, err := settings.Get(); err == nil {
		readingText = current.Demo.ReadingText
	} else {
		logger.Warn("Config: %v", err)
	}

	demo := services.NewDemoService(settings, services.DemoBackends{
		Camera:    fixture.NewCamera(),
		Obstacles: fixture.NewObstacleDetector(fixture.DefaultObstacles()),
		Objects:   fixture.NewObjectDetector(fixture.DefaultObjects()),
		Text:      fixture.NewTextRecognizer(readingText),
		// Stderr keeps stdout clean for reports and the MCP transport.
		Audio: audio.NewConsole(os.Stderr),
		NewTranscriber: func(transcripts []string, pace time.Duration) driven.Transcriber {
			return fixture.NewPacedTranscriber(transcripts, pace)
		},
	})

	return &cli.Services{
		Settings: settings,
		Demo:     demo,
		Sessions: demo,
	}, nil
}

func openConfigStore(opts cli.Options) (driven.ConfigStore, error) {
	if opts.NoConfig {
		return memory.NewConfigStore(), nil
	}
	store, err := file.NewConfigStore(opts.ConfigDir)
	if err != nil {
		return nil, fmt.Errorf("opening config: %w", err)
	}
	return store, nil
}
