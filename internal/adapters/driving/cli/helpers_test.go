package cli

import (
	"bytes"
	"time"

	"github.com/custodia-labs/sightline-cli/internal/adapters/driven/audio"
	"github.com/custodia-labs/sightline-cli/internal/adapters/driven/config/memory"
	"github.com/custodia-labs/sightline-cli/internal/adapters/driven/fixture"
	"github.com/custodia-labs/sightline-cli/internal/core/ports/driven"
	"github.com/custodia-labs/sightline-cli/internal/core/services"
)

// testEnv exposes the collaborators wired by setupTestServices.
type testEnv struct {
	store    *memory.ConfigStore
	recorder *audio.Recorder
}

// setupTestServices wires real services over an in-memory config store and
// the demo fixtures. The returned function restores the previous services.
func setupTestServices() (*testEnv, func()) {
	oldSettings, oldDemo, oldSessions := settingsService, demoRunner, sessionFactory

	env := &testEnv{
		store:    memory.NewConfigStore(),
		recorder: audio.NewRecorder(),
	}
	settings := services.NewSettingsService(env.store)
	demo := services.NewDemoService(settings, services.DemoBackends{
		Camera:    fixture.NewCamera(),
		Obstacles: fixture.NewObstacleDetector(fixture.DefaultObstacles()),
		Objects:   fixture.NewObjectDetector(fixture.DefaultObjects()),
		Text:      fixture.NewTextRecognizer("Welcome to the campus library"),
		Audio:     env.recorder,
		NewTranscriber: func(transcripts []string, pace time.Duration) driven.Transcriber {
			return fixture.NewPacedTranscriber(transcripts, pace)
		},
	})

	SetServices(&Services{Settings: settings, Demo: demo, Sessions: demo})

	return env, func() {
		settingsService, demoRunner, sessionFactory = oldSettings, oldDemo, oldSessions
	}
}

// execute runs the root command with args and returns its output.
func execute(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}
