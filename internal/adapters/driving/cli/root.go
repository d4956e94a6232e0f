// Package cli provides the sightline command tree.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/sightline-cli/internal/core/ports/driving"
	"github.com/custodia-labs/sightline-cli/internal/logger"
)

// version is set at build time.
var version = "dev"

// Services used by the commands. A nil service makes its commands fail
// with a "not configured" error.
var (
	settingsService driving.SettingsService
	demoRunner      driving.DemoRunner
	sessionFactory  driving.SessionFactory
)

// Root flag values.
var (
	verbose   bool
	configDir string
	noConfig  bool
)

// Options carries root flag values to the service builder.
type Options struct {
	// ConfigDir overrides the configuration directory. Empty means the default.
	ConfigDir string

	// NoConfig keeps configuration in memory with built-in defaults.
	NoConfig bool
}

// Services bundles the driving ports the commands use.
type Services struct {
	Settings driving.SettingsService
	Demo     driving.DemoRunner
	Sessions driving.SessionFactory
}

// Builder constructs services once flags are parsed.
type Builder func(opts Options) (*Services, error)

var builder Builder

var rootCmd = &cobra.Command{
	Use:   "sightline",
	Short: "Voice-controlled assistive vision demo",
	Long: `Sightline switches between navigation, object detection and reading
assistants using spoken commands, and runs each assistant against scripted
camera, detector and OCR backends.

Run 'sightline run' to play the demo script, or 'sightline match' and
'sightline guide' to try the mode matcher and guidance heuristic directly.`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)
		return initServices()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print debug logs to stderr")
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "", "configuration directory (default ~/.sightline)")
	rootCmd.PersistentFlags().BoolVar(&noConfig, "no-config", false, "ignore the config file and use built-in defaults")
}

// Execute runs the root command. build is called after flag parsing to wire services.
// Command output goes to stdout; cobra otherwise prints to stderr.
func Execute(ctx context.Context, build Builder) error {
	builder = build
	rootCmd.SetOut(os.Stdout)
	return rootCmd.ExecuteContext(ctx)
}

// SetVersion sets the version reported by 'sightline version'.
func SetVersion(v string) {
	version = v
}

// SetServices wires services directly, bypassing the builder.
func SetServices(svc *Services) {
	if svc == nil {
		svc = &Services{}
	}
	settingsService = svc.Settings
	demoRunner = svc.Demo
	sessionFactory = svc.Sessions
}

func initServices() error {
	if builder == nil {
		return nil
	}
	svc, err := builder(Options{ConfigDir: configDir, NoConfig: noConfig})
	if err != nil {
		return fmt.Errorf("initialising services: %w", err)
	}
	SetServices(svc)
	return nil
}
