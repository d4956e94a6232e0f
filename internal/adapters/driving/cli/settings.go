package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/sightline-cli/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure the initial mode, navigation frame width and
reading fallback message.

Trigger phrases and demo transcripts are edited in config.toml directly.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsModeCmd = &cobra.Command{
	Use:   "mode [mode]",
	Short: "Set the initial mode",
	Long: `Set the mode a new voice session starts in.

Available modes:
  navigation        - Obstacle guidance (left, right or forward)
  object_detection  - Names the objects in view
  reading           - Reads printed text aloud

Without an argument, choose from a menu.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSettingsMode,
}

var settingsFrameWidthCmd = &cobra.Command{
	Use:   "frame-width <pixels>",
	Short: "Set the navigation frame width",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsFrameWidth,
}

var settingsFallbackCmd = &cobra.Command{
	Use:   "fallback <message>",
	Short: "Set the message spoken when no text is found",
	Long: `Set the message the reading assistant speaks when a frame has no text.
Pass an empty string to stay silent instead.`,
	Args: cobra.ExactArgs(1),
	RunE: runSettingsFallback,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsModeCmd)
	settingsCmd.AddCommand(settingsFrameWidthCmd)
	settingsCmd.AddCommand(settingsFallbackCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Voice]")
	cmd.Printf("  Initial mode: %s\n", settings.InitialMode.Description())
	cmd.Println()

	cmd.Println("[Navigation]")
	cmd.Printf("  Frame width: %d px\n", settings.Navigation.FrameWidth)
	cmd.Println()

	cmd.Println("[Reading]")
	if settings.Reading.FallbackMessage == "" {
		cmd.Println("  Fallback: (silent)")
	} else {
		cmd.Printf("  Fallback: %q\n", settings.Reading.FallbackMessage)
	}
	cmd.Println()

	cmd.Println("[Demo]")
	cmd.Printf("  Transcripts: %d\n", len(settings.Demo.Transcripts))
	for _, t := range settings.Demo.Transcripts {
		cmd.Printf("    - %q\n", t)
	}
	cmd.Printf("  Reading text: %q\n", settings.Demo.ReadingText)
	if settings.Demo.PaceMillis > 0 {
		cmd.Printf("  Pace: %d ms\n", settings.Demo.PaceMillis)
	}
	cmd.Println()

	if err := settingsService.Validate(); err != nil {
		cmd.Printf("Warning: %v\n", err)
		cmd.Println("Run 'sightline settings' subcommands or edit config.toml to fix.")
	} else {
		cmd.Println("Configuration is valid.")
	}

	return nil
}

func runSettingsMode(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	var selected domain.Mode
	if len(args) == 1 {
		mode, err := domain.ParseMode(args[0])
		if err != nil {
			return err
		}
		selected = mode
	} else {
		reader := bufio.NewReader(cmd.InOrStdin())

		cmd.Println("Select Initial Mode")
		cmd.Println("-------------------")
		modes := domain.Modes()
		for i, mode := range modes {
			cmd.Printf("  %d. %s\n", i+1, mode.Description())
		}
		cmd.Print("\nEnter choice: ")
		input := readLine(reader)
		idx := parseChoice(input, len(modes), 0)
		if idx == 0 {
			return errors.New("invalid selection")
		}
		selected = modes[idx-1]
	}

	if err := settingsService.SetInitialMode(selected); err != nil {
		return fmt.Errorf("failed to set initial mode: %w", err)
	}

	cmd.Printf("Initial mode set to: %s\n", selected.Description())
	return nil
}

func runSettingsFrameWidth(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	width, err := strconv.Atoi(strings.TrimSpace(args[0]))
	if err != nil {
		return fmt.Errorf("%w: frame width %q is not a number", domain.ErrInvalidArgument, args[0])
	}
	if err := settingsService.SetFrameWidth(width); err != nil {
		return fmt.Errorf("failed to set frame width: %w", err)
	}

	cmd.Printf("Frame width set to: %d px\n", width)
	return nil
}

func runSettingsFallback(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if err := settingsService.SetReadingFallback(args[0]); err != nil {
		return fmt.Errorf("failed to set reading fallback: %w", err)
	}

	message := strings.TrimSpace(args[0])
	if message == "" {
		cmd.Println("Reading fallback disabled.")
	} else {
		cmd.Printf("Reading fallback set to: %q\n", message)
	}
	return nil
}

func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func parseChoice(input string, maxVal, defaultVal int) int {
	if input == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(input)
	if err != nil || val < 1 || val > maxVal {
		return defaultVal
	}
	return val
}
