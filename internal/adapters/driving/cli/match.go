package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/sightline-cli/internal/core/domain"
)

var matchInitial string

var matchCmd = &cobra.Command{
	Use:   "match <transcript>",
	Short: "Show which mode a transcript switches to",
	Long: `Match a transcript against the configured trigger phrases and show the
resulting mode. Matching is case-insensitive and ignores extra whitespace.

Multiple arguments are joined with spaces.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runMatch,
}

func init() {
	matchCmd.Flags().StringVar(&matchInitial, "initial", "", "mode before the transcript (default from settings)")
	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, args []string) error {
	if sessionFactory == nil {
		return errors.New("session factory not configured")
	}

	var initial domain.Mode
	if matchInitial != "" {
		mode, err := domain.ParseMode(matchInitial)
		if err != nil {
			return err
		}
		initial = mode
	}

	voice, err := sessionFactory.NewVoiceSession(initial)
	if err != nil {
		return fmt.Errorf("failed to start voice session: %w", err)
	}

	before := voice.ActiveMode()
	result := voice.HandleTranscript(strings.Join(args, " "))

	st := stylesFor(cmd.OutOrStdout())
	if result.Matched() {
		cmd.Printf("Matched: %s\n", st.Mode(result.MatchedMode.String()))
	} else {
		cmd.Printf("Matched: %s\n", st.Muted("(no match)"))
	}
	cmd.Printf("Mode: %s -> %s\n", before, st.Mode(result.ActiveMode.String()))
	return nil
}
