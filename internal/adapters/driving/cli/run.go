package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/sightline-cli/internal/core/domain"
	"github.com/custodia-labs/sightline-cli/internal/core/ports/driving"
)

var (
	runJSON     bool
	runUntilEOF bool
)

var runCmd = &cobra.Command{
	Use:   "run [transcript...]",
	Short: "Run the voice-command demo",
	Long: `Feed transcripts to a fresh voice session and process one camera frame
per transcript in the resulting mode, printing every spoken message.

Without arguments the transcripts configured under [demo] are used, which by
default switch to navigation, object detection and reading in turn.

Examples:
  sightline run
  sightline run "switch to reading" "what does it say"
  sightline run --json`,
	RunE: runDemo,
}

func init() {
	runCmd.Flags().BoolVar(&runJSON, "json", false, "output the demo report as JSON")
	runCmd.Flags().BoolVar(&runUntilEOF, "until-eof", false, "keep dispatching until the transcript source runs dry")
	rootCmd.AddCommand(runCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	if demoRunner == nil {
		return errors.New("demo service not configured")
	}

	report, err := demoRunner.Run(cmd.Context(), driving.DemoOptions{
		Transcripts:     args,
		UntilEndOfInput: runUntilEOF,
	})
	if report == nil {
		return fmt.Errorf("demo failed: %w", err)
	}

	if runJSON {
		if outErr := outputReportJSON(cmd, report); outErr != nil {
			return outErr
		}
	} else {
		outputReportText(cmd, report)
	}

	if err != nil {
		return fmt.Errorf("demo stopped after %d steps: %w", len(report.Steps), err)
	}
	return nil
}

func outputReportJSON(cmd *cobra.Command, report *domain.DemoReport) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputReportText(cmd *cobra.Command, report *domain.DemoReport) {
	st := stylesFor(cmd.OutOrStdout())

	cmd.Println(st.Heading("Session " + report.SessionID))
	if len(report.Steps) == 0 {
		cmd.Println(st.Muted("No transcripts to dispatch."))
		return
	}

	for i := range report.Steps {
		step := &report.Steps[i]
		status := "no command"
		if step.Switch.Matched() {
			status = "matched"
		}
		cmd.Printf("%2d. %q -> %s %s\n",
			i+1,
			step.Switch.Transcript,
			st.Mode(step.Switch.ActiveMode.String()),
			st.Muted("("+status+")"),
		)

		announcements := step.Announcements()
		if len(announcements) == 0 {
			cmd.Printf("    %s\n", st.Muted("(silent)"))
		}
		for _, msg := range announcements {
			cmd.Printf("    %s\n", st.Speech(msg))
		}
	}
}
