package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/sightline-cli/internal/core/domain"
)

var modesCmd = &cobra.Command{
	Use:   "modes",
	Short: "List assistant modes and their trigger phrases",
	Args:  cobra.NoArgs,
	RunE:  runModes,
}

func init() {
	rootCmd.AddCommand(modesCmd)
}

func runModes(cmd *cobra.Command, _ []string) error {
	table := domain.DefaultPhraseTable()
	initial := domain.DefaultAppSettings().InitialMode
	if settingsService != nil {
		settings, err := settingsService.Get()
		if err != nil {
			return err
		}
		table = settings.Phrases
		initial = settings.InitialMode
	}

	st := stylesFor(cmd.OutOrStdout())
	for _, mode := range domain.Modes() {
		marker := "  "
		if mode == initial {
			marker = "* "
		}
		cmd.Printf("%s%s - %s\n", marker, st.Mode(mode.String()), mode.Description())

		phrases := table.Phrases(mode)
		if len(phrases) == 0 {
			cmd.Printf("    %s\n", st.Muted("(no trigger phrases)"))
			continue
		}
		quoted := make([]string, len(phrases))
		for i, p := range phrases {
			quoted[i] = `"` + p + `"`
		}
		cmd.Printf("    %s\n", strings.Join(quoted, ", "))
	}
	cmd.Println()
	cmd.Println(st.Muted("* initial mode"))
	return nil
}
