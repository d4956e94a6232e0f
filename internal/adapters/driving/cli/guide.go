package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/sightline-cli/internal/core/domain"
	"github.com/custodia-labs/sightline-cli/internal/logger"
)

var (
	guideWidth int
	guideBoxes []string
)

var guideCmd = &cobra.Command{
	Use:   "guide",
	Short: "Suggest a direction for a set of obstacles",
	Long: `Run the navigation heuristic on obstacle bounding boxes.

Each --box is "left,top,right,bottom" in pixels with an optional label,
e.g. --box 20,0,80,60,chair. Obstacles centred left of the frame midpoint
steer right, obstacles on the right steer left, and a tie goes forward.

Examples:
  sightline guide --box 20,0,80,60 --box 200,0,260,80
  sightline guide --width 640 --box 0,0,100,100,chair`,
	Args: cobra.NoArgs,
	RunE: runGuide,
}

func init() {
	guideCmd.Flags().IntVarP(&guideWidth, "width", "w", 0, "frame width in pixels (default from settings)")
	guideCmd.Flags().StringArrayVarP(&guideBoxes, "box", "b", nil, "obstacle box as left,top,right,bottom[,label]")
	rootCmd.AddCommand(guideCmd)
}

func runGuide(cmd *cobra.Command, _ []string) error {
	width := guideWidth
	if !cmd.Flags().Changed("width") {
		width = configuredFrameWidth()
	}

	obstacles := make([]domain.Obstacle, 0, len(guideBoxes))
	for _, raw := range guideBoxes {
		obstacle, err := parseObstacle(raw)
		if err != nil {
			return err
		}
		if obstacle.Label != "" && !domain.IsCommonObject(obstacle.Label) {
			logger.Warn("Guide: %q is not a common object label", obstacle.Label)
		}
		obstacles = append(obstacles, obstacle)
	}

	direction, err := domain.ChooseDirection(obstacles, width)
	if err != nil {
		return err
	}

	st := stylesFor(cmd.OutOrStdout())
	cmd.Printf("Direction: %s\n", st.Mode(direction.String()))
	cmd.Println(st.Muted(fmt.Sprintf("(%d obstacles, frame width %d)", len(obstacles), width)))
	return nil
}

// configuredFrameWidth returns the settings frame width, or the default when
// settings are unavailable.
func configuredFrameWidth() int {
	if settingsService == nil {
		return domain.DefaultFrameWidth
	}
	settings, err := settingsService.Get()
	if err != nil {
		logger.Warn("Guide: using default frame width: %v", err)
		return domain.DefaultFrameWidth
	}
	return settings.Navigation.FrameWidth
}

// parseObstacle parses "left,top,right,bottom[,label]".
func parseObstacle(raw string) (domain.Obstacle, error) {
	parts := strings.SplitN(raw, ",", 5)
	if len(parts) < 4 {
		return domain.Obstacle{}, fmt.Errorf("%w: box %q needs left,top,right,bottom", domain.ErrInvalidInput, raw)
	}

	coords := make([]int, 4)
	for i := 0; i < 4; i++ {
		n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil {
			return domain.Obstacle{}, fmt.Errorf("%w: box %q: %v", domain.ErrInvalidInput, raw, err)
		}
		coords[i] = n
	}

	obstacle := domain.Obstacle{
		BBox: domain.BoundingBox{Left: coords[0], Top: coords[1], Right: coords[2], Bottom: coords[3]},
	}
	if len(parts) == 5 {
		obstacle.Label = strings.TrimSpace(parts[4])
	}
	return obstacle, nil
}
