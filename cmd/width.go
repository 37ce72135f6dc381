package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/zhubert/dock/internal/width"
)

var (
	widthFrame   int
	widthValue   string
	widthMinimum string
	widthMaximum string
)

var widthCmd = &cobra.Command{
	Use:   "width",
	Short: "Print the panel width for a frame",
	Long: `Resolves the panel width the way the side panel does: the preferred width is
clamped to the minimum and then to the maximum. Each value is a column count
("90") or a fraction of the frame ("50%"). Unset flags use the configured values.

Examples:
  dock width --frame 200                 # Configured widths on a 200-column frame
  dock width --frame 120 --width 50%     # Half the frame, clamped by the configured bounds`,
	Args: cobra.NoArgs,
	RunE: runWidth,
}

func init() {
	widthCmd.Flags().IntVar(&widthFrame, "frame", 200, "Frame width in columns")
	widthCmd.Flags().StringVar(&widthValue, "width", "", "Preferred panel width")
	widthCmd.Flags().StringVar(&widthMinimum, "min", "", "Minimum panel width")
	widthCmd.Flags().StringVar(&widthMaximum, "max", "", "Maximum panel width")
	rootCmd.AddCommand(widthCmd)
}

func runWidth(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	layout := cfg.PanelLayout()

	configured, err := overrideSpec(layout.Width, widthValue)
	if err != nil {
		return err
	}
	minimum, err := overrideSpec(layout.MinWidth, widthMinimum)
	if err != nil {
		return err
	}
	maximum, err := overrideSpec(layout.MaxWidth, widthMaximum)
	if err != nil {
		return err
	}

	cols, err := width.Resolve(configured, minimum, maximum, widthFrame)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), cols)
	return nil
}

// overrideSpec parses a flag value, or returns current when value is empty.
// Bare integers are column counts.
func overrideSpec(current width.Spec, value string) (width.Spec, error) {
	if value == "" {
		return current, nil
	}
	if n, err := strconv.Atoi(value); err == nil {
		return width.Parse(n)
	}
	return width.Parse(value)
}
