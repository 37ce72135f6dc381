package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zhubert/dock/internal/provider"
	"github.com/zhubert/dock/internal/ui/modals"
)

var selectForce bool

var selectCmd = &cobra.Command{
	Use:   "select",
	Short: "Resolve the provider a new panel would use",
	Long: `Runs provider selection as the panel does when it starts a session: the
default provider is used if configured, a single provider is used without
asking, and otherwise a chooser is shown. With --force the chooser is always
shown, as when changing a project's provider.`,
	Args: cobra.NoArgs,
	RunE: runSelect,
}

func init() {
	selectCmd.Flags().BoolVarP(&selectForce, "force", "f", false, "Always show the chooser")
	rootCmd.AddCommand(selectCmd)
}

func runSelect(cmd *cobra.Command, _ []string) error {
	return runSelectWith(cmd, &provider.FormChooser{Theme: modals.ModalTheme()})
}

// runSelectWith allows injecting a chooser for testing
func runSelectWith(cmd *cobra.Command, chooser provider.Chooser) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	sel, err := cfg.Selector(chooser)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var picked provider.Config
	if selectForce {
		picked, err = sel.Choose(ctx)
	} else {
		picked, err = sel.Select(ctx)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", picked.Label(), picked.Name)
	return nil
}
