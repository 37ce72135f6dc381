package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/zhubert/dock/internal/config"
	"github.com/zhubert/dock/internal/provider"
)

var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "List configured agent providers",
	Long: `Lists the providers offered by the agent chooser, in chooser order. The
default provider, if any, is marked with *. Providers sharing a label are
listed once; the first definition wins.`,
	Args: cobra.NoArgs,
	RunE: runProviders,
}

var providersInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a providers.yaml template",
	Long: `Creates providers.yaml in the settings directory with the built-in providers,
ready to edit.`,
	Args: cobra.NoArgs,
	RunE: runProvidersInit,
}

func init() {
	providersCmd.AddCommand(providersInitCmd)
	rootCmd.AddCommand(providersCmd)
}

func runProviders(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	opts := provider.Options(cfg.Providers())
	if len(opts) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No providers configured.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	for _, opt := range opts {
		mark := " "
		if opt.Config.Name == cfg.DefaultProvider {
			mark = "*"
		}
		fmt.Fprintf(w, "%s %s\t%s\t%s\n", mark, opt.Label, opt.Config.Name, opt.Config.Command)
	}
	return w.Flush()
}

func runProvidersInit(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	fp, err := config.WriteProvidersTemplate(cfg.Dir())
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", fp)
	return nil
}
