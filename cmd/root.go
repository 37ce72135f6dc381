package cmd

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/zhubert/dock/internal/app"
	"github.com/zhubert/dock/internal/config"
	"github.com/zhubert/dock/internal/logger"
)

var (
	debugMode             bool
	quietMode             bool
	configDir             string
	version, commit, date string
)

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "dock [files...]",
	Short: "Editor frame with a per-project agent side panel",
	Long: `Dock opens files in a terminal editor frame and attaches an agent
session to each project in a side panel. Every project keeps its own panel,
provider and width; toggling hides the panel without ending the session.`,
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", true, "Enable debug logging (on by default)")
	rootCmd.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "Reduce logging to info level only")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "Settings directory (default ~/.dock)")
}

func initConfig() {
	if quietMode {
		logger.SetDebug(false)
	} else if debugMode {
		logger.SetDebug(true)
	}
}

// Execute runs the root command
func Execute() error {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("dock %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("dock %s\n", version)
}

// loadConfig reads settings from --config-dir, or ~/.dock.
func loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if configDir != "" {
		cfg, err = config.LoadFrom(configDir)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	return cfg, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Ensure logger is closed on exit
	defer logger.Close()

	m, err := app.New(app.Options{Config: cfg, Version: version, Files: args})
	if err != nil {
		return err
	}
	// Ends any session still running if the program exits without quitting.
	defer m.Shutdown()

	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}
