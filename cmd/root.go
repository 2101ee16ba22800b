package cmd

import (
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"movieapp/config"
	"movieapp/logging"
	"movieapp/poster"
	"movieapp/service"
	"movieapp/tui"
)

const appName = "movieapp"

func versionString(version, commit string) string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("%s (%s)", version, commit)
	}
	return version
}

func newRootCmd(version, commit string) *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:          appName,
		Short:        "Browse a list of movies from the terminal",
		Long:         `Scroll through a list of movies, expand a row to read its details and watch the posters load.`,
		Version:      versionString(version, commit),
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			closer, err := logging.Setup(cfg.Log)
			if err != nil {
				return err
			}
			defer closer.Close()

			slog.Info("starting", "version", version, "config", configPath)
			return runScreen(cfg, version)
		},
	}
	rootCmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")

	defaultPath, err := config.DefaultPath()
	if err != nil {
		defaultPath = ""
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", defaultPath, "path to the config file")
	rootCmd.AddCommand(newListCmd())
	return rootCmd
}

func userAgent(version string) string {
	return appName + "/" + version
}

func runScreen(cfg config.Config, version string) error {
	loader := poster.FromConfig(cfg.Poster, service.WithUserAgent(userAgent(version)))

	program := tea.NewProgram(
		tui.New(tui.WithConfig(cfg), tui.WithLoader(loader)),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := program.Run(); err != nil {
		slog.Error("screen stopped", "err", err)
		return err
	}
	return nil
}

// Execute runs the command line. version and commit are set at build time.
func Execute(version, commit string) error {
	return newRootCmd(version, commit).Execute()
}
