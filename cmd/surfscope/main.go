package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/surfscope/surfscope/internal/ui"
)

var (
	envFile string

	// The root command runs the interactive dashboard
	rootCmd = &cobra.Command{
		Use:   "surfscope",
		Short: "Surf and marine forecast dashboard for the terminal",
		Long: `SurfScope fetches marine and weather forecasts from Open-Meteo, rates
the surf, detects tide swings, compares your favorite spots, and fires
desktop notifications when conditions match your alerts.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(true)
			if err != nil {
				return err
			}
			defer app.Close()

			app.StartScheduler()

			p := tea.NewProgram(ui.NewModel(app.UIDeps()), tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("running dashboard: %w", err)
			}
			return nil
		},
	}
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&envFile, "env", ".env", "The env file to read.")

	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(loadCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(exportCmd)
}

func initConfig() {
	// Missing env file is fine; the environment itself still applies
	_ = godotenv.Load(envFile)
}
