package main

import (
	"github.com/spf13/cobra"
)

var checkNotify bool

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run one alert pass over every enabled alert",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(false)
		if err != nil {
			return err
		}
		defer app.Close()

		if checkNotify {
			app.engine = app.engineWithDesktopNotifier()
		}
		return app.engine.RunAll(cmd.Context())
	},
}

func init() {
	checkCmd.Flags().BoolVar(&checkNotify, "notify", false, "Send desktop notifications for hits")
}
