package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <place>",
	Short: "Search for a surf spot by name",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(false)
		if err != nil {
			return err
		}
		defer app.Close()

		query := strings.Join(args, " ")
		places, err := app.client.Search(cmd.Context(), query, 10)
		if err != nil {
			return err
		}
		if len(places) == 0 {
			return fmt.Errorf("no places found for %q", query)
		}

		for _, p := range places {
			loc := p.Admin1
			if loc != "" && p.Country != "" {
				loc += ", "
			}
			loc += p.Country
			fmt.Printf("%-28s %-28s %9.4f %9.4f\n", p.Name, loc, p.Latitude, p.Longitude)
		}
		return nil
	},
}
