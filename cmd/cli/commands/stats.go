package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/volunteerhub/volunteerhub-cli/pkg/core/services"
	"github.com/volunteerhub/volunteerhub-cli/pkg/router"
)

// StatsCmd creates the stats command
func StatsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show the admin console's headline numbers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := authorize(app, router.RequireAdmin); err != nil {
				return err
			}

			stats, err := services.FetchStats(app.Ctx, app.API, app.Console, app.Logger)
			if err != nil {
				return err
			}

			fmt.Printf("\nTotal:    %d\n", stats.Total)
			fmt.Printf("Pending:  %d\n", stats.Pending)
			fmt.Printf("Approved: %d\n", stats.Approved)
			fmt.Printf("Active:   %d\n\n", stats.Active)

			return nil
		},
	}
}
