package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/volunteerhub/volunteerhub-cli/pkg/core/services"
	"github.com/volunteerhub/volunteerhub-cli/pkg/router"
)

// EmergencyCmd creates the emergency command
func EmergencyCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "emergency",
		Short: "Toggle emergency response availability",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := authorize(app, router.RequireVolunteer); err != nil {
				return err
			}

			available, err := services.ToggleEmergency(app.Ctx, app.API, app.Sessions, app.Logger)
			if err != nil {
				return err
			}

			if available {
				fmt.Println("✓ Emergency standby is ON - you may receive alerts.")
			} else {
				fmt.Println("✓ Emergency standby is OFF.")
			}
			return nil
		},
	}
}
