package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/volunteerhub/volunteerhub-cli/pkg/core/services"
)

// LogoutCmd creates the logout command
func LogoutCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and clear stored credentials",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := services.Logout(app.Sessions, app.Logger); err != nil {
				return fmt.Errorf("failed to log out: %w", err)
			}

			fmt.Println("✓ Signed out")
			return nil
		},
	}
}
