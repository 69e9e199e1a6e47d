package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/volunteerhub/volunteerhub-cli/pkg/apiclient"
	"github.com/volunteerhub/volunteerhub-cli/pkg/core/model"
	"github.com/volunteerhub/volunteerhub-cli/pkg/core/services"
	"github.com/volunteerhub/volunteerhub-cli/pkg/router"
)

// ListVolunteersCmd creates the listVolunteers command
func ListVolunteersCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "listVolunteers",
		Short: "List volunteers for admin review",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := authorize(app, router.RequireAdmin); err != nil {
				return err
			}

			status, _ := cmd.Flags().GetString("status")
			search, _ := cmd.Flags().GetString("search")
			filter := apiclient.VolunteerFilter{Status: status, Search: search}

			volunteers, err := services.FetchVolunteers(app.Ctx, app.API, app.Console, app.Logger, filter)
			if err != nil {
				return err
			}

			fmt.Printf("\nFound %d volunteers:\n\n", len(volunteers))
			for _, v := range volunteers {
				skills := ""
				if len(v.Skills) > 0 {
					skills = fmt.Sprintf(" [%s]", strings.Join(v.Skills, ", "))
				}
				fmt.Printf("- %s (%s) - %s - %s%s\n", v.Name, v.ID, v.Status, v.Email, skills)
			}
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().String("status", "", "Filter by review status (pending, approved, rejected, suspended)")
	cmd.Flags().String("search", "", "Filter by name or email")

	return cmd
}

// ApproveVolunteerCmd creates the approveVolunteer command
func ApproveVolunteerCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "approveVolunteer <volunteer_id>",
		Short: "Approve a pending volunteer application",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return reviewVolunteer(app, args[0], model.StatusApproved)
		},
	}
}

// RejectVolunteerCmd creates the rejectVolunteer command
func RejectVolunteerCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "rejectVolunteer <volunteer_id>",
		Short: "Reject a pending volunteer application",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return reviewVolunteer(app, args[0], model.StatusRejected)
		},
	}
}

func reviewVolunteer(app *AppContext, volunteerID string, status model.Status) error {
	if err := authorize(app, router.RequireAdmin); err != nil {
		return err
	}

	updated, err := services.ReviewVolunteer(app.Ctx, app.API, app.Console, app.Logger, volunteerID, status)
	if err != nil {
		return err
	}

	fmt.Printf("✓ %s is now %s\n", updated.Name, updated.Status)
	return nil
}
