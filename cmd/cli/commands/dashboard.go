package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/volunteerhub/volunteerhub-cli/pkg/core/services"
	"github.com/volunteerhub/volunteerhub-cli/pkg/router"
)

// DashboardCmd creates the dashboard command. The view is derived from
// session state, so the same command lands a volunteer, an admin, or an
// organization on their own dashboard - or on the wizard or review
// notices when the account is not there yet.
func DashboardCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show the dashboard for the signed-in account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			view := router.Resolve(app.Sessions)

			switch view {
			case router.ViewLogin:
				fmt.Println("Not signed in - use 'login' first.")
				return nil

			case router.ViewOnboarding:
				fmt.Println("Your volunteer profile is incomplete - run 'onboard' to finish it.")
				return nil

			case router.ViewApprovalPending:
				fmt.Println("⏳ Your application is pending admin approval. Check back later.")
				return nil

			case router.ViewApplicationRejected:
				fmt.Println("Your application was not approved. Contact support for details.")
				return nil

			case router.ViewVolunteerDashboard:
				return showVolunteerDashboard(app)

			case router.ViewAdminDashboard:
				return showAdminDashboard(app)

			case router.ViewOrganizationDashboard:
				return showOrganizationDashboard(app)
			}

			return fmt.Errorf("unhandled view %q", view)
		},
	}
}

func showVolunteerDashboard(app *AppContext) error {
	dashboard, err := services.FetchVolunteerDashboard(app.Ctx, app.API, app.Sessions, app.Logger)
	if err != nil {
		return err
	}

	fmt.Printf("\nVolunteer dashboard - %s\n\n", dashboard.Volunteer.Name)
	fmt.Printf("Profile completion: %d%%\n", dashboard.Stats.ProfileCompletion)
	fmt.Printf("Total responses:    %d\n", dashboard.Stats.TotalResponses)
	if dashboard.Stats.ResponseTime != "" {
		fmt.Printf("Response time:      %s\n", dashboard.Stats.ResponseTime)
	}

	emergency := "off"
	if dashboard.Volunteer.Emergency != nil && dashboard.Volunteer.Emergency.IsAvailable {
		emergency = "on"
	}
	fmt.Printf("Emergency standby:  %s\n", emergency)

	if len(dashboard.RecentAlerts) > 0 {
		fmt.Printf("\nRecent alerts:\n")
		for _, alert := range dashboard.RecentAlerts {
			fmt.Printf("  [%s] %s - %s (%s)\n", alert.Priority, alert.Type, alert.Location.Address, alert.Status)
		}
	} else {
		fmt.Println("\nNo recent alerts.")
	}
	fmt.Println()

	return nil
}

func showAdminDashboard(app *AppContext) error {
	stats, err := services.FetchStats(app.Ctx, app.API, app.Console, app.Logger)
	if err != nil {
		return err
	}

	fmt.Printf("\nAdmin dashboard\n\n")
	fmt.Printf("Total volunteers:   %d\n", stats.Total)
	fmt.Printf("Pending review:     %d\n", stats.Pending)
	fmt.Printf("Approved:           %d\n", stats.Approved)
	fmt.Printf("Active today:       %d\n", stats.Active)
	fmt.Printf("Responses today:    %d\n", stats.TodayResponses)
	if stats.ResponseTime != "" {
		fmt.Printf("Avg response time:  %s\n", stats.ResponseTime)
	}
	fmt.Println()

	return nil
}

func showOrganizationDashboard(app *AppContext) error {
	dashboard, err := services.FetchOrganizationDashboard(app.Ctx, app.API, app.Logger)
	if err != nil {
		return err
	}

	fmt.Printf("\nOrganization dashboard - %s\n\n", dashboard.Organization.Name)
	fmt.Printf("Total programs:     %d\n", dashboard.Stats.TotalPrograms)
	fmt.Printf("Active programs:    %d\n", dashboard.Stats.ActivePrograms)
	fmt.Printf("Completed programs: %d\n", dashboard.Stats.CompletedPrograms)
	fmt.Printf("Applications:       %d\n", dashboard.Stats.TotalApplications)

	if len(dashboard.Programs) > 0 {
		fmt.Printf("\nPrograms:\n")
		for _, program := range dashboard.Programs {
			fmt.Printf("  - %s (%s) %d/%d volunteers\n",
				program.Title, program.Status, program.CurrentVolunteers, program.MaxVolunteers)
		}
	}
	fmt.Println()

	return nil
}
