package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/volunteerhub/volunteerhub-cli/pkg/core/model"
	"github.com/volunteerhub/volunteerhub-cli/pkg/core/services"
	"github.com/volunteerhub/volunteerhub-cli/pkg/router"
)

// ListProgramsCmd creates the listPrograms command
func ListProgramsCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "listPrograms",
		Short: "List the organization's volunteering programs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := authorize(app, router.RequireOrganization); err != nil {
				return err
			}

			status, _ := cmd.Flags().GetString("status")

			programs, err := app.API.GetPrograms(app.Ctx, status)
			if err != nil {
				return fmt.Errorf("failed to list programs: %w", err)
			}

			fmt.Printf("\nFound %d programs:\n\n", len(programs))
			for _, program := range programs {
				fmt.Printf("- %s (%s) %d/%d volunteers\n",
					program.Title, program.Status, program.CurrentVolunteers, program.MaxVolunteers)
			}
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().String("status", "", "Filter by program status")

	return cmd
}

// CreateProgramCmd creates the createProgram command
func CreateProgramCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "createProgram <title>",
		Short: "Create a new volunteering program",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := authorize(app, router.RequireOrganization); err != nil {
				return err
			}

			description, _ := cmd.Flags().GetString("description")
			category, _ := cmd.Flags().GetString("category")
			urgency, _ := cmd.Flags().GetString("urgency")
			maxVolunteers, _ := cmd.Flags().GetInt("max-volunteers")

			program := model.Program{
				Title:         args[0],
				Description:   description,
				Category:      category,
				Urgency:       urgency,
				MaxVolunteers: maxVolunteers,
			}

			created, err := services.CreateProgram(app.Ctx, app.API, app.Logger, program)
			if err != nil {
				return err
			}

			fmt.Printf("✓ Program created: %s (%s)\n", created.Title, created.ID)
			return nil
		},
	}

	cmd.Flags().String("description", "", "What the program does")
	cmd.Flags().String("category", "", "Program category")
	cmd.Flags().String("urgency", "", "Program urgency")
	cmd.Flags().Int("max-volunteers", 0, "Maximum number of volunteers")

	return cmd
}
