package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/volunteerhub/volunteerhub-cli/pkg/core/services"
	"github.com/volunteerhub/volunteerhub-cli/pkg/router"
)

// UpdateProfileCmd creates the updateProfile command. Only the flags
// that were set end up in the partial update; the backend merges them
// into the stored profile section by section.
func UpdateProfileCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "updateProfile",
		Short: "Edit the signed-in volunteer's profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := authorize(app, router.RequireVolunteer); err != nil {
				return err
			}

			update := map[string]any{}

			personalInfo := map[string]any{}
			if cmd.Flags().Changed("fullname") {
				personalInfo["fullname"], _ = cmd.Flags().GetString("fullname")
			}
			if cmd.Flags().Changed("age") {
				personalInfo["age"], _ = cmd.Flags().GetInt("age")
			}
			if cmd.Flags().Changed("gender") {
				personalInfo["gender"], _ = cmd.Flags().GetString("gender")
			}
			if len(personalInfo) > 0 {
				update["personalInfo"] = personalInfo
			}

			contactInfo := map[string]any{}
			if cmd.Flags().Changed("phone") {
				contactInfo["phone"], _ = cmd.Flags().GetString("phone")
			}
			if cmd.Flags().Changed("email") {
				contactInfo["email"], _ = cmd.Flags().GetString("email")
			}
			if cmd.Flags().Changed("address") {
				contactInfo["address"], _ = cmd.Flags().GetString("address")
			}
			if len(contactInfo) > 0 {
				update["contactInfo"] = contactInfo
			}

			skills := map[string]any{}
			if cmd.Flags().Changed("skills") {
				list, _ := cmd.Flags().GetStringSlice("skills")
				skills["skillsList"] = list
			}
			if cmd.Flags().Changed("availability") {
				list, _ := cmd.Flags().GetStringSlice("availability")
				skills["availability"] = list
			}
			if len(skills) > 0 {
				update["skills"] = skills
			}

			identity, err := services.UpdateProfile(app.Ctx, app.API, app.Sessions, app.Logger, update)
			if err != nil {
				return err
			}

			fmt.Printf("✓ Profile updated for %s\n", identity.Name)
			if identity.ProfileCompletion > 0 {
				fmt.Printf("Profile completion: %d%%\n", identity.ProfileCompletion)
			}
			return nil
		},
	}

	cmd.Flags().String("fullname", "", "Full name")
	cmd.Flags().Int("age", 0, "Age")
	cmd.Flags().String("gender", "", "Gender")
	cmd.Flags().String("phone", "", "Phone number")
	cmd.Flags().String("email", "", "Contact email")
	cmd.Flags().String("address", "", "Address")
	cmd.Flags().StringSlice("skills", nil, "Skills (comma-separated)")
	cmd.Flags().StringSlice("availability", nil, "Availability slot keys (comma-separated)")

	return cmd
}
