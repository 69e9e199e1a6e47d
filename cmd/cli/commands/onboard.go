package commands

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/volunteerhub/volunteerhub-cli/pkg/core/model"
	"github.com/volunteerhub/volunteerhub-cli/pkg/core/services"
	"github.com/volunteerhub/volunteerhub-cli/pkg/onboarding"
	"github.com/volunteerhub/volunteerhub-cli/pkg/router"
)

var errInputClosed = errors.New("input closed")

// OnboardCmd creates the onboard command: an interactive wizard that
// walks a volunteer through the four profile steps and submits the
// application at the end
func OnboardCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "onboard",
		Short: "Complete the four-step volunteer onboarding wizard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := authorize(app, router.RequireVolunteer); err != nil {
				return err
			}

			if app.Sessions.Identity().OnboardingComplete {
				fmt.Println("Onboarding is already complete.")
				return nil
			}

			err := runWizard(app, bufio.NewScanner(os.Stdin))
			if errors.Is(err, errInputClosed) {
				fmt.Println("\nWizard interrupted - progress on saved steps is kept.")
				return nil
			}
			return err
		},
	}
}

func runWizard(app *AppContext, scanner *bufio.Scanner) error {
	fmt.Println("\n🚀 Volunteer onboarding")
	fmt.Println("Press enter to keep a field's current value.")
	fmt.Println("Type 'back' at any prompt to return to the previous step.")

	for {
		step := app.Machine.CurrentStep()
		fmt.Printf("\n── Step %d of 4: %s ──\n", step, stepTitle(step))

		goBack, err := collectStep(app, scanner, step)
		if err != nil {
			return err
		}
		if goBack {
			app.Machine.Prev()
			continue
		}

		if step == onboarding.StepDocuments {
			view, err := services.CompleteOnboarding(app.Ctx, app.Machine, app.API, app.Sessions, app.Logger)
			if err != nil {
				fmt.Printf("❌ Submission failed: %v\n", err)
				retry, perr := promptYesNo(scanner, "Try again?")
				if perr != nil {
					return perr
				}
				if !retry {
					return nil
				}
				continue
			}

			fmt.Printf("\n✓ Application submitted!\n")
			fmt.Printf("Current view: %s\n", view)
			fmt.Println("An admin will review your application; check back with 'dashboard'.")
			return nil
		}

		if err := app.Machine.SubmitStep(app.Ctx, app.API); err != nil {
			fmt.Printf("❌ Could not save step: %v\n", err)
			retry, perr := promptYesNo(scanner, "Try again?")
			if perr != nil {
				return perr
			}
			if !retry {
				return nil
			}
			continue
		}
		fmt.Printf("✓ Step %d saved\n", step)
	}
}

func stepTitle(step int) string {
	switch step {
	case onboarding.StepPersonalInfo:
		return "Personal information"
	case onboarding.StepContactInfo:
		return "Contact details"
	case onboarding.StepSkills:
		return "Skills and availability"
	case onboarding.StepDocuments:
		return "Documents and consent"
	default:
		return "Unknown"
	}
}

// collectStep prompts for the current step's fields and applies them to
// the draft. Returns true when the user asked to go back a step.
func collectStep(app *AppContext, scanner *bufio.Scanner, step int) (bool, error) {
	draft := app.Machine.Draft()

	switch step {
	case onboarding.StepPersonalInfo:
		return collectPersonalInfo(app, scanner, draft)
	case onboarding.StepContactInfo:
		return collectContactInfo(app, scanner, draft)
	case onboarding.StepSkills:
		return collectSkills(app, scanner, draft)
	case onboarding.StepDocuments:
		return collectDocuments(app, scanner, draft)
	}
	return false, fmt.Errorf("unknown wizard step %d", step)
}

func collectPersonalInfo(app *AppContext, scanner *bufio.Scanner, draft onboarding.Draft) (bool, error) {
	var patch onboarding.PersonalInfoPatch

	fullname, back, err := prompt(scanner, "Full name", draft.PersonalInfo.Fullname)
	if back || err != nil {
		return back, err
	}
	if fullname != "" {
		patch.Fullname = &fullname
	}

	ageText, back, err := prompt(scanner, "Age", formatInt(draft.PersonalInfo.Age))
	if back || err != nil {
		return back, err
	}
	if ageText != "" {
		age, convErr := strconv.Atoi(ageText)
		if convErr != nil {
			fmt.Println("  (not a number, keeping previous value)")
		} else {
			patch.Age = &age
		}
	}

	gender, back, err := prompt(scanner, "Gender", draft.PersonalInfo.Gender)
	if back || err != nil {
		return back, err
	}
	if gender != "" {
		patch.Gender = &gender
	}

	app.Machine.UpdatePersonalInfo(patch)
	return false, nil
}

func collectContactInfo(app *AppContext, scanner *bufio.Scanner, draft onboarding.Draft) (bool, error) {
	var patch onboarding.ContactInfoPatch

	phone, back, err := prompt(scanner, "Phone", draft.ContactInfo.Phone)
	if back || err != nil {
		return back, err
	}
	if phone != "" {
		patch.Phone = &phone
	}

	email, back, err := prompt(scanner, "Email", draft.ContactInfo.Email)
	if back || err != nil {
		return back, err
	}
	if email != "" {
		patch.Email = &email
	}

	address, back, err := prompt(scanner, "Address", draft.ContactInfo.Address)
	if back || err != nil {
		return back, err
	}
	if address != "" {
		patch.Address = &address
	}

	coords, back, err := prompt(scanner, "Coordinates (lat,lng)", formatLocation(draft.ContactInfo.Location))
	if back || err != nil {
		return back, err
	}
	if coords != "" {
		location, convErr := parseLocation(coords)
		if convErr != nil {
			fmt.Println("  (could not parse coordinates, keeping previous value)")
		} else {
			patch.Location = location
		}
	}

	app.Machine.UpdateContactInfo(patch)
	return false, nil
}

func collectSkills(app *AppContext, scanner *bufio.Scanner, draft onboarding.Draft) (bool, error) {
	var patch onboarding.SkillsPatch

	skills, back, err := prompt(scanner, "Skills (comma-separated)", strings.Join(draft.SkillsAvailability.Skills, ","))
	if back || err != nil {
		return back, err
	}
	if skills != "" {
		patch.Skills = splitList(skills)
	}

	if keys := app.Cfg.SlotKeys(); len(keys) > 0 {
		fmt.Printf("Available slots: %s\n", strings.Join(keys, ", "))
	}
	availability, back, err := prompt(scanner, "Availability (comma-separated slot keys)", strings.Join(draft.SkillsAvailability.Availability, ","))
	if back || err != nil {
		return back, err
	}
	if availability != "" {
		patch.Availability = splitList(availability)
	}

	cpr, back, err := promptBool(scanner, "CPR trained?", draft.SkillsAvailability.CPRTrained)
	if back || err != nil {
		return back, err
	}
	patch.CPRTrained = &cpr

	firstAid, back, err := promptBool(scanner, "First aid trained?", draft.SkillsAvailability.FirstAidTrained)
	if back || err != nil {
		return back, err
	}
	patch.FirstAidTrained = &firstAid

	app.Machine.UpdateSkills(patch)
	return false, nil
}

func collectDocuments(app *AppContext, scanner *bufio.Scanner, draft onboarding.Draft) (bool, error) {
	var patch onboarding.DocumentsPatch

	idDocument, back, err := prompt(scanner, "ID document reference", draft.Documents.IDDocument)
	if back || err != nil {
		return back, err
	}
	if idDocument != "" {
		patch.IDDocument = &idDocument
	}

	terms, back, err := promptBool(scanner, "Accept the terms of service?", draft.Documents.TermsAccepted)
	if back || err != nil {
		return back, err
	}
	patch.TermsAccepted = &terms

	consent, back, err := promptBool(scanner, "Consent to a background check?", draft.Documents.BackgroundCheckConsent)
	if back || err != nil {
		return back, err
	}
	patch.BackgroundCheckConsent = &consent

	app.Machine.UpdateDocuments(patch)
	return false, nil
}

// prompt reads one line for a field. The third return is true when the
// user typed 'back'.
func prompt(scanner *bufio.Scanner, label, current string) (string, bool, error) {
	if current != "" {
		fmt.Printf("%s [%s]: ", label, current)
	} else {
		fmt.Printf("%s: ", label)
	}

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", false, fmt.Errorf("error reading input: %w", err)
		}
		return "", false, errInputClosed
	}

	line := strings.TrimSpace(scanner.Text())
	if strings.EqualFold(line, "back") {
		return "", true, nil
	}
	return line, false, nil
}

func promptBool(scanner *bufio.Scanner, label string, current bool) (bool, bool, error) {
	currentText := "n"
	if current {
		currentText = "y"
	}

	line, back, err := prompt(scanner, label+" (y/n)", currentText)
	if back || err != nil {
		return false, back, err
	}
	if line == "" {
		return current, false, nil
	}
	return strings.EqualFold(line, "y") || strings.EqualFold(line, "yes"), false, nil
}

func promptYesNo(scanner *bufio.Scanner, label string) (bool, error) {
	answer, _, err := promptBool(scanner, label, false)
	return answer, err
}

func splitList(text string) []string {
	parts := strings.Split(text, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func formatInt(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}

func formatLocation(loc *model.Location) string {
	if loc == nil {
		return ""
	}
	return fmt.Sprintf("%g,%g", loc.Lat, loc.Lng)
}

func parseLocation(text string) (*model.Location, error) {
	parts := strings.SplitN(text, ",", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("expected lat,lng")
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid latitude: %w", err)
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid longitude: %w", err)
	}

	return &model.Location{Lat: lat, Lng: lng}, nil
}
