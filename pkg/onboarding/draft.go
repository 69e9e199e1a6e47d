package onboarding

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/volunteerhub/volunteerhub-cli/pkg/core/model"
)

// Wizard step indices. Steps are strictly ordered and bounded.
const (
	StepPersonalInfo = 1
	StepContactInfo  = 2
	StepSkills       = 3
	StepDocuments    = 4
)

// ErrStepIncomplete is returned when a step's required fields are not
// yet filled in and the advance transition is therefore disabled
var ErrStepIncomplete = errors.New("onboarding: step requirements not met")

// SkillsAvailability is the third wizard section
type SkillsAvailability struct {
	Skills          []string `json:"skills"`
	Availability    []string `json:"availability"`
	CPRTrained      bool     `json:"cprTrained"`
	FirstAidTrained bool     `json:"firstAidTrained"`
}

// DocumentsSection is the final wizard section
type DocumentsSection struct {
	IDDocument             string `json:"idDocument,omitempty"`
	TermsAccepted          bool   `json:"termsAccepted"`
	BackgroundCheckConsent bool   `json:"backgroundCheckConsent"`
}

// Draft is the accumulating applicant record across the four wizard
// steps. The ID doubles as the idempotency key for the final aggregate
// submission, so retrying a failed finalize reuses the same key.
type Draft struct {
	ID                 string             `json:"id"`
	CurrentStep        int                `json:"currentStep"`
	PersonalInfo       model.PersonalInfo `json:"personalInfo"`
	ContactInfo        model.ContactInfo  `json:"contactInfo"`
	SkillsAvailability SkillsAvailability `json:"skillsAvailability"`
	Documents          DocumentsSection   `json:"documents"`
}

// Patch types carry partial updates; nil fields leave the existing
// value in place, matching the wizard's non-destructive merges.

// PersonalInfoPatch is a partial update to the personal info section
type PersonalInfoPatch struct {
	Fullname *string
	Age      *int
	Gender   *string
	Photo    *string
}

// ContactInfoPatch is a partial update to the contact info section
type ContactInfoPatch struct {
	Phone    *string
	Email    *string
	Address  *string
	Location *model.Location
}

// SkillsPatch is a partial update to the skills/availability section
type SkillsPatch struct {
	Skills          []string
	Availability    []string
	CPRTrained      *bool
	FirstAidTrained *bool
}

// DocumentsPatch is a partial update to the documents section
type DocumentsPatch struct {
	IDDocument             *string
	TermsAccepted          *bool
	BackgroundCheckConsent *bool
}

// Step gate shapes. Each step's required-field predicate is expressed
// as validator tags over the fields that must be present before the
// advance transition is enabled.

type personalInfoGate struct {
	Fullname string `validate:"required"`
	Age      int    `validate:"required,gt=0"`
	Gender   string `validate:"required"`
}

type contactInfoGate struct {
	Phone    string          `validate:"required"`
	Email    string          `validate:"required,email"`
	Address  string          `validate:"required"`
	Location *model.Location `validate:"required"`
}

type skillsGate struct {
	Skills       []string `validate:"required,min=1"`
	Availability []string `validate:"required,min=1"`
}

type documentsGate struct {
	IDDocument             string `validate:"required"`
	TermsAccepted          bool   `validate:"eq=true"`
	BackgroundCheckConsent bool   `validate:"eq=true"`
}

var validate = validator.New()

// checkStep runs the required-field predicate for the given step
// against the draft. allowedAvailability, when non-empty, restricts
// availability selections to the configured slot keys.
func checkStep(step int, draft *Draft, allowedAvailability map[string]bool) error {
	var err error

	switch step {
	case StepPersonalInfo:
		err = validate.Struct(personalInfoGate{
			Fullname: draft.PersonalInfo.Fullname,
			Age:      draft.PersonalInfo.Age,
			Gender:   draft.PersonalInfo.Gender,
		})
	case StepContactInfo:
		err = validate.Struct(contactInfoGate{
			Phone:    draft.ContactInfo.Phone,
			Email:    draft.ContactInfo.Email,
			Address:  draft.ContactInfo.Address,
			Location: draft.ContactInfo.Location,
		})
	case StepSkills:
		err = validate.Struct(skillsGate{
			Skills:       draft.SkillsAvailability.Skills,
			Availability: draft.SkillsAvailability.Availability,
		})
		if err == nil && len(allowedAvailability) > 0 {
			for _, slot := range draft.SkillsAvailability.Availability {
				if !allowedAvailability[slot] {
					return fmt.Errorf("%w: unknown availability slot %q", ErrStepIncomplete, slot)
				}
			}
		}
	case StepDocuments:
		err = validate.Struct(documentsGate{
			IDDocument:             draft.Documents.IDDocument,
			TermsAccepted:          draft.Documents.TermsAccepted,
			BackgroundCheckConsent: draft.Documents.BackgroundCheckConsent,
		})
	default:
		return fmt.Errorf("invalid step %d", step)
	}

	if err != nil {
		return fmt.Errorf("%w: %v", ErrStepIncomplete, err)
	}
	return nil
}
