package onboarding

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/volunteerhub/volunteerhub-cli/pkg/core/model"
)

// StepSaver issues the per-step partial saves and the final aggregate
// submission to the backend
type StepSaver interface {
	SavePersonalInfo(ctx context.Context, info model.PersonalInfo) (model.PersonalInfo, error)
	SaveContactInfo(ctx context.Context, info model.ContactInfo) (model.ContactInfo, error)
	SaveSkills(ctx context.Context, skills SkillsAvailability) (SkillsAvailability, error)
	SubmitApplication(ctx context.Context, draft Draft, idempotencyKey string) (*model.Identity, string, error)
}

// Machine drives the applicant through the four ordered wizard steps.
// Every mutation goes through a named transition; overlapping submit
// attempts queue on the submit lock so they cannot race the step
// ordering.
type Machine struct {
	mu       sync.Mutex // guards draft and flags
	submitMu sync.Mutex // serializes step submissions

	draft        Draft
	submitting   bool
	lastError    string
	allowedSlots map[string]bool
	logger       *zap.Logger
}

// NewMachine creates a machine holding an empty draft at step 1.
// allowedAvailability, when non-empty, restricts step-3 availability
// selections to the configured slot keys.
func NewMachine(allowedAvailability []string, logger *zap.Logger) *Machine {
	m := &Machine{logger: logger}
	if len(allowedAvailability) > 0 {
		m.allowedSlots = make(map[string]bool, len(allowedAvailability))
		for _, key := range allowedAvailability {
			m.allowedSlots[key] = true
		}
	}
	m.resetLocked()
	return m
}

// Draft returns a copy of the current draft
func (m *Machine) Draft() Draft {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.draft
}

// CurrentStep returns the current step index, always in [1,4]
func (m *Machine) CurrentStep() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.draft.CurrentStep
}

// IsSubmitting reports whether a step submission is in flight
func (m *Machine) IsSubmitting() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.submitting
}

// LastError returns the most recent step-local error message, if any
func (m *Machine) LastError() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastError
}

// UpdatePersonalInfo merges a partial update into the personal info section
func (m *Machine) UpdatePersonalInfo(patch PersonalInfoPatch) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if patch.Fullname != nil {
		m.draft.PersonalInfo.Fullname = *patch.Fullname
	}
	if patch.Age != nil {
		m.draft.PersonalInfo.Age = *patch.Age
	}
	if patch.Gender != nil {
		m.draft.PersonalInfo.Gender = *patch.Gender
	}
	if patch.Photo != nil {
		m.draft.PersonalInfo.Photo = *patch.Photo
	}
}

// UpdateContactInfo merges a partial update into the contact info section
func (m *Machine) UpdateContactInfo(patch ContactInfoPatch) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if patch.Phone != nil {
		m.draft.ContactInfo.Phone = *patch.Phone
	}
	if patch.Email != nil {
		m.draft.ContactInfo.Email = *patch.Email
	}
	if patch.Address != nil {
		m.draft.ContactInfo.Address = *patch.Address
	}
	if patch.Location != nil {
		loc := *patch.Location
		m.draft.ContactInfo.Location = &loc
	}
}

// UpdateSkills merges a partial update into the skills/availability section
func (m *Machine) UpdateSkills(patch SkillsPatch) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if patch.Skills != nil {
		m.draft.SkillsAvailability.Skills = patch.Skills
	}
	if patch.Availability != nil {
		m.draft.SkillsAvailability.Availability = patch.Availability
	}
	if patch.CPRTrained != nil {
		m.draft.SkillsAvailability.CPRTrained = *patch.CPRTrained
	}
	if patch.FirstAidTrained != nil {
		m.draft.SkillsAvailability.FirstAidTrained = *patch.FirstAidTrained
	}
}

// UpdateDocuments merges a partial update into the documents section
func (m *Machine) UpdateDocuments(patch DocumentsPatch) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if patch.IDDocument != nil {
		m.draft.Documents.IDDocument = *patch.IDDocument
	}
	if patch.TermsAccepted != nil {
		m.draft.Documents.TermsAccepted = *patch.TermsAccepted
	}
	if patch.BackgroundCheckConsent != nil {
		m.draft.Documents.BackgroundCheckConsent = *patch.BackgroundCheckConsent
	}
}

// CanAdvance reports whether the current step's required-field
// predicate holds. A nil error means the advance control is enabled.
func (m *Machine) CanAdvance() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return checkStep(m.draft.CurrentStep, &m.draft, m.allowedSlots)
}

// Next advances one step locally when the current step's gate holds.
// It is a no-op at step 4, where the wizard finalizes instead of
// advancing. The wizard's normal forward path is SubmitStep, which
// saves before advancing; Next exists for re-walking already-saved
// steps after going back.
func (m *Machine) Next() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := checkStep(m.draft.CurrentStep, &m.draft, m.allowedSlots); err != nil {
		return err
	}
	if m.draft.CurrentStep < StepDocuments {
		m.draft.CurrentStep++
	}
	return nil
}

// Prev retreats one step. It is a no-op at step 1 and never discards
// already-entered data for the step being left.
func (m *Machine) Prev() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.draft.CurrentStep > StepPersonalInfo {
		m.draft.CurrentStep--
	}
}

// Reset returns the machine to an empty draft at step 1 with a fresh
// draft ID
func (m *Machine) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resetLocked()
}

func (m *Machine) resetLocked() {
	m.draft = Draft{
		ID:          uuid.New().String(),
		CurrentStep: StepPersonalInfo,
	}
	m.lastError = ""
	m.submitting = false
}

// SubmitStep issues the current step's partial save and, on success,
// merges the returned data and advances one step. On failure the step
// index and draft are unchanged and the error is step-local and
// retryable. Calling SubmitStep on step 4 is an error; the documents
// step finalizes via Finalize instead.
//
// Overlapping calls queue on the submit lock rather than racing.
func (m *Machine) SubmitStep(ctx context.Context, saver StepSaver) error {
	m.submitMu.Lock()
	defer m.submitMu.Unlock()

	if err := m.CanAdvance(); err != nil {
		return err
	}

	m.setSubmitting(true)
	defer m.setSubmitting(false)

	draft := m.Draft()

	switch draft.CurrentStep {
	case StepPersonalInfo:
		saved, err := saver.SavePersonalInfo(ctx, draft.PersonalInfo)
		if err != nil {
			return m.failStep("failed to save personal info", err)
		}
		m.mu.Lock()
		m.draft.PersonalInfo = saved
		m.advanceLocked()
		m.mu.Unlock()

	case StepContactInfo:
		saved, err := saver.SaveContactInfo(ctx, draft.ContactInfo)
		if err != nil {
			return m.failStep("failed to save contact info", err)
		}
		m.mu.Lock()
		if saved.Location == nil {
			saved.Location = m.draft.ContactInfo.Location
		}
		m.draft.ContactInfo = saved
		m.advanceLocked()
		m.mu.Unlock()

	case StepSkills:
		saved, err := saver.SaveSkills(ctx, draft.SkillsAvailability)
		if err != nil {
			return m.failStep("failed to save skills", err)
		}
		m.mu.Lock()
		m.draft.SkillsAvailability = saved
		m.advanceLocked()
		m.mu.Unlock()

	case StepDocuments:
		return fmt.Errorf("documents step submits via Finalize, not SubmitStep")
	}

	m.logger.Info("Onboarding step saved", zap.Int("current_step", m.CurrentStep()))
	return nil
}

// Finalize runs the terminal transition of step 4: it aggregates the
// entire draft into one submission carrying the draft's idempotency
// key. On success the machine resets to an empty draft and the
// completed volunteer identity and fresh token are returned for the
// session store to adopt. On failure the draft stays intact on step 4
// and the attempt is retryable.
func (m *Machine) Finalize(ctx context.Context, saver StepSaver) (*model.Identity, string, error) {
	m.submitMu.Lock()
	defer m.submitMu.Unlock()

	if step := m.CurrentStep(); step != StepDocuments {
		return nil, "", fmt.Errorf("cannot finalize from step %d", step)
	}
	if err := m.CanAdvance(); err != nil {
		return nil, "", err
	}

	m.setSubmitting(true)
	defer m.setSubmitting(false)

	draft := m.Draft()

	identity, token, err := saver.SubmitApplication(ctx, draft, draft.ID)
	if err != nil {
		return nil, "", m.failStep("failed to submit application", err)
	}

	m.Reset()
	m.logger.Info("Onboarding application submitted", zap.String("volunteer_id", identity.ID))
	return identity, token, nil
}

// advanceLocked moves forward one step, bounded at step 4. The caller
// holds m.mu.
func (m *Machine) advanceLocked() {
	if m.draft.CurrentStep < StepDocuments {
		m.draft.CurrentStep++
	}
	m.lastError = ""
}

func (m *Machine) setSubmitting(v bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.submitting = v
}

func (m *Machine) failStep(msg string, err error) error {
	wrapped := fmt.Errorf("%s: %w", msg, err)
	m.mu.Lock()
	m.lastError = wrapped.Error()
	m.mu.Unlock()
	m.logger.Warn("Onboarding step failed", zap.Error(err))
	return wrapped
}
