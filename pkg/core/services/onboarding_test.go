package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/volunteerhub/volunteerhub-cli/pkg/core/model"
	"github.com/volunteerhub/volunteerhub-cli/pkg/onboarding"
	"github.com/volunteerhub/volunteerhub-cli/pkg/router"
)

// mockStepSaver implements a test double for onboarding.StepSaver
type mockStepSaver struct {
	submitErr      error
	submitIdentity *model.Identity
	submitToken    string
}

func (m *mockStepSaver) SavePersonalInfo(ctx context.Context, info model.PersonalInfo) (model.PersonalInfo, error) {
	return info, nil
}

func (m *mockStepSaver) SaveContactInfo(ctx context.Context, info model.ContactInfo) (model.ContactInfo, error) {
	return info, nil
}

func (m *mockStepSaver) SaveSkills(ctx context.Context, skills onboarding.SkillsAvailability) (onboarding.SkillsAvailability, error) {
	return skills, nil
}

func (m *mockStepSaver) SubmitApplication(ctx context.Context, draft onboarding.Draft, idempotencyKey string) (*model.Identity, string, error) {
	if m.submitErr != nil {
		return nil, "", m.submitErr
	}
	return m.submitIdentity, m.submitToken, nil
}

func readyMachine(t *testing.T) *onboarding.Machine {
	t.Helper()
	m := onboarding.NewMachine(nil, zap.NewNop())

	fullname, age, gender := "Jane Doe", 25, "female"
	m.UpdatePersonalInfo(onboarding.PersonalInfoPatch{Fullname: &fullname, Age: &age, Gender: &gender})

	phone, email, address := "07700900000", "jane@example.com", "1 High Street"
	m.UpdateContactInfo(onboarding.ContactInfoPatch{
		Phone: &phone, Email: &email, Address: &address,
		Location: &model.Location{Lat: 51.55, Lng: 0.07},
	})

	m.UpdateSkills(onboarding.SkillsPatch{
		Skills:       []string{"first-aid"},
		Availability: []string{"weekends"},
	})

	doc := "passport.pdf"
	accepted := true
	m.UpdateDocuments(onboarding.DocumentsPatch{
		IDDocument:             &doc,
		TermsAccepted:          &accepted,
		BackgroundCheckConsent: &accepted,
	})

	require.NoError(t, m.Next())
	require.NoError(t, m.Next())
	require.NoError(t, m.Next())
	require.Equal(t, onboarding.StepDocuments, m.CurrentStep())
	return m
}

func TestCompleteOnboarding(t *testing.T) {
	machine := readyMachine(t)
	saver := &mockStepSaver{
		submitIdentity: &model.Identity{
			ID:                 "vol-1",
			Role:               model.RoleVolunteer,
			Status:             model.StatusPending,
			OnboardingComplete: true,
		},
		submitToken: "fresh-token",
	}
	sessions := &mockSessionStore{}

	view, err := CompleteOnboarding(context.Background(), machine, saver, sessions, zap.NewNop())
	require.NoError(t, err)

	// Completion triggers admin review, so the destination is the
	// pending-approval view rather than the dashboard
	assert.Equal(t, router.ViewApprovalPending, view)

	// The session now holds the completed volunteer and fresh token
	require.NotNil(t, sessions.identity)
	assert.Equal(t, "vol-1", sessions.identity.ID)
	assert.Equal(t, "fresh-token", sessions.token)

	// The draft reset to an empty step 1
	assert.Equal(t, onboarding.StepPersonalInfo, machine.CurrentStep())
	assert.Empty(t, machine.Draft().PersonalInfo.Fullname)
}

func TestCompleteOnboarding_FailureKeepsDraftAndSession(t *testing.T) {
	machine := readyMachine(t)
	saver := &mockStepSaver{submitErr: errors.New("backend down")}
	sessions := &mockSessionStore{}

	_, err := CompleteOnboarding(context.Background(), machine, saver, sessions, zap.NewNop())
	require.Error(t, err)

	assert.Nil(t, sessions.identity)
	assert.Equal(t, onboarding.StepDocuments, machine.CurrentStep())
	assert.Equal(t, "Jane Doe", machine.Draft().PersonalInfo.Fullname)
}
