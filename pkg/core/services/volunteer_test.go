package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/volunteerhub/volunteerhub-cli/pkg/core/model"
)

// mockVolunteerAPI implements a test double for VolunteerAPI
type mockVolunteerAPI struct {
	dashboard    model.VolunteerDashboard
	dashboardErr error

	toggleResult bool
	toggleErr    error
	toggledIDs   []string

	updateResult  *model.Identity
	updateErr     error
	updateCalls   []string
	updatePayload map[string]any
}

func (m *mockVolunteerAPI) GetVolunteerDashboard(ctx context.Context, userID string) (model.VolunteerDashboard, error) {
	if m.dashboardErr != nil {
		return model.VolunteerDashboard{}, m.dashboardErr
	}
	return m.dashboard, nil
}

func (m *mockVolunteerAPI) ToggleEmergencyStatus(ctx context.Context, userID string) (bool, error) {
	if m.toggleErr != nil {
		return false, m.toggleErr
	}
	m.toggledIDs = append(m.toggledIDs, userID)
	return m.toggleResult, nil
}

func (m *mockVolunteerAPI) UpdateProfile(ctx context.Context, userID string, update map[string]any) (*model.Identity, error) {
	if m.updateErr != nil {
		return nil, m.updateErr
	}
	m.updateCalls = append(m.updateCalls, userID)
	m.updatePayload = update
	return m.updateResult, nil
}

func TestFetchVolunteerDashboard(t *testing.T) {
	api := &mockVolunteerAPI{
		dashboard: model.VolunteerDashboard{
			Volunteer:    model.Identity{ID: "vol-1"},
			RecentAlerts: []model.Alert{{ID: "alert-1"}},
		},
	}
	sessions := &mockSessionStore{identity: &model.Identity{ID: "vol-1", Role: model.RoleVolunteer}}

	dashboard, err := FetchVolunteerDashboard(context.Background(), api, sessions, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, "vol-1", dashboard.Volunteer.ID)
	assert.Len(t, dashboard.RecentAlerts, 1)
}

func TestFetchVolunteerDashboard_RequiresSession(t *testing.T) {
	_, err := FetchVolunteerDashboard(context.Background(), &mockVolunteerAPI{}, &mockSessionStore{}, zap.NewNop())
	assert.Error(t, err)
}

func TestToggleEmergency_RefreshesIdentityWithoutNewToken(t *testing.T) {
	api := &mockVolunteerAPI{toggleResult: true}
	sessions := &mockSessionStore{
		identity: &model.Identity{ID: "vol-1", Role: model.RoleVolunteer},
		token:    "existing-token",
	}

	available, err := ToggleEmergency(context.Background(), api, sessions, zap.NewNop())
	require.NoError(t, err)
	assert.True(t, available)

	assert.Equal(t, []string{"vol-1"}, api.toggledIDs)
	require.NotNil(t, sessions.identity.Emergency)
	assert.True(t, sessions.identity.Emergency.IsAvailable)
	// The identity refresh reuses the stored token
	assert.Equal(t, "existing-token", sessions.token)
}

func TestUpdateProfile_RefreshesSessionIdentity(t *testing.T) {
	refreshed := &model.Identity{
		ID:                "vol-1",
		Role:              model.RoleVolunteer,
		Name:              "Jane Doe",
		ProfileCompletion: 90,
	}
	api := &mockVolunteerAPI{updateResult: refreshed}
	sessions := &mockSessionStore{
		identity: &model.Identity{ID: "vol-1", Role: model.RoleVolunteer, ProfileCompletion: 60},
		token:    "existing-token",
	}

	update := map[string]any{
		"personalInfo": map[string]any{"fullname": "Jane Doe"},
	}
	identity, err := UpdateProfile(context.Background(), api, sessions, zap.NewNop(), update)
	require.NoError(t, err)
	assert.Equal(t, 90, identity.ProfileCompletion)

	assert.Equal(t, []string{"vol-1"}, api.updateCalls)
	assert.Equal(t, update, api.updatePayload)

	// Refreshed identity adopted without re-authentication
	assert.Equal(t, refreshed, sessions.identity)
	assert.Equal(t, "existing-token", sessions.token)
}

func TestUpdateProfile_EmptyUpdateRejected(t *testing.T) {
	api := &mockVolunteerAPI{}
	sessions := &mockSessionStore{identity: &model.Identity{ID: "vol-1"}}

	_, err := UpdateProfile(context.Background(), api, sessions, zap.NewNop(), map[string]any{})
	assert.Error(t, err)
	assert.Empty(t, api.updateCalls)
}

func TestUpdateProfile_RequiresSession(t *testing.T) {
	update := map[string]any{"personalInfo": map[string]any{"age": 30}}
	_, err := UpdateProfile(context.Background(), &mockVolunteerAPI{}, &mockSessionStore{}, zap.NewNop(), update)
	assert.Error(t, err)
}

func TestUpdateProfile_FailureLeavesSessionUntouched(t *testing.T) {
	api := &mockVolunteerAPI{updateErr: errors.New("boom")}
	before := &model.Identity{ID: "vol-1", ProfileCompletion: 60}
	sessions := &mockSessionStore{identity: before}

	update := map[string]any{"personalInfo": map[string]any{"age": 30}}
	_, err := UpdateProfile(context.Background(), api, sessions, zap.NewNop(), update)
	require.Error(t, err)
	assert.Equal(t, before, sessions.identity)
}

func TestToggleEmergency_FailureLeavesIdentityUntouched(t *testing.T) {
	api := &mockVolunteerAPI{toggleErr: errors.New("boom")}
	sessions := &mockSessionStore{identity: &model.Identity{ID: "vol-1"}}

	_, err := ToggleEmergency(context.Background(), api, sessions, zap.NewNop())
	require.Error(t, err)
	assert.Nil(t, sessions.identity.Emergency)
}
