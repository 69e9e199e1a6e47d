package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/volunteerhub/volunteerhub-cli/pkg/apiclient"
	"github.com/volunteerhub/volunteerhub-cli/pkg/core/model"
)

// mockAdminAPI implements a test double for AdminAPI
type mockAdminAPI struct {
	stats    model.DashboardStats
	statsErr error

	volunteers    []model.VolunteerSummary
	volunteersErr error

	updateErr error
}

func (m *mockAdminAPI) GetDashboardStats(ctx context.Context) (model.DashboardStats, error) {
	if m.statsErr != nil {
		return model.DashboardStats{}, m.statsErr
	}
	return m.stats, nil
}

func (m *mockAdminAPI) GetVolunteers(ctx context.Context, filter apiclient.VolunteerFilter) ([]model.VolunteerSummary, error) {
	if m.volunteersErr != nil {
		return nil, m.volunteersErr
	}
	return m.volunteers, nil
}

func (m *mockAdminAPI) UpdateVolunteerStatus(ctx context.Context, volunteerID string, status model.Status) (model.VolunteerSummary, error) {
	if m.updateErr != nil {
		return model.VolunteerSummary{}, m.updateErr
	}
	return model.VolunteerSummary{ID: volunteerID, Status: status}, nil
}

func (m *mockAdminAPI) GetOrganizations(ctx context.Context, status string) ([]model.Organization, error) {
	return nil, nil
}

func (m *mockAdminAPI) UpdateOrganizationStatus(ctx context.Context, organizationID string, status model.Status) (model.Organization, error) {
	if m.updateErr != nil {
		return model.Organization{}, m.updateErr
	}
	return model.Organization{ID: organizationID, Status: status}, nil
}

func TestFetchStats_CachesOnSuccess(t *testing.T) {
	api := &mockAdminAPI{stats: model.DashboardStats{Total: 12, Pending: 3}}
	console := NewAdminConsole()

	stats, err := FetchStats(context.Background(), api, console, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, 12, stats.Total)
	assert.Equal(t, stats, console.Stats())
}

func TestFetchStats_FailureLeavesCacheUntouched(t *testing.T) {
	console := NewAdminConsole()
	console.SetStats(model.DashboardStats{Total: 5})

	api := &mockAdminAPI{statsErr: errors.New("boom")}
	_, err := FetchStats(context.Background(), api, console, zap.NewNop())
	require.Error(t, err)

	assert.Equal(t, 5, console.Stats().Total)
}

func TestFetchVolunteers_CachesListing(t *testing.T) {
	api := &mockAdminAPI{volunteers: []model.VolunteerSummary{
		{ID: "vol-1", Status: model.StatusPending},
		{ID: "vol-2", Status: model.StatusApproved},
	}}
	console := NewAdminConsole()

	listing, err := FetchVolunteers(context.Background(), api, console, zap.NewNop(), apiclient.VolunteerFilter{Status: "all"})
	require.NoError(t, err)
	assert.Len(t, listing, 2)
	assert.Equal(t, listing, console.Volunteers())
}

func TestReviewVolunteer_UpdatesCachedStatus(t *testing.T) {
	api := &mockAdminAPI{}
	console := NewAdminConsole()
	console.SetVolunteers([]model.VolunteerSummary{
		{ID: "vol-1", Status: model.StatusPending},
		{ID: "vol-2", Status: model.StatusPending},
	})

	updated, err := ReviewVolunteer(context.Background(), api, console, zap.NewNop(), "vol-2", model.StatusApproved)
	require.NoError(t, err)
	assert.Equal(t, model.StatusApproved, updated.Status)

	assert.Equal(t, model.StatusPending, console.Volunteers()[0].Status)
	assert.Equal(t, model.StatusApproved, console.Volunteers()[1].Status)
}

func TestReviewVolunteer_InvalidStatus(t *testing.T) {
	_, err := ReviewVolunteer(context.Background(), &mockAdminAPI{}, NewAdminConsole(), zap.NewNop(), "vol-1", model.Status("banned"))
	assert.Error(t, err)
}

func TestReviewVolunteer_FailureLeavesCacheUntouched(t *testing.T) {
	api := &mockAdminAPI{updateErr: errors.New("boom")}
	console := NewAdminConsole()
	console.SetVolunteers([]model.VolunteerSummary{{ID: "vol-1", Status: model.StatusPending}})

	_, err := ReviewVolunteer(context.Background(), api, console, zap.NewNop(), "vol-1", model.StatusApproved)
	require.Error(t, err)
	assert.Equal(t, model.StatusPending, console.Volunteers()[0].Status)
}

func TestReviewOrganization(t *testing.T) {
	updated, err := ReviewOrganization(context.Background(), &mockAdminAPI{}, zap.NewNop(), "org-1", model.StatusApproved)
	require.NoError(t, err)
	assert.Equal(t, model.StatusApproved, updated.Status)
}
