package services

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/volunteerhub/volunteerhub-cli/pkg/apiclient"
	"github.com/volunteerhub/volunteerhub-cli/pkg/core/model"
)

// AdminAPI defines the admin-console operations
type AdminAPI interface {
	GetDashboardStats(ctx context.Context) (model.DashboardStats, error)
	GetVolunteers(ctx context.Context, filter apiclient.VolunteerFilter) ([]model.VolunteerSummary, error)
	UpdateVolunteerStatus(ctx context.Context, volunteerID string, status model.Status) (model.VolunteerSummary, error)
	GetOrganizations(ctx context.Context, status string) ([]model.Organization, error)
	UpdateOrganizationStatus(ctx context.Context, organizationID string, status model.Status) (model.Organization, error)
}

// AdminConsole caches the admin review view's state: the current
// volunteer listing and the headline stats. All mutation goes through
// the named transitions; the fetch services dispatch into it as part
// of their own completion handlers.
type AdminConsole struct {
	mu         sync.Mutex
	stats      model.DashboardStats
	volunteers []model.VolunteerSummary
}

// NewAdminConsole creates an empty console state
func NewAdminConsole() *AdminConsole {
	return &AdminConsole{}
}

// SetStats replaces the cached stats
func (c *AdminConsole) SetStats(stats model.DashboardStats) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stats = stats
}

// Stats returns the cached stats
func (c *AdminConsole) Stats() model.DashboardStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}

// SetVolunteers replaces the cached volunteer listing
func (c *AdminConsole) SetVolunteers(volunteers []model.VolunteerSummary) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.volunteers = volunteers
}

// Volunteers returns the cached volunteer listing
func (c *AdminConsole) Volunteers() []model.VolunteerSummary {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.volunteers
}

// MarkVolunteerStatus updates one volunteer's status in the cached
// listing, keeping the view consistent after a review decision
func (c *AdminConsole) MarkVolunteerStatus(volunteerID string, status model.Status) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.volunteers {
		if c.volunteers[i].ID == volunteerID {
			c.volunteers[i].Status = status
			return
		}
	}
}

// FetchStats loads the admin dashboard stats and caches them in the
// console state on success
func FetchStats(ctx context.Context, api AdminAPI, console *AdminConsole, logger *zap.Logger) (model.DashboardStats, error) {
	stats, err := api.GetDashboardStats(ctx)
	if err != nil {
		return model.DashboardStats{}, fmt.Errorf("failed to fetch stats: %w", err)
	}

	console.SetStats(stats)
	logger.Debug("Stats fetched", zap.Int("total", stats.Total), zap.Int("pending", stats.Pending))
	return stats, nil
}

// FetchVolunteers loads the volunteer listing and caches it in the
// console state on success
func FetchVolunteers(ctx context.Context, api AdminAPI, console *AdminConsole, logger *zap.Logger, filter apiclient.VolunteerFilter) ([]model.VolunteerSummary, error) {
	volunteers, err := api.GetVolunteers(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch volunteers: %w", err)
	}

	console.SetVolunteers(volunteers)
	logger.Debug("Volunteers fetched", zap.Int("count", len(volunteers)))
	return volunteers, nil
}

// ReviewVolunteer records an admin review decision and reflects it in
// the cached listing
func ReviewVolunteer(ctx context.Context, api AdminAPI, console *AdminConsole, logger *zap.Logger, volunteerID string, status model.Status) (model.VolunteerSummary, error) {
	switch status {
	case model.StatusApproved, model.StatusRejected, model.StatusPending, model.StatusSuspended:
	default:
		return model.VolunteerSummary{}, fmt.Errorf("invalid review status %q", status)
	}

	updated, err := api.UpdateVolunteerStatus(ctx, volunteerID, status)
	if err != nil {
		return model.VolunteerSummary{}, fmt.Errorf("failed to update volunteer status: %w", err)
	}

	console.MarkVolunteerStatus(volunteerID, status)
	logger.Info("Volunteer reviewed",
		zap.String("volunteer_id", volunteerID),
		zap.String("status", string(status)))
	return updated, nil
}

// ReviewOrganization records an admin review decision for an organization
func ReviewOrganization(ctx context.Context, api AdminAPI, logger *zap.Logger, organizationID string, status model.Status) (model.Organization, error) {
	updated, err := api.UpdateOrganizationStatus(ctx, organizationID, status)
	if err != nil {
		return model.Organization{}, fmt.Errorf("failed to update organization status: %w", err)
	}

	logger.Info("Organization reviewed",
		zap.String("organization_id", organizationID),
		zap.String("status", string(status)))
	return updated, nil
}
