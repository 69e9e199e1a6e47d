package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"github.com/volunteerhub/volunteerhub-cli/pkg/core/model"
)

// GetDashboardStats fetches the admin console's headline numbers
func (c *Client) GetDashboardStats(ctx context.Context) (model.DashboardStats, error) {
	return getJSON[model.DashboardStats](ctx, c, c.user, "/admin/stats")
}

// VolunteerFilter narrows the admin volunteer listing
type VolunteerFilter struct {
	Status string
	Search string
}

// GetVolunteers lists volunteers for admin review
func (c *Client) GetVolunteers(ctx context.Context, filter VolunteerFilter) ([]model.VolunteerSummary, error) {
	query := url.Values{}
	if filter.Status != "" {
		query.Set("status", filter.Status)
	}
	if filter.Search != "" {
		query.Set("search", filter.Search)
	}

	path := "/admin/volunteers"
	if encoded := query.Encode(); encoded != "" {
		path += "?" + encoded
	}
	return getJSON[[]model.VolunteerSummary](ctx, c, c.user, path)
}

type statusUpdate struct {
	Status model.Status `json:"status"`
}

// UpdateVolunteerStatus records an admin review decision for a volunteer
func (c *Client) UpdateVolunteerStatus(ctx context.Context, volunteerID string, status model.Status) (model.VolunteerSummary, error) {
	path := "/admin/volunteers/" + volunteerID + "/status"
	return postJSON[model.VolunteerSummary](ctx, c, c.user, http.MethodPatch, path, statusUpdate{Status: status}, nil)
}

// GetOrganizations lists organizations for admin review
func (c *Client) GetOrganizations(ctx context.Context, status string) ([]model.Organization, error) {
	path := "/admin/organizations"
	if status != "" {
		path += "?status=" + url.QueryEscape(status)
	}
	return getJSON[[]model.Organization](ctx, c, c.user, path)
}

type organizationStatusUpdate struct {
	OrganizationID string       `json:"organizationId"`
	Status         model.Status `json:"status"`
}

// UpdateOrganizationStatus records an admin review decision for an organization
func (c *Client) UpdateOrganizationStatus(ctx context.Context, organizationID string, status model.Status) (model.Organization, error) {
	body := organizationStatusUpdate{OrganizationID: organizationID, Status: status}
	return postJSON[model.Organization](ctx, c, c.user, http.MethodPatch, "/admin/organizations/status", body, nil)
}
