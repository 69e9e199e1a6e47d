package apiclient

import (
	"context"
	"net/http"

	"github.com/volunteerhub/volunteerhub-cli/pkg/core/model"
)

// Organization portal endpoints. These authenticate with the
// organization storage namespace, never the volunteer/admin one.

// GetOrganizationDashboard fetches the organization portal payload
func (c *Client) GetOrganizationDashboard(ctx context.Context) (model.OrganizationDashboard, error) {
	return getJSON[model.OrganizationDashboard](ctx, c, c.org, "/organization/dashboard")
}

// GetPrograms lists the organization's programs
func (c *Client) GetPrograms(ctx context.Context, status string) ([]model.Program, error) {
	path := "/organization/programs"
	if status != "" {
		path += "?status=" + status
	}
	return getJSON[[]model.Program](ctx, c, c.org, path)
}

// CreateProgram creates a volunteering program
func (c *Client) CreateProgram(ctx context.Context, program model.Program) (model.Program, error) {
	return postJSON[model.Program](ctx, c, c.org, http.MethodPost, "/organization/programs", program, nil)
}
