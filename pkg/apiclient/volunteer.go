package apiclient

import (
	"context"
	"net/http"

	"github.com/volunteerhub/volunteerhub-cli/pkg/core/model"
)

// GetVolunteerDashboard fetches the volunteer dashboard payload
func (c *Client) GetVolunteerDashboard(ctx context.Context, userID string) (model.VolunteerDashboard, error) {
	return getJSON[model.VolunteerDashboard](ctx, c, c.user, "/volunteer/profile/"+userID)
}

type emergencyStatusData struct {
	IsAvailable bool `json:"isAvailable"`
}

// ToggleEmergencyStatus flips the volunteer's emergency availability
// and returns the new value
func (c *Client) ToggleEmergencyStatus(ctx context.Context, userID string) (bool, error) {
	data, err := postJSON[emergencyStatusData](ctx, c, c.user, http.MethodPut, "/emergency-status/"+userID, nil, nil)
	if err != nil {
		return false, err
	}
	return data.IsAvailable, nil
}

// UpdateProfile sends a partial volunteer profile update and returns
// the refreshed identity
func (c *Client) UpdateProfile(ctx context.Context, userID string, update map[string]any) (*model.Identity, error) {
	identity, err := postJSON[model.Identity](ctx, c, c.user, http.MethodPut, "/volunteer/profile/"+userID, update, nil)
	if err != nil {
		return nil, err
	}
	return &identity, nil
}
