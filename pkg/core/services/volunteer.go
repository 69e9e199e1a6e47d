package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/volunteerhub/volunteerhub-cli/pkg/core/model"
)

// VolunteerAPI defines the volunteer dashboard operations
type VolunteerAPI interface {
	GetVolunteerDashboard(ctx context.Context, userID string) (model.VolunteerDashboard, error)
	ToggleEmergencyStatus(ctx context.Context, userID string) (bool, error)
	UpdateProfile(ctx context.Context, userID string, update map[string]any) (*model.Identity, error)
}

// FetchVolunteerDashboard loads the signed-in volunteer's dashboard
func FetchVolunteerDashboard(ctx context.Context, api VolunteerAPI, sessions SessionStore, logger *zap.Logger) (model.VolunteerDashboard, error) {
	identity := sessions.Identity()
	if identity == nil {
		return model.VolunteerDashboard{}, fmt.Errorf("no signed-in volunteer")
	}

	dashboard, err := api.GetVolunteerDashboard(ctx, identity.ID)
	if err != nil {
		return model.VolunteerDashboard{}, fmt.Errorf("failed to fetch dashboard: %w", err)
	}

	logger.Debug("Dashboard fetched",
		zap.String("volunteer_id", identity.ID),
		zap.Int("recent_alerts", len(dashboard.RecentAlerts)))
	return dashboard, nil
}

// ToggleEmergency flips the volunteer's emergency availability and
// refreshes the session identity to match. The refresh reuses the
// stored token, so no re-authentication happens.
func ToggleEmergency(ctx context.Context, api VolunteerAPI, sessions SessionStore, logger *zap.Logger) (bool, error) {
	identity := sessions.Identity()
	if identity == nil {
		return false, fmt.Errorf("no signed-in volunteer")
	}

	available, err := api.ToggleEmergencyStatus(ctx, identity.ID)
	if err != nil {
		return false, fmt.Errorf("failed to toggle emergency status: %w", err)
	}

	refreshed := *identity
	if refreshed.Emergency == nil {
		refreshed.Emergency = &model.Emergency{}
	} else {
		emergency := *refreshed.Emergency
		refreshed.Emergency = &emergency
	}
	refreshed.Emergency.IsAvailable = available

	if err := sessions.LoginSuccess(&refreshed, ""); err != nil {
		return available, fmt.Errorf("failed to refresh session identity: %w", err)
	}

	logger.Info("Emergency availability updated",
		zap.String("volunteer_id", identity.ID),
		zap.Bool("available", available))
	return available, nil
}

// UpdateProfile sends a partial profile edit and adopts the refreshed
// identity the backend returns. The session refresh reuses the stored
// token, so no re-authentication happens.
func UpdateProfile(ctx context.Context, api VolunteerAPI, sessions SessionStore, logger *zap.Logger, update map[string]any) (*model.Identity, error) {
	identity := sessions.Identity()
	if identity == nil {
		return nil, fmt.Errorf("no signed-in volunteer")
	}
	if len(update) == 0 {
		return nil, fmt.Errorf("no profile fields to update")
	}

	refreshed, err := api.UpdateProfile(ctx, identity.ID, update)
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	if err := sessions.LoginSuccess(refreshed, ""); err != nil {
		return nil, fmt.Errorf("failed to refresh session identity: %w", err)
	}

	logger.Info("Profile updated",
		zap.String("volunteer_id", identity.ID),
		zap.Int("sections", len(update)))
	return refreshed, nil
}
