package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/volunteerhub/volunteerhub-cli/pkg/core/model"
)

// OrganizationAPI defines the organization portal operations
type OrganizationAPI interface {
	GetOrganizationDashboard(ctx context.Context) (model.OrganizationDashboard, error)
	GetPrograms(ctx context.Context, status string) ([]model.Program, error)
	CreateProgram(ctx context.Context, program model.Program) (model.Program, error)
}

// FetchOrganizationDashboard loads the signed-in organization's portal
func FetchOrganizationDashboard(ctx context.Context, api OrganizationAPI, logger *zap.Logger) (model.OrganizationDashboard, error) {
	dashboard, err := api.GetOrganizationDashboard(ctx)
	if err != nil {
		return model.OrganizationDashboard{}, fmt.Errorf("failed to fetch organization dashboard: %w", err)
	}

	logger.Debug("Organization dashboard fetched",
		zap.String("organization_id", dashboard.Organization.ID),
		zap.Int("programs", len(dashboard.Programs)))
	return dashboard, nil
}

// CreateProgram publishes a new volunteering program
func CreateProgram(ctx context.Context, api OrganizationAPI, logger *zap.Logger, program model.Program) (model.Program, error) {
	if program.Title == "" {
		return model.Program{}, fmt.Errorf("program title is required")
	}

	created, err := api.CreateProgram(ctx, program)
	if err != nil {
		return model.Program{}, fmt.Errorf("failed to create program: %w", err)
	}

	logger.Info("Program created",
		zap.String("program_id", created.ID),
		zap.String("title", created.Title))
	return created, nil
}
