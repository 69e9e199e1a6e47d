package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/volunteerhub/volunteerhub-cli/pkg/onboarding"
	"github.com/volunteerhub/volunteerhub-cli/pkg/router"
)

// CompleteOnboarding runs the terminal transition of the wizard: it
// finalizes the draft, replaces the session identity with the
// now-complete volunteer and its fresh token, and returns the view to
// navigate to. Completion triggers admin review, so the destination is
// the pending-approval view, not the dashboard. On failure the draft
// stays intact on step 4 and the attempt is retryable.
func CompleteOnboarding(ctx context.Context, machine *onboarding.Machine, saver onboarding.StepSaver, sessions SessionStore, logger *zap.Logger) (router.View, error) {
	identity, token, err := machine.Finalize(ctx, saver)
	if err != nil {
		return "", err
	}

	if err := sessions.LoginSuccess(identity, token); err != nil {
		return "", fmt.Errorf("failed to adopt volunteer identity: %w", err)
	}

	view := router.Resolve(sessionView{sessions})
	logger.Info("Onboarding complete",
		zap.String("volunteer_id", identity.ID),
		zap.String("view", string(view)))
	return view, nil
}

// sessionView adapts a SessionStore to the router's read-only view
type sessionView struct {
	SessionStore
}
