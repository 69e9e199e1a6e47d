package commands

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/volunteerhub/volunteerhub-cli/internal/config"
	"github.com/volunteerhub/volunteerhub-cli/pkg/apiclient"
	"github.com/volunteerhub/volunteerhub-cli/pkg/core/services"
	"github.com/volunteerhub/volunteerhub-cli/pkg/localstore"
	"github.com/volunteerhub/volunteerhub-cli/pkg/onboarding"
	"github.com/volunteerhub/volunteerhub-cli/pkg/router"
	"github.com/volunteerhub/volunteerhub-cli/pkg/session"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Cfg      *config.Config
	Storage  *localstore.Store
	Sessions *session.Store
	API      *apiclient.Client
	Machine  *onboarding.Machine
	Console  *services.AdminConsole
	Logger   *zap.Logger
	Ctx      context.Context
}

// authorize consults the role router before a protected command runs.
// On a redirect decision it prints where the user would be sent and
// returns the error so the command aborts.
func authorize(app *AppContext, req router.Requirement) error {
	err := router.Authorize(req, app.Sessions)
	if err == nil {
		return nil
	}

	var redirect *router.ErrRedirectToLogin
	if errors.As(err, &redirect) {
		fmt.Printf("❌ Not signed in (%s) - use 'login' first\n", redirect.Reason)
	} else {
		fmt.Printf("❌ %v\n", err)
	}
	return err
}
