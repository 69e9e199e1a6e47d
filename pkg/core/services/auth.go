package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/volunteerhub/volunteerhub-cli/pkg/apiclient"
	"github.com/volunteerhub/volunteerhub-cli/pkg/core/model"
)

// AuthAPI defines the credential-exchange operations needed for login
// and registration
type AuthAPI interface {
	Login(ctx context.Context, role model.Role, creds apiclient.Credentials) (*apiclient.LoginResult, error)
	Register(ctx context.Context, req apiclient.RegisterRequest) (*apiclient.LoginResult, error)
	RegisterOrganization(ctx context.Context, req apiclient.RegisterOrganizationRequest) (*apiclient.LoginResult, error)
}

// SessionStore defines the session transitions the auth flows drive
type SessionStore interface {
	LoginStart()
	LoginSuccess(identity *model.Identity, token string) error
	LoginFailure(message string)
	Logout() error
	IsAuthenticated() bool
	Identity() *model.Identity
}

// Login is the single login operation for all three roles: the flows
// differ only in endpoint, so the role parameter picks the path and
// this completion handler writes the session store on success. A
// failed exchange records the error and leaves the session untouched.
func Login(ctx context.Context, api AuthAPI, sessions SessionStore, logger *zap.Logger, role model.Role, creds apiclient.Credentials) (*model.Identity, error) {
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role %q", role)
	}

	logger.Info("Logging in", zap.String("role", string(role)))
	sessions.LoginStart()

	result, err := api.Login(ctx, role, creds)
	if err != nil {
		sessions.LoginFailure(err.Error())
		return nil, fmt.Errorf("login failed: %w", err)
	}

	if err := sessions.LoginSuccess(result.Identity, result.Token); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	return result.Identity, nil
}

// Register creates a volunteer account and signs the new volunteer in
func Register(ctx context.Context, api AuthAPI, sessions SessionStore, logger *zap.Logger, req apiclient.RegisterRequest) (*model.Identity, error) {
	logger.Info("Registering volunteer", zap.String("email", req.Email))
	sessions.LoginStart()

	result, err := api.Register(ctx, req)
	if err != nil {
		sessions.LoginFailure(err.Error())
		return nil, fmt.Errorf("registration failed: %w", err)
	}

	if err := sessions.LoginSuccess(result.Identity, result.Token); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	return result.Identity, nil
}

// RegisterOrganization creates an organization account and signs it in
func RegisterOrganization(ctx context.Context, api AuthAPI, sessions SessionStore, logger *zap.Logger, req apiclient.RegisterOrganizationRequest) (*model.Identity, error) {
	logger.Info("Registering organization", zap.String("email", req.Email))
	sessions.LoginStart()

	result, err := api.RegisterOrganization(ctx, req)
	if err != nil {
		sessions.LoginFailure(err.Error())
		return nil, fmt.Errorf("registration failed: %w", err)
	}

	if err := sessions.LoginSuccess(result.Identity, result.Token); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	return result.Identity, nil
}

// Logout clears the session. It makes no network call; the caller is
// responsible for routing back to the login view afterwards.
func Logout(sessions SessionStore, logger *zap.Logger) error {
	if err := sessions.Logout(); err != nil {
		return fmt.Errorf("logout failed: %w", err)
	}
	logger.Info("Logged out")
	return nil
}
