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

// mockAuthAPI implements a test double for AuthAPI
type mockAuthAPI struct {
	loginResult *apiclient.LoginResult
	loginErr    error
	loginRoles  []model.Role

	registerResult *apiclient.LoginResult
	registerErr    error
}

func (m *mockAuthAPI) Login(ctx context.Context, role model.Role, creds apiclient.Credentials) (*apiclient.LoginResult, error) {
	m.loginRoles = append(m.loginRoles, role)
	if m.loginErr != nil {
		return nil, m.loginErr
	}
	return m.loginResult, nil
}

func (m *mockAuthAPI) Register(ctx context.Context, req apiclient.RegisterRequest) (*apiclient.LoginResult, error) {
	if m.registerErr != nil {
		return nil, m.registerErr
	}
	return m.registerResult, nil
}

func (m *mockAuthAPI) RegisterOrganization(ctx context.Context, req apiclient.RegisterOrganizationRequest) (*apiclient.LoginResult, error) {
	if m.registerErr != nil {
		return nil, m.registerErr
	}
	return m.registerResult, nil
}

// mockSessionStore implements a test double for SessionStore
type mockSessionStore struct {
	identity  *model.Identity
	token     string
	lastError string
	starts    int

	loginSuccessErr error
	logoutErr       error
}

func (m *mockSessionStore) LoginStart() { m.starts++ }

func (m *mockSessionStore) LoginSuccess(identity *model.Identity, token string) error {
	if m.loginSuccessErr != nil {
		return m.loginSuccessErr
	}
	m.identity = identity
	if token != "" {
		m.token = token
	}
	m.lastError = ""
	return nil
}

func (m *mockSessionStore) LoginFailure(message string) { m.lastError = message }

func (m *mockSessionStore) Logout() error {
	if m.logoutErr != nil {
		return m.logoutErr
	}
	m.identity = nil
	m.token = ""
	return nil
}

func (m *mockSessionStore) IsAuthenticated() bool     { return m.identity != nil }
func (m *mockSessionStore) Identity() *model.Identity { return m.identity }

func TestLogin_Success(t *testing.T) {
	api := &mockAuthAPI{
		loginResult: &apiclient.LoginResult{
			Identity: &model.Identity{ID: "user-1", Role: model.RoleVolunteer},
			Token:    "tok-1",
		},
	}
	sessions := &mockSessionStore{}

	identity, err := Login(context.Background(), api, sessions, zap.NewNop(), model.RoleVolunteer, apiclient.Credentials{})
	require.NoError(t, err)

	assert.Equal(t, "user-1", identity.ID)
	assert.Equal(t, "user-1", sessions.identity.ID)
	assert.Equal(t, "tok-1", sessions.token)
	assert.Equal(t, []model.Role{model.RoleVolunteer}, api.loginRoles)
}

func TestLogin_FailureLeavesSessionUnchanged(t *testing.T) {
	api := &mockAuthAPI{
		loginErr: &apiclient.APIError{StatusCode: 200, Message: "invalid credentials"},
	}
	sessions := &mockSessionStore{}

	_, err := Login(context.Background(), api, sessions, zap.NewNop(), model.RoleAdmin, apiclient.Credentials{})
	require.Error(t, err)

	// Session store is unchanged; the error message is surfaced; no
	// redirect happens (the caller stays on the login view)
	assert.Nil(t, sessions.identity)
	assert.Empty(t, sessions.token)
	assert.Contains(t, sessions.lastError, "invalid credentials")
}

func TestLogin_InvalidRole(t *testing.T) {
	sessions := &mockSessionStore{}

	_, err := Login(context.Background(), &mockAuthAPI{}, sessions, zap.NewNop(), model.Role("superuser"), apiclient.Credentials{})
	assert.Error(t, err)
	assert.Zero(t, sessions.starts)
}

func TestRegister_SignsInNewVolunteer(t *testing.T) {
	api := &mockAuthAPI{
		registerResult: &apiclient.LoginResult{
			Identity: &model.Identity{ID: "user-2", Role: model.RoleVolunteer},
			Token:    "tok-2",
		},
	}
	sessions := &mockSessionStore{}

	identity, err := Register(context.Background(), api, sessions, zap.NewNop(), apiclient.RegisterRequest{Email: "new@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "user-2", identity.ID)
	assert.Equal(t, "tok-2", sessions.token)
}

func TestRegister_DuplicateEmailSurfaced(t *testing.T) {
	api := &mockAuthAPI{
		registerErr: &apiclient.APIError{StatusCode: 200, Message: "email already registered"},
	}
	sessions := &mockSessionStore{}

	_, err := Register(context.Background(), api, sessions, zap.NewNop(), apiclient.RegisterRequest{})
	require.Error(t, err)
	assert.Contains(t, sessions.lastError, "email already registered")
	assert.Nil(t, sessions.identity)
}

func TestLogout(t *testing.T) {
	sessions := &mockSessionStore{identity: &model.Identity{ID: "user-1"}, token: "tok"}

	require.NoError(t, Logout(sessions, zap.NewNop()))
	assert.Nil(t, sessions.identity)
	assert.Empty(t, sessions.token)
}

func TestLogout_PropagatesStorageError(t *testing.T) {
	sessions := &mockSessionStore{logoutErr: errors.New("disk full")}
	assert.Error(t, Logout(sessions, zap.NewNop()))
}
