package apiclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/volunteerhub/volunteerhub-cli/pkg/core/model"
)

// Credentials is an email/password pair for any of the three login
// endpoints
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResult is a normalized login response: the three credential
// endpoints name their identity field differently on the wire
// (user / admin / organization) but carry the same pair.
type LoginResult struct {
	Identity *model.Identity
	Token    string
}

type userLoginData struct {
	User  *model.Identity `json:"user"`
	Token string          `json:"token"`
}

type adminLoginData struct {
	Admin *model.Identity `json:"admin"`
	Token string          `json:"token"`
}

type organizationLoginData struct {
	Organization *model.Identity `json:"organization"`
	Token        string          `json:"token"`
}

// Login exchanges credentials at the endpoint for the given role and
// normalizes the response. The three flows differ only in path and
// identity field name.
func (c *Client) Login(ctx context.Context, role model.Role, creds Credentials) (*LoginResult, error) {
	switch role {
	case model.RoleVolunteer:
		data, err := postJSON[userLoginData](ctx, c, c.public, http.MethodPost, "/auth/login", creds, nil)
		if err != nil {
			return nil, err
		}
		return normalizeLogin(data.User, data.Token, model.RoleVolunteer)

	case model.RoleAdmin:
		data, err := postJSON[adminLoginData](ctx, c, c.public, http.MethodPost, "/admin/login", creds, nil)
		if err != nil {
			return nil, err
		}
		return normalizeLogin(data.Admin, data.Token, model.RoleAdmin)

	case model.RoleOrganization:
		data, err := postJSON[organizationLoginData](ctx, c, c.public, http.MethodPost, "/organization/login", creds, nil)
		if err != nil {
			return nil, err
		}
		return normalizeLogin(data.Organization, data.Token, model.RoleOrganization)
	}

	return nil, fmt.Errorf("unknown role %q", role)
}

func normalizeLogin(identity *model.Identity, token string, role model.Role) (*LoginResult, error) {
	if identity == nil {
		return nil, fmt.Errorf("login response missing identity")
	}
	if identity.Role == "" {
		identity.Role = role
	}
	return &LoginResult{Identity: identity, Token: token}, nil
}

// RegisterRequest is the volunteer registration payload
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a volunteer account
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*LoginResult, error) {
	data, err := postJSON[userLoginData](ctx, c, c.public, http.MethodPost, "/auth/register", req, nil)
	if err != nil {
		return nil, err
	}
	return normalizeLogin(data.User, data.Token, model.RoleVolunteer)
}

// RegisterOrganizationRequest is the organization registration payload
type RegisterOrganizationRequest struct {
	Name        string        `json:"name"`
	Email       string        `json:"email"`
	Password    string        `json:"password"`
	Description string        `json:"description,omitempty"`
	Website     string        `json:"website,omitempty"`
	Phone       string        `json:"phone,omitempty"`
	Address     model.Address `json:"address,omitempty"`
}

// RegisterOrganization creates an organization account
func (c *Client) RegisterOrganization(ctx context.Context, req RegisterOrganizationRequest) (*LoginResult, error) {
	data, err := postJSON[organizationLoginData](ctx, c, c.public, http.MethodPost, "/organization/register", req, nil)
	if err != nil {
		return nil, err
	}
	return normalizeLogin(data.Organization, data.Token, model.RoleOrganization)
}
