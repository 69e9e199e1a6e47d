package router

import (
	"fmt"

	"github.com/volunteerhub/volunteerhub-cli/pkg/core/model"
)

// View is a top-level view of the application
type View string

const (
	ViewLogin                 View = "login"
	ViewOnboarding            View = "onboarding"
	ViewApprovalPending       View = "approval-pending"
	ViewApplicationRejected   View = "application-rejected"
	ViewVolunteerDashboard    View = "volunteer-dashboard"
	ViewAdminDashboard        View = "admin-dashboard"
	ViewOrganizationDashboard View = "organization-dashboard"
)

// Requirement is a protected view's role requirement
type Requirement string

const (
	RequireVolunteer        Requirement = "volunteer"
	RequireAdmin            Requirement = "admin"
	RequireOrganization     Requirement = "organization"
	RequireAnyAuthenticated Requirement = "any-authenticated"
)

// ErrRedirectToLogin is returned by Authorize when access is denied;
// the caller routes to the shared login entry point
type ErrRedirectToLogin struct {
	Reason string
}

func (e *ErrRedirectToLogin) Error() string {
	return fmt.Sprintf("redirect to login: %s", e.Reason)
}

// Session is the read-only view of session state the router needs
type Session interface {
	IsAuthenticated() bool
	Identity() *model.Identity
}

// Resolve derives the current view from session state. This is the
// single routing strategy: the root view branches through the same
// rule that protects the per-role dashboards, so the two can never
// disagree. Resolve must be re-run whenever the session changes.
func Resolve(s Session) View {
	if !s.IsAuthenticated() {
		return ViewLogin
	}

	identity := s.Identity()
	if identity == nil {
		// A restored token without a readable identity: treat as a
		// volunteer mid-login; the first protected call settles it
		return ViewLogin
	}

	switch identity.Role {
	case model.RoleAdmin:
		return ViewAdminDashboard
	case model.RoleOrganization:
		return ViewOrganizationDashboard
	case model.RoleVolunteer:
		if !identity.OnboardingComplete {
			return ViewOnboarding
		}
		switch identity.Status {
		case model.StatusPending:
			return ViewApprovalPending
		case model.StatusRejected:
			return ViewApplicationRejected
		default:
			return ViewVolunteerDashboard
		}
	}

	return ViewLogin
}

// Authorize enforces a protected view's role requirement. A nil error
// means access is granted; otherwise the returned *ErrRedirectToLogin
// carries the reason and the caller redirects to the login entry
// point.
func Authorize(req Requirement, s Session) error {
	if !s.IsAuthenticated() {
		return &ErrRedirectToLogin{Reason: "not authenticated"}
	}

	if req == RequireAnyAuthenticated {
		return nil
	}

	identity := s.Identity()
	if identity == nil {
		return &ErrRedirectToLogin{Reason: "no identity"}
	}

	if string(identity.Role) != string(req) {
		return &ErrRedirectToLogin{
			Reason: fmt.Sprintf("role %q does not satisfy %q", identity.Role, req),
		}
	}

	return nil
}
