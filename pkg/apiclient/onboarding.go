package apiclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/volunteerhub/volunteerhub-cli/pkg/core/model"
	"github.com/volunteerhub/volunteerhub-cli/pkg/onboarding"
)

// The onboarding endpoints implement onboarding.StepSaver: one partial
// save per wizard step, plus the final aggregate submission.

// SavePersonalInfo saves the first wizard step
func (c *Client) SavePersonalInfo(ctx context.Context, info model.PersonalInfo) (model.PersonalInfo, error) {
	return postJSON[model.PersonalInfo](ctx, c, c.user, http.MethodPost, "/onboarding/personalInfo", info, nil)
}

// SaveContactInfo saves the second wizard step
func (c *Client) SaveContactInfo(ctx context.Context, info model.ContactInfo) (model.ContactInfo, error) {
	return postJSON[model.ContactInfo](ctx, c, c.user, http.MethodPost, "/contactstep/contactStep", info, nil)
}

// skillsStepRequest is the wire shape the skills endpoint expects: the
// section nests under a user object with certificate/schedule naming
type skillsStepRequest struct {
	User skillsStepUser `json:"user"`
}

type skillsStepUser struct {
	Certificate model.Certifications `json:"certificate"`
	Skills      []string             `json:"skills"`
	Schedule    []string             `json:"schedule"`
}

type skillsStepResponse struct {
	ID   string         `json:"id"`
	User skillsStepUser `json:"user"`
}

// SaveSkills saves the third wizard step
func (c *Client) SaveSkills(ctx context.Context, skills onboarding.SkillsAvailability) (onboarding.SkillsAvailability, error) {
	req := skillsStepRequest{
		User: skillsStepUser{
			Certificate: model.Certifications{
				CPRTrained:      skills.CPRTrained,
				FirstAidTrained: skills.FirstAidTrained,
			},
			Skills:   skills.Skills,
			Schedule: skills.Availability,
		},
	}

	resp, err := postJSON[skillsStepResponse](ctx, c, c.user, http.MethodPost, "/skillsstep/skillsStep", req, nil)
	if err != nil {
		return onboarding.SkillsAvailability{}, err
	}

	return onboarding.SkillsAvailability{
		Skills:          resp.User.Skills,
		Availability:    resp.User.Schedule,
		CPRTrained:      resp.User.Certificate.CPRTrained,
		FirstAidTrained: resp.User.Certificate.FirstAidTrained,
	}, nil
}

// SubmitApplication issues the terminal aggregate submission of the
// whole draft. The idempotency key makes a retried submission safe to
// replay. The response carries the completed volunteer identity and a
// fresh token.
func (c *Client) SubmitApplication(ctx context.Context, draft onboarding.Draft, idempotencyKey string) (*model.Identity, string, error) {
	headers := map[string]string{idempotencyName: idempotencyKey}

	data, err := postJSON[userLoginData](ctx, c, c.user, http.MethodPost, "/onboarding/submit", draft, headers)
	if err != nil {
		return nil, "", err
	}
	if data.User == nil {
		return nil, "", fmt.Errorf("submit response missing volunteer identity")
	}
	if data.User.Role == "" {
		data.User.Role = model.RoleVolunteer
	}
	return data.User, data.Token, nil
}
