package api

import (
	"context"
	"net/http"
	"net/url"
)

// defaultProfile fills fields the backend may omit so callers render a
// complete card either way.
func defaultProfile() Profile {
	return Profile{
		Name:              "Unknown",
		Department:        "Unassigned",
		JobTitle:          "Employee",
		SalaryGapWarnings: []string{},
	}
}

func (c *Client) GetProfile(ctx context.Context) (*Profile, error) {
	out := defaultProfile()
	if err := c.doJSON(ctx, http.MethodGet, "/profile/", nil, nil, &out); err != nil {
		return nil, err
	}
	if out.SalaryGapWarnings == nil {
		out.SalaryGapWarnings = []string{}
	}
	return &out, nil
}

// ChangePassword uses query parameters, mirroring the backend's contract.
func (c *Client) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	q := url.Values{}
	q.Set("old_password", oldPassword)
	q.Set("new_password", newPassword)
	return c.doJSON(ctx, http.MethodPut, "/profile/change_password", q, nil, nil)
}
