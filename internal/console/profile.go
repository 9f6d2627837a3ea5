package console

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"hrmc/internal/api"
	"hrmc/internal/session"
	"hrmc/internal/validate"
)

// ProfilePage shows the signed-in user's card and handles password changes.
// Every role can open it.
type ProfilePage struct {
	client   *api.Client
	notify   Notifier
	nav      Navigator
	sessions SessionEnder

	mu      sync.Mutex
	profile *api.Profile
	loading bool
}

func NewProfilePage(client *api.Client, cfg ControllerConfig) *ProfilePage {
	nav := cfg.Navigator
	if nav == nil {
		nav = NopNavigator()
	}
	return &ProfilePage{client: client, notify: cfg.Notifier, nav: nav, sessions: cfg.Sessions}
}

func (p *ProfilePage) Mount(ctx context.Context) error {
	p.mu.Lock()
	p.loading = true
	p.mu.Unlock()

	profile, err := p.client.GetProfile(ctx)

	p.mu.Lock()
	p.loading = false
	if err == nil {
		p.profile = profile
	}
	p.mu.Unlock()

	if err != nil {
		p.surface(err)
		return err
	}
	return nil
}

func (p *ProfilePage) Profile() *api.Profile {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.profile
}

func (p *ProfilePage) Loading() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loading
}

// ChangePassword validates locally, then submits. The old password must be
// present and the new one non-trivial and different.
func (p *ProfilePage) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	v := validate.New()
	v.Required("old_password", oldPassword)
	v.Required("new_password", newPassword)
	if newPassword != "" && len(newPassword) < 8 {
		v.Add("new_password", "must be at least 8 characters")
	}
	if newPassword != "" && newPassword == oldPassword {
		v.Add("new_password", "must differ from the old password")
	}
	if v.HasIssues() {
		err := fmt.Errorf("%s", v.Message())
		if p.notify != nil {
			p.notify.Error(err.Error())
		}
		return err
	}

	if err := p.client.ChangePassword(ctx, oldPassword, newPassword); err != nil {
		p.surface(err)
		return err
	}
	if p.notify != nil {
		p.notify.Success("Password changed")
	}
	return nil
}

func (p *ProfilePage) surface(err error) {
	if p.notify == nil {
		return
	}
	switch {
	case errors.Is(err, session.ErrNoToken):
		p.notify.Error(err.Error())
	case errors.Is(err, api.ErrSessionExpired):
		if p.sessions != nil {
			_ = p.sessions.Clear()
		}
		p.notify.Error("Your session has expired, please login again")
		p.nav.RedirectToLogin()
	case errors.Is(err, api.ErrUnreachable):
		p.notify.Error("Cannot reach the server, please try again")
	default:
		p.notify.Error(err.Error())
	}
}
