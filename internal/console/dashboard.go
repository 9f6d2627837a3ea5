package console

import (
	"context"
	"sync"
	"time"

	"hrmc/internal/api"
)

// DashboardPage holds the role-specific aggregate card and an optional
// auto-refresh loop. The ticker must be stopped via Close when the page
// goes away, same discipline as any interval timer.
type DashboardPage struct {
	client *api.Client
	notify Notifier

	mu      sync.Mutex
	role    string
	data    *api.Dashboard
	loading bool

	stop chan struct{}
	done chan struct{}
}

func NewDashboardPage(client *api.Client, cfg ControllerConfig) *DashboardPage {
	return &DashboardPage{client: client, notify: cfg.Notifier}
}

func (p *DashboardPage) Mount(ctx context.Context, role string) error {
	p.mu.Lock()
	p.role = role
	p.mu.Unlock()
	return p.Refresh(ctx)
}

func (p *DashboardPage) Refresh(ctx context.Context) error {
	p.mu.Lock()
	role := p.role
	p.loading = true
	p.mu.Unlock()

	data, err := p.client.FetchDashboard(ctx, role)

	p.mu.Lock()
	p.loading = false
	if err == nil {
		p.data = data
	}
	p.mu.Unlock()

	if err != nil {
		if p.notify != nil {
			p.notify.Error(err.Error())
		}
		return err
	}
	return nil
}

func (p *DashboardPage) Data() *api.Dashboard {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.data
}

// StartAutoRefresh polls at the given interval until Close is called or the
// context is cancelled. Refresh errors are surfaced as toasts and do not
// stop the loop.
func (p *DashboardPage) StartAutoRefresh(ctx context.Context, interval time.Duration) {
	p.mu.Lock()
	if p.stop != nil {
		p.mu.Unlock()
		return
	}
	p.stop = make(chan struct{})
	p.done = make(chan struct{})
	stop, done := p.stop, p.done
	p.mu.Unlock()

	go func() {
		defer close(done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-stop:
				return
			case <-ticker.C:
				_ = p.Refresh(ctx)
			}
		}
	}()
}

// Close stops the auto-refresh loop and waits for it to exit.
func (p *DashboardPage) Close() {
	p.mu.Lock()
	stop, done := p.stop, p.done
	p.stop, p.done = nil, nil
	p.mu.Unlock()
	if stop == nil {
		return
	}
	close(stop)
	<-done
}
