package console

import (
	"context"
	"errors"
	"sync"
	"time"

	"hrmc/internal/api"
	"hrmc/internal/paging"
	"hrmc/internal/session"
)

// ErrRoleDenied is returned by Mount when the signed-in role is not in the
// page's allowed set. The navigator has already been told to redirect.
var ErrRoleDenied = errors.New("role not allowed on this page")

// LoadFunc fetches one page of the primary resource. An empty searchTerm
// means the plain list endpoint, anything else the search endpoint.
type LoadFunc[T any] func(ctx context.Context, page, perPage int, searchTerm string) (api.ListResult[T], error)

// PageController is the state shared by every screen: the current page of
// items, pagination cursors, the search term with its debounce, and a
// loading flag. Responses are tagged with a generation counter; a response
// from a superseded request is dropped instead of applied.
type PageController[T any] struct {
	mu         sync.Mutex
	items      []T
	pg         paging.State
	searchTerm string
	loading    bool
	generation uint64

	debounce     *time.Timer
	debounceWait time.Duration

	load     LoadFunc[T]
	notify   Notifier
	nav      Navigator
	sessions SessionEnder
}

type ControllerConfig struct {
	PerPage        int
	SearchDebounce time.Duration
	Notifier       Notifier
	Navigator      Navigator
	Sessions       SessionEnder
}

func NewPageController[T any](cfg ControllerConfig, load LoadFunc[T]) *PageController[T] {
	wait := cfg.SearchDebounce
	if wait <= 0 {
		wait = 300 * time.Millisecond
	}
	nav := cfg.Navigator
	if nav == nil {
		nav = NopNavigator()
	}
	return &PageController[T]{
		pg:           paging.New(cfg.PerPage),
		debounceWait: wait,
		load:         load,
		notify:       cfg.Notifier,
		nav:          nav,
		sessions:     cfg.Sessions,
	}
}

// Mount runs the role gate. It must be called before the first Reload.
func (c *PageController[T]) Mount(role string, allowed ...string) error {
	for _, candidate := range allowed {
		if role == candidate {
			return nil
		}
	}
	c.nav.RedirectHome()
	return ErrRoleDenied
}

func (c *PageController[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

func (c *PageController[T]) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

func (c *PageController[T]) Paging() paging.State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pg
}

func (c *PageController[T]) SearchTerm() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.searchTerm
}

// Reload fetches the current page with the current search term. Stale
// responses (a newer Reload started meanwhile) are discarded.
func (c *PageController[T]) Reload(ctx context.Context) error {
	c.mu.Lock()
	c.generation++
	generation := c.generation
	page, perPage, term := c.pg.Page, c.pg.PerPage, c.searchTerm
	c.loading = true
	c.mu.Unlock()

	result, err := c.load(ctx, page, perPage, term)

	c.mu.Lock()
	defer c.mu.Unlock()
	if generation != c.generation {
		// A newer request owns the state now.
		return nil
	}
	c.loading = false
	if err != nil {
		c.fail(err)
		return err
	}
	c.items = result.Items
	c.pg.Apply(result.Len(), result.Total, result.HasTotal)
	return nil
}

// SetSearchTerm updates the term and schedules a single debounced reload
// that resets to page 1. Rapid calls collapse into the trailing one.
func (c *PageController[T]) SetSearchTerm(ctx context.Context, term string) {
	c.mu.Lock()
	c.searchTerm = term
	if c.debounce != nil {
		c.debounce.Stop()
	}
	c.debounce = time.AfterFunc(c.debounceWait, func() {
		c.mu.Lock()
		c.pg.Page = 1
		c.mu.Unlock()
		_ = c.Reload(ctx)
	})
	c.mu.Unlock()
}

// FlushSearch fires a pending debounced reload immediately. Tests and
// synchronous CLI commands use it instead of sleeping.
func (c *PageController[T]) FlushSearch(ctx context.Context) {
	c.mu.Lock()
	pending := c.debounce != nil && c.debounce.Stop()
	c.debounce = nil
	c.mu.Unlock()
	if pending {
		c.mu.Lock()
		c.pg.Page = 1
		c.mu.Unlock()
		_ = c.Reload(ctx)
	}
}

func (c *PageController[T]) NextPage(ctx context.Context) error {
	c.mu.Lock()
	moved := c.pg.Next()
	c.mu.Unlock()
	if !moved {
		return nil
	}
	return c.Reload(ctx)
}

func (c *PageController[T]) PrevPage(ctx context.Context) error {
	c.mu.Lock()
	moved := c.pg.Prev()
	c.mu.Unlock()
	if !moved {
		return nil
	}
	return c.Reload(ctx)
}

func (c *PageController[T]) SetPerPage(ctx context.Context, perPage int) error {
	c.mu.Lock()
	c.pg.SetPerPage(perPage)
	c.mu.Unlock()
	return c.Reload(ctx)
}

// fail converts an error into the user-facing taxonomy. It touches no
// guarded state, so it is safe with or without c.mu held.
func (c *PageController[T]) fail(err error) {
	switch {
	case errors.Is(err, session.ErrNoToken):
		c.toastError(err.Error())
	case errors.Is(err, api.ErrSessionExpired):
		if c.sessions != nil {
			_ = c.sessions.Clear()
		}
		c.toastError("Your session has expired, please login again")
		c.nav.RedirectToLogin()
	case errors.Is(err, api.ErrUnreachable):
		c.toastError("Cannot reach the server, please try again")
	default:
		c.toastError(err.Error())
	}
}

func (c *PageController[T]) toastError(message string) {
	if c.notify != nil {
		c.notify.Error(message)
	}
}

func (c *PageController[T]) toastSuccess(message string) {
	if c.notify != nil {
		c.notify.Success(message)
	}
}
