package console

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"hrmc/internal/api"
)

type recordingNotifier struct {
	mu        sync.Mutex
	successes []string
	errors    []string
}

func (n *recordingNotifier) Success(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.successes = append(n.successes, message)
}

func (n *recordingNotifier) Error(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.errors = append(n.errors, message)
}

func (n *recordingNotifier) lastError() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.errors) == 0 {
		return ""
	}
	return n.errors[len(n.errors)-1]
}

type recordingNavigator struct {
	mu      sync.Mutex
	toLogin int
	home    int
}

func (n *recordingNavigator) RedirectToLogin() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.toLogin++
}

func (n *recordingNavigator) RedirectHome() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.home++
}

type recordingSession struct {
	cleared atomic.Int32
}

func (s *recordingSession) Clear() error {
	s.cleared.Add(1)
	return nil
}

func fixedLoad(items []string, total int) LoadFunc[string] {
	return func(ctx context.Context, page, perPage int, searchTerm string) (api.ListResult[string], error) {
		return api.ListResult[string]{Items: items, Total: total, HasTotal: true}, nil
	}
}

func TestMountRoleGate(t *testing.T) {
	nav := &recordingNavigator{}
	ctrl := NewPageController(ControllerConfig{PerPage: 10, Navigator: nav}, fixedLoad(nil, 0))

	if err := ctrl.Mount("employee", "admin", "hr"); !errors.Is(err, ErrRoleDenied) {
		t.Fatalf("expected ErrRoleDenied, got %v", err)
	}
	if nav.home != 1 {
		t.Fatalf("expected one redirect home, got %d", nav.home)
	}
	if err := ctrl.Mount("hr", "admin", "hr"); err != nil {
		t.Fatalf("expected hr to pass the gate, got %v", err)
	}
}

func TestDebouncedSearchTriggersOneReloadAndResetsPage(t *testing.T) {
	var loads atomic.Int32
	var lastTerm atomic.Value
	var lastPage atomic.Int32
	load := func(ctx context.Context, page, perPage int, term string) (api.ListResult[string], error) {
		loads.Add(1)
		lastTerm.Store(term)
		lastPage.Store(int32(page))
		return api.ListResult[string]{Items: []string{"x"}, Total: 100, HasTotal: true}, nil
	}
	ctrl := NewPageController(ControllerConfig{PerPage: 10, SearchDebounce: 20 * time.Millisecond}, load)

	ctx := context.Background()
	if err := ctrl.Reload(ctx); err != nil {
		t.Fatalf("initial reload: %v", err)
	}
	_ = ctrl.NextPage(ctx)
	before := loads.Load()

	// Three keystrokes inside the debounce window.
	ctrl.SetSearchTerm(ctx, "n")
	ctrl.SetSearchTerm(ctx, "ng")
	ctrl.SetSearchTerm(ctx, "ngu")

	time.Sleep(80 * time.Millisecond)

	if got := loads.Load() - before; got != 1 {
		t.Fatalf("expected exactly one debounced reload, got %d", got)
	}
	if lastTerm.Load().(string) != "ngu" {
		t.Fatalf("expected trailing term, got %q", lastTerm.Load())
	}
	if lastPage.Load() != 1 {
		t.Fatalf("expected page reset to 1, got %d", lastPage.Load())
	}
}

func TestStaleResponseDiscarded(t *testing.T) {
	release := make(chan struct{})
	var calls atomic.Int32
	load := func(ctx context.Context, page, perPage int, term string) (api.ListResult[string], error) {
		if calls.Add(1) == 1 {
			<-release // first request resolves after the second
			return api.ListResult[string]{Items: []string{"stale"}, Total: 1, HasTotal: true}, nil
		}
		return api.ListResult[string]{Items: []string{"fresh"}, Total: 1, HasTotal: true}, nil
	}
	ctrl := NewPageController(ControllerConfig{PerPage: 10}, load)

	ctx := context.Background()
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = ctrl.Reload(ctx)
	}()

	// Wait for the first request to be in flight, then supersede it.
	for calls.Load() == 0 {
		time.Sleep(time.Millisecond)
	}
	if err := ctrl.Reload(ctx); err != nil {
		t.Fatalf("second reload: %v", err)
	}
	close(release)
	wg.Wait()

	items := ctrl.Items()
	if len(items) != 1 || items[0] != "fresh" {
		t.Fatalf("stale response must not overwrite fresh one, got %v", items)
	}
}

func TestSessionExpiredClearsAndRedirects(t *testing.T) {
	notify := &recordingNotifier{}
	nav := &recordingNavigator{}
	sessions := &recordingSession{}
	load := func(ctx context.Context, page, perPage int, term string) (api.ListResult[string], error) {
		return api.ListResult[string]{}, api.ErrSessionExpired
	}
	ctrl := NewPageController(ControllerConfig{
		PerPage:   10,
		Notifier:  notify,
		Navigator: nav,
		Sessions:  sessions,
	}, load)

	if err := ctrl.Reload(context.Background()); !errors.Is(err, api.ErrSessionExpired) {
		t.Fatalf("expected ErrSessionExpired, got %v", err)
	}
	if sessions.cleared.Load() != 1 {
		t.Fatal("expected session to be cleared")
	}
	if nav.toLogin != 1 {
		t.Fatalf("expected redirect to login, got %d", nav.toLogin)
	}
	if notify.lastError() == "" {
		t.Fatal("expected an error toast")
	}
}

func TestUnreachableGetsGenericToast(t *testing.T) {
	notify := &recordingNotifier{}
	load := func(ctx context.Context, page, perPage int, term string) (api.ListResult[string], error) {
		return api.ListResult[string]{}, api.ErrUnreachable
	}
	ctrl := NewPageController(ControllerConfig{PerPage: 10, Notifier: notify}, load)
	_ = ctrl.Reload(context.Background())
	if notify.lastError() != "Cannot reach the server, please try again" {
		t.Fatalf("unexpected toast %q", notify.lastError())
	}
}

func TestPaginationBoundariesDriveReloads(t *testing.T) {
	var loads atomic.Int32
	load := func(ctx context.Context, page, perPage int, term string) (api.ListResult[string], error) {
		loads.Add(1)
		return api.ListResult[string]{Items: []string{"a"}, Total: 15, HasTotal: true}, nil
	}
	ctrl := NewPageController(ControllerConfig{PerPage: 10}, load)
	ctx := context.Background()
	_ = ctrl.Reload(ctx)

	if err := ctrl.NextPage(ctx); err != nil {
		t.Fatalf("next: %v", err)
	}
	if ctrl.Paging().Page != 2 {
		t.Fatalf("expected page 2, got %d", ctrl.Paging().Page)
	}
	count := loads.Load()
	if err := ctrl.NextPage(ctx); err != nil {
		t.Fatalf("next at boundary: %v", err)
	}
	if loads.Load() != count {
		t.Fatal("next past the last page must not reload")
	}
	if err := ctrl.PrevPage(ctx); err != nil {
		t.Fatalf("prev: %v", err)
	}
	if ctrl.Paging().Page != 1 {
		t.Fatalf("expected page 1, got %d", ctrl.Paging().Page)
	}
}
