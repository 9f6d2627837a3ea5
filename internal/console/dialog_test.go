package console

import (
	"context"
	"errors"
	"testing"
)

func TestDialogLifecycle(t *testing.T) {
	d := NewDialog[string](nil, nil, nil)
	if d.State() != DialogClosed {
		t.Fatalf("expected closed, got %s", d.State())
	}
	d.Open("draft")
	if d.State() != DialogEditing || d.Item() != "draft" {
		t.Fatalf("expected editing with draft, got %s %q", d.State(), d.Item())
	}
	d.Cancel()
	if d.State() != DialogClosed {
		t.Fatalf("expected closed after cancel, got %s", d.State())
	}
}

func TestSubmitValidationFailureSkipsAction(t *testing.T) {
	notify := &recordingNotifier{}
	d := NewDialog[string](notify, nil, nil)
	d.Open("")

	actionCalls := 0
	err := d.Submit(context.Background(),
		func(item string) error { return errors.New("name is required") },
		func(ctx context.Context, item string) error {
			actionCalls++
			return nil
		},
		nil)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if actionCalls != 0 {
		t.Fatal("validation failure must not reach the network action")
	}
	if d.State() != DialogError {
		t.Fatalf("expected error state, got %s", d.State())
	}
	if notify.lastError() != "name is required" {
		t.Fatalf("expected validation toast, got %q", notify.lastError())
	}
}

func TestSubmitSuccessClosesAndRunsFollowup(t *testing.T) {
	d := NewDialog[string](nil, nil, nil)
	d.Open("Sales")

	followed := false
	err := d.Submit(context.Background(), nil,
		func(ctx context.Context, item string) error { return nil },
		func(item string) { followed = true })
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !followed {
		t.Fatal("expected onSuccess to run")
	}
	if d.State() != DialogClosed {
		t.Fatalf("expected closed after success, got %s", d.State())
	}
}

func TestSubmitServerErrorKeepsDialogOpen(t *testing.T) {
	notify := &recordingNotifier{}
	d := NewDialog[string](notify, nil, nil)
	d.Open("Sales")

	boom := errors.New("HTTP 409 Conflict: duplicate name")
	err := d.Submit(context.Background(), nil,
		func(ctx context.Context, item string) error { return boom },
		func(item string) { t.Fatal("onSuccess must not run on failure") })
	if !errors.Is(err, boom) {
		t.Fatalf("expected the server error, got %v", err)
	}
	if d.State() != DialogError {
		t.Fatalf("expected error state, got %s", d.State())
	}
	if d.Item() != "Sales" {
		t.Fatal("draft must survive a failed submit")
	}

	// The user can resubmit from the error state.
	if err := d.Submit(context.Background(), nil,
		func(ctx context.Context, item string) error { return nil }, nil); err != nil {
		t.Fatalf("resubmit: %v", err)
	}
	if d.State() != DialogClosed {
		t.Fatalf("expected closed after resubmit, got %s", d.State())
	}
}

func TestSubmitWhileClosedRefuses(t *testing.T) {
	d := NewDialog[string](nil, nil, nil)
	if err := d.Submit(context.Background(), nil,
		func(ctx context.Context, item string) error { return nil }, nil); err == nil {
		t.Fatal("expected refusal when dialog is closed")
	}
}
