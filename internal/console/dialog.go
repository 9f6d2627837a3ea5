package console

import (
	"context"
	"errors"
	"sync"

	"hrmc/internal/api"
	"hrmc/internal/session"
)

type DialogState int

const (
	DialogClosed DialogState = iota
	DialogEditing
	DialogSubmitting
	DialogError
)

func (s DialogState) String() string {
	switch s {
	case DialogClosed:
		return "closed"
	case DialogEditing:
		return "editing"
	case DialogSubmitting:
		return "submitting"
	case DialogError:
		return "error"
	default:
		return "unknown"
	}
}

var errDialogNotEditable = errors.New("dialog is not accepting a submit")

// Dialog is the add/edit/delete dialog as an explicit state machine:
// closed -> editing -> submitting -> closed on success, or -> error with the
// dialog still open so the user can correct and resubmit.
type Dialog[T any] struct {
	mu    sync.Mutex
	state DialogState
	item  T
	err   error

	notify   Notifier
	nav      Navigator
	sessions SessionEnder
}

func NewDialog[T any](notify Notifier, nav Navigator, sessions SessionEnder) *Dialog[T] {
	if nav == nil {
		nav = NopNavigator()
	}
	return &Dialog[T]{notify: notify, nav: nav, sessions: sessions}
}

func (d *Dialog[T]) State() DialogState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

func (d *Dialog[T]) Item() T {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.item
}

func (d *Dialog[T]) Err() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.err
}

// Open moves to editing with the given draft (zero value for "add").
func (d *Dialog[T]) Open(item T) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.state = DialogEditing
	d.item = item
	d.err = nil
}

func (d *Dialog[T]) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	var zero T
	d.state = DialogClosed
	d.item = zero
	d.err = nil
}

// Submit runs validate, then action, then onSuccess. Validation failures and
// server errors keep the dialog open in the error state; success closes it.
// No network call is made when validation fails.
func (d *Dialog[T]) Submit(ctx context.Context, validate func(item T) error, action func(ctx context.Context, item T) error, onSuccess func(item T)) error {
	d.mu.Lock()
	if d.state != DialogEditing && d.state != DialogError {
		d.mu.Unlock()
		return errDialogNotEditable
	}
	item := d.item
	d.state = DialogSubmitting
	d.err = nil
	d.mu.Unlock()

	if validate != nil {
		if err := validate(item); err != nil {
			d.settle(DialogError, err)
			if d.notify != nil {
				d.notify.Error(err.Error())
			}
			return err
		}
	}

	if err := action(ctx, item); err != nil {
		d.settle(DialogError, err)
		d.surface(err)
		return err
	}

	d.mu.Lock()
	var zero T
	d.state = DialogClosed
	d.item = zero
	d.err = nil
	d.mu.Unlock()

	if onSuccess != nil {
		onSuccess(item)
	}
	return nil
}

func (d *Dialog[T]) settle(state DialogState, err error) {
	d.mu.Lock()
	d.state = state
	d.err = err
	d.mu.Unlock()
}

// surface maps a failed action onto the shared error taxonomy.
func (d *Dialog[T]) surface(err error) {
	if d.notify == nil {
		return
	}
	switch {
	case errors.Is(err, session.ErrNoToken):
		d.notify.Error(err.Error())
	case errors.Is(err, api.ErrSessionExpired):
		if d.sessions != nil {
			_ = d.sessions.Clear()
		}
		d.notify.Error("Your session has expired, please login again")
		d.nav.RedirectToLogin()
	case errors.Is(err, api.ErrUnreachable):
		d.notify.Error("Cannot reach the server, please try again")
	default:
		d.notify.Error(err.Error())
	}
}
