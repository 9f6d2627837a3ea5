// Package console implements the page controllers behind each screen:
// paginated collections, debounced search, dialog state machines, and the
// derived display values, all independent of how the tables are rendered.
package console

import "github.com/sirupsen/logrus"

// Notifier is the toast sink. Pages never render toasts themselves.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// Navigator handles the two redirects a page can trigger: forced logout and
// the role gate bouncing an unauthorized user away.
type Navigator interface {
	RedirectToLogin()
	RedirectHome()
}

// SessionEnder clears the persisted session after a 401.
type SessionEnder interface {
	Clear() error
}

type logNotifier struct {
	log *logrus.Logger
}

func NewLogNotifier(log *logrus.Logger) Notifier {
	return &logNotifier{log: log}
}

func (n *logNotifier) Success(message string) {
	n.log.WithField("toast", "success").Info(message)
}

func (n *logNotifier) Error(message string) {
	n.log.WithField("toast", "error").Error(message)
}

type nopNavigator struct{}

func (nopNavigator) RedirectToLogin() {}
func (nopNavigator) RedirectHome()   {}

// NopNavigator is used by one-shot CLI commands where there is nothing to
// redirect; the returned error already ends the command.
func NopNavigator() Navigator {
	return nopNavigator{}
}
