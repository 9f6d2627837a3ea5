// hrmc is the terminal console for the HRM backend: login, browse the
// paginated tables, run the CRUD flows, and export reports, all against
// the same API the web client uses.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"hrmc/internal/api"
	"hrmc/internal/console"
	"hrmc/internal/platform/config"
	cryptoutil "hrmc/internal/platform/crypto"
	"hrmc/internal/platform/logging"
	"hrmc/internal/session"
)

type app struct {
	cfg      config.Config
	log      *logrus.Logger
	sessions *session.Store
	client   *api.Client
}

func (a *app) init() error {
	a.cfg = config.Load()
	if err := a.cfg.Validate(); err != nil {
		return err
	}
	a.log = logging.New(a.cfg)

	svc, err := cryptoutil.New(a.cfg.SessionKey)
	if err != nil {
		return fmt.Errorf("session encryption: %w", err)
	}
	a.sessions, err = session.Open(a.cfg.SessionFile, svc)
	if err != nil {
		return err
	}
	a.client, err = api.New(a.cfg, a.sessions, a.log)
	return err
}

// requireLogin resolves the current role, failing up front so commands never
// reach the role gate (or the network) logged out.
func (a *app) requireLogin() (string, error) {
	if !a.sessions.LoggedIn() {
		return "", session.ErrNoToken
	}
	return a.sessions.Role(), nil
}

// consoleConfig adapts the page controllers for one-shot commands: toasts go
// to the terminal and there is no surface to redirect.
func (a *app) consoleConfig() console.ControllerConfig {
	return console.ControllerConfig{
		PerPage:        a.cfg.PerPage,
		SearchDebounce: 0, // CLI searches fire immediately
		Notifier:       terminalNotifier{},
		Navigator:      console.NopNavigator(),
		Sessions:       a.sessions,
	}
}

type terminalNotifier struct{}

func (terminalNotifier) Success(message string) {
	fmt.Println(message)
}

func (terminalNotifier) Error(message string) {
	fmt.Fprintln(os.Stderr, "error: "+message)
}

func newRootCmd() *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:           "hrmc",
		Short:         "HRM console client",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
	}
	cmd.AddCommand(
		newLoginCmd(a),
		newLogoutCmd(a),
		newWhoamiCmd(a),
		newDepartmentsCmd(a),
		newPositionsCmd(a),
		newEmployeesCmd(a),
		newAttendanceCmd(a),
		newPayrollCmd(a),
		newProfileCmd(a),
		newDashboardCmd(a),
		newReportsCmd(a),
	)
	return cmd
}

func execute() {
	if err := newRootCmd().Execute(); err != nil {
		if errors.Is(err, console.ErrRoleDenied) {
			fmt.Fprintln(os.Stderr, "error: your role does not have access to this page")
		} else {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}
