package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"hrmc/internal/console"
)

func newProfileCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "View the logged-in user's profile",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Show the profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.requireLogin(); err != nil {
				return err
			}
			page := console.NewProfilePage(a.client, a.consoleConfig())
			if err := page.Mount(cmd.Context()); err != nil {
				return err
			}
			p := page.Profile()
			fmt.Printf("%s <%s>\n", p.Name, p.Email)
			fmt.Printf("%s, %s\n", p.JobTitle, p.Department)
			fmt.Printf("salary: base %s, bonus %s, deductions %s, net %s\n",
				money(p.Salary.Base), money(p.Salary.Bonus), money(p.Salary.Deductions), money(p.Salary.Net))
			fmt.Printf("attendance: %d present, %d absent, %d leave (of %d)\n",
				p.Attendance.Present, p.Attendance.Absent, p.Attendance.Leave, p.Attendance.Total)
			for _, warning := range p.SalaryGapWarnings {
				fmt.Printf("warning: %s\n", warning)
			}
			return nil
		},
	}

	var oldPassword, newPassword string
	change := &cobra.Command{
		Use:   "change-password",
		Short: "Change the account password",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.requireLogin(); err != nil {
				return err
			}
			page := console.NewProfilePage(a.client, a.consoleConfig())
			return page.ChangePassword(cmd.Context(), oldPassword, newPassword)
		},
	}
	change.Flags().StringVar(&oldPassword, "old", "", "Current password")
	change.Flags().StringVar(&newPassword, "new", "", "New password (at least 8 characters)")
	_ = change.MarkFlagRequired("old")
	_ = change.MarkFlagRequired("new")

	cmd.AddCommand(show, change)
	return cmd
}

func newDashboardCmd(a *app) *cobra.Command {
	var watch time.Duration

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show the role dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			role, err := a.requireLogin()
			if err != nil {
				return err
			}
			page := console.NewDashboardPage(a.client, a.consoleConfig())
			if err := page.Mount(cmd.Context(), role); err != nil {
				return err
			}
			printDashboard := func() {
				d := page.Data()
				if d == nil {
					return
				}
				fmt.Printf("%s dashboard: %d employees, %d departments, %d positions\n",
					d.Role, d.TotalEmployees, d.TotalDepartments, d.TotalPositions)
				fmt.Printf("payroll total %s, on leave today %d\n", money(d.PayrollTotal), d.OnLeaveToday)
			}
			printDashboard()

			if watch <= 0 {
				return nil
			}
			page.StartAutoRefresh(cmd.Context(), watch)
			defer page.Close()
			ticker := time.NewTicker(watch)
			defer ticker.Stop()
			for {
				select {
				case <-cmd.Context().Done():
					return nil
				case <-ticker.C:
					printDashboard()
				}
			}
		},
	}
	cmd.Flags().DurationVar(&watch, "watch", 0, "Refresh interval (0 disables)")
	return cmd
}
