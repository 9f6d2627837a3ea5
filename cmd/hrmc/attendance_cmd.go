package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"hrmc/internal/console"
)

func newAttendanceCmd(a *app) *cobra.Command {
	var pageNum int
	var month string
	var employeeID int

	cmd := &cobra.Command{
		Use:   "attendance",
		Short: "Show monthly attendance with efficiency tiers",
		RunE: func(cmd *cobra.Command, args []string) error {
			role, err := a.requireLogin()
			if err != nil {
				return err
			}
			page := console.NewAttendancePage(a.client, a.consoleConfig())
			if err := page.Mount(cmd.Context(), role); err != nil {
				return err
			}
			if month != "" || employeeID > 0 {
				if err := page.SetFilters(cmd.Context(), month, employeeID); err != nil {
					return err
				}
			}
			if err := advanceTo(cmd.Context(), page.Ctrl, pageNum); err != nil {
				return err
			}
			rows := make([][]string, 0)
			for _, row := range page.Rows() {
				rows = append(rows, []string{
					itoa(row.Record.EmployeeID.Int()),
					row.Record.AttendanceMonth,
					itoa(row.Record.WorkDays),
					itoa(row.Record.AbsentDays),
					itoa(row.Record.LeaveDays),
					strconv.FormatFloat(row.Efficiency, 'f', 1, 64) + "%",
					string(row.Tier),
				})
			}
			renderTable([]string{"EMPLOYEE", "MONTH", "WORKED", "ABSENT", "LEAVE", "EFFICIENCY", "TIER"}, rows)
			renderPaging(page.Ctrl.Paging())
			return nil
		},
	}
	cmd.Flags().IntVar(&pageNum, "page", 1, "Page to show")
	cmd.Flags().StringVar(&month, "month", "", "Filter by month (YYYY-MM)")
	cmd.Flags().IntVar(&employeeID, "employee", 0, "Filter by employee id")
	return cmd
}
