package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"hrmc/internal/api"
	"hrmc/internal/console"
)

func (a *app) reportsPage() (*console.ReportsPage, error) {
	role, err := a.requireLogin()
	if err != nil {
		return nil, err
	}
	page := console.NewReportsPage(a.client, a.consoleConfig())
	if err := page.Mount(role); err != nil {
		return nil, err
	}
	return page, nil
}

func renderAllocations(title string, allocations []api.Allocation) {
	fmt.Println(title)
	rows := make([][]string, 0, len(allocations))
	for _, alloc := range allocations {
		row := []string{alloc.Name, itoa(alloc.Count)}
		if alloc.Amount != 0 {
			row = append(row, money(alloc.Amount))
		}
		row = append(row, money(alloc.Percentage)+"%")
		rows = append(rows, row)
	}
	renderTable(nil, rows)
}

func newReportsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reports",
		Short: "Company reports with optional workbook export",
	}

	var hrExport string
	hr := &cobra.Command{
		Use:   "hr",
		Short: "Headcount report",
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := a.reportsPage()
			if err != nil {
				return err
			}
			report, err := page.HR(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Printf("total employees: %d\n", report.TotalEmployees)
			renderAllocations("by department:", report.DepartmentAllocation)
			renderAllocations("by position:", report.PositionAllocation)
			renderAllocations("by status:", report.StatusAllocation)
			if hrExport != "" {
				return page.ExportHR(report, hrExport)
			}
			return nil
		},
	}
	hr.Flags().StringVar(&hrExport, "export", "", "Write the report to this .xlsx path")

	var payrollExport string
	payroll := &cobra.Command{
		Use:   "payroll",
		Short: "Payroll budget report",
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := a.reportsPage()
			if err != nil {
				return err
			}
			report, err := page.Payroll(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Printf("total budget: %s\n", money(report.TotalBudget))
			renderAllocations("by department:", report.DepartmentAllocation)
			renderAllocations("salary bands:", report.SalaryBands)
			if payrollExport != "" {
				return page.ExportPayroll(report, payrollExport)
			}
			return nil
		},
	}
	payroll.Flags().StringVar(&payrollExport, "export", "", "Write the report to this .xlsx path")

	var dividendYear int
	var dividendExport string
	dividend := &cobra.Command{
		Use:   "dividend",
		Short: "Dividend report for a year",
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := a.reportsPage()
			if err != nil {
				return err
			}
			report, err := page.Dividend(cmd.Context(), dividendYear)
			if err != nil {
				return err
			}
			fmt.Printf("dividends paid in %d: %s\n", report.Year, money(report.TotalDividendPaid))
			renderAllocations("by quarter:", report.QuarterAllocation)
			if dividendExport != "" {
				return page.ExportDividend(report, dividendExport)
			}
			return nil
		},
	}
	dividend.Flags().IntVar(&dividendYear, "year", time.Now().Year(), "Report year")
	dividend.Flags().StringVar(&dividendExport, "export", "", "Write the report to this .xlsx path")

	cmd.AddCommand(hr, payroll, dividend)
	return cmd
}
