package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"hrmc/internal/api"
	"hrmc/internal/console"
	"hrmc/internal/export"
)

func (a *app) payrollPage(cmd *cobra.Command) (*console.PayrollPage, error) {
	role, err := a.requireLogin()
	if err != nil {
		return nil, err
	}
	page := console.NewPayrollPage(a.client, a.consoleConfig())
	if err := page.Mount(cmd.Context(), role); err != nil {
		return nil, err
	}
	return page, nil
}

func newPayrollCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "payroll",
		Short: "Manage payroll",
	}

	var pageNum int
	var search string
	list := &cobra.Command{
		Use:   "list",
		Short: "List payroll rows",
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := a.payrollPage(cmd)
			if err != nil {
				return err
			}
			if search != "" {
				page.Ctrl.SetSearchTerm(cmd.Context(), search)
				page.Ctrl.FlushSearch(cmd.Context())
			}
			if err := advanceTo(cmd.Context(), page.Ctrl, pageNum); err != nil {
				return err
			}
			items := page.Ctrl.Items()
			rows := make([][]string, 0)
			for _, row := range items {
				rows = append(rows, []string{
					itoa(row.SalaryID.Int()),
					row.FullName,
					money(row.BaseSalary),
					money(row.Bonus),
					money(row.Deductions),
					money(row.NetSalary),
					row.Status,
				})
			}
			renderTable([]string{"ID", "NAME", "BASE", "BONUS", "DEDUCTIONS", "NET", "STATUS"}, rows)
			fmt.Printf("page net total: %s\n", money(console.PayrollTotal(items)))
			renderPaging(page.Ctrl.Paging())
			return nil
		},
	}
	list.Flags().IntVar(&pageNum, "page", 1, "Page to show")
	list.Flags().StringVar(&search, "search", "", "Search by employee name")

	var addEmployee int
	var addBase, addBonus, addDeductions float64
	add := &cobra.Command{
		Use:   "add",
		Short: "Create a payroll row",
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := a.payrollPage(cmd)
			if err != nil {
				return err
			}
			page.Dialog.Open(api.Payroll{
				EmployeeID: api.FlexInt(addEmployee),
				BaseSalary: addBase,
				Bonus:      addBonus,
				Deductions: addDeductions,
			})
			return page.SubmitAdd(cmd.Context())
		},
	}
	add.Flags().IntVar(&addEmployee, "employee", 0, "Employee id")
	add.Flags().Float64Var(&addBase, "base", 0, "Base salary")
	add.Flags().Float64Var(&addBonus, "bonus", 0, "Bonus")
	add.Flags().Float64Var(&addDeductions, "deductions", 0, "Deductions")
	_ = add.MarkFlagRequired("employee")
	_ = add.MarkFlagRequired("base")

	var updateID, updateEmployee int
	var updateBase, updateBonus, updateDeductions float64
	update := &cobra.Command{
		Use:   "update",
		Short: "Update a payroll row",
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := a.payrollPage(cmd)
			if err != nil {
				return err
			}
			page.Dialog.Open(api.Payroll{
				SalaryID:   api.FlexInt(updateID),
				EmployeeID: api.FlexInt(updateEmployee),
				BaseSalary: updateBase,
				Bonus:      updateBonus,
				Deductions: updateDeductions,
			})
			return page.SubmitEdit(cmd.Context())
		},
	}
	update.Flags().IntVar(&updateID, "id", 0, "Salary id")
	update.Flags().IntVar(&updateEmployee, "employee", 0, "Employee id")
	update.Flags().Float64Var(&updateBase, "base", 0, "Base salary")
	update.Flags().Float64Var(&updateBonus, "bonus", 0, "Bonus")
	update.Flags().Float64Var(&updateDeductions, "deductions", 0, "Deductions")
	_ = update.MarkFlagRequired("id")
	_ = update.MarkFlagRequired("employee")
	_ = update.MarkFlagRequired("base")

	var deleteID int
	del := &cobra.Command{
		Use:   "delete",
		Short: "Delete a payroll row",
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := a.payrollPage(cmd)
			if err != nil {
				return err
			}
			return page.Delete(cmd.Context(), deleteID)
		},
	}
	del.Flags().IntVar(&deleteID, "id", 0, "Salary id")
	_ = del.MarkFlagRequired("id")

	var notifyMonth string
	notify := &cobra.Command{
		Use:   "notify",
		Short: "Queue salary notification emails for a month",
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := a.payrollPage(cmd)
			if err != nil {
				return err
			}
			return page.NotifySalaries(cmd.Context(), notifyMonth)
		},
	}
	notify.Flags().StringVar(&notifyMonth, "month", "", "Month (YYYY-MM)")
	_ = notify.MarkFlagRequired("month")

	var payslipID int
	var payslipMonth, payslipOut string
	payslip := &cobra.Command{
		Use:   "payslip",
		Short: "Write a payslip PDF for one payroll row",
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := a.payrollPage(cmd)
			if err != nil {
				return err
			}
			for {
				for _, row := range page.Ctrl.Items() {
					if row.SalaryID.Int() != payslipID {
						continue
					}
					if payslipOut == "" {
						payslipOut = filepath.Join(a.cfg.ExportDir, fmt.Sprintf("payslip-%d-%s.pdf", payslipID, payslipMonth))
					}
					if err := export.PayslipPDF(row, payslipMonth, payslipOut); err != nil {
						return err
					}
					fmt.Printf("Payslip written to %s\n", payslipOut)
					return nil
				}
				before := page.Ctrl.Paging().Page
				if err := page.Ctrl.NextPage(cmd.Context()); err != nil {
					return err
				}
				if page.Ctrl.Paging().Page == before {
					return fmt.Errorf("payroll row %d not found", payslipID)
				}
			}
		},
	}
	payslip.Flags().IntVar(&payslipID, "id", 0, "Salary id")
	payslip.Flags().StringVar(&payslipMonth, "month", "", "Month shown on the slip (YYYY-MM)")
	payslip.Flags().StringVar(&payslipOut, "out", "", "Output path (default under the export dir)")
	_ = payslip.MarkFlagRequired("id")
	_ = payslip.MarkFlagRequired("month")

	cmd.AddCommand(list, add, update, del, notify, payslip)
	return cmd
}
