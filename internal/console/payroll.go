package console

import (
	"context"
	"fmt"

	"hrmc/internal/api"
	"hrmc/internal/validate"
)

type PayrollPage struct {
	client *api.Client
	Ctrl   *PageController[api.Payroll]
	Dialog *Dialog[api.Payroll]
}

func NewPayrollPage(client *api.Client, cfg ControllerConfig) *PayrollPage {
	p := &PayrollPage{client: client}
	p.Ctrl = NewPageController(cfg, p.loadPage)
	p.Dialog = NewDialog[api.Payroll](cfg.Notifier, cfg.Navigator, cfg.Sessions)
	return p
}

func (p *PayrollPage) Mount(ctx context.Context, role string) error {
	if err := p.Ctrl.Mount(role, "admin", "payroll"); err != nil {
		return err
	}
	return p.Ctrl.Reload(ctx)
}

func (p *PayrollPage) loadPage(ctx context.Context, page, perPage int, searchTerm string) (api.ListResult[api.Payroll], error) {
	if searchTerm != "" {
		return p.client.SearchPayroll(ctx, searchTerm, page, perPage)
	}
	return p.client.FetchPayroll(ctx, page, perPage)
}

func validatePayroll(row api.Payroll) error {
	v := validate.New()
	v.PositiveID("EmployeeID", row.EmployeeID.Int())
	v.NonNegative("BaseSalary", row.BaseSalary)
	v.NonNegative("Bonus", row.Bonus)
	v.NonNegative("Deductions", row.Deductions)
	if v.HasIssues() {
		return fmt.Errorf("%s", v.Message())
	}
	return nil
}

// SubmitAdd recomputes NetSalary from its parts before the row leaves the
// client; whatever was typed into the net field is ignored.
func (p *PayrollPage) SubmitAdd(ctx context.Context) error {
	return p.Dialog.Submit(ctx, validatePayroll,
		func(ctx context.Context, row api.Payroll) error {
			row.NetSalary = NetSalary(row.BaseSalary, row.Bonus, row.Deductions)
			_, err := p.client.AddPayroll(ctx, row)
			return err
		},
		func(row api.Payroll) {
			p.Ctrl.toastSuccess(fmt.Sprintf("Payroll row for %q created", row.FullName))
			_ = p.Ctrl.Reload(ctx)
		})
}

func (p *PayrollPage) SubmitEdit(ctx context.Context) error {
	return p.Dialog.Submit(ctx,
		func(row api.Payroll) error {
			if err := validatePayroll(row); err != nil {
				return err
			}
			v := validate.New()
			v.PositiveID("SalaryID", row.SalaryID.Int())
			if v.HasIssues() {
				return fmt.Errorf("%s", v.Message())
			}
			return nil
		},
		func(ctx context.Context, row api.Payroll) error {
			row.NetSalary = NetSalary(row.BaseSalary, row.Bonus, row.Deductions)
			return p.client.UpdatePayroll(ctx, row.SalaryID.Int(), row)
		},
		func(row api.Payroll) {
			p.Ctrl.toastSuccess(fmt.Sprintf("Payroll row for %q updated", row.FullName))
			_ = p.Ctrl.Reload(ctx)
		})
}

func (p *PayrollPage) Delete(ctx context.Context, id int) error {
	if err := p.client.DeletePayroll(ctx, id); err != nil {
		p.Ctrl.fail(err)
		return err
	}
	p.Ctrl.toastSuccess("Payroll row deleted")
	return p.Ctrl.Reload(ctx)
}

// NotifySalaries asks the backend to email payslips for a month.
func (p *PayrollPage) NotifySalaries(ctx context.Context, monthStr string) error {
	v := validate.New()
	v.Required("month", monthStr)
	if v.HasIssues() {
		err := fmt.Errorf("%s", v.Message())
		p.Ctrl.toastError(err.Error())
		return err
	}
	if err := p.client.SendSalaryNotification(ctx, monthStr); err != nil {
		p.Ctrl.fail(err)
		return err
	}
	p.Ctrl.toastSuccess(fmt.Sprintf("Salary notification emails queued for %s", monthStr))
	return nil
}
