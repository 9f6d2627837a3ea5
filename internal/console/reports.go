package console

import (
	"context"
	"fmt"

	"hrmc/internal/api"
	"hrmc/internal/export"
)

// ReportsPage fetches the read-only reports and exports them to a workbook.
// Export is a pure formatting pass over data already in memory; it never
// refetches.
type ReportsPage struct {
	client *api.Client
	notify Notifier
}

func NewReportsPage(client *api.Client, cfg ControllerConfig) *ReportsPage {
	return &ReportsPage{client: client, notify: cfg.Notifier}
}

func (p *ReportsPage) Mount(role string) error {
	switch role {
	case "admin", "hr", "payroll":
		return nil
	default:
		return ErrRoleDenied
	}
}

func (p *ReportsPage) HR(ctx context.Context) (*api.HRReport, error) {
	report, err := p.client.FetchHRReport(ctx)
	if err != nil {
		p.toastError(err)
		return nil, err
	}
	return report, nil
}

func (p *ReportsPage) Payroll(ctx context.Context) (*api.PayrollReport, error) {
	report, err := p.client.FetchPayrollReport(ctx)
	if err != nil {
		p.toastError(err)
		return nil, err
	}
	return report, nil
}

func (p *ReportsPage) Dividend(ctx context.Context, year int) (*api.DividendReport, error) {
	report, err := p.client.FetchDividendReport(ctx, year)
	if err != nil {
		p.toastError(err)
		return nil, err
	}
	return report, nil
}

func (p *ReportsPage) ExportHR(report *api.HRReport, path string) error {
	if err := export.HRWorkbook(report, path); err != nil {
		p.toastError(err)
		return err
	}
	p.toastSuccess(fmt.Sprintf("HR report exported to %s", path))
	return nil
}

func (p *ReportsPage) ExportPayroll(report *api.PayrollReport, path string) error {
	if err := export.PayrollWorkbook(report, path); err != nil {
		p.toastError(err)
		return err
	}
	p.toastSuccess(fmt.Sprintf("Payroll report exported to %s", path))
	return nil
}

func (p *ReportsPage) ExportDividend(report *api.DividendReport, path string) error {
	if err := export.DividendWorkbook(report, path); err != nil {
		p.toastError(err)
		return err
	}
	p.toastSuccess(fmt.Sprintf("Dividend report exported to %s", path))
	return nil
}

func (p *ReportsPage) toastError(err error) {
	if p.notify != nil {
		p.notify.Error(err.Error())
	}
}

func (p *ReportsPage) toastSuccess(message string) {
	if p.notify != nil {
		p.notify.Success(message)
	}
}
