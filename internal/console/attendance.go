package console

import (
	"context"
	"sync"

	"hrmc/internal/api"
)

// AttendancePage is the combined payroll/attendance view: monthly rows with
// the derived efficiency column, filterable by month and employee.
type AttendancePage struct {
	client *api.Client
	Ctrl   *PageController[api.AttendanceRecord]

	mu         sync.Mutex
	searchDate string
	employeeID int
}

func NewAttendancePage(client *api.Client, cfg ControllerConfig) *AttendancePage {
	p := &AttendancePage{client: client}
	p.Ctrl = NewPageController(cfg, p.loadPage)
	return p
}

func (p *AttendancePage) Mount(ctx context.Context, role string) error {
	if err := p.Ctrl.Mount(role, "admin", "hr", "payroll"); err != nil {
		return err
	}
	return p.Ctrl.Reload(ctx)
}

func (p *AttendancePage) loadPage(ctx context.Context, page, perPage int, _ string) (api.ListResult[api.AttendanceRecord], error) {
	p.mu.Lock()
	searchDate, employeeID := p.searchDate, p.employeeID
	p.mu.Unlock()
	return p.client.FetchAttendance(ctx, page, perPage, searchDate, employeeID)
}

// SetFilters narrows the table to a month (YYYY-MM) and/or one employee and
// reloads from page 1.
func (p *AttendancePage) SetFilters(ctx context.Context, searchDate string, employeeID int) error {
	p.mu.Lock()
	p.searchDate = searchDate
	p.employeeID = employeeID
	p.mu.Unlock()

	pg := p.Ctrl.Paging()
	return p.Ctrl.SetPerPage(ctx, pg.PerPage) // resets to page 1 and reloads
}

// Row bundles a record with its derived display values.
type AttendanceRow struct {
	Record     api.AttendanceRecord
	Efficiency float64
	Tier       EfficiencyTier
}

func (p *AttendancePage) Rows() []AttendanceRow {
	items := p.Ctrl.Items()
	rows := make([]AttendanceRow, 0, len(items))
	for _, record := range items {
		eff := Efficiency(record)
		rows = append(rows, AttendanceRow{Record: record, Efficiency: eff, Tier: TierFor(eff)})
	}
	return rows
}
