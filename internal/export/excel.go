// Package export turns already-fetched report data into files on disk:
// multi-sheet xlsx workbooks for the report screens and a payslip PDF.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"hrmc/internal/api"
)

func writeAllocationSheet(f *excelize.File, sheet string, header []interface{}, rows []api.Allocation, withAmount bool) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	for i, row := range rows {
		cells := []interface{}{row.Name, row.Count}
		if withAmount {
			cells = append(cells, row.Amount)
		}
		cells = append(cells, fmt.Sprintf("%.1f%%", row.Percentage))
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
			return err
		}
	}
	return nil
}

func saveWorkbook(f *excelize.File, path string) error {
	// The default Sheet1 was renamed to Summary by the callers.
	index, err := f.GetSheetIndex("Summary")
	if err == nil && index >= 0 {
		f.SetActiveSheet(index)
	}
	return f.SaveAs(path)
}

// HRWorkbook writes the HR report: a summary sheet plus one sheet per
// allocation grouping.
func HRWorkbook(report *api.HRReport, path string) error {
	if report == nil {
		return fmt.Errorf("no report data to export")
	}
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", "Summary"); err != nil {
		return err
	}
	summary := []interface{}{"Total employees", report.TotalEmployees}
	if err := f.SetSheetRow("Summary", "A1", &summary); err != nil {
		return err
	}

	header := []interface{}{"Name", "Employees", "Share"}
	if err := writeAllocationSheet(f, "Departments", header, report.DepartmentAllocation, false); err != nil {
		return err
	}
	if err := writeAllocationSheet(f, "Positions", header, report.PositionAllocation, false); err != nil {
		return err
	}
	if err := writeAllocationSheet(f, "Status", header, report.StatusAllocation, false); err != nil {
		return err
	}
	return saveWorkbook(f, path)
}

func PayrollWorkbook(report *api.PayrollReport, path string) error {
	if report == nil {
		return fmt.Errorf("no report data to export")
	}
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", "Summary"); err != nil {
		return err
	}
	summary := []interface{}{"Total budget", report.TotalBudget}
	if err := f.SetSheetRow("Summary", "A1", &summary); err != nil {
		return err
	}

	header := []interface{}{"Name", "Employees", "Amount", "Share"}
	if err := writeAllocationSheet(f, "Departments", header, report.DepartmentAllocation, true); err != nil {
		return err
	}
	if err := writeAllocationSheet(f, "Salary bands", header, report.SalaryBands, true); err != nil {
		return err
	}
	return saveWorkbook(f, path)
}

func DividendWorkbook(report *api.DividendReport, path string) error {
	if report == nil {
		return fmt.Errorf("no report data to export")
	}
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", "Summary"); err != nil {
		return err
	}
	rows := [][]interface{}{
		{"Year", report.Year},
		{"Total dividend paid", report.TotalDividendPaid},
	}
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow("Summary", cell, &rows[i]); err != nil {
			return err
		}
	}

	header := []interface{}{"Quarter", "Payouts", "Amount", "Share"}
	if err := writeAllocationSheet(f, "Quarters", header, report.QuarterAllocation, true); err != nil {
		return err
	}
	return saveWorkbook(f, path)
}
