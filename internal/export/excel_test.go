package export

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"hrmc/internal/api"
)

func TestHRWorkbookSheets(t *testing.T) {
	report := &api.HRReport{
		TotalEmployees: 12,
		DepartmentAllocation: []api.Allocation{
			{Name: "Sales", Count: 5, Percentage: 41.7},
			{Name: "IT", Count: 7, Percentage: 58.3},
		},
		PositionAllocation: []api.Allocation{{Name: "Engineer", Count: 7, Percentage: 58.3}},
		StatusAllocation:   []api.Allocation{{Name: "Active", Count: 11, Percentage: 91.7}},
	}

	path := filepath.Join(t.TempDir(), "hr.xlsx")
	if err := HRWorkbook(report, path); err != nil {
		t.Fatalf("export: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	want := map[string]bool{"Summary": false, "Departments": false, "Positions": false, "Status": false}
	for _, sheet := range sheets {
		if _, ok := want[sheet]; ok {
			want[sheet] = true
		}
	}
	for sheet, seen := range want {
		if !seen {
			t.Fatalf("missing sheet %q, have %v", sheet, sheets)
		}
	}

	got, err := f.GetCellValue("Departments", "A2")
	if err != nil {
		t.Fatalf("read cell: %v", err)
	}
	if got != "Sales" {
		t.Fatalf("expected Sales in Departments!A2, got %q", got)
	}
}

func TestPayrollWorkbookSummary(t *testing.T) {
	report := &api.PayrollReport{
		TotalBudget:          250000,
		DepartmentAllocation: []api.Allocation{{Name: "Sales", Count: 5, Amount: 100000, Percentage: 40}},
		SalaryBands:          []api.Allocation{{Name: "1000-2000", Count: 3, Amount: 45000, Percentage: 18}},
	}
	path := filepath.Join(t.TempDir(), "payroll.xlsx")
	if err := PayrollWorkbook(report, path); err != nil {
		t.Fatalf("export: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer func() { _ = f.Close() }()

	got, err := f.GetCellValue("Summary", "B1")
	if err != nil {
		t.Fatalf("read cell: %v", err)
	}
	if got != "250000" {
		t.Fatalf("expected total budget 250000, got %q", got)
	}
}

func TestExportRejectsNilReport(t *testing.T) {
	if err := HRWorkbook(nil, "x.xlsx"); err == nil {
		t.Fatal("expected error for nil report")
	}
	if err := DividendWorkbook(nil, "x.xlsx"); err == nil {
		t.Fatal("expected error for nil report")
	}
}

func TestPayslipPDFWritesFile(t *testing.T) {
	row := api.Payroll{
		SalaryID:   api.FlexInt(1),
		EmployeeID: api.FlexInt(7),
		FullName:   "Nguyen Van A",
		BaseSalary: 1000,
		Bonus:      200,
		Deductions: 50,
		NetSalary:  1150,
	}
	path := filepath.Join(t.TempDir(), "payslip.pdf")
	if err := PayslipPDF(row, "2026-08", path); err != nil {
		t.Fatalf("export: %v", err)
	}
}
