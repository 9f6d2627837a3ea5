package export

import (
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"hrmc/internal/api"
)

// PayslipPDF renders one payroll row as a payslip.
func PayslipPDF(row api.Payroll, month, path string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s", row.FullName))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Employee ID: %d", row.EmployeeID.Int()))
	pdf.Ln(7)
	if month != "" {
		pdf.Cell(0, 8, fmt.Sprintf("Month: %s", month))
		pdf.Ln(7)
	}
	pdf.Ln(3)
	pdf.Cell(0, 8, fmt.Sprintf("Base salary: %.2f", row.BaseSalary))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Bonus: %.2f", row.Bonus))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Deductions: %.2f", row.Deductions))
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Net: %.2f", row.NetSalary))
	return pdf.OutputFileAndClose(path)
}
