package console

import (
	"fmt"
	"strings"

	"hrmc/internal/api"
)

type EfficiencyTier string

const (
	TierGreen  EfficiencyTier = "green"
	TierYellow EfficiencyTier = "yellow"
	TierRed    EfficiencyTier = "red"
)

// Efficiency is the attendance ratio WorkDays/(WorkDays+AbsentDays+LeaveDays)
// as a percentage. A month with no recorded days counts as 0.
func Efficiency(record api.AttendanceRecord) float64 {
	total := record.WorkDays + record.AbsentDays + record.LeaveDays
	if total <= 0 {
		return 0
	}
	return float64(record.WorkDays) / float64(total) * 100
}

func TierFor(efficiency float64) EfficiencyTier {
	switch {
	case efficiency >= 90:
		return TierGreen
	case efficiency >= 75:
		return TierYellow
	default:
		return TierRed
	}
}

// NetSalary recomputes the net amount before an add or edit is submitted,
// regardless of what the row currently carries.
func NetSalary(base, bonus, deductions float64) float64 {
	return base + bonus - deductions
}

// FormatDistribution renders "{department} ({count})" pairs joined by
// commas, the way the positions table shows a position's spread.
func FormatDistribution(dist []api.PositionDistribution) string {
	if len(dist) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(dist))
	for _, d := range dist {
		parts = append(parts, fmt.Sprintf("%s (%d)", d.DepartmentName, d.Count))
	}
	return strings.Join(parts, ", ")
}

// StatusBadge maps an employee status onto its badge color.
func StatusBadge(status string) string {
	switch status {
	case api.StatusActive:
		return "green"
	case api.StatusOnLeave:
		return "yellow"
	default:
		return "gray"
	}
}

// PayrollTotal sums net salaries for the dashboard aggregate row.
func PayrollTotal(rows []api.Payroll) float64 {
	var total float64
	for _, row := range rows {
		total += row.NetSalary
	}
	return total
}
