package console

import (
	"testing"

	"hrmc/internal/api"
)

func TestEfficiencyAndTiers(t *testing.T) {
	cases := []struct {
		work, absent, leave int
		wantTier            EfficiencyTier
	}{
		{19, 1, 0, TierGreen},  // 95%
		{18, 0, 2, TierGreen},  // 90%
		{16, 2, 2, TierYellow}, // 80%
		{15, 3, 2, TierYellow}, // 75%
		{14, 4, 2, TierRed},    // 70%
		{0, 0, 0, TierRed},     // empty month
	}
	for _, tc := range cases {
		record := api.AttendanceRecord{WorkDays: tc.work, AbsentDays: tc.absent, LeaveDays: tc.leave}
		eff := Efficiency(record)
		if got := TierFor(eff); got != tc.wantTier {
			t.Fatalf("%d/%d/%d (%.1f%%): expected %s, got %s", tc.work, tc.absent, tc.leave, eff, tc.wantTier, got)
		}
	}
}

func TestNetSalaryRecompute(t *testing.T) {
	if got := NetSalary(1000, 200, 50); got != 1150 {
		t.Fatalf("expected 1150, got %v", got)
	}
	if got := NetSalary(500, 0, 100); got != 400 {
		t.Fatalf("expected 400, got %v", got)
	}
}

func TestFormatDistribution(t *testing.T) {
	dist := []api.PositionDistribution{
		{DepartmentName: "Sales", Count: 3},
		{DepartmentName: "IT", Count: 5},
	}
	if got := FormatDistribution(dist); got != "Sales (3), IT (5)" {
		t.Fatalf("unexpected distribution string %q", got)
	}
	if got := FormatDistribution(nil); got != "-" {
		t.Fatalf("expected placeholder for empty distribution, got %q", got)
	}
}

func TestStatusBadge(t *testing.T) {
	if StatusBadge("Active") != "green" || StatusBadge("On Leave") != "yellow" || StatusBadge("Terminated") != "gray" {
		t.Fatal("unexpected badge mapping")
	}
}

func TestPayrollTotal(t *testing.T) {
	rows := []api.Payroll{{NetSalary: 1000}, {NetSalary: 1150}, {NetSalary: 850}}
	if got := PayrollTotal(rows); got != 3000 {
		t.Fatalf("expected 3000, got %v", got)
	}
}
