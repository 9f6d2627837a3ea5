package api

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// FlexInt decodes an id that the backend serializes either as a number or a
// numeric string (DepartmentID is the known offender).
type FlexInt int

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" || trimmed == `""` {
		*f = 0
		return nil
	}
	trimmed = strings.Trim(trimmed, `"`)
	parsed, err := strconv.Atoi(trimmed)
	if err != nil {
		return fmt.Errorf("invalid integer id %q", trimmed)
	}
	*f = FlexInt(parsed)
	return nil
}

func (f FlexInt) MarshalJSON() ([]byte, error) {
	return json.Marshal(int(f))
}

func (f FlexInt) Int() int {
	return int(f)
}

type Department struct {
	DepartmentID      FlexInt `json:"DepartmentID"`
	DepartmentName    string  `json:"DepartmentName"`
	NumberOfEmployees int     `json:"NumbersOfEmployees,omitempty"`
	CreatedAt         string  `json:"CreatedAt,omitempty"`
	UpdatedAt         string  `json:"UpdatedAt,omitempty"`
}

type Position struct {
	PositionID     FlexInt `json:"PositionID"`
	PositionName   string  `json:"PositionName"`
	TotalEmployees int     `json:"TotalEmployees,omitempty"`
	CreatedAt      string  `json:"CreatedAt,omitempty"`
	UpdatedAt      string  `json:"UpdatedAt,omitempty"`
}

// PositionDistribution is one department's share of a position's headcount.
type PositionDistribution struct {
	DepartmentName string `json:"DepartmentName"`
	Count          int    `json:"Count"`
}

type Employee struct {
	EmployeeID   FlexInt     `json:"EmployeeID"`
	FullName     string      `json:"FullName"`
	Email        string      `json:"Email"`
	PhoneNumber  string      `json:"PhoneNumber,omitempty"`
	DateOfBirth  string      `json:"DateOfBirth,omitempty"`
	Gender       string      `json:"Gender,omitempty"`
	HireDate     string      `json:"HireDate,omitempty"`
	DepartmentID FlexInt     `json:"DepartmentID"`
	PositionID   FlexInt     `json:"PositionID"`
	Status       string      `json:"Status"`
	Department   *Department `json:"department,omitempty"`
	Position     *Position   `json:"position,omitempty"`
}

type AttendanceRecord struct {
	AttendanceID    FlexInt   `json:"AttendanceID"`
	EmployeeID      FlexInt   `json:"EmployeeID"`
	AttendanceMonth string    `json:"AttendanceMonth"`
	WorkDays        int       `json:"WorkDays"`
	AbsentDays      int       `json:"AbsentDays"`
	LeaveDays       int       `json:"LeaveDays"`
	Employee        *Employee `json:"employee,omitempty"`
}

type Payroll struct {
	SalaryID   FlexInt `json:"SalaryID"`
	EmployeeID FlexInt `json:"EmployeeID"`
	FullName   string  `json:"FullName"`
	BaseSalary float64 `json:"BaseSalary"`
	Bonus      float64 `json:"Bonus"`
	Deductions float64 `json:"Deductions"`
	NetSalary  float64 `json:"NetSalary"`
	Status     string  `json:"Status,omitempty"`
}

type ProfileSalary struct {
	Base       float64 `json:"base"`
	Bonus      float64 `json:"bonus"`
	Deductions float64 `json:"deductions"`
	Net        float64 `json:"net"`
}

type ProfileAttendance struct {
	Present int `json:"present"`
	Absent  int `json:"absent"`
	Leave   int `json:"leave"`
	Total   int `json:"total"`
}

type Profile struct {
	ID                FlexInt           `json:"id"`
	Name              string            `json:"name"`
	Email             string            `json:"email"`
	Phone             string            `json:"phone"`
	Department        string            `json:"department"`
	JobTitle          string            `json:"jobTitle"`
	Salary            ProfileSalary     `json:"salary"`
	Attendance        ProfileAttendance `json:"attendance"`
	SalaryGapWarnings []string          `json:"salaryGapWarnings"`
}

type Allocation struct {
	Name       string  `json:"name"`
	Count      int     `json:"count"`
	Amount     float64 `json:"amount,omitempty"`
	Percentage float64 `json:"percentage"`
}

type HRReport struct {
	TotalEmployees       int          `json:"total_employees"`
	DepartmentAllocation []Allocation `json:"department_allocation"`
	PositionAllocation   []Allocation `json:"position_allocation"`
	StatusAllocation     []Allocation `json:"status_allocation"`
}

type PayrollReport struct {
	TotalBudget          float64      `json:"total_budget"`
	DepartmentAllocation []Allocation `json:"department_allocation"`
	SalaryBands          []Allocation `json:"salary_bands"`
}

type DividendReport struct {
	Year              int          `json:"year"`
	TotalDividendPaid float64      `json:"total_dividend_paid"`
	QuarterAllocation []Allocation `json:"quarter_allocation"`
}

type Dashboard struct {
	Role             string  `json:"role"`
	TotalEmployees   int     `json:"total_employees"`
	TotalDepartments int     `json:"total_departments"`
	TotalPositions   int     `json:"total_positions"`
	PayrollTotal     float64 `json:"payroll_total"`
	OnLeaveToday     int     `json:"on_leave_today"`
}
