package mockapi

import (
	"strings"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"hrmc/internal/api"
)

type user struct {
	ID           int
	Email        string
	PasswordHash string
	Role         string
	FullName     string
}

// store is the whole backend state. Everything lives in memory so the stub
// runs with zero infrastructure; a restart reseeds.
type store struct {
	mu          sync.Mutex
	users       []user
	departments []api.Department
	positions   []api.Position
	employees   []api.Employee
	attendance  []api.AttendanceRecord
	payroll     []api.Payroll
	nextID      int
}

func mustHash(password string) string {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	return string(hashed)
}

func seed() *store {
	s := &store{nextID: 100}
	s.users = []user{
		{ID: 1, Email: "admin@example.com", PasswordHash: mustHash("admin123"), Role: "admin", FullName: "Tran Thi Admin"},
		{ID: 2, Email: "hr@example.com", PasswordHash: mustHash("hr123456"), Role: "hr", FullName: "Le Van HR"},
		{ID: 3, Email: "payroll@example.com", PasswordHash: mustHash("pay12345"), Role: "payroll", FullName: "Pham Thi Payroll"},
	}
	s.departments = []api.Department{
		{DepartmentID: 1, DepartmentName: "Sales", CreatedAt: "2024-01-02", UpdatedAt: "2024-01-02"},
		{DepartmentID: 2, DepartmentName: "Engineering", CreatedAt: "2024-01-02", UpdatedAt: "2024-03-15"},
		{DepartmentID: 3, DepartmentName: "Accounting", CreatedAt: "2024-02-01", UpdatedAt: "2024-02-01"},
	}
	s.positions = []api.Position{
		{PositionID: 1, PositionName: "Manager", CreatedAt: "2024-01-02", UpdatedAt: "2024-01-02"},
		{PositionID: 2, PositionName: "Engineer", CreatedAt: "2024-01-02", UpdatedAt: "2024-01-02"},
		{PositionID: 3, PositionName: "Accountant", CreatedAt: "2024-02-01", UpdatedAt: "2024-02-01"},
	}
	s.employees = []api.Employee{
		{EmployeeID: 1, FullName: "Nguyen Van An", Email: "an.nguyen@example.com", PhoneNumber: "0901234567", Gender: "male", HireDate: "2024-02-01", DepartmentID: 1, PositionID: 1, Status: "Active"},
		{EmployeeID: 2, FullName: "Tran Thi Binh", Email: "binh.tran@example.com", PhoneNumber: "+84912345678", Gender: "female", HireDate: "2024-03-10", DepartmentID: 2, PositionID: 2, Status: "Active"},
		{EmployeeID: 3, FullName: "Le Van Cuong", Email: "cuong.le@example.com", PhoneNumber: "0987654321", Gender: "male", HireDate: "2024-05-20", DepartmentID: 2, PositionID: 2, Status: "On Leave"},
		{EmployeeID: 4, FullName: "Pham Thi Dung", Email: "dung.pham@example.com", PhoneNumber: "0351234567", Gender: "female", HireDate: "2024-07-01", DepartmentID: 3, PositionID: 3, Status: "Active"},
	}
	s.attendance = []api.AttendanceRecord{
		{AttendanceID: 1, EmployeeID: 1, AttendanceMonth: "2026-07", WorkDays: 20, AbsentDays: 1, LeaveDays: 1},
		{AttendanceID: 2, EmployeeID: 2, AttendanceMonth: "2026-07", WorkDays: 22, AbsentDays: 0, LeaveDays: 0},
		{AttendanceID: 3, EmployeeID: 3, AttendanceMonth: "2026-07", WorkDays: 14, AbsentDays: 4, LeaveDays: 4},
		{AttendanceID: 4, EmployeeID: 1, AttendanceMonth: "2026-08", WorkDays: 21, AbsentDays: 0, LeaveDays: 0},
	}
	s.payroll = []api.Payroll{
		{SalaryID: 1, EmployeeID: 1, FullName: "Nguyen Van An", BaseSalary: 2000, Bonus: 300, Deductions: 100, NetSalary: 2200, Status: "Paid"},
		{SalaryID: 2, EmployeeID: 2, FullName: "Tran Thi Binh", BaseSalary: 1800, Bonus: 200, Deductions: 50, NetSalary: 1950, Status: "Paid"},
		{SalaryID: 3, EmployeeID: 3, FullName: "Le Van Cuong", BaseSalary: 1500, Bonus: 0, Deductions: 0, NetSalary: 1500, Status: "Pending"},
		{SalaryID: 4, EmployeeID: 4, FullName: "Pham Thi Dung", BaseSalary: 1600, Bonus: 100, Deductions: 80, NetSalary: 1620, Status: "Paid"},
	}
	return s
}

func (s *store) id() int {
	s.nextID++
	return s.nextID
}

func (s *store) findUser(email string) (user, bool) {
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return u, true
		}
	}
	return user{}, false
}

func (s *store) employeeCountByDepartment(depID int) int {
	count := 0
	for _, emp := range s.employees {
		if emp.DepartmentID.Int() == depID {
			count++
		}
	}
	return count
}

func (s *store) employeeCountByPosition(posID int) int {
	count := 0
	for _, emp := range s.employees {
		if emp.PositionID.Int() == posID {
			count++
		}
	}
	return count
}

func paginate[T any](items []T, page, perPage int) []T {
	if page <= 0 {
		page = 1
	}
	if perPage <= 0 {
		perPage = 10
	}
	start := (page - 1) * perPage
	if start > len(items) {
		start = len(items)
	}
	end := start + perPage
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
