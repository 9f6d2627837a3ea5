package mockapi

import (
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/crypto/bcrypt"

	"hrmc/internal/api"
)

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)
	userID, _ := strconv.Atoi(claims.UserID)

	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	profile := api.Profile{
		ID:                api.FlexInt(userID),
		Name:              claims.FullName,
		Department:        "Unassigned",
		JobTitle:          "Employee",
		SalaryGapWarnings: []string{},
	}
	for _, account := range s.data.users {
		if account.ID == userID {
			profile.Email = account.Email
			break
		}
	}

	// The stub maps login accounts onto the employee with the same id so
	// the profile page has real numbers to show.
	for _, emp := range s.data.employees {
		if emp.EmployeeID.Int() != userID {
			continue
		}
		profile.Phone = emp.PhoneNumber
		for _, dep := range s.data.departments {
			if dep.DepartmentID == emp.DepartmentID {
				profile.Department = dep.DepartmentName
			}
		}
		for _, pos := range s.data.positions {
			if pos.PositionID == emp.PositionID {
				profile.JobTitle = pos.PositionName
			}
		}
		break
	}

	for _, row := range s.data.payroll {
		if row.EmployeeID.Int() == userID {
			profile.Salary = api.ProfileSalary{
				Base:       row.BaseSalary,
				Bonus:      row.Bonus,
				Deductions: row.Deductions,
				Net:        row.NetSalary,
			}
			break
		}
	}
	for _, rec := range s.data.attendance {
		if rec.EmployeeID.Int() == userID {
			profile.Attendance.Present += rec.WorkDays
			profile.Attendance.Absent += rec.AbsentDays
			profile.Attendance.Leave += rec.LeaveDays
		}
	}
	profile.Attendance.Total = profile.Attendance.Present + profile.Attendance.Absent + profile.Attendance.Leave

	writeJSON(w, http.StatusOK, profile)
}

func (s *Server) handleChangePassword(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)
	userID, _ := strconv.Atoi(claims.UserID)
	oldPassword := r.URL.Query().Get("old_password")
	newPassword := r.URL.Query().Get("new_password")
	if oldPassword == "" || newPassword == "" {
		writeDetail(w, http.StatusUnprocessableEntity, "old_password and new_password are required")
		return
	}
	if len(newPassword) < 8 {
		writeDetail(w, http.StatusUnprocessableEntity, "new password must be at least 8 characters")
		return
	}

	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	for i := range s.data.users {
		if s.data.users[i].ID != userID {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(s.data.users[i].PasswordHash), []byte(oldPassword)) != nil {
			writeDetail(w, http.StatusBadRequest, "Old password is incorrect")
			return
		}
		s.data.users[i].PasswordHash = mustHash(newPassword)
		writeJSON(w, http.StatusOK, map[string]string{"message": "Password updated"})
		return
	}
	writeDetail(w, http.StatusNotFound, "User not found")
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	role := chiURLParam(r, "role")
	switch role {
	case "admin", "hr", "payroll":
	default:
		writeDetail(w, http.StatusNotFound, "Unknown dashboard role")
		return
	}

	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	dash := api.Dashboard{Role: role}
	dash.TotalEmployees = len(s.data.employees)
	dash.TotalDepartments = len(s.data.departments)
	dash.TotalPositions = len(s.data.positions)
	for _, row := range s.data.payroll {
		dash.PayrollTotal += row.NetSalary
	}
	for _, emp := range s.data.employees {
		if emp.Status == api.StatusOnLeave {
			dash.OnLeaveToday++
		}
	}
	writeJSON(w, http.StatusOK, dash)
}

func (s *Server) handleHRReport(w http.ResponseWriter, r *http.Request) {
	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	total := len(s.data.employees)
	report := api.HRReport{TotalEmployees: total}

	for _, dep := range s.data.departments {
		count := s.data.employeeCountByDepartment(dep.DepartmentID.Int())
		report.DepartmentAllocation = append(report.DepartmentAllocation, api.Allocation{
			Name:       dep.DepartmentName,
			Count:      count,
			Percentage: percentage(count, total),
		})
	}
	for _, pos := range s.data.positions {
		count := s.data.employeeCountByPosition(pos.PositionID.Int())
		report.PositionAllocation = append(report.PositionAllocation, api.Allocation{
			Name:       pos.PositionName,
			Count:      count,
			Percentage: percentage(count, total),
		})
	}
	statusCounts := make(map[string]int)
	for _, emp := range s.data.employees {
		statusCounts[emp.Status]++
	}
	statuses := make([]string, 0, len(statusCounts))
	for status := range statusCounts {
		statuses = append(statuses, status)
	}
	sort.Strings(statuses)
	for _, status := range statuses {
		report.StatusAllocation = append(report.StatusAllocation, api.Allocation{
			Name:       status,
			Count:      statusCounts[status],
			Percentage: percentage(statusCounts[status], total),
		})
	}

	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handlePayrollReport(w http.ResponseWriter, r *http.Request) {
	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	report := api.PayrollReport{}
	for _, row := range s.data.payroll {
		report.TotalBudget += row.NetSalary
	}

	for _, dep := range s.data.departments {
		var amount float64
		var count int
		for _, row := range s.data.payroll {
			for _, emp := range s.data.employees {
				if emp.EmployeeID == row.EmployeeID && emp.DepartmentID == dep.DepartmentID {
					amount += row.NetSalary
					count++
				}
			}
		}
		if count == 0 {
			continue
		}
		report.DepartmentAllocation = append(report.DepartmentAllocation, api.Allocation{
			Name:       dep.DepartmentName,
			Count:      count,
			Amount:     amount,
			Percentage: sharePercentage(amount, report.TotalBudget),
		})
	}

	bands := []struct {
		name string
		low  float64
		high float64
	}{
		{"Under 1500", 0, 1500},
		{"1500 to 2000", 1500, 2000},
		{"Over 2000", 2000, -1},
	}
	for _, band := range bands {
		var amount float64
		var count int
		for _, row := range s.data.payroll {
			if row.NetSalary < band.low {
				continue
			}
			if band.high >= 0 && row.NetSalary >= band.high {
				continue
			}
			amount += row.NetSalary
			count++
		}
		report.SalaryBands = append(report.SalaryBands, api.Allocation{
			Name:       band.name,
			Count:      count,
			Amount:     amount,
			Percentage: sharePercentage(amount, report.TotalBudget),
		})
	}

	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleDividendReport(w http.ResponseWriter, r *http.Request) {
	year := queryInt(r, "year", strconv.Itoa(time.Now().Year()))
	if year <= 0 {
		writeDetail(w, http.StatusUnprocessableEntity, "year must be positive")
		return
	}

	s.data.mu.Lock()
	var totalNet float64
	for _, row := range s.data.payroll {
		totalNet += row.NetSalary
	}
	s.data.mu.Unlock()

	// Dividends are synthesized as a tenth of the payroll budget, split
	// unevenly across quarters so charts have a shape.
	total := totalNet / 10
	weights := []float64{0.2, 0.25, 0.25, 0.3}
	report := api.DividendReport{Year: year, TotalDividendPaid: total}
	for i, weight := range weights {
		report.QuarterAllocation = append(report.QuarterAllocation, api.Allocation{
			Name:       "Q" + strconv.Itoa(i+1) + " " + strconv.Itoa(year),
			Amount:     total * weight,
			Percentage: weight * 100,
		})
	}
	writeJSON(w, http.StatusOK, report)
}

func percentage(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) / float64(total) * 100
}

func sharePercentage(amount, total float64) float64 {
	if total == 0 {
		return 0
	}
	return amount / total * 100
}

func chiURLParam(r *http.Request, key string) string {
	return strings.TrimSpace(chi.URLParam(r, key))
}
