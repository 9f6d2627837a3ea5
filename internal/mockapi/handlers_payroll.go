package mockapi

import (
	"encoding/json"
	"net/http"
	"regexp"
	"strings"

	"hrmc/internal/api"
)

var monthPattern = regexp.MustCompile(`^\d{4}-\d{2}(-\d{2})?$`)

func (s *Server) handleListAttendance(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", "1")
	perPage := queryInt(r, "per_page", "10")
	searchDate := strings.TrimSpace(r.URL.Query().Get("search_date"))
	employeeID := queryInt(r, "employee_id", "0")

	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	matched := make([]api.AttendanceRecord, 0)
	for _, rec := range s.data.attendance {
		if searchDate != "" && !strings.HasPrefix(rec.AttendanceMonth, searchDate) {
			continue
		}
		if employeeID > 0 && rec.EmployeeID.Int() != employeeID {
			continue
		}
		matched = append(matched, rec)
	}
	out := paginate(matched, page, perPage)
	for i := range out {
		for _, emp := range s.data.employees {
			if emp.EmployeeID == out[i].EmployeeID {
				e := emp
				out[i].Employee = &e
				break
			}
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": out, "total": len(matched)})
}

func (s *Server) payrollPage(w http.ResponseWriter, r *http.Request, rows []api.Payroll) {
	page := queryInt(r, "page", "1")
	perPage := queryInt(r, "per_page", "10")
	writeEnvelope(w, paginate(rows, page, perPage), len(rows))
}

func (s *Server) handleListPayroll(w http.ResponseWriter, r *http.Request) {
	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	s.payrollPage(w, r, s.data.payroll)
}

func (s *Server) handleSearchPayroll(w http.ResponseWriter, r *http.Request) {
	query := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("search_query")))

	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	matched := make([]api.Payroll, 0)
	for _, row := range s.data.payroll {
		if strings.Contains(strings.ToLower(row.FullName), query) {
			matched = append(matched, row)
		}
	}
	s.payrollPage(w, r, matched)
}

func validPayrollPayload(row api.Payroll) bool {
	return row.EmployeeID.Int() > 0 && row.BaseSalary >= 0 && row.Bonus >= 0 && row.Deductions >= 0
}

func (s *Server) handleAddPayroll(w http.ResponseWriter, r *http.Request) {
	var row api.Payroll
	if err := json.NewDecoder(r.Body).Decode(&row); err != nil || !validPayrollPayload(row) {
		writeDetail(w, http.StatusUnprocessableEntity, "EmployeeID is required and amounts must be non-negative")
		return
	}
	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	if row.FullName == "" {
		for _, emp := range s.data.employees {
			if emp.EmployeeID == row.EmployeeID {
				row.FullName = emp.FullName
				break
			}
		}
	}
	row.SalaryID = api.FlexInt(s.data.id())
	row.NetSalary = row.BaseSalary + row.Bonus - row.Deductions
	if row.Status == "" {
		row.Status = "Pending"
	}
	s.data.payroll = append(s.data.payroll, row)
	writeJSON(w, http.StatusCreated, row)
}

func (s *Server) handleUpdatePayroll(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeDetail(w, http.StatusUnprocessableEntity, "invalid salary id")
		return
	}
	var row api.Payroll
	if err := json.NewDecoder(r.Body).Decode(&row); err != nil || !validPayrollPayload(row) {
		writeDetail(w, http.StatusUnprocessableEntity, "EmployeeID is required and amounts must be non-negative")
		return
	}
	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	for i := range s.data.payroll {
		if s.data.payroll[i].SalaryID.Int() == id {
			row.SalaryID = api.FlexInt(id)
			row.NetSalary = row.BaseSalary + row.Bonus - row.Deductions
			if row.FullName == "" {
				row.FullName = s.data.payroll[i].FullName
			}
			s.data.payroll[i] = row
			writeJSON(w, http.StatusOK, row)
			return
		}
	}
	writeDetail(w, http.StatusNotFound, "Salary record not found")
}

func (s *Server) handleDeletePayroll(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeDetail(w, http.StatusUnprocessableEntity, "invalid salary id")
		return
	}
	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	for i := range s.data.payroll {
		if s.data.payroll[i].SalaryID.Int() == id {
			s.data.payroll = append(s.data.payroll[:i], s.data.payroll[i+1:]...)
			writeJSON(w, http.StatusOK, map[string]string{"message": "Salary record deleted"})
			return
		}
	}
	writeDetail(w, http.StatusNotFound, "Salary record not found")
}

func (s *Server) handleSalaryNotification(w http.ResponseWriter, r *http.Request) {
	month := strings.TrimSpace(r.URL.Query().Get("month_str"))
	if !monthPattern.MatchString(month) {
		writeDetail(w, http.StatusUnprocessableEntity, "month_str must look like YYYY-MM")
		return
	}
	s.data.mu.Lock()
	count := len(s.data.payroll)
	s.data.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Salary notifications queued",
		"month":   month,
		"count":   count,
	})
}
