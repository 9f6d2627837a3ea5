package mockapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"hrmc/internal/api"
)

func itoa(n int) string {
	return strconv.Itoa(n)
}

func pathID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func queryInt(r *http.Request, key, fallback string) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		raw = fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return value
}

func today() string {
	return time.Now().Format("2006-01-02")
}

func (s *Server) handleListDepartments(w http.ResponseWriter, r *http.Request) {
	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	out := make([]api.Department, len(s.data.departments))
	copy(out, s.data.departments)
	for i := range out {
		out[i].NumberOfEmployees = s.data.employeeCountByDepartment(out[i].DepartmentID.Int())
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleAddDepartment(w http.ResponseWriter, r *http.Request) {
	var dep api.Department
	if err := json.NewDecoder(r.Body).Decode(&dep); err != nil || strings.TrimSpace(dep.DepartmentName) == "" {
		writeDetail(w, http.StatusUnprocessableEntity, "DepartmentName is required")
		return
	}
	s.data.mu.Lock()
	dep.DepartmentID = api.FlexInt(s.data.id())
	if dep.CreatedAt == "" {
		dep.CreatedAt = today()
	}
	dep.UpdatedAt = today()
	s.data.departments = append(s.data.departments, dep)
	s.data.mu.Unlock()
	writeJSON(w, http.StatusCreated, dep)
}

func (s *Server) handleUpdateDepartment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeDetail(w, http.StatusUnprocessableEntity, "invalid department id")
		return
	}
	var dep api.Department
	if err := json.NewDecoder(r.Body).Decode(&dep); err != nil || strings.TrimSpace(dep.DepartmentName) == "" {
		writeDetail(w, http.StatusUnprocessableEntity, "DepartmentName is required")
		return
	}
	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	for i := range s.data.departments {
		if s.data.departments[i].DepartmentID.Int() == id {
			s.data.departments[i].DepartmentName = dep.DepartmentName
			s.data.departments[i].UpdatedAt = today()
			writeJSON(w, http.StatusOK, s.data.departments[i])
			return
		}
	}
	writeDetail(w, http.StatusNotFound, "Department not found")
}

func (s *Server) handleDeleteDepartment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeDetail(w, http.StatusUnprocessableEntity, "invalid department id")
		return
	}
	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	for i := range s.data.departments {
		if s.data.departments[i].DepartmentID.Int() == id {
			s.data.departments = append(s.data.departments[:i], s.data.departments[i+1:]...)
			writeJSON(w, http.StatusOK, map[string]string{"message": "Department deleted"})
			return
		}
	}
	writeDetail(w, http.StatusNotFound, "Department not found")
}

func (s *Server) handleListPositions(w http.ResponseWriter, r *http.Request) {
	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	out := make([]api.Position, len(s.data.positions))
	copy(out, s.data.positions)
	for i := range out {
		out[i].TotalEmployees = s.data.employeeCountByPosition(out[i].PositionID.Int())
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handlePositionDistribution(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeDetail(w, http.StatusUnprocessableEntity, "invalid position id")
		return
	}
	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	counts := make(map[int]int)
	for _, emp := range s.data.employees {
		if emp.PositionID.Int() == id {
			counts[emp.DepartmentID.Int()]++
		}
	}
	out := make([]api.PositionDistribution, 0, len(counts))
	for _, dep := range s.data.departments {
		if count, ok := counts[dep.DepartmentID.Int()]; ok {
			out = append(out, api.PositionDistribution{DepartmentName: dep.DepartmentName, Count: count})
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleAddPosition(w http.ResponseWriter, r *http.Request) {
	var pos api.Position
	if err := json.NewDecoder(r.Body).Decode(&pos); err != nil || strings.TrimSpace(pos.PositionName) == "" {
		writeDetail(w, http.StatusUnprocessableEntity, "PositionName is required")
		return
	}
	s.data.mu.Lock()
	pos.PositionID = api.FlexInt(s.data.id())
	pos.CreatedAt = today()
	pos.UpdatedAt = today()
	s.data.positions = append(s.data.positions, pos)
	s.data.mu.Unlock()
	writeJSON(w, http.StatusCreated, pos)
}

func (s *Server) handleUpdatePosition(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeDetail(w, http.StatusUnprocessableEntity, "invalid position id")
		return
	}
	var pos api.Position
	if err := json.NewDecoder(r.Body).Decode(&pos); err != nil || strings.TrimSpace(pos.PositionName) == "" {
		writeDetail(w, http.StatusUnprocessableEntity, "PositionName is required")
		return
	}
	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	for i := range s.data.positions {
		if s.data.positions[i].PositionID.Int() == id {
			s.data.positions[i].PositionName = pos.PositionName
			s.data.positions[i].UpdatedAt = today()
			writeJSON(w, http.StatusOK, s.data.positions[i])
			return
		}
	}
	writeDetail(w, http.StatusNotFound, "Position not found")
}

func (s *Server) handleDeletePosition(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeDetail(w, http.StatusUnprocessableEntity, "invalid position id")
		return
	}
	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	for i := range s.data.positions {
		if s.data.positions[i].PositionID.Int() == id {
			s.data.positions = append(s.data.positions[:i], s.data.positions[i+1:]...)
			writeJSON(w, http.StatusOK, map[string]string{"message": "Position deleted"})
			return
		}
	}
	writeDetail(w, http.StatusNotFound, "Position not found")
}

func (s *Server) decorate(emp api.Employee) api.Employee {
	for _, dep := range s.data.departments {
		if dep.DepartmentID == emp.DepartmentID {
			d := dep
			emp.Department = &d
			break
		}
	}
	for _, pos := range s.data.positions {
		if pos.PositionID == emp.PositionID {
			p := pos
			emp.Position = &p
			break
		}
	}
	return emp
}

func (s *Server) handleListEmployees(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", "1")
	perPage := queryInt(r, "per_page", "10")

	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	pageItems := paginate(s.data.employees, page, perPage)
	out := make([]api.Employee, 0, len(pageItems))
	for _, emp := range pageItems {
		out = append(out, s.decorate(emp))
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": out, "total": len(s.data.employees)})
}

func (s *Server) handleSearchEmployees(w http.ResponseWriter, r *http.Request) {
	query := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("search_query")))
	page := queryInt(r, "page", "1")
	perPage := queryInt(r, "per_page", "10")

	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	matched := make([]api.Employee, 0)
	for _, emp := range s.data.employees {
		if strings.Contains(strings.ToLower(emp.FullName), query) ||
			strings.Contains(strings.ToLower(emp.Email), query) {
			matched = append(matched, emp)
		}
	}
	pageItems := paginate(matched, page, perPage)
	out := make([]api.Employee, 0, len(pageItems))
	for _, emp := range pageItems {
		out = append(out, s.decorate(emp))
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": out, "total": len(matched)})
}

func (s *Server) handleEmployeeDetails(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeDetail(w, http.StatusUnprocessableEntity, "invalid employee id")
		return
	}
	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	for _, emp := range s.data.employees {
		if emp.EmployeeID.Int() == id {
			writeJSON(w, http.StatusOK, s.decorate(emp))
			return
		}
	}
	writeDetail(w, http.StatusNotFound, "Employee not found")
}

func validEmployeePayload(emp api.Employee) bool {
	return strings.TrimSpace(emp.FullName) != "" &&
		strings.TrimSpace(emp.Email) != "" &&
		emp.DepartmentID.Int() > 0 &&
		emp.PositionID.Int() > 0
}

func (s *Server) handleAddEmployee(w http.ResponseWriter, r *http.Request) {
	var emp api.Employee
	if err := json.NewDecoder(r.Body).Decode(&emp); err != nil || !validEmployeePayload(emp) {
		writeDetail(w, http.StatusUnprocessableEntity, "FullName, Email, DepartmentID and PositionID are required")
		return
	}
	if emp.Status == "" {
		emp.Status = api.StatusActive
	}
	s.data.mu.Lock()
	emp.EmployeeID = api.FlexInt(s.data.id())
	s.data.employees = append(s.data.employees, emp)
	s.data.mu.Unlock()
	writeJSON(w, http.StatusCreated, emp)
}

func (s *Server) handleUpdateEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeDetail(w, http.StatusUnprocessableEntity, "invalid employee id")
		return
	}
	var emp api.Employee
	if err := json.NewDecoder(r.Body).Decode(&emp); err != nil || !validEmployeePayload(emp) {
		writeDetail(w, http.StatusUnprocessableEntity, "FullName, Email, DepartmentID and PositionID are required")
		return
	}
	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	for i := range s.data.employees {
		if s.data.employees[i].EmployeeID.Int() == id {
			emp.EmployeeID = api.FlexInt(id)
			s.data.employees[i] = emp
			writeJSON(w, http.StatusOK, emp)
			return
		}
	}
	writeDetail(w, http.StatusNotFound, "Employee not found")
}

func (s *Server) handleDeleteEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeDetail(w, http.StatusUnprocessableEntity, "invalid employee id")
		return
	}
	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	for i := range s.data.employees {
		if s.data.employees[i].EmployeeID.Int() == id {
			s.data.employees = append(s.data.employees[:i], s.data.employees[i+1:]...)
			writeJSON(w, http.StatusOK, map[string]string{"message": "Employee deleted"})
			return
		}
	}
	writeDetail(w, http.StatusNotFound, "Employee not found")
}
