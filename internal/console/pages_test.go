package console

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"hrmc/internal/api"
	"hrmc/internal/platform/config"
)

type tokenStub string

func (t tokenStub) Token() (string, error) { return string(t), nil }

func newTestClient(t *testing.T, baseURL string) *api.Client {
	t.Helper()
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	client, err := api.New(config.Config{APIBaseURL: baseURL, RequestTimeout: 5 * time.Second}, tokenStub("tok"), logger)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return client
}

func TestAddDepartmentSuccessFlow(t *testing.T) {
	var listCalls atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("GET /departments", func(w http.ResponseWriter, r *http.Request) {
		listCalls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"DepartmentID":1,"DepartmentName":"Sales"}]`))
	})
	mux.HandleFunc("POST /departments/add", func(w http.ResponseWriter, r *http.Request) {
		var dep api.Department
		if err := json.NewDecoder(r.Body).Decode(&dep); err != nil || dep.DepartmentName == "" {
			w.WriteHeader(http.StatusUnprocessableEntity)
			return
		}
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(dep)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	notify := &recordingNotifier{}
	page := NewDepartmentsPage(newTestClient(t, srv.URL), ControllerConfig{PerPage: 10, Notifier: notify})

	ctx := context.Background()
	if err := page.Mount(ctx, "hr"); err != nil {
		t.Fatalf("mount: %v", err)
	}
	reloadsBefore := listCalls.Load()

	page.Dialog.Open(api.Department{DepartmentName: "Sales"})
	if err := page.SubmitAdd(ctx); err != nil {
		t.Fatalf("submit add: %v", err)
	}

	if page.Dialog.State() != DialogClosed {
		t.Fatalf("expected dialog closed after success, got %s", page.Dialog.State())
	}
	if listCalls.Load() != reloadsBefore+1 {
		t.Fatal("expected a reload after the successful add")
	}
	notify.mu.Lock()
	defer notify.mu.Unlock()
	if len(notify.successes) == 0 || !strings.Contains(notify.successes[len(notify.successes)-1], "Sales") {
		t.Fatalf("expected success toast mentioning Sales, got %v", notify.successes)
	}
}

func TestAddDepartmentEmptyNameNeverHitsNetwork(t *testing.T) {
	var addCalls atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("GET /departments", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})
	mux.HandleFunc("POST /departments/add", func(w http.ResponseWriter, r *http.Request) {
		addCalls.Add(1)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	notify := &recordingNotifier{}
	page := NewDepartmentsPage(newTestClient(t, srv.URL), ControllerConfig{PerPage: 10, Notifier: notify})
	ctx := context.Background()
	if err := page.Mount(ctx, "admin"); err != nil {
		t.Fatalf("mount: %v", err)
	}

	page.Dialog.Open(api.Department{DepartmentName: "   "})
	if err := page.SubmitAdd(ctx); err == nil {
		t.Fatal("expected validation error")
	}
	if addCalls.Load() != 0 {
		t.Fatal("validation failure must not call the add endpoint")
	}
	if page.Dialog.State() != DialogError {
		t.Fatalf("expected dialog in error state, got %s", page.Dialog.State())
	}
}

func TestDeleteEmployee404KeepsRows(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /employees", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items":[{"EmployeeID":42,"FullName":"A","Status":"Active"}],"total":1}`))
	})
	mux.HandleFunc("GET /departments", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte(`[]`)) })
	mux.HandleFunc("GET /positions", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte(`[]`)) })
	mux.HandleFunc("DELETE /employees/delete/42", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail":"not found"}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	notify := &recordingNotifier{}
	page := NewEmployeesPage(newTestClient(t, srv.URL), ControllerConfig{PerPage: 10, Notifier: notify})
	ctx := context.Background()
	if err := page.Mount(ctx, "hr"); err != nil {
		t.Fatalf("mount: %v", err)
	}

	if err := page.Delete(ctx, 42); err == nil {
		t.Fatal("expected delete to fail")
	}
	toast := notify.lastError()
	if !strings.Contains(toast, "404") || !strings.Contains(toast, "not found") {
		t.Fatalf("expected toast with status and detail, got %q", toast)
	}
	if items := page.Ctrl.Items(); len(items) != 1 {
		t.Fatalf("failed delete must keep the row, got %d items", len(items))
	}
}

func TestPayrollEditRecomputesNet(t *testing.T) {
	var submitted api.Payroll
	mux := http.NewServeMux()
	mux.HandleFunc("GET /payroll", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":[{"SalaryID":5,"EmployeeID":7,"FullName":"A","BaseSalary":900,"Bonus":0,"Deductions":0,"NetSalary":900}],"total":1}`))
	})
	mux.HandleFunc("PUT /payroll/update/5", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&submitted)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	page := NewPayrollPage(newTestClient(t, srv.URL), ControllerConfig{PerPage: 10, Notifier: &recordingNotifier{}})
	ctx := context.Background()
	if err := page.Mount(ctx, "payroll"); err != nil {
		t.Fatalf("mount: %v", err)
	}

	page.Dialog.Open(api.Payroll{
		SalaryID:   api.FlexInt(5),
		EmployeeID: api.FlexInt(7),
		FullName:   "A",
		BaseSalary: 1000,
		Bonus:      200,
		Deductions: 50,
		NetSalary:  900, // stale value typed over
	})
	if err := page.SubmitEdit(ctx); err != nil {
		t.Fatalf("submit edit: %v", err)
	}
	if submitted.NetSalary != 1150 {
		t.Fatalf("expected NetSalary recomputed to 1150, got %v", submitted.NetSalary)
	}
}

func TestAttendanceRowsCarryTiers(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /payroll/attendance", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"items":[
			{"AttendanceID":1,"EmployeeID":1,"AttendanceMonth":"2026-08","WorkDays":19,"AbsentDays":1,"LeaveDays":0},
			{"AttendanceID":2,"EmployeeID":2,"AttendanceMonth":"2026-08","WorkDays":14,"AbsentDays":4,"LeaveDays":2}
		],"total":2}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	page := NewAttendancePage(newTestClient(t, srv.URL), ControllerConfig{PerPage: 10})
	ctx := context.Background()
	if err := page.Mount(ctx, "payroll"); err != nil {
		t.Fatalf("mount: %v", err)
	}

	rows := page.Rows()
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Tier != TierGreen || rows[1].Tier != TierRed {
		t.Fatalf("unexpected tiers: %s %s", rows[0].Tier, rows[1].Tier)
	}
}

func TestDashboardAutoRefreshStops(t *testing.T) {
	var calls atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("GET /dashboard/admin", func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(`{"role":"admin","total_employees":10}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	page := NewDashboardPage(newTestClient(t, srv.URL), ControllerConfig{})
	ctx := context.Background()
	if err := page.Mount(ctx, "admin"); err != nil {
		t.Fatalf("mount: %v", err)
	}
	page.StartAutoRefresh(ctx, 10*time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	page.Close()

	after := calls.Load()
	if after < 2 {
		t.Fatalf("expected periodic refreshes, got %d calls", after)
	}
	time.Sleep(50 * time.Millisecond)
	if calls.Load() != after {
		t.Fatal("refresh loop must stop after Close")
	}
}
