package mockapi

import (
	"context"
	"errors"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"hrmc/internal/api"
	"hrmc/internal/platform/config"
	cryptoutil "hrmc/internal/platform/crypto"
	"hrmc/internal/session"
)

func newJourneyClient(t *testing.T) (*api.Client, *session.Store, *httptest.Server) {
	t.Helper()

	srv := httptest.NewServer(New("journey-secret").Router())
	t.Cleanup(srv.Close)

	svc, err := cryptoutil.New("")
	if err != nil {
		t.Fatalf("crypto service: %v", err)
	}
	sessions, err := session.Open(filepath.Join(t.TempDir(), "session.json"), svc)
	if err != nil {
		t.Fatalf("open session store: %v", err)
	}

	log := logrus.New()
	log.SetLevel(logrus.ErrorLevel)
	client, err := api.New(config.Config{APIBaseURL: srv.URL, RequestTimeout: 5 * time.Second}, sessions, log)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return client, sessions, srv
}

func login(t *testing.T, client *api.Client, sessions *session.Store, email, password string) {
	t.Helper()
	resp, err := client.Login(context.Background(), email, password)
	if err != nil {
		t.Fatalf("login %s: %v", email, err)
	}
	if err := sessions.SetLogin(resp.AccessToken, resp.Role, resp.FullName, resp.User); err != nil {
		t.Fatalf("store login: %v", err)
	}
}

func TestAdminJourney(t *testing.T) {
	client, sessions, _ := newJourneyClient(t)
	ctx := context.Background()

	if _, err := client.FetchDepartments(ctx); !errors.Is(err, session.ErrNoToken) {
		t.Fatalf("want ErrNoToken before login, got %v", err)
	}

	login(t, client, sessions, "admin@example.com", "admin123")
	if sessions.Role() != "admin" {
		t.Fatalf("role = %q, want admin", sessions.Role())
	}

	deps, err := client.FetchDepartments(ctx)
	if err != nil {
		t.Fatalf("fetch departments: %v", err)
	}
	if deps.Len() != 3 {
		t.Fatalf("seed departments = %d, want 3", deps.Len())
	}

	created, err := client.AddDepartment(ctx, api.Department{DepartmentName: "Support"})
	if err != nil {
		t.Fatalf("add department: %v", err)
	}
	if created.DepartmentID.Int() <= 0 {
		t.Fatalf("created department has no id: %+v", created)
	}
	if err := client.UpdateDepartment(ctx, created.DepartmentID.Int(), api.Department{DepartmentName: "Customer Support"}); err != nil {
		t.Fatalf("update department: %v", err)
	}

	var apiErr *api.APIError
	if err := client.DeleteDepartment(ctx, 9999); !errors.As(err, &apiErr) || apiErr.StatusCode != 404 {
		t.Fatalf("delete missing department: want 404 APIError, got %v", err)
	}

	if err := client.DeleteDepartment(ctx, created.DepartmentID.Int()); err != nil {
		t.Fatalf("delete department: %v", err)
	}

	emps, err := client.FetchEmployees(ctx, 1, 2)
	if err != nil {
		t.Fatalf("fetch employees: %v", err)
	}
	if emps.Len() != 2 || !emps.HasTotal || emps.Total != 4 {
		t.Fatalf("employees page = %d items, total %d (hasTotal=%v)", emps.Len(), emps.Total, emps.HasTotal)
	}
	if emps.Items[0].Department == nil {
		t.Fatalf("employee not decorated with department: %+v", emps.Items[0])
	}

	found, err := client.SearchEmployees(ctx, "binh", 1, 10)
	if err != nil {
		t.Fatalf("search employees: %v", err)
	}
	if found.Len() != 1 || found.Items[0].FullName != "Tran Thi Binh" {
		t.Fatalf("search binh = %+v", found.Items)
	}

	pay, err := client.FetchPayroll(ctx, 1, 10)
	if err != nil {
		t.Fatalf("fetch payroll: %v", err)
	}
	if !pay.HasTotal || pay.Total != 4 {
		t.Fatalf("payroll envelope total = %d (hasTotal=%v)", pay.Total, pay.HasTotal)
	}

	att, err := client.FetchAttendance(ctx, 1, 10, "2026-07", 0)
	if err != nil {
		t.Fatalf("fetch attendance: %v", err)
	}
	if att.Len() != 3 {
		t.Fatalf("attendance for 2026-07 = %d rows, want 3", att.Len())
	}

	dash, err := client.FetchDashboard(ctx, "admin")
	if err != nil {
		t.Fatalf("fetch dashboard: %v", err)
	}
	if dash.TotalEmployees != 4 || dash.OnLeaveToday != 1 {
		t.Fatalf("dashboard = %+v", dash)
	}

	report, err := client.FetchHRReport(ctx)
	if err != nil {
		t.Fatalf("fetch hr report: %v", err)
	}
	if report.TotalEmployees != 4 || len(report.DepartmentAllocation) == 0 {
		t.Fatalf("hr report = %+v", report)
	}
}

func TestPayrollJourney(t *testing.T) {
	client, sessions, _ := newJourneyClient(t)
	ctx := context.Background()

	login(t, client, sessions, "payroll@example.com", "pay12345")

	row, err := client.AddPayroll(ctx, api.Payroll{EmployeeID: 4, BaseSalary: 1000, Bonus: 200, Deductions: 50})
	if err != nil {
		t.Fatalf("add payroll: %v", err)
	}
	if row.NetSalary != 1150 {
		t.Fatalf("net salary = %v, want 1150", row.NetSalary)
	}
	if row.FullName != "Pham Thi Dung" {
		t.Fatalf("payroll row missing employee name: %+v", row)
	}

	if err := client.SendSalaryNotification(ctx, "2026-08"); err != nil {
		t.Fatalf("send notification: %v", err)
	}
	var apiErr *api.APIError
	if err := client.SendSalaryNotification(ctx, "august"); !errors.As(err, &apiErr) || !apiErr.IsValidation() {
		t.Fatalf("bad month: want 422 APIError, got %v", err)
	}

	if err := client.DeletePayroll(ctx, row.SalaryID.Int()); err != nil {
		t.Fatalf("delete payroll: %v", err)
	}
}

func TestProfileJourney(t *testing.T) {
	client, sessions, _ := newJourneyClient(t)
	ctx := context.Background()

	login(t, client, sessions, "hr@example.com", "hr123456")

	profile, err := client.GetProfile(ctx)
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}
	if profile.Email != "hr@example.com" {
		t.Fatalf("profile email = %q", profile.Email)
	}
	if profile.Department == "" || profile.JobTitle == "" {
		t.Fatalf("profile defaults not applied: %+v", profile)
	}

	var apiErr *api.APIError
	err = client.ChangePassword(ctx, "wrong-old", "longenough")
	if !errors.As(err, &apiErr) || apiErr.StatusCode != 400 {
		t.Fatalf("wrong old password: want 400 APIError, got %v", err)
	}
	if err := client.ChangePassword(ctx, "hr123456", "brandnewpass"); err != nil {
		t.Fatalf("change password: %v", err)
	}

	// The old password must stop working.
	if _, err := client.Login(ctx, "hr@example.com", "hr123456"); err == nil {
		t.Fatal("old password still accepted after change")
	}
	if _, err := client.Login(ctx, "hr@example.com", "brandnewpass"); err != nil {
		t.Fatalf("new password rejected: %v", err)
	}
}

func TestExpiredTokenMapsToSessionExpired(t *testing.T) {
	client, sessions, _ := newJourneyClient(t)
	ctx := context.Background()

	if err := sessions.SetLogin("not-a-real-token", "admin", "Nobody", nil); err != nil {
		t.Fatalf("seed bad token: %v", err)
	}
	_, err := client.FetchDepartments(ctx)
	if !errors.Is(err, api.ErrSessionExpired) {
		t.Fatalf("want ErrSessionExpired, got %v", err)
	}
	if !strings.Contains(err.Error(), "credentials") && !strings.Contains(err.Error(), "expired") {
		t.Fatalf("error lost server detail: %v", err)
	}
}
