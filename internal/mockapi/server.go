// Package mockapi is an in-memory implementation of the HRM backend used by
// the journey tests and the local dev server. It deliberately mixes response
// shapes the way the real backend does: bare arrays for departments and
// positions, {items,total} for employees and attendance, and a full envelope
// for payroll.
package mockapi

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"hrmc/internal/session"
)

type Server struct {
	secret string
	data   *store
}

func New(secret string) *Server {
	if secret == "" {
		secret = "mock-secret"
	}
	return &Server{secret: secret, data: seed()}
}

type ctxKey int

const ctxKeyUser ctxKey = iota

// Router wires every endpoint the client calls.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Post("/login", s.handleLogin)

	r.Group(func(r chi.Router) {
		r.Use(s.requireAuth)

		r.Get("/departments", s.handleListDepartments)
		r.Post("/departments/add", s.handleAddDepartment)
		r.Put("/departments/update/{id}", s.handleUpdateDepartment)
		r.Delete("/departments/delete/{id}", s.handleDeleteDepartment)

		r.Get("/positions", s.handleListPositions)
		r.Get("/positions/distribution/{id}", s.handlePositionDistribution)
		r.Post("/positions/add", s.handleAddPosition)
		r.Put("/positions/update/{id}", s.handleUpdatePosition)
		r.Delete("/positions/delete/{id}", s.handleDeletePosition)

		r.Get("/employees", s.handleListEmployees)
		r.Get("/employees/search", s.handleSearchEmployees)
		r.Get("/employees/details/{id}", s.handleEmployeeDetails)
		r.Post("/employees/add", s.handleAddEmployee)
		r.Put("/employees/update/{id}", s.handleUpdateEmployee)
		r.Delete("/employees/delete/{id}", s.handleDeleteEmployee)

		r.Get("/payroll/attendance", s.handleListAttendance)
		r.Get("/payroll", s.handleListPayroll)
		r.Get("/payroll/search", s.handleSearchPayroll)
		r.Post("/payroll/add", s.handleAddPayroll)
		r.Put("/payroll/update/{id}", s.handleUpdatePayroll)
		r.Delete("/payroll/delete/{id}", s.handleDeletePayroll)

		r.Post("/notifications/email-salary-notification", s.handleSalaryNotification)

		r.Get("/profile/", s.handleProfile)
		r.Put("/profile/change_password", s.handleChangePassword)

		r.Get("/dashboard/{role}", s.handleDashboard)

		r.Get("/reports/hr", s.handleHRReport)
		r.Get("/reports/payroll", s.handlePayrollReport)
		r.Get("/reports/dividend", s.handleDividendReport)
	})

	return r
}

func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			writeDetail(w, http.StatusUnauthorized, "Not authenticated")
			return
		}
		claims := &session.Claims{}
		token, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
			if token.Method != jwt.SigningMethodHS256 {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(s.secret), nil
		})
		if err != nil || !token.Valid {
			writeDetail(w, http.StatusUnauthorized, "Could not validate credentials")
			return
		}
		ctx := context.WithValue(r.Context(), ctxKeyUser, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func claimsFrom(r *http.Request) *session.Claims {
	claims, _ := r.Context().Value(ctxKeyUser).(*session.Claims)
	return claims
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "invalid login payload")
		return
	}

	s.data.mu.Lock()
	account, ok := s.data.findUser(body.Email)
	s.data.mu.Unlock()
	if !ok || bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(body.Password)) != nil {
		writeDetail(w, http.StatusUnauthorized, "Incorrect email or password")
		return
	}

	claims := session.Claims{
		UserID:   itoa(account.ID),
		RoleName: account.Role,
		FullName: account.FullName,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(8 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.secret))
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, "could not sign token")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"access_token": token,
		"token_type":   "bearer",
		"role":         account.Role,
		"full_name":    account.FullName,
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

// writeEnvelope is the {status, message, data, metadata} shape.
func writeEnvelope(w http.ResponseWriter, data any, total int) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":   "success",
		"message":  "",
		"data":     data,
		"metadata": map[string]int{"total_items": total},
	})
}
