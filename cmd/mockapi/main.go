// A local stand-in for the HRM backend. Seeded accounts:
// admin@example.com/admin123, hr@example.com/hr123456,
// payroll@example.com/pay12345.
package main

import (
	"log"
	"net/http"
	"os"

	"hrmc/internal/mockapi"
)

func main() {
	addr := os.Getenv("MOCKAPI_ADDR")
	if addr == "" {
		addr = ":8000"
	}
	secret := os.Getenv("MOCKAPI_JWT_SECRET")

	server := mockapi.New(secret)
	log.Printf("mock HRM backend listening on %s", addr)
	if err := http.ListenAndServe(addr, server.Router()); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
