package main

import (
	"net/http/httptest"
	"testing"

	"cafe-backend/internal/auth"
	"cafe-backend/internal/config"
	"cafe-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

func testConfig() *config.Config {
	return &config.Config{
		HTTPPort:        "8080",
		JWTSecret:       "0123456789abcdef0123456789abcdef",
		CORSOrigins:     "http://localhost:5173",
		DefaultCurrency: "EUR",
		ReportTopItems:  10,
	}
}

func bearerFor(t *testing.T, cfg *config.Config, role models.UserRole) string {
	t.Helper()
	token, err := auth.GenerateToken(cfg.JWTSecret, &models.User{
		ID:    1,
		Name:  "Test User",
		Email: "user@cafebrew.com",
		Role:  role,
	})
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}
	return "Bearer " + token
}

func TestStaffCannotReachAdminRoutes(t *testing.T) {
	cfg := testConfig()
	app := newApp(cfg)
	staff := bearerFor(t, cfg, models.RoleStaff)

	cases := []struct {
		method string
		path   string
	}{
		{"POST", "/api/suppliers"},
		{"PUT", "/api/suppliers/abc"},
		{"DELETE", "/api/suppliers/abc"},
		{"POST", "/api/inventory"},
		{"POST", "/api/menu"},
		{"PUT", "/api/menu/abc"},
		{"DELETE", "/api/menu/abc"},
		{"POST", "/api/modifiers"},
		{"PUT", "/api/config/theme"},
		{"POST", "/api/config/theme/reset"},
		{"GET", "/api/audit-logs"},
	}

	for _, tc := range cases {
		req := httptest.NewRequest(tc.method, tc.path, nil)
		req.Header.Set("Authorization", staff)

		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("%s %s: %v", tc.method, tc.path, err)
		}
		if resp.StatusCode != fiber.StatusForbidden {
			t.Fatalf("%s %s with staff token = %d, want %d", tc.method, tc.path, resp.StatusCode, fiber.StatusForbidden)
		}
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	cfg := testConfig()
	app := newApp(cfg)

	cases := []struct {
		method string
		path   string
	}{
		{"POST", "/api/bills"},
		{"GET", "/api/reports/daily"},
		{"POST", "/api/suppliers"},
		{"POST", "/api/inventory/abc/adjust"},
	}

	for _, tc := range cases {
		req := httptest.NewRequest(tc.method, tc.path, nil)

		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("%s %s: %v", tc.method, tc.path, err)
		}
		if resp.StatusCode != fiber.StatusUnauthorized {
			t.Fatalf("%s %s without token = %d, want %d", tc.method, tc.path, resp.StatusCode, fiber.StatusUnauthorized)
		}
	}
}

func TestPublicReadsNeedNoToken(t *testing.T) {
	cfg := testConfig()
	app := newApp(cfg)

	req := httptest.NewRequest("GET", "/api/", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("GET /api/: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("GET /api/ = %d, want %d", resp.StatusCode, fiber.StatusOK)
	}
}
