package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func newRoleTestApp(role string, handler fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Get("/guarded",
		func(c *fiber.Ctx) error {
			if role != "" {
				c.Locals("userRole", role)
			}
			return c.Next()
		},
		handler,
		func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) },
	)
	return app
}

func TestOnlyAdmin(t *testing.T) {
	cases := []struct {
		name       string
		role       string
		wantStatus int
	}{
		{"admin passes", "admin", fiber.StatusOK},
		{"teacher forbidden", "teacher", fiber.StatusForbidden},
		{"student forbidden", "student", fiber.StatusForbidden},
		{"missing role unauthorized", "", fiber.StatusUnauthorized},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := newRoleTestApp(tc.role, OnlyAdmin())
			resp, err := app.Test(httptest.NewRequest("GET", "/guarded", nil))
			if err != nil {
				t.Fatalf("app.Test: %v", err)
			}
			if resp.StatusCode != tc.wantStatus {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tc.wantStatus)
			}
		})
	}
}

func TestOnlyRolesAllowsAnyListed(t *testing.T) {
	app := newRoleTestApp("teacher", OnlyRoles("staff only", "admin", "teacher"))
	resp, err := app.Test(httptest.NewRequest("GET", "/guarded", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
}
