package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/jgmedellin/coffee-shop-api/internal/core/domain"
)

func TestTable_PublicRoutes(t *testing.T) {
	public := []struct{ method, path string }{
		{http.MethodPost, "/api/v1/users/register"},
		{http.MethodPost, "/api/v1/users/login"},
		{http.MethodGet, "/swagger/index.html"},
		{http.MethodGet, "/health"},
		{http.MethodGet, "/health/ready"},
		{http.MethodGet, "/metrics"},
	}
	for _, route := range public {
		if d := DefaultTable.Evaluate(route.method, route.path, "", false); d != Allow {
			t.Fatalf("%s %s should be public, got %v", route.method, route.path, d)
		}
	}
}

// TestTable_RoleMatrix walks the full route table: every (method, path) pair
// against every role, anonymous included.
func TestTable_RoleMatrix(t *testing.T) {
	cases := []struct {
		method  string
		path    string
		allowed []domain.Role
	}{
		{http.MethodPatch, "/api/v1/users/changeRole", []domain.Role{domain.RoleSuper}},
		{http.MethodGet, "/api/v1/users", []domain.Role{domain.RoleAdmin, domain.RoleSuper}},
		{http.MethodGet, "/api/v1/users/7", []domain.Role{domain.RoleUser, domain.RoleAdmin, domain.RoleSuper}},
		{http.MethodDelete, "/api/v1/users/7", []domain.Role{domain.RoleSuper}},
		{http.MethodPut, "/api/v1/users/7", []domain.Role{domain.RoleUser, domain.RoleAdmin, domain.RoleSuper}},
		{http.MethodPost, "/api/v1/products", []domain.Role{domain.RoleAdmin, domain.RoleSuper}},
		{http.MethodGet, "/api/v1/products", []domain.Role{domain.RoleUser, domain.RoleAdmin, domain.RoleSuper}},
		{http.MethodGet, "/api/v1/products/3", []domain.Role{domain.RoleUser, domain.RoleAdmin, domain.RoleSuper}},
		{http.MethodPatch, "/api/v1/products/3", []domain.Role{domain.RoleAdmin, domain.RoleSuper}},
		{http.MethodDelete, "/api/v1/products/3", []domain.Role{domain.RoleSuper}},
		{http.MethodPost, "/api/v1/orders", []domain.Role{domain.RoleUser}},
		{http.MethodGet, "/api/v1/orders/history", []domain.Role{domain.RoleUser, domain.RoleAdmin, domain.RoleSuper}},
		{http.MethodGet, "/api/v1/orders", []domain.Role{domain.RoleAdmin, domain.RoleSuper}},
		{http.MethodGet, "/api/v1/orders/ord-1", []domain.Role{domain.RoleUser, domain.RoleAdmin, domain.RoleSuper}},
		{http.MethodPatch, "/api/v1/orders/ord-1", []domain.Role{domain.RoleAdmin, domain.RoleSuper}},
		{http.MethodDelete, "/api/v1/orders/ord-1", []domain.Role{domain.RoleSuper}},
	}

	roles := []domain.Role{domain.RoleUser, domain.RoleAdmin, domain.RoleSuper}
	for _, tc := range cases {
		allowed := make(map[domain.Role]bool, len(tc.allowed))
		for _, r := range tc.allowed {
			allowed[r] = true
		}
		for _, role := range roles {
			want := Forbidden
			if allowed[role] {
				want = Allow
			}
			if got := DefaultTable.Evaluate(tc.method, tc.path, role, true); got != want {
				t.Errorf("%s %s as %s: got %v, want %v", tc.method, tc.path, role, got, want)
			}
		}
		if got := DefaultTable.Evaluate(tc.method, tc.path, "", false); got != Unauthorized {
			t.Errorf("%s %s anonymous: got %v, want Unauthorized", tc.method, tc.path, got)
		}
	}
}

func TestTable_AdminCannotPlaceOrders(t *testing.T) {
	for _, role := range []domain.Role{domain.RoleAdmin, domain.RoleSuper} {
		if d := DefaultTable.Evaluate(http.MethodPost, "/api/v1/orders", role, true); d != Forbidden {
			t.Fatalf("%s must be forbidden from placing orders, got %v", role, d)
		}
	}
}

func TestTable_HistoryPrecedesWildcard(t *testing.T) {
	// /orders/history must match its own rule, not GET /orders/*: a USER
	// reading history is allowed even though GET /orders is elevated-only.
	if d := DefaultTable.Evaluate(http.MethodGet, "/api/v1/orders/history", domain.RoleUser, true); d != Allow {
		t.Fatalf("USER must be able to read own history, got %v", d)
	}
}

func TestTable_UnmatchedRoutes(t *testing.T) {
	if d := DefaultTable.Evaluate(http.MethodGet, "/api/v1/unknown", domain.RoleUser, true); d != Allow {
		t.Fatalf("unmatched authenticated request should be allowed, got %v", d)
	}
	if d := DefaultTable.Evaluate(http.MethodGet, "/api/v1/unknown", "", false); d != Unauthorized {
		t.Fatalf("unmatched anonymous request should be rejected, got %v", d)
	}
}

func TestTable_FirstMatchWins(t *testing.T) {
	table := Table{
		{Method: http.MethodGet, Pattern: "/things/special", Roles: []domain.Role{domain.RoleSuper}},
		{Method: http.MethodGet, Pattern: "/things/*", Roles: []domain.Role{domain.RoleUser}},
	}
	if d := table.Evaluate(http.MethodGet, "/things/special", domain.RoleUser, true); d != Forbidden {
		t.Fatalf("first rule must win, got %v", d)
	}
	if d := table.Evaluate(http.MethodGet, "/things/other", domain.RoleUser, true); d != Allow {
		t.Fatalf("wildcard rule should apply, got %v", d)
	}
}

func TestMatchPath(t *testing.T) {
	cases := []struct {
		pattern string
		path    string
		want    bool
	}{
		{"/api/v1/users", "/api/v1/users", true},
		{"/api/v1/users", "/api/v1/users/7", false},
		{"/api/v1/users/*", "/api/v1/users/7", true},
		{"/api/v1/users/*", "/api/v1/users", false},
		{"/api/v1/users/*", "/api/v1/users/7/extra", false},
		{"/swagger/**", "/swagger/index.html", true},
		{"/swagger/**", "/swagger/a/b/c", true},
		{"/swagger/**", "/other", false},
	}
	for _, tc := range cases {
		if got := matchPath(tc.pattern, tc.path); got != tc.want {
			t.Errorf("matchPath(%q, %q) = %v, want %v", tc.pattern, tc.path, got, tc.want)
		}
	}
}

func TestPolicy_Middleware(t *testing.T) {
	e := echo.New()

	run := func(method, path, email, role string) (*httptest.ResponseRecorder, error) {
		req := httptest.NewRequest(method, path, nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		if email != "" {
			c.Set(CtxEmail, email)
			c.Set(CtxRole, role)
		}
		handler := Policy(DefaultTable)(func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})
		return rec, handler(c)
	}

	if _, err := run(http.MethodGet, "/api/v1/products", "a@x.com", "USER"); err != nil {
		t.Fatalf("allowed request rejected: %v", err)
	}

	_, err := run(http.MethodDelete, "/api/v1/products/1", "a@x.com", "USER")
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %v", err)
	}

	_, err = run(http.MethodGet, "/api/v1/products", "", "")
	he, ok = err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}
