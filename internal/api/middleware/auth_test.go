package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/jgmedellin/coffee-shop-api/internal/core/domain"
	"github.com/jgmedellin/coffee-shop-api/internal/core/service"
)

func newAuthContext(t *testing.T, header string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuth_MissingHeaderIsAnonymous(t *testing.T) {
	tokens := service.NewTokenService("secret", time.Hour)
	c, _ := newAuthContext(t, "")

	called := false
	handler := Auth(tokens)(func(c echo.Context) error {
		called = true
		if email, _ := c.Get(CtxEmail).(string); email != "" {
			t.Fatalf("anonymous request must not carry an identity")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next handler not called")
	}
}

func TestAuth_NonBearerHeaderIsAnonymous(t *testing.T) {
	tokens := service.NewTokenService("secret", time.Hour)
	c, _ := newAuthContext(t, "Basic dXNlcjpwYXNz")

	called := false
	handler := Auth(tokens)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next handler not called")
	}
}

func TestAuth_InvalidTokenRejected(t *testing.T) {
	tokens := service.NewTokenService("secret", time.Hour)
	c, _ := newAuthContext(t, "Bearer not-a-token")

	handler := Auth(tokens)(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	err := handler(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestAuth_ValidTokenInjectsClaims(t *testing.T) {
	tokens := service.NewTokenService("secret", time.Hour)
	token, err := tokens.Issue("a@x.com", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	c, _ := newAuthContext(t, "Bearer "+token)

	handler := Auth(tokens)(func(c echo.Context) error {
		if email, _ := c.Get(CtxEmail).(string); email != "a@x.com" {
			t.Fatalf("unexpected email: %v", c.Get(CtxEmail))
		}
		if role, _ := c.Get(CtxRole).(string); role != "ADMIN" {
			t.Fatalf("unexpected role: %v", c.Get(CtxRole))
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}

func TestAuth_LowercaseBearerAccepted(t *testing.T) {
	tokens := service.NewTokenService("secret", time.Hour)
	token, _ := tokens.Issue("a@x.com", domain.RoleUser)
	c, _ := newAuthContext(t, "bearer "+token)

	called := false
	handler := Auth(tokens)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next handler not called")
	}
}
