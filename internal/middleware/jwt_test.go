package middleware_test

import (
    "net/http"
    "net/http/httptest"
    "testing"

    "github.com/labstack/echo/v4"

    "github.com/roomstack/hotel-booking/internal/middleware"
    "github.com/roomstack/hotel-booking/internal/model"
    "github.com/roomstack/hotel-booking/internal/utils"
)

const testSecret = "test-secret"

func newServer(roles ...model.Role) *echo.Echo {
    e := echo.New()
    g := e.Group("/v1", middleware.JWTAuth(testSecret))
    if len(roles) > 0 {
        g.Use(middleware.RequireRole(roles...))
    }
    g.GET("/ping", func(c echo.Context) error {
        return c.String(http.StatusOK, "pong")
    })
    return e
}

func request(e *echo.Echo, token string) *httptest.ResponseRecorder {
    req := httptest.NewRequest(http.MethodGet, "/v1/ping", nil)
    if token != "" {
        req.Header.Set("Authorization", "Bearer "+token)
    }
    rec := httptest.NewRecorder()
    e.ServeHTTP(rec, req)
    return rec
}

func TestJWTAuthRejectsMissingToken(t *testing.T) {
    e := newServer()
    if rec := request(e, ""); rec.Code != http.StatusUnauthorized {
        t.Fatalf("status = %d, want 401", rec.Code)
    }
}

func TestJWTAuthRejectsGarbage(t *testing.T) {
    e := newServer()
    if rec := request(e, "not-a-jwt"); rec.Code != http.StatusUnauthorized {
        t.Fatalf("status = %d, want 401", rec.Code)
    }
}

func TestJWTAuthRejectsWrongSecret(t *testing.T) {
    e := newServer()
    at, err := utils.NewAccessToken("different-secret", 1, model.RoleCustomer, 5)
    if err != nil {
        t.Fatalf("NewAccessToken: %v", err)
    }
    if rec := request(e, at.Token); rec.Code != http.StatusUnauthorized {
        t.Fatalf("status = %d, want 401", rec.Code)
    }
}

func TestJWTAuthAcceptsIssuedToken(t *testing.T) {
    e := newServer()
    at, err := utils.NewAccessToken(testSecret, 1, model.RoleCustomer, 5)
    if err != nil {
        t.Fatalf("NewAccessToken: %v", err)
    }
    if rec := request(e, at.Token); rec.Code != http.StatusOK {
        t.Fatalf("status = %d, want 200", rec.Code)
    }
}

func TestRequireRole(t *testing.T) {
    e := newServer(model.RoleAdmin)

    customer, err := utils.NewAccessToken(testSecret, 1, model.RoleCustomer, 5)
    if err != nil {
        t.Fatalf("NewAccessToken: %v", err)
    }
    if rec := request(e, customer.Token); rec.Code != http.StatusForbidden {
        t.Fatalf("customer on admin route: status = %d, want 403", rec.Code)
    }

    admin, err := utils.NewAccessToken(testSecret, 2, model.RoleAdmin, 5)
    if err != nil {
        t.Fatalf("NewAccessToken: %v", err)
    }
    if rec := request(e, admin.Token); rec.Code != http.StatusOK {
        t.Fatalf("admin on admin route: status = %d, want 200", rec.Code)
    }
}
