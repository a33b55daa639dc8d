package handler

import (
    "context"
    "encoding/json"
    "errors"
    "net/http"
    "net/http/httptest"
    "strings"
    "testing"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/roomstack/hotel-booking/internal/config"
    "github.com/roomstack/hotel-booking/internal/model"
    "github.com/roomstack/hotel-booking/internal/utils"
)

type createdUser struct {
    email string
    role  model.Role
}

type fakeUsers struct {
    created []createdUser
    byID    map[uint64]model.User
}

func (f *fakeUsers) Create(_ context.Context, email, _ string, role model.Role, _ int) (uint64, error) {
    f.created = append(f.created, createdUser{email: email, role: role})
    return uint64(len(f.created)), nil
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (model.User, error) {
    for id, u := range f.byID {
        if u.Email == email {
            u.ID = id
            return u, nil
        }
    }
    return model.User{}, errors.New("no such user")
}

func (f *fakeUsers) GetByID(_ context.Context, id uint64) (model.User, error) {
    u, ok := f.byID[id]
    if !ok {
        return model.User{}, errors.New("no such user")
    }
    u.ID = id
    return u, nil
}

type fakeTokens struct {
    stored  map[string]uint64
    revoked map[string]bool
}

func newFakeTokens() *fakeTokens {
    return &fakeTokens{stored: map[string]uint64{}, revoked: map[string]bool{}}
}

func (f *fakeTokens) StoreRefresh(_ context.Context, userID uint64, tokenHash string, _ time.Time) error {
    f.stored[tokenHash] = userID
    return nil
}

func (f *fakeTokens) ValidateRefresh(_ context.Context, tokenHash string) (uint64, error) {
    uid, ok := f.stored[tokenHash]
    if !ok || f.revoked[tokenHash] {
        return 0, errors.New("invalid token")
    }
    return uid, nil
}

func (f *fakeTokens) RevokeByHash(_ context.Context, tokenHash string) error {
    f.revoked[tokenHash] = true
    return nil
}

func testAuthConfig() config.Config {
    return config.Config{
        JWTSecret:      "test-secret",
        AccessTTLMin:   5,
        RefreshTTLDays: 7,
        BcryptCost:     4,
    }
}

func postJSON(t *testing.T, h echo.HandlerFunc, target, body string) *httptest.ResponseRecorder {
    t.Helper()
    e := echo.New()
    req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
    req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
    rec := httptest.NewRecorder()
    c := e.NewContext(req, rec)
    if err := h(c); err != nil {
        t.Fatalf("handler returned error: %v", err)
    }
    return rec
}

// Self-service registration must never grant ADMIN, whatever the body
// claims.
func TestRegisterIgnoresRequestedRole(t *testing.T) {
    users := &fakeUsers{byID: map[uint64]model.User{}}
    h := NewAuthHandler(testAuthConfig(), users, newFakeTokens())

    rec := postJSON(t, h.Register, "/v1/auth/register",
        `{"email":"eve@example.com","password":"pw","role":"ADMIN"}`)
    if rec.Code != http.StatusCreated {
        t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
    }

    if len(users.created) != 1 {
        t.Fatalf("created %d users, want 1", len(users.created))
    }
    if users.created[0].role != model.RoleCustomer {
        t.Fatalf("stored role = %s, want CUSTOMER", users.created[0].role)
    }

    var resp struct {
        User struct {
            Role model.Role `json:"role"`
        } `json:"user"`
    }
    if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
        t.Fatalf("decode: %v", err)
    }
    if resp.User.Role != model.RoleCustomer {
        t.Fatalf("response role = %s, want CUSTOMER", resp.User.Role)
    }
}

func TestRegisterRequiresEmailAndPassword(t *testing.T) {
    users := &fakeUsers{byID: map[uint64]model.User{}}
    h := NewAuthHandler(testAuthConfig(), users, newFakeTokens())

    rec := postJSON(t, h.Register, "/v1/auth/register", `{"email":"","password":"pw"}`)
    if rec.Code != http.StatusBadRequest {
        t.Fatalf("status = %d, want 400", rec.Code)
    }
    if len(users.created) != 0 {
        t.Fatalf("user created despite invalid request")
    }
}

// Refresh must rotate: the presented token is revoked and a new hash
// stored.
func TestRefreshRotatesToken(t *testing.T) {
    users := &fakeUsers{byID: map[uint64]model.User{
        7: {Email: "guest@example.com", Role: model.RoleCustomer},
    }}
    tokens := newFakeTokens()
    h := NewAuthHandler(testAuthConfig(), users, tokens)

    raw := "0123456789abcdef"
    hash := utils.HashRefreshRaw(raw)
    tokens.stored[hash] = 7

    rec := postJSON(t, h.Refresh, "/v1/auth/refresh", `{"refresh_token":"`+raw+`"}`)
    if rec.Code != http.StatusOK {
        t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
    }
    if !tokens.revoked[hash] {
        t.Fatal("presented token was not revoked")
    }
    if len(tokens.stored) != 2 {
        t.Fatalf("stored hashes = %d, want 2", len(tokens.stored))
    }

    rec = postJSON(t, h.Refresh, "/v1/auth/refresh", `{"refresh_token":"`+raw+`"}`)
    if rec.Code != http.StatusUnauthorized {
        t.Fatalf("replayed token: status = %d, want 401", rec.Code)
    }
}
