package utils

import (
    "testing"
    "time"

    "github.com/golang-jwt/jwt/v5"

    "github.com/roomstack/hotel-booking/internal/model"
)

func TestNewAccessTokenClaims(t *testing.T) {
    at, err := NewAccessToken("secret", 42, model.RoleCustomer, 15)
    if err != nil {
        t.Fatalf("NewAccessToken: %v", err)
    }
    if at.Token == "" {
        t.Fatal("empty token")
    }
    tok, err := jwt.Parse(at.Token, func(tk *jwt.Token) (interface{}, error) {
        return []byte("secret"), nil
    })
    if err != nil || !tok.Valid {
        t.Fatalf("parse issued token: %v", err)
    }
    claims := tok.Claims.(jwt.MapClaims)
    if claims["role"] != "CUSTOMER" {
        t.Fatalf("role = %v, want CUSTOMER", claims["role"])
    }
    if sub, ok := claims["sub"].(float64); !ok || uint64(sub) != 42 {
        t.Fatalf("sub = %v, want 42", claims["sub"])
    }
    if time.Until(at.Exp) > 16*time.Minute {
        t.Fatalf("expiry too far out: %s", at.Exp)
    }
}

func TestNewAccessTokenWrongSecret(t *testing.T) {
    at, err := NewAccessToken("secret", 1, model.RoleAdmin, 5)
    if err != nil {
        t.Fatalf("NewAccessToken: %v", err)
    }
    tok, err := jwt.Parse(at.Token, func(tk *jwt.Token) (interface{}, error) {
        return []byte("other"), nil
    })
    if err == nil && tok.Valid {
        t.Fatal("token validated with wrong secret")
    }
}

func TestRefreshTokenHashing(t *testing.T) {
    rt, err := NewRefreshToken(7)
    if err != nil {
        t.Fatalf("NewRefreshToken: %v", err)
    }
    if len(rt.Raw) != 96 {
        t.Fatalf("raw length = %d, want 96", len(rt.Raw))
    }
    h1 := HashRefreshRaw(rt.Raw)
    h2 := HashRefreshRaw(rt.Raw)
    if h1 != h2 {
        t.Fatal("hash not deterministic")
    }
    if h1 == rt.Raw {
        t.Fatal("hash equals raw token")
    }

    other, err := NewRefreshToken(7)
    if err != nil {
        t.Fatalf("NewRefreshToken: %v", err)
    }
    if other.Raw == rt.Raw {
        t.Fatal("two refresh tokens collided")
    }
}
