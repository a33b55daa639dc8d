package middleware

// identity.go defines helpers shared across middleware files.  It
// resolves a stable identifier for the requesting user from the values
// written by JWTAuth; unauthenticated requests resolve to "anon" so
// rate-limit keys still partition by IP and route.

import (
    "fmt"

    "github.com/labstack/echo/v4"
)

// currentUserID extracts a user identifier from the request context.
// The "sub" claim round-trips through JSON so it may arrive as a
// float64 rather than the original integer.
func currentUserID(c echo.Context) string {
    switch v := c.Get("user_id").(type) {
    case string:
        if v != "" {
            return v
        }
    case float64:
        return fmt.Sprintf("%d", uint64(v))
    case uint64:
        return fmt.Sprintf("%d", v)
    case int64:
        return fmt.Sprintf("%d", v)
    }
    return "anon"
}
