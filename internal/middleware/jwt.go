package middleware

import (
    "errors"
    "net/http"
    "strings"

    "github.com/golang-jwt/jwt/v5"
    "github.com/labstack/echo/v4"

    "github.com/mvalenciah/sport-venue-reservation/internal/apperr"
)

// Context keys under which the authenticated identity is stored.
const (
    CtxUserID = "user_id"
    CtxRole   = "role"
)

// JWTAuth validates the Bearer token on protected routes and stores
// the subject and role in the echo context.  Signature, expiry and
// signing method are all enforced; anything short of a valid HS256
// token is a 401.
func JWTAuth(secret string) echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            auth := c.Request().Header.Get(echo.HeaderAuthorization)
            if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
                return unauthorized(c, "missing or malformed authorization header")
            }
            raw := strings.TrimPrefix(auth, "Bearer ")

            claims := jwt.MapClaims{}
            token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
                if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
                    return nil, errors.New("unexpected signing method")
                }
                return []byte(secret), nil
            })
            if err != nil || !token.Valid {
                return unauthorized(c, "invalid or expired token")
            }

            sub, ok := claims["sub"].(float64)
            if !ok {
                return unauthorized(c, "invalid token subject")
            }
            role, _ := claims["role"].(string)

            c.Set(CtxUserID, uint64(sub))
            c.Set(CtxRole, role)
            return next(c)
        }
    }
}

func unauthorized(c echo.Context, msg string) error {
    return c.JSON(http.StatusUnauthorized, apperr.Unauthorized(msg))
}
