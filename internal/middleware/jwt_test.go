package middleware

import (
    "net/http"
    "net/http/httptest"
    "testing"

    "github.com/labstack/echo/v4"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/mvalenciah/sport-venue-reservation/internal/model"
    "github.com/mvalenciah/sport-venue-reservation/internal/utils"
)

const testSecret = "test-secret"

func protectedApp(roles ...string) *echo.Echo {
    e := echo.New()
    mws := []echo.MiddlewareFunc{JWTAuth(testSecret)}
    if len(roles) > 0 {
        mws = append(mws, RequireRole(roles...))
    }
    e.GET("/protected", func(c echo.Context) error {
        return c.JSON(http.StatusOK, map[string]any{
            "user_id": c.Get(CtxUserID),
            "role":    c.Get(CtxRole),
        })
    }, mws...)
    return e
}

func bearerFor(t *testing.T, userID uint64, role string) string {
    t.Helper()
    at, err := utils.NewAccessToken(testSecret, userID, role, 5)
    require.NoError(t, err)
    return "Bearer " + at.Token
}

func TestJWTAuthMissingHeader(t *testing.T) {
    e := protectedApp()
    req := httptest.NewRequest(http.MethodGet, "/protected", nil)
    rec := httptest.NewRecorder()
    e.ServeHTTP(rec, req)
    assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthValidToken(t *testing.T) {
    e := protectedApp()
    req := httptest.NewRequest(http.MethodGet, "/protected", nil)
    req.Header.Set(echo.HeaderAuthorization, bearerFor(t, 7, model.UserRole))
    rec := httptest.NewRecorder()
    e.ServeHTTP(rec, req)
    assert.Equal(t, http.StatusOK, rec.Code)
    assert.Contains(t, rec.Body.String(), `"user_id":7`)
    assert.Contains(t, rec.Body.String(), model.UserRole)
}

func TestJWTAuthWrongSecret(t *testing.T) {
    e := protectedApp()
    at, err := utils.NewAccessToken("another-secret", 7, model.UserRole, 5)
    require.NoError(t, err)
    req := httptest.NewRequest(http.MethodGet, "/protected", nil)
    req.Header.Set(echo.HeaderAuthorization, "Bearer "+at.Token)
    rec := httptest.NewRecorder()
    e.ServeHTTP(rec, req)
    assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthExpiredToken(t *testing.T) {
    e := protectedApp()
    at, err := utils.NewAccessToken(testSecret, 7, model.UserRole, -5)
    require.NoError(t, err)
    req := httptest.NewRequest(http.MethodGet, "/protected", nil)
    req.Header.Set(echo.HeaderAuthorization, "Bearer "+at.Token)
    rec := httptest.NewRecorder()
    e.ServeHTTP(rec, req)
    assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRole(t *testing.T) {
    e := protectedApp(model.AdminRole)

    req := httptest.NewRequest(http.MethodGet, "/protected", nil)
    req.Header.Set(echo.HeaderAuthorization, bearerFor(t, 7, model.UserRole))
    rec := httptest.NewRecorder()
    e.ServeHTTP(rec, req)
    assert.Equal(t, http.StatusForbidden, rec.Code)

    req = httptest.NewRequest(http.MethodGet, "/protected", nil)
    req.Header.Set(echo.HeaderAuthorization, bearerFor(t, 1, model.AdminRole))
    rec = httptest.NewRecorder()
    e.ServeHTTP(rec, req)
    assert.Equal(t, http.StatusOK, rec.Code)
}
