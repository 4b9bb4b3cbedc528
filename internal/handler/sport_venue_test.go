package handler

import (
    "context"
    "database/sql"
    "net/http"
    "net/http/httptest"
    "strings"
    "testing"

    "github.com/labstack/echo/v4"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/mvalenciah/sport-venue-reservation/internal/middleware"
    "github.com/mvalenciah/sport-venue-reservation/internal/model"
    "github.com/mvalenciah/sport-venue-reservation/internal/usecase"
    "github.com/mvalenciah/sport-venue-reservation/internal/utils"
)

type memVenueStore struct {
    nextID uint64
    byID   map[uint64]model.SportVenue
}

func (s *memVenueStore) Create(_ context.Context, v model.SportVenue) (uint64, error) {
    s.nextID++
    v.ID = s.nextID
    s.byID[v.ID] = v
    return v.ID, nil
}

func (s *memVenueStore) GetByID(_ context.Context, id uint64) (model.SportVenue, error) {
    v, ok := s.byID[id]
    if !ok {
        return model.SportVenue{}, sql.ErrNoRows
    }
    return v, nil
}

func (s *memVenueStore) GetByNameAndVenue(_ context.Context, name, venue string) (model.SportVenue, error) {
    for _, v := range s.byID {
        if v.Name == name && v.Venue == venue {
            return v, nil
        }
    }
    return model.SportVenue{}, sql.ErrNoRows
}

func (s *memVenueStore) List(_ context.Context) ([]model.SportVenue, error) {
    out := []model.SportVenue{}
    for _, v := range s.byID {
        out = append(out, v)
    }
    return out, nil
}

func (s *memVenueStore) ListByAvailable(_ context.Context, available bool) ([]model.SportVenue, error) {
    out := []model.SportVenue{}
    for _, v := range s.byID {
        if v.Available == available {
            out = append(out, v)
        }
    }
    return out, nil
}

func (s *memVenueStore) Update(_ context.Context, v model.SportVenue) error {
    if _, ok := s.byID[v.ID]; !ok {
        return sql.ErrNoRows
    }
    s.byID[v.ID] = v
    return nil
}

func (s *memVenueStore) Delete(_ context.Context, id uint64) error {
    delete(s.byID, id)
    return nil
}

const venueTestSecret = "venue-test-secret"

func venueApp() *echo.Echo {
    store := &memVenueStore{byID: map[uint64]model.SportVenue{}}
    h := NewSportVenueHandler(usecase.NewSportVenueUseCases(store))

    e := echo.New()
    e.Validator = NewValidator()
    e.HTTPErrorHandler = HTTPErrorHandler
    jwt := middleware.JWTAuth(venueTestSecret)
    adminOnly := middleware.RequireRole(model.AdminRole)
    anyRole := middleware.RequireRole(model.AdminRole, model.UserRole)

    g := e.Group("/api/v1/sport-venues", jwt)
    g.GET("", h.Find, anyRole)
    g.GET("/:id", h.FindByID, anyRole)
    g.POST("", h.Create, adminOnly)
    g.PUT("/:id", h.Update, adminOnly)
    g.DELETE("/:id", h.Delete, adminOnly)
    return e
}

func venueBearer(t *testing.T, userID uint64, role string) string {
    t.Helper()
    at, err := utils.NewAccessToken(venueTestSecret, userID, role, 5)
    require.NoError(t, err)
    return "Bearer " + at.Token
}

func doJSON(e *echo.Echo, method, path, bearer, body string) *httptest.ResponseRecorder {
    var req *http.Request
    if body != "" {
        req = httptest.NewRequest(method, path, strings.NewReader(body))
        req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
    } else {
        req = httptest.NewRequest(method, path, nil)
    }
    if bearer != "" {
        req.Header.Set(echo.HeaderAuthorization, bearer)
    }
    rec := httptest.NewRecorder()
    e.ServeHTTP(rec, req)
    return rec
}

func TestVenueEndpointsRequireAuth(t *testing.T) {
    e := venueApp()
    rec := doJSON(e, http.MethodGet, "/api/v1/sport-venues", "", "")
    assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestVenueCreateForbiddenForUsers(t *testing.T) {
    e := venueApp()
    body := `{"name":"Court One","venue":"Riverside Complex","available":true}`
    rec := doJSON(e, http.MethodPost, "/api/v1/sport-venues", venueBearer(t, 2, model.UserRole), body)
    assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestVenueCreateListAndConflict(t *testing.T) {
    e := venueApp()
    admin := venueBearer(t, 1, model.AdminRole)
    body := `{"name":"Court One","venue":"Riverside Complex","available":true}`

    rec := doJSON(e, http.MethodPost, "/api/v1/sport-venues", admin, body)
    assert.Equal(t, http.StatusCreated, rec.Code)
    assert.Contains(t, rec.Body.String(), `"status":"Created"`)
    assert.Contains(t, rec.Body.String(), "Court One")

    rec = doJSON(e, http.MethodPost, "/api/v1/sport-venues", admin, body)
    assert.Equal(t, http.StatusConflict, rec.Code)
    assert.Contains(t, rec.Body.String(), "already exists")

    rec = doJSON(e, http.MethodGet, "/api/v1/sport-venues", venueBearer(t, 2, model.UserRole), "")
    assert.Equal(t, http.StatusOK, rec.Code)
    assert.Contains(t, rec.Body.String(), "Riverside Complex")
}

func TestVenueCreateRejectsShortName(t *testing.T) {
    e := venueApp()
    body := `{"name":"A","venue":"Riverside Complex"}`
    rec := doJSON(e, http.MethodPost, "/api/v1/sport-venues", venueBearer(t, 1, model.AdminRole), body)
    assert.Equal(t, http.StatusBadRequest, rec.Code)

    // validation failures render the same envelope as use case errors
    assert.Contains(t, rec.Body.String(), `"code":400`)
    assert.Contains(t, rec.Body.String(), `"status":"Bad-Request"`)
    assert.Contains(t, rec.Body.String(), `"message"`)
}

func TestUnknownRouteUsesEnvelope(t *testing.T) {
    e := venueApp()
    rec := doJSON(e, http.MethodGet, "/api/v1/nothing-here", "", "")
    assert.Equal(t, http.StatusNotFound, rec.Code)
    assert.Contains(t, rec.Body.String(), `"code":404`)
    assert.Contains(t, rec.Body.String(), `"status":"Not-Found"`)
}

func TestVenueFindByIDNotFound(t *testing.T) {
    e := venueApp()
    rec := doJSON(e, http.MethodGet, "/api/v1/sport-venues/42", venueBearer(t, 2, model.UserRole), "")
    assert.Equal(t, http.StatusNotFound, rec.Code)
    assert.Contains(t, rec.Body.String(), `"status":"Not-Found"`)
}

func TestVenueAvailableFilter(t *testing.T) {
    e := venueApp()
    admin := venueBearer(t, 1, model.AdminRole)
    doJSON(e, http.MethodPost, "/api/v1/sport-venues", admin, `{"name":"Court One","venue":"Riverside Complex","available":true}`)
    doJSON(e, http.MethodPost, "/api/v1/sport-venues", admin, `{"name":"Court Two","venue":"Riverside Complex","available":false}`)

    rec := doJSON(e, http.MethodGet, "/api/v1/sport-venues?available=true", admin, "")
    assert.Equal(t, http.StatusOK, rec.Code)
    assert.Contains(t, rec.Body.String(), "Court One")
    assert.NotContains(t, rec.Body.String(), "Court Two")

    rec = doJSON(e, http.MethodGet, "/api/v1/sport-venues?available=banana", admin, "")
    assert.Equal(t, http.StatusBadRequest, rec.Code)
}
