// Package handler exposes the HTTP endpoints of the service.  Each
// handler binds and validates its DTO, delegates to a use case and
// renders the envelope the use case returns.
package handler

import (
    "errors"
    "fmt"
    "net/http"
    "strconv"
    "strings"

    "github.com/labstack/echo/v4"

    "github.com/mvalenciah/sport-venue-reservation/internal/apperr"
    "github.com/mvalenciah/sport-venue-reservation/internal/middleware"
    "github.com/mvalenciah/sport-venue-reservation/internal/usecase"
)

// HTTPErrorHandler renders every error that escapes a handler as the
// {code,status,message} envelope, so validation failures and routing
// errors look the same as use case errors.  Unknown errors become a
// 500.
func HTTPErrorHandler(err error, c echo.Context) {
    if c.Response().Committed {
        return
    }
    app := apperr.From(err)
    if app == nil {
        var he *echo.HTTPError
        if errors.As(err, &he) {
            app = &apperr.Error{
                Code:    he.Code,
                Status:  statusLabel(he.Code),
                Message: fmt.Sprintf("%v", he.Message),
            }
        } else {
            app = apperr.InternalServer(err.Error())
        }
    }
    if c.Request().Method == http.MethodHead {
        _ = c.NoContent(app.Code)
        return
    }
    _ = c.JSON(app.Code, app)
}

// statusLabel turns an HTTP status code into the hyphenated status
// word of the envelope ("Bad-Request", "Not-Found").
func statusLabel(code int) string {
    text := http.StatusText(code)
    if text == "" {
        return "Error"
    }
    return strings.ReplaceAll(text, " ", "-")
}

// principal reads the authenticated identity placed in the context by
// the JWT middleware.
func principal(c echo.Context) usecase.Principal {
    id, _ := c.Get(middleware.CtxUserID).(uint64)
    role, _ := c.Get(middleware.CtxRole).(string)
    return usecase.Principal{ID: id, Role: role}
}

// pathID parses the :id route parameter.
func pathID(c echo.Context) (uint64, error) {
    id, err := strconv.ParseUint(c.Param("id"), 10, 64)
    if err != nil || id == 0 {
        return 0, apperr.BadRequest("the id parameter must be a positive integer")
    }
    return id, nil
}

// respond renders a use case result: the envelope on success, the
// structured error otherwise.
func respond(c echo.Context, resp *usecase.Response, err error) error {
    if err != nil {
        if app := apperr.From(err); app != nil {
            return c.JSON(app.Code, app)
        }
        return c.JSON(http.StatusInternalServerError, apperr.InternalServer(err.Error()))
    }
    return c.JSON(resp.Code, resp)
}
