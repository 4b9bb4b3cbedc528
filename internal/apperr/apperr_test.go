package apperr

import (
    "errors"
    "fmt"
    "testing"

    "github.com/stretchr/testify/assert"
)

func TestConstructorsCarryCodeAndStatus(t *testing.T) {
    cases := []struct {
        err    *Error
        code   int
        status string
    }{
        {BadRequest("x"), 400, "Bad-Request"},
        {Unauthorized("x"), 401, "Unauthorized"},
        {Forbidden("x"), 403, "Forbidden"},
        {NotFound("x"), 404, "Not-Found"},
        {Conflict("x"), 409, "Conflict"},
        {InternalServer("x"), 500, "Internal-Server"},
    }
    for _, tc := range cases {
        assert.Equal(t, tc.code, tc.err.Code)
        assert.Equal(t, tc.status, tc.err.Status)
        assert.Equal(t, "x", tc.err.Error())
    }
}

func TestFromUnwraps(t *testing.T) {
    base := NotFound("missing")
    wrapped := fmt.Errorf("use case: %w", base)

    got := From(wrapped)
    assert.Equal(t, base, got)

    assert.Nil(t, From(errors.New("plain")))
    assert.Nil(t, From(nil))
}
