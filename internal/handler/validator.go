package handler

import (
    "regexp"
    "time"
    "unicode"

    "github.com/go-playground/validator/v10"
    "github.com/labstack/echo/v4"

    "github.com/mvalenciah/sport-venue-reservation/internal/apperr"
    "github.com/mvalenciah/sport-venue-reservation/internal/timeslot"
)

var (
    textNameRe = regexp.MustCompile(`^[a-zA-ZÀ-ÿ\s]{3,}$`)
    phoneRe    = regexp.MustCompile(`^[0-9]{10}$`)
)

// NewValidator builds the echo request validator with the custom
// rules of this API.
func NewValidator() echo.Validator {
    v := validator.New()
    _ = v.RegisterValidation("textname", func(fl validator.FieldLevel) bool {
        return textNameRe.MatchString(fl.Field().String())
    })
    _ = v.RegisterValidation("phone10", func(fl validator.FieldLevel) bool {
        return phoneRe.MatchString(fl.Field().String())
    })
    _ = v.RegisterValidation("strongpwd", validStrongPassword)
    _ = v.RegisterValidation("hour12", func(fl validator.FieldLevel) bool {
        _, err := timeslot.ParseClock(fl.Field().String())
        return err == nil
    })
    _ = v.RegisterValidation("dateymd", func(fl validator.FieldLevel) bool {
        _, err := time.Parse("2006-01-02", fl.Field().String())
        return err == nil
    })
    return &requestValidator{validate: v}
}

// validStrongPassword enforces 8 to 12 characters with at least one
// uppercase letter, one digit and one special character.
func validStrongPassword(fl validator.FieldLevel) bool {
    s := fl.Field().String()
    if len(s) < 8 || len(s) > 12 {
        return false
    }
    var upper, digit, special bool
    for _, r := range s {
        switch {
        case unicode.IsUpper(r):
            upper = true
        case unicode.IsDigit(r):
            digit = true
        case !unicode.IsLetter(r) && !unicode.IsDigit(r):
            special = true
        }
    }
    return upper && digit && special
}

type requestValidator struct {
    validate *validator.Validate
}

func (rv *requestValidator) Validate(i interface{}) error {
    if err := rv.validate.Struct(i); err != nil {
        return apperr.BadRequest(err.Error())
    }
    return nil
}
