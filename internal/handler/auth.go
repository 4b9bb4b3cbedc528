package handler

import (
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/mvalenciah/sport-venue-reservation/internal/apperr"
    "github.com/mvalenciah/sport-venue-reservation/internal/usecase"
)

// AuthHandler serves registration, activation, sign-in and profile
// endpoints.
type AuthHandler struct {
    auth *usecase.AuthUseCases
}

// NewAuthHandler constructs the auth handler.
func NewAuthHandler(auth *usecase.AuthUseCases) *AuthHandler {
    return &AuthHandler{auth: auth}
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(c echo.Context) error {
    var dto SignUpDTO
    if err := c.Bind(&dto); err != nil {
        return c.JSON(http.StatusBadRequest, apperr.BadRequest("invalid request body"))
    }
    if err := c.Validate(&dto); err != nil {
        return err
    }
    resp, err := h.auth.SignUp(c.Request().Context(), usecase.SignUpInput{
        Name:     dto.Name,
        Lastname: dto.Lastname,
        Phone:    dto.Phone,
        Email:    dto.Email,
        Password: dto.Password,
        Role:     dto.Role,
    })
    return respond(c, resp, err)
}

// Activate handles GET /auth/activate?token=...
func (h *AuthHandler) Activate(c echo.Context) error {
    raw := c.QueryParam("token")
    if raw == "" {
        return c.JSON(http.StatusBadRequest, apperr.BadRequest("the token parameter is required"))
    }
    resp, err := h.auth.ActivateAccount(c.Request().Context(), raw)
    return respond(c, resp, err)
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c echo.Context) error {
    var dto SignInDTO
    if err := c.Bind(&dto); err != nil {
        return c.JSON(http.StatusBadRequest, apperr.BadRequest("invalid request body"))
    }
    if err := c.Validate(&dto); err != nil {
        return err
    }
    resp, err := h.auth.SignIn(c.Request().Context(), dto.Email, dto.Password)
    return respond(c, resp, err)
}

// Me handles GET /users/me.
func (h *AuthHandler) Me(c echo.Context) error {
    p := principal(c)
    resp, err := h.auth.FindByID(c.Request().Context(), p, p.ID)
    return respond(c, resp, err)
}

// FindByID handles GET /users/:id.
func (h *AuthHandler) FindByID(c echo.Context) error {
    id, err := pathID(c)
    if err != nil {
        return respond(c, nil, err)
    }
    resp, err := h.auth.FindByID(c.Request().Context(), principal(c), id)
    return respond(c, resp, err)
}

// Update handles PUT /users.
func (h *AuthHandler) Update(c echo.Context) error {
    var dto ProfileDTO
    if err := c.Bind(&dto); err != nil {
        return c.JSON(http.StatusBadRequest, apperr.BadRequest("invalid request body"))
    }
    if err := c.Validate(&dto); err != nil {
        return err
    }
    resp, err := h.auth.Update(c.Request().Context(), principal(c), usecase.ProfileInput{
        Name:     dto.Name,
        Lastname: dto.Lastname,
        Phone:    dto.Phone,
        Email:    dto.Email,
    })
    return respond(c, resp, err)
}

// Delete handles DELETE /users/:id.
func (h *AuthHandler) Delete(c echo.Context) error {
    id, err := pathID(c)
    if err != nil {
        return respond(c, nil, err)
    }
    resp, err := h.auth.Delete(c.Request().Context(), principal(c), id)
    return respond(c, resp, err)
}
