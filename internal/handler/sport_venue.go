package handler

import (
    "net/http"
    "strconv"

    "github.com/labstack/echo/v4"

    "github.com/mvalenciah/sport-venue-reservation/internal/apperr"
    "github.com/mvalenciah/sport-venue-reservation/internal/usecase"
)

// SportVenueHandler serves the venue catalog endpoints.
type SportVenueHandler struct {
    venues *usecase.SportVenueUseCases
}

// NewSportVenueHandler constructs the venue handler.
func NewSportVenueHandler(venues *usecase.SportVenueUseCases) *SportVenueHandler {
    return &SportVenueHandler{venues: venues}
}

// Create handles POST /sport-venues.
func (h *SportVenueHandler) Create(c echo.Context) error {
    var dto SportVenueDTO
    if err := c.Bind(&dto); err != nil {
        return c.JSON(http.StatusBadRequest, apperr.BadRequest("invalid request body"))
    }
    if err := c.Validate(&dto); err != nil {
        return err
    }
    resp, err := h.venues.Create(c.Request().Context(), principal(c), usecase.VenueInput{
        Name:      dto.Name,
        Venue:     dto.Venue,
        Available: dto.Available,
    })
    return respond(c, resp, err)
}

// Find handles GET /sport-venues.  The optional available query
// parameter filters the catalog.
func (h *SportVenueHandler) Find(c echo.Context) error {
    if raw := c.QueryParam("available"); raw != "" {
        available, err := strconv.ParseBool(raw)
        if err != nil {
            return c.JSON(http.StatusBadRequest,
                apperr.BadRequest("the available parameter must be a boolean"))
        }
        resp, err := h.venues.FindByAvailable(c.Request().Context(), available)
        return respond(c, resp, err)
    }
    resp, err := h.venues.Find(c.Request().Context())
    return respond(c, resp, err)
}

// FindByID handles GET /sport-venues/:id.
func (h *SportVenueHandler) FindByID(c echo.Context) error {
    id, err := pathID(c)
    if err != nil {
        return respond(c, nil, err)
    }
    resp, err := h.venues.FindByID(c.Request().Context(), id)
    return respond(c, resp, err)
}

// Update handles PUT /sport-venues/:id.
func (h *SportVenueHandler) Update(c echo.Context) error {
    id, err := pathID(c)
    if err != nil {
        return respond(c, nil, err)
    }
    var dto SportVenueDTO
    if err := c.Bind(&dto); err != nil {
        return c.JSON(http.StatusBadRequest, apperr.BadRequest("invalid request body"))
    }
    if err := c.Validate(&dto); err != nil {
        return err
    }
    resp, err := h.venues.Update(c.Request().Context(), principal(c), id, usecase.VenueInput{
        Name:      dto.Name,
        Venue:     dto.Venue,
        Available: dto.Available,
    })
    return respond(c, resp, err)
}

// Delete handles DELETE /sport-venues/:id.
func (h *SportVenueHandler) Delete(c echo.Context) error {
    id, err := pathID(c)
    if err != nil {
        return respond(c, nil, err)
    }
    resp, err := h.venues.Delete(c.Request().Context(), principal(c), id)
    return respond(c, resp, err)
}
