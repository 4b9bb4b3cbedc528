package handler

import (
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/mvalenciah/sport-venue-reservation/internal/apperr"
    "github.com/mvalenciah/sport-venue-reservation/internal/metrics"
    "github.com/mvalenciah/sport-venue-reservation/internal/usecase"
)

// ReservationHandler serves the reservation endpoints.
type ReservationHandler struct {
    reservations *usecase.ReservationUseCases
}

// NewReservationHandler constructs the reservation handler.
func NewReservationHandler(reservations *usecase.ReservationUseCases) *ReservationHandler {
    return &ReservationHandler{reservations: reservations}
}

func reservationInput(dto ReservationDTO) usecase.ReservationInput {
    return usecase.ReservationInput{
        DateReservation: dto.DateReservation,
        Hours:           dto.Hours,
        HourInitial:     dto.HourInitial,
        HourFinish:      dto.HourFinish,
        SportsVenueID:   dto.SportsVenueID,
    }
}

// observeOutcome labels a reservation write for the metrics counter.
func observeOutcome(operation string, err error) {
    outcome := "ok"
    if err != nil {
        outcome = "error"
        if app := apperr.From(err); app != nil && app.Code == http.StatusConflict {
            outcome = "conflict"
        }
    }
    metrics.ObserveReservation(operation, outcome)
}

// Create handles POST /reservations.
func (h *ReservationHandler) Create(c echo.Context) error {
    var dto ReservationDTO
    if err := c.Bind(&dto); err != nil {
        return c.JSON(http.StatusBadRequest, apperr.BadRequest("invalid request body"))
    }
    if err := c.Validate(&dto); err != nil {
        return err
    }
    resp, err := h.reservations.Create(c.Request().Context(), principal(c), reservationInput(dto))
    observeOutcome("create", err)
    return respond(c, resp, err)
}

// Find handles GET /reservations.  Admin-only.
func (h *ReservationHandler) Find(c echo.Context) error {
    resp, err := h.reservations.Find(c.Request().Context(), principal(c))
    return respond(c, resp, err)
}

// FindByUser handles GET /reservations/user.
func (h *ReservationHandler) FindByUser(c echo.Context) error {
    resp, err := h.reservations.FindByUser(c.Request().Context(), principal(c))
    return respond(c, resp, err)
}

// FindByID handles GET /reservations/:id.
func (h *ReservationHandler) FindByID(c echo.Context) error {
    id, err := pathID(c)
    if err != nil {
        return respond(c, nil, err)
    }
    resp, err := h.reservations.FindByID(c.Request().Context(), principal(c), id)
    return respond(c, resp, err)
}

// FindBySportVenue handles GET /reservations/sport-venues/:id.
func (h *ReservationHandler) FindBySportVenue(c echo.Context) error {
    id, err := pathID(c)
    if err != nil {
        return respond(c, nil, err)
    }
    resp, err := h.reservations.FindBySportVenue(c.Request().Context(), principal(c), id)
    return respond(c, resp, err)
}

// Update handles PUT /reservations/:id.  Admin-only; confirms the
// reservation.
func (h *ReservationHandler) Update(c echo.Context) error {
    id, err := pathID(c)
    if err != nil {
        return respond(c, nil, err)
    }
    var dto ReservationDTO
    if err := c.Bind(&dto); err != nil {
        return c.JSON(http.StatusBadRequest, apperr.BadRequest("invalid request body"))
    }
    if err := c.Validate(&dto); err != nil {
        return err
    }
    resp, err := h.reservations.Update(c.Request().Context(), principal(c), id, reservationInput(dto))
    observeOutcome("update", err)
    return respond(c, resp, err)
}

// SoftDelete handles DELETE /reservations/soft-delete/:id.
func (h *ReservationHandler) SoftDelete(c echo.Context) error {
    id, err := pathID(c)
    if err != nil {
        return respond(c, nil, err)
    }
    resp, err := h.reservations.SoftDelete(c.Request().Context(), principal(c), id)
    observeOutcome("cancel", err)
    return respond(c, resp, err)
}

// Delete handles DELETE /reservations/:id.  Admin-only.
func (h *ReservationHandler) Delete(c echo.Context) error {
    id, err := pathID(c)
    if err != nil {
        return respond(c, nil, err)
    }
    resp, err := h.reservations.Delete(c.Request().Context(), principal(c), id)
    observeOutcome("delete", err)
    return respond(c, resp, err)
}
