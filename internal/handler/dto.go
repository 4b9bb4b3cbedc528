package handler

// Request DTOs.  Validation tags carry the API's field rules; the
// custom rules are registered in NewValidator.

// SignUpDTO is the payload of POST /auth/register.
type SignUpDTO struct {
    Name     string `json:"name" validate:"required,textname"`
    Lastname string `json:"lastname" validate:"required,textname"`
    Phone    string `json:"phone" validate:"required,phone10"`
    Email    string `json:"email" validate:"required,email"`
    Password string `json:"password" validate:"required,strongpwd"`
    Role     string `json:"role" validate:"omitempty,oneof=ADMIN_ROLE USER_ROLE"`
}

// SignInDTO is the payload of POST /auth/login.
type SignInDTO struct {
    Email    string `json:"email" validate:"required,email"`
    Password string `json:"password" validate:"required"`
}

// ProfileDTO is the payload of PUT /users.
type ProfileDTO struct {
    Name     string `json:"name" validate:"required,textname"`
    Lastname string `json:"lastname" validate:"required,textname"`
    Phone    string `json:"phone" validate:"required,phone10"`
    Email    string `json:"email" validate:"required,email"`
}

// SportVenueDTO is the payload of venue create and update.
type SportVenueDTO struct {
    Name      string `json:"name" validate:"required,min=3"`
    Venue     string `json:"venue" validate:"required,min=3"`
    Available bool   `json:"available"`
}

// ReservationDTO is the payload of reservation create and update.
// Hours is the slot length the client believes it booked; the
// authoritative span is always the parsed hour pair.
type ReservationDTO struct {
    DateReservation string `json:"date_reservation" validate:"required,dateymd"`
    Hours           uint32 `json:"hours" validate:"required,min=1,max=12"`
    HourInitial     string `json:"hour_initial" validate:"required,hour12"`
    HourFinish      string `json:"hour_finish" validate:"required,hour12"`
    SportsVenueID   uint64 `json:"sports_venue_id" validate:"required,min=1"`
}
