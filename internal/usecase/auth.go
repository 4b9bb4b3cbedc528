package usecase

import (
    "context"
    "database/sql"
    "errors"
    "time"

    "go.uber.org/zap"

    "github.com/mvalenciah/sport-venue-reservation/internal/apperr"
    "github.com/mvalenciah/sport-venue-reservation/internal/logger"
    "github.com/mvalenciah/sport-venue-reservation/internal/model"
    "github.com/mvalenciah/sport-venue-reservation/internal/queue"
    "github.com/mvalenciah/sport-venue-reservation/internal/repository"
    "github.com/mvalenciah/sport-venue-reservation/internal/utils"
)

// AccountStore is the user persistence contract consumed by the auth
// use cases.  *repository.UserRepo is the concrete implementation.
type AccountStore interface {
    Create(ctx context.Context, u model.User) (uint64, error)
    GetByID(ctx context.Context, id uint64) (model.User, error)
    GetByEmail(ctx context.Context, email string) (model.User, error)
    Activate(ctx context.Context, id uint64) error
    Update(ctx context.Context, u model.User) error
    Delete(ctx context.Context, id uint64) error
}

// TokenStore persists hashed activation tokens.
type TokenStore interface {
    Store(ctx context.Context, userID uint64, tokenHash string, expiresAt time.Time) error
    Consume(ctx context.Context, tokenHash string) (uint64, error)
}

// AccountEventPublisher emits account lifecycle events to the broker.
type AccountEventPublisher interface {
    PublishAccountCreated(ctx context.Context, ev queue.AccountCreatedEvent) error
}

// AuthConfig carries the tunables of the auth flow.
type AuthConfig struct {
    JWTSecret          string
    AccessTokenTTLMin  int
    BcryptCost         int
    ActivationTTLHours int
    ActivationBaseURL  string
}

// SignUpInput carries the validated fields of a registration request.
type SignUpInput struct {
    Name     string
    Lastname string
    Phone    string
    Email    string
    Password string
    Role     string
}

// ProfileInput carries the mutable profile fields of a user.
type ProfileInput struct {
    Name     string
    Lastname string
    Phone    string
    Email    string
}

// AuthUseCases bundles registration, activation, sign-in and profile
// management.
type AuthUseCases struct {
    users  AccountStore
    tokens TokenStore
    events AccountEventPublisher
    cfg    AuthConfig
}

// NewAuthUseCases constructs the auth use cases.
func NewAuthUseCases(users AccountStore, tokens TokenStore, events AccountEventPublisher, cfg AuthConfig) *AuthUseCases {
    return &AuthUseCases{users: users, tokens: tokens, events: events, cfg: cfg}
}

// SignUp registers a new inactive account, stores a hashed
// single-use activation token and publishes the account.created
// event carrying the activation link.
func (uc *AuthUseCases) SignUp(ctx context.Context, in SignUpInput) (*Response, error) {
    if _, err := uc.users.GetByEmail(ctx, in.Email); err == nil {
        return nil, apperr.Conflict("an account with this email already exists")
    } else if !errors.Is(err, sql.ErrNoRows) {
        return nil, apperr.InternalServer(err.Error())
    }

    hash, err := utils.HashPassword(in.Password, uc.cfg.BcryptCost)
    if err != nil {
        return nil, apperr.InternalServer(err.Error())
    }
    role := in.Role
    if role == "" {
        role = model.UserRole
    }
    u := model.User{
        Name:         in.Name,
        Lastname:     in.Lastname,
        Phone:        in.Phone,
        Email:        in.Email,
        PasswordHash: hash,
        Role:         role,
    }
    id, err := uc.users.Create(ctx, u)
    if err != nil {
        switch {
        case errors.Is(err, repository.ErrEmailExists):
            return nil, apperr.Conflict("an account with this email already exists")
        case errors.Is(err, repository.ErrPhoneExists):
            return nil, apperr.Conflict("an account with this phone already exists")
        }
        return nil, apperr.InternalServer(err.Error())
    }
    u.ID = id

    token, err := utils.NewActivationToken(uc.cfg.ActivationTTLHours)
    if err != nil {
        return nil, apperr.InternalServer(err.Error())
    }
    if err := uc.tokens.Store(ctx, id, utils.HashTokenRaw(token.Raw), token.Exp); err != nil {
        return nil, apperr.InternalServer(err.Error())
    }

    uc.publishAccountCreated(ctx, u, token.Raw)

    return &Response{
        Code:    201,
        Status:  "Created",
        Message: "account created, check your email to activate it",
        Data:    userJSON(u),
    }, nil
}

// ActivateAccount consumes an activation token and marks the owning
// account active.  The token is single use; a second attempt fails
// the same way an unknown token does.
func (uc *AuthUseCases) ActivateAccount(ctx context.Context, rawToken string) (*Response, error) {
    userID, err := uc.tokens.Consume(ctx, utils.HashTokenRaw(rawToken))
    if err != nil {
        if errors.Is(err, sql.ErrNoRows) {
            return nil, apperr.Unauthorized("the activation token is invalid or has expired")
        }
        return nil, apperr.InternalServer(err.Error())
    }
    if err := uc.users.Activate(ctx, userID); err != nil {
        return nil, apperr.InternalServer(err.Error())
    }
    return &Response{Code: 200, Status: "OK", Message: "the account has been activated"}, nil
}

// TokenPayload is the client-facing shape of a successful sign-in.
type TokenPayload struct {
    AccessToken string      `json:"access_token"`
    TokenType   string      `json:"token_type"`
    ExpiresAt   string      `json:"expires_at"`
    User        UserPayload `json:"user"`
}

// SignIn verifies credentials and issues a signed access token.
// Unknown emails and wrong passwords produce the same response so
// the endpoint does not leak which accounts exist.
func (uc *AuthUseCases) SignIn(ctx context.Context, email, password string) (*Response, error) {
    u, err := uc.users.GetByEmail(ctx, email)
    if err != nil {
        if errors.Is(err, sql.ErrNoRows) {
            return nil, apperr.NotFound("invalid email or password")
        }
        return nil, apperr.InternalServer(err.Error())
    }
    if !utils.VerifyPassword(u.PasswordHash, password) {
        return nil, apperr.NotFound("invalid email or password")
    }
    if !u.AccountActive {
        return nil, apperr.Conflict("the account has not been activated")
    }
    at, err := utils.NewAccessToken(uc.cfg.JWTSecret, u.ID, u.Role, uc.cfg.AccessTokenTTLMin)
    if err != nil {
        return nil, apperr.InternalServer(err.Error())
    }
    return &Response{
        Code:    200,
        Status:  "OK",
        Message: "signed in",
        Data: TokenPayload{
            AccessToken: at.Token,
            TokenType:   "Bearer",
            ExpiresAt:   at.Exp.Format(time.RFC3339),
            User:        userJSON(u),
        },
    }, nil
}

// FindByID returns a user's profile.  Regular users may only look up
// themselves; admins may look up anyone.
func (uc *AuthUseCases) FindByID(ctx context.Context, p Principal, id uint64) (*Response, error) {
    if p.Role != model.AdminRole && p.ID != id {
        return nil, apperr.Forbidden("you do not have the required permissions")
    }
    u, err := uc.users.GetByID(ctx, id)
    if err != nil {
        return nil, notFoundOr(err, "the user was not found")
    }
    return &Response{Code: 200, Status: "OK", Message: "user information", Data: userJSON(u)}, nil
}

// Update rewrites the caller's own profile fields.
func (uc *AuthUseCases) Update(ctx context.Context, p Principal, in ProfileInput) (*Response, error) {
    u, err := uc.users.GetByID(ctx, p.ID)
    if err != nil {
        return nil, notFoundOr(err, "the user was not found")
    }
    u.Name = in.Name
    u.Lastname = in.Lastname
    u.Phone = in.Phone
    u.Email = in.Email
    if err := uc.users.Update(ctx, u); err != nil {
        switch {
        case errors.Is(err, repository.ErrEmailExists):
            return nil, apperr.Conflict("an account with this email already exists")
        case errors.Is(err, repository.ErrPhoneExists):
            return nil, apperr.Conflict("an account with this phone already exists")
        }
        return nil, apperr.InternalServer(err.Error())
    }
    return &Response{Code: 200, Status: "OK", Message: "the user has been updated", Data: userJSON(u)}, nil
}

// Delete permanently removes a user account.  Admin-only.
func (uc *AuthUseCases) Delete(ctx context.Context, p Principal, id uint64) (*Response, error) {
    if err := RequireAnyRole(p, model.AdminRole); err != nil {
        return nil, err
    }
    if _, err := uc.users.GetByID(ctx, id); err != nil {
        return nil, notFoundOr(err, "the user was not found")
    }
    if err := uc.users.Delete(ctx, id); err != nil {
        return nil, apperr.InternalServer(err.Error())
    }
    return &Response{Code: 200, Status: "OK", Message: "the user has been deleted"}, nil
}

// publishAccountCreated emits the activation email event.  Broker
// failures are logged and swallowed so a flaky queue cannot block
// registration.
func (uc *AuthUseCases) publishAccountCreated(ctx context.Context, u model.User, rawToken string) {
    if uc.events == nil {
        return
    }
    ev := queue.AccountCreatedEvent{
        UserID:         u.ID,
        Name:           u.Name,
        Lastname:       u.Lastname,
        Email:          u.Email,
        ActivationLink: uc.cfg.ActivationBaseURL + "?token=" + rawToken,
        CreatedAt:      time.Now().UTC().Format(time.RFC3339),
    }
    if err := uc.events.PublishAccountCreated(ctx, ev); err != nil {
        logger.Warn("failed to publish account.created event",
            zap.Uint64("user_id", u.ID), zap.Error(err))
    }
}

// UserPayload is the client-facing shape of a user.  The password
// hash never leaves the server.
type UserPayload struct {
    ID            uint64 `json:"id"`
    Name          string `json:"name"`
    Lastname      string `json:"lastname"`
    Phone         string `json:"phone"`
    Email         string `json:"email"`
    AccountActive bool   `json:"account_active"`
    Role          string `json:"role"`
}

func userJSON(u model.User) UserPayload {
    return UserPayload{
        ID:            u.ID,
        Name:          u.Name,
        Lastname:      u.Lastname,
        Phone:         u.Phone,
        Email:         u.Email,
        AccountActive: u.AccountActive,
        Role:          u.Role,
    }
}
