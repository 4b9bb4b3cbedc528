package usecase

import (
    "context"
    "database/sql"
    "strings"
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
    "golang.org/x/crypto/bcrypt"

    "github.com/mvalenciah/sport-venue-reservation/internal/apperr"
    "github.com/mvalenciah/sport-venue-reservation/internal/model"
    "github.com/mvalenciah/sport-venue-reservation/internal/queue"
    "github.com/mvalenciah/sport-venue-reservation/internal/repository"
    "github.com/mvalenciah/sport-venue-reservation/internal/utils"
)

// fakeAccountStore keeps users in memory keyed by id and email.
type fakeAccountStore struct {
    nextID uint64
    byID   map[uint64]model.User
}

func newFakeAccountStore() *fakeAccountStore {
    return &fakeAccountStore{byID: map[uint64]model.User{}}
}

func (s *fakeAccountStore) Create(_ context.Context, u model.User) (uint64, error) {
    email := strings.ToLower(u.Email)
    for _, existing := range s.byID {
        if strings.ToLower(existing.Email) == email {
            return 0, repository.ErrEmailExists
        }
    }
    s.nextID++
    u.ID = s.nextID
    s.byID[u.ID] = u
    return u.ID, nil
}

func (s *fakeAccountStore) GetByID(_ context.Context, id uint64) (model.User, error) {
    u, ok := s.byID[id]
    if !ok {
        return model.User{}, sql.ErrNoRows
    }
    return u, nil
}

func (s *fakeAccountStore) GetByEmail(_ context.Context, email string) (model.User, error) {
    email = strings.ToLower(strings.TrimSpace(email))
    for _, u := range s.byID {
        if strings.ToLower(u.Email) == email {
            return u, nil
        }
    }
    return model.User{}, sql.ErrNoRows
}

func (s *fakeAccountStore) Activate(_ context.Context, id uint64) error {
    u, ok := s.byID[id]
    if !ok {
        return sql.ErrNoRows
    }
    u.AccountActive = true
    s.byID[id] = u
    return nil
}

func (s *fakeAccountStore) Update(_ context.Context, u model.User) error {
    if _, ok := s.byID[u.ID]; !ok {
        return sql.ErrNoRows
    }
    s.byID[u.ID] = u
    return nil
}

func (s *fakeAccountStore) Delete(_ context.Context, id uint64) error {
    delete(s.byID, id)
    return nil
}

// fakeTokenStore keeps hashed tokens with single-use semantics.
type fakeTokenStore struct {
    tokens map[string]fakeToken
}

type fakeToken struct {
    userID    uint64
    expiresAt time.Time
    used      bool
}

func newFakeTokenStore() *fakeTokenStore {
    return &fakeTokenStore{tokens: map[string]fakeToken{}}
}

func (s *fakeTokenStore) Store(_ context.Context, userID uint64, tokenHash string, expiresAt time.Time) error {
    s.tokens[tokenHash] = fakeToken{userID: userID, expiresAt: expiresAt}
    return nil
}

func (s *fakeTokenStore) Consume(_ context.Context, tokenHash string) (uint64, error) {
    tk, ok := s.tokens[tokenHash]
    if !ok || tk.used || time.Now().After(tk.expiresAt) {
        return 0, sql.ErrNoRows
    }
    tk.used = true
    s.tokens[tokenHash] = tk
    return tk.userID, nil
}

// fakeAccountEvents records account.created publications.
type fakeAccountEvents struct {
    created []queue.AccountCreatedEvent
}

func (f *fakeAccountEvents) PublishAccountCreated(_ context.Context, ev queue.AccountCreatedEvent) error {
    f.created = append(f.created, ev)
    return nil
}

func newAuthFixture() (*AuthUseCases, *fakeAccountStore, *fakeTokenStore, *fakeAccountEvents) {
    users := newFakeAccountStore()
    tokens := newFakeTokenStore()
    events := &fakeAccountEvents{}
    cfg := AuthConfig{
        JWTSecret:          "test-secret",
        AccessTokenTTLMin:  15,
        BcryptCost:         bcrypt.MinCost,
        ActivationTTLHours: 24,
        ActivationBaseURL:  "http://localhost:8080/api/v1/auth/activate",
    }
    return NewAuthUseCases(users, tokens, events, cfg), users, tokens, events
}

func validSignUp() SignUpInput {
    return SignUpInput{
        Name:     "Alice",
        Lastname: "Mora",
        Phone:    "3001234567",
        Email:    "alice@example.com",
        Password: "Str0ng#Pass",
    }
}

func TestSignUpCreatesInactiveAccountAndToken(t *testing.T) {
    uc, users, tokens, events := newAuthFixture()

    resp, err := uc.SignUp(context.Background(), validSignUp())
    require.NoError(t, err)
    assert.Equal(t, 201, resp.Code)

    payload := resp.Data.(UserPayload)
    assert.False(t, payload.AccountActive)
    assert.Equal(t, model.UserRole, payload.Role)

    stored := users.byID[payload.ID]
    assert.NotEqual(t, "Str0ng#Pass", stored.PasswordHash)
    assert.True(t, utils.VerifyPassword(stored.PasswordHash, "Str0ng#Pass"))

    require.Len(t, events.created, 1)
    link := events.created[0].ActivationLink
    require.Contains(t, link, "?token=")
    raw := link[strings.Index(link, "?token=")+len("?token="):]

    // the store holds only the hash of the raw token in the link
    _, ok := tokens.tokens[raw]
    assert.False(t, ok)
    _, ok = tokens.tokens[utils.HashTokenRaw(raw)]
    assert.True(t, ok)
}

func TestSignUpDuplicateEmail(t *testing.T) {
    uc, _, _, _ := newAuthFixture()
    ctx := context.Background()

    _, err := uc.SignUp(ctx, validSignUp())
    require.NoError(t, err)

    _, err = uc.SignUp(ctx, validSignUp())
    require.Error(t, err)
    app := apperr.From(err)
    require.NotNil(t, app)
    assert.Equal(t, 409, app.Code)
}

func TestActivateAccountIsSingleUse(t *testing.T) {
    uc, users, _, events := newAuthFixture()
    ctx := context.Background()

    resp, err := uc.SignUp(ctx, validSignUp())
    require.NoError(t, err)
    id := resp.Data.(UserPayload).ID

    link := events.created[0].ActivationLink
    raw := link[strings.Index(link, "?token=")+len("?token="):]

    resp, err = uc.ActivateAccount(ctx, raw)
    require.NoError(t, err)
    assert.Equal(t, 200, resp.Code)
    assert.True(t, users.byID[id].AccountActive)

    // replaying the same token fails like an unknown one
    _, err = uc.ActivateAccount(ctx, raw)
    require.Error(t, err)
    assert.Equal(t, 401, apperr.From(err).Code)

    _, err = uc.ActivateAccount(ctx, "deadbeef")
    require.Error(t, err)
    assert.Equal(t, 401, apperr.From(err).Code)
}

func TestSignInFlow(t *testing.T) {
    uc, _, _, events := newAuthFixture()
    ctx := context.Background()

    _, err := uc.SignUp(ctx, validSignUp())
    require.NoError(t, err)

    // inactive accounts cannot sign in yet
    _, err = uc.SignIn(ctx, "alice@example.com", "Str0ng#Pass")
    require.Error(t, err)
    assert.Equal(t, 409, apperr.From(err).Code)

    link := events.created[0].ActivationLink
    raw := link[strings.Index(link, "?token=")+len("?token="):]
    _, err = uc.ActivateAccount(ctx, raw)
    require.NoError(t, err)

    resp, err := uc.SignIn(ctx, "alice@example.com", "Str0ng#Pass")
    require.NoError(t, err)
    payload := resp.Data.(TokenPayload)
    assert.NotEmpty(t, payload.AccessToken)
    assert.Equal(t, "Bearer", payload.TokenType)
    assert.Equal(t, "alice@example.com", payload.User.Email)
}

func TestSignInBadCredentialsDoNotLeakAccounts(t *testing.T) {
    uc, _, _, _ := newAuthFixture()
    ctx := context.Background()

    _, err := uc.SignUp(ctx, validSignUp())
    require.NoError(t, err)

    _, err = uc.SignIn(ctx, "alice@example.com", "nope")
    require.Error(t, err)
    wrong := apperr.From(err)

    _, err = uc.SignIn(ctx, "nobody@example.com", "nope")
    require.Error(t, err)
    unknown := apperr.From(err)

    assert.Equal(t, wrong.Code, unknown.Code)
    assert.Equal(t, wrong.Message, unknown.Message)
}

func TestUserFindByIDScoping(t *testing.T) {
    uc, users, _, _ := newAuthFixture()
    ctx := context.Background()

    resp, err := uc.SignUp(ctx, validSignUp())
    require.NoError(t, err)
    id := resp.Data.(UserPayload).ID
    users.byID[99] = model.User{ID: 99, Email: "other@example.com", Role: model.UserRole}

    _, err = uc.FindByID(ctx, Principal{ID: id, Role: model.UserRole}, id)
    require.NoError(t, err)

    _, err = uc.FindByID(ctx, Principal{ID: id, Role: model.UserRole}, 99)
    require.Error(t, err)
    assert.Equal(t, 403, apperr.From(err).Code)

    _, err = uc.FindByID(ctx, Principal{ID: 1000, Role: model.AdminRole}, id)
    require.NoError(t, err)
}

func TestUserDeleteIsAdminOnly(t *testing.T) {
    uc, users, _, _ := newAuthFixture()
    ctx := context.Background()

    resp, err := uc.SignUp(ctx, validSignUp())
    require.NoError(t, err)
    id := resp.Data.(UserPayload).ID

    _, err = uc.Delete(ctx, Principal{ID: id, Role: model.UserRole}, id)
    require.Error(t, err)
    assert.Equal(t, 403, apperr.From(err).Code)

    _, err = uc.Delete(ctx, Principal{ID: 1000, Role: model.AdminRole}, id)
    require.NoError(t, err)
    assert.NotContains(t, users.byID, id)
}
