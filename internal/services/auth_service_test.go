package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"continuity/config"
	"continuity/internal/domain"
	continuity_errors "continuity/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	users  map[int]domain.User
	nextID int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int]domain.User{}, nextID: 1}
}

func (f *fakeUserRepo) Create(_ context.Context, u *domain.User) error {
	u.ID = f.nextID
	f.nextID++
	f.users[u.ID] = *u
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int) (domain.User, error) {
	u, ok := f.users[id]
	if !ok {
		return domain.User{}, continuity_errors.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (domain.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return domain.User{}, continuity_errors.ErrNotFound
}

func (f *fakeUserRepo) Update(_ context.Context, u domain.User) error {
	if _, ok := f.users[u.ID]; !ok {
		return continuity_errors.ErrNotFound
	}
	f.users[u.ID] = u
	return nil
}

func testAuthService() (*AuthService, *fakeUserRepo) {
	repo := newFakeUserRepo()
	cfg := &config.Config{JWTSecret: "test-secret", JWTExpiryMin: 60}
	return NewAuthService(repo, cfg), repo
}

func registerInput() RegisterInput {
	return RegisterInput{
		Email:     "script@continuity.local",
		FirstName: "Sam",
		LastName:  "Supervisor",
		Password:  "hunter2hunter2",
	}
}

func TestRegisterAndLogin(t *testing.T) {
	svc, repo := testAuthService()
	ctx := context.Background()

	res, err := svc.Register(ctx, registerInput())
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, int64(3600), res.ExpiresIn)
	assert.Equal(t, "script@continuity.local", res.User.Email)

	// Password is stored hashed, never verbatim.
	stored := repo.users[res.User.ID]
	assert.NotEqual(t, "hunter2hunter2", stored.PasswordHash)
	assert.True(t, strings.HasPrefix(stored.PasswordHash, "$2"))

	login, err := svc.Login(ctx, LoginInput{Email: "script@continuity.local", Password: "hunter2hunter2"})
	require.NoError(t, err)
	assert.NotEmpty(t, login.Token)
	assert.NotNil(t, repo.users[login.User.ID].LastLoginOn)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := testAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, registerInput())
	require.NoError(t, err)

	_, err = svc.Register(ctx, registerInput())
	require.Error(t, err)
	assert.True(t, errors.Is(err, continuity_errors.ErrInvalidInput))
	assert.Equal(t, "Email is already registered.", err.Error())
}

func TestRegisterValidation(t *testing.T) {
	svc, _ := testAuthService()
	ctx := context.Background()

	in := registerInput()
	in.Email = "not-an-email"
	_, err := svc.Register(ctx, in)
	require.Error(t, err)

	in = registerInput()
	in.Password = "short"
	_, err = svc.Register(ctx, in)
	require.Error(t, err)
	assert.Equal(t, "Password must be at least 8 characters.", err.Error())
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := testAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, registerInput())
	require.NoError(t, err)

	_, err = svc.Login(ctx, LoginInput{Email: "script@continuity.local", Password: "wrong-password"})
	require.Error(t, err)
	assert.Equal(t, "Invalid email or password.", err.Error())

	_, err = svc.Login(ctx, LoginInput{Email: "nobody@continuity.local", Password: "whatever123"})
	require.Error(t, err)
	assert.Equal(t, "Invalid email or password.", err.Error())
}

func TestParseAccessToken(t *testing.T) {
	svc, _ := testAuthService()
	ctx := context.Background()

	res, err := svc.Register(ctx, registerInput())
	require.NoError(t, err)

	claims, err := svc.ParseAccessToken(res.Token)
	require.NoError(t, err)
	assert.Equal(t, "script@continuity.local", claims.Email)
	assert.Equal(t, "1", claims.Subject)

	_, err = svc.ParseAccessToken("")
	assert.True(t, errors.Is(err, continuity_errors.ErrUnauthorized))

	_, err = svc.ParseAccessToken("garbage.token.value")
	assert.True(t, errors.Is(err, continuity_errors.ErrUnauthorized))
}

func TestParseAccessTokenWrongSecret(t *testing.T) {
	svc, _ := testAuthService()
	ctx := context.Background()

	res, err := svc.Register(ctx, registerInput())
	require.NoError(t, err)

	other := NewAuthService(newFakeUserRepo(), &config.Config{JWTSecret: "different", JWTExpiryMin: 60})
	_, err = other.ParseAccessToken(res.Token)
	assert.True(t, errors.Is(err, continuity_errors.ErrUnauthorized))
}

func TestUserContextRoundTrip(t *testing.T) {
	ctx := WithUserContext(context.Background(), 42)
	id, ok := UserIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, 42, id)

	_, ok = UserIDFromContext(context.Background())
	assert.False(t, ok)
}
