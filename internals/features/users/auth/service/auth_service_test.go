package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"mosque_backend/internals/configs"
	userModel "mosque_backend/internals/features/users/user/model"
)

func init() {
	configs.JWTSecret = "test-secret"
}

/* ==========================
   In-memory fakes
========================== */

type memUserRepo struct {
	users map[uuid.UUID]userModel.UserModel
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[uuid.UUID]userModel.UserModel{}}
}

func (r *memUserRepo) Create(_ context.Context, user *userModel.UserModel) error {
	// mirror the column defaults the database would apply
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.IsActive = true
	r.users[user.ID] = *user
	return nil
}

func (r *memUserRepo) FindByID(_ context.Context, id uuid.UUID) (*userModel.UserModel, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	found := u
	return &found, nil
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*userModel.UserModel, error) {
	for _, u := range r.users {
		if u.Email == email {
			found := u
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memUserRepo) FindByGoogleID(_ context.Context, googleID string) (*userModel.UserModel, error) {
	for _, u := range r.users {
		if u.GoogleID != nil && *u.GoogleID == googleID {
			found := u
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memUserRepo) Update(_ context.Context, user *userModel.UserModel) error {
	if _, ok := r.users[user.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.users[user.ID] = *user
	return nil
}

type memTokenRepo struct {
	revoked map[string]time.Time
}

func newMemTokenRepo() *memTokenRepo {
	return &memTokenRepo{revoked: map[string]time.Time{}}
}

func (r *memTokenRepo) Blacklist(_ context.Context, token string, expiredAt time.Time) error {
	r.revoked[token] = expiredAt
	return nil
}

func newTestAuthService() (*AuthService, *memUserRepo, *memTokenRepo) {
	users := newMemUserRepo()
	tokens := newMemTokenRepo()
	svc := &AuthService{
		Users:  users,
		Tokens: tokens,
		Now:    func() time.Time { return time.Date(2026, time.March, 15, 10, 0, 0, 0, time.UTC) },
	}
	return svc, users, tokens
}

var validInput = RegisterInput{
	Name:     "Karim Ahmed",
	Email:    "karim@example.com",
	Phone:    "+8801711000000",
	Password: "correct-horse",
}

/* ==========================
   Tests
========================== */

func TestRegister(t *testing.T) {
	svc, _, _ := newTestAuthService()
	ctx := context.Background()

	user, token, err := svc.Register(ctx, validInput)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.NotEmpty(t, token)
	assert.Equal(t, "Karim Ahmed", user.UserName)
	assert.Equal(t, "karim@example.com", user.Email)
	assert.NotEqual(t, "correct-horse", user.Password, "passwords are stored hashed")
	assert.Equal(t, "user", user.Role)
	assert.NotNil(t, user.Preferences)

	// the token carries the identity claims
	claims := jwt.MapClaims{}
	_, _, err = (&jwt.Parser{SkipClaimsValidation: true}).ParseUnverified(token, claims)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims["sub"])
	assert.Equal(t, "Karim Ahmed", claims["name"])
}

func TestRegister_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RegisterInput)
	}{
		{"missing name", func(i *RegisterInput) { i.Name = "" }},
		{"missing email", func(i *RegisterInput) { i.Email = "" }},
		{"bad email", func(i *RegisterInput) { i.Email = "not-an-email" }},
		{"missing phone", func(i *RegisterInput) { i.Phone = "" }},
		{"short password", func(i *RegisterInput) { i.Password = "short" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _ := newTestAuthService()
			input := validInput
			tt.mutate(&input)
			_, _, err := svc.Register(context.Background(), input)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _, _ := newTestAuthService()
	ctx := context.Background()

	_, _, err := svc.Register(ctx, validInput)
	require.NoError(t, err)

	dup := validInput
	dup.Email = "  KARIM@example.com " // normalized before the lookup
	_, _, err = svc.Register(ctx, dup)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLogin_AfterLogoutProfileSurvives(t *testing.T) {
	svc, _, tokens := newTestAuthService()
	ctx := context.Background()

	registered, token, err := svc.Register(ctx, validInput)
	require.NoError(t, err)

	// logout revokes the token only
	require.NoError(t, svc.Logout(ctx, token))
	assert.Contains(t, tokens.revoked, token)

	// logging back in lands on the same profile
	user, newToken, err := svc.Login(ctx, validInput.Email, validInput.Password)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
	assert.Equal(t, registered.UserName, user.UserName)
	assert.NotEmpty(t, newToken)
}

func TestLogin_Failures(t *testing.T) {
	svc, users, _ := newTestAuthService()
	ctx := context.Background()

	registered, _, err := svc.Register(ctx, validInput)
	require.NoError(t, err)

	t.Run("unknown email", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "nobody@example.com", "whatever1")
		assert.ErrorIs(t, err, ErrNoAccount)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := svc.Login(ctx, validInput.Email, "wrong-password")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("missing fields", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "", "")
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("disabled account", func(t *testing.T) {
		u := users.users[registered.ID]
		u.IsActive = false
		users.users[registered.ID] = u

		_, _, err := svc.Login(ctx, validInput.Email, validInput.Password)
		assert.ErrorIs(t, err, ErrAccountDisabled)
	})
}

func TestLogout_MissingToken(t *testing.T) {
	svc, _, _ := newTestAuthService()
	err := svc.Logout(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateProfile(t *testing.T) {
	svc, _, _ := newTestAuthService()
	ctx := context.Background()

	user, _, err := svc.Register(ctx, validInput)
	require.NoError(t, err)

	name := "Karim A."
	phone := "+8801811000000"
	updated, err := svc.UpdateProfile(ctx, user.ID, UpdateProfileInput{
		Name:        &name,
		Phone:       &phone,
		Preferences: map[string]interface{}{"theme": "dark"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Karim A.", updated.UserName)
	assert.Equal(t, "+8801811000000", updated.Phone)
	assert.Equal(t, "dark", updated.Preferences["theme"])
	// untouched defaults survive the merge
	assert.Equal(t, true, updated.Preferences["notifications"])

	empty := "   "
	_, err = svc.UpdateProfile(ctx, user.ID, UpdateProfileInput{Name: &empty})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestChangePassword(t *testing.T) {
	svc, _, _ := newTestAuthService()
	ctx := context.Background()

	user, _, err := svc.Register(ctx, validInput)
	require.NoError(t, err)

	t.Run("wrong current password", func(t *testing.T) {
		err := svc.ChangePassword(ctx, user.ID, "wrong", "new-password-1")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("new password too short", func(t *testing.T) {
		err := svc.ChangePassword(ctx, user.ID, validInput.Password, "short")
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("success rotates the hash", func(t *testing.T) {
		require.NoError(t, svc.ChangePassword(ctx, user.ID, validInput.Password, "new-password-1"))

		_, _, err := svc.Login(ctx, validInput.Email, validInput.Password)
		assert.ErrorIs(t, err, ErrInvalidCredentials)

		_, _, err = svc.Login(ctx, validInput.Email, "new-password-1")
		assert.NoError(t, err)
	})
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "a@b.com", normalizeEmail("  A@B.Com "))
	assert.Equal(t, "", normalizeEmail(strings.Repeat(" ", 3)))
}
