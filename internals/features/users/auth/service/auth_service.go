package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"mosque_backend/internals/configs"
	authHelper "mosque_backend/internals/features/users/auth/helper"
	"mosque_backend/internals/features/users/auth/repository"
	userModel "mosque_backend/internals/features/users/user/model"
)

/* ==========================
   Errors
========================== */

var (
	// ErrValidation wraps form-level failures; surfaced as 422.
	ErrValidation = errors.New("invalid input")

	ErrEmailTaken         = errors.New("an account with this email already exists")
	ErrNoAccount          = errors.New("no account found with this email")
	ErrInvalidCredentials = errors.New("incorrect email or password")
	ErrAccountDisabled    = errors.New("account is disabled")
)

/* ==========================
   Service
========================== */

// AuthService owns the session lifecycle: signup, login (password or
// Google), logout (token blacklist), and profile mutation. Stores are
// injected so the whole surface is testable without a database.
type AuthService struct {
	Users  repository.UserRepository
	Tokens repository.TokenRepository
	Now    func() time.Time
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{
		Users:  repository.NewGormUserRepository(db),
		Tokens: repository.NewGormTokenRepository(db),
		Now:    time.Now,
	}
}

type RegisterInput struct {
	Name     string
	Email    string
	Phone    string
	Password string
}

// Register creates a profile and opens a session. Every field is
// required; the email must not already be registered.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*userModel.UserModel, string, error) {
	if err := authHelper.ValidateRegisterInput(input.Name, input.Email, input.Phone, input.Password); err != nil {
		return nil, "", fmt.Errorf("%w: %s", ErrValidation, err.Error())
	}

	email := normalizeEmail(input.Email)
	if _, err := s.Users.FindByEmail(ctx, email); err == nil {
		return nil, "", ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", err
	}

	hash, err := authHelper.HashPassword(input.Password)
	if err != nil {
		return nil, "", err
	}

	user := &userModel.UserModel{
		UserName: strings.TrimSpace(input.Name),
		Email:    email,
		Phone:    strings.TrimSpace(input.Phone),
		Password: hash,
	}
	user.SetDefaultValues()

	if err := s.Users.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := IssueAccessToken(user, s.Now())
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login verifies the password against the stored bcrypt hash and issues
// a fresh session token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*userModel.UserModel, string, error) {
	if err := authHelper.ValidateLoginInput(email, password); err != nil {
		return nil, "", fmt.Errorf("%w: %s", ErrValidation, err.Error())
	}

	user, err := s.Users.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrNoAccount
		}
		return nil, "", err
	}
	if !user.IsActive {
		return nil, "", ErrAccountDisabled
	}
	if err := authHelper.CheckPasswordHash(user.Password, password); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := IssueAccessToken(user, s.Now())
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// LoginGoogle verifies a Google ID token and finds or creates the
// matching profile.
func (s *AuthService) LoginGoogle(ctx context.Context, idToken string) (*userModel.UserModel, string, error) {
	clientID := strings.TrimSpace(configs.GoogleClientID)
	if clientID == "" {
		return nil, "", errors.New("GOOGLE_CLIENT_ID is not set")
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(idToken, []string{clientID}); err != nil {
		return nil, "", ErrInvalidCredentials
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(idToken)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}

	user, err := s.Users.FindByGoogleID(ctx, claimSet.Sub)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// fall back to email linking, then to a brand new profile
		user, err = s.Users.FindByEmail(ctx, normalizeEmail(claimSet.Email))
		if err == nil {
			user.GoogleID = &claimSet.Sub
			if err := s.Users.Update(ctx, user); err != nil {
				return nil, "", err
			}
		} else if errors.Is(err, gorm.ErrRecordNotFound) {
			// Google accounts get an unusable random password
			hash, herr := authHelper.HashPassword(uuid.NewString())
			if herr != nil {
				return nil, "", herr
			}
			user = &userModel.UserModel{
				UserName: claimSet.Name,
				Email:    normalizeEmail(claimSet.Email),
				Password: hash,
				GoogleID: &claimSet.Sub,
			}
			user.SetDefaultValues()
			if err := s.Users.Create(ctx, user); err != nil {
				return nil, "", err
			}
		} else {
			return nil, "", err
		}
	} else if err != nil {
		return nil, "", err
	}

	if !user.IsActive {
		return nil, "", ErrAccountDisabled
	}
	token, err := IssueAccessToken(user, s.Now())
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Logout revokes only the presented session token; the profile row stays.
func (s *AuthService) Logout(ctx context.Context, rawToken string) error {
	if strings.TrimSpace(rawToken) == "" {
		return fmt.Errorf("%w: missing token", ErrValidation)
	}
	expiredAt := TokenExpiry(rawToken, s.Now().Add(accessTTLDefault))
	return s.Tokens.Blacklist(ctx, rawToken, expiredAt)
}

type UpdateProfileInput struct {
	Name        *string
	Phone       *string
	Preferences map[string]interface{}
}

// UpdateProfile merges the non-nil fields into the persisted profile.
func (s *AuthService) UpdateProfile(ctx context.Context, userID uuid.UUID, input UpdateProfileInput) (*userModel.UserModel, error) {
	user, err := s.Users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if input.Name != nil {
		if strings.TrimSpace(*input.Name) == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", ErrValidation)
		}
		user.UserName = strings.TrimSpace(*input.Name)
	}
	if input.Phone != nil {
		user.Phone = strings.TrimSpace(*input.Phone)
	}
	if len(input.Preferences) > 0 {
		if user.Preferences == nil {
			user.Preferences = userModel.DefaultPreferences()
		}
		for k, v := range input.Preferences {
			user.Preferences[k] = v
		}
	}
	if err := s.Users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ChangePassword verifies the current password before storing a new hash.
func (s *AuthService) ChangePassword(ctx context.Context, userID uuid.UUID, current, newPassword string) error {
	if len(newPassword) < 8 {
		return fmt.Errorf("%w: password must be at least 8 characters", ErrValidation)
	}
	user, err := s.Users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if err := authHelper.CheckPasswordHash(user.Password, current); err != nil {
		return ErrInvalidCredentials
	}
	hash, err := authHelper.HashPassword(newPassword)
	if err != nil {
		return err
	}
	user.Password = hash
	return s.Users.Update(ctx, user)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
