package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"shopcore/internal/model"
	"shopcore/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// minPasswordLength is the minimum accepted password length at registration.
const minPasswordLength = 6

// authService implements AuthService.
type authService struct {
	userRepo repository.UserRepository
	secret   string
	tokenTTL time.Duration
	logger   zerolog.Logger
}

// NewAuthService creates a new auth service.
func NewAuthService(userRepo repository.UserRepository, secret string, tokenTTL time.Duration, logger zerolog.Logger) AuthService {
	return &authService{
		userRepo: userRepo,
		secret:   secret,
		tokenTTL: tokenTTL,
		logger:   logger.With().Str("service", "auth").Logger(),
	}
}

// Register creates a new user with a hashed password.
func (s *authService) Register(ctx context.Context, req model.RegisterRequest) (*model.User, error) {
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return nil, model.ErrRegistrationFields
	}

	if len(req.Password) < minPasswordLength {
		return nil, model.ErrPasswordTooShort
	}

	// Hash password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.userRepo.Create(ctx, req.Name, req.Email, string(hashedPassword))
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("user_id", user.ID).Msg("user registered")

	return user, nil
}

// Login verifies credentials and issues a signed token. Unknown emails and
// wrong passwords are indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, req model.LoginRequest) (string, *model.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to look up user for login")
		return "", nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if user == nil {
		s.logger.Debug().Str("email", req.Email).Msg("login with unknown email")
		return "", nil, model.ErrInvalidCredentials
	}

	// Check password
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Debug().Int64("user_id", user.ID).Msg("login with wrong password")
		return "", nil, model.ErrInvalidCredentials
	}

	token, err := s.generateToken(user.ID)
	if err != nil {
		s.logger.Error().Err(err).Int64("user_id", user.ID).Msg("failed to generate token")
		return "", nil, fmt.Errorf("failed to generate token: %w", err)
	}

	s.logger.Info().Int64("user_id", user.ID).Msg("user logged in")

	return token, user, nil
}

// generateToken signs an HS256 JWT for the user.
func (s *authService) generateToken(userID int64) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": strconv.FormatInt(userID, 10),
		"exp": time.Now().Add(s.tokenTTL).Unix(),
	})

	tokenString, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}
