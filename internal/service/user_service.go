package service

import (
	"context"
	"fmt"

	"shopcore/internal/model"
	"shopcore/internal/repository"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// userService implements UserService.
type userService struct {
	userRepo repository.UserRepository
	logger   zerolog.Logger
}

// NewUserService creates a new user service.
func NewUserService(userRepo repository.UserRepository, logger zerolog.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		logger:   logger.With().Str("service", "user").Logger(),
	}
}

// GetAll retrieves all users, newest first.
func (s *userService) GetAll(ctx context.Context) ([]model.User, error) {
	users, err := s.userRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get all users")
		return nil, fmt.Errorf("failed to get users: %w", err)
	}

	return users, nil
}

// GetByID retrieves a single user by ID.
func (s *userService) GetByID(ctx context.Context, id int64) (*model.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("user_id", id).Msg("failed to get user by ID")
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if user == nil {
		s.logger.Debug().Int64("user_id", id).Msg("user not found")
		return nil, model.ErrUserNotFound
	}

	return user, nil
}

// Update applies a partial update. A supplied password is validated for
// length and re-hashed before storage.
func (s *userService) Update(ctx context.Context, id int64, patch model.UserPatch) (*model.User, error) {
	if patch.IsEmpty() {
		s.logger.Warn().Int64("user_id", id).Msg("empty user patch")
		return nil, model.ErrEmptyUpdate
	}

	update := model.UserUpdate{
		Name:  patch.Name,
		Email: patch.Email,
	}

	if patch.Password != nil {
		if len(*patch.Password) < minPasswordLength {
			return nil, model.ErrPasswordTooShort
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*patch.Password), bcrypt.DefaultCost)
		if err != nil {
			s.logger.Error().Err(err).Msg("failed to hash password")
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}

		hash := string(hashedPassword)
		update.PasswordHash = &hash
	}

	user, err := s.userRepo.Update(ctx, id, update)
	if err != nil {
		return nil, err
	}

	if user == nil {
		s.logger.Debug().Int64("user_id", id).Msg("user not found for update")
		return nil, model.ErrUserNotFound
	}

	return user, nil
}

// Delete removes a user.
func (s *userService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.userRepo.Delete(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("user_id", id).Msg("failed to delete user")
		return err
	}

	if !deleted {
		s.logger.Debug().Int64("user_id", id).Msg("user not found for delete")
		return model.ErrUserNotFound
	}

	return nil
}
