// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	"bulkup/internal/domain/entity"
	domainerrors "bulkup/internal/domain/errors"
	"bulkup/internal/domain/repository"
	"bulkup/internal/domain/service"
	"bulkup/internal/usecase"

	"github.com/pkg/errors"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager repository.TransactionManager
	hasher    service.PasswordHasher
	tokenSvc  service.TokenService
	logger    *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(
	txManager repository.TransactionManager,
	hasher service.PasswordHasher,
	tokenSvc service.TokenService,
	logger *slog.Logger,
) usecase.UserUsecase {
	return &userService{
		txManager: txManager,
		hasher:    hasher,
		tokenSvc:  tokenSvc,
		logger:    logger,
	}
}

// Register creates a new account and returns a fresh token pair.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	srv.logger.Info("Registering user", "email", input.Email)

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password")
	}

	user := &entity.User{
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: hash,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.UserRepo().Create(ctx, user); err != nil {
			return errors.Wrap(err, "failed to create user")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to register user")
	}

	return srv.issueTokens(user)
}

// Login verifies the credentials and returns a fresh token pair.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	srv.logger.Debug("Logging in user", "email", input.Email)

	var user *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		foundUser, err := repoFactory.UserRepo().FindByEmail(ctx, input.Email)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				// Same error as a wrong password so the response does not
				// reveal whether the email is registered.
				return errors.Wrap(domainerrors.ErrInvalidCredentials, "user not found")
			}

			return errors.Wrap(err, "failed to find user")
		}
		user = foundUser

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to log in")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "password mismatch")
	}

	return srv.issueTokens(user)
}

// Refresh exchanges a valid refresh token for a new token pair.
func (srv *userService) Refresh(ctx context.Context, input *usecase.RefreshInput) (*usecase.AuthOutput, error) {
	userID, err := srv.tokenSvc.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token validation failed")
	}

	var user *entity.User

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		foundUser, err := repoFactory.UserRepo().FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "user no longer exists")
			}

			return errors.Wrap(err, "failed to find user")
		}
		user = foundUser

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to refresh session")
	}

	return srv.issueTokens(user)
}

func (srv *userService) issueTokens(user *entity.User) (*usecase.AuthOutput, error) {
	accessToken, refreshToken, err := srv.tokenSvc.GenerateTokens(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	return &usecase.AuthOutput{
		User:         usecase.NewUserOutput(user),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
