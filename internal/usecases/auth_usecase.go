package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"pawmart.backend/internal/domain/entities"
	domainerrors "pawmart.backend/internal/domain/errors"
	"pawmart.backend/internal/domain/repositories"
	"pawmart.backend/pkg/crypto"
	"pawmart.backend/pkg/jwt"
)

// TokenDenylist tracks revoked refresh tokens
type TokenDenylist interface {
	Revoke(ctx context.Context, token string, ttl time.Duration) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}

// AuthUsecase handles authentication business logic
type AuthUsecase struct {
	userRepo   repositories.UserRepository
	jwtService *jwt.JWTService
	denylist   TokenDenylist
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(userRepo repositories.UserRepository, jwtService *jwt.JWTService, denylist TokenDenylist) *AuthUsecase {
	return &AuthUsecase{
		userRepo:   userRepo,
		jwtService: jwtService,
		denylist:   denylist,
	}
}

// Register creates a new account and logs it in
func (u *AuthUsecase) Register(ctx context.Context, input *entities.RegisterInput) (*entities.AuthResponse, error) {
	_, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err == nil {
		return nil, domainerrors.AlreadyExists("email is already registered")
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	passwordHash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &entities.User{
		ID:           uuid.New(),
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: passwordHash,
		Status:       entities.UserStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if input.Phone != "" {
		user.Phone.SetValid(input.Phone)
	}
	if input.Address != "" {
		user.Address.SetValid(input.Address)
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	tokenPair, err := u.jwtService.GenerateTokenPair(user.ID, user.Email, user.IsBreeder, user.IsAdmin)
	if err != nil {
		return nil, err
	}

	return &entities.AuthResponse{
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		User:         user,
	}, nil
}

// Login authenticates a user and returns tokens. Suspended accounts may still
// log in; the account status gate limits what they can reach afterwards.
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error) {
	user, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.Unauthorized("invalid email or password")
		}
		return nil, err
	}

	if !crypto.CheckPassword(input.Password, user.PasswordHash) {
		return nil, domainerrors.Unauthorized("invalid email or password")
	}

	if err := u.userRepo.RecordLogin(ctx, user.ID); err != nil {
		return nil, err
	}

	tokenPair, err := u.jwtService.GenerateTokenPair(user.ID, user.Email, user.IsBreeder, user.IsAdmin)
	if err != nil {
		return nil, err
	}

	return &entities.AuthResponse{
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		User:         user,
	}, nil
}

// MockLogin signs in as the given email without a password, creating the
// account if needed. Only routed in the development environment.
func (u *AuthUsecase) MockLogin(ctx context.Context, email string) (*entities.AuthResponse, error) {
	user, err := u.userRepo.GetByEmail(ctx, email)
	if errors.Is(err, domainerrors.ErrNotFound) {
		password, err := crypto.GenerateRandomToken(16)
		if err != nil {
			return nil, err
		}
		passwordHash, err := crypto.HashPassword(password)
		if err != nil {
			return nil, err
		}

		now := time.Now()
		user = &entities.User{
			ID:           uuid.New(),
			Email:        email,
			Name:         "Dev User",
			PasswordHash: passwordHash,
			Status:       entities.UserStatusActive,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := u.userRepo.Create(ctx, user); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	if err := u.userRepo.RecordLogin(ctx, user.ID); err != nil {
		return nil, err
	}

	tokenPair, err := u.jwtService.GenerateTokenPair(user.ID, user.Email, user.IsBreeder, user.IsAdmin)
	if err != nil {
		return nil, err
	}

	return &entities.AuthResponse{
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		User:         user,
	}, nil
}

// RefreshToken rotates a refresh token into a new token pair. The old token
// is revoked so it cannot be replayed.
func (u *AuthUsecase) RefreshToken(ctx context.Context, refreshToken string) (*jwt.TokenPair, error) {
	revoked, err := u.denylist.IsRevoked(ctx, refreshToken)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, domainerrors.Unauthorized("refresh token has been revoked")
	}

	claims, err := u.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, domainerrors.Unauthorized("invalid refresh token")
	}
	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, domainerrors.Unauthorized("invalid refresh token")
	}

	user, err := u.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}

	if err := u.denylist.Revoke(ctx, refreshToken, time.Until(claims.ExpiresAt.Time)); err != nil {
		return nil, err
	}

	return u.jwtService.GenerateTokenPair(user.ID, user.Email, user.IsBreeder, user.IsAdmin)
}

// Logout revokes the refresh token. Unknown or expired tokens are a no-op so
// logout never fails for the client.
func (u *AuthUsecase) Logout(ctx context.Context, refreshToken string) error {
	claims, err := u.jwtService.ValidateToken(refreshToken)
	if err != nil || claims.TokenType != jwt.TokenTypeRefresh {
		return nil
	}
	return u.denylist.Revoke(ctx, refreshToken, time.Until(claims.ExpiresAt.Time))
}

// GetUserByID gets a user by ID
func (u *AuthUsecase) GetUserByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	return u.userRepo.GetByID(ctx, id)
}

// UpdateProfile applies profile edits and returns the fresh record
func (u *AuthUsecase) UpdateProfile(ctx context.Context, userID uuid.UUID, input *entities.UpdateProfileInput) (*entities.User, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		user.Name = input.Name
	}
	if input.Phone != "" {
		user.Phone = null.StringFrom(input.Phone)
	}
	if input.Address != "" {
		user.Address = null.StringFrom(input.Address)
	}

	if err := u.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return u.userRepo.GetByID(ctx, userID)
}
