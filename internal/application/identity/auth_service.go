package identity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ledgerline/backend/internal/domain/identity"
	"github.com/ledgerline/backend/internal/domain/shared"
	"github.com/ledgerline/backend/internal/infrastructure/auth"
)

var (
	ErrInvalidRefreshToken = shared.NewDomainError("TOKEN_INVALID", "refresh token is invalid or expired")
	ErrTokenRevoked        = shared.NewDomainError("TOKEN_REVOKED", "token has been revoked")
)

type AuthService struct {
	userRepo  identity.UserRepository
	jwt       *auth.JWTService
	blacklist auth.TokenBlacklist
	logger    *zap.Logger
}

func NewAuthService(userRepo identity.UserRepository, jwt *auth.JWTService, blacklist auth.TokenBlacklist, logger *zap.Logger) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		jwt:       jwt,
		blacklist: blacklist,
		logger:    logger,
	}
}

// Login verifies credentials and issues a token pair. Unknown usernames and
// wrong passwords produce the same error; inactive accounts are rejected
// only after the password checks out.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	user, err := s.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, identity.ErrInvalidCredentials
		}
		return nil, err
	}
	if !user.VerifyPassword(input.Password) {
		s.logger.Warn("login failed", zap.String("username", input.Username))
		return nil, identity.ErrInvalidCredentials
	}
	if !user.Active {
		return nil, identity.ErrUserInactive
	}

	pair, err := s.jwt.GenerateTokenPair(auth.TokenSubject{
		UserID:    user.ID,
		Username:  user.Username,
		Superuser: user.Superuser,
	})
	if err != nil {
		return nil, shared.NewDomainErrorWithCause("TOKEN_GENERATION_FAILED", "failed to issue tokens", err)
	}

	s.logger.Info("user logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username),
	)
	return &LoginResult{
		AccessToken:      pair.AccessToken,
		RefreshToken:     pair.RefreshToken,
		AccessExpiresAt:  pair.AccessExpiresAt,
		RefreshExpiresAt: pair.RefreshExpiresAt,
		User:             userToInfo(user),
	}, nil
}

// Refresh validates a refresh token and issues a fresh pair. The user is
// re-resolved so role or activation changes take effect on rotation.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*LoginResult, error) {
	claims, err := s.jwt.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}

	if revoked, err := s.blacklist.IsRevoked(ctx, claims.ID); err != nil {
		s.logger.Warn("blacklist lookup failed", zap.Error(err))
	} else if revoked {
		return nil, ErrTokenRevoked
	}
	if claims.IssuedAt != nil {
		if invalidated, err := s.blacklist.IsUserTokenInvalidated(ctx, claims.UserID, claims.IssuedAt.Time); err != nil {
			s.logger.Warn("blacklist lookup failed", zap.Error(err))
		} else if invalidated {
			return nil, ErrTokenRevoked
		}
	}

	userID, err := claims.UserUUID()
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, ErrInvalidRefreshToken
		}
		return nil, err
	}
	if !user.Active {
		return nil, identity.ErrUserInactive
	}

	pair, err := s.jwt.GenerateTokenPair(auth.TokenSubject{
		UserID:    user.ID,
		Username:  user.Username,
		Superuser: user.Superuser,
	})
	if err != nil {
		return nil, shared.NewDomainErrorWithCause("TOKEN_GENERATION_FAILED", "failed to issue tokens", err)
	}

	return &LoginResult{
		AccessToken:      pair.AccessToken,
		RefreshToken:     pair.RefreshToken,
		AccessExpiresAt:  pair.AccessExpiresAt,
		RefreshExpiresAt: pair.RefreshExpiresAt,
		User:             userToInfo(user),
	}, nil
}

// Logout revokes the presented token until its natural expiry.
func (s *AuthService) Logout(ctx context.Context, claims *auth.Claims) error {
	ttl := s.jwt.RefreshTTL()
	if claims.ExpiresAt != nil {
		ttl = time.Until(claims.ExpiresAt.Time)
	}
	if err := s.blacklist.Revoke(ctx, claims.ID, ttl); err != nil {
		return shared.NewDomainErrorWithCause("LOGOUT_FAILED", "failed to revoke token", err)
	}
	s.logger.Info("user logged out", zap.String("user_id", claims.UserID))
	return nil
}

func (s *AuthService) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*UserInfo, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	info := userToInfo(user)
	return &info, nil
}

// ChangePassword rotates the caller's password and invalidates every token
// issued before the change.
func (s *AuthService) ChangePassword(ctx context.Context, userID uuid.UUID, currentPassword, newPassword string) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if !user.VerifyPassword(currentPassword) {
		return identity.ErrInvalidCredentials
	}
	if err := user.ChangePassword(newPassword); err != nil {
		return err
	}
	if err := s.userRepo.Update(ctx, user); err != nil {
		return err
	}

	if err := s.blacklist.RevokeAllForUser(ctx, userID.String(), s.jwt.RefreshTTL()); err != nil {
		s.logger.Warn("token invalidation failed after password change",
			zap.String("user_id", userID.String()), zap.Error(err))
	}
	s.logger.Info("password changed", zap.String("user_id", userID.String()))
	return nil
}
