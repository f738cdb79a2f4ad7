package identity

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ledgerline/backend/internal/domain/identity"
)

func normalizeEmail(email string) string {
	return strings.TrimSpace(strings.ToLower(email))
}

// UserService implements the superuser-only user administration operations.
type UserService struct {
	userRepo identity.UserRepository
	logger   *zap.Logger
}

func NewUserService(userRepo identity.UserRepository, logger *zap.Logger) *UserService {
	return &UserService{userRepo: userRepo, logger: logger}
}

func (s *UserService) List(ctx context.Context) ([]UserInfo, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	infos := make([]UserInfo, len(users))
	for i, u := range users {
		infos[i] = userToInfo(u)
	}
	return infos, nil
}

func (s *UserService) Create(ctx context.Context, input CreateUserInput) (*UserInfo, error) {
	if exists, err := s.userRepo.ExistsByUsername(ctx, input.Username); err != nil {
		return nil, err
	} else if exists {
		return nil, identity.ErrUsernameExists
	}
	// Email is optional; uniqueness only applies to set addresses.
	if email := normalizeEmail(input.Email); email != "" {
		if exists, err := s.userRepo.ExistsByEmail(ctx, email); err != nil {
			return nil, err
		} else if exists {
			return nil, identity.ErrEmailExists
		}
	}

	user, err := identity.NewUser(input.Username, input.DisplayName, input.Email, input.Password)
	if err != nil {
		return nil, err
	}
	if input.Superuser {
		user.SetSuperuser(true)
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user created",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username),
		zap.Bool("superuser", user.Superuser),
	)
	info := userToInfo(user)
	return &info, nil
}

func (s *UserService) Get(ctx context.Context, id uuid.UUID) (*UserInfo, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	info := userToInfo(user)
	return &info, nil
}

func (s *UserService) Update(ctx context.Context, id uuid.UUID, input UpdateUserInput) (*UserInfo, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Email != nil {
		if email := normalizeEmail(*input.Email); email != user.Email {
			if email != "" {
				exists, err := s.userRepo.ExistsByEmail(ctx, email)
				if err != nil {
					return nil, err
				}
				if exists {
					return nil, identity.ErrEmailExists
				}
			}
			if err := user.SetEmail(email); err != nil {
				return nil, err
			}
		}
	}
	if input.DisplayName != nil {
		user.SetDisplayName(*input.DisplayName)
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	info := userToInfo(user)
	return &info, nil
}

func (s *UserService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.userRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("user deleted", zap.String("user_id", id.String()))
	return nil
}

func (s *UserService) SetPassword(ctx context.Context, id uuid.UUID, password string) error {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := user.ChangePassword(password); err != nil {
		return err
	}
	if err := s.userRepo.Update(ctx, user); err != nil {
		return err
	}
	s.logger.Info("password reset by admin", zap.String("user_id", id.String()))
	return nil
}

func (s *UserService) SetActive(ctx context.Context, id uuid.UUID, active bool) (*UserInfo, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	user.SetActive(active)
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	s.logger.Info("user activation changed",
		zap.String("user_id", id.String()), zap.Bool("active", active))
	info := userToInfo(user)
	return &info, nil
}

func (s *UserService) SetSuperuser(ctx context.Context, id uuid.UUID, superuser bool) (*UserInfo, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	user.SetSuperuser(superuser)
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	s.logger.Info("user role changed",
		zap.String("user_id", id.String()), zap.Bool("superuser", superuser))
	info := userToInfo(user)
	return &info, nil
}
