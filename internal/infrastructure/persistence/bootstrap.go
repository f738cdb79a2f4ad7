package persistence

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/ledgerline/backend/internal/domain/identity"
)

// EnsureSuperuser creates the bootstrap superuser when the user table holds
// no superuser yet. A missing password means bootstrap is disabled.
func EnsureSuperuser(ctx context.Context, repo identity.UserRepository, username, email, password string, logger *zap.Logger) error {
	if password == "" {
		logger.Debug("superuser bootstrap disabled, no password configured")
		return nil
	}

	count, err := repo.CountSuperusers(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	exists, err := repo.ExistsByUsername(ctx, username)
	if err != nil {
		return err
	}
	if exists {
		return errors.New("bootstrap username taken by a non-superuser account")
	}

	superuser, err := identity.NewSuperuser(username, username, email, password)
	if err != nil {
		return err
	}
	if err := repo.Create(ctx, superuser); err != nil {
		return err
	}

	logger.Info("bootstrap superuser created",
		zap.String("username", username),
		zap.String("user_id", superuser.ID.String()),
	)
	return nil
}
