package ledger

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ledgerline/backend/internal/domain/ledger"
	"github.com/ledgerline/backend/internal/domain/shared"
)

// OwnershipService resolves whether a principal may act on a project or an
// account by walking up to the owning project. It distinguishes missing
// resources (ErrNotFound) from ownership mismatches (ErrForbidden); callers
// that must not leak existence mask the latter with maskOwnership.
type OwnershipService struct {
	projectRepo ledger.ProjectRepository
	accountRepo ledger.AccountRepository
	logger      *zap.Logger
}

func NewOwnershipService(projectRepo ledger.ProjectRepository, accountRepo ledger.AccountRepository, logger *zap.Logger) *OwnershipService {
	return &OwnershipService{
		projectRepo: projectRepo,
		accountRepo: accountRepo,
		logger:      logger,
	}
}

// AuthorizeProject loads the project and checks the principal against its
// owner. Superusers are always allowed.
func (s *OwnershipService) AuthorizeProject(ctx context.Context, projectID uuid.UUID, principal Principal) (*ledger.Project, error) {
	project, err := s.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if principal.Superuser {
		return project, nil
	}
	if !project.IsOwnedBy(principal.UserID) {
		s.logger.Debug("project ownership check failed",
			zap.String("project_id", projectID.String()),
			zap.String("user_id", principal.UserID.String()),
		)
		return nil, shared.ErrForbidden
	}
	return project, nil
}

// AuthorizeAccount loads the account, verifies it sits under the given
// project, and checks the project's owner against the principal. An account
// reached through the wrong project path reads as missing.
func (s *OwnershipService) AuthorizeAccount(ctx context.Context, accountID, projectID uuid.UUID, principal Principal) (*ledger.Account, error) {
	account, err := s.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account.ProjectID != projectID {
		return nil, shared.ErrNotFound
	}
	if principal.Superuser {
		return account, nil
	}

	project, err := s.projectRepo.FindByID(ctx, account.ProjectID)
	if err != nil {
		return nil, err
	}
	if !project.IsOwnedBy(principal.UserID) {
		s.logger.Debug("account ownership check failed",
			zap.String("account_id", accountID.String()),
			zap.String("user_id", principal.UserID.String()),
		)
		return nil, shared.ErrForbidden
	}
	return account, nil
}

// maskOwnership hides ownership failures as not-found so non-owners cannot
// learn whether a resource exists.
func maskOwnership(err error) error {
	if errors.Is(err, shared.ErrForbidden) {
		return shared.ErrNotFound
	}
	return err
}
