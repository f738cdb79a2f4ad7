package ledger

import (
	"context"

	"github.com/google/uuid"
)

// ProjectRepository abstracts persistence for the Project aggregate.
type ProjectRepository interface {
	Create(ctx context.Context, project *Project) error
	Update(ctx context.Context, project *Project) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*Project, error)
	FindAll(ctx context.Context) ([]*Project, error)
	FindAllByOwner(ctx context.Context, ownerID uuid.UUID) ([]*Project, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
}

// AccountRepository abstracts persistence for the Account aggregate.
type AccountRepository interface {
	Create(ctx context.Context, account *Account) error
	Update(ctx context.Context, account *Account) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*Account, error)
	FindAllByProject(ctx context.Context, projectID uuid.UUID) ([]*Account, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	ExistsByNumber(ctx context.Context, accountNumber string) (bool, error)
}

// PartnerRepository abstracts persistence for the Partner aggregate.
type PartnerRepository interface {
	Create(ctx context.Context, partner *Partner) error
	Update(ctx context.Context, partner *Partner) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*Partner, error)
	FindAllByAccount(ctx context.Context, accountID uuid.UUID) ([]*Partner, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
}
