package ledger

import (
	"strings"

	"github.com/google/uuid"

	"github.com/ledgerline/backend/internal/domain/shared"
)

var (
	ErrEmptyName         = shared.NewDomainError("EMPTY_NAME", "name cannot be empty")
	ErrProjectNameExists = shared.NewDomainError("PROJECT_NAME_EXISTS", "a project with this name already exists")
)

// Project is the root of the ownership hierarchy: every account and partner
// reachable from a project belongs to the project's owner.
type Project struct {
	shared.BaseAggregateRoot
	Name        string
	Description string
	Tree        string
	OwnerID     uuid.UUID
}

func NewProject(ownerID uuid.UUID, name, description, tree string) (*Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if ownerID == uuid.Nil {
		return nil, shared.NewDomainError("MISSING_OWNER", "project requires an owner")
	}
	return &Project{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Description:       strings.TrimSpace(description),
		Tree:              tree,
		OwnerID:           ownerID,
	}, nil
}

func (p *Project) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	p.Name = name
	p.IncrementVersion()
	return nil
}

func (p *Project) SetDescription(description string) {
	p.Description = strings.TrimSpace(description)
	p.IncrementVersion()
}

func (p *Project) SetTree(tree string) {
	p.Tree = tree
	p.IncrementVersion()
}

// IsOwnedBy reports whether the given user owns this project.
func (p *Project) IsOwnedBy(userID uuid.UUID) bool {
	return p.OwnerID == userID
}
