package ledger

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ledgerline/backend/internal/domain/ledger"
)

type ProjectService struct {
	projectRepo ledger.ProjectRepository
	ownership   *OwnershipService
	logger      *zap.Logger
}

func NewProjectService(projectRepo ledger.ProjectRepository, ownership *OwnershipService, logger *zap.Logger) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
		ownership:   ownership,
		logger:      logger,
	}
}

// List returns all projects for superusers, owned projects otherwise.
func (s *ProjectService) List(ctx context.Context, principal Principal) ([]ProjectDTO, error) {
	var (
		projects []*ledger.Project
		err      error
	)
	if principal.Superuser {
		projects, err = s.projectRepo.FindAll(ctx)
	} else {
		projects, err = s.projectRepo.FindAllByOwner(ctx, principal.UserID)
	}
	if err != nil {
		return nil, err
	}
	return projectsToDTO(projects), nil
}

func (s *ProjectService) Create(ctx context.Context, principal Principal, input CreateProjectInput) (*ProjectDTO, error) {
	exists, err := s.projectRepo.ExistsByName(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ledger.ErrProjectNameExists
	}

	project, err := ledger.NewProject(principal.UserID, input.Name, input.Description, input.Tree)
	if err != nil {
		return nil, err
	}
	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, err
	}

	s.logger.Info("project created",
		zap.String("project_id", project.ID.String()),
		zap.String("owner_id", project.OwnerID.String()),
	)
	dto := projectToDTO(project)
	return &dto, nil
}

func (s *ProjectService) Get(ctx context.Context, principal Principal, projectID uuid.UUID) (*ProjectDTO, error) {
	project, err := s.ownership.AuthorizeProject(ctx, projectID, principal)
	if err != nil {
		return nil, maskOwnership(err)
	}
	dto := projectToDTO(project)
	return &dto, nil
}

func (s *ProjectService) Update(ctx context.Context, principal Principal, projectID uuid.UUID, input UpdateProjectInput) (*ProjectDTO, error) {
	project, err := s.ownership.AuthorizeProject(ctx, projectID, principal)
	if err != nil {
		return nil, maskOwnership(err)
	}

	if input.Name != nil && *input.Name != project.Name {
		exists, err := s.projectRepo.ExistsByName(ctx, *input.Name)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ledger.ErrProjectNameExists
		}
		if err := project.Rename(*input.Name); err != nil {
			return nil, err
		}
	}
	if input.Description != nil {
		project.SetDescription(*input.Description)
	}
	if input.Tree != nil {
		project.SetTree(*input.Tree)
	}

	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, err
	}
	dto := projectToDTO(project)
	return &dto, nil
}

func (s *ProjectService) Delete(ctx context.Context, principal Principal, projectID uuid.UUID) error {
	if _, err := s.ownership.AuthorizeProject(ctx, projectID, principal); err != nil {
		return maskOwnership(err)
	}
	if err := s.projectRepo.Delete(ctx, projectID); err != nil {
		return err
	}
	s.logger.Info("project deleted", zap.String("project_id", projectID.String()))
	return nil
}
