package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ledgerline/backend/internal/domain/ledger"
	"github.com/ledgerline/backend/internal/domain/shared"
	"github.com/ledgerline/backend/internal/infrastructure/persistence/models"
)

type GormProjectRepository struct {
	db *gorm.DB
}

func NewGormProjectRepository(db *gorm.DB) *GormProjectRepository {
	return &GormProjectRepository{db: db}
}

func (r *GormProjectRepository) Create(ctx context.Context, project *ledger.Project) error {
	model := models.ProjectModelFromDomain(project)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return mapGormError(err)
	}
	return nil
}

func (r *GormProjectRepository) Update(ctx context.Context, project *ledger.Project) error {
	model := models.ProjectModelFromDomain(project)
	result := r.db.WithContext(ctx).Model(&models.ProjectModel{}).
		Where("id = ?", model.ID).
		Select("*").Omit("id", "created_at").
		Updates(model)
	if result.Error != nil {
		return mapGormError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *GormProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.ProjectModel{}, "id = ?", id)
	if result.Error != nil {
		return mapGormError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *GormProjectRepository) FindByID(ctx context.Context, id uuid.UUID) (*ledger.Project, error) {
	var model models.ProjectModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, mapGormError(err)
	}
	return model.ToDomain(), nil
}

func (r *GormProjectRepository) FindAll(ctx context.Context) ([]*ledger.Project, error) {
	var projectModels []models.ProjectModel
	if err := r.db.WithContext(ctx).Order("name").Find(&projectModels).Error; err != nil {
		return nil, mapGormError(err)
	}
	return projectsToDomain(projectModels), nil
}

func (r *GormProjectRepository) FindAllByOwner(ctx context.Context, ownerID uuid.UUID) ([]*ledger.Project, error) {
	var projectModels []models.ProjectModel
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("name").
		Find(&projectModels).Error
	if err != nil {
		return nil, mapGormError(err)
	}
	return projectsToDomain(projectModels), nil
}

func (r *GormProjectRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.ProjectModel{}).
		Where("name = ?", name).Count(&count).Error
	if err != nil {
		return false, mapGormError(err)
	}
	return count > 0, nil
}

func projectsToDomain(projectModels []models.ProjectModel) []*ledger.Project {
	projects := make([]*ledger.Project, len(projectModels))
	for i := range projectModels {
		projects[i] = projectModels[i].ToDomain()
	}
	return projects
}
