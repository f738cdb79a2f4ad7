package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ledgerline/backend/internal/domain/ledger"
	"github.com/ledgerline/backend/internal/domain/shared"
	"github.com/ledgerline/backend/internal/infrastructure/persistence/models"
)

type GormAccountRepository struct {
	db *gorm.DB
}

func NewGormAccountRepository(db *gorm.DB) *GormAccountRepository {
	return &GormAccountRepository{db: db}
}

func (r *GormAccountRepository) Create(ctx context.Context, account *ledger.Account) error {
	model := models.AccountModelFromDomain(account)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return mapGormError(err)
	}
	return nil
}

func (r *GormAccountRepository) Update(ctx context.Context, account *ledger.Account) error {
	model := models.AccountModelFromDomain(account)
	result := r.db.WithContext(ctx).Model(&models.AccountModel{}).
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

func (r *GormAccountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.AccountModel{}, "id = ?", id)
	if result.Error != nil {
		return mapGormError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *GormAccountRepository) FindByID(ctx context.Context, id uuid.UUID) (*ledger.Account, error) {
	var model models.AccountModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, mapGormError(err)
	}
	return model.ToDomain(), nil
}

func (r *GormAccountRepository) FindAllByProject(ctx context.Context, projectID uuid.UUID) ([]*ledger.Account, error) {
	var accountModels []models.AccountModel
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("name").
		Find(&accountModels).Error
	if err != nil {
		return nil, mapGormError(err)
	}
	accounts := make([]*ledger.Account, len(accountModels))
	for i := range accountModels {
		accounts[i] = accountModels[i].ToDomain()
	}
	return accounts, nil
}

func (r *GormAccountRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.AccountModel{}).
		Where("name = ?", name).Count(&count).Error
	if err != nil {
		return false, mapGormError(err)
	}
	return count > 0, nil
}

func (r *GormAccountRepository) ExistsByNumber(ctx context.Context, accountNumber string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.AccountModel{}).
		Where("account_number = ?", accountNumber).Count(&count).Error
	if err != nil {
		return false, mapGormError(err)
	}
	return count > 0, nil
}
