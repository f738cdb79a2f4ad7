package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ledgerline/backend/internal/domain/ledger"
	"github.com/ledgerline/backend/internal/domain/shared"
	"github.com/ledgerline/backend/internal/infrastructure/persistence/models"
)

type GormPartnerRepository struct {
	db *gorm.DB
}

func NewGormPartnerRepository(db *gorm.DB) *GormPartnerRepository {
	return &GormPartnerRepository{db: db}
}

func (r *GormPartnerRepository) Create(ctx context.Context, partner *ledger.Partner) error {
	model := models.PartnerModelFromDomain(partner)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return mapGormError(err)
	}
	return nil
}

func (r *GormPartnerRepository) Update(ctx context.Context, partner *ledger.Partner) error {
	model := models.PartnerModelFromDomain(partner)
	result := r.db.WithContext(ctx).Model(&models.PartnerModel{}).
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

func (r *GormPartnerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.PartnerModel{}, "id = ?", id)
	if result.Error != nil {
		return mapGormError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *GormPartnerRepository) FindByID(ctx context.Context, id uuid.UUID) (*ledger.Partner, error) {
	var model models.PartnerModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, mapGormError(err)
	}
	return model.ToDomain(), nil
}

func (r *GormPartnerRepository) FindAllByAccount(ctx context.Context, accountID uuid.UUID) ([]*ledger.Partner, error) {
	var partnerModels []models.PartnerModel
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("name").
		Find(&partnerModels).Error
	if err != nil {
		return nil, mapGormError(err)
	}
	partners := make([]*ledger.Partner, len(partnerModels))
	for i := range partnerModels {
		partners[i] = partnerModels[i].ToDomain()
	}
	return partners, nil
}

func (r *GormPartnerRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.PartnerModel{}).
		Where("name = ?", name).Count(&count).Error
	if err != nil {
		return false, mapGormError(err)
	}
	return count > 0, nil
}
