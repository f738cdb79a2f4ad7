package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ledgerline/backend/internal/domain/refdata"
	"github.com/ledgerline/backend/internal/domain/shared"
	"github.com/ledgerline/backend/internal/infrastructure/persistence/models"
)

type GormCountryRepository struct {
	db *gorm.DB
}

func NewGormCountryRepository(db *gorm.DB) *GormCountryRepository {
	return &GormCountryRepository{db: db}
}

func (r *GormCountryRepository) Create(ctx context.Context, country *refdata.Country) error {
	if err := r.db.WithContext(ctx).Create(models.CountryModelFromDomain(country)).Error; err != nil {
		return mapGormError(err)
	}
	return nil
}

func (r *GormCountryRepository) Update(ctx context.Context, country *refdata.Country) error {
	model := models.CountryModelFromDomain(country)
	result := r.db.WithContext(ctx).Model(&models.CountryModel{}).
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

func (r *GormCountryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.CountryModel{}, "id = ?", id)
	if result.Error != nil {
		return mapGormError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *GormCountryRepository) FindByID(ctx context.Context, id uuid.UUID) (*refdata.Country, error) {
	var model models.CountryModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, mapGormError(err)
	}
	return model.ToDomain(), nil
}

func (r *GormCountryRepository) FindAll(ctx context.Context) ([]*refdata.Country, error) {
	var countryModels []models.CountryModel
	if err := r.db.WithContext(ctx).Order("name").Find(&countryModels).Error; err != nil {
		return nil, mapGormError(err)
	}
	countries := make([]*refdata.Country, len(countryModels))
	for i := range countryModels {
		countries[i] = countryModels[i].ToDomain()
	}
	return countries, nil
}

func (r *GormCountryRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.CountryModel{}).
		Where("name = ?", name).Count(&count).Error
	if err != nil {
		return false, mapGormError(err)
	}
	return count > 0, nil
}

func (r *GormCountryRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.CountryModel{}).
		Where("code = ?", code).Count(&count).Error
	if err != nil {
		return false, mapGormError(err)
	}
	return count > 0, nil
}

func (r *GormCountryRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.CountryModel{}).Count(&count).Error; err != nil {
		return 0, mapGormError(err)
	}
	return count, nil
}

type GormCurrencyRepository struct {
	db *gorm.DB
}

func NewGormCurrencyRepository(db *gorm.DB) *GormCurrencyRepository {
	return &GormCurrencyRepository{db: db}
}

func (r *GormCurrencyRepository) Create(ctx context.Context, currency *refdata.Currency) error {
	if err := r.db.WithContext(ctx).Create(models.CurrencyModelFromDomain(currency)).Error; err != nil {
		return mapGormError(err)
	}
	return nil
}

func (r *GormCurrencyRepository) Update(ctx context.Context, currency *refdata.Currency) error {
	model := models.CurrencyModelFromDomain(currency)
	result := r.db.WithContext(ctx).Model(&models.CurrencyModel{}).
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

func (r *GormCurrencyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.CurrencyModel{}, "id = ?", id)
	if result.Error != nil {
		return mapGormError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *GormCurrencyRepository) FindByID(ctx context.Context, id uuid.UUID) (*refdata.Currency, error) {
	var model models.CurrencyModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, mapGormError(err)
	}
	return model.ToDomain(), nil
}

func (r *GormCurrencyRepository) FindAll(ctx context.Context) ([]*refdata.Currency, error) {
	var currencyModels []models.CurrencyModel
	if err := r.db.WithContext(ctx).Order("name").Find(&currencyModels).Error; err != nil {
		return nil, mapGormError(err)
	}
	currencies := make([]*refdata.Currency, len(currencyModels))
	for i := range currencyModels {
		currencies[i] = currencyModels[i].ToDomain()
	}
	return currencies, nil
}

func (r *GormCurrencyRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.CurrencyModel{}).
		Where("name = ?", name).Count(&count).Error
	if err != nil {
		return false, mapGormError(err)
	}
	return count > 0, nil
}

func (r *GormCurrencyRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.CurrencyModel{}).
		Where("code = ?", code).Count(&count).Error
	if err != nil {
		return false, mapGormError(err)
	}
	return count > 0, nil
}

func (r *GormCurrencyRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.CurrencyModel{}).Count(&count).Error; err != nil {
		return 0, mapGormError(err)
	}
	return count, nil
}

type GormBankRepository struct {
	db *gorm.DB
}

func NewGormBankRepository(db *gorm.DB) *GormBankRepository {
	return &GormBankRepository{db: db}
}

func (r *GormBankRepository) Create(ctx context.Context, bank *refdata.Bank) error {
	if err := r.db.WithContext(ctx).Create(models.BankModelFromDomain(bank)).Error; err != nil {
		return mapGormError(err)
	}
	return nil
}

func (r *GormBankRepository) Update(ctx context.Context, bank *refdata.Bank) error {
	model := models.BankModelFromDomain(bank)
	result := r.db.WithContext(ctx).Model(&models.BankModel{}).
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

func (r *GormBankRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.BankModel{}, "id = ?", id)
	if result.Error != nil {
		return mapGormError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *GormBankRepository) FindByID(ctx context.Context, id uuid.UUID) (*refdata.Bank, error) {
	var model models.BankModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, mapGormError(err)
	}
	return model.ToDomain(), nil
}

func (r *GormBankRepository) FindAll(ctx context.Context) ([]*refdata.Bank, error) {
	var bankModels []models.BankModel
	if err := r.db.WithContext(ctx).Order("name").Find(&bankModels).Error; err != nil {
		return nil, mapGormError(err)
	}
	banks := make([]*refdata.Bank, len(bankModels))
	for i := range bankModels {
		banks[i] = bankModels[i].ToDomain()
	}
	return banks, nil
}

func (r *GormBankRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.BankModel{}).
		Where("name = ?", name).Count(&count).Error
	if err != nil {
		return false, mapGormError(err)
	}
	return count > 0, nil
}

func (r *GormBankRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.BankModel{}).
		Where("code = ?", code).Count(&count).Error
	if err != nil {
		return false, mapGormError(err)
	}
	return count > 0, nil
}

func (r *GormBankRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.BankModel{}).Count(&count).Error; err != nil {
		return 0, mapGormError(err)
	}
	return count, nil
}
