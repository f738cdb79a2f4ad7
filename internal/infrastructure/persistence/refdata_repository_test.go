package persistence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ledgerline/backend/internal/domain/refdata"
	"github.com/ledgerline/backend/internal/infrastructure/persistence/models"
)

func setupRefdataDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.CountryModel{},
		&models.CurrencyModel{},
		&models.BankModel{},
	))
	return db
}

func newTestCountry(t *testing.T, name, code string) *refdata.Country {
	t.Helper()
	country, err := refdata.NewCountry(name, code)
	require.NoError(t, err)
	return country
}

func TestGormCountryRepositoryCodeUniqueness(t *testing.T) {
	db := setupRefdataDB(t)
	repo := NewGormCountryRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newTestCountry(t, "France", "FR")))

	exists, err := repo.ExistsByCode(ctx, "FR")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByCode(ctx, "DE")
	require.NoError(t, err)
	assert.False(t, exists)

	// The unique index backstops callers that skip the pre-check.
	err = repo.Create(ctx, newTestCountry(t, "Metropolitan France", "FR"))
	assert.Error(t, err)
}

func TestGormCountryRepositoryEmptyCodesNotUnique(t *testing.T) {
	db := setupRefdataDB(t)
	repo := NewGormCountryRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newTestCountry(t, "Atlantis", "")))
	require.NoError(t, repo.Create(ctx, newTestCountry(t, "Lemuria", "")))
}

func TestGormBankRepositoryCodeUniqueness(t *testing.T) {
	db := setupRefdataDB(t)
	repo := NewGormBankRepository(db)
	ctx := context.Background()

	bank, err := refdata.NewBank("First National", "FNBK")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, bank))

	exists, err := repo.ExistsByCode(ctx, "FNBK")
	require.NoError(t, err)
	assert.True(t, exists)
}
