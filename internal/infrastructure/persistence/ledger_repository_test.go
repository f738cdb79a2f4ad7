package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ledgerline/backend/internal/domain/ledger"
	"github.com/ledgerline/backend/internal/domain/shared"
	"github.com/ledgerline/backend/internal/infrastructure/persistence/models"
)

func setupSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.ProjectModel{},
		&models.AccountModel{},
		&models.PartnerModel{},
	))
	return db
}

func newTestProject(t *testing.T, name string, ownerID uuid.UUID) *ledger.Project {
	t.Helper()
	project, err := ledger.NewProject(ownerID, name, "", "")
	require.NoError(t, err)
	return project
}

func TestGormProjectRepositoryRoundTrip(t *testing.T) {
	db := setupSQLiteDB(t)
	repo := NewGormProjectRepository(db)
	ctx := context.Background()
	ownerID := uuid.New()

	project := newTestProject(t, "Household", ownerID)
	require.NoError(t, repo.Create(ctx, project))

	found, err := repo.FindByID(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, "Household", found.Name)
	assert.Equal(t, ownerID, found.OwnerID)

	require.NoError(t, found.Rename("Savings"))
	require.NoError(t, repo.Update(ctx, found))

	updated, err := repo.FindByID(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, "Savings", updated.Name)
	assert.Equal(t, 2, updated.Version)

	require.NoError(t, repo.Delete(ctx, project.ID))
	_, err = repo.FindByID(ctx, project.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestGormProjectRepositoryOwnerScoping(t *testing.T) {
	db := setupSQLiteDB(t)
	repo := NewGormProjectRepository(db)
	ctx := context.Background()

	alice := uuid.New()
	bob := uuid.New()
	require.NoError(t, repo.Create(ctx, newTestProject(t, "Alpha", alice)))
	require.NoError(t, repo.Create(ctx, newTestProject(t, "Beta", alice)))
	require.NoError(t, repo.Create(ctx, newTestProject(t, "Gamma", bob)))

	aliceProjects, err := repo.FindAllByOwner(ctx, alice)
	require.NoError(t, err)
	require.Len(t, aliceProjects, 2)
	assert.Equal(t, "Alpha", aliceProjects[0].Name)
	assert.Equal(t, "Beta", aliceProjects[1].Name)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	exists, err := repo.ExistsByName(ctx, "Gamma")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByName(ctx, "Delta")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestGormAccountRepository(t *testing.T) {
	db := setupSQLiteDB(t)
	projectRepo := NewGormProjectRepository(db)
	repo := NewGormAccountRepository(db)
	ctx := context.Background()

	project := newTestProject(t, "Household", uuid.New())
	require.NoError(t, projectRepo.Create(ctx, project))

	account, err := ledger.NewAccount(ledger.NewAccountParams{
		Name:          "Checking",
		AccountNumber: "ES12-3456",
		Amount:        decimal.NewFromFloat(99.50),
		ProjectID:     project.ID,
	})
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, account))

	accounts, err := repo.FindAllByProject(ctx, project.ID)
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "Checking", accounts[0].Name)
	assert.True(t, accounts[0].Amount.Equal(decimal.NewFromFloat(99.50)))

	none, err := repo.FindAllByProject(ctx, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, none)

	exists, err := repo.ExistsByNumber(ctx, "ES12-3456")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestGormPartnerRepository(t *testing.T) {
	db := setupSQLiteDB(t)
	repo := NewGormPartnerRepository(db)
	ctx := context.Background()
	accountID := uuid.New()

	partner, err := ledger.NewPartner(ledger.NewPartnerParams{
		Name:       "Bob",
		Percentage: decimal.NewFromFloat(33.33),
		AccountID:  accountID,
	})
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, partner))

	partners, err := repo.FindAllByAccount(ctx, accountID)
	require.NoError(t, err)
	require.Len(t, partners, 1)
	assert.True(t, partners[0].Percentage.Equal(decimal.NewFromFloat(33.33)))

	require.NoError(t, partners[0].SetPercentage(decimal.NewFromInt(50)))
	require.NoError(t, repo.Update(ctx, partners[0]))

	updated, err := repo.FindByID(ctx, partner.ID)
	require.NoError(t, err)
	assert.True(t, updated.Percentage.Equal(decimal.NewFromInt(50)))
}
