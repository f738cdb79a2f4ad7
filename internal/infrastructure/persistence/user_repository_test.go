package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/ledgerline/backend/internal/domain/shared"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn: mockDB,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return db, mock
}

func userColumns() []string {
	return []string{
		"id", "created_at", "updated_at", "version",
		"username", "display_name", "email", "password_hash", "active", "superuser",
	}
}

func TestGormUserRepositoryFindByID(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewGormUserRepository(db)

	userID := uuid.New()
	now := time.Now()

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1`).
		WithArgs(userID, 1).
		WillReturnRows(sqlmock.NewRows(userColumns()).
			AddRow(userID, now, now, 1, "alice", "Alice", "alice@example.com", "hash", true, false))

	user, err := repo.FindByID(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, userID, user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.True(t, user.Active)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormUserRepositoryFindByIDNotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewGormUserRepository(db)

	userID := uuid.New()
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1`).
		WithArgs(userID, 1).
		WillReturnRows(sqlmock.NewRows(userColumns()))

	_, err := repo.FindByID(context.Background(), userID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormUserRepositoryFindByUsername(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewGormUserRepository(db)

	userID := uuid.New()
	now := time.Now()

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE username = \$1`).
		WithArgs("alice", 1).
		WillReturnRows(sqlmock.NewRows(userColumns()).
			AddRow(userID, now, now, 1, "alice", "Alice", "alice@example.com", "hash", true, true))

	user, err := repo.FindByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.True(t, user.Superuser)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormUserRepositoryExistsByUsername(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewGormUserRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "users" WHERE username = \$1`).
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	exists, err := repo.ExistsByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormUserRepositoryCountSuperusers(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewGormUserRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "users" WHERE superuser = \$1`).
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	count, err := repo.CountSuperusers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormUserRepositoryDeleteNotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewGormUserRepository(db)

	userID := uuid.New()
	mock.ExpectExec(`DELETE FROM "users" WHERE id = \$1`).
		WithArgs(userID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), userID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
