package ledger

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ledgerline/backend/internal/domain/ledger"
	"github.com/ledgerline/backend/internal/domain/shared"
)

func testProject(t *testing.T, ownerID uuid.UUID) *ledger.Project {
	t.Helper()
	project, err := ledger.NewProject(ownerID, "Household", "", "")
	require.NoError(t, err)
	return project
}

func testAccount(t *testing.T, projectID uuid.UUID) *ledger.Account {
	t.Helper()
	account, err := ledger.NewAccount(ledger.NewAccountParams{
		Name:          "Checking",
		AccountNumber: "123",
		ProjectID:     projectID,
	})
	require.NoError(t, err)
	return account
}

func TestAuthorizeProjectOwner(t *testing.T) {
	projectRepo := new(MockProjectRepository)
	svc := NewOwnershipService(projectRepo, new(MockAccountRepository), zap.NewNop())

	ownerID := uuid.New()
	project := testProject(t, ownerID)
	projectRepo.On("FindByID", mock.Anything, project.ID).Return(project, nil)

	got, err := svc.AuthorizeProject(context.Background(), project.ID, Principal{UserID: ownerID})
	require.NoError(t, err)
	assert.Equal(t, project.ID, got.ID)
	projectRepo.AssertExpectations(t)
}

func TestAuthorizeProjectMismatch(t *testing.T) {
	projectRepo := new(MockProjectRepository)
	svc := NewOwnershipService(projectRepo, new(MockAccountRepository), zap.NewNop())

	project := testProject(t, uuid.New())
	projectRepo.On("FindByID", mock.Anything, project.ID).Return(project, nil)

	_, err := svc.AuthorizeProject(context.Background(), project.ID, Principal{UserID: uuid.New()})
	assert.ErrorIs(t, err, shared.ErrForbidden)
}

func TestAuthorizeProjectSuperuserBypass(t *testing.T) {
	projectRepo := new(MockProjectRepository)
	svc := NewOwnershipService(projectRepo, new(MockAccountRepository), zap.NewNop())

	project := testProject(t, uuid.New())
	projectRepo.On("FindByID", mock.Anything, project.ID).Return(project, nil)

	got, err := svc.AuthorizeProject(context.Background(), project.ID, Principal{UserID: uuid.New(), Superuser: true})
	require.NoError(t, err)
	assert.Equal(t, project.ID, got.ID)
}

func TestAuthorizeProjectMissing(t *testing.T) {
	projectRepo := new(MockProjectRepository)
	svc := NewOwnershipService(projectRepo, new(MockAccountRepository), zap.NewNop())

	projectID := uuid.New()
	projectRepo.On("FindByID", mock.Anything, projectID).Return(nil, shared.ErrNotFound)

	_, err := svc.AuthorizeProject(context.Background(), projectID, Principal{UserID: uuid.New()})
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestAuthorizeAccountWalksToProjectOwner(t *testing.T) {
	projectRepo := new(MockProjectRepository)
	accountRepo := new(MockAccountRepository)
	svc := NewOwnershipService(projectRepo, accountRepo, zap.NewNop())

	ownerID := uuid.New()
	project := testProject(t, ownerID)
	account := testAccount(t, project.ID)

	accountRepo.On("FindByID", mock.Anything, account.ID).Return(account, nil)
	projectRepo.On("FindByID", mock.Anything, project.ID).Return(project, nil)

	got, err := svc.AuthorizeAccount(context.Background(), account.ID, project.ID, Principal{UserID: ownerID})
	require.NoError(t, err)
	assert.Equal(t, account.ID, got.ID)

	_, err = svc.AuthorizeAccount(context.Background(), account.ID, project.ID, Principal{UserID: uuid.New()})
	assert.ErrorIs(t, err, shared.ErrForbidden)
}

func TestAuthorizeAccountWrongProjectPath(t *testing.T) {
	accountRepo := new(MockAccountRepository)
	svc := NewOwnershipService(new(MockProjectRepository), accountRepo, zap.NewNop())

	account := testAccount(t, uuid.New())
	accountRepo.On("FindByID", mock.Anything, account.ID).Return(account, nil)

	// reached through a project it does not belong to
	_, err := svc.AuthorizeAccount(context.Background(), account.ID, uuid.New(), Principal{UserID: uuid.New(), Superuser: true})
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestAuthorizeAccountSuperuserSkipsProjectLoad(t *testing.T) {
	projectRepo := new(MockProjectRepository)
	accountRepo := new(MockAccountRepository)
	svc := NewOwnershipService(projectRepo, accountRepo, zap.NewNop())

	projectID := uuid.New()
	account := testAccount(t, projectID)
	accountRepo.On("FindByID", mock.Anything, account.ID).Return(account, nil)

	_, err := svc.AuthorizeAccount(context.Background(), account.ID, projectID, Principal{UserID: uuid.New(), Superuser: true})
	require.NoError(t, err)
	projectRepo.AssertNotCalled(t, "FindByID")
}

func TestMaskOwnership(t *testing.T) {
	assert.ErrorIs(t, maskOwnership(shared.ErrForbidden), shared.ErrNotFound)
	assert.ErrorIs(t, maskOwnership(shared.ErrNotFound), shared.ErrNotFound)
	assert.NoError(t, maskOwnership(nil))
}
