package ledger

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ledgerline/backend/internal/domain/ledger"
	"github.com/ledgerline/backend/internal/domain/shared"
)

func newAccountService(projectRepo *MockProjectRepository, accountRepo *MockAccountRepository) *AccountService {
	ownership := NewOwnershipService(projectRepo, accountRepo, zap.NewNop())
	return NewAccountService(accountRepo, ownership, zap.NewNop())
}

func TestAccountCreateAuthorizationBeforeUniqueness(t *testing.T) {
	projectRepo := new(MockProjectRepository)
	accountRepo := new(MockAccountRepository)
	svc := newAccountService(projectRepo, accountRepo)

	project := testProject(t, uuid.New())
	projectRepo.On("FindByID", mock.Anything, project.ID).Return(project, nil)

	_, err := svc.Create(context.Background(), Principal{UserID: uuid.New()}, project.ID, CreateAccountInput{
		Name:          "Checking",
		AccountNumber: "123",
	})
	assert.ErrorIs(t, err, shared.ErrNotFound)
	accountRepo.AssertNotCalled(t, "ExistsByName")
	accountRepo.AssertNotCalled(t, "ExistsByNumber")
}

func TestAccountCreate(t *testing.T) {
	projectRepo := new(MockProjectRepository)
	accountRepo := new(MockAccountRepository)
	svc := newAccountService(projectRepo, accountRepo)

	ownerID := uuid.New()
	project := testProject(t, ownerID)
	projectRepo.On("FindByID", mock.Anything, project.ID).Return(project, nil)
	accountRepo.On("ExistsByName", mock.Anything, "Checking").Return(false, nil)
	accountRepo.On("ExistsByNumber", mock.Anything, "ES12").Return(false, nil)
	accountRepo.On("Create", mock.Anything, mock.MatchedBy(func(a *ledger.Account) bool {
		return a.ProjectID == project.ID && a.Name == "Checking"
	})).Return(nil)

	dto, err := svc.Create(context.Background(), Principal{UserID: ownerID}, project.ID, CreateAccountInput{
		Name:          "Checking",
		AccountNumber: "ES12",
		Amount:        decimal.NewFromInt(100),
	})
	require.NoError(t, err)
	assert.Equal(t, project.ID, dto.ProjectID)
	assert.True(t, dto.Amount.Equal(decimal.NewFromInt(100)))
	accountRepo.AssertExpectations(t)
}

func TestAccountCreateDuplicateNumber(t *testing.T) {
	projectRepo := new(MockProjectRepository)
	accountRepo := new(MockAccountRepository)
	svc := newAccountService(projectRepo, accountRepo)

	ownerID := uuid.New()
	project := testProject(t, ownerID)
	projectRepo.On("FindByID", mock.Anything, project.ID).Return(project, nil)
	accountRepo.On("ExistsByName", mock.Anything, "Checking").Return(false, nil)
	accountRepo.On("ExistsByNumber", mock.Anything, "ES12").Return(true, nil)

	_, err := svc.Create(context.Background(), Principal{UserID: ownerID}, project.ID, CreateAccountInput{
		Name:          "Checking",
		AccountNumber: "ES12",
	})
	assert.ErrorIs(t, err, ledger.ErrAccountNumberExists)
	accountRepo.AssertNotCalled(t, "Create")
}

func TestAccountListRequiresProjectOwnership(t *testing.T) {
	projectRepo := new(MockProjectRepository)
	accountRepo := new(MockAccountRepository)
	svc := newAccountService(projectRepo, accountRepo)

	ownerID := uuid.New()
	project := testProject(t, ownerID)
	account := testAccount(t, project.ID)
	projectRepo.On("FindByID", mock.Anything, project.ID).Return(project, nil)
	accountRepo.On("FindAllByProject", mock.Anything, project.ID).Return([]*ledger.Account{account}, nil)

	dtos, err := svc.List(context.Background(), Principal{UserID: ownerID}, project.ID)
	require.NoError(t, err)
	assert.Len(t, dtos, 1)

	_, err = svc.List(context.Background(), Principal{UserID: uuid.New()}, project.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestAccountUpdatePatch(t *testing.T) {
	projectRepo := new(MockProjectRepository)
	accountRepo := new(MockAccountRepository)
	svc := newAccountService(projectRepo, accountRepo)

	ownerID := uuid.New()
	project := testProject(t, ownerID)
	account := testAccount(t, project.ID)
	accountRepo.On("FindByID", mock.Anything, account.ID).Return(account, nil)
	projectRepo.On("FindByID", mock.Anything, project.ID).Return(project, nil)
	accountRepo.On("Update", mock.Anything, account).Return(nil)

	amount := decimal.NewFromFloat(250.75)
	alias := "daily"
	dto, err := svc.Update(context.Background(), Principal{UserID: ownerID}, project.ID, account.ID, UpdateAccountInput{
		Amount: &amount,
		Alias:  &alias,
	})
	require.NoError(t, err)
	assert.True(t, dto.Amount.Equal(amount))
	assert.Equal(t, "daily", dto.Alias)
	assert.Equal(t, "Checking", dto.Name, "absent fields stay untouched")
}

func TestAccountDeleteSecondTimeNotFound(t *testing.T) {
	projectRepo := new(MockProjectRepository)
	accountRepo := new(MockAccountRepository)
	svc := newAccountService(projectRepo, accountRepo)

	accountID := uuid.New()
	projectID := uuid.New()
	accountRepo.On("FindByID", mock.Anything, accountID).Return(nil, shared.ErrNotFound)

	err := svc.Delete(context.Background(), Principal{UserID: uuid.New(), Superuser: true}, projectID, accountID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
