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

type partnerFixture struct {
	projectRepo *MockProjectRepository
	accountRepo *MockAccountRepository
	partnerRepo *MockPartnerRepository
	svc         *PartnerService
	ownerID     uuid.UUID
	project     *ledger.Project
	account     *ledger.Account
}

func newPartnerFixture(t *testing.T) *partnerFixture {
	t.Helper()
	f := &partnerFixture{
		projectRepo: new(MockProjectRepository),
		accountRepo: new(MockAccountRepository),
		partnerRepo: new(MockPartnerRepository),
		ownerID:     uuid.New(),
	}
	f.project = testProject(t, f.ownerID)
	f.account = testAccount(t, f.project.ID)
	ownership := NewOwnershipService(f.projectRepo, f.accountRepo, zap.NewNop())
	f.svc = NewPartnerService(f.partnerRepo, ownership, zap.NewNop())
	return f
}

func (f *partnerFixture) expectOwnedPath() {
	f.accountRepo.On("FindByID", mock.Anything, f.account.ID).Return(f.account, nil)
	f.projectRepo.On("FindByID", mock.Anything, f.project.ID).Return(f.project, nil)
}

func TestPartnerCreate(t *testing.T) {
	f := newPartnerFixture(t)
	f.expectOwnedPath()
	f.partnerRepo.On("ExistsByName", mock.Anything, "Bob").Return(false, nil)
	f.partnerRepo.On("Create", mock.Anything, mock.MatchedBy(func(p *ledger.Partner) bool {
		return p.AccountID == f.account.ID && p.Name == "Bob"
	})).Return(nil)

	dto, err := f.svc.Create(context.Background(), Principal{UserID: f.ownerID}, f.project.ID, f.account.ID, CreatePartnerInput{
		Name:       "Bob",
		Percentage: decimal.NewFromInt(40),
	})
	require.NoError(t, err)
	assert.Equal(t, f.account.ID, dto.AccountID)
	assert.True(t, dto.Percentage.Equal(decimal.NewFromInt(40)))
	f.partnerRepo.AssertExpectations(t)
}

func TestPartnerCreateInvalidPercentage(t *testing.T) {
	f := newPartnerFixture(t)
	f.expectOwnedPath()
	f.partnerRepo.On("ExistsByName", mock.Anything, "Bob").Return(false, nil)

	_, err := f.svc.Create(context.Background(), Principal{UserID: f.ownerID}, f.project.ID, f.account.ID, CreatePartnerInput{
		Name:       "Bob",
		Percentage: decimal.NewFromInt(120),
	})
	assert.ErrorIs(t, err, ledger.ErrInvalidPercentage)
}

func TestPartnerCreateUnauthorizedMasked(t *testing.T) {
	f := newPartnerFixture(t)
	f.expectOwnedPath()

	_, err := f.svc.Create(context.Background(), Principal{UserID: uuid.New()}, f.project.ID, f.account.ID, CreatePartnerInput{
		Name:       "Bob",
		Percentage: decimal.NewFromInt(10),
	})
	assert.ErrorIs(t, err, shared.ErrNotFound)
	f.partnerRepo.AssertNotCalled(t, "ExistsByName")
}

func TestPartnerGetWrongAccountPath(t *testing.T) {
	f := newPartnerFixture(t)

	partner, err := ledger.NewPartner(ledger.NewPartnerParams{
		Name:       "Bob",
		Percentage: decimal.NewFromInt(10),
		AccountID:  uuid.New(),
	})
	require.NoError(t, err)
	f.partnerRepo.On("FindByID", mock.Anything, partner.ID).Return(partner, nil)

	_, err = f.svc.Get(context.Background(), Principal{UserID: f.ownerID}, f.project.ID, f.account.ID, partner.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestPartnerUpdatePercentage(t *testing.T) {
	f := newPartnerFixture(t)
	f.expectOwnedPath()

	partner, err := ledger.NewPartner(ledger.NewPartnerParams{
		Name:       "Bob",
		Percentage: decimal.NewFromInt(10),
		AccountID:  f.account.ID,
	})
	require.NoError(t, err)
	f.partnerRepo.On("FindByID", mock.Anything, partner.ID).Return(partner, nil)
	f.partnerRepo.On("Update", mock.Anything, partner).Return(nil)

	pct := decimal.NewFromFloat(66.67)
	dto, err := f.svc.Update(context.Background(), Principal{UserID: f.ownerID}, f.project.ID, f.account.ID, partner.ID, UpdatePartnerInput{
		Percentage: &pct,
	})
	require.NoError(t, err)
	assert.True(t, dto.Percentage.Equal(pct))
	assert.Equal(t, "Bob", dto.Name)
}

func TestPartnerDelete(t *testing.T) {
	f := newPartnerFixture(t)
	f.expectOwnedPath()

	partner, err := ledger.NewPartner(ledger.NewPartnerParams{
		Name:       "Bob",
		Percentage: decimal.NewFromInt(10),
		AccountID:  f.account.ID,
	})
	require.NoError(t, err)
	f.partnerRepo.On("FindByID", mock.Anything, partner.ID).Return(partner, nil)
	f.partnerRepo.On("Delete", mock.Anything, partner.ID).Return(nil)

	require.NoError(t, f.svc.Delete(context.Background(), Principal{UserID: f.ownerID}, f.project.ID, f.account.ID, partner.ID))
	f.partnerRepo.AssertExpectations(t)
}
