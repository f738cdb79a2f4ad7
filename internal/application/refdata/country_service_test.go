package refdata

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ledgerline/backend/internal/domain/refdata"
	"github.com/ledgerline/backend/internal/domain/shared"
)

type MockCountryRepository struct {
	mock.Mock
}

func (m *MockCountryRepository) Create(ctx context.Context, country *refdata.Country) error {
	return m.Called(ctx, country).Error(0)
}

func (m *MockCountryRepository) Update(ctx context.Context, country *refdata.Country) error {
	return m.Called(ctx, country).Error(0)
}

func (m *MockCountryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCountryRepository) FindByID(ctx context.Context, id uuid.UUID) (*refdata.Country, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*refdata.Country), args.Error(1)
}

func (m *MockCountryRepository) FindAll(ctx context.Context) ([]*refdata.Country, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*refdata.Country), args.Error(1)
}

func (m *MockCountryRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

func (m *MockCountryRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

func (m *MockCountryRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func TestCountryCreate(t *testing.T) {
	repo := new(MockCountryRepository)
	svc := NewCountryService(repo, zap.NewNop())

	repo.On("ExistsByName", mock.Anything, "Spain").Return(false, nil)
	repo.On("ExistsByCode", mock.Anything, "ES").Return(false, nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(c *refdata.Country) bool {
		return c.Name == "Spain" && c.Code == "ES"
	})).Return(nil)

	dto, err := svc.Create(context.Background(), CreateEntryInput{Name: "Spain", Code: "es"})
	require.NoError(t, err)
	assert.Equal(t, "ES", dto.Code, "codes are upper-cased")
	repo.AssertExpectations(t)
}

func TestCountryCreateDuplicate(t *testing.T) {
	repo := new(MockCountryRepository)
	svc := NewCountryService(repo, zap.NewNop())

	repo.On("ExistsByName", mock.Anything, "Spain").Return(true, nil)

	_, err := svc.Create(context.Background(), CreateEntryInput{Name: "Spain"})
	assert.ErrorIs(t, err, refdata.ErrNameExists)
	repo.AssertNotCalled(t, "Create")
}

func TestCountryCreateDuplicateCode(t *testing.T) {
	repo := new(MockCountryRepository)
	svc := NewCountryService(repo, zap.NewNop())

	repo.On("ExistsByName", mock.Anything, "Metropolitan France").Return(false, nil)
	repo.On("ExistsByCode", mock.Anything, "FR").Return(true, nil)

	_, err := svc.Create(context.Background(), CreateEntryInput{Name: "Metropolitan France", Code: "fr"})
	assert.ErrorIs(t, err, refdata.ErrCodeExists)
	repo.AssertNotCalled(t, "Create")
}

func TestCountryCreateEmptyCodeSkipsCodeCheck(t *testing.T) {
	repo := new(MockCountryRepository)
	svc := NewCountryService(repo, zap.NewNop())

	repo.On("ExistsByName", mock.Anything, "Atlantis").Return(false, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	_, err := svc.Create(context.Background(), CreateEntryInput{Name: "Atlantis"})
	require.NoError(t, err)
	repo.AssertNotCalled(t, "ExistsByCode")
}

func TestCountryUpdateRename(t *testing.T) {
	repo := new(MockCountryRepository)
	svc := NewCountryService(repo, zap.NewNop())

	country, err := refdata.NewCountry("Spian", "ES")
	require.NoError(t, err)
	repo.On("FindByID", mock.Anything, country.ID).Return(country, nil)
	repo.On("ExistsByName", mock.Anything, "Spain").Return(false, nil)
	repo.On("Update", mock.Anything, country).Return(nil)

	name := "Spain"
	dto, err := svc.Update(context.Background(), country.ID, UpdateEntryInput{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Spain", dto.Name)
	assert.Equal(t, "ES", dto.Code)
}

func TestCountryUpdateDuplicateCode(t *testing.T) {
	repo := new(MockCountryRepository)
	svc := NewCountryService(repo, zap.NewNop())

	country, err := refdata.NewCountry("France", "FX")
	require.NoError(t, err)
	repo.On("FindByID", mock.Anything, country.ID).Return(country, nil)
	repo.On("ExistsByCode", mock.Anything, "FR").Return(true, nil)

	code := "fr"
	_, err = svc.Update(context.Background(), country.ID, UpdateEntryInput{Code: &code})
	assert.ErrorIs(t, err, refdata.ErrCodeExists)
	repo.AssertNotCalled(t, "Update")
}

func TestCountryUpdateUnchangedCodeSkipsCodeCheck(t *testing.T) {
	repo := new(MockCountryRepository)
	svc := NewCountryService(repo, zap.NewNop())

	country, err := refdata.NewCountry("France", "FR")
	require.NoError(t, err)
	repo.On("FindByID", mock.Anything, country.ID).Return(country, nil)
	repo.On("Update", mock.Anything, country).Return(nil)

	code := "fr"
	dto, err := svc.Update(context.Background(), country.ID, UpdateEntryInput{Code: &code})
	require.NoError(t, err)
	assert.Equal(t, "FR", dto.Code)
	repo.AssertNotCalled(t, "ExistsByCode")
}

func TestCountryPopulate(t *testing.T) {
	repo := new(MockCountryRepository)
	svc := NewCountryService(repo, zap.NewNop())

	repo.On("Count", mock.Anything).Return(int64(0), nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	result, err := svc.Populate(context.Background())
	require.NoError(t, err)
	assert.False(t, result.Skipped)
	assert.Equal(t, len(countrySeed), result.Seeded)
	repo.AssertNumberOfCalls(t, "Create", len(countrySeed))
}

func TestCountryPopulateIdempotent(t *testing.T) {
	repo := new(MockCountryRepository)
	svc := NewCountryService(repo, zap.NewNop())

	repo.On("Count", mock.Anything).Return(int64(5), nil)

	result, err := svc.Populate(context.Background())
	require.NoError(t, err)
	assert.True(t, result.Skipped)
	assert.Zero(t, result.Seeded)
	repo.AssertNotCalled(t, "Create")
}

func TestCountryDeleteMissing(t *testing.T) {
	repo := new(MockCountryRepository)
	svc := NewCountryService(repo, zap.NewNop())

	id := uuid.New()
	repo.On("Delete", mock.Anything, id).Return(shared.ErrNotFound)

	assert.ErrorIs(t, svc.Delete(context.Background(), id), shared.ErrNotFound)
}
