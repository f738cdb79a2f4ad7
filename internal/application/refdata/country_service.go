package refdata

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ledgerline/backend/internal/domain/refdata"
)

type CountryService struct {
	repo   refdata.CountryRepository
	logger *zap.Logger
}

func NewCountryService(repo refdata.CountryRepository, logger *zap.Logger) *CountryService {
	return &CountryService{repo: repo, logger: logger}
}

func (s *CountryService) List(ctx context.Context) ([]EntryDTO, error) {
	countries, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	dtos := make([]EntryDTO, len(countries))
	for i, c := range countries {
		dtos[i] = countryToDTO(c)
	}
	return dtos, nil
}

func (s *CountryService) Create(ctx context.Context, input CreateEntryInput) (*EntryDTO, error) {
	country, err := refdata.NewCountry(input.Name, input.Code)
	if err != nil {
		return nil, err
	}

	if exists, err := s.repo.ExistsByName(ctx, country.Name); err != nil {
		return nil, err
	} else if exists {
		return nil, refdata.ErrNameExists
	}
	// Codes are optional; only non-empty codes are unique.
	if country.Code != "" {
		if exists, err := s.repo.ExistsByCode(ctx, country.Code); err != nil {
			return nil, err
		} else if exists {
			return nil, refdata.ErrCodeExists
		}
	}

	if err := s.repo.Create(ctx, country); err != nil {
		return nil, err
	}
	s.logger.Info("country created", zap.String("country_id", country.ID.String()))
	dto := countryToDTO(country)
	return &dto, nil
}

func (s *CountryService) Get(ctx context.Context, id uuid.UUID) (*EntryDTO, error) {
	country, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := countryToDTO(country)
	return &dto, nil
}

func (s *CountryService) Update(ctx context.Context, id uuid.UUID, input UpdateEntryInput) (*EntryDTO, error) {
	country, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil && *input.Name != country.Name {
		exists, err := s.repo.ExistsByName(ctx, *input.Name)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, refdata.ErrNameExists
		}
		if err := country.Rename(*input.Name); err != nil {
			return nil, err
		}
	}
	if input.Code != nil {
		prev := country.Code
		country.SetCode(*input.Code)
		if country.Code != prev && country.Code != "" {
			exists, err := s.repo.ExistsByCode(ctx, country.Code)
			if err != nil {
				return nil, err
			}
			if exists {
				return nil, refdata.ErrCodeExists
			}
		}
	}

	if err := s.repo.Update(ctx, country); err != nil {
		return nil, err
	}
	dto := countryToDTO(country)
	return &dto, nil
}

func (s *CountryService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("country deleted", zap.String("country_id", id.String()))
	return nil
}

// Populate seeds the country catalog; it is a no-op when any rows exist.
func (s *CountryService) Populate(ctx context.Context) (*PopulateResult, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return &PopulateResult{Skipped: true}, nil
	}

	seeded := 0
	for _, seed := range countrySeed {
		country, err := refdata.NewCountry(seed.Name, seed.Code)
		if err != nil {
			return nil, err
		}
		if err := s.repo.Create(ctx, country); err != nil {
			return nil, err
		}
		seeded++
	}

	s.logger.Info("country catalog seeded", zap.Int("count", seeded))
	return &PopulateResult{Seeded: seeded}, nil
}
