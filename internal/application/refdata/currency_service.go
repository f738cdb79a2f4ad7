package refdata

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ledgerline/backend/internal/domain/refdata"
)

type CurrencyService struct {
	repo   refdata.CurrencyRepository
	logger *zap.Logger
}

func NewCurrencyService(repo refdata.CurrencyRepository, logger *zap.Logger) *CurrencyService {
	return &CurrencyService{repo: repo, logger: logger}
}

func (s *CurrencyService) List(ctx context.Context) ([]EntryDTO, error) {
	currencies, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	dtos := make([]EntryDTO, len(currencies))
	for i, c := range currencies {
		dtos[i] = currencyToDTO(c)
	}
	return dtos, nil
}

func (s *CurrencyService) Create(ctx context.Context, input CreateEntryInput) (*EntryDTO, error) {
	currency, err := refdata.NewCurrency(input.Name, input.Code)
	if err != nil {
		return nil, err
	}

	if exists, err := s.repo.ExistsByName(ctx, currency.Name); err != nil {
		return nil, err
	} else if exists {
		return nil, refdata.ErrNameExists
	}
	// Codes are optional; only non-empty codes are unique.
	if currency.Code != "" {
		if exists, err := s.repo.ExistsByCode(ctx, currency.Code); err != nil {
			return nil, err
		} else if exists {
			return nil, refdata.ErrCodeExists
		}
	}

	if err := s.repo.Create(ctx, currency); err != nil {
		return nil, err
	}
	s.logger.Info("currency created", zap.String("currency_id", currency.ID.String()))
	dto := currencyToDTO(currency)
	return &dto, nil
}

func (s *CurrencyService) Get(ctx context.Context, id uuid.UUID) (*EntryDTO, error) {
	currency, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := currencyToDTO(currency)
	return &dto, nil
}

func (s *CurrencyService) Update(ctx context.Context, id uuid.UUID, input UpdateEntryInput) (*EntryDTO, error) {
	currency, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil && *input.Name != currency.Name {
		exists, err := s.repo.ExistsByName(ctx, *input.Name)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, refdata.ErrNameExists
		}
		if err := currency.Rename(*input.Name); err != nil {
			return nil, err
		}
	}
	if input.Code != nil {
		prev := currency.Code
		currency.SetCode(*input.Code)
		if currency.Code != prev && currency.Code != "" {
			exists, err := s.repo.ExistsByCode(ctx, currency.Code)
			if err != nil {
				return nil, err
			}
			if exists {
				return nil, refdata.ErrCodeExists
			}
		}
	}

	if err := s.repo.Update(ctx, currency); err != nil {
		return nil, err
	}
	dto := currencyToDTO(currency)
	return &dto, nil
}

func (s *CurrencyService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("currency deleted", zap.String("currency_id", id.String()))
	return nil
}

// Populate seeds the currency catalog; it is a no-op when any rows exist.
func (s *CurrencyService) Populate(ctx context.Context) (*PopulateResult, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return &PopulateResult{Skipped: true}, nil
	}

	seeded := 0
	for _, seed := range currencySeed {
		currency, err := refdata.NewCurrency(seed.Name, seed.Code)
		if err != nil {
			return nil, err
		}
		if err := s.repo.Create(ctx, currency); err != nil {
			return nil, err
		}
		seeded++
	}

	s.logger.Info("currency catalog seeded", zap.Int("count", seeded))
	return &PopulateResult{Seeded: seeded}, nil
}
