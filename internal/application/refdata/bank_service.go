package refdata

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ledgerline/backend/internal/domain/refdata"
)

// BankService has no populate operation; banks carry no seed catalog.
type BankService struct {
	repo   refdata.BankRepository
	logger *zap.Logger
}

func NewBankService(repo refdata.BankRepository, logger *zap.Logger) *BankService {
	return &BankService{repo: repo, logger: logger}
}

func (s *BankService) List(ctx context.Context) ([]EntryDTO, error) {
	banks, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	dtos := make([]EntryDTO, len(banks))
	for i, b := range banks {
		dtos[i] = bankToDTO(b)
	}
	return dtos, nil
}

func (s *BankService) Create(ctx context.Context, input CreateEntryInput) (*EntryDTO, error) {
	bank, err := refdata.NewBank(input.Name, input.Code)
	if err != nil {
		return nil, err
	}

	if exists, err := s.repo.ExistsByName(ctx, bank.Name); err != nil {
		return nil, err
	} else if exists {
		return nil, refdata.ErrNameExists
	}
	// Codes are optional; only non-empty codes are unique.
	if bank.Code != "" {
		if exists, err := s.repo.ExistsByCode(ctx, bank.Code); err != nil {
			return nil, err
		} else if exists {
			return nil, refdata.ErrCodeExists
		}
	}

	if err := s.repo.Create(ctx, bank); err != nil {
		return nil, err
	}
	s.logger.Info("bank created", zap.String("bank_id", bank.ID.String()))
	dto := bankToDTO(bank)
	return &dto, nil
}

func (s *BankService) Get(ctx context.Context, id uuid.UUID) (*EntryDTO, error) {
	bank, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := bankToDTO(bank)
	return &dto, nil
}

func (s *BankService) Update(ctx context.Context, id uuid.UUID, input UpdateEntryInput) (*EntryDTO, error) {
	bank, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil && *input.Name != bank.Name {
		exists, err := s.repo.ExistsByName(ctx, *input.Name)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, refdata.ErrNameExists
		}
		if err := bank.Rename(*input.Name); err != nil {
			return nil, err
		}
	}
	if input.Code != nil {
		prev := bank.Code
		bank.SetCode(*input.Code)
		if bank.Code != prev && bank.Code != "" {
			exists, err := s.repo.ExistsByCode(ctx, bank.Code)
			if err != nil {
				return nil, err
			}
			if exists {
				return nil, refdata.ErrCodeExists
			}
		}
	}

	if err := s.repo.Update(ctx, bank); err != nil {
		return nil, err
	}
	dto := bankToDTO(bank)
	return &dto, nil
}

func (s *BankService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("bank deleted", zap.String("bank_id", id.String()))
	return nil
}
