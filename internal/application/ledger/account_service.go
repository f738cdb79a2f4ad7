package ledger

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ledgerline/backend/internal/domain/ledger"
)

type AccountService struct {
	accountRepo ledger.AccountRepository
	ownership   *OwnershipService
	logger      *zap.Logger
}

func NewAccountService(accountRepo ledger.AccountRepository, ownership *OwnershipService, logger *zap.Logger) *AccountService {
	return &AccountService{
		accountRepo: accountRepo,
		ownership:   ownership,
		logger:      logger,
	}
}

func (s *AccountService) List(ctx context.Context, principal Principal, projectID uuid.UUID) ([]AccountDTO, error) {
	if _, err := s.ownership.AuthorizeProject(ctx, projectID, principal); err != nil {
		return nil, maskOwnership(err)
	}

	accounts, err := s.accountRepo.FindAllByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	dtos := make([]AccountDTO, len(accounts))
	for i, a := range accounts {
		dtos[i] = accountToDTO(a)
	}
	return dtos, nil
}

func (s *AccountService) Create(ctx context.Context, principal Principal, projectID uuid.UUID, input CreateAccountInput) (*AccountDTO, error) {
	// ownership first so non-owners never learn about name collisions
	if _, err := s.ownership.AuthorizeProject(ctx, projectID, principal); err != nil {
		return nil, maskOwnership(err)
	}

	if exists, err := s.accountRepo.ExistsByName(ctx, input.Name); err != nil {
		return nil, err
	} else if exists {
		return nil, ledger.ErrAccountNameExists
	}
	if exists, err := s.accountRepo.ExistsByNumber(ctx, input.AccountNumber); err != nil {
		return nil, err
	} else if exists {
		return nil, ledger.ErrAccountNumberExists
	}

	params := ledger.NewAccountParams{
		Name:          input.Name,
		Description:   input.Description,
		AccountNumber: input.AccountNumber,
		Alias:         input.Alias,
		Amount:        input.Amount,
		ProjectID:     projectID,
		BankID:        input.BankID,
		CurrencyID:    input.CurrencyID,
		CountryID:     input.CountryID,
	}
	if input.InitialDate != nil {
		params.InitialDate = *input.InitialDate
	}

	account, err := ledger.NewAccount(params)
	if err != nil {
		return nil, err
	}
	if err := s.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	s.logger.Info("account created",
		zap.String("account_id", account.ID.String()),
		zap.String("project_id", projectID.String()),
	)
	dto := accountToDTO(account)
	return &dto, nil
}

func (s *AccountService) Get(ctx context.Context, principal Principal, projectID, accountID uuid.UUID) (*AccountDTO, error) {
	account, err := s.ownership.AuthorizeAccount(ctx, accountID, projectID, principal)
	if err != nil {
		return nil, maskOwnership(err)
	}
	dto := accountToDTO(account)
	return &dto, nil
}

func (s *AccountService) Update(ctx context.Context, principal Principal, projectID, accountID uuid.UUID, input UpdateAccountInput) (*AccountDTO, error) {
	account, err := s.ownership.AuthorizeAccount(ctx, accountID, projectID, principal)
	if err != nil {
		return nil, maskOwnership(err)
	}

	if input.Name != nil && *input.Name != account.Name {
		exists, err := s.accountRepo.ExistsByName(ctx, *input.Name)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ledger.ErrAccountNameExists
		}
		if err := account.Rename(*input.Name); err != nil {
			return nil, err
		}
	}
	if input.AccountNumber != nil && *input.AccountNumber != account.AccountNumber {
		exists, err := s.accountRepo.ExistsByNumber(ctx, *input.AccountNumber)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ledger.ErrAccountNumberExists
		}
		if err := account.SetAccountNumber(*input.AccountNumber); err != nil {
			return nil, err
		}
	}
	if input.Description != nil {
		account.SetDescription(*input.Description)
	}
	if input.Alias != nil {
		account.SetAlias(*input.Alias)
	}
	if input.InitialDate != nil {
		account.SetInitialDate(*input.InitialDate)
	}
	if input.Amount != nil {
		account.SetAmount(*input.Amount)
	}
	if input.BankID != nil {
		account.SetBank(*input.BankID)
	}
	if input.CurrencyID != nil {
		account.SetCurrency(*input.CurrencyID)
	}
	if input.CountryID != nil {
		account.SetCountry(*input.CountryID)
	}

	if err := s.accountRepo.Update(ctx, account); err != nil {
		return nil, err
	}
	dto := accountToDTO(account)
	return &dto, nil
}

func (s *AccountService) Delete(ctx context.Context, principal Principal, projectID, accountID uuid.UUID) error {
	if _, err := s.ownership.AuthorizeAccount(ctx, accountID, projectID, principal); err != nil {
		return maskOwnership(err)
	}
	if err := s.accountRepo.Delete(ctx, accountID); err != nil {
		return err
	}
	s.logger.Info("account deleted", zap.String("account_id", accountID.String()))
	return nil
}
