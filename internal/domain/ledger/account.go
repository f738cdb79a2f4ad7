package ledger

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgerline/backend/internal/domain/shared"
)

var (
	ErrAccountNameExists   = shared.NewDomainError("ACCOUNT_NAME_EXISTS", "an account with this name already exists")
	ErrAccountNumberExists = shared.NewDomainError("ACCOUNT_NUMBER_EXISTS", "an account with this number already exists")
	ErrEmptyAccountNumber  = shared.NewDomainError("EMPTY_ACCOUNT_NUMBER", "account number cannot be empty")
)

// Account is a bank account attached to a project. The bank, currency and
// country references point into reference data and are not validated here.
type Account struct {
	shared.BaseAggregateRoot
	Name          string
	Description   string
	AccountNumber string
	Alias         string
	InitialDate   time.Time
	Amount        decimal.Decimal
	ProjectID     uuid.UUID
	BankID        uuid.UUID
	CurrencyID    uuid.UUID
	CountryID     uuid.UUID
}

type NewAccountParams struct {
	Name          string
	Description   string
	AccountNumber string
	Alias         string
	InitialDate   time.Time
	Amount        decimal.Decimal
	ProjectID     uuid.UUID
	BankID        uuid.UUID
	CurrencyID    uuid.UUID
	CountryID     uuid.UUID
}

func NewAccount(params NewAccountParams) (*Account, error) {
	name := strings.TrimSpace(params.Name)
	if name == "" {
		return nil, ErrEmptyName
	}
	number := strings.TrimSpace(params.AccountNumber)
	if number == "" {
		return nil, ErrEmptyAccountNumber
	}
	if params.ProjectID == uuid.Nil {
		return nil, shared.NewDomainError("MISSING_PROJECT", "account requires a project")
	}
	initialDate := params.InitialDate
	if initialDate.IsZero() {
		initialDate = time.Now()
	}
	return &Account{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Description:       strings.TrimSpace(params.Description),
		AccountNumber:     number,
		Alias:             strings.TrimSpace(params.Alias),
		InitialDate:       initialDate,
		Amount:            params.Amount,
		ProjectID:         params.ProjectID,
		BankID:            params.BankID,
		CurrencyID:        params.CurrencyID,
		CountryID:         params.CountryID,
	}, nil
}

func (a *Account) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	a.Name = name
	a.IncrementVersion()
	return nil
}

func (a *Account) SetDescription(description string) {
	a.Description = strings.TrimSpace(description)
	a.IncrementVersion()
}

func (a *Account) SetAccountNumber(number string) error {
	number = strings.TrimSpace(number)
	if number == "" {
		return ErrEmptyAccountNumber
	}
	a.AccountNumber = number
	a.IncrementVersion()
	return nil
}

func (a *Account) SetAlias(alias string) {
	a.Alias = strings.TrimSpace(alias)
	a.IncrementVersion()
}

func (a *Account) SetInitialDate(date time.Time) {
	a.InitialDate = date
	a.IncrementVersion()
}

func (a *Account) SetAmount(amount decimal.Decimal) {
	a.Amount = amount
	a.IncrementVersion()
}

func (a *Account) SetBank(bankID uuid.UUID) {
	a.BankID = bankID
	a.IncrementVersion()
}

func (a *Account) SetCurrency(currencyID uuid.UUID) {
	a.CurrencyID = currencyID
	a.IncrementVersion()
}

func (a *Account) SetCountry(countryID uuid.UUID) {
	a.CountryID = countryID
	a.IncrementVersion()
}
