// Package ledger holds the application services for projects, accounts and
// partners, including the ownership checks that scope every operation to the
// owning user.
package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgerline/backend/internal/domain/ledger"
)

// Principal is the authenticated caller every operation is evaluated
// against. Superusers bypass ownership checks.
type Principal struct {
	UserID    uuid.UUID
	Superuser bool
}

type ProjectDTO struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Tree        string    `json:"tree"`
	OwnerID     uuid.UUID `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func projectToDTO(p *ledger.Project) ProjectDTO {
	return ProjectDTO{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Tree:        p.Tree,
		OwnerID:     p.OwnerID,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func projectsToDTO(projects []*ledger.Project) []ProjectDTO {
	dtos := make([]ProjectDTO, len(projects))
	for i, p := range projects {
		dtos[i] = projectToDTO(p)
	}
	return dtos
}

type CreateProjectInput struct {
	Name        string
	Description string
	Tree        string
}

// UpdateProjectInput carries a partial patch; nil fields are left untouched.
type UpdateProjectInput struct {
	Name        *string
	Description *string
	Tree        *string
}

type AccountDTO struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	AccountNumber string          `json:"account_number"`
	Alias         string          `json:"alias"`
	InitialDate   time.Time       `json:"initial_date"`
	Amount        decimal.Decimal `json:"amount"`
	ProjectID     uuid.UUID       `json:"project_id"`
	BankID        uuid.UUID       `json:"bank_id"`
	CurrencyID    uuid.UUID       `json:"currency_id"`
	CountryID     uuid.UUID       `json:"country_id"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func accountToDTO(a *ledger.Account) AccountDTO {
	return AccountDTO{
		ID:            a.ID,
		Name:          a.Name,
		Description:   a.Description,
		AccountNumber: a.AccountNumber,
		Alias:         a.Alias,
		InitialDate:   a.InitialDate,
		Amount:        a.Amount,
		ProjectID:     a.ProjectID,
		BankID:        a.BankID,
		CurrencyID:    a.CurrencyID,
		CountryID:     a.CountryID,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

type CreateAccountInput struct {
	Name          string
	Description   string
	AccountNumber string
	Alias         string
	InitialDate   *time.Time
	Amount        decimal.Decimal
	BankID        uuid.UUID
	CurrencyID    uuid.UUID
	CountryID     uuid.UUID
}

type UpdateAccountInput struct {
	Name          *string
	Description   *string
	AccountNumber *string
	Alias         *string
	InitialDate   *time.Time
	Amount        *decimal.Decimal
	BankID        *uuid.UUID
	CurrencyID    *uuid.UUID
	CountryID     *uuid.UUID
}

type PartnerDTO struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	InitialDate time.Time       `json:"initial_date"`
	Percentage  decimal.Decimal `json:"percentage"`
	AccountID   uuid.UUID       `json:"account_id"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func partnerToDTO(p *ledger.Partner) PartnerDTO {
	return PartnerDTO{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		InitialDate: p.InitialDate,
		Percentage:  p.Percentage,
		AccountID:   p.AccountID,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

type CreatePartnerInput struct {
	Name        string
	Description string
	InitialDate *time.Time
	Percentage  decimal.Decimal
}

type UpdatePartnerInput struct {
	Name        *string
	Description *string
	InitialDate *time.Time
	Percentage  *decimal.Decimal
}
