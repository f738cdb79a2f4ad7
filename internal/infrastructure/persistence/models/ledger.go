package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgerline/backend/internal/domain/ledger"
)

type ProjectModel struct {
	AggregateModel
	Name        string    `gorm:"size:255;not null;uniqueIndex"`
	Description string    `gorm:"type:text"`
	Tree        string    `gorm:"type:text"`
	OwnerID     uuid.UUID `gorm:"type:uuid;not null;index"`
}

func (ProjectModel) TableName() string {
	return "projects"
}

func (m *ProjectModel) ToDomain() *ledger.Project {
	return &ledger.Project{
		BaseAggregateRoot: m.toAggregateRoot(),
		Name:              m.Name,
		Description:       m.Description,
		Tree:              m.Tree,
		OwnerID:           m.OwnerID,
	}
}

func ProjectModelFromDomain(project *ledger.Project) *ProjectModel {
	return &ProjectModel{
		AggregateModel: aggregateModelFrom(project.BaseAggregateRoot),
		Name:           project.Name,
		Description:    project.Description,
		Tree:           project.Tree,
		OwnerID:        project.OwnerID,
	}
}

type AccountModel struct {
	AggregateModel
	Name          string          `gorm:"size:255;not null;uniqueIndex"`
	Description   string          `gorm:"type:text"`
	AccountNumber string          `gorm:"size:64;not null;uniqueIndex"`
	Alias         string          `gorm:"size:255"`
	InitialDate   time.Time       `gorm:"not null"`
	Amount        decimal.Decimal `gorm:"type:numeric(18,2);not null;default:0"`
	ProjectID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	BankID        uuid.UUID       `gorm:"type:uuid"`
	CurrencyID    uuid.UUID       `gorm:"type:uuid"`
	CountryID     uuid.UUID       `gorm:"type:uuid"`
}

func (AccountModel) TableName() string {
	return "accounts"
}

func (m *AccountModel) ToDomain() *ledger.Account {
	return &ledger.Account{
		BaseAggregateRoot: m.toAggregateRoot(),
		Name:              m.Name,
		Description:       m.Description,
		AccountNumber:     m.AccountNumber,
		Alias:             m.Alias,
		InitialDate:       m.InitialDate,
		Amount:            m.Amount,
		ProjectID:         m.ProjectID,
		BankID:            m.BankID,
		CurrencyID:        m.CurrencyID,
		CountryID:         m.CountryID,
	}
}

func AccountModelFromDomain(account *ledger.Account) *AccountModel {
	return &AccountModel{
		AggregateModel: aggregateModelFrom(account.BaseAggregateRoot),
		Name:           account.Name,
		Description:    account.Description,
		AccountNumber:  account.AccountNumber,
		Alias:          account.Alias,
		InitialDate:    account.InitialDate,
		Amount:         account.Amount,
		ProjectID:      account.ProjectID,
		BankID:         account.BankID,
		CurrencyID:     account.CurrencyID,
		CountryID:      account.CountryID,
	}
}

type PartnerModel struct {
	AggregateModel
	Name        string          `gorm:"size:255;not null;uniqueIndex"`
	Description string          `gorm:"type:text"`
	InitialDate time.Time       `gorm:"not null"`
	Percentage  decimal.Decimal `gorm:"type:numeric(6,2);not null;default:0"`
	AccountID   uuid.UUID       `gorm:"type:uuid;not null;index"`
}

func (PartnerModel) TableName() string {
	return "partners"
}

func (m *PartnerModel) ToDomain() *ledger.Partner {
	return &ledger.Partner{
		BaseAggregateRoot: m.toAggregateRoot(),
		Name:              m.Name,
		Description:       m.Description,
		InitialDate:       m.InitialDate,
		Percentage:        m.Percentage,
		AccountID:         m.AccountID,
	}
}

func PartnerModelFromDomain(partner *ledger.Partner) *PartnerModel {
	return &PartnerModel{
		AggregateModel: aggregateModelFrom(partner.BaseAggregateRoot),
		Name:           partner.Name,
		Description:    partner.Description,
		InitialDate:    partner.InitialDate,
		Percentage:     partner.Percentage,
		AccountID:      partner.AccountID,
	}
}
