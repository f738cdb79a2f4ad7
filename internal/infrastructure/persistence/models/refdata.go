package models

import (
	"github.com/ledgerline/backend/internal/domain/refdata"
)

type CountryModel struct {
	AggregateModel
	Name string `gorm:"size:255;not null;uniqueIndex"`
	Code string `gorm:"size:8;uniqueIndex:idx_countries_code,where:code <> ''"`
}

func (CountryModel) TableName() string {
	return "countries"
}

func (m *CountryModel) ToDomain() *refdata.Country {
	return &refdata.Country{
		BaseAggregateRoot: m.toAggregateRoot(),
		Name:              m.Name,
		Code:              m.Code,
	}
}

func CountryModelFromDomain(country *refdata.Country) *CountryModel {
	return &CountryModel{
		AggregateModel: aggregateModelFrom(country.BaseAggregateRoot),
		Name:           country.Name,
		Code:           country.Code,
	}
}

type CurrencyModel struct {
	AggregateModel
	Name string `gorm:"size:255;not null;uniqueIndex"`
	Code string `gorm:"size:8;uniqueIndex:idx_currencies_code,where:code <> ''"`
}

func (CurrencyModel) TableName() string {
	return "currencies"
}

func (m *CurrencyModel) ToDomain() *refdata.Currency {
	return &refdata.Currency{
		BaseAggregateRoot: m.toAggregateRoot(),
		Name:              m.Name,
		Code:              m.Code,
	}
}

func CurrencyModelFromDomain(currency *refdata.Currency) *CurrencyModel {
	return &CurrencyModel{
		AggregateModel: aggregateModelFrom(currency.BaseAggregateRoot),
		Name:           currency.Name,
		Code:           currency.Code,
	}
}

type BankModel struct {
	AggregateModel
	Name string `gorm:"size:255;not null;uniqueIndex"`
	Code string `gorm:"size:64;uniqueIndex:idx_banks_code,where:code <> ''"`
}

func (BankModel) TableName() string {
	return "banks"
}

func (m *BankModel) ToDomain() *refdata.Bank {
	return &refdata.Bank{
		BaseAggregateRoot: m.toAggregateRoot(),
		Name:              m.Name,
		Code:              m.Code,
	}
}

func BankModelFromDomain(bank *refdata.Bank) *BankModel {
	return &BankModel{
		AggregateModel: aggregateModelFrom(bank.BaseAggregateRoot),
		Name:           bank.Name,
		Code:           bank.Code,
	}
}
