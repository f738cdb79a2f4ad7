// Package refdata holds the shared reference catalogs: countries,
// currencies and banks. Entries are globally visible and unique by name.
package refdata

import (
	"strings"

	"github.com/ledgerline/backend/internal/domain/shared"
)

var (
	ErrEmptyName  = shared.NewDomainError("EMPTY_NAME", "name cannot be empty")
	ErrNameExists = shared.NewDomainError("NAME_EXISTS", "an entry with this name already exists")
	ErrCodeExists = shared.NewDomainError("CODE_EXISTS", "an entry with this code already exists")
)

// Country is a reference catalog entry. Code carries the ISO 3166-1
// alpha-2 code when known.
type Country struct {
	shared.BaseAggregateRoot
	Name string
	Code string
}

func NewCountry(name, code string) (*Country, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	return &Country{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Code:              strings.ToUpper(strings.TrimSpace(code)),
	}, nil
}

func (c *Country) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	c.Name = name
	c.IncrementVersion()
	return nil
}

func (c *Country) SetCode(code string) {
	c.Code = strings.ToUpper(strings.TrimSpace(code))
	c.IncrementVersion()
}

// Currency is a reference catalog entry. Code carries the ISO 4217
// code when known.
type Currency struct {
	shared.BaseAggregateRoot
	Name string
	Code string
}

func NewCurrency(name, code string) (*Currency, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	return &Currency{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Code:              strings.ToUpper(strings.TrimSpace(code)),
	}, nil
}

func (c *Currency) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	c.Name = name
	c.IncrementVersion()
	return nil
}

func (c *Currency) SetCode(code string) {
	c.Code = strings.ToUpper(strings.TrimSpace(code))
	c.IncrementVersion()
}

// Bank is a reference catalog entry. Code is free-form, typically a
// BIC or a local clearing code.
type Bank struct {
	shared.BaseAggregateRoot
	Name string
	Code string
}

func NewBank(name, code string) (*Bank, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	return &Bank{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Code:              strings.TrimSpace(code),
	}, nil
}

func (b *Bank) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	b.Name = name
	b.IncrementVersion()
	return nil
}

func (b *Bank) SetCode(code string) {
	b.Code = strings.TrimSpace(code)
	b.IncrementVersion()
}
