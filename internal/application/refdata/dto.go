// Package refdata holds the application services for the shared reference
// catalogs, including the seed/populate operations.
package refdata

import (
	"time"

	"github.com/google/uuid"

	"github.com/ledgerline/backend/internal/domain/refdata"
)

// EntryDTO is the common shape of country, currency and bank entries.
type EntryDTO struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func countryToDTO(c *refdata.Country) EntryDTO {
	return EntryDTO{ID: c.ID, Name: c.Name, Code: c.Code, CreatedAt: c.CreatedAt, UpdatedAt: c.UpdatedAt}
}

func currencyToDTO(c *refdata.Currency) EntryDTO {
	return EntryDTO{ID: c.ID, Name: c.Name, Code: c.Code, CreatedAt: c.CreatedAt, UpdatedAt: c.UpdatedAt}
}

func bankToDTO(b *refdata.Bank) EntryDTO {
	return EntryDTO{ID: b.ID, Name: b.Name, Code: b.Code, CreatedAt: b.CreatedAt, UpdatedAt: b.UpdatedAt}
}

type CreateEntryInput struct {
	Name string
	Code string
}

// UpdateEntryInput carries a partial patch; nil fields are left untouched.
type UpdateEntryInput struct {
	Name *string
	Code *string
}

// PopulateResult reports the outcome of a seed run.
type PopulateResult struct {
	Seeded  int  `json:"seeded"`
	Skipped bool `json:"skipped"`
}
