package refdata

import (
	"context"

	"github.com/google/uuid"
)

type CountryRepository interface {
	Create(ctx context.Context, country *Country) error
	Update(ctx context.Context, country *Country) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*Country, error)
	FindAll(ctx context.Context) ([]*Country, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)
	Count(ctx context.Context) (int64, error)
}

type CurrencyRepository interface {
	Create(ctx context.Context, currency *Currency) error
	Update(ctx context.Context, currency *Currency) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*Currency, error)
	FindAll(ctx context.Context) ([]*Currency, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)
	Count(ctx context.Context) (int64, error)
}

type BankRepository interface {
	Create(ctx context.Context, bank *Bank) error
	Update(ctx context.Context, bank *Bank) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*Bank, error)
	FindAll(ctx context.Context) ([]*Bank, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)
	Count(ctx context.Context) (int64, error)
}
