package ledger

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgerline/backend/internal/domain/shared"
)

var (
	ErrPartnerNameExists = shared.NewDomainError("PARTNER_NAME_EXISTS", "a partner with this name already exists")
	ErrInvalidPercentage = shared.NewDomainError("INVALID_PERCENTAGE", "percentage must be between 0 and 100")
)

var maxPercentage = decimal.NewFromInt(100)

// Partner holds a percentage stake in an account.
type Partner struct {
	shared.BaseAggregateRoot
	Name        string
	Description string
	InitialDate time.Time
	Percentage  decimal.Decimal
	AccountID   uuid.UUID
}

type NewPartnerParams struct {
	Name        string
	Description string
	InitialDate time.Time
	Percentage  decimal.Decimal
	AccountID   uuid.UUID
}

func NewPartner(params NewPartnerParams) (*Partner, error) {
	name := strings.TrimSpace(params.Name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if !validPercentage(params.Percentage) {
		return nil, ErrInvalidPercentage
	}
	if params.AccountID == uuid.Nil {
		return nil, shared.NewDomainError("MISSING_ACCOUNT", "partner requires an account")
	}
	initialDate := params.InitialDate
	if initialDate.IsZero() {
		initialDate = time.Now()
	}
	return &Partner{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Description:       strings.TrimSpace(params.Description),
		InitialDate:       initialDate,
		Percentage:        params.Percentage,
		AccountID:         params.AccountID,
	}, nil
}

func validPercentage(p decimal.Decimal) bool {
	return !p.IsNegative() && p.LessThanOrEqual(maxPercentage)
}

func (p *Partner) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	p.Name = name
	p.IncrementVersion()
	return nil
}

func (p *Partner) SetDescription(description string) {
	p.Description = strings.TrimSpace(description)
	p.IncrementVersion()
}

func (p *Partner) SetInitialDate(date time.Time) {
	p.InitialDate = date
	p.IncrementVersion()
}

func (p *Partner) SetPercentage(percentage decimal.Decimal) error {
	if !validPercentage(percentage) {
		return ErrInvalidPercentage
	}
	p.Percentage = percentage
	p.IncrementVersion()
	return nil
}
