package ledger

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ledgerline/backend/internal/domain/ledger"
	"github.com/ledgerline/backend/internal/domain/shared"
)

type PartnerService struct {
	partnerRepo ledger.PartnerRepository
	ownership   *OwnershipService
	logger      *zap.Logger
}

func NewPartnerService(partnerRepo ledger.PartnerRepository, ownership *OwnershipService, logger *zap.Logger) *PartnerService {
	return &PartnerService{
		partnerRepo: partnerRepo,
		ownership:   ownership,
		logger:      logger,
	}
}

func (s *PartnerService) List(ctx context.Context, principal Principal, projectID, accountID uuid.UUID) ([]PartnerDTO, error) {
	if _, err := s.ownership.AuthorizeAccount(ctx, accountID, projectID, principal); err != nil {
		return nil, maskOwnership(err)
	}

	partners, err := s.partnerRepo.FindAllByAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	dtos := make([]PartnerDTO, len(partners))
	for i, p := range partners {
		dtos[i] = partnerToDTO(p)
	}
	return dtos, nil
}

func (s *PartnerService) Create(ctx context.Context, principal Principal, projectID, accountID uuid.UUID, input CreatePartnerInput) (*PartnerDTO, error) {
	if _, err := s.ownership.AuthorizeAccount(ctx, accountID, projectID, principal); err != nil {
		return nil, maskOwnership(err)
	}

	if exists, err := s.partnerRepo.ExistsByName(ctx, input.Name); err != nil {
		return nil, err
	} else if exists {
		return nil, ledger.ErrPartnerNameExists
	}

	params := ledger.NewPartnerParams{
		Name:        input.Name,
		Description: input.Description,
		Percentage:  input.Percentage,
		AccountID:   accountID,
	}
	if input.InitialDate != nil {
		params.InitialDate = *input.InitialDate
	}

	partner, err := ledger.NewPartner(params)
	if err != nil {
		return nil, err
	}
	if err := s.partnerRepo.Create(ctx, partner); err != nil {
		return nil, err
	}

	s.logger.Info("partner created",
		zap.String("partner_id", partner.ID.String()),
		zap.String("account_id", accountID.String()),
	)
	dto := partnerToDTO(partner)
	return &dto, nil
}

func (s *PartnerService) Get(ctx context.Context, principal Principal, projectID, accountID, partnerID uuid.UUID) (*PartnerDTO, error) {
	partner, err := s.resolve(ctx, principal, projectID, accountID, partnerID)
	if err != nil {
		return nil, err
	}
	dto := partnerToDTO(partner)
	return &dto, nil
}

func (s *PartnerService) Update(ctx context.Context, principal Principal, projectID, accountID, partnerID uuid.UUID, input UpdatePartnerInput) (*PartnerDTO, error) {
	partner, err := s.resolve(ctx, principal, projectID, accountID, partnerID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil && *input.Name != partner.Name {
		exists, err := s.partnerRepo.ExistsByName(ctx, *input.Name)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ledger.ErrPartnerNameExists
		}
		if err := partner.Rename(*input.Name); err != nil {
			return nil, err
		}
	}
	if input.Description != nil {
		partner.SetDescription(*input.Description)
	}
	if input.InitialDate != nil {
		partner.SetInitialDate(*input.InitialDate)
	}
	if input.Percentage != nil {
		if err := partner.SetPercentage(*input.Percentage); err != nil {
			return nil, err
		}
	}

	if err := s.partnerRepo.Update(ctx, partner); err != nil {
		return nil, err
	}
	dto := partnerToDTO(partner)
	return &dto, nil
}

func (s *PartnerService) Delete(ctx context.Context, principal Principal, projectID, accountID, partnerID uuid.UUID) error {
	if _, err := s.resolve(ctx, principal, projectID, accountID, partnerID); err != nil {
		return err
	}
	if err := s.partnerRepo.Delete(ctx, partnerID); err != nil {
		return err
	}
	s.logger.Info("partner deleted", zap.String("partner_id", partnerID.String()))
	return nil
}

// resolve loads the partner and authorizes the full project/account/partner
// path, masking ownership failures.
func (s *PartnerService) resolve(ctx context.Context, principal Principal, projectID, accountID, partnerID uuid.UUID) (*ledger.Partner, error) {
	partner, err := s.partnerRepo.FindByID(ctx, partnerID)
	if err != nil {
		return nil, err
	}
	if partner.AccountID != accountID {
		return nil, shared.ErrNotFound
	}
	if _, err := s.ownership.AuthorizeAccount(ctx, accountID, projectID, principal); err != nil {
		return nil, maskOwnership(err)
	}
	return partner, nil
}
