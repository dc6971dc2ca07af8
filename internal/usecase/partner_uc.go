package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/atharvrajmane/channel-partner-form-backend/internal/domain"
)

type partnerUC struct{ repo domain.PartnerRepository }

func NewPartnerUC(r domain.PartnerRepository) domain.PartnerUsecase { return &partnerUC{repo: r} }

func (u *partnerUC) List(ctx context.Context, search string, page, size int) ([]domain.Partner, int32, error) {
	if size <= 0 {
		size = 10
	}
	if page <= 0 {
		page = 1
	}
	offset := (page - 1) * size
	return u.repo.ListPartners(ctx, search, size, offset)
}

func (u *partnerUC) Get(ctx context.Context, id int32) (*domain.Partner, error) {
	return u.repo.GetPartner(ctx, id)
}

func (u *partnerUC) Create(ctx context.Context, p domain.Partner) (*domain.Partner, error) {
	p.Ref = uuid.NewString()
	pending := domain.Review{Status: domain.StatusPending}
	p.ApplicantDetailsReview = pending
	p.CurrentAddressReview = pending
	p.PermanentAddressReview = pending
	p.KYCDocumentsReview = pending
	p.BankingDetailsReview = pending
	p.FinalDecision = pending

	id, err := u.repo.CreatePartner(ctx, p)
	if err != nil {
		return nil, err
	}
	p.ID = id
	return &p, nil
}

func (u *partnerUC) Delete(ctx context.Context, id int32) error {
	return u.repo.DeletePartner(ctx, id)
}

// UpdateFinalDecision accepts only Approved or Rejected. Pending is the
// record's initial state and cannot be set through this operation.
func (u *partnerUC) UpdateFinalDecision(ctx context.Context, id int32, decision domain.Status, reason string) error {
	if !decision.Decidable() {
		return domain.ErrInvalidDecision
	}
	return u.repo.UpdateFinalDecision(ctx, id, decision, reason)
}

// UpdateSectionStatus writes exactly one section's status/reason pair.
// The section name is checked against the fixed allow-list before the
// repository is touched.
func (u *partnerUC) UpdateSectionStatus(ctx context.Context, id int32, section string, status domain.Status, reason string) error {
	if !domain.ValidSection(section) {
		return domain.ErrInvalidSection
	}
	if !status.Decidable() {
		return domain.ErrInvalidStatus
	}
	return u.repo.UpdateSectionStatus(ctx, id, section, status, reason)
}

func (u *partnerUC) AddDocument(ctx context.Context, d domain.Document) (int32, error) {
	return u.repo.CreateDocument(ctx, d)
}
