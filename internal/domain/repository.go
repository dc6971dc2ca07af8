//go:generate mockery --name=PartnerRepository --output=../mocks --case=underscore
package domain

import "context"

type PartnerRepository interface {
	ListPartners(ctx context.Context, search string, limit, offset int) ([]Partner, int32, error)
	GetPartner(ctx context.Context, id int32) (*Partner, error)
	CreatePartner(ctx context.Context, p Partner) (int32, error)
	DeletePartner(ctx context.Context, id int32) error
	UpdateFinalDecision(ctx context.Context, id int32, decision Status, reason string) error
	UpdateSectionStatus(ctx context.Context, id int32, section string, status Status, reason string) error
	ListDocuments(ctx context.Context, partnerID int32) ([]Document, error)
	CreateDocument(ctx context.Context, d Document) (int32, error)
}
