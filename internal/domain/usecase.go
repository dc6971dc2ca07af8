//go:generate mockery --name=PartnerUsecase --output=../mocks --case=underscore
package domain

import "context"

type PartnerUsecase interface {
	List(ctx context.Context, search string, page, size int) ([]Partner, int32, error)
	Get(ctx context.Context, id int32) (*Partner, error)
	Create(ctx context.Context, p Partner) (*Partner, error)
	Delete(ctx context.Context, id int32) error
	UpdateFinalDecision(ctx context.Context, id int32, decision Status, reason string) error
	UpdateSectionStatus(ctx context.Context, id int32, section string, status Status, reason string) error
	AddDocument(ctx context.Context, d Document) (int32, error)
}
