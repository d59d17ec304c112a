package dosages

import "context"

type Repository interface {
	Create(ctx context.Context, d Dosage) error
	GetByID(ctx context.Context, id string) (Dosage, error)
}
