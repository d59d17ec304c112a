package treatments

import "context"

type Repository interface {
	Create(ctx context.Context, t Treatment) error
	GetByID(ctx context.Context, id string) (Treatment, error)
	List(ctx context.Context) ([]Treatment, error)

	// ExistsOverlapping responde si algún tratamiento ya persistido solapa
	// con el candidato (mismo medicamento, intervalos que se tocan).
	ExistsOverlapping(ctx context.Context, candidate Treatment) (bool, error)
}
