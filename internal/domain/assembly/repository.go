package assembly

import (
	"context"

	"Mobilia/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type Repository interface {
	Create(ctx context.Context, assembly *Assembly) error
	Update(ctx context.Context, assembly *Assembly) error
	GetById(ctx context.Context, assemblyID ulid.ULID) (*Assembly, error)
	List(ctx context.Context, status Status, pagination *pkg.PaginationParams) ([]*Assembly, int64, error)
	ListBySale(ctx context.Context, saleID ulid.ULID) ([]*Assembly, error)

	// NextNumber devolve o próximo número sequencial de assistência.
	NextNumber(ctx context.Context) (int64, error)
}
