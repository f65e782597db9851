package sale

import (
	"context"
	"time"

	"Mobilia/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type Repository interface {
	Create(ctx context.Context, sale *Sale) error
	Update(ctx context.Context, sale *Sale) error
	GetById(ctx context.Context, saleID ulid.ULID) (*Sale, error)
	List(ctx context.Context, filter Filter, pagination *pkg.PaginationParams) ([]*Sale, int64, error)

	// NextNumber devolve o próximo número sequencial de venda (máximo atual
	// mais um; 1 na primeira venda).
	NextNumber(ctx context.Context) (int64, error)
}

type Filter struct {
	CustomerId *ulid.ULID
	SellerId   *ulid.ULID
	Status     Status
	From       *time.Time
	To         *time.Time
}
