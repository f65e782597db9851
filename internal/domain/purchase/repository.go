package purchase

import (
	"context"
	"time"

	"Mobilia/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type Repository interface {
	Create(ctx context.Context, purchase *Purchase) error
	Update(ctx context.Context, purchase *Purchase) error
	GetById(ctx context.Context, purchaseID ulid.ULID) (*Purchase, error)
	List(ctx context.Context, filter Filter, pagination *pkg.PaginationParams) ([]*Purchase, int64, error)
}

type Filter struct {
	SupplierId *ulid.ULID
	Status     Status
	From       *time.Time
	To         *time.Time
}
