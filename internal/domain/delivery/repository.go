package delivery

import (
	"context"

	"Mobilia/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type Repository interface {
	Create(ctx context.Context, delivery *Delivery) error
	Update(ctx context.Context, delivery *Delivery) error
	GetById(ctx context.Context, deliveryID ulid.ULID) (*Delivery, error)
	List(ctx context.Context, status Status, pagination *pkg.PaginationParams) ([]*Delivery, int64, error)
	ListBySale(ctx context.Context, saleID ulid.ULID) ([]*Delivery, error)
}
