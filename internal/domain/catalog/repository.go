package catalog

import (
	"context"

	"Mobilia/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type Repository interface {
	CreateProduct(ctx context.Context, product *Product) error
	UpdateProduct(ctx context.Context, product *Product) error
	GetProductById(ctx context.Context, productID ulid.ULID) (*Product, error)
	ListProducts(ctx context.Context, filter ProductFilter, pagination *pkg.PaginationParams) ([]*Product, int64, error)
	AdjustStock(ctx context.Context, productID ulid.ULID, delta int) error

	CreateCategory(ctx context.Context, category *Category) error
	UpdateCategory(ctx context.Context, category *Category) error
	GetCategoryById(ctx context.Context, categoryID ulid.ULID) (*Category, error)
	ListCategories(ctx context.Context, onlyActive bool) ([]Category, error)
}

type ProductFilter struct {
	Search     string
	CategoryId *ulid.ULID
	OnlyActive bool
}
