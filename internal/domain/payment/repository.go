package payment

import (
	"context"

	"Mobilia/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type Repository interface {
	CreateMethod(ctx context.Context, method *PaymentMethod) error
	UpdateMethod(ctx context.Context, method *PaymentMethod) error
	GetMethodById(ctx context.Context, methodID ulid.ULID) (*PaymentMethod, error)
	ListMethods(ctx context.Context, onlyActive bool, pagination *pkg.PaginationParams) ([]*PaymentMethod, int64, error)

	CreateBrand(ctx context.Context, brand *CardBrand) error
	GetBrandById(ctx context.Context, brandID ulid.ULID) (*CardBrand, error)
	ListBrands(ctx context.Context, onlyActive bool) ([]*CardBrand, error)

	CreateFeeRule(ctx context.Context, rule *CardFeeRule) error
	DeleteFeeRule(ctx context.Context, ruleID ulid.ULID) error
	GetFeeRuleByBrandAndInstallments(ctx context.Context, brandID ulid.ULID, installments int) (*CardFeeRule, error)
	ListFeeRulesByBrand(ctx context.Context, brandID ulid.ULID) ([]CardFeeRule, error)
}
