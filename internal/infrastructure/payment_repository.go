package infrastructure

import (
	"context"
	"time"

	"Mobilia/internal/domain/payment"
	"Mobilia/internal/pkg"
	"Mobilia/internal/pkg/query"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type PaymentRepository struct {
	DB *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) payment.Repository {
	return &PaymentRepository{DB: db}
}

type paymentMethodDB struct {
	Id                 string    `gorm:"type:varchar(26);primaryKey"`
	Name               string    `gorm:"type:varchar(100);not null"`
	Category           string    `gorm:"type:varchar(20);not null"`
	AllowsInstallments bool      `gorm:"not null;default:false"`
	HasFees            bool      `gorm:"not null;default:false"`
	MaxInstallments    int       `gorm:"not null;default:0"`
	IsActive           bool      `gorm:"not null;default:true"`
	CreatedAt          time.Time `gorm:"not null"`
	UpdatedAt          time.Time `gorm:"not null"`
}

func (paymentMethodDB) TableName() string {
	return "payment_methods"
}

type cardBrandDB struct {
	Id        string    `gorm:"type:varchar(26);primaryKey"`
	Name      string    `gorm:"type:varchar(50);not null"`
	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (cardBrandDB) TableName() string {
	return "card_brands"
}

type cardFeeRuleDB struct {
	Id            string    `gorm:"type:varchar(26);primaryKey"`
	CardBrandId   string    `gorm:"type:varchar(26);index;not null"`
	Installments  int       `gorm:"not null"`
	FeePercentage float64   `gorm:"type:decimal(5,2);not null;default:0"`
	FixedFee      float64   `gorm:"type:decimal(15,2);not null;default:0"`
	IsActive      bool      `gorm:"not null;default:true"`
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`
}

func (cardFeeRuleDB) TableName() string {
	return "card_fee_rules"
}

func toDomainPaymentMethod(mdb *paymentMethodDB) (*payment.PaymentMethod, error) {
	id, err := pkg.ParseULID(mdb.Id)
	if err != nil {
		return nil, err
	}

	return &payment.PaymentMethod{
		Id:                 id,
		Name:               mdb.Name,
		Category:           payment.MethodCategory(mdb.Category),
		AllowsInstallments: mdb.AllowsInstallments,
		HasFees:            mdb.HasFees,
		MaxInstallments:    mdb.MaxInstallments,
		IsActive:           mdb.IsActive,
		CreatedAt:          mdb.CreatedAt,
		UpdatedAt:          mdb.UpdatedAt,
	}, nil
}

func toDBPaymentMethod(m *payment.PaymentMethod) *paymentMethodDB {
	return &paymentMethodDB{
		Id:                 m.Id.String(),
		Name:               m.Name,
		Category:           string(m.Category),
		AllowsInstallments: m.AllowsInstallments,
		HasFees:            m.HasFees,
		MaxInstallments:    m.MaxInstallments,
		IsActive:           m.IsActive,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

func toDomainCardBrand(bdb *cardBrandDB) (*payment.CardBrand, error) {
	id, err := pkg.ParseULID(bdb.Id)
	if err != nil {
		return nil, err
	}

	return &payment.CardBrand{
		Id:        id,
		Name:      bdb.Name,
		IsActive:  bdb.IsActive,
		CreatedAt: bdb.CreatedAt,
		UpdatedAt: bdb.UpdatedAt,
	}, nil
}

func toDomainCardFeeRule(rdb *cardFeeRuleDB) (*payment.CardFeeRule, error) {
	id, err := pkg.ParseULID(rdb.Id)
	if err != nil {
		return nil, err
	}
	brandID, err := pkg.ParseULID(rdb.CardBrandId)
	if err != nil {
		return nil, err
	}

	return &payment.CardFeeRule{
		Id:            id,
		CardBrandId:   brandID,
		Installments:  rdb.Installments,
		FeePercentage: rdb.FeePercentage,
		FixedFee:      rdb.FixedFee,
		IsActive:      rdb.IsActive,
		CreatedAt:     rdb.CreatedAt,
		UpdatedAt:     rdb.UpdatedAt,
	}, nil
}

func (r *PaymentRepository) CreateMethod(ctx context.Context, method *payment.PaymentMethod) error {
	return r.DB.WithContext(ctx).Create(toDBPaymentMethod(method)).Error
}

func (r *PaymentRepository) UpdateMethod(ctx context.Context, method *payment.PaymentMethod) error {
	mdb := toDBPaymentMethod(method)
	return r.DB.WithContext(ctx).Model(&paymentMethodDB{}).
		Where("id = ?", mdb.Id).
		Select("name", "allows_installments", "has_fees", "max_installments", "is_active", "updated_at").
		Updates(mdb).Error
}

func (r *PaymentRepository) GetMethodById(ctx context.Context, methodID ulid.ULID) (*payment.PaymentMethod, error) {
	var mdb paymentMethodDB
	err := r.DB.WithContext(ctx).Where("id = ?", methodID.String()).First(&mdb).Error
	if err != nil {
		return nil, err
	}
	return toDomainPaymentMethod(&mdb)
}

func (r *PaymentRepository) ListMethods(ctx context.Context, onlyActive bool, pagination *pkg.PaginationParams) ([]*payment.PaymentMethod, int64, error) {
	baseQuery := r.DB.WithContext(ctx).Table("payment_methods")
	if onlyActive {
		baseQuery = baseQuery.Where("is_active = ?", true)
	}
	return pkg.Paginate(baseQuery, pagination, "name ASC", toDomainPaymentMethod)
}

func (r *PaymentRepository) CreateBrand(ctx context.Context, brand *payment.CardBrand) error {
	bdb := &cardBrandDB{
		Id:        brand.Id.String(),
		Name:      brand.Name,
		IsActive:  brand.IsActive,
		CreatedAt: brand.CreatedAt,
		UpdatedAt: brand.UpdatedAt,
	}
	return r.DB.WithContext(ctx).Create(bdb).Error
}

func (r *PaymentRepository) GetBrandById(ctx context.Context, brandID ulid.ULID) (*payment.CardBrand, error) {
	var bdb cardBrandDB
	err := r.DB.WithContext(ctx).Where("id = ?", brandID.String()).First(&bdb).Error
	if err != nil {
		return nil, err
	}
	return toDomainCardBrand(&bdb)
}

func (r *PaymentRepository) ListBrands(ctx context.Context, onlyActive bool) ([]*payment.CardBrand, error) {
	q := query.New[cardBrandDB](r.DB, "card_brands").
		Context(ctx).
		Order("name ASC")
	if onlyActive {
		q = q.Where("is_active = ?", true)
	}
	return query.ExecuteAll(q, toDomainCardBrand)
}

func (r *PaymentRepository) CreateFeeRule(ctx context.Context, rule *payment.CardFeeRule) error {
	rdb := &cardFeeRuleDB{
		Id:            rule.Id.String(),
		CardBrandId:   rule.CardBrandId.String(),
		Installments:  rule.Installments,
		FeePercentage: rule.FeePercentage,
		FixedFee:      rule.FixedFee,
		IsActive:      rule.IsActive,
		CreatedAt:     rule.CreatedAt,
		UpdatedAt:     rule.UpdatedAt,
	}
	return r.DB.WithContext(ctx).Create(rdb).Error
}

func (r *PaymentRepository) DeleteFeeRule(ctx context.Context, ruleID ulid.ULID) error {
	return r.DB.WithContext(ctx).Where("id = ?", ruleID.String()).Delete(&cardFeeRuleDB{}).Error
}

func (r *PaymentRepository) GetFeeRuleByBrandAndInstallments(ctx context.Context, brandID ulid.ULID, installments int) (*payment.CardFeeRule, error) {
	rdb, err := query.New[cardFeeRuleDB](r.DB, "card_fee_rules").
		Context(ctx).
		Where("card_brand_id = ? AND installments = ?", brandID.String(), installments).
		First()
	if err != nil {
		return nil, err
	}
	return toDomainCardFeeRule(rdb)
}

func (r *PaymentRepository) ListFeeRulesByBrand(ctx context.Context, brandID ulid.ULID) ([]payment.CardFeeRule, error) {
	rules, err := query.ExecuteAll(
		query.New[cardFeeRuleDB](r.DB, "card_fee_rules").
			Context(ctx).
			Where("card_brand_id = ? AND is_active = ?", brandID.String(), true).
			Order("installments ASC"),
		toDomainCardFeeRule,
	)
	if err != nil {
		return nil, err
	}

	out := make([]payment.CardFeeRule, 0, len(rules))
	for _, rule := range rules {
		out = append(out, *rule)
	}
	return out, nil
}
