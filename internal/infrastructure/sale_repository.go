package infrastructure

import (
	"context"
	"time"

	"Mobilia/internal/domain/sale"
	"Mobilia/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type SaleRepository struct {
	DB *gorm.DB
}

func NewSaleRepository(db *gorm.DB) sale.Repository {
	return &SaleRepository{DB: db}
}

type saleDB struct {
	Id         string     `gorm:"type:varchar(26);primaryKey"`
	Number     int64      `gorm:"not null;uniqueIndex"`
	CustomerId string     `gorm:"type:varchar(26);index;not null"`
	SellerId   string     `gorm:"type:varchar(26);index;not null"`
	Status     string     `gorm:"type:varchar(10);not null;default:'COMPLETED'"`
	Subtotal   float64    `gorm:"type:decimal(15,2);not null"`
	Discount   float64    `gorm:"type:decimal(15,2);not null;default:0"`
	Total      float64    `gorm:"type:decimal(15,2);not null"`
	Notes      string     `gorm:"type:text"`
	SaleDate   time.Time  `gorm:"not null;index"`
	CanceledAt *time.Time `gorm:"type:timestamp"`
	CreatedAt  time.Time  `gorm:"not null"`
	UpdatedAt  time.Time  `gorm:"not null"`
}

func (saleDB) TableName() string {
	return "sales"
}

type saleItemDB struct {
	Id        string  `gorm:"type:varchar(26);primaryKey"`
	SaleId    string  `gorm:"type:varchar(26);index;not null"`
	ProductId string  `gorm:"type:varchar(26);not null"`
	Name      string  `gorm:"type:varchar(150);not null"`
	Quantity  int     `gorm:"not null"`
	UnitPrice float64 `gorm:"type:decimal(15,2);not null"`
	Total     float64 `gorm:"type:decimal(15,2);not null"`
}

func (saleItemDB) TableName() string {
	return "sale_items"
}

type salePaymentDB struct {
	Id              string    `gorm:"type:varchar(26);primaryKey"`
	SaleId          string    `gorm:"type:varchar(26);index;not null"`
	PaymentMethodId string    `gorm:"type:varchar(26);not null"`
	MethodName      string    `gorm:"type:varchar(100);not null"`
	CardBrandId     *string   `gorm:"type:varchar(26)"`
	Installments    int       `gorm:"not null"`
	Amount          float64   `gorm:"type:decimal(15,2);not null"`
	FirstDueDate    time.Time `gorm:"not null"`
}

func (salePaymentDB) TableName() string {
	return "sale_payments"
}

func toDomainSale(sdb *saleDB) (*sale.Sale, error) {
	id, err := pkg.ParseULID(sdb.Id)
	if err != nil {
		return nil, err
	}
	customerID, err := pkg.ParseULID(sdb.CustomerId)
	if err != nil {
		return nil, err
	}
	sellerID, err := pkg.ParseULID(sdb.SellerId)
	if err != nil {
		return nil, err
	}

	return &sale.Sale{
		Id:         id,
		Number:     sdb.Number,
		CustomerId: customerID,
		SellerId:   sellerID,
		Status:     sale.Status(sdb.Status),
		Subtotal:   sdb.Subtotal,
		Discount:   sdb.Discount,
		Total:      sdb.Total,
		Notes:      sdb.Notes,
		SaleDate:   sdb.SaleDate,
		CanceledAt: sdb.CanceledAt,
		CreatedAt:  sdb.CreatedAt,
		UpdatedAt:  sdb.UpdatedAt,
	}, nil
}

func toDomainSaleItem(idb *saleItemDB) (*sale.SaleItem, error) {
	id, err := pkg.ParseULID(idb.Id)
	if err != nil {
		return nil, err
	}
	saleID, err := pkg.ParseULID(idb.SaleId)
	if err != nil {
		return nil, err
	}
	productID, err := pkg.ParseULID(idb.ProductId)
	if err != nil {
		return nil, err
	}

	return &sale.SaleItem{
		Id:        id,
		SaleId:    saleID,
		ProductId: productID,
		Name:      idb.Name,
		Quantity:  idb.Quantity,
		UnitPrice: idb.UnitPrice,
		Total:     idb.Total,
	}, nil
}

func toDomainSalePayment(pdb *salePaymentDB) (*sale.SalePayment, error) {
	id, err := pkg.ParseULID(pdb.Id)
	if err != nil {
		return nil, err
	}
	saleID, err := pkg.ParseULID(pdb.SaleId)
	if err != nil {
		return nil, err
	}
	methodID, err := pkg.ParseULID(pdb.PaymentMethodId)
	if err != nil {
		return nil, err
	}

	var brandID *ulid.ULID
	if pdb.CardBrandId != nil && *pdb.CardBrandId != "" {
		parsed, err := pkg.ParseULID(*pdb.CardBrandId)
		if err == nil {
			brandID = &parsed
		}
	}

	return &sale.SalePayment{
		Id:              id,
		SaleId:          saleID,
		PaymentMethodId: methodID,
		MethodName:      pdb.MethodName,
		CardBrandId:     brandID,
		Installments:    pdb.Installments,
		Amount:          pdb.Amount,
		FirstDueDate:    pdb.FirstDueDate,
	}, nil
}

func (r *SaleRepository) Create(ctx context.Context, s *sale.Sale) error {
	sdb := &saleDB{
		Id:         s.Id.String(),
		Number:     s.Number,
		CustomerId: s.CustomerId.String(),
		SellerId:   s.SellerId.String(),
		Status:     string(s.Status),
		Subtotal:   s.Subtotal,
		Discount:   s.Discount,
		Total:      s.Total,
		Notes:      s.Notes,
		SaleDate:   s.SaleDate,
		CanceledAt: s.CanceledAt,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}

	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(sdb).Error; err != nil {
			return err
		}

		for _, item := range s.Items {
			idb := &saleItemDB{
				Id:        item.Id.String(),
				SaleId:    item.SaleId.String(),
				ProductId: item.ProductId.String(),
				Name:      item.Name,
				Quantity:  item.Quantity,
				UnitPrice: item.UnitPrice,
				Total:     item.Total,
			}
			if err := tx.Create(idb).Error; err != nil {
				return err
			}
		}

		for _, p := range s.Payments {
			var brandID *string
			if p.CardBrandId != nil {
				s := p.CardBrandId.String()
				brandID = &s
			}
			pdb := &salePaymentDB{
				Id:              p.Id.String(),
				SaleId:          p.SaleId.String(),
				PaymentMethodId: p.PaymentMethodId.String(),
				MethodName:      p.MethodName,
				CardBrandId:     brandID,
				Installments:    p.Installments,
				Amount:          p.Amount,
				FirstDueDate:    p.FirstDueDate,
			}
			if err := tx.Create(pdb).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *SaleRepository) Update(ctx context.Context, s *sale.Sale) error {
	return r.DB.WithContext(ctx).Model(&saleDB{}).
		Where("id = ?", s.Id.String()).
		Select("status", "canceled_at", "notes", "updated_at").
		Updates(&saleDB{
			Status:     string(s.Status),
			CanceledAt: s.CanceledAt,
			Notes:      s.Notes,
			UpdatedAt:  s.UpdatedAt,
		}).Error
}

func (r *SaleRepository) GetById(ctx context.Context, saleID ulid.ULID) (*sale.Sale, error) {
	var sdb saleDB
	err := r.DB.WithContext(ctx).Where("id = ?", saleID.String()).First(&sdb).Error
	if err != nil {
		return nil, err
	}

	result, err := toDomainSale(&sdb)
	if err != nil {
		return nil, err
	}

	var items []saleItemDB
	if err := r.DB.WithContext(ctx).Where("sale_id = ?", sdb.Id).Find(&items).Error; err != nil {
		return nil, err
	}
	for i := range items {
		item, err := toDomainSaleItem(&items[i])
		if err != nil {
			return nil, err
		}
		result.Items = append(result.Items, *item)
	}

	var payments []salePaymentDB
	if err := r.DB.WithContext(ctx).Where("sale_id = ?", sdb.Id).Find(&payments).Error; err != nil {
		return nil, err
	}
	for i := range payments {
		p, err := toDomainSalePayment(&payments[i])
		if err != nil {
			return nil, err
		}
		result.Payments = append(result.Payments, *p)
	}

	return result, nil
}

func (r *SaleRepository) List(ctx context.Context, filter sale.Filter, pagination *pkg.PaginationParams) ([]*sale.Sale, int64, error) {
	baseQuery := r.DB.WithContext(ctx).Table("sales")
	if filter.CustomerId != nil {
		baseQuery = baseQuery.Where("customer_id = ?", filter.CustomerId.String())
	}
	if filter.SellerId != nil {
		baseQuery = baseQuery.Where("seller_id = ?", filter.SellerId.String())
	}
	if filter.Status != "" {
		baseQuery = baseQuery.Where("status = ?", string(filter.Status))
	}
	if filter.From != nil {
		baseQuery = baseQuery.Where("sale_date >= ?", *filter.From)
	}
	if filter.To != nil {
		baseQuery = baseQuery.Where("sale_date <= ?", *filter.To)
	}
	return pkg.Paginate(baseQuery, pagination, "number DESC", toDomainSale)
}

func (r *SaleRepository) NextNumber(ctx context.Context) (int64, error) {
	var max int64
	err := r.DB.WithContext(ctx).Model(&saleDB{}).
		Select("COALESCE(MAX(number), 0)").
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	return max + 1, nil
}
