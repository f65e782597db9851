package infrastructure

import (
	"context"
	"time"

	"Mobilia/internal/domain/purchase"
	"Mobilia/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type PurchaseRepository struct {
	DB *gorm.DB
}

func NewPurchaseRepository(db *gorm.DB) purchase.Repository {
	return &PurchaseRepository{DB: db}
}

type purchaseDB struct {
	Id           string     `gorm:"type:varchar(26);primaryKey"`
	SupplierId   string     `gorm:"type:varchar(26);index;not null"`
	Status       string     `gorm:"type:varchar(10);not null;default:'RECEIVED'"`
	Total        float64    `gorm:"type:decimal(15,2);not null"`
	Installments int        `gorm:"not null;default:1"`
	FirstDueDate time.Time  `gorm:"not null"`
	InvoiceRef   string     `gorm:"type:varchar(50)"`
	Notes        string     `gorm:"type:text"`
	PurchaseDate time.Time  `gorm:"not null;index"`
	CanceledAt   *time.Time `gorm:"type:timestamp"`
	CreatedAt    time.Time  `gorm:"not null"`
	UpdatedAt    time.Time  `gorm:"not null"`
}

func (purchaseDB) TableName() string {
	return "purchases"
}

type purchaseItemDB struct {
	Id         string  `gorm:"type:varchar(26);primaryKey"`
	PurchaseId string  `gorm:"type:varchar(26);index;not null"`
	ProductId  string  `gorm:"type:varchar(26);not null"`
	Name       string  `gorm:"type:varchar(150);not null"`
	Quantity   int     `gorm:"not null"`
	UnitCost   float64 `gorm:"type:decimal(15,2);not null"`
	Total      float64 `gorm:"type:decimal(15,2);not null"`
}

func (purchaseItemDB) TableName() string {
	return "purchase_items"
}

func toDomainPurchase(pdb *purchaseDB) (*purchase.Purchase, error) {
	id, err := pkg.ParseULID(pdb.Id)
	if err != nil {
		return nil, err
	}
	supplierID, err := pkg.ParseULID(pdb.SupplierId)
	if err != nil {
		return nil, err
	}

	return &purchase.Purchase{
		Id:           id,
		SupplierId:   supplierID,
		Status:       purchase.Status(pdb.Status),
		Total:        pdb.Total,
		Installments: pdb.Installments,
		FirstDueDate: pdb.FirstDueDate,
		InvoiceRef:   pdb.InvoiceRef,
		Notes:        pdb.Notes,
		PurchaseDate: pdb.PurchaseDate,
		CanceledAt:   pdb.CanceledAt,
		CreatedAt:    pdb.CreatedAt,
		UpdatedAt:    pdb.UpdatedAt,
	}, nil
}

func toDomainPurchaseItem(idb *purchaseItemDB) (*purchase.PurchaseItem, error) {
	id, err := pkg.ParseULID(idb.Id)
	if err != nil {
		return nil, err
	}
	purchaseID, err := pkg.ParseULID(idb.PurchaseId)
	if err != nil {
		return nil, err
	}
	productID, err := pkg.ParseULID(idb.ProductId)
	if err != nil {
		return nil, err
	}

	return &purchase.PurchaseItem{
		Id:         id,
		PurchaseId: purchaseID,
		ProductId:  productID,
		Name:       idb.Name,
		Quantity:   idb.Quantity,
		UnitCost:   idb.UnitCost,
		Total:      idb.Total,
	}, nil
}

func (r *PurchaseRepository) Create(ctx context.Context, p *purchase.Purchase) error {
	pdb := &purchaseDB{
		Id:           p.Id.String(),
		SupplierId:   p.SupplierId.String(),
		Status:       string(p.Status),
		Total:        p.Total,
		Installments: p.Installments,
		FirstDueDate: p.FirstDueDate,
		InvoiceRef:   p.InvoiceRef,
		Notes:        p.Notes,
		PurchaseDate: p.PurchaseDate,
		CanceledAt:   p.CanceledAt,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}

	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(pdb).Error; err != nil {
			return err
		}

		for _, item := range p.Items {
			idb := &purchaseItemDB{
				Id:         item.Id.String(),
				PurchaseId: item.PurchaseId.String(),
				ProductId:  item.ProductId.String(),
				Name:       item.Name,
				Quantity:   item.Quantity,
				UnitCost:   item.UnitCost,
				Total:      item.Total,
			}
			if err := tx.Create(idb).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *PurchaseRepository) Update(ctx context.Context, p *purchase.Purchase) error {
	return r.DB.WithContext(ctx).Model(&purchaseDB{}).
		Where("id = ?", p.Id.String()).
		Select("status", "canceled_at", "notes", "updated_at").
		Updates(&purchaseDB{
			Status:     string(p.Status),
			CanceledAt: p.CanceledAt,
			Notes:      p.Notes,
			UpdatedAt:  p.UpdatedAt,
		}).Error
}

func (r *PurchaseRepository) GetById(ctx context.Context, purchaseID ulid.ULID) (*purchase.Purchase, error) {
	var pdb purchaseDB
	err := r.DB.WithContext(ctx).Where("id = ?", purchaseID.String()).First(&pdb).Error
	if err != nil {
		return nil, err
	}

	result, err := toDomainPurchase(&pdb)
	if err != nil {
		return nil, err
	}

	var items []purchaseItemDB
	if err := r.DB.WithContext(ctx).Where("purchase_id = ?", pdb.Id).Find(&items).Error; err != nil {
		return nil, err
	}
	for i := range items {
		item, err := toDomainPurchaseItem(&items[i])
		if err != nil {
			return nil, err
		}
		result.Items = append(result.Items, *item)
	}

	return result, nil
}

func (r *PurchaseRepository) List(ctx context.Context, filter purchase.Filter, pagination *pkg.PaginationParams) ([]*purchase.Purchase, int64, error) {
	baseQuery := r.DB.WithContext(ctx).Table("purchases")
	if filter.SupplierId != nil {
		baseQuery = baseQuery.Where("supplier_id = ?", filter.SupplierId.String())
	}
	if filter.Status != "" {
		baseQuery = baseQuery.Where("status = ?", string(filter.Status))
	}
	if filter.From != nil {
		baseQuery = baseQuery.Where("purchase_date >= ?", *filter.From)
	}
	if filter.To != nil {
		baseQuery = baseQuery.Where("purchase_date <= ?", *filter.To)
	}
	return pkg.Paginate(baseQuery, pagination, "purchase_date DESC", toDomainPurchase)
}
