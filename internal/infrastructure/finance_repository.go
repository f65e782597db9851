package infrastructure

import (
	"context"
	"time"

	"Mobilia/internal/domain/finance"
	"Mobilia/internal/pkg"
	"Mobilia/internal/pkg/query"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type FinanceRepository struct {
	DB *gorm.DB
}

func NewFinanceRepository(db *gorm.DB) finance.Repository {
	return &FinanceRepository{DB: db}
}

type financeEntryDB struct {
	Id                string     `gorm:"type:varchar(26);primaryKey"`
	Kind              string     `gorm:"type:varchar(10);not null;index"`
	Status            string     `gorm:"type:varchar(10);not null;default:'OPEN';index"`
	Description       string     `gorm:"type:varchar(255);not null"`
	GrossAmount       float64    `gorm:"type:decimal(15,2);not null"`
	FeePercentage     float64    `gorm:"type:decimal(5,2);not null;default:0"`
	FeeAmount         float64    `gorm:"type:decimal(15,2);not null;default:0"`
	NetAmount         float64    `gorm:"type:decimal(15,2);not null"`
	DueDate           time.Time  `gorm:"not null;index"`
	PaidAt            *time.Time `gorm:"type:timestamp"`
	InstallmentNumber int        `gorm:"not null;default:1"`
	InstallmentCount  int        `gorm:"not null;default:1"`
	SaleId            *string    `gorm:"type:varchar(26);index"`
	PurchaseId        *string    `gorm:"type:varchar(26);index"`
	PaymentMethodId   *string    `gorm:"type:varchar(26)"`
	CreatedAt         time.Time  `gorm:"not null"`
	UpdatedAt         time.Time  `gorm:"not null"`
}

func (financeEntryDB) TableName() string {
	return "finance_entries"
}

type commissionDB struct {
	Id         string     `gorm:"type:varchar(26);primaryKey"`
	SaleId     string     `gorm:"type:varchar(26);index;not null"`
	EmployeeId string     `gorm:"type:varchar(26);index;not null"`
	Percentage float64    `gorm:"type:decimal(5,2);not null"`
	BaseAmount float64    `gorm:"type:decimal(15,2);not null"`
	Amount     float64    `gorm:"type:decimal(15,2);not null"`
	Status     string     `gorm:"type:varchar(10);not null;default:'OPEN'"`
	PaidAt     *time.Time `gorm:"type:timestamp"`
	CreatedAt  time.Time  `gorm:"not null"`
	UpdatedAt  time.Time  `gorm:"not null"`
}

func (commissionDB) TableName() string {
	return "commissions"
}

func toDomainEntry(edb *financeEntryDB) (*finance.Entry, error) {
	id, err := pkg.ParseULID(edb.Id)
	if err != nil {
		return nil, err
	}

	parseOptional := func(raw *string) *ulid.ULID {
		if raw == nil || *raw == "" {
			return nil
		}
		parsed, err := pkg.ParseULID(*raw)
		if err != nil {
			return nil
		}
		return &parsed
	}

	return &finance.Entry{
		Id:                id,
		Kind:              finance.EntryKind(edb.Kind),
		Status:            finance.EntryStatus(edb.Status),
		Description:       edb.Description,
		GrossAmount:       edb.GrossAmount,
		FeePercentage:     edb.FeePercentage,
		FeeAmount:         edb.FeeAmount,
		NetAmount:         edb.NetAmount,
		DueDate:           edb.DueDate,
		PaidAt:            edb.PaidAt,
		InstallmentNumber: edb.InstallmentNumber,
		InstallmentCount:  edb.InstallmentCount,
		SaleId:            parseOptional(edb.SaleId),
		PurchaseId:        parseOptional(edb.PurchaseId),
		PaymentMethodId:   parseOptional(edb.PaymentMethodId),
		CreatedAt:         edb.CreatedAt,
		UpdatedAt:         edb.UpdatedAt,
	}, nil
}

func toDBEntry(e *finance.Entry) *financeEntryDB {
	format := func(id *ulid.ULID) *string {
		if id == nil {
			return nil
		}
		s := id.String()
		return &s
	}

	return &financeEntryDB{
		Id:                e.Id.String(),
		Kind:              string(e.Kind),
		Status:            string(e.Status),
		Description:       e.Description,
		GrossAmount:       e.GrossAmount,
		FeePercentage:     e.FeePercentage,
		FeeAmount:         e.FeeAmount,
		NetAmount:         e.NetAmount,
		DueDate:           e.DueDate,
		PaidAt:            e.PaidAt,
		InstallmentNumber: e.InstallmentNumber,
		InstallmentCount:  e.InstallmentCount,
		SaleId:            format(e.SaleId),
		PurchaseId:        format(e.PurchaseId),
		PaymentMethodId:   format(e.PaymentMethodId),
		CreatedAt:         e.CreatedAt,
		UpdatedAt:         e.UpdatedAt,
	}
}

func toDomainCommission(cdb *commissionDB) (*finance.Commission, error) {
	id, err := pkg.ParseULID(cdb.Id)
	if err != nil {
		return nil, err
	}
	saleID, err := pkg.ParseULID(cdb.SaleId)
	if err != nil {
		return nil, err
	}
	employeeID, err := pkg.ParseULID(cdb.EmployeeId)
	if err != nil {
		return nil, err
	}

	return &finance.Commission{
		Id:         id,
		SaleId:     saleID,
		EmployeeId: employeeID,
		Percentage: cdb.Percentage,
		BaseAmount: cdb.BaseAmount,
		Amount:     cdb.Amount,
		Status:     finance.CommissionStatus(cdb.Status),
		PaidAt:     cdb.PaidAt,
		CreatedAt:  cdb.CreatedAt,
		UpdatedAt:  cdb.UpdatedAt,
	}, nil
}

func toDBCommission(c *finance.Commission) *commissionDB {
	return &commissionDB{
		Id:         c.Id.String(),
		SaleId:     c.SaleId.String(),
		EmployeeId: c.EmployeeId.String(),
		Percentage: c.Percentage,
		BaseAmount: c.BaseAmount,
		Amount:     c.Amount,
		Status:     string(c.Status),
		PaidAt:     c.PaidAt,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

func (r *FinanceRepository) CreateEntries(ctx context.Context, entries []*finance.Entry) error {
	rows := make([]*financeEntryDB, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, toDBEntry(entry))
	}
	return r.DB.WithContext(ctx).Create(rows).Error
}

func (r *FinanceRepository) UpdateEntry(ctx context.Context, entry *finance.Entry) error {
	edb := toDBEntry(entry)
	return r.DB.WithContext(ctx).Model(&financeEntryDB{}).
		Where("id = ?", edb.Id).
		Select("status", "paid_at", "updated_at").
		Updates(edb).Error
}

func (r *FinanceRepository) GetEntryById(ctx context.Context, entryID ulid.ULID) (*finance.Entry, error) {
	var edb financeEntryDB
	err := r.DB.WithContext(ctx).Where("id = ?", entryID.String()).First(&edb).Error
	if err != nil {
		return nil, err
	}
	return toDomainEntry(&edb)
}

func (r *FinanceRepository) ListEntries(ctx context.Context, filter finance.EntryFilter, pagination *pkg.PaginationParams) ([]*finance.Entry, int64, error) {
	baseQuery := r.DB.WithContext(ctx).Table("finance_entries")
	if filter.Kind != "" {
		baseQuery = baseQuery.Where("kind = ?", string(filter.Kind))
	}
	if filter.Status != "" {
		baseQuery = baseQuery.Where("status = ?", string(filter.Status))
	}
	if filter.DueBefore != nil {
		baseQuery = baseQuery.Where("due_date <= ?", *filter.DueBefore)
	}
	if filter.DueAfter != nil {
		baseQuery = baseQuery.Where("due_date >= ?", *filter.DueAfter)
	}
	return pkg.Paginate(baseQuery, pagination, "due_date ASC", toDomainEntry)
}

func (r *FinanceRepository) ListEntriesBySale(ctx context.Context, saleID ulid.ULID) ([]*finance.Entry, error) {
	return query.ExecuteAll(
		query.New[financeEntryDB](r.DB, "finance_entries").
			Context(ctx).
			Where("sale_id = ?", saleID.String()).
			Order("installment_number ASC"),
		toDomainEntry,
	)
}

func (r *FinanceRepository) ListEntriesByPurchase(ctx context.Context, purchaseID ulid.ULID) ([]*finance.Entry, error) {
	return query.ExecuteAll(
		query.New[financeEntryDB](r.DB, "finance_entries").
			Context(ctx).
			Where("purchase_id = ?", purchaseID.String()).
			Order("installment_number ASC"),
		toDomainEntry,
	)
}

func (r *FinanceRepository) CreateCommission(ctx context.Context, commission *finance.Commission) error {
	return r.DB.WithContext(ctx).Create(toDBCommission(commission)).Error
}

func (r *FinanceRepository) UpdateCommission(ctx context.Context, commission *finance.Commission) error {
	cdb := toDBCommission(commission)
	return r.DB.WithContext(ctx).Model(&commissionDB{}).
		Where("id = ?", cdb.Id).
		Select("status", "paid_at", "updated_at").
		Updates(cdb).Error
}

func (r *FinanceRepository) GetCommissionBySale(ctx context.Context, saleID ulid.ULID) (*finance.Commission, error) {
	var cdb commissionDB
	err := r.DB.WithContext(ctx).Where("sale_id = ?", saleID.String()).First(&cdb).Error
	if err != nil {
		return nil, err
	}
	return toDomainCommission(&cdb)
}

func (r *FinanceRepository) ListCommissionsByEmployee(ctx context.Context, employeeID ulid.ULID, pagination *pkg.PaginationParams) ([]*finance.Commission, int64, error) {
	baseQuery := r.DB.WithContext(ctx).Table("commissions").
		Where("employee_id = ?", employeeID.String())
	return pkg.Paginate(baseQuery, pagination, "created_at DESC", toDomainCommission)
}
