package infrastructure

import (
	"context"
	"time"

	"Mobilia/internal/domain/delivery"
	"Mobilia/internal/pkg"
	"Mobilia/internal/pkg/query"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type DeliveryRepository struct {
	DB *gorm.DB
}

func NewDeliveryRepository(db *gorm.DB) delivery.Repository {
	return &DeliveryRepository{DB: db}
}

type deliveryDB struct {
	Id            string     `gorm:"type:varchar(26);primaryKey"`
	SaleId        string     `gorm:"type:varchar(26);index;not null"`
	DriverId      *string    `gorm:"type:varchar(26)"`
	Status        string     `gorm:"type:varchar(12);not null;default:'PENDING'"`
	Address       string     `gorm:"type:varchar(255);not null"`
	City          string     `gorm:"type:varchar(100)"`
	ScheduledDate *time.Time `gorm:"type:timestamp"`
	DeliveredAt   *time.Time `gorm:"type:timestamp"`
	Notes         string     `gorm:"type:text"`
	CreatedAt     time.Time  `gorm:"not null"`
	UpdatedAt     time.Time  `gorm:"not null"`
}

func (deliveryDB) TableName() string {
	return "deliveries"
}

func toDomainDelivery(ddb *deliveryDB) (*delivery.Delivery, error) {
	id, err := pkg.ParseULID(ddb.Id)
	if err != nil {
		return nil, err
	}
	saleID, err := pkg.ParseULID(ddb.SaleId)
	if err != nil {
		return nil, err
	}

	var driverID *ulid.ULID
	if ddb.DriverId != nil && *ddb.DriverId != "" {
		parsed, err := pkg.ParseULID(*ddb.DriverId)
		if err == nil {
			driverID = &parsed
		}
	}

	return &delivery.Delivery{
		Id:            id,
		SaleId:        saleID,
		DriverId:      driverID,
		Status:        delivery.Status(ddb.Status),
		Address:       ddb.Address,
		City:          ddb.City,
		ScheduledDate: ddb.ScheduledDate,
		DeliveredAt:   ddb.DeliveredAt,
		Notes:         ddb.Notes,
		CreatedAt:     ddb.CreatedAt,
		UpdatedAt:     ddb.UpdatedAt,
	}, nil
}

func toDBDelivery(d *delivery.Delivery) *deliveryDB {
	var driverID *string
	if d.DriverId != nil {
		s := d.DriverId.String()
		driverID = &s
	}

	return &deliveryDB{
		Id:            d.Id.String(),
		SaleId:        d.SaleId.String(),
		DriverId:      driverID,
		Status:        string(d.Status),
		Address:       d.Address,
		City:          d.City,
		ScheduledDate: d.ScheduledDate,
		DeliveredAt:   d.DeliveredAt,
		Notes:         d.Notes,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

func (r *DeliveryRepository) Create(ctx context.Context, d *delivery.Delivery) error {
	return r.DB.WithContext(ctx).Create(toDBDelivery(d)).Error
}

func (r *DeliveryRepository) Update(ctx context.Context, d *delivery.Delivery) error {
	ddb := toDBDelivery(d)
	return r.DB.WithContext(ctx).Model(&deliveryDB{}).
		Where("id = ?", ddb.Id).
		Select("driver_id", "status", "scheduled_date", "delivered_at", "notes", "updated_at").
		Updates(ddb).Error
}

func (r *DeliveryRepository) GetById(ctx context.Context, deliveryID ulid.ULID) (*delivery.Delivery, error) {
	var ddb deliveryDB
	err := r.DB.WithContext(ctx).Where("id = ?", deliveryID.String()).First(&ddb).Error
	if err != nil {
		return nil, err
	}
	return toDomainDelivery(&ddb)
}

func (r *DeliveryRepository) List(ctx context.Context, status delivery.Status, pagination *pkg.PaginationParams) ([]*delivery.Delivery, int64, error) {
	baseQuery := r.DB.WithContext(ctx).Table("deliveries")
	if status != "" {
		baseQuery = baseQuery.Where("status = ?", string(status))
	}
	return pkg.Paginate(baseQuery, pagination, "created_at DESC", toDomainDelivery)
}

func (r *DeliveryRepository) ListBySale(ctx context.Context, saleID ulid.ULID) ([]*delivery.Delivery, error) {
	return query.ExecuteAll(
		query.New[deliveryDB](r.DB, "deliveries").
			Context(ctx).
			Where("sale_id = ?", saleID.String()).
			Order("created_at ASC"),
		toDomainDelivery,
	)
}
