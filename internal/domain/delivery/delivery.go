package delivery

import (
	"time"

	"github.com/oklog/ulid/v2"
)

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusScheduled Status = "SCHEDULED"
	StatusInTransit Status = "IN_TRANSIT"
	StatusDelivered Status = "DELIVERED"
	StatusCanceled  Status = "CANCELED"
)

// transitions lista os destinos válidos de cada status. Estados terminais não
// têm saída.
var transitions = map[Status][]Status{
	StatusPending:   {StatusScheduled, StatusCanceled},
	StatusScheduled: {StatusInTransit, StatusPending, StatusCanceled},
	StatusInTransit: {StatusDelivered, StatusCanceled},
}

// CanTransition indica se a mudança de status é permitida pela máquina
// PENDING → SCHEDULED → IN_TRANSIT → DELIVERED, com cancelamento antes da
// entrega.
func (s Status) CanTransition(to Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == to {
			return true
		}
	}
	return false
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusScheduled, StatusInTransit, StatusDelivered, StatusCanceled:
		return true
	}
	return false
}

type Delivery struct {
	Id            ulid.ULID  `gorm:"type:varchar(26);primaryKey" json:"id"`
	SaleId        ulid.ULID  `gorm:"type:varchar(26);not null;index:idx_deliveries_sale" json:"saleId"`
	DriverId      *ulid.ULID `gorm:"type:varchar(26)" json:"driverId,omitempty"`
	Status        Status     `gorm:"type:varchar(12);not null;default:'PENDING';index:idx_deliveries_status" json:"status"`
	Address       string     `gorm:"type:varchar(255);not null" json:"address"`
	City          string     `gorm:"type:varchar(100)" json:"city"`
	ScheduledDate *time.Time `json:"scheduledDate,omitempty"`
	DeliveredAt   *time.Time `json:"deliveredAt,omitempty"`
	Notes         string     `gorm:"type:text" json:"notes"`
	CreatedAt     time.Time  `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime;not null" json:"updatedAt"`
}

func (Delivery) TableName() string {
	return "deliveries"
}
