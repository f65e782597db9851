package contracts

import (
	"time"

	"Mobilia/internal/domain/delivery"
)

type DeliveryCreateRequest struct {
	SaleID  string `json:"sale_id" binding:"required"`
	Address string `json:"address" binding:"required,max=255"`
	City    string `json:"city" binding:"omitempty,max=100"`
	Notes   string `json:"notes" binding:"omitempty,max=500"`
}

type DeliveryScheduleRequest struct {
	ScheduledDate time.Time `json:"scheduled_date" binding:"required"`
	DriverID      string    `json:"driver_id" binding:"omitempty"`
}

type DeliveryStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=PENDING SCHEDULED IN_TRANSIT DELIVERED CANCELED"`
}

type DeliveryCreateResponse struct {
	Message  string             `json:"message"`
	Delivery *delivery.Delivery `json:"delivery"`
}

type DeliverySingleResponse struct {
	Delivery *delivery.Delivery `json:"delivery"`
}

type DeliveryListResponse struct {
	Deliveries []*delivery.Delivery `json:"deliveries"`
}
