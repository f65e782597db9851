package purchase

import (
	"time"

	"github.com/oklog/ulid/v2"
)

type Status string

const (
	StatusReceived Status = "RECEIVED"
	StatusCanceled Status = "CANCELED"
)

type Purchase struct {
	Id           ulid.ULID  `gorm:"type:varchar(26);primaryKey" json:"id"`
	SupplierId   ulid.ULID  `gorm:"type:varchar(26);not null;index:idx_purchases_supplier" json:"supplierId"`
	Status       Status     `gorm:"type:varchar(10);not null;default:'RECEIVED'" json:"status"`
	Total        float64    `gorm:"type:decimal(15,2);not null" json:"total"`
	Installments int        `gorm:"not null;default:1" json:"installments"`
	FirstDueDate time.Time  `gorm:"not null" json:"firstDueDate"`
	InvoiceRef   string     `gorm:"type:varchar(50)" json:"invoiceRef"`
	Notes        string     `gorm:"type:text" json:"notes"`
	PurchaseDate time.Time  `gorm:"not null;index:idx_purchases_date" json:"purchaseDate"`
	CanceledAt   *time.Time `json:"canceledAt,omitempty"`
	CreatedAt    time.Time  `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime;not null" json:"updatedAt"`

	Items []PurchaseItem `gorm:"foreignKey:PurchaseId" json:"items"`
}

func (Purchase) TableName() string {
	return "purchases"
}

type PurchaseItem struct {
	Id         ulid.ULID `gorm:"type:varchar(26);primaryKey" json:"id"`
	PurchaseId ulid.ULID `gorm:"type:varchar(26);not null;index:idx_purchase_items_purchase" json:"purchaseId"`
	ProductId  ulid.ULID `gorm:"type:varchar(26);not null" json:"productId"`
	Name       string    `gorm:"type:varchar(150);not null" json:"name"`
	Quantity   int       `gorm:"not null" json:"quantity"`
	UnitCost   float64   `gorm:"type:decimal(15,2);not null" json:"unitCost"`
	Total      float64   `gorm:"type:decimal(15,2);not null" json:"total"`
}

func (PurchaseItem) TableName() string {
	return "purchase_items"
}
