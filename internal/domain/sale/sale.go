package sale

import (
	"time"

	"github.com/oklog/ulid/v2"
)

type Status string

const (
	StatusCompleted Status = "COMPLETED"
	StatusCanceled  Status = "CANCELED"
)

type Sale struct {
	Id         ulid.ULID  `gorm:"type:varchar(26);primaryKey" json:"id"`
	Number     int64      `gorm:"not null;uniqueIndex:idx_sales_number" json:"number"`
	CustomerId ulid.ULID  `gorm:"type:varchar(26);not null;index:idx_sales_customer" json:"customerId"`
	SellerId   ulid.ULID  `gorm:"type:varchar(26);not null;index:idx_sales_seller" json:"sellerId"`
	Status     Status     `gorm:"type:varchar(10);not null;default:'COMPLETED'" json:"status"`
	Subtotal   float64    `gorm:"type:decimal(15,2);not null" json:"subtotal"`
	Discount   float64    `gorm:"type:decimal(15,2);not null;default:0" json:"discount"`
	Total      float64    `gorm:"type:decimal(15,2);not null" json:"total"`
	Notes      string     `gorm:"type:text" json:"notes"`
	SaleDate   time.Time  `gorm:"not null;index:idx_sales_date" json:"saleDate"`
	CanceledAt *time.Time `json:"canceledAt,omitempty"`
	CreatedAt  time.Time  `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt  time.Time  `gorm:"autoUpdateTime;not null" json:"updatedAt"`

	Items    []SaleItem    `gorm:"foreignKey:SaleId" json:"items"`
	Payments []SalePayment `gorm:"foreignKey:SaleId" json:"payments"`
}

func (Sale) TableName() string {
	return "sales"
}

type SaleItem struct {
	Id        ulid.ULID `gorm:"type:varchar(26);primaryKey" json:"id"`
	SaleId    ulid.ULID `gorm:"type:varchar(26);not null;index:idx_sale_items_sale" json:"saleId"`
	ProductId ulid.ULID `gorm:"type:varchar(26);not null" json:"productId"`
	Name      string    `gorm:"type:varchar(150);not null" json:"name"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	UnitPrice float64   `gorm:"type:decimal(15,2);not null" json:"unitPrice"`
	Total     float64   `gorm:"type:decimal(15,2);not null" json:"total"`
}

func (SaleItem) TableName() string {
	return "sale_items"
}

// SalePayment é a fotografia de um plano do ledger no momento do fechamento;
// as parcelas em si viram lançamentos financeiros.
type SalePayment struct {
	Id              ulid.ULID  `gorm:"type:varchar(26);primaryKey" json:"id"`
	SaleId          ulid.ULID  `gorm:"type:varchar(26);not null;index:idx_sale_payments_sale" json:"saleId"`
	PaymentMethodId ulid.ULID  `gorm:"type:varchar(26);not null" json:"paymentMethodId"`
	MethodName      string     `gorm:"type:varchar(100);not null" json:"methodName"`
	CardBrandId     *ulid.ULID `gorm:"type:varchar(26)" json:"cardBrandId,omitempty"`
	Installments    int        `gorm:"not null" json:"installments"`
	Amount          float64    `gorm:"type:decimal(15,2);not null" json:"amount"`
	FirstDueDate    time.Time  `gorm:"not null" json:"firstDueDate"`
}

func (SalePayment) TableName() string {
	return "sale_payments"
}
