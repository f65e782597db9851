package finance

import (
	"time"

	"github.com/oklog/ulid/v2"
)

type EntryKind string

const (
	KindReceivable EntryKind = "RECEIVABLE"
	KindPayable    EntryKind = "PAYABLE"
)

func (k EntryKind) IsValid() bool {
	return k == KindReceivable || k == KindPayable
}

type EntryStatus string

const (
	StatusOpen     EntryStatus = "OPEN"
	StatusPaid     EntryStatus = "PAID"
	StatusCanceled EntryStatus = "CANCELED"
)

// Entry é um lançamento financeiro derivado de uma parcela de venda ou de
// compra. Os valores de taxa vêm congelados do plano que o originou.
type Entry struct {
	Id                ulid.ULID   `gorm:"type:varchar(26);primaryKey" json:"id"`
	Kind              EntryKind   `gorm:"type:varchar(10);not null;index:idx_finance_entries_kind" json:"kind"`
	Status            EntryStatus `gorm:"type:varchar(10);not null;default:'OPEN';index:idx_finance_entries_status" json:"status"`
	Description       string      `gorm:"type:varchar(255);not null" json:"description"`
	GrossAmount       float64     `gorm:"type:decimal(15,2);not null" json:"grossAmount"`
	FeePercentage     float64     `gorm:"type:decimal(5,2);not null;default:0" json:"feePercentage"`
	FeeAmount         float64     `gorm:"type:decimal(15,2);not null;default:0" json:"feeAmount"`
	NetAmount         float64     `gorm:"type:decimal(15,2);not null" json:"netAmount"`
	DueDate           time.Time   `gorm:"not null;index:idx_finance_entries_due" json:"dueDate"`
	PaidAt            *time.Time  `json:"paidAt,omitempty"`
	InstallmentNumber int         `gorm:"not null;default:1" json:"installmentNumber"`
	InstallmentCount  int         `gorm:"not null;default:1" json:"installmentCount"`
	SaleId            *ulid.ULID  `gorm:"type:varchar(26);index:idx_finance_entries_sale" json:"saleId,omitempty"`
	PurchaseId        *ulid.ULID  `gorm:"type:varchar(26);index:idx_finance_entries_purchase" json:"purchaseId,omitempty"`
	PaymentMethodId   *ulid.ULID  `gorm:"type:varchar(26)" json:"paymentMethodId,omitempty"`
	CreatedAt         time.Time   `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt         time.Time   `gorm:"autoUpdateTime;not null" json:"updatedAt"`
}

func (Entry) TableName() string {
	return "finance_entries"
}

type CommissionStatus string

const (
	CommissionOpen     CommissionStatus = "OPEN"
	CommissionPaid     CommissionStatus = "PAID"
	CommissionCanceled CommissionStatus = "CANCELED"
)

// Commission é a comissão de um vendedor sobre uma venda fechada.
type Commission struct {
	Id         ulid.ULID        `gorm:"type:varchar(26);primaryKey" json:"id"`
	SaleId     ulid.ULID        `gorm:"type:varchar(26);not null;index:idx_commissions_sale" json:"saleId"`
	EmployeeId ulid.ULID        `gorm:"type:varchar(26);not null;index:idx_commissions_employee" json:"employeeId"`
	Percentage float64          `gorm:"type:decimal(5,2);not null" json:"percentage"`
	BaseAmount float64          `gorm:"type:decimal(15,2);not null" json:"baseAmount"`
	Amount     float64          `gorm:"type:decimal(15,2);not null" json:"amount"`
	Status     CommissionStatus `gorm:"type:varchar(10);not null;default:'OPEN'" json:"status"`
	PaidAt     *time.Time       `json:"paidAt,omitempty"`
	CreatedAt  time.Time        `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt  time.Time        `gorm:"autoUpdateTime;not null" json:"updatedAt"`
}

func (Commission) TableName() string {
	return "commissions"
}
