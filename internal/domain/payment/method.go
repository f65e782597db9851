package payment

import (
	"time"

	"github.com/oklog/ulid/v2"
)

type MethodCategory string

const (
	CategoryCash       MethodCategory = "CASH"
	CategoryCreditCard MethodCategory = "CREDIT_CARD"
	CategoryDebitCard  MethodCategory = "DEBIT_CARD"
	CategoryPix        MethodCategory = "PIX"
	CategoryBankSlip   MethodCategory = "BANK_SLIP"
	CategoryOther      MethodCategory = "OTHER"
)

func (c MethodCategory) IsValid() bool {
	switch c {
	case CategoryCash, CategoryCreditCard, CategoryDebitCard, CategoryPix, CategoryBankSlip, CategoryOther:
		return true
	}
	return false
}

type PaymentMethod struct {
	Id                 ulid.ULID      `gorm:"type:varchar(26);primaryKey" json:"id"`
	Name               string         `gorm:"type:varchar(100);not null" json:"name"`
	Category           MethodCategory `gorm:"type:varchar(20);not null;index:idx_payment_methods_category" json:"category"`
	AllowsInstallments bool           `gorm:"not null;default:false" json:"allowsInstallments"`
	HasFees            bool           `gorm:"not null;default:false" json:"hasFees"`
	MaxInstallments    int            `gorm:"not null;default:0" json:"maxInstallments"`
	IsActive           bool           `gorm:"not null;default:true;index:idx_payment_methods_active" json:"isActive"`
	CreatedAt          time.Time      `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt          time.Time      `gorm:"autoUpdateTime;not null" json:"updatedAt"`
}

func (PaymentMethod) TableName() string {
	return "payment_methods"
}

// NeedsCardBrand indica se a forma de pagamento exige seleção de bandeira.
func (m *PaymentMethod) NeedsCardBrand() bool {
	return m.Category == CategoryCreditCard || m.Category == CategoryDebitCard
}

// InstallmentCeiling devolve o teto de parcelas da forma de pagamento,
// limitado ao teto global do planejador.
func (m *PaymentMethod) InstallmentCeiling() int {
	if !m.AllowsInstallments {
		return 1
	}
	if m.MaxInstallments > 0 && m.MaxInstallments < MaxInstallments {
		return m.MaxInstallments
	}
	return MaxInstallments
}
