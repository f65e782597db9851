package payment

import (
	"time"

	"github.com/oklog/ulid/v2"
)

type CardBrand struct {
	Id        ulid.ULID `gorm:"type:varchar(26);primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(50);not null" json:"name"`
	IsActive  bool      `gorm:"not null;default:true;index:idx_card_brands_active" json:"isActive"`
	CreatedAt time.Time `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;not null" json:"updatedAt"`
}

func (CardBrand) TableName() string {
	return "card_brands"
}

// CardFeeRule é a taxa da operadora para uma bandeira em um número exato de
// parcelas. Única por bandeira + parcelas.
type CardFeeRule struct {
	Id            ulid.ULID `gorm:"type:varchar(26);primaryKey" json:"id"`
	CardBrandId   ulid.ULID `gorm:"type:varchar(26);index:idx_card_fee_rules_brand;not null" json:"cardBrandId"`
	Installments  int       `gorm:"not null;check:installments >= 1" json:"installments"`
	FeePercentage float64   `gorm:"type:decimal(5,2);not null;default:0" json:"feePercentage"`
	FixedFee      float64   `gorm:"type:decimal(15,2);not null;default:0" json:"fixedFee"`
	IsActive      bool      `gorm:"not null;default:true" json:"isActive"`
	CreatedAt     time.Time `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime;not null" json:"updatedAt"`
}

func (CardFeeRule) TableName() string {
	return "card_fee_rules"
}
