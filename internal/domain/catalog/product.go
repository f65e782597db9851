package catalog

import (
	"time"

	"github.com/oklog/ulid/v2"
)

type Product struct {
	Id               ulid.ULID  `gorm:"type:varchar(26);primaryKey" json:"id"`
	Name             string     `gorm:"type:varchar(150);not null" json:"name"`
	Description      string     `gorm:"type:text" json:"description"`
	Sku              string     `gorm:"type:varchar(50);index:idx_products_sku" json:"sku"`
	CategoryId       *ulid.ULID `gorm:"type:varchar(26);index:idx_products_category" json:"categoryId,omitempty"`
	Price            float64    `gorm:"type:decimal(15,2);not null" json:"price"`
	Cost             float64    `gorm:"type:decimal(15,2);not null;default:0" json:"cost"`
	Stock            int        `gorm:"not null;default:0" json:"stock"`
	RequiresAssembly bool       `gorm:"not null;default:false" json:"requiresAssembly"`
	IsActive         bool       `gorm:"not null;default:true;index:idx_products_active" json:"isActive"`
	CreatedAt        time.Time  `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt        time.Time  `gorm:"autoUpdateTime;not null" json:"updatedAt"`
}

func (Product) TableName() string {
	return "products"
}
