package person

import (
	"time"

	"github.com/oklog/ulid/v2"
)

type Customer struct {
	Id        ulid.ULID `gorm:"type:varchar(26);primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(150);not null" json:"name"`
	Document  string    `gorm:"type:varchar(20);index:idx_customers_document" json:"document"`
	Email     string    `gorm:"type:varchar(150)" json:"email"`
	Phone     string    `gorm:"type:varchar(20)" json:"phone"`
	Address   string    `gorm:"type:varchar(255)" json:"address"`
	City      string    `gorm:"type:varchar(100)" json:"city"`
	Notes     string    `gorm:"type:text" json:"notes"`
	IsActive  bool      `gorm:"not null;default:true" json:"isActive"`
	CreatedAt time.Time `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;not null" json:"updatedAt"`
}

func (Customer) TableName() string {
	return "customers"
}

type Supplier struct {
	Id        ulid.ULID `gorm:"type:varchar(26);primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(150);not null" json:"name"`
	Document  string    `gorm:"type:varchar(20);index:idx_suppliers_document" json:"document"`
	Email     string    `gorm:"type:varchar(150)" json:"email"`
	Phone     string    `gorm:"type:varchar(20)" json:"phone"`
	IsActive  bool      `gorm:"not null;default:true" json:"isActive"`
	CreatedAt time.Time `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;not null" json:"updatedAt"`
}

func (Supplier) TableName() string {
	return "suppliers"
}

type EmployeeRole string

const (
	RoleSeller    EmployeeRole = "SELLER"
	RoleDriver    EmployeeRole = "DRIVER"
	RoleAssembler EmployeeRole = "ASSEMBLER"
	RoleManager   EmployeeRole = "MANAGER"
)

func (r EmployeeRole) IsValid() bool {
	switch r {
	case RoleSeller, RoleDriver, RoleAssembler, RoleManager:
		return true
	}
	return false
}

// Employee carrega o percentual de comissão usado no fechamento de vendas;
// zero significa sem comissão.
type Employee struct {
	Id                   ulid.ULID    `gorm:"type:varchar(26);primaryKey" json:"id"`
	Name                 string       `gorm:"type:varchar(150);not null" json:"name"`
	Role                 EmployeeRole `gorm:"type:varchar(20);not null;index:idx_employees_role" json:"role"`
	CommissionPercentage float64      `gorm:"type:decimal(5,2);not null;default:0" json:"commissionPercentage"`
	Phone                string       `gorm:"type:varchar(20)" json:"phone"`
	IsActive             bool         `gorm:"not null;default:true" json:"isActive"`
	CreatedAt            time.Time    `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt            time.Time    `gorm:"autoUpdateTime;not null" json:"updatedAt"`
}

func (Employee) TableName() string {
	return "employees"
}
