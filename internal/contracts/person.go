package contracts

import (
	"Mobilia/internal/domain/person"
)

type CustomerCreateRequest struct {
	Name     string `json:"name" binding:"required,max=150"`
	Document string `json:"document" binding:"omitempty,max=20"`
	Email    string `json:"email" binding:"omitempty,email"`
	Phone    string `json:"phone" binding:"omitempty,max=20"`
	Address  string `json:"address" binding:"omitempty,max=255"`
	City     string `json:"city" binding:"omitempty,max=100"`
	Notes    string `json:"notes" binding:"omitempty,max=500"`
}

type CustomerUpdateRequest struct {
	Name     *string `json:"name" binding:"omitempty,max=150"`
	Document *string `json:"document" binding:"omitempty,max=20"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Phone    *string `json:"phone" binding:"omitempty,max=20"`
	Address  *string `json:"address" binding:"omitempty,max=255"`
	City     *string `json:"city" binding:"omitempty,max=100"`
	Notes    *string `json:"notes" binding:"omitempty,max=500"`
	IsActive *bool   `json:"is_active" binding:"omitempty"`
}

type SupplierCreateRequest struct {
	Name     string `json:"name" binding:"required,max=150"`
	Document string `json:"document" binding:"omitempty,max=20"`
	Email    string `json:"email" binding:"omitempty,email"`
	Phone    string `json:"phone" binding:"omitempty,max=20"`
}

type EmployeeCreateRequest struct {
	Name                 string  `json:"name" binding:"required,max=150"`
	Role                 string  `json:"role" binding:"required,oneof=SELLER DRIVER ASSEMBLER MANAGER"`
	CommissionPercentage float64 `json:"commission_percentage" binding:"omitempty,gte=0,lte=100"`
	Phone                string  `json:"phone" binding:"omitempty,max=20"`
}

type EmployeeUpdateRequest struct {
	Name                 *string  `json:"name" binding:"omitempty,max=150"`
	Role                 *string  `json:"role" binding:"omitempty,oneof=SELLER DRIVER ASSEMBLER MANAGER"`
	CommissionPercentage *float64 `json:"commission_percentage" binding:"omitempty,gte=0,lte=100"`
	IsActive             *bool    `json:"is_active" binding:"omitempty"`
}

type CustomerCreateResponse struct {
	Message  string           `json:"message"`
	Customer *person.Customer `json:"customer"`
}

type CustomerSingleResponse struct {
	Customer *person.Customer `json:"customer"`
}

type SupplierCreateResponse struct {
	Message  string           `json:"message"`
	Supplier *person.Supplier `json:"supplier"`
}

type SupplierSingleResponse struct {
	Supplier *person.Supplier `json:"supplier"`
}

type EmployeeCreateResponse struct {
	Message  string           `json:"message"`
	Employee *person.Employee `json:"employee"`
}

type EmployeeSingleResponse struct {
	Employee *person.Employee `json:"employee"`
}
