package person

import (
	"context"

	"Mobilia/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type Repository interface {
	CreateCustomer(ctx context.Context, customer *Customer) error
	UpdateCustomer(ctx context.Context, customer *Customer) error
	GetCustomerById(ctx context.Context, customerID ulid.ULID) (*Customer, error)
	ListCustomers(ctx context.Context, search string, pagination *pkg.PaginationParams) ([]*Customer, int64, error)

	CreateSupplier(ctx context.Context, supplier *Supplier) error
	UpdateSupplier(ctx context.Context, supplier *Supplier) error
	GetSupplierById(ctx context.Context, supplierID ulid.ULID) (*Supplier, error)
	ListSuppliers(ctx context.Context, search string, pagination *pkg.PaginationParams) ([]*Supplier, int64, error)

	CreateEmployee(ctx context.Context, employee *Employee) error
	UpdateEmployee(ctx context.Context, employee *Employee) error
	GetEmployeeById(ctx context.Context, employeeID ulid.ULID) (*Employee, error)
	ListEmployees(ctx context.Context, role EmployeeRole, pagination *pkg.PaginationParams) ([]*Employee, int64, error)
}
