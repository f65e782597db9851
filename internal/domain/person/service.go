package person

import (
	"context"
	"strings"
	"time"

	appErrors "Mobilia/internal/errors"
	"Mobilia/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type Service struct {
	Repository Repository
}

func NewService(repo Repository) *Service {
	return &Service{Repository: repo}
}

func (s *Service) CreateCustomer(ctx context.Context, req *CreateCustomerRequest) (*Customer, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, appErrors.NewValidationError("name", "é obrigatório")
	}

	now := time.Now()
	customer := &Customer{
		Id:        pkg.GenerateULIDObject(),
		Name:      strings.TrimSpace(req.Name),
		Document:  strings.TrimSpace(req.Document),
		Email:     strings.TrimSpace(req.Email),
		Phone:     strings.TrimSpace(req.Phone),
		Address:   strings.TrimSpace(req.Address),
		City:      strings.TrimSpace(req.City),
		Notes:     req.Notes,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.Repository.CreateCustomer(ctx, customer); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	return customer, nil
}

func (s *Service) UpdateCustomer(ctx context.Context, customerID ulid.ULID, req *UpdateCustomerRequest) error {
	customer, err := s.GetCustomerById(ctx, customerID)
	if err != nil {
		return err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return appErrors.NewValidationError("name", "não pode ser vazio")
		}
		customer.Name = name
	}

	if req.Document != nil {
		customer.Document = strings.TrimSpace(*req.Document)
	}

	if req.Email != nil {
		customer.Email = strings.TrimSpace(*req.Email)
	}

	if req.Phone != nil {
		customer.Phone = strings.TrimSpace(*req.Phone)
	}

	if req.Address != nil {
		customer.Address = strings.TrimSpace(*req.Address)
	}

	if req.City != nil {
		customer.City = strings.TrimSpace(*req.City)
	}

	if req.Notes != nil {
		customer.Notes = *req.Notes
	}

	if req.IsActive != nil {
		customer.IsActive = *req.IsActive
	}

	customer.UpdatedAt = time.Now()

	return s.Repository.UpdateCustomer(ctx, customer)
}

func (s *Service) GetCustomerById(ctx context.Context, customerID ulid.ULID) (*Customer, error) {
	customer, err := s.Repository.GetCustomerById(ctx, customerID)
	if err != nil {
		return nil, appErrors.ErrCustomerNotFound.WithError(err)
	}
	return customer, nil
}

func (s *Service) ListCustomers(ctx context.Context, search string, pagination *pkg.PaginationParams) ([]*Customer, int64, error) {
	return s.Repository.ListCustomers(ctx, strings.TrimSpace(search), pagination)
}

func (s *Service) CreateSupplier(ctx context.Context, req *CreateSupplierRequest) (*Supplier, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, appErrors.NewValidationError("name", "é obrigatório")
	}

	now := time.Now()
	supplier := &Supplier{
		Id:        pkg.GenerateULIDObject(),
		Name:      strings.TrimSpace(req.Name),
		Document:  strings.TrimSpace(req.Document),
		Email:     strings.TrimSpace(req.Email),
		Phone:     strings.TrimSpace(req.Phone),
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.Repository.CreateSupplier(ctx, supplier); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	return supplier, nil
}

func (s *Service) GetSupplierById(ctx context.Context, supplierID ulid.ULID) (*Supplier, error) {
	supplier, err := s.Repository.GetSupplierById(ctx, supplierID)
	if err != nil {
		return nil, appErrors.ErrSupplierNotFound.WithError(err)
	}
	return supplier, nil
}

func (s *Service) ListSuppliers(ctx context.Context, search string, pagination *pkg.PaginationParams) ([]*Supplier, int64, error) {
	return s.Repository.ListSuppliers(ctx, strings.TrimSpace(search), pagination)
}

func (s *Service) CreateEmployee(ctx context.Context, req *CreateEmployeeRequest) (*Employee, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, appErrors.NewValidationError("name", "é obrigatório")
	}

	if !req.Role.IsValid() {
		return nil, appErrors.NewValidationError("role", "cargo inválido")
	}

	if req.CommissionPercentage < 0 || req.CommissionPercentage > 100 {
		return nil, appErrors.NewValidationError("commission_percentage", "deve estar entre 0 e 100")
	}

	now := time.Now()
	employee := &Employee{
		Id:                   pkg.GenerateULIDObject(),
		Name:                 strings.TrimSpace(req.Name),
		Role:                 req.Role,
		CommissionPercentage: req.CommissionPercentage,
		Phone:                strings.TrimSpace(req.Phone),
		IsActive:             true,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	if err := s.Repository.CreateEmployee(ctx, employee); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	return employee, nil
}

func (s *Service) UpdateEmployee(ctx context.Context, employeeID ulid.ULID, req *UpdateEmployeeRequest) error {
	employee, err := s.GetEmployeeById(ctx, employeeID)
	if err != nil {
		return err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return appErrors.NewValidationError("name", "não pode ser vazio")
		}
		employee.Name = name
	}

	if req.Role != nil {
		if !req.Role.IsValid() {
			return appErrors.NewValidationError("role", "cargo inválido")
		}
		employee.Role = *req.Role
	}

	if req.CommissionPercentage != nil {
		if *req.CommissionPercentage < 0 || *req.CommissionPercentage > 100 {
			return appErrors.NewValidationError("commission_percentage", "deve estar entre 0 e 100")
		}
		employee.CommissionPercentage = *req.CommissionPercentage
	}

	if req.IsActive != nil {
		employee.IsActive = *req.IsActive
	}

	employee.UpdatedAt = time.Now()

	return s.Repository.UpdateEmployee(ctx, employee)
}

func (s *Service) GetEmployeeById(ctx context.Context, employeeID ulid.ULID) (*Employee, error) {
	employee, err := s.Repository.GetEmployeeById(ctx, employeeID)
	if err != nil {
		return nil, appErrors.ErrEmployeeNotFound.WithError(err)
	}
	return employee, nil
}

func (s *Service) ListEmployees(ctx context.Context, role EmployeeRole, pagination *pkg.PaginationParams) ([]*Employee, int64, error) {
	if role != "" && !role.IsValid() {
		return nil, 0, appErrors.NewValidationError("role", "cargo inválido")
	}
	return s.Repository.ListEmployees(ctx, role, pagination)
}

type CreateCustomerRequest struct {
	Name     string
	Document string
	Email    string
	Phone    string
	Address  string
	City     string
	Notes    string
}

type UpdateCustomerRequest struct {
	Name     *string
	Document *string
	Email    *string
	Phone    *string
	Address  *string
	City     *string
	Notes    *string
	IsActive *bool
}

type CreateSupplierRequest struct {
	Name     string
	Document string
	Email    string
	Phone    string
}

type CreateEmployeeRequest struct {
	Name                 string
	Role                 EmployeeRole
	CommissionPercentage float64
	Phone                string
}

type UpdateEmployeeRequest struct {
	Name                 *string
	Role                 *EmployeeRole
	CommissionPercentage *float64
	IsActive             *bool
}
