package person_test

import (
	"context"
	"testing"

	"Mobilia/internal/domain/person"
	appErrors "Mobilia/internal/errors"
	"Mobilia/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type fakeRepository struct {
	createCustomerFn func(ctx context.Context, customer *person.Customer) error
	updateCustomerFn func(ctx context.Context, customer *person.Customer) error
	getCustomerFn    func(ctx context.Context, customerID ulid.ULID) (*person.Customer, error)
	listCustomersFn  func(ctx context.Context, search string, pagination *pkg.PaginationParams) ([]*person.Customer, int64, error)
	createSupplierFn func(ctx context.Context, supplier *person.Supplier) error
	updateSupplierFn func(ctx context.Context, supplier *person.Supplier) error
	getSupplierFn    func(ctx context.Context, supplierID ulid.ULID) (*person.Supplier, error)
	listSuppliersFn  func(ctx context.Context, search string, pagination *pkg.PaginationParams) ([]*person.Supplier, int64, error)
	createEmployeeFn func(ctx context.Context, employee *person.Employee) error
	updateEmployeeFn func(ctx context.Context, employee *person.Employee) error
	getEmployeeFn    func(ctx context.Context, employeeID ulid.ULID) (*person.Employee, error)
	listEmployeesFn  func(ctx context.Context, role person.EmployeeRole, pagination *pkg.PaginationParams) ([]*person.Employee, int64, error)
}

func (f *fakeRepository) CreateCustomer(ctx context.Context, customer *person.Customer) error {
	return f.createCustomerFn(ctx, customer)
}
func (f *fakeRepository) UpdateCustomer(ctx context.Context, customer *person.Customer) error {
	return f.updateCustomerFn(ctx, customer)
}
func (f *fakeRepository) GetCustomerById(ctx context.Context, customerID ulid.ULID) (*person.Customer, error) {
	return f.getCustomerFn(ctx, customerID)
}
func (f *fakeRepository) ListCustomers(ctx context.Context, search string, pagination *pkg.PaginationParams) ([]*person.Customer, int64, error) {
	return f.listCustomersFn(ctx, search, pagination)
}
func (f *fakeRepository) CreateSupplier(ctx context.Context, supplier *person.Supplier) error {
	return f.createSupplierFn(ctx, supplier)
}
func (f *fakeRepository) UpdateSupplier(ctx context.Context, supplier *person.Supplier) error {
	return f.updateSupplierFn(ctx, supplier)
}
func (f *fakeRepository) GetSupplierById(ctx context.Context, supplierID ulid.ULID) (*person.Supplier, error) {
	return f.getSupplierFn(ctx, supplierID)
}
func (f *fakeRepository) ListSuppliers(ctx context.Context, search string, pagination *pkg.PaginationParams) ([]*person.Supplier, int64, error) {
	return f.listSuppliersFn(ctx, search, pagination)
}
func (f *fakeRepository) CreateEmployee(ctx context.Context, employee *person.Employee) error {
	return f.createEmployeeFn(ctx, employee)
}
func (f *fakeRepository) UpdateEmployee(ctx context.Context, employee *person.Employee) error {
	return f.updateEmployeeFn(ctx, employee)
}
func (f *fakeRepository) GetEmployeeById(ctx context.Context, employeeID ulid.ULID) (*person.Employee, error) {
	return f.getEmployeeFn(ctx, employeeID)
}
func (f *fakeRepository) ListEmployees(ctx context.Context, role person.EmployeeRole, pagination *pkg.PaginationParams) ([]*person.Employee, int64, error) {
	return f.listEmployeesFn(ctx, role, pagination)
}

func TestCreateCustomer(t *testing.T) {
	t.Parallel()

	t.Run("nome vazio", func(t *testing.T) {
		service := person.NewService(&fakeRepository{})
		_, err := service.CreateCustomer(context.Background(), &person.CreateCustomerRequest{Name: "   "})
		appErr, ok := appErrors.AsAppError(err)
		if !ok || appErr.Code != "VALIDATION_ERROR" {
			t.Fatalf("expected VALIDATION_ERROR, got %v", err)
		}
	})

	t.Run("sucesso", func(t *testing.T) {
		var saved *person.Customer
		repo := &fakeRepository{
			createCustomerFn: func(ctx context.Context, customer *person.Customer) error {
				saved = customer
				return nil
			},
		}
		service := person.NewService(repo)

		customer, err := service.CreateCustomer(context.Background(), &person.CreateCustomerRequest{
			Name:     "  Maria Souza  ",
			Document: " 123.456.789-00 ",
			City:     "Campinas",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if customer.Name != "Maria Souza" {
			t.Errorf("expected trimmed name, got %q", customer.Name)
		}
		if customer.Document != "123.456.789-00" {
			t.Errorf("expected trimmed document, got %q", customer.Document)
		}
		if !customer.IsActive {
			t.Error("expected new customer to be active")
		}
		if saved == nil || pkg.IsEmptyULID(saved.Id) {
			t.Fatal("expected customer persisted with generated id")
		}
	})
}

func TestCreateEmployee(t *testing.T) {
	t.Parallel()

	repo := &fakeRepository{
		createEmployeeFn: func(ctx context.Context, employee *person.Employee) error { return nil },
	}
	service := person.NewService(repo)

	tests := []struct {
		name     string
		req      *person.CreateEmployeeRequest
		wantCode string
	}{
		{
			name:     "nome vazio",
			req:      &person.CreateEmployeeRequest{Name: "", Role: person.RoleSeller},
			wantCode: "VALIDATION_ERROR",
		},
		{
			name:     "cargo invalido",
			req:      &person.CreateEmployeeRequest{Name: "João", Role: "ESTAGIARIO"},
			wantCode: "VALIDATION_ERROR",
		},
		{
			name:     "comissao negativa",
			req:      &person.CreateEmployeeRequest{Name: "João", Role: person.RoleSeller, CommissionPercentage: -1},
			wantCode: "VALIDATION_ERROR",
		},
		{
			name:     "comissao acima de 100",
			req:      &person.CreateEmployeeRequest{Name: "João", Role: person.RoleSeller, CommissionPercentage: 101},
			wantCode: "VALIDATION_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.CreateEmployee(context.Background(), tt.req)
			appErr, ok := appErrors.AsAppError(err)
			if !ok || appErr.Code != tt.wantCode {
				t.Fatalf("expected %s, got %v", tt.wantCode, err)
			}
		})
	}

	t.Run("sucesso", func(t *testing.T) {
		employee, err := service.CreateEmployee(context.Background(), &person.CreateEmployeeRequest{
			Name:                 "João Lima",
			Role:                 person.RoleSeller,
			CommissionPercentage: 2.5,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if employee.Role != person.RoleSeller {
			t.Errorf("expected role SELLER, got %s", employee.Role)
		}
		if employee.CommissionPercentage != 2.5 {
			t.Errorf("expected commission 2.5, got %v", employee.CommissionPercentage)
		}
		if !employee.IsActive {
			t.Error("expected new employee to be active")
		}
	})
}

func TestUpdateEmployee(t *testing.T) {
	t.Parallel()

	existing := &person.Employee{
		Id:                   pkg.GenerateULIDObject(),
		Name:                 "João Lima",
		Role:                 person.RoleSeller,
		CommissionPercentage: 2,
		IsActive:             true,
	}

	newRepo := func() *fakeRepository {
		copied := *existing
		return &fakeRepository{
			getEmployeeFn: func(ctx context.Context, employeeID ulid.ULID) (*person.Employee, error) {
				if employeeID == copied.Id {
					return &copied, nil
				}
				return nil, appErrors.ErrNotFound
			},
			updateEmployeeFn: func(ctx context.Context, employee *person.Employee) error { return nil },
		}
	}

	t.Run("funcionario inexistente", func(t *testing.T) {
		service := person.NewService(newRepo())
		err := service.UpdateEmployee(context.Background(), pkg.GenerateULIDObject(), &person.UpdateEmployeeRequest{})
		appErr, ok := appErrors.AsAppError(err)
		if !ok || appErr.Code != "EMPLOYEE_NOT_FOUND" {
			t.Fatalf("expected EMPLOYEE_NOT_FOUND, got %v", err)
		}
	})

	t.Run("cargo invalido", func(t *testing.T) {
		service := person.NewService(newRepo())
		role := person.EmployeeRole("ESTAGIARIO")
		err := service.UpdateEmployee(context.Background(), existing.Id, &person.UpdateEmployeeRequest{Role: &role})
		appErr, ok := appErrors.AsAppError(err)
		if !ok || appErr.Code != "VALIDATION_ERROR" {
			t.Fatalf("expected VALIDATION_ERROR, got %v", err)
		}
	})

	t.Run("atualiza comissao", func(t *testing.T) {
		var saved *person.Employee
		repo := newRepo()
		repo.updateEmployeeFn = func(ctx context.Context, employee *person.Employee) error {
			saved = employee
			return nil
		}
		service := person.NewService(repo)

		commission := 5.0
		if err := service.UpdateEmployee(context.Background(), existing.Id, &person.UpdateEmployeeRequest{
			CommissionPercentage: &commission,
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if saved == nil || saved.CommissionPercentage != 5 {
			t.Fatalf("expected commission updated to 5, got %+v", saved)
		}
		if saved.Name != "João Lima" {
			t.Errorf("expected untouched name, got %q", saved.Name)
		}
	})
}

func TestListEmployeesRejectsInvalidRole(t *testing.T) {
	t.Parallel()

	service := person.NewService(&fakeRepository{
		listEmployeesFn: func(ctx context.Context, role person.EmployeeRole, pagination *pkg.PaginationParams) ([]*person.Employee, int64, error) {
			return nil, 0, nil
		},
	})

	_, _, err := service.ListEmployees(context.Background(), "ESTAGIARIO", nil)
	appErr, ok := appErrors.AsAppError(err)
	if !ok || appErr.Code != "VALIDATION_ERROR" {
		t.Fatalf("expected VALIDATION_ERROR, got %v", err)
	}
}
