package sale_test

import (
	"context"
	"errors"
	"testing"

	"Mobilia/internal/domain/catalog"
	"Mobilia/internal/domain/finance"
	"Mobilia/internal/domain/payment"
	"Mobilia/internal/domain/person"
	"Mobilia/internal/domain/sale"
	appErrors "Mobilia/internal/errors"
	"Mobilia/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type fakeRepository struct {
	createFn     func(ctx context.Context, s *sale.Sale) error
	updateFn     func(ctx context.Context, s *sale.Sale) error
	getByIdFn    func(ctx context.Context, saleID ulid.ULID) (*sale.Sale, error)
	listFn       func(ctx context.Context, filter sale.Filter, pagination *pkg.PaginationParams) ([]*sale.Sale, int64, error)
	nextNumberFn func(ctx context.Context) (int64, error)
}

func (f *fakeRepository) Create(ctx context.Context, s *sale.Sale) error { return f.createFn(ctx, s) }
func (f *fakeRepository) Update(ctx context.Context, s *sale.Sale) error { return f.updateFn(ctx, s) }
func (f *fakeRepository) GetById(ctx context.Context, saleID ulid.ULID) (*sale.Sale, error) {
	return f.getByIdFn(ctx, saleID)
}
func (f *fakeRepository) List(ctx context.Context, filter sale.Filter, pagination *pkg.PaginationParams) ([]*sale.Sale, int64, error) {
	return f.listFn(ctx, filter, pagination)
}
func (f *fakeRepository) NextNumber(ctx context.Context) (int64, error) { return f.nextNumberFn(ctx) }

type fakeProducts struct {
	products   map[ulid.ULID]*catalog.Product
	decrements map[ulid.ULID]int
	increments map[ulid.ULID]int
}

func (f *fakeProducts) GetProductById(ctx context.Context, productID ulid.ULID) (*catalog.Product, error) {
	if product, ok := f.products[productID]; ok {
		copied := *product
		return &copied, nil
	}
	return nil, appErrors.ErrProductNotFound
}

func (f *fakeProducts) DecrementStock(ctx context.Context, productID ulid.ULID, quantity int) error {
	if f.decrements == nil {
		f.decrements = make(map[ulid.ULID]int)
	}
	f.decrements[productID] += quantity
	return nil
}

func (f *fakeProducts) IncrementStock(ctx context.Context, productID ulid.ULID, quantity int) error {
	if f.increments == nil {
		f.increments = make(map[ulid.ULID]int)
	}
	f.increments[productID] += quantity
	return nil
}

type fakePeople struct {
	customer *person.Customer
	employee *person.Employee
}

func (f *fakePeople) GetCustomerById(ctx context.Context, customerID ulid.ULID) (*person.Customer, error) {
	if f.customer != nil && f.customer.Id == customerID {
		return f.customer, nil
	}
	return nil, appErrors.ErrCustomerNotFound
}

func (f *fakePeople) GetEmployeeById(ctx context.Context, employeeID ulid.ULID) (*person.Employee, error) {
	if f.employee != nil && f.employee.Id == employeeID {
		return f.employee, nil
	}
	return nil, appErrors.ErrEmployeeNotFound
}

type fakePlans struct {
	method *payment.PaymentMethod
}

func (f *fakePlans) BuildPlanInput(ctx context.Context, req *payment.PlanRequest) (payment.PlanInput, error) {
	return payment.PlanInput{
		Method:       f.method,
		Installments: req.Installments,
		Amount:       req.Amount,
		FirstDueDate: req.FirstDueDate,
	}, nil
}

type fakeFinance struct {
	entries          []*finance.Entry
	commission       *finance.Commission
	canceledSale     *ulid.ULID
	commissionCancel *ulid.ULID
}

func (f *fakeFinance) CreateEntries(ctx context.Context, entries []*finance.Entry) error {
	f.entries = append(f.entries, entries...)
	return nil
}

func (f *fakeFinance) CreateCommission(ctx context.Context, commission *finance.Commission) error {
	f.commission = commission
	return nil
}

func (f *fakeFinance) CancelOpenEntriesBySale(ctx context.Context, saleID ulid.ULID) error {
	f.canceledSale = &saleID
	return nil
}

func (f *fakeFinance) CancelCommissionBySale(ctx context.Context, saleID ulid.ULID) error {
	f.commissionCancel = &saleID
	return nil
}

type fixture struct {
	service  *sale.Service
	repo     *fakeRepository
	products *fakeProducts
	people   *fakePeople
	finance  *fakeFinance
	customer *person.Customer
	seller   *person.Employee
	product  *catalog.Product
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	customer := &person.Customer{Id: pkg.GenerateULIDObject(), Name: "Maria Souza", IsActive: true}
	seller := &person.Employee{
		Id:                   pkg.GenerateULIDObject(),
		Name:                 "João Lima",
		Role:                 person.RoleSeller,
		CommissionPercentage: 2,
		IsActive:             true,
	}
	product := &catalog.Product{
		Id:    pkg.GenerateULIDObject(),
		Name:  "Sofá Retrátil 3 Lugares",
		Price: 500,
		Stock: 10,
	}

	repo := &fakeRepository{
		createFn:     func(ctx context.Context, s *sale.Sale) error { return nil },
		updateFn:     func(ctx context.Context, s *sale.Sale) error { return nil },
		nextNumberFn: func(ctx context.Context) (int64, error) { return 42, nil },
	}
	products := &fakeProducts{products: map[ulid.ULID]*catalog.Product{product.Id: product}}
	people := &fakePeople{customer: customer, employee: seller}
	plans := &fakePlans{method: &payment.PaymentMethod{
		Id:                 pkg.GenerateULIDObject(),
		Name:               "Boleto",
		Category:           payment.CategoryBankSlip,
		AllowsInstallments: true,
		IsActive:           true,
	}}
	financeWriter := &fakeFinance{}

	return &fixture{
		service:  sale.NewService(repo, products, people, plans, financeWriter),
		repo:     repo,
		products: products,
		people:   people,
		finance:  financeWriter,
		customer: customer,
		seller:   seller,
		product:  product,
	}
}

func TestCreateSale(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	var persisted *sale.Sale
	f.repo.createFn = func(ctx context.Context, s *sale.Sale) error {
		persisted = s
		return nil
	}

	created, err := f.service.CreateSale(context.Background(), &sale.CreateSaleRequest{
		CustomerId: f.customer.Id,
		SellerId:   f.seller.Id,
		Items: []sale.SaleItemRequest{
			{ProductId: f.product.Id, Quantity: 2},
		},
		Payments: []payment.PlanRequest{
			{Installments: 3, Amount: "1000", FirstDueDate: "2024-05-10"},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if created.Number != 42 {
		t.Fatalf("sale number = %d, want 42", created.Number)
	}
	if created.Total != 1000 || created.Subtotal != 1000 {
		t.Fatalf("total = %f, want 1000", created.Total)
	}
	if persisted == nil || len(persisted.Items) != 1 || len(persisted.Payments) != 1 {
		t.Fatalf("sale not persisted with items and payments: %+v", persisted)
	}

	if f.products.decrements[f.product.Id] != 2 {
		t.Fatalf("stock decrement = %d, want 2", f.products.decrements[f.product.Id])
	}

	if len(f.finance.entries) != 3 {
		t.Fatalf("expected 3 receivable entries, got %d", len(f.finance.entries))
	}
	for i, entry := range f.finance.entries {
		if entry.Kind != finance.KindReceivable {
			t.Fatalf("entry %d kind = %s", i, entry.Kind)
		}
		if entry.InstallmentNumber != i+1 || entry.InstallmentCount != 3 {
			t.Fatalf("entry %d index = %d/%d", i, entry.InstallmentNumber, entry.InstallmentCount)
		}
		if entry.SaleId == nil || *entry.SaleId != created.Id {
			t.Fatalf("entry %d missing sale back-reference", i)
		}
	}
	if f.finance.entries[0].Description != "Venda 42 - parcela 1/3" {
		t.Fatalf("entry description = %q", f.finance.entries[0].Description)
	}

	if f.finance.commission == nil {
		t.Fatal("commission not created")
	}
	if f.finance.commission.Amount != 20 {
		t.Fatalf("commission amount = %f, want 20", f.finance.commission.Amount)
	}
}

func TestCreateSaleRejectsUnbalancedLedger(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		amount string
	}{
		{name: "subfinanciada", amount: "900"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			_, err := f.service.CreateSale(context.Background(), &sale.CreateSaleRequest{
				CustomerId: f.customer.Id,
				SellerId:   f.seller.Id,
				Items:      []sale.SaleItemRequest{{ProductId: f.product.Id, Quantity: 2}},
				Payments: []payment.PlanRequest{
					{Installments: 1, Amount: tt.amount, FirstDueDate: "2024-05-10"},
				},
			})
			appErr, ok := appErrors.AsAppError(err)
			if !ok || appErr.Code != "VALIDATION_ERROR" {
				t.Fatalf("expected VALIDATION_ERROR, got %v", err)
			}
			if f.products.decrements != nil {
				t.Fatal("stock must not change on rejected sale")
			}
			if len(f.finance.entries) != 0 {
				t.Fatal("no entries may be created on rejected sale")
			}
		})
	}

	t.Run("pagamento acima do total", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.service.CreateSale(context.Background(), &sale.CreateSaleRequest{
			CustomerId: f.customer.Id,
			SellerId:   f.seller.Id,
			Items:      []sale.SaleItemRequest{{ProductId: f.product.Id, Quantity: 2}},
			Payments: []payment.PlanRequest{
				{Installments: 1, Amount: "1100", FirstDueDate: "2024-05-10"},
			},
		})
		appErr, ok := appErrors.AsAppError(err)
		if !ok || appErr.Code != "AMOUNT_EXCEEDS_REMAINING" {
			t.Fatalf("expected AMOUNT_EXCEEDS_REMAINING, got %v", err)
		}
	})
}

func TestCreateSaleValidation(t *testing.T) {
	t.Parallel()

	t.Run("cliente inexistente", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.service.CreateSale(context.Background(), &sale.CreateSaleRequest{
			CustomerId: pkg.GenerateULIDObject(),
			SellerId:   f.seller.Id,
			Items:      []sale.SaleItemRequest{{ProductId: f.product.Id, Quantity: 1}},
		})
		appErr, ok := appErrors.AsAppError(err)
		if !ok || appErr.Code != "CUSTOMER_NOT_FOUND" {
			t.Fatalf("expected CUSTOMER_NOT_FOUND, got %v", err)
		}
	})

	t.Run("sem itens", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.service.CreateSale(context.Background(), &sale.CreateSaleRequest{
			CustomerId: f.customer.Id,
			SellerId:   f.seller.Id,
		})
		appErr, ok := appErrors.AsAppError(err)
		if !ok || appErr.Code != "VALIDATION_ERROR" {
			t.Fatalf("expected VALIDATION_ERROR, got %v", err)
		}
	})

	t.Run("estoque insuficiente", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.service.CreateSale(context.Background(), &sale.CreateSaleRequest{
			CustomerId: f.customer.Id,
			SellerId:   f.seller.Id,
			Items:      []sale.SaleItemRequest{{ProductId: f.product.Id, Quantity: 11}},
		})
		appErr, ok := appErrors.AsAppError(err)
		if !ok || appErr.Code != "INSUFFICIENT_STOCK" {
			t.Fatalf("expected INSUFFICIENT_STOCK, got %v", err)
		}
	})
}

func TestCreateSaleSkipsCommissionWithoutPercentage(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.seller.CommissionPercentage = 0

	_, err := f.service.CreateSale(context.Background(), &sale.CreateSaleRequest{
		CustomerId: f.customer.Id,
		SellerId:   f.seller.Id,
		Items:      []sale.SaleItemRequest{{ProductId: f.product.Id, Quantity: 1}},
		Payments: []payment.PlanRequest{
			{Installments: 1, Amount: "500", FirstDueDate: "2024-05-10"},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if f.finance.commission != nil {
		t.Fatal("commission must not be created for zero percentage")
	}
}

func TestCancelSale(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	existing := &sale.Sale{
		Id:     pkg.GenerateULIDObject(),
		Number: 42,
		Status: sale.StatusCompleted,
		Items: []sale.SaleItem{
			{Id: pkg.GenerateULIDObject(), ProductId: f.product.Id, Quantity: 2},
		},
	}
	f.repo.getByIdFn = func(ctx context.Context, saleID ulid.ULID) (*sale.Sale, error) {
		if saleID == existing.Id {
			return existing, nil
		}
		return nil, errors.New("record not found")
	}

	if err := f.service.CancelSale(context.Background(), existing.Id); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if existing.Status != sale.StatusCanceled || existing.CanceledAt == nil {
		t.Fatalf("sale not canceled: %+v", existing)
	}
	if f.products.increments[f.product.Id] != 2 {
		t.Fatalf("stock not restored, increments = %v", f.products.increments)
	}
	if f.finance.canceledSale == nil || *f.finance.canceledSale != existing.Id {
		t.Fatal("open entries not canceled")
	}
	if f.finance.commissionCancel == nil || *f.finance.commissionCancel != existing.Id {
		t.Fatal("commission not canceled")
	}

	t.Run("cancelamento duplo", func(t *testing.T) {
		err := f.service.CancelSale(context.Background(), existing.Id)
		appErr, ok := appErrors.AsAppError(err)
		if !ok || appErr.Code != "VALIDATION_ERROR" {
			t.Fatalf("expected VALIDATION_ERROR, got %v", err)
		}
	})
}
