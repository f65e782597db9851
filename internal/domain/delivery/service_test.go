package delivery_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"Mobilia/internal/domain/delivery"
	"Mobilia/internal/domain/person"
	"Mobilia/internal/domain/sale"
	appErrors "Mobilia/internal/errors"
	"Mobilia/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type fakeRepository struct {
	createFn     func(ctx context.Context, d *delivery.Delivery) error
	updateFn     func(ctx context.Context, d *delivery.Delivery) error
	getByIdFn    func(ctx context.Context, deliveryID ulid.ULID) (*delivery.Delivery, error)
	listFn       func(ctx context.Context, status delivery.Status, pagination *pkg.PaginationParams) ([]*delivery.Delivery, int64, error)
	listBySaleFn func(ctx context.Context, saleID ulid.ULID) ([]*delivery.Delivery, error)
}

func (f *fakeRepository) Create(ctx context.Context, d *delivery.Delivery) error {
	return f.createFn(ctx, d)
}

func (f *fakeRepository) Update(ctx context.Context, d *delivery.Delivery) error {
	return f.updateFn(ctx, d)
}

func (f *fakeRepository) GetById(ctx context.Context, deliveryID ulid.ULID) (*delivery.Delivery, error) {
	return f.getByIdFn(ctx, deliveryID)
}

func (f *fakeRepository) List(ctx context.Context, status delivery.Status, pagination *pkg.PaginationParams) ([]*delivery.Delivery, int64, error) {
	return f.listFn(ctx, status, pagination)
}

func (f *fakeRepository) ListBySale(ctx context.Context, saleID ulid.ULID) ([]*delivery.Delivery, error) {
	return f.listBySaleFn(ctx, saleID)
}

type fakeSales struct {
	sale *sale.Sale
}

func (f *fakeSales) GetById(ctx context.Context, saleID ulid.ULID) (*sale.Sale, error) {
	if f.sale != nil && f.sale.Id == saleID {
		return f.sale, nil
	}
	return nil, appErrors.ErrSaleNotFound
}

type fakeDrivers struct {
	driver *person.Employee
}

func (f *fakeDrivers) GetEmployeeById(ctx context.Context, employeeID ulid.ULID) (*person.Employee, error) {
	if f.driver != nil && f.driver.Id == employeeID {
		return f.driver, nil
	}
	return nil, appErrors.ErrEmployeeNotFound
}

func TestStatusTransitions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		from    delivery.Status
		to      delivery.Status
		allowed bool
	}{
		{delivery.StatusPending, delivery.StatusScheduled, true},
		{delivery.StatusPending, delivery.StatusCanceled, true},
		{delivery.StatusPending, delivery.StatusInTransit, false},
		{delivery.StatusPending, delivery.StatusDelivered, false},
		{delivery.StatusScheduled, delivery.StatusInTransit, true},
		{delivery.StatusScheduled, delivery.StatusPending, true},
		{delivery.StatusScheduled, delivery.StatusDelivered, false},
		{delivery.StatusInTransit, delivery.StatusDelivered, true},
		{delivery.StatusInTransit, delivery.StatusCanceled, true},
		{delivery.StatusInTransit, delivery.StatusScheduled, false},
		{delivery.StatusDelivered, delivery.StatusCanceled, false},
		{delivery.StatusDelivered, delivery.StatusPending, false},
		{delivery.StatusCanceled, delivery.StatusPending, false},
	}

	for _, tt := range tests {
		if got := tt.from.CanTransition(tt.to); got != tt.allowed {
			t.Errorf("%s -> %s: got %v, want %v", tt.from, tt.to, got, tt.allowed)
		}
	}
}

func TestChangeStatus(t *testing.T) {
	t.Parallel()

	newService := func(current delivery.Status) (*delivery.Service, *delivery.Delivery) {
		existing := &delivery.Delivery{
			Id:      pkg.GenerateULIDObject(),
			SaleId:  pkg.GenerateULIDObject(),
			Status:  current,
			Address: "Rua das Acácias, 120",
		}
		repo := &fakeRepository{
			getByIdFn: func(ctx context.Context, deliveryID ulid.ULID) (*delivery.Delivery, error) {
				if deliveryID == existing.Id {
					return existing, nil
				}
				return nil, errors.New("record not found")
			},
			updateFn: func(ctx context.Context, d *delivery.Delivery) error { return nil },
		}
		return delivery.NewService(repo, &fakeSales{}, &fakeDrivers{}), existing
	}

	t.Run("entrega concluida recebe carimbo", func(t *testing.T) {
		service, existing := newService(delivery.StatusInTransit)
		got, err := service.ChangeStatus(context.Background(), existing.Id, delivery.StatusDelivered)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != delivery.StatusDelivered || got.DeliveredAt == nil {
			t.Fatalf("delivery not stamped: %+v", got)
		}
	})

	t.Run("transicao invalida", func(t *testing.T) {
		service, existing := newService(delivery.StatusPending)
		_, err := service.ChangeStatus(context.Background(), existing.Id, delivery.StatusDelivered)
		appErr, ok := appErrors.AsAppError(err)
		if !ok || appErr.Code != "VALIDATION_ERROR" {
			t.Fatalf("expected VALIDATION_ERROR, got %v", err)
		}
	})

	t.Run("status desconhecido", func(t *testing.T) {
		service, existing := newService(delivery.StatusPending)
		_, err := service.ChangeStatus(context.Background(), existing.Id, delivery.Status("LOST"))
		appErr, ok := appErrors.AsAppError(err)
		if !ok || appErr.Code != "VALIDATION_ERROR" {
			t.Fatalf("expected VALIDATION_ERROR, got %v", err)
		}
	})
}

func TestSchedule(t *testing.T) {
	t.Parallel()

	saleRecord := &sale.Sale{Id: pkg.GenerateULIDObject(), Number: 7}
	driver := &person.Employee{Id: pkg.GenerateULIDObject(), Name: "Carlos", Role: person.RoleDriver}

	existing := &delivery.Delivery{
		Id:      pkg.GenerateULIDObject(),
		SaleId:  saleRecord.Id,
		Status:  delivery.StatusPending,
		Address: "Av. Brasil, 900",
	}

	repo := &fakeRepository{
		getByIdFn: func(ctx context.Context, deliveryID ulid.ULID) (*delivery.Delivery, error) {
			return existing, nil
		},
		updateFn: func(ctx context.Context, d *delivery.Delivery) error { return nil },
	}
	service := delivery.NewService(repo, &fakeSales{sale: saleRecord}, &fakeDrivers{driver: driver})

	scheduledDate := time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC)
	got, err := service.Schedule(context.Background(), existing.Id, &delivery.ScheduleRequest{
		ScheduledDate: scheduledDate,
		DriverId:      &driver.Id,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.Status != delivery.StatusScheduled {
		t.Fatalf("status = %s, want SCHEDULED", got.Status)
	}
	if got.ScheduledDate == nil || !got.ScheduledDate.Equal(scheduledDate) {
		t.Fatalf("scheduled date not set: %+v", got.ScheduledDate)
	}
	if got.DriverId == nil || *got.DriverId != driver.Id {
		t.Fatal("driver not assigned")
	}
}
