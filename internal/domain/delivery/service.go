package delivery

import (
	"context"
	"strings"
	"time"

	"Mobilia/internal/domain/person"
	"Mobilia/internal/domain/sale"
	appErrors "Mobilia/internal/errors"
	"Mobilia/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type SaleStore interface {
	GetById(ctx context.Context, saleID ulid.ULID) (*sale.Sale, error)
}

type DriverStore interface {
	GetEmployeeById(ctx context.Context, employeeID ulid.ULID) (*person.Employee, error)
}

type Service struct {
	Repository Repository
	Sales      SaleStore
	Drivers    DriverStore
}

func NewService(repo Repository, sales SaleStore, drivers DriverStore) *Service {
	return &Service{Repository: repo, Sales: sales, Drivers: drivers}
}

func (s *Service) CreateDelivery(ctx context.Context, req *CreateDeliveryRequest) (*Delivery, error) {
	if _, err := s.Sales.GetById(ctx, req.SaleId); err != nil {
		return nil, err
	}

	if strings.TrimSpace(req.Address) == "" {
		return nil, appErrors.NewValidationError("address", "é obrigatório")
	}

	now := time.Now()
	newDelivery := &Delivery{
		Id:        pkg.GenerateULIDObject(),
		SaleId:    req.SaleId,
		Status:    StatusPending,
		Address:   strings.TrimSpace(req.Address),
		City:      strings.TrimSpace(req.City),
		Notes:     req.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.Repository.Create(ctx, newDelivery); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	return newDelivery, nil
}

// Schedule agenda a entrega para uma data, opcionalmente com motorista.
func (s *Service) Schedule(ctx context.Context, deliveryID ulid.ULID, req *ScheduleRequest) (*Delivery, error) {
	existing, err := s.GetById(ctx, deliveryID)
	if err != nil {
		return nil, err
	}

	if req.ScheduledDate.IsZero() {
		return nil, appErrors.NewValidationError("scheduled_date", "é obrigatória")
	}

	if req.DriverId != nil {
		driver, err := s.Drivers.GetEmployeeById(ctx, *req.DriverId)
		if err != nil {
			return nil, err
		}
		existing.DriverId = &driver.Id
	}

	if err := s.transition(existing, StatusScheduled); err != nil {
		return nil, err
	}

	scheduled := req.ScheduledDate
	existing.ScheduledDate = &scheduled

	if err := s.Repository.Update(ctx, existing); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	return existing, nil
}

func (s *Service) ChangeStatus(ctx context.Context, deliveryID ulid.ULID, to Status) (*Delivery, error) {
	existing, err := s.GetById(ctx, deliveryID)
	if err != nil {
		return nil, err
	}

	if err := s.transition(existing, to); err != nil {
		return nil, err
	}

	if to == StatusDelivered {
		now := time.Now()
		existing.DeliveredAt = &now
	}

	if err := s.Repository.Update(ctx, existing); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	return existing, nil
}

func (s *Service) transition(d *Delivery, to Status) error {
	if !to.IsValid() {
		return appErrors.NewValidationError("status", "status inválido")
	}

	if !d.Status.CanTransition(to) {
		return appErrors.NewValidationError("status", "transição de "+string(d.Status)+" para "+string(to)+" não é permitida")
	}

	d.Status = to
	d.UpdatedAt = time.Now()
	return nil
}

func (s *Service) GetById(ctx context.Context, deliveryID ulid.ULID) (*Delivery, error) {
	existing, err := s.Repository.GetById(ctx, deliveryID)
	if err != nil {
		return nil, appErrors.ErrDeliveryNotFound.WithError(err)
	}
	return existing, nil
}

func (s *Service) List(ctx context.Context, status Status, pagination *pkg.PaginationParams) ([]*Delivery, int64, error) {
	if status != "" && !status.IsValid() {
		return nil, 0, appErrors.NewValidationError("status", "status inválido")
	}
	return s.Repository.List(ctx, status, pagination)
}

func (s *Service) ListBySale(ctx context.Context, saleID ulid.ULID) ([]*Delivery, error) {
	return s.Repository.ListBySale(ctx, saleID)
}

type CreateDeliveryRequest struct {
	SaleId  ulid.ULID
	Address string
	City    string
	Notes   string
}

type ScheduleRequest struct {
	ScheduledDate time.Time
	DriverId      *ulid.ULID
}
