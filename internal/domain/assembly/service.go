package assembly

import (
	"context"
	"time"

	"Mobilia/internal/domain/catalog"
	"Mobilia/internal/domain/person"
	"Mobilia/internal/domain/sale"
	appErrors "Mobilia/internal/errors"
	"Mobilia/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type SaleStore interface {
	GetById(ctx context.Context, saleID ulid.ULID) (*sale.Sale, error)
}

type ProductStore interface {
	GetProductById(ctx context.Context, productID ulid.ULID) (*catalog.Product, error)
}

type AssemblerStore interface {
	GetEmployeeById(ctx context.Context, employeeID ulid.ULID) (*person.Employee, error)
}

type Service struct {
	Repository Repository
	Sales      SaleStore
	Products   ProductStore
	Assemblers AssemblerStore
}

func NewService(repo Repository, sales SaleStore, products ProductStore, assemblers AssemblerStore) *Service {
	return &Service{
		Repository: repo,
		Sales:      sales,
		Products:   products,
		Assemblers: assemblers,
	}
}

// CreateAssembly abre uma ordem de montagem para um produto de uma venda. O
// produto precisa exigir montagem.
func (s *Service) CreateAssembly(ctx context.Context, req *CreateAssemblyRequest) (*Assembly, error) {
	if _, err := s.Sales.GetById(ctx, req.SaleId); err != nil {
		return nil, err
	}

	product, err := s.Products.GetProductById(ctx, req.ProductId)
	if err != nil {
		return nil, err
	}

	if !product.RequiresAssembly {
		return nil, appErrors.NewValidationError("product_id", "produto não exige montagem")
	}

	number, err := s.Repository.NextNumber(ctx)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	now := time.Now()
	newAssembly := &Assembly{
		Id:        pkg.GenerateULIDObject(),
		Number:    number,
		SaleId:    req.SaleId,
		ProductId: product.Id,
		Status:    StatusOpen,
		Notes:     req.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.Repository.Create(ctx, newAssembly); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	return newAssembly, nil
}

func (s *Service) Schedule(ctx context.Context, assemblyID ulid.ULID, req *ScheduleRequest) (*Assembly, error) {
	existing, err := s.GetById(ctx, assemblyID)
	if err != nil {
		return nil, err
	}

	if req.ScheduledDate.IsZero() {
		return nil, appErrors.NewValidationError("scheduled_date", "é obrigatória")
	}

	if req.AssemblerId != nil {
		assembler, err := s.Assemblers.GetEmployeeById(ctx, *req.AssemblerId)
		if err != nil {
			return nil, err
		}
		existing.AssemblerId = &assembler.Id
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

func (s *Service) ChangeStatus(ctx context.Context, assemblyID ulid.ULID, to Status) (*Assembly, error) {
	existing, err := s.GetById(ctx, assemblyID)
	if err != nil {
		return nil, err
	}

	if err := s.transition(existing, to); err != nil {
		return nil, err
	}

	if to == StatusDone {
		now := time.Now()
		existing.DoneAt = &now
	}

	if err := s.Repository.Update(ctx, existing); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	return existing, nil
}

func (s *Service) transition(a *Assembly, to Status) error {
	if !to.IsValid() {
		return appErrors.NewValidationError("status", "status inválido")
	}

	if !a.Status.CanTransition(to) {
		return appErrors.NewValidationError("status", "transição de "+string(a.Status)+" para "+string(to)+" não é permitida")
	}

	a.Status = to
	a.UpdatedAt = time.Now()
	return nil
}

func (s *Service) GetById(ctx context.Context, assemblyID ulid.ULID) (*Assembly, error) {
	existing, err := s.Repository.GetById(ctx, assemblyID)
	if err != nil {
		return nil, appErrors.ErrAssemblyNotFound.WithError(err)
	}
	return existing, nil
}

func (s *Service) List(ctx context.Context, status Status, pagination *pkg.PaginationParams) ([]*Assembly, int64, error) {
	if status != "" && !status.IsValid() {
		return nil, 0, appErrors.NewValidationError("status", "status inválido")
	}
	return s.Repository.List(ctx, status, pagination)
}

func (s *Service) ListBySale(ctx context.Context, saleID ulid.ULID) ([]*Assembly, error) {
	return s.Repository.ListBySale(ctx, saleID)
}

type CreateAssemblyRequest struct {
	SaleId    ulid.ULID
	ProductId ulid.ULID
	Notes     string
}

type ScheduleRequest struct {
	ScheduledDate time.Time
	AssemblerId   *ulid.ULID
}
