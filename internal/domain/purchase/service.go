package purchase

import (
	"context"
	"fmt"
	"time"

	"Mobilia/internal/domain/catalog"
	"Mobilia/internal/domain/finance"
	"Mobilia/internal/domain/payment"
	"Mobilia/internal/domain/person"
	appErrors "Mobilia/internal/errors"
	"Mobilia/internal/logger"
	"Mobilia/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type ProductStore interface {
	GetProductById(ctx context.Context, productID ulid.ULID) (*catalog.Product, error)
	IncrementStock(ctx context.Context, productID ulid.ULID, quantity int) error
	DecrementStock(ctx context.Context, productID ulid.ULID, quantity int) error
}

type SupplierStore interface {
	GetSupplierById(ctx context.Context, supplierID ulid.ULID) (*person.Supplier, error)
}

type FinanceWriter interface {
	CreateEntries(ctx context.Context, entries []*finance.Entry) error
}

type Service struct {
	Repository Repository
	Products   ProductStore
	Suppliers  SupplierStore
	Finance    FinanceWriter
}

func NewService(repo Repository, products ProductStore, suppliers SupplierStore, financeWriter FinanceWriter) *Service {
	return &Service{
		Repository: repo,
		Products:   products,
		Suppliers:  suppliers,
		Finance:    financeWriter,
	}
}

// CreatePurchase registra o recebimento de mercadoria: entra estoque e gera o
// cronograma a pagar com a divisão igual do planejador, sem taxas.
func (s *Service) CreatePurchase(ctx context.Context, req *CreatePurchaseRequest) (*Purchase, error) {
	supplier, err := s.Suppliers.GetSupplierById(ctx, req.SupplierId)
	if err != nil {
		return nil, err
	}

	if len(req.Items) == 0 {
		return nil, appErrors.NewValidationError("items", "a compra precisa de pelo menos um item")
	}

	if req.Installments < 1 || req.Installments > payment.MaxInstallments {
		return nil, appErrors.NewValidationError("installments", "deve estar entre 1 e 24")
	}

	firstDueDate, err := time.Parse(payment.DateLayout, req.FirstDueDate)
	if err != nil {
		return nil, appErrors.ErrInvalidDueDate
	}

	items := make([]PurchaseItem, 0, len(req.Items))
	total := 0.0
	for _, itemReq := range req.Items {
		if itemReq.Quantity <= 0 {
			return nil, appErrors.NewValidationError("quantity", "deve ser maior que zero")
		}
		if itemReq.UnitCost <= 0 {
			return nil, appErrors.NewValidationError("unit_cost", "deve ser maior que zero")
		}

		product, err := s.Products.GetProductById(ctx, itemReq.ProductId)
		if err != nil {
			return nil, err
		}

		itemTotal := itemReq.UnitCost * float64(itemReq.Quantity)
		total += itemTotal
		items = append(items, PurchaseItem{
			Id:        pkg.GenerateULIDObject(),
			ProductId: product.Id,
			Name:      product.Name,
			Quantity:  itemReq.Quantity,
			UnitCost:  itemReq.UnitCost,
			Total:     itemTotal,
		})
	}

	now := time.Now()
	newPurchase := &Purchase{
		Id:           pkg.GenerateULIDObject(),
		SupplierId:   supplier.Id,
		Status:       StatusReceived,
		Total:        total,
		Installments: req.Installments,
		FirstDueDate: firstDueDate,
		InvoiceRef:   req.InvoiceRef,
		Notes:        req.Notes,
		PurchaseDate: now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	for i := range items {
		items[i].PurchaseId = newPurchase.Id
	}
	newPurchase.Items = items

	if err := s.Repository.Create(ctx, newPurchase); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	for _, item := range items {
		if err := s.Products.IncrementStock(ctx, item.ProductId, item.Quantity); err != nil {
			return nil, err
		}
	}

	details := payment.ComputeDetails(total, req.Installments, firstDueDate, nil)
	entries := make([]*finance.Entry, 0, len(details))
	for _, detail := range details {
		entries = append(entries, &finance.Entry{
			Kind:              finance.KindPayable,
			Description:       fmt.Sprintf("Compra %s - parcela %d/%d", supplier.Name, detail.Number, req.Installments),
			GrossAmount:       detail.Amount,
			NetAmount:         detail.NetAmount,
			DueDate:           detail.DueDate,
			InstallmentNumber: detail.Number,
			InstallmentCount:  req.Installments,
			PurchaseId:        &newPurchase.Id,
		})
	}

	if err := s.Finance.CreateEntries(ctx, entries); err != nil {
		return nil, err
	}

	logger.Info().
		Str("supplier", supplier.Name).
		Float64("total", total).
		Int("installments", req.Installments).
		Msg("Compra registrada")

	return newPurchase, nil
}

// CancelPurchase estorna o estoque recebido. Falha se algum item já foi
// vendido além do saldo disponível.
func (s *Service) CancelPurchase(ctx context.Context, purchaseID ulid.ULID) error {
	existing, err := s.GetById(ctx, purchaseID)
	if err != nil {
		return err
	}

	if existing.Status == StatusCanceled {
		return appErrors.NewValidationError("status", "compra já cancelada")
	}

	now := time.Now()
	existing.Status = StatusCanceled
	existing.CanceledAt = &now
	existing.UpdatedAt = now

	if err := s.Repository.Update(ctx, existing); err != nil {
		return appErrors.NewDatabaseError(err)
	}

	for _, item := range existing.Items {
		if err := s.Products.DecrementStock(ctx, item.ProductId, item.Quantity); err != nil {
			return err
		}
	}

	return nil
}

func (s *Service) GetById(ctx context.Context, purchaseID ulid.ULID) (*Purchase, error) {
	existing, err := s.Repository.GetById(ctx, purchaseID)
	if err != nil {
		return nil, appErrors.ErrPurchaseNotFound.WithError(err)
	}
	return existing, nil
}

func (s *Service) List(ctx context.Context, filter Filter, pagination *pkg.PaginationParams) ([]*Purchase, int64, error) {
	return s.Repository.List(ctx, filter, pagination)
}

type CreatePurchaseRequest struct {
	SupplierId   ulid.ULID
	Items        []PurchaseItemRequest
	Installments int
	FirstDueDate string
	InvoiceRef   string
	Notes        string
}

type PurchaseItemRequest struct {
	ProductId ulid.ULID
	Quantity  int
	UnitCost  float64
}
