package sale

import (
	"context"
	"fmt"
	"math"
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

// ProductStore é a fatia do catálogo que a venda consome.
type ProductStore interface {
	GetProductById(ctx context.Context, productID ulid.ULID) (*catalog.Product, error)
	DecrementStock(ctx context.Context, productID ulid.ULID, quantity int) error
	IncrementStock(ctx context.Context, productID ulid.ULID, quantity int) error
}

type PeopleStore interface {
	GetCustomerById(ctx context.Context, customerID ulid.ULID) (*person.Customer, error)
	GetEmployeeById(ctx context.Context, employeeID ulid.ULID) (*person.Employee, error)
}

type PlanResolver interface {
	BuildPlanInput(ctx context.Context, req *payment.PlanRequest) (payment.PlanInput, error)
}

type FinanceWriter interface {
	CreateEntries(ctx context.Context, entries []*finance.Entry) error
	CreateCommission(ctx context.Context, commission *finance.Commission) error
	CancelOpenEntriesBySale(ctx context.Context, saleID ulid.ULID) error
	CancelCommissionBySale(ctx context.Context, saleID ulid.ULID) error
}

type Service struct {
	Repository Repository
	Products   ProductStore
	People     PeopleStore
	Plans      PlanResolver
	Finance    FinanceWriter
}

func NewService(repo Repository, products ProductStore, people PeopleStore, plans PlanResolver, financeWriter FinanceWriter) *Service {
	return &Service{
		Repository: repo,
		Products:   products,
		People:     people,
		Plans:      plans,
		Finance:    financeWriter,
	}
}

// CreateSale fecha uma venda: totaliza os itens, reexecuta os planos de
// pagamento pelo planejador, exige ledger fechado com o total (folga 0.01),
// gera o número sequencial, persiste, baixa estoque e desdobra as parcelas em
// lançamentos a receber mais a comissão do vendedor.
func (s *Service) CreateSale(ctx context.Context, req *CreateSaleRequest) (*Sale, error) {
	customer, err := s.People.GetCustomerById(ctx, req.CustomerId)
	if err != nil {
		return nil, err
	}

	seller, err := s.People.GetEmployeeById(ctx, req.SellerId)
	if err != nil {
		return nil, err
	}

	if len(req.Items) == 0 {
		return nil, appErrors.NewValidationError("items", "a venda precisa de pelo menos um item")
	}

	if req.Discount < 0 {
		return nil, appErrors.NewValidationError("discount", "deve ser maior ou igual a zero")
	}

	items := make([]SaleItem, 0, len(req.Items))
	subtotal := 0.0
	for _, itemReq := range req.Items {
		if itemReq.Quantity <= 0 {
			return nil, appErrors.NewValidationError("quantity", "deve ser maior que zero")
		}

		product, err := s.Products.GetProductById(ctx, itemReq.ProductId)
		if err != nil {
			return nil, err
		}

		if product.Stock < itemReq.Quantity {
			return nil, appErrors.ErrInsufficientStock.WithDetails(map[string]interface{}{
				"product_id": product.Id.String(),
				"available":  product.Stock,
				"requested":  itemReq.Quantity,
			})
		}

		unitPrice := product.Price
		if itemReq.UnitPrice != nil {
			if *itemReq.UnitPrice <= 0 {
				return nil, appErrors.NewValidationError("unit_price", "deve ser maior que zero")
			}
			unitPrice = *itemReq.UnitPrice
		}

		itemTotal := unitPrice * float64(itemReq.Quantity)
		subtotal += itemTotal
		items = append(items, SaleItem{
			Id:        pkg.GenerateULIDObject(),
			ProductId: product.Id,
			Name:      product.Name,
			Quantity:  itemReq.Quantity,
			UnitPrice: unitPrice,
			Total:     itemTotal,
		})
	}

	total := subtotal - req.Discount
	if total <= 0 {
		return nil, appErrors.NewValidationError("discount", "desconto não pode zerar a venda")
	}

	ledger := payment.NewLedger(total)
	for _, planReq := range req.Payments {
		planReq := planReq
		input, err := s.Plans.BuildPlanInput(ctx, &planReq)
		if err != nil {
			return nil, err
		}
		ledger, err = payment.AddPlan(ledger, input)
		if err != nil {
			return nil, err
		}
	}

	if math.Abs(payment.Remaining(ledger)) > payment.AmountTolerance {
		return nil, appErrors.NewValidationError("payments", "os pagamentos não fecham com o total da venda")
	}

	number, err := s.Repository.NextNumber(ctx)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	now := time.Now()
	newSale := &Sale{
		Id:         pkg.GenerateULIDObject(),
		Number:     number,
		CustomerId: customer.Id,
		SellerId:   seller.Id,
		Status:     StatusCompleted,
		Subtotal:   subtotal,
		Discount:   req.Discount,
		Total:      total,
		Notes:      req.Notes,
		SaleDate:   now,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	for i := range items {
		items[i].SaleId = newSale.Id
	}
	newSale.Items = items
	newSale.Payments = buildPaymentSnapshots(newSale.Id, ledger)

	if err := s.Repository.Create(ctx, newSale); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	for _, item := range items {
		if err := s.Products.DecrementStock(ctx, item.ProductId, item.Quantity); err != nil {
			return nil, err
		}
	}

	if err := s.Finance.CreateEntries(ctx, buildEntries(newSale, ledger)); err != nil {
		return nil, err
	}

	if seller.CommissionPercentage > 0 {
		commission := &finance.Commission{
			SaleId:     newSale.Id,
			EmployeeId: seller.Id,
			Percentage: seller.CommissionPercentage,
			BaseAmount: total,
			Amount:     total * seller.CommissionPercentage / 100,
		}
		if err := s.Finance.CreateCommission(ctx, commission); err != nil {
			return nil, err
		}
	}

	logger.Info().
		Int64("number", newSale.Number).
		Float64("total", newSale.Total).
		Int("plans", len(ledger.Plans)).
		Msg("Venda fechada")

	return newSale, nil
}

// CancelSale devolve o estoque dos itens e cancela lançamentos abertos e a
// comissão da venda.
func (s *Service) CancelSale(ctx context.Context, saleID ulid.ULID) error {
	existing, err := s.GetById(ctx, saleID)
	if err != nil {
		return err
	}

	if existing.Status == StatusCanceled {
		return appErrors.NewValidationError("status", "venda já cancelada")
	}

	now := time.Now()
	existing.Status = StatusCanceled
	existing.CanceledAt = &now
	existing.UpdatedAt = now

	if err := s.Repository.Update(ctx, existing); err != nil {
		return appErrors.NewDatabaseError(err)
	}

	for _, item := range existing.Items {
		if err := s.Products.IncrementStock(ctx, item.ProductId, item.Quantity); err != nil {
			return err
		}
	}

	if err := s.Finance.CancelOpenEntriesBySale(ctx, existing.Id); err != nil {
		return err
	}

	if err := s.Finance.CancelCommissionBySale(ctx, existing.Id); err != nil {
		return err
	}

	logger.Info().
		Int64("number", existing.Number).
		Msg("Venda cancelada")

	return nil
}

func (s *Service) GetById(ctx context.Context, saleID ulid.ULID) (*Sale, error) {
	existing, err := s.Repository.GetById(ctx, saleID)
	if err != nil {
		return nil, appErrors.ErrSaleNotFound.WithError(err)
	}
	return existing, nil
}

func (s *Service) List(ctx context.Context, filter Filter, pagination *pkg.PaginationParams) ([]*Sale, int64, error) {
	return s.Repository.List(ctx, filter, pagination)
}

func buildPaymentSnapshots(saleID ulid.ULID, ledger payment.Ledger) []SalePayment {
	snapshots := make([]SalePayment, 0, len(ledger.Plans))
	for _, plan := range ledger.Plans {
		snapshots = append(snapshots, SalePayment{
			Id:              pkg.GenerateULIDObject(),
			SaleId:          saleID,
			PaymentMethodId: plan.PaymentMethodId,
			MethodName:      plan.MethodName,
			CardBrandId:     plan.CardBrandId,
			Installments:    plan.Installments,
			Amount:          plan.Amount,
			FirstDueDate:    plan.FirstDueDate,
		})
	}
	return snapshots
}

func buildEntries(s *Sale, ledger payment.Ledger) []*finance.Entry {
	var entries []*finance.Entry
	for _, plan := range ledger.Plans {
		methodId := plan.PaymentMethodId
		for _, detail := range plan.Details {
			entries = append(entries, &finance.Entry{
				Kind:              finance.KindReceivable,
				Description:       fmt.Sprintf("Venda %d - parcela %d/%d", s.Number, detail.Number, plan.Installments),
				GrossAmount:       detail.Amount,
				FeePercentage:     detail.FeePercentage,
				FeeAmount:         detail.FeeAmount,
				NetAmount:         detail.NetAmount,
				DueDate:           detail.DueDate,
				InstallmentNumber: detail.Number,
				InstallmentCount:  plan.Installments,
				SaleId:            &s.Id,
				PaymentMethodId:   &methodId,
			})
		}
	}
	return entries
}

type CreateSaleRequest struct {
	CustomerId ulid.ULID
	SellerId   ulid.ULID
	Items      []SaleItemRequest
	Payments   []payment.PlanRequest
	Discount   float64
	Notes      string
}

type SaleItemRequest struct {
	ProductId ulid.ULID
	Quantity  int
	UnitPrice *float64
}
