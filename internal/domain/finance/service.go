package finance

import (
	"context"
	"time"

	appErrors "Mobilia/internal/errors"
	"Mobilia/internal/logger"
	"Mobilia/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type Service struct {
	Repository Repository
}

func NewService(repo Repository) *Service {
	return &Service{Repository: repo}
}

// CreateEntries persiste um lote de lançamentos já calculados pelo chamador
// (fan-out de venda ou compra).
func (s *Service) CreateEntries(ctx context.Context, entries []*Entry) error {
	if len(entries) == 0 {
		return nil
	}

	now := time.Now()
	for _, entry := range entries {
		if !entry.Kind.IsValid() {
			return appErrors.NewValidationError("kind", "tipo de lançamento inválido")
		}
		if pkg.IsEmptyULID(entry.Id) {
			entry.Id = pkg.GenerateULIDObject()
		}
		if entry.Status == "" {
			entry.Status = StatusOpen
		}
		entry.CreatedAt = now
		entry.UpdatedAt = now
	}

	if err := s.Repository.CreateEntries(ctx, entries); err != nil {
		return appErrors.NewDatabaseError(err)
	}

	return nil
}

func (s *Service) GetEntryById(ctx context.Context, entryID ulid.ULID) (*Entry, error) {
	entry, err := s.Repository.GetEntryById(ctx, entryID)
	if err != nil {
		return nil, appErrors.ErrEntryNotFound.WithError(err)
	}
	return entry, nil
}

func (s *Service) ListEntries(ctx context.Context, filter EntryFilter, pagination *pkg.PaginationParams) ([]*Entry, int64, error) {
	return s.Repository.ListEntries(ctx, filter, pagination)
}

// SettleEntry marca um lançamento aberto como pago. Lançamentos cancelados ou
// já pagos não são reabertos.
func (s *Service) SettleEntry(ctx context.Context, entryID ulid.ULID, paidAt time.Time) (*Entry, error) {
	entry, err := s.GetEntryById(ctx, entryID)
	if err != nil {
		return nil, err
	}

	if entry.Status != StatusOpen {
		return nil, appErrors.NewValidationError("status", "apenas lançamentos abertos podem ser baixados")
	}

	if paidAt.IsZero() {
		paidAt = time.Now()
	}

	entry.Status = StatusPaid
	entry.PaidAt = &paidAt
	entry.UpdatedAt = time.Now()

	if err := s.Repository.UpdateEntry(ctx, entry); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	logger.Info().
		Str("entry_id", entry.Id.String()).
		Float64("net_amount", entry.NetAmount).
		Msg("Lançamento baixado")

	return entry, nil
}

// ReopenEntry desfaz a baixa de um lançamento pago.
func (s *Service) ReopenEntry(ctx context.Context, entryID ulid.ULID) (*Entry, error) {
	entry, err := s.GetEntryById(ctx, entryID)
	if err != nil {
		return nil, err
	}

	if entry.Status != StatusPaid {
		return nil, appErrors.NewValidationError("status", "apenas lançamentos pagos podem ser reabertos")
	}

	entry.Status = StatusOpen
	entry.PaidAt = nil
	entry.UpdatedAt = time.Now()

	if err := s.Repository.UpdateEntry(ctx, entry); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	return entry, nil
}

// CancelOpenEntriesBySale cancela os lançamentos ainda abertos de uma venda.
// Lançamentos já pagos ficam como estão; o estorno é decisão do caixa.
func (s *Service) CancelOpenEntriesBySale(ctx context.Context, saleID ulid.ULID) error {
	entries, err := s.Repository.ListEntriesBySale(ctx, saleID)
	if err != nil {
		return appErrors.NewDatabaseError(err)
	}

	for _, entry := range entries {
		if entry.Status != StatusOpen {
			continue
		}
		entry.Status = StatusCanceled
		entry.UpdatedAt = time.Now()
		if err := s.Repository.UpdateEntry(ctx, entry); err != nil {
			return appErrors.NewDatabaseError(err)
		}
	}

	return nil
}

func (s *Service) ListEntriesBySale(ctx context.Context, saleID ulid.ULID) ([]*Entry, error) {
	return s.Repository.ListEntriesBySale(ctx, saleID)
}

func (s *Service) ListEntriesByPurchase(ctx context.Context, purchaseID ulid.ULID) ([]*Entry, error) {
	return s.Repository.ListEntriesByPurchase(ctx, purchaseID)
}

func (s *Service) CreateCommission(ctx context.Context, commission *Commission) error {
	if pkg.IsEmptyULID(commission.Id) {
		commission.Id = pkg.GenerateULIDObject()
	}
	if commission.Status == "" {
		commission.Status = CommissionOpen
	}

	now := time.Now()
	commission.CreatedAt = now
	commission.UpdatedAt = now

	if err := s.Repository.CreateCommission(ctx, commission); err != nil {
		return appErrors.NewDatabaseError(err)
	}

	return nil
}

// CancelCommissionBySale cancela a comissão aberta de uma venda, se existir.
func (s *Service) CancelCommissionBySale(ctx context.Context, saleID ulid.ULID) error {
	commission, err := s.Repository.GetCommissionBySale(ctx, saleID)
	if err != nil || commission == nil {
		return nil
	}

	if commission.Status != CommissionOpen {
		return nil
	}

	commission.Status = CommissionCanceled
	commission.UpdatedAt = time.Now()

	if err := s.Repository.UpdateCommission(ctx, commission); err != nil {
		return appErrors.NewDatabaseError(err)
	}

	return nil
}

func (s *Service) ListCommissionsByEmployee(ctx context.Context, employeeID ulid.ULID, pagination *pkg.PaginationParams) ([]*Commission, int64, error) {
	return s.Repository.ListCommissionsByEmployee(ctx, employeeID, pagination)
}
