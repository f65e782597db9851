package finance

import (
	"context"
	"time"

	"Mobilia/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type Repository interface {
	CreateEntries(ctx context.Context, entries []*Entry) error
	UpdateEntry(ctx context.Context, entry *Entry) error
	GetEntryById(ctx context.Context, entryID ulid.ULID) (*Entry, error)
	ListEntries(ctx context.Context, filter EntryFilter, pagination *pkg.PaginationParams) ([]*Entry, int64, error)
	ListEntriesBySale(ctx context.Context, saleID ulid.ULID) ([]*Entry, error)
	ListEntriesByPurchase(ctx context.Context, purchaseID ulid.ULID) ([]*Entry, error)

	CreateCommission(ctx context.Context, commission *Commission) error
	UpdateCommission(ctx context.Context, commission *Commission) error
	GetCommissionBySale(ctx context.Context, saleID ulid.ULID) (*Commission, error)
	ListCommissionsByEmployee(ctx context.Context, employeeID ulid.ULID, pagination *pkg.PaginationParams) ([]*Commission, int64, error)
}

type EntryFilter struct {
	Kind      EntryKind
	Status    EntryStatus
	DueBefore *time.Time
	DueAfter  *time.Time
}
