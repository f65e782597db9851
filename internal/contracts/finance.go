package contracts

import (
	"time"

	"Mobilia/internal/domain/finance"
)

type EntrySettleRequest struct {
	PaidAt *time.Time `json:"paid_at" binding:"omitempty"`
}

type EntrySingleResponse struct {
	Entry *finance.Entry `json:"entry"`
}

type EntryListResponse struct {
	Entries []*finance.Entry `json:"entries"`
}
