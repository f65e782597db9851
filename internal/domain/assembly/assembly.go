package assembly

import (
	"time"

	"github.com/oklog/ulid/v2"
)

type Status string

const (
	StatusOpen      Status = "OPEN"
	StatusScheduled Status = "SCHEDULED"
	StatusDone      Status = "DONE"
	StatusCanceled  Status = "CANCELED"
)

var transitions = map[Status][]Status{
	StatusOpen:      {StatusScheduled, StatusCanceled},
	StatusScheduled: {StatusDone, StatusOpen, StatusCanceled},
}

func (s Status) CanTransition(to Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == to {
			return true
		}
	}
	return false
}

func (s Status) IsValid() bool {
	switch s {
	case StatusOpen, StatusScheduled, StatusDone, StatusCanceled:
		return true
	}
	return false
}

// Assembly é uma ordem de montagem ou assistência de um produto vendido.
// Number é sequencial por ordem de criação.
type Assembly struct {
	Id            ulid.ULID  `gorm:"type:varchar(26);primaryKey" json:"id"`
	Number        int64      `gorm:"not null;uniqueIndex:idx_assemblies_number" json:"number"`
	SaleId        ulid.ULID  `gorm:"type:varchar(26);not null;index:idx_assemblies_sale" json:"saleId"`
	ProductId     ulid.ULID  `gorm:"type:varchar(26);not null" json:"productId"`
	AssemblerId   *ulid.ULID `gorm:"type:varchar(26)" json:"assemblerId,omitempty"`
	Status        Status     `gorm:"type:varchar(12);not null;default:'OPEN';index:idx_assemblies_status" json:"status"`
	ScheduledDate *time.Time `json:"scheduledDate,omitempty"`
	DoneAt        *time.Time `json:"doneAt,omitempty"`
	Notes         string     `gorm:"type:text" json:"notes"`
	CreatedAt     time.Time  `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime;not null" json:"updatedAt"`
}

func (Assembly) TableName() string {
	return "assemblies"
}
