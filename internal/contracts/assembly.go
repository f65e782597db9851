package contracts

import (
	"time"

	"Mobilia/internal/domain/assembly"
)

type AssemblyCreateRequest struct {
	SaleID    string `json:"sale_id" binding:"required"`
	ProductID string `json:"product_id" binding:"required"`
	Notes     string `json:"notes" binding:"omitempty,max=500"`
}

type AssemblyScheduleRequest struct {
	ScheduledDate time.Time `json:"scheduled_date" binding:"required"`
	AssemblerID   string    `json:"assembler_id" binding:"omitempty"`
}

type AssemblyStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=OPEN SCHEDULED DONE CANCELED"`
}

type AssemblyCreateResponse struct {
	Message  string             `json:"message"`
	Assembly *assembly.Assembly `json:"assembly"`
}

type AssemblySingleResponse struct {
	Assembly *assembly.Assembly `json:"assembly"`
}

type AssemblyListResponse struct {
	Assemblies []*assembly.Assembly `json:"assemblies"`
}
