package contracts

import (
	"Mobilia/internal/domain/purchase"
)

type PurchaseItemPayload struct {
	ProductID string  `json:"product_id" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required,gt=0"`
	UnitCost  float64 `json:"unit_cost" binding:"required,gt=0"`
}

type PurchaseCreateRequest struct {
	SupplierID   string                `json:"supplier_id" binding:"required"`
	Items        []PurchaseItemPayload `json:"items" binding:"required,min=1,dive"`
	Installments int                   `json:"installments" binding:"required,min=1,max=24"`
	FirstDueDate string                `json:"first_due_date" binding:"required"`
	InvoiceRef   string                `json:"invoice_ref" binding:"omitempty,max=50"`
	Notes        string                `json:"notes" binding:"omitempty,max=500"`
}

type PurchaseCreateResponse struct {
	Message  string             `json:"message"`
	Purchase *purchase.Purchase `json:"purchase"`
}

type PurchaseSingleResponse struct {
	Purchase *purchase.Purchase `json:"purchase"`
}
