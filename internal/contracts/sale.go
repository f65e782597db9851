package contracts

import (
	"Mobilia/internal/domain/sale"
)

type SaleItemPayload struct {
	ProductID string   `json:"product_id" binding:"required"`
	Quantity  int      `json:"quantity" binding:"required,gt=0"`
	UnitPrice *float64 `json:"unit_price" binding:"omitempty,gt=0"`
}

type SaleCreateRequest struct {
	CustomerID string               `json:"customer_id" binding:"required"`
	SellerID   string               `json:"seller_id" binding:"required"`
	Items      []SaleItemPayload    `json:"items" binding:"required,min=1,dive"`
	Payments   []PaymentPlanPayload `json:"payments" binding:"required,min=1"`
	Discount   float64              `json:"discount" binding:"omitempty,gte=0"`
	Notes      string               `json:"notes" binding:"omitempty,max=500"`
}

type SaleCreateResponse struct {
	Message string     `json:"message"`
	Sale    *sale.Sale `json:"sale"`
}

type SaleSingleResponse struct {
	Sale *sale.Sale `json:"sale"`
}
