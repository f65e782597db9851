package contracts

import (
	"Mobilia/internal/domain/catalog"
)

type ProductCreateRequest struct {
	Name             string  `json:"name" binding:"required,max=150"`
	Description      string  `json:"description" binding:"omitempty,max=500"`
	Sku              string  `json:"sku" binding:"omitempty,max=50"`
	CategoryID       string  `json:"category_id" binding:"omitempty"`
	Price            float64 `json:"price" binding:"required,gt=0"`
	Cost             float64 `json:"cost" binding:"omitempty,gte=0"`
	Stock            int     `json:"stock" binding:"omitempty,gte=0"`
	RequiresAssembly bool    `json:"requires_assembly" binding:"omitempty"`
}

type ProductUpdateRequest struct {
	Name             *string  `json:"name" binding:"omitempty,max=150"`
	Description      *string  `json:"description" binding:"omitempty,max=500"`
	Price            *float64 `json:"price" binding:"omitempty,gt=0"`
	Cost             *float64 `json:"cost" binding:"omitempty,gte=0"`
	CategoryID       *string  `json:"category_id" binding:"omitempty"`
	RequiresAssembly *bool    `json:"requires_assembly" binding:"omitempty"`
	IsActive         *bool    `json:"is_active" binding:"omitempty"`
}

type StockAdjustRequest struct {
	Quantity int `json:"quantity" binding:"required,gt=0"`
}

type CategoryCreateRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	ParentID string `json:"parent_id" binding:"omitempty"`
}

type ProductCreateResponse struct {
	Message string           `json:"message"`
	Product *catalog.Product `json:"product"`
}

type ProductSingleResponse struct {
	Product *catalog.Product `json:"product"`
}

type CategoryCreateResponse struct {
	Message  string            `json:"message"`
	Category *catalog.Category `json:"category"`
}

type CategoryTreeResponse struct {
	Categories []*catalog.CategoryNode `json:"categories"`
}
