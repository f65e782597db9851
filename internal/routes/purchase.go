package routes

import (
	"net/http"
	"time"

	"Mobilia/internal/contracts"
	"Mobilia/internal/domain/payment"
	"Mobilia/internal/domain/purchase"
	appErrors "Mobilia/internal/errors"
	"Mobilia/internal/pkg"

	"github.com/gin-gonic/gin"
)

func (h *Handler) CreatePurchase(c *gin.Context) {
	var body contracts.PurchaseCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	supplierID, err := pkg.ParseULID(body.SupplierID)
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("supplier_id", "formato inválido"))
		return
	}

	items := make([]purchase.PurchaseItemRequest, 0, len(body.Items))
	for _, item := range body.Items {
		productID, err := pkg.ParseULID(item.ProductID)
		if err != nil {
			h.respondError(c, appErrors.NewValidationError("product_id", "formato inválido"))
			return
		}
		items = append(items, purchase.PurchaseItemRequest{
			ProductId: productID,
			Quantity:  item.Quantity,
			UnitCost:  item.UnitCost,
		})
	}

	req := &purchase.CreatePurchaseRequest{
		SupplierId:   supplierID,
		Items:        items,
		Installments: body.Installments,
		FirstDueDate: body.FirstDueDate,
		InvoiceRef:   body.InvoiceRef,
		Notes:        body.Notes,
	}

	ctx := c.Request.Context()
	created, err := h.PurchaseService.CreatePurchase(ctx, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.PurchaseCreateResponse{
		Message:  "Compra registrada com sucesso",
		Purchase: created,
	})
}

func (h *Handler) GetPurchase(c *gin.Context) {
	purchaseID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	ctx := c.Request.Context()
	found, err := h.PurchaseService.GetById(ctx, purchaseID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.PurchaseSingleResponse{Purchase: found})
}

func (h *Handler) ListPurchases(c *gin.Context) {
	filter := purchase.Filter{Status: purchase.Status(c.Query("status"))}

	if raw := c.Query("supplier_id"); raw != "" {
		supplierID, err := pkg.ParseULID(raw)
		if err != nil {
			h.respondError(c, appErrors.NewValidationError("supplier_id", "formato inválido"))
			return
		}
		filter.SupplierId = &supplierID
	}

	if raw := c.Query("from"); raw != "" {
		from, err := time.Parse(payment.DateLayout, raw)
		if err != nil {
			h.respondError(c, appErrors.NewValidationError("from", "data inválida"))
			return
		}
		filter.From = &from
	}

	if raw := c.Query("to"); raw != "" {
		to, err := time.Parse(payment.DateLayout, raw)
		if err != nil {
			h.respondError(c, appErrors.NewValidationError("to", "data inválida"))
			return
		}
		filter.To = &to
	}

	pagination := h.parsePagination(c)

	ctx := c.Request.Context()
	purchases, total, err := h.PurchaseService.List(ctx, filter, pagination)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response := pkg.NewPaginatedResponse(purchases, pagination.Page, pagination.Limit, total)
	c.JSON(http.StatusOK, response)
}

func (h *Handler) CancelPurchase(c *gin.Context) {
	purchaseID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	ctx := c.Request.Context()
	if err := h.PurchaseService.CancelPurchase(ctx, purchaseID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Compra cancelada com sucesso"})
}
