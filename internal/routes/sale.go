package routes

import (
	"net/http"
	"time"

	"Mobilia/internal/contracts"
	"Mobilia/internal/domain/payment"
	"Mobilia/internal/domain/sale"
	appErrors "Mobilia/internal/errors"
	"Mobilia/internal/pkg"

	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateSale(c *gin.Context) {
	var body contracts.SaleCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	customerID, err := pkg.ParseULID(body.CustomerID)
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("customer_id", "formato inválido"))
		return
	}

	sellerID, err := pkg.ParseULID(body.SellerID)
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("seller_id", "formato inválido"))
		return
	}

	items := make([]sale.SaleItemRequest, 0, len(body.Items))
	for _, item := range body.Items {
		productID, err := pkg.ParseULID(item.ProductID)
		if err != nil {
			h.respondError(c, appErrors.NewValidationError("product_id", "formato inválido"))
			return
		}
		items = append(items, sale.SaleItemRequest{
			ProductId: productID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	payments := make([]payment.PlanRequest, 0, len(body.Payments))
	for _, plan := range body.Payments {
		payments = append(payments, payment.PlanRequest{
			PaymentMethodId: plan.PaymentMethodID,
			CardBrandId:     plan.CardBrandID,
			Installments:    plan.Installments,
			Amount:          plan.Amount,
			FirstDueDate:    plan.FirstDueDate,
		})
	}

	req := &sale.CreateSaleRequest{
		CustomerId: customerID,
		SellerId:   sellerID,
		Items:      items,
		Payments:   payments,
		Discount:   body.Discount,
		Notes:      body.Notes,
	}

	ctx := c.Request.Context()
	created, err := h.SaleService.CreateSale(ctx, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.SaleCreateResponse{
		Message: "Venda fechada com sucesso",
		Sale:    created,
	})
}

func (h *Handler) GetSale(c *gin.Context) {
	saleID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	ctx := c.Request.Context()
	found, err := h.SaleService.GetById(ctx, saleID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.SaleSingleResponse{Sale: found})
}

func (h *Handler) ListSales(c *gin.Context) {
	filter := sale.Filter{Status: sale.Status(c.Query("status"))}

	if raw := c.Query("customer_id"); raw != "" {
		customerID, err := pkg.ParseULID(raw)
		if err != nil {
			h.respondError(c, appErrors.NewValidationError("customer_id", "formato inválido"))
			return
		}
		filter.CustomerId = &customerID
	}

	if raw := c.Query("seller_id"); raw != "" {
		sellerID, err := pkg.ParseULID(raw)
		if err != nil {
			h.respondError(c, appErrors.NewValidationError("seller_id", "formato inválido"))
			return
		}
		filter.SellerId = &sellerID
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
	sales, total, err := h.SaleService.List(ctx, filter, pagination)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response := pkg.NewPaginatedResponse(sales, pagination.Page, pagination.Limit, total)
	c.JSON(http.StatusOK, response)
}

func (h *Handler) CancelSale(c *gin.Context) {
	saleID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	ctx := c.Request.Context()
	if err := h.SaleService.CancelSale(ctx, saleID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Venda cancelada com sucesso"})
}
