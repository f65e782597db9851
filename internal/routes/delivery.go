package routes

import (
	"net/http"

	"Mobilia/internal/contracts"
	"Mobilia/internal/domain/delivery"
	appErrors "Mobilia/internal/errors"
	"Mobilia/internal/pkg"

	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateDelivery(c *gin.Context) {
	var body contracts.DeliveryCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	saleID, err := pkg.ParseULID(body.SaleID)
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("sale_id", "formato inválido"))
		return
	}

	req := &delivery.CreateDeliveryRequest{
		SaleId:  saleID,
		Address: body.Address,
		City:    body.City,
		Notes:   body.Notes,
	}

	ctx := c.Request.Context()
	created, err := h.DeliveryService.CreateDelivery(ctx, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.DeliveryCreateResponse{
		Message:  "Entrega criada com sucesso",
		Delivery: created,
	})
}

func (h *Handler) ScheduleDelivery(c *gin.Context) {
	deliveryID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	var body contracts.DeliveryScheduleRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	driverID, err := pkg.ParseULIDPtr(&body.DriverID)
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("driver_id", "formato inválido"))
		return
	}

	req := &delivery.ScheduleRequest{
		ScheduledDate: body.ScheduledDate,
		DriverId:      driverID,
	}

	ctx := c.Request.Context()
	updated, err := h.DeliveryService.Schedule(ctx, deliveryID, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.DeliverySingleResponse{Delivery: updated})
}

func (h *Handler) ChangeDeliveryStatus(c *gin.Context) {
	deliveryID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	var body contracts.DeliveryStatusRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	ctx := c.Request.Context()
	updated, err := h.DeliveryService.ChangeStatus(ctx, deliveryID, delivery.Status(body.Status))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.DeliverySingleResponse{Delivery: updated})
}

func (h *Handler) GetDelivery(c *gin.Context) {
	deliveryID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	ctx := c.Request.Context()
	found, err := h.DeliveryService.GetById(ctx, deliveryID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.DeliverySingleResponse{Delivery: found})
}

func (h *Handler) ListDeliveries(c *gin.Context) {
	pagination := h.parsePagination(c)

	ctx := c.Request.Context()
	deliveries, total, err := h.DeliveryService.List(ctx, delivery.Status(c.Query("status")), pagination)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response := pkg.NewPaginatedResponse(deliveries, pagination.Page, pagination.Limit, total)
	c.JSON(http.StatusOK, response)
}

func (h *Handler) ListDeliveriesBySale(c *gin.Context) {
	saleID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	ctx := c.Request.Context()
	deliveries, err := h.DeliveryService.ListBySale(ctx, saleID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.DeliveryListResponse{Deliveries: deliveries})
}
