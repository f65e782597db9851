package routes

import (
	"net/http"
	"time"

	"Mobilia/internal/contracts"
	"Mobilia/internal/domain/finance"
	"Mobilia/internal/domain/payment"
	appErrors "Mobilia/internal/errors"
	"Mobilia/internal/pkg"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListEntries(c *gin.Context) {
	filter := finance.EntryFilter{
		Kind:   finance.EntryKind(c.Query("kind")),
		Status: finance.EntryStatus(c.Query("status")),
	}

	if raw := c.Query("due_before"); raw != "" {
		dueBefore, err := time.Parse(payment.DateLayout, raw)
		if err != nil {
			h.respondError(c, appErrors.NewValidationError("due_before", "data inválida"))
			return
		}
		filter.DueBefore = &dueBefore
	}

	if raw := c.Query("due_after"); raw != "" {
		dueAfter, err := time.Parse(payment.DateLayout, raw)
		if err != nil {
			h.respondError(c, appErrors.NewValidationError("due_after", "data inválida"))
			return
		}
		filter.DueAfter = &dueAfter
	}

	pagination := h.parsePagination(c)

	ctx := c.Request.Context()
	entries, total, err := h.FinanceService.ListEntries(ctx, filter, pagination)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response := pkg.NewPaginatedResponse(entries, pagination.Page, pagination.Limit, total)
	c.JSON(http.StatusOK, response)
}

func (h *Handler) GetEntry(c *gin.Context) {
	entryID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	ctx := c.Request.Context()
	entry, err := h.FinanceService.GetEntryById(ctx, entryID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.EntrySingleResponse{Entry: entry})
}

func (h *Handler) SettleEntry(c *gin.Context) {
	entryID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	var body contracts.EntrySettleRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	var paidAt time.Time
	if body.PaidAt != nil {
		paidAt = *body.PaidAt
	}

	ctx := c.Request.Context()
	entry, err := h.FinanceService.SettleEntry(ctx, entryID, paidAt)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.EntrySingleResponse{Entry: entry})
}

func (h *Handler) ReopenEntry(c *gin.Context) {
	entryID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	ctx := c.Request.Context()
	entry, err := h.FinanceService.ReopenEntry(ctx, entryID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.EntrySingleResponse{Entry: entry})
}

func (h *Handler) ListEntriesBySale(c *gin.Context) {
	saleID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	ctx := c.Request.Context()
	entries, err := h.FinanceService.ListEntriesBySale(ctx, saleID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.EntryListResponse{Entries: entries})
}

func (h *Handler) ListEntriesByPurchase(c *gin.Context) {
	purchaseID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	ctx := c.Request.Context()
	entries, err := h.FinanceService.ListEntriesByPurchase(ctx, purchaseID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.EntryListResponse{Entries: entries})
}

func (h *Handler) ListCommissionsByEmployee(c *gin.Context) {
	employeeID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	pagination := h.parsePagination(c)

	ctx := c.Request.Context()
	commissions, total, err := h.FinanceService.ListCommissionsByEmployee(ctx, employeeID, pagination)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response := pkg.NewPaginatedResponse(commissions, pagination.Page, pagination.Limit, total)
	c.JSON(http.StatusOK, response)
}
