package routes

import (
	"net/http"

	"Mobilia/internal/contracts"
	"Mobilia/internal/domain/assembly"
	appErrors "Mobilia/internal/errors"
	"Mobilia/internal/pkg"

	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateAssembly(c *gin.Context) {
	var body contracts.AssemblyCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	saleID, err := pkg.ParseULID(body.SaleID)
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("sale_id", "formato inválido"))
		return
	}

	productID, err := pkg.ParseULID(body.ProductID)
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("product_id", "formato inválido"))
		return
	}

	req := &assembly.CreateAssemblyRequest{
		SaleId:    saleID,
		ProductId: productID,
		Notes:     body.Notes,
	}

	ctx := c.Request.Context()
	created, err := h.AssemblyService.CreateAssembly(ctx, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.AssemblyCreateResponse{
		Message:  "Montagem criada com sucesso",
		Assembly: created,
	})
}

func (h *Handler) ScheduleAssembly(c *gin.Context) {
	assemblyID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	var body contracts.AssemblyScheduleRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	assemblerID, err := pkg.ParseULIDPtr(&body.AssemblerID)
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("assembler_id", "formato inválido"))
		return
	}

	req := &assembly.ScheduleRequest{
		ScheduledDate: body.ScheduledDate,
		AssemblerId:   assemblerID,
	}

	ctx := c.Request.Context()
	updated, err := h.AssemblyService.Schedule(ctx, assemblyID, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.AssemblySingleResponse{Assembly: updated})
}

func (h *Handler) ChangeAssemblyStatus(c *gin.Context) {
	assemblyID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	var body contracts.AssemblyStatusRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	ctx := c.Request.Context()
	updated, err := h.AssemblyService.ChangeStatus(ctx, assemblyID, assembly.Status(body.Status))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.AssemblySingleResponse{Assembly: updated})
}

func (h *Handler) GetAssembly(c *gin.Context) {
	assemblyID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	ctx := c.Request.Context()
	found, err := h.AssemblyService.GetById(ctx, assemblyID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.AssemblySingleResponse{Assembly: found})
}

func (h *Handler) ListAssemblies(c *gin.Context) {
	pagination := h.parsePagination(c)

	ctx := c.Request.Context()
	assemblies, total, err := h.AssemblyService.List(ctx, assembly.Status(c.Query("status")), pagination)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response := pkg.NewPaginatedResponse(assemblies, pagination.Page, pagination.Limit, total)
	c.JSON(http.StatusOK, response)
}

func (h *Handler) ListAssembliesBySale(c *gin.Context) {
	saleID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	ctx := c.Request.Context()
	assemblies, err := h.AssemblyService.ListBySale(ctx, saleID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.AssemblyListResponse{Assemblies: assemblies})
}
