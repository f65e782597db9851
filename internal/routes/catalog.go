package routes

import (
	"net/http"

	"Mobilia/internal/contracts"
	"Mobilia/internal/domain/catalog"
	appErrors "Mobilia/internal/errors"
	"Mobilia/internal/pkg"

	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateProduct(c *gin.Context) {
	var body contracts.ProductCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	req := &catalog.CreateProductRequest{
		Name:             body.Name,
		Description:      body.Description,
		Sku:              body.Sku,
		Price:            body.Price,
		Cost:             body.Cost,
		Stock:            body.Stock,
		RequiresAssembly: body.RequiresAssembly,
	}

	if body.CategoryID != "" {
		categoryID, err := pkg.ParseULID(body.CategoryID)
		if err != nil {
			h.respondError(c, appErrors.NewValidationError("category_id", "formato inválido"))
			return
		}
		req.CategoryId = &categoryID
	}

	ctx := c.Request.Context()
	product, err := h.CatalogService.CreateProduct(ctx, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.ProductCreateResponse{
		Message: "Produto criado com sucesso",
		Product: product,
	})
}

func (h *Handler) UpdateProduct(c *gin.Context) {
	productID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	var body contracts.ProductUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	req := &catalog.UpdateProductRequest{
		Name:             body.Name,
		Description:      body.Description,
		Price:            body.Price,
		Cost:             body.Cost,
		RequiresAssembly: body.RequiresAssembly,
		IsActive:         body.IsActive,
	}

	if body.CategoryID != nil {
		categoryID, err := pkg.ParseULID(*body.CategoryID)
		if err != nil {
			h.respondError(c, appErrors.NewValidationError("category_id", "formato inválido"))
			return
		}
		req.CategoryId = &categoryID
	}

	ctx := c.Request.Context()
	if err := h.CatalogService.UpdateProduct(ctx, productID, req); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Produto atualizado com sucesso"})
}

func (h *Handler) GetProduct(c *gin.Context) {
	productID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	ctx := c.Request.Context()
	product, err := h.CatalogService.GetProductById(ctx, productID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.ProductSingleResponse{Product: product})
}

func (h *Handler) ListProducts(c *gin.Context) {
	filter := catalog.ProductFilter{
		Search:     c.Query("search"),
		OnlyActive: c.DefaultQuery("only_active", "true") == "true",
	}

	if raw := c.Query("category_id"); raw != "" {
		categoryID, err := pkg.ParseULID(raw)
		if err != nil {
			h.respondError(c, appErrors.NewValidationError("category_id", "formato inválido"))
			return
		}
		filter.CategoryId = &categoryID
	}

	pagination := h.parsePagination(c)

	ctx := c.Request.Context()
	products, total, err := h.CatalogService.ListProducts(ctx, filter, pagination)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response := pkg.NewPaginatedResponse(products, pagination.Page, pagination.Limit, total)
	c.JSON(http.StatusOK, response)
}

// StockIn registra entrada avulsa de estoque (ajuste de inventário, devolução).
func (h *Handler) StockIn(c *gin.Context) {
	productID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	var body contracts.StockAdjustRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	ctx := c.Request.Context()
	if err := h.CatalogService.IncrementStock(ctx, productID, body.Quantity); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Entrada de estoque registrada com sucesso"})
}

// StockOut registra saída avulsa de estoque (perda, avaria).
func (h *Handler) StockOut(c *gin.Context) {
	productID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	var body contracts.StockAdjustRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	ctx := c.Request.Context()
	if err := h.CatalogService.DecrementStock(ctx, productID, body.Quantity); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Saída de estoque registrada com sucesso"})
}

func (h *Handler) CreateCategory(c *gin.Context) {
	var body contracts.CategoryCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	req := &catalog.CreateCategoryRequest{Name: body.Name}

	if body.ParentID != "" {
		parentID, err := pkg.ParseULID(body.ParentID)
		if err != nil {
			h.respondError(c, appErrors.NewValidationError("parent_id", "formato inválido"))
			return
		}
		req.ParentId = &parentID
	}

	ctx := c.Request.Context()
	category, err := h.CatalogService.CreateCategory(ctx, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.CategoryCreateResponse{
		Message:  "Categoria criada com sucesso",
		Category: category,
	})
}

func (h *Handler) GetCategoryTree(c *gin.Context) {
	ctx := c.Request.Context()
	tree, err := h.CatalogService.GetCategoryTree(ctx)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.CategoryTreeResponse{Categories: tree})
}
