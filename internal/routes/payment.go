package routes

import (
	"net/http"

	"Mobilia/internal/contracts"
	"Mobilia/internal/domain/payment"
	appErrors "Mobilia/internal/errors"
	"Mobilia/internal/pkg"

	"github.com/gin-gonic/gin"
)

func (h *Handler) CreatePaymentMethod(c *gin.Context) {
	var body contracts.PaymentMethodCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	req := &payment.CreateMethodRequest{
		Name:               body.Name,
		Category:           payment.MethodCategory(body.Category),
		AllowsInstallments: body.AllowsInstallments,
		HasFees:            body.HasFees,
		MaxInstallments:    body.MaxInstallments,
	}

	ctx := c.Request.Context()
	method, err := h.PaymentService.CreateMethod(ctx, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.PaymentMethodCreateResponse{
		Message: "Forma de pagamento criada com sucesso",
		Method:  method,
	})
}

func (h *Handler) UpdatePaymentMethod(c *gin.Context) {
	methodID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	var body contracts.PaymentMethodUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	req := &payment.UpdateMethodRequest{
		Name:               body.Name,
		AllowsInstallments: body.AllowsInstallments,
		HasFees:            body.HasFees,
		MaxInstallments:    body.MaxInstallments,
		IsActive:           body.IsActive,
	}

	ctx := c.Request.Context()
	if err := h.PaymentService.UpdateMethod(ctx, methodID, req); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Forma de pagamento atualizada com sucesso"})
}

func (h *Handler) GetPaymentMethod(c *gin.Context) {
	methodID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	ctx := c.Request.Context()
	method, err := h.PaymentService.GetMethodById(ctx, methodID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.PaymentMethodSingleResponse{Method: method})
}

func (h *Handler) ListPaymentMethods(c *gin.Context) {
	onlyActive := c.DefaultQuery("only_active", "true") == "true"
	pagination := h.parsePagination(c)

	ctx := c.Request.Context()
	methods, total, err := h.PaymentService.ListMethods(ctx, onlyActive, pagination)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response := pkg.NewPaginatedResponse(methods, pagination.Page, pagination.Limit, total)
	c.JSON(http.StatusOK, response)
}

func (h *Handler) CreateCardBrand(c *gin.Context) {
	var body contracts.CardBrandCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	ctx := c.Request.Context()
	brand, err := h.PaymentService.CreateBrand(ctx, body.Name)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.CardBrandCreateResponse{
		Message: "Bandeira criada com sucesso",
		Brand:   brand,
	})
}

func (h *Handler) ListCardBrands(c *gin.Context) {
	ctx := c.Request.Context()
	brands, err := h.PaymentService.ListBrands(ctx)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.CardBrandListResponse{Brands: brands})
}

func (h *Handler) CreateCardFeeRule(c *gin.Context) {
	var body contracts.CardFeeRuleCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	brandID, err := pkg.ParseULID(body.CardBrandID)
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("card_brand_id", "formato inválido"))
		return
	}

	req := &payment.CreateFeeRuleRequest{
		CardBrandId:   brandID,
		Installments:  body.Installments,
		FeePercentage: body.FeePercentage,
		FixedFee:      body.FixedFee,
	}

	ctx := c.Request.Context()
	rule, err := h.PaymentService.CreateFeeRule(ctx, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.CardFeeRuleCreateResponse{
		Message: "Regra de taxa criada com sucesso",
		Rule:    rule,
	})
}

func (h *Handler) DeleteCardFeeRule(c *gin.Context) {
	ruleID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	ctx := c.Request.Context()
	if err := h.PaymentService.DeleteFeeRule(ctx, ruleID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Regra de taxa removida com sucesso"})
}

func (h *Handler) ListCardFeeRules(c *gin.Context) {
	brandID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	ctx := c.Request.Context()
	rules, err := h.PaymentService.ListFeeRulesByBrand(ctx, brandID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.CardFeeRuleListResponse{Rules: rules})
}

// SimulatePlan reexecuta o planejador sobre os planos digitados sem persistir
// nada. É o mesmo caminho de validação que a criação da venda percorre.
func (h *Handler) SimulatePlan(c *gin.Context) {
	var body contracts.PlanSimulateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	ctx := c.Request.Context()
	ledger := payment.NewLedger(body.SaleTotal)
	for _, plan := range body.Plans {
		input, err := h.PaymentService.BuildPlanInput(ctx, &payment.PlanRequest{
			PaymentMethodId: plan.PaymentMethodID,
			CardBrandId:     plan.CardBrandID,
			Installments:    plan.Installments,
			Amount:          plan.Amount,
			FirstDueDate:    plan.FirstDueDate,
		})
		if err != nil {
			h.respondError(c, err)
			return
		}

		ledger, err = payment.AddPlan(ledger, input)
		if err != nil {
			h.respondError(c, err)
			return
		}
	}

	c.JSON(http.StatusOK, contracts.PlanSimulateResponse{Ledger: ledger})
}
