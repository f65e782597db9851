package contracts

import (
	"Mobilia/internal/domain/payment"
)

type PaymentMethodCreateRequest struct {
	Name               string `json:"name" binding:"required,max=100"`
	Category           string `json:"category" binding:"required,oneof=CASH CREDIT_CARD DEBIT_CARD PIX BANK_SLIP OTHER"`
	AllowsInstallments bool   `json:"allows_installments" binding:"omitempty"`
	HasFees            bool   `json:"has_fees" binding:"omitempty"`
	MaxInstallments    int    `json:"max_installments" binding:"omitempty,min=0,max=24"`
}

type PaymentMethodUpdateRequest struct {
	Name               *string `json:"name" binding:"omitempty,max=100"`
	AllowsInstallments *bool   `json:"allows_installments" binding:"omitempty"`
	HasFees            *bool   `json:"has_fees" binding:"omitempty"`
	MaxInstallments    *int    `json:"max_installments" binding:"omitempty,min=0,max=24"`
	IsActive           *bool   `json:"is_active" binding:"omitempty"`
}

type CardBrandCreateRequest struct {
	Name string `json:"name" binding:"required,max=50"`
}

type CardFeeRuleCreateRequest struct {
	CardBrandID   string  `json:"card_brand_id" binding:"required"`
	Installments  int     `json:"installments" binding:"required,min=1,max=24"`
	FeePercentage float64 `json:"fee_percentage" binding:"omitempty,gte=0"`
	FixedFee      float64 `json:"fixed_fee" binding:"omitempty,gte=0"`
}

// PaymentPlanPayload é um plano como digitado na frente de caixa. Valor e
// vencimento seguem como texto; a validação pertence ao planejador.
type PaymentPlanPayload struct {
	PaymentMethodID string `json:"payment_method_id" binding:"omitempty"`
	CardBrandID     string `json:"card_brand_id" binding:"omitempty"`
	Installments    int    `json:"installments" binding:"omitempty"`
	Amount          string `json:"amount" binding:"omitempty"`
	FirstDueDate    string `json:"first_due_date" binding:"omitempty"`
}

type PlanSimulateRequest struct {
	SaleTotal float64              `json:"sale_total" binding:"required,gt=0"`
	Plans     []PaymentPlanPayload `json:"plans" binding:"required,min=1"`
}

type PaymentMethodCreateResponse struct {
	Message string                 `json:"message"`
	Method  *payment.PaymentMethod `json:"method"`
}

type PaymentMethodSingleResponse struct {
	Method *payment.PaymentMethod `json:"method"`
}

type CardBrandCreateResponse struct {
	Message string             `json:"message"`
	Brand   *payment.CardBrand `json:"brand"`
}

type CardBrandListResponse struct {
	Brands []*payment.CardBrand `json:"brands"`
}

type CardFeeRuleCreateResponse struct {
	Message string               `json:"message"`
	Rule    *payment.CardFeeRule `json:"rule"`
}

type CardFeeRuleListResponse struct {
	Rules []payment.CardFeeRule `json:"rules"`
}

type PlanSimulateResponse struct {
	Ledger payment.Ledger `json:"ledger"`
}
