package payment_test

import (
	"math"
	"reflect"
	"testing"
	"time"

	"Mobilia/internal/domain/payment"
	appErrors "Mobilia/internal/errors"
	"Mobilia/internal/pkg"
)

const floatEps = 1e-9

func cashMethod() *payment.PaymentMethod {
	return &payment.PaymentMethod{
		Id:       pkg.GenerateULIDObject(),
		Name:     "Dinheiro",
		Category: payment.CategoryCash,
		IsActive: true,
	}
}

func bankSlipMethod() *payment.PaymentMethod {
	return &payment.PaymentMethod{
		Id:                 pkg.GenerateULIDObject(),
		Name:               "Boleto",
		Category:           payment.CategoryBankSlip,
		AllowsInstallments: true,
		IsActive:           true,
	}
}

func creditCardMethod() *payment.PaymentMethod {
	return &payment.PaymentMethod{
		Id:                 pkg.GenerateULIDObject(),
		Name:               "Cartão de Crédito",
		Category:           payment.CategoryCreditCard,
		AllowsInstallments: true,
		HasFees:            true,
		IsActive:           true,
	}
}

func visaBrand() *payment.CardBrand {
	return &payment.CardBrand{
		Id:       pkg.GenerateULIDObject(),
		Name:     "Visa",
		IsActive: true,
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < floatEps
}

func TestAddPlanValidationOrder(t *testing.T) {
	t.Parallel()

	ledger := payment.NewLedger(1000)

	tests := []struct {
		name    string
		input   payment.PlanInput
		wantErr *appErrors.AppError
	}{
		{
			name:    "sem forma de pagamento",
			input:   payment.PlanInput{Amount: "100", FirstDueDate: "2024-05-10"},
			wantErr: appErrors.ErrMissingPaymentMethod,
		},
		{
			name: "cartao sem bandeira",
			input: payment.PlanInput{
				Method: creditCardMethod(),
				Amount: "100", FirstDueDate: "2024-05-10",
			},
			wantErr: appErrors.ErrMissingCardBrand,
		},
		{
			name: "valor nao numerico",
			input: payment.PlanInput{
				Method: cashMethod(),
				Amount: "abc", FirstDueDate: "2024-05-10",
			},
			wantErr: appErrors.ErrInvalidAmount,
		},
		{
			name: "valor zero",
			input: payment.PlanInput{
				Method: cashMethod(),
				Amount: "0", FirstDueDate: "2024-05-10",
			},
			wantErr: appErrors.ErrInvalidAmount,
		},
		{
			name: "valor negativo",
			input: payment.PlanInput{
				Method: cashMethod(),
				Amount: "-50", FirstDueDate: "2024-05-10",
			},
			wantErr: appErrors.ErrInvalidAmount,
		},
		{
			name: "valor NaN",
			input: payment.PlanInput{
				Method: cashMethod(),
				Amount: "NaN", FirstDueDate: "2024-05-10",
			},
			wantErr: appErrors.ErrInvalidAmount,
		},
		{
			name: "valor infinito",
			input: payment.PlanInput{
				Method: cashMethod(),
				Amount: "Inf", FirstDueDate: "2024-05-10",
			},
			wantErr: appErrors.ErrInvalidAmount,
		},
		{
			name: "vencimento vazio",
			input: payment.PlanInput{
				Method: cashMethod(),
				Amount: "100",
			},
			wantErr: appErrors.ErrInvalidDueDate,
		},
		{
			name: "vencimento invalido",
			input: payment.PlanInput{
				Method: cashMethod(),
				Amount: "100", FirstDueDate: "2024-13-45",
			},
			wantErr: appErrors.ErrInvalidDueDate,
		},
		{
			name: "valor acima do restante",
			input: payment.PlanInput{
				Method: cashMethod(),
				Amount: "1000.02", FirstDueDate: "2024-05-10",
			},
			wantErr: appErrors.ErrAmountExceedsRemaining,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got, err := payment.AddPlan(ledger, tt.input)
			if err == nil {
				t.Fatalf("expected error %s", tt.wantErr.Code)
			}
			appErr, ok := appErrors.AsAppError(err)
			if !ok {
				t.Fatalf("expected AppError, got %T", err)
			}
			if appErr.Code != tt.wantErr.Code {
				t.Fatalf("expected code %s, got %s", tt.wantErr.Code, appErr.Code)
			}
			if !reflect.DeepEqual(got, ledger) {
				t.Fatalf("ledger must be unchanged on validation failure")
			}
		})
	}
}

func TestAddPlanEqualSplit(t *testing.T) {
	t.Parallel()

	ledger := payment.NewLedger(1000)

	got, err := payment.AddPlan(ledger, payment.PlanInput{
		Method:       bankSlipMethod(),
		Installments: 3,
		Amount:       "900",
		FirstDueDate: "2024-05-10",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(got.Plans) != 1 {
		t.Fatalf("expected 1 plan, got %d", len(got.Plans))
	}

	plan := got.Plans[0]
	if len(plan.Details) != 3 {
		t.Fatalf("expected 3 installments, got %d", len(plan.Details))
	}

	for i, detail := range plan.Details {
		if detail.Number != i+1 {
			t.Fatalf("installment %d has number %d", i, detail.Number)
		}
		if !almostEqual(detail.Amount, 300) {
			t.Fatalf("installment %d amount = %f, want 300", i+1, detail.Amount)
		}
	}
}

func TestAddPlanEqualSplitKeepsResidue(t *testing.T) {
	t.Parallel()

	// 100/3 nao fecha em centavos; a divisao igual e mantida sem ajuste na
	// ultima parcela.
	got, err := payment.AddPlan(payment.NewLedger(100), payment.PlanInput{
		Method:       bankSlipMethod(),
		Installments: 3,
		Amount:       "100",
		FirstDueDate: "2024-05-10",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	plan := got.Plans[0]
	expected := 100.0 / 3.0
	for _, detail := range plan.Details {
		if !almostEqual(detail.Amount, expected) {
			t.Fatalf("installment %d amount = %f, want %f", detail.Number, detail.Amount, expected)
		}
	}
}

func TestAddPlanMonotonicDueDates(t *testing.T) {
	t.Parallel()

	got, err := payment.AddPlan(payment.NewLedger(1200), payment.PlanInput{
		Method:       bankSlipMethod(),
		Installments: 4,
		Amount:       "1200",
		FirstDueDate: "2024-01-15",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	first := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	for i, detail := range got.Plans[0].Details {
		want := first.AddDate(0, i, 0)
		if !detail.DueDate.Equal(want) {
			t.Fatalf("installment %d due date = %s, want %s", i+1, detail.DueDate, want)
		}
		if detail.DueDate.Day() != 15 {
			t.Fatalf("installment %d lost day-of-month: %s", i+1, detail.DueDate)
		}
	}
}

func TestAddPlanMonthOverflowFollowsAddDate(t *testing.T) {
	t.Parallel()

	got, err := payment.AddPlan(payment.NewLedger(300), payment.PlanInput{
		Method:       bankSlipMethod(),
		Installments: 2,
		Amount:       "300",
		FirstDueDate: "2024-01-31",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 31 de janeiro + 1 mes estoura para 2 de marco em ano bissexto; o
	// comportamento nativo do AddDate e preservado.
	second := got.Plans[0].Details[1].DueDate
	want := time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	if !second.Equal(want) {
		t.Fatalf("second due date = %s, want %s", second, want)
	}
}

func TestAddPlanFeeDegradation(t *testing.T) {
	t.Parallel()

	t.Run("metodo sem taxas", func(t *testing.T) {
		got, err := payment.AddPlan(payment.NewLedger(500), payment.PlanInput{
			Method:       bankSlipMethod(),
			Installments: 2,
			Amount:       "500",
			FirstDueDate: "2024-05-10",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, detail := range got.Plans[0].Details {
			if detail.FeePercentage != 0 || detail.FeeAmount != 0 {
				t.Fatalf("installment %d has fees: %+v", detail.Number, detail)
			}
			if !almostEqual(detail.NetAmount, detail.Amount) {
				t.Fatalf("installment %d net != gross", detail.Number)
			}
		}
	})

	t.Run("sem regra para a parcela", func(t *testing.T) {
		brand := visaBrand()
		rules := []payment.CardFeeRule{
			{CardBrandId: brand.Id, Installments: 6, FeePercentage: 4.5},
		}
		got, err := payment.AddPlan(payment.NewLedger(500), payment.PlanInput{
			Method:       creditCardMethod(),
			Brand:        brand,
			FeeRules:     rules,
			Installments: 2,
			Amount:       "500",
			FirstDueDate: "2024-05-10",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, detail := range got.Plans[0].Details {
			if detail.FeeAmount != 0 {
				t.Fatalf("installment %d should degrade to zero fee", detail.Number)
			}
		}
	})
}

func TestAddPlanFeeApplication(t *testing.T) {
	t.Parallel()

	brand := visaBrand()
	rules := []payment.CardFeeRule{
		{CardBrandId: brand.Id, Installments: 1, FeePercentage: 2.5, FixedFee: 0.5},
		{CardBrandId: brand.Id, Installments: 3, FeePercentage: 3.5, FixedFee: 0},
	}

	got, err := payment.AddPlan(payment.NewLedger(900), payment.PlanInput{
		Method:       creditCardMethod(),
		Brand:        brand,
		FeeRules:     rules,
		Installments: 3,
		Amount:       "900",
		FirstDueDate: "2024-05-10",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	details := got.Plans[0].Details

	// Parcela 1 casa com a regra de 1 parcela.
	wantFee1 := 300*2.5/100 + 0.5
	if !almostEqual(details[0].FeeAmount, wantFee1) {
		t.Fatalf("installment 1 fee = %f, want %f", details[0].FeeAmount, wantFee1)
	}
	if !almostEqual(details[0].NetAmount, 300-wantFee1) {
		t.Fatalf("installment 1 net = %f", details[0].NetAmount)
	}

	// Parcela 2 nao tem regra.
	if details[1].FeeAmount != 0 || details[1].FeePercentage != 0 {
		t.Fatalf("installment 2 should have no fee, got %+v", details[1])
	}

	// Parcela 3 casa com a regra de 3 parcelas.
	wantFee3 := 300 * 3.5 / 100
	if !almostEqual(details[2].FeeAmount, wantFee3) {
		t.Fatalf("installment 3 fee = %f, want %f", details[2].FeeAmount, wantFee3)
	}
	if !almostEqual(details[2].NetAmount, 300-wantFee3) {
		t.Fatalf("installment 3 net = %f", details[2].NetAmount)
	}
}

func TestAddPlanOvershootGuard(t *testing.T) {
	t.Parallel()

	ledger := payment.NewLedger(1000)

	ledger, err := payment.AddPlan(ledger, payment.PlanInput{
		Method: cashMethod(), Amount: "600", FirstDueDate: "2024-05-10",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = payment.AddPlan(ledger, payment.PlanInput{
		Method: cashMethod(), Amount: "401", FirstDueDate: "2024-06-10",
	})
	appErr, ok := appErrors.AsAppError(err)
	if !ok || appErr.Code != appErrors.ErrAmountExceedsRemaining.Code {
		t.Fatalf("expected AMOUNT_EXCEEDS_REMAINING, got %v", err)
	}

	ledger, err = payment.AddPlan(ledger, payment.PlanInput{
		Method: cashMethod(), Amount: "400", FirstDueDate: "2024-06-10",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !almostEqual(payment.TotalPlanned(ledger), 1000) {
		t.Fatalf("total planned = %f, want 1000", payment.TotalPlanned(ledger))
	}
	if !almostEqual(payment.Remaining(ledger), 0) {
		t.Fatalf("remaining = %f, want 0", payment.Remaining(ledger))
	}
}

func TestAddPlanOrdersLedgerByDueDate(t *testing.T) {
	t.Parallel()

	ledger := payment.NewLedger(3000)
	dates := []string{"2024-03-10", "2024-01-05", "2024-02-20"}

	for _, date := range dates {
		var err error
		ledger, err = payment.AddPlan(ledger, payment.PlanInput{
			Method: cashMethod(), Amount: "1000", FirstDueDate: date,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	want := []string{"2024-01-05", "2024-02-20", "2024-03-10"}
	for i, plan := range ledger.Plans {
		if got := plan.FirstDueDate.Format(payment.DateLayout); got != want[i] {
			t.Fatalf("plan %d due date = %s, want %s", i, got, want[i])
		}
	}
}

func TestAddPlanForcesSingleInstallment(t *testing.T) {
	t.Parallel()

	for _, requested := range []int{0, 1, 5, 48} {
		got, err := payment.AddPlan(payment.NewLedger(500), payment.PlanInput{
			Method:       cashMethod(),
			Installments: requested,
			Amount:       "500",
			FirstDueDate: "2024-05-10",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		plan := got.Plans[0]
		if plan.Installments != 1 || len(plan.Details) != 1 {
			t.Fatalf("requested %d: expected single installment, got %d", requested, plan.Installments)
		}
		if !almostEqual(plan.Details[0].Amount, 500) {
			t.Fatalf("single installment amount = %f", plan.Details[0].Amount)
		}
	}
}

func TestAddPlanClampsToCeiling(t *testing.T) {
	t.Parallel()

	t.Run("teto global", func(t *testing.T) {
		got, err := payment.AddPlan(payment.NewLedger(2400), payment.PlanInput{
			Method:       bankSlipMethod(),
			Installments: 48,
			Amount:       "2400",
			FirstDueDate: "2024-05-10",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Plans[0].Installments != payment.MaxInstallments {
			t.Fatalf("installments = %d, want %d", got.Plans[0].Installments, payment.MaxInstallments)
		}
	})

	t.Run("teto da forma de pagamento", func(t *testing.T) {
		method := bankSlipMethod()
		method.MaxInstallments = 6
		got, err := payment.AddPlan(payment.NewLedger(2400), payment.PlanInput{
			Method:       method,
			Installments: 12,
			Amount:       "2400",
			FirstDueDate: "2024-05-10",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Plans[0].Installments != 6 {
			t.Fatalf("installments = %d, want 6", got.Plans[0].Installments)
		}
	})
}

func TestAddThenRemoveRoundTrip(t *testing.T) {
	t.Parallel()

	ledger := payment.NewLedger(1000)
	ledger, err := payment.AddPlan(ledger, payment.PlanInput{
		Method: cashMethod(), Amount: "300", FirstDueDate: "2024-02-10",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	before := ledger

	// O novo plano vence antes do existente e entra na posicao 0.
	ledger, err = payment.AddPlan(ledger, payment.PlanInput{
		Method: cashMethod(), Amount: "200", FirstDueDate: "2024-01-10",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ledger.Plans) != 2 || ledger.Plans[0].FirstDueDate.Format(payment.DateLayout) != "2024-01-10" {
		t.Fatalf("new plan not inserted at position 0: %+v", ledger.Plans)
	}

	after := payment.RemovePlan(ledger, 0)
	if !reflect.DeepEqual(after, before) {
		t.Fatalf("add+remove round trip changed the ledger:\nbefore: %+v\nafter:  %+v", before, after)
	}
}

func TestRemovePlanOutOfRange(t *testing.T) {
	t.Parallel()

	ledger := payment.NewLedger(1000)
	ledger, err := payment.AddPlan(ledger, payment.PlanInput{
		Method: cashMethod(), Amount: "300", FirstDueDate: "2024-02-10",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, index := range []int{-1, 1, 10} {
		if got := payment.RemovePlan(ledger, index); !reflect.DeepEqual(got, ledger) {
			t.Fatalf("index %d should leave ledger unchanged", index)
		}
	}
}

func TestRemovePlanAllowsUnderfundedLedger(t *testing.T) {
	t.Parallel()

	ledger := payment.NewLedger(1000)
	ledger, _ = payment.AddPlan(ledger, payment.PlanInput{
		Method: cashMethod(), Amount: "1000", FirstDueDate: "2024-02-10",
	})

	ledger = payment.RemovePlan(ledger, 0)
	if !almostEqual(payment.Remaining(ledger), 1000) {
		t.Fatalf("remaining = %f, want 1000", payment.Remaining(ledger))
	}
}
