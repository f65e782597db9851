package payment

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	appErrors "Mobilia/internal/errors"

	"github.com/oklog/ulid/v2"
)

const (
	// MaxInstallments é o teto global de parcelas na entrada de pagamentos.
	MaxInstallments = 24

	// AmountTolerance é a folga aceita entre o total planejado e o total da
	// venda, em unidades de moeda.
	AmountTolerance = 0.01

	DateLayout = "2006-01-02"
)

// InstallmentDetail é uma parcela calculada de um plano de pagamento.
type InstallmentDetail struct {
	Number        int       `json:"number"`
	Amount        float64   `json:"amount"`
	DueDate       time.Time `json:"dueDate"`
	FeePercentage float64   `json:"feePercentage"`
	FeeAmount     float64   `json:"feeAmount"`
	NetAmount     float64   `json:"netAmount"`
}

// PaymentPlan é a contribuição de uma forma de pagamento para o total da
// venda. Imutável depois de inserido no ledger; remoção é sempre integral.
type PaymentPlan struct {
	PaymentMethodId ulid.ULID           `json:"paymentMethodId"`
	MethodName      string              `json:"methodName"`
	CardBrandId     *ulid.ULID          `json:"cardBrandId,omitempty"`
	Installments    int                 `json:"installments"`
	Amount          float64             `json:"amount"`
	FirstDueDate    time.Time           `json:"firstDueDate"`
	Details         []InstallmentDetail `json:"details"`
}

// Ledger é a coleção ordenada de planos de pagamento de uma venda em
// digitação. Tratado como valor imutável: AddPlan e RemovePlan devolvem um
// ledger novo em vez de alterar o recebido.
type Ledger struct {
	SaleTotal float64       `json:"saleTotal"`
	Plans     []PaymentPlan `json:"plans"`
}

func NewLedger(saleTotal float64) Ledger {
	return Ledger{SaleTotal: saleTotal}
}

// PlanInput é a entrada crua de um plano. Valor e vencimento chegam como
// strings porque a validação de parseabilidade pertence ao planejador; os
// dados de referência chegam já resolvidos pelo chamador.
type PlanInput struct {
	Method       *PaymentMethod
	Brand        *CardBrand
	FeeRules     []CardFeeRule
	Installments int
	Amount       string
	FirstDueDate string
}

// AddPlan valida a entrada, calcula as parcelas e devolve um ledger novo com
// o plano inserido na posição ordenada por vencimento. Em falha de validação
// o ledger recebido é devolvido intacto.
func AddPlan(ledger Ledger, in PlanInput) (Ledger, error) {
	if in.Method == nil {
		return ledger, appErrors.ErrMissingPaymentMethod
	}

	if in.Method.NeedsCardBrand() && in.Brand == nil {
		return ledger, appErrors.ErrMissingCardBrand
	}

	// ParseFloat aceita "NaN" e "Inf"; nenhum dos dois é um valor de venda.
	amount, err := strconv.ParseFloat(strings.TrimSpace(in.Amount), 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return ledger, appErrors.ErrInvalidAmount
	}

	firstDueDate, err := time.Parse(DateLayout, strings.TrimSpace(in.FirstDueDate))
	if err != nil {
		return ledger, appErrors.ErrInvalidDueDate
	}

	if amount-Remaining(ledger) > AmountTolerance {
		return ledger, appErrors.ErrAmountExceedsRemaining
	}

	count := clampInstallments(in.Method, in.Installments)

	var rules []CardFeeRule
	if in.Method.HasFees && in.Brand != nil {
		rules = in.FeeRules
	}

	plan := PaymentPlan{
		PaymentMethodId: in.Method.Id,
		MethodName:      in.Method.Name,
		Installments:    count,
		Amount:          amount,
		FirstDueDate:    firstDueDate,
		Details:         ComputeDetails(amount, count, firstDueDate, rules),
	}
	if in.Brand != nil {
		brandId := in.Brand.Id
		plan.CardBrandId = &brandId
	}

	plans := make([]PaymentPlan, len(ledger.Plans), len(ledger.Plans)+1)
	copy(plans, ledger.Plans)
	plans = append(plans, plan)
	sortPlans(plans)

	return Ledger{SaleTotal: ledger.SaleTotal, Plans: plans}, nil
}

// RemovePlan devolve um ledger sem o plano da posição dada. Índice fora da
// lista devolve o ledger inalterado. Nenhuma revalidação contra o total da
// venda acontece aqui: um ledger pode ficar subfinanciado até a submissão.
func RemovePlan(ledger Ledger, index int) Ledger {
	if index < 0 || index >= len(ledger.Plans) {
		return ledger
	}

	plans := make([]PaymentPlan, 0, len(ledger.Plans)-1)
	plans = append(plans, ledger.Plans[:index]...)
	plans = append(plans, ledger.Plans[index+1:]...)

	return Ledger{SaleTotal: ledger.SaleTotal, Plans: plans}
}

func TotalPlanned(ledger Ledger) float64 {
	var total float64
	for _, plan := range ledger.Plans {
		total += plan.Amount
	}
	return total
}

func Remaining(ledger Ledger) float64 {
	return ledger.SaleTotal - TotalPlanned(ledger)
}

// ComputeDetails divide o valor em parcelas iguais (sem redistribuição de
// resíduo de arredondamento) e aplica a taxa da regra cujo número de parcelas
// é igual ao índice da parcela. Sem regra correspondente a parcela sai sem
// taxa. Vencimentos andam mês a mês a partir do primeiro, com o estouro de
// fim de mês nativo do time.AddDate.
func ComputeDetails(amount float64, count int, firstDueDate time.Time, rules []CardFeeRule) []InstallmentDetail {
	if count < 1 {
		count = 1
	}

	installmentAmount := amount / float64(count)
	details := make([]InstallmentDetail, 0, count)

	for i := 1; i <= count; i++ {
		feePct := 0.0
		feeAmt := 0.0
		if rule := findRule(rules, i); rule != nil {
			feePct = rule.FeePercentage
			feeAmt = installmentAmount*feePct/100 + rule.FixedFee
		}

		details = append(details, InstallmentDetail{
			Number:        i,
			Amount:        installmentAmount,
			DueDate:       firstDueDate.AddDate(0, i-1, 0),
			FeePercentage: feePct,
			FeeAmount:     feeAmt,
			NetAmount:     installmentAmount - feeAmt,
		})
	}

	return details
}

func clampInstallments(method *PaymentMethod, requested int) int {
	if !method.AllowsInstallments {
		return 1
	}
	if requested < 1 {
		return 1
	}
	if ceiling := method.InstallmentCeiling(); requested > ceiling {
		return ceiling
	}
	return requested
}

func findRule(rules []CardFeeRule, installments int) *CardFeeRule {
	for i := range rules {
		if rules[i].Installments == installments {
			return &rules[i]
		}
	}
	return nil
}

func sortPlans(plans []PaymentPlan) {
	sort.SliceStable(plans, func(i, j int) bool {
		return plans[i].FirstDueDate.Format(DateLayout) < plans[j].FirstDueDate.Format(DateLayout)
	})
}
