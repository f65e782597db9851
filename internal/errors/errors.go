package errors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	ErrNotFound          = NewAppError("NOT_FOUND", "Recurso não encontrado", http.StatusNotFound)
	ErrBadRequest        = NewAppError("BAD_REQUEST", "Requisição inválida", http.StatusBadRequest)
	ErrInternalServer    = NewAppError("INTERNAL_SERVER_ERROR", "Erro interno do servidor", http.StatusInternalServerError)
	ErrConflict          = NewAppError("CONFLICT", "Conflito de recursos", http.StatusConflict)
	ErrValidation        = NewAppError("VALIDATION_ERROR", "Erro de validação", http.StatusBadRequest)
	ErrDatabase          = NewAppError("DATABASE_ERROR", "Erro no banco de dados", http.StatusInternalServerError)
	ErrCustomerNotFound  = NewAppError("CUSTOMER_NOT_FOUND", "Cliente não encontrado", http.StatusNotFound)
	ErrSupplierNotFound  = NewAppError("SUPPLIER_NOT_FOUND", "Fornecedor não encontrado", http.StatusNotFound)
	ErrEmployeeNotFound  = NewAppError("EMPLOYEE_NOT_FOUND", "Funcionário não encontrado", http.StatusNotFound)
	ErrProductNotFound   = NewAppError("PRODUCT_NOT_FOUND", "Produto não encontrado", http.StatusNotFound)
	ErrCategoryNotFound  = NewAppError("CATEGORY_NOT_FOUND", "Categoria não encontrada", http.StatusNotFound)
	ErrSaleNotFound      = NewAppError("SALE_NOT_FOUND", "Venda não encontrada", http.StatusNotFound)
	ErrPurchaseNotFound  = NewAppError("PURCHASE_NOT_FOUND", "Compra não encontrada", http.StatusNotFound)
	ErrDeliveryNotFound  = NewAppError("DELIVERY_NOT_FOUND", "Entrega não encontrada", http.StatusNotFound)
	ErrAssemblyNotFound  = NewAppError("ASSEMBLY_NOT_FOUND", "Montagem não encontrada", http.StatusNotFound)
	ErrEntryNotFound     = NewAppError("ENTRY_NOT_FOUND", "Lançamento não encontrado", http.StatusNotFound)
	ErrMethodNotFound    = NewAppError("PAYMENT_METHOD_NOT_FOUND", "Forma de pagamento não encontrada", http.StatusNotFound)
	ErrBrandNotFound     = NewAppError("CARD_BRAND_NOT_FOUND", "Bandeira de cartão não encontrada", http.StatusNotFound)
	ErrInsufficientStock = NewAppError("INSUFFICIENT_STOCK", "Estoque insuficiente", http.StatusBadRequest)
)

// Falhas de validação do planejador de parcelas. São erros corrigíveis pelo
// usuário e nunca abortam o estado do ledger.
var (
	ErrMissingPaymentMethod   = NewAppError("MISSING_PAYMENT_METHOD", "Forma de pagamento não selecionada", http.StatusBadRequest)
	ErrMissingCardBrand       = NewAppError("MISSING_CARD_BRAND", "Bandeira do cartão não selecionada", http.StatusBadRequest)
	ErrInvalidAmount          = NewAppError("INVALID_AMOUNT", "Valor deve ser um número maior que zero", http.StatusBadRequest)
	ErrInvalidDueDate         = NewAppError("INVALID_DUE_DATE", "Data de vencimento inválida", http.StatusBadRequest)
	ErrAmountExceedsRemaining = NewAppError("AMOUNT_EXCEEDS_REMAINING", "Valor excede o restante a pagar da venda", http.StatusBadRequest)
)

type AppError struct {
	Code       string
	Message    string
	StatusCode int
	Details    map[string]interface{}
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s - %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) WithDetails(details map[string]interface{}) *AppError {
	clone := e.clone()
	clone.Details = make(map[string]interface{}, len(details))
	for k, v := range details {
		clone.Details[k] = v
	}
	return clone
}

func (e *AppError) WithError(err error) *AppError {
	clone := e.clone()
	clone.Err = err
	return clone
}

func NewAppError(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Details:    make(map[string]interface{}),
	}
}

func WrapError(err error, code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Err:        err,
		Details:    make(map[string]interface{}),
	}
}

func (e *AppError) clone() *AppError {
	if e == nil {
		return nil
	}
	clone := *e
	clone.Details = make(map[string]interface{}, len(e.Details))
	for k, v := range e.Details {
		clone.Details[k] = v
	}
	return &clone
}

func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	ok := errors.As(err, &appErr)
	return appErr, ok
}

func FromError(err error) *AppError {
	if appErr, ok := AsAppError(err); ok {
		return appErr
	}

	if errors.Is(err, context.Canceled) {
		return WrapError(err, "REQUEST_CANCELED", "Requisição cancelada pelo cliente", http.StatusRequestTimeout)
	}

	return WrapError(err, "UNKNOWN_ERROR", "Erro desconhecido", http.StatusInternalServerError)
}

func NewValidationError(field, message string) *AppError {
	return &AppError{
		Code:       "VALIDATION_ERROR",
		Message:    message,
		StatusCode: http.StatusBadRequest,
		Details: map[string]interface{}{
			"field": field,
		},
	}
}

func NewDatabaseError(err error) *AppError {
	return WrapError(err, "DATABASE_ERROR", "Erro ao executar operação no banco de dados", http.StatusInternalServerError)
}

func NewConflictError(resource string) *AppError {
	return &AppError{
		Code:       "CONFLICT",
		Message:    fmt.Sprintf("%s já existe", resource),
		StatusCode: http.StatusConflict,
		Details: map[string]interface{}{
			"resource": resource,
		},
	}
}

func ParseValidationErrors(err error) *AppError {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return ErrBadRequest.WithError(err)
	}

	fieldErrors := make([]map[string]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		fieldErrors = append(fieldErrors, map[string]string{
			"field":   translateFieldName(fieldErr.Field()),
			"message": translateValidationError(fieldErr),
		})
	}

	return &AppError{
		Code:       "VALIDATION_ERROR",
		Message:    "Erro de validação nos campos",
		StatusCode: http.StatusBadRequest,
		Details: map[string]interface{}{
			"fields": fieldErrors,
		},
	}
}

func translateFieldName(field string) string {
	fieldMap := map[string]string{
		"amount":          "valor",
		"name":            "nome",
		"description":     "descrição",
		"document":        "documento",
		"price":           "preço",
		"cost":            "custo",
		"stock":           "estoque",
		"quantity":        "quantidade",
		"installments":    "parcelas",
		"duedate":         "vencimento",
		"firstduedate":    "primeiro vencimento",
		"paymentmethodid": "forma de pagamento",
		"cardbrandid":     "bandeira",
		"feepercentage":   "percentual de taxa",
		"fixedfee":        "taxa fixa",
		"customerid":      "cliente",
		"supplierid":      "fornecedor",
		"sellerid":        "vendedor",
		"productid":       "produto",
		"categoryid":      "categoria",
		"scheduleddate":   "data agendada",
	}
	if translated, ok := fieldMap[strings.ToLower(field)]; ok {
		return translated
	}
	return field
}

func translateValidationError(fe validator.FieldError) string {
	fieldName := translateFieldName(fe.Field())

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s é obrigatório", fieldName)
	case "min":
		return fmt.Sprintf("%s deve ser no mínimo %s", fieldName, fe.Param())
	case "max":
		return fmt.Sprintf("%s deve ser no máximo %s", fieldName, fe.Param())
	case "gte":
		return fmt.Sprintf("%s deve ser maior ou igual a %s", fieldName, fe.Param())
	case "lte":
		return fmt.Sprintf("%s deve ser menor ou igual a %s", fieldName, fe.Param())
	case "gt":
		return fmt.Sprintf("%s deve ser maior que %s", fieldName, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s deve ser um dos valores: %s", fieldName, fe.Param())
	case "datetime":
		return fmt.Sprintf("%s deve ser uma data válida", fieldName)
	case "email":
		return "Email inválido"
	default:
		return fmt.Sprintf("Validação '%s' falhou para %s", fe.Tag(), fieldName)
	}
}
