package payment

import (
	"context"
	"strings"
	"time"

	appErrors "Mobilia/internal/errors"
	"Mobilia/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type Service struct {
	Repository Repository
}

func NewService(repo Repository) *Service {
	return &Service{Repository: repo}
}

func (s *Service) CreateMethod(ctx context.Context, req *CreateMethodRequest) (*PaymentMethod, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, appErrors.NewValidationError("name", "é obrigatório")
	}

	if !req.Category.IsValid() {
		return nil, appErrors.NewValidationError("category", "categoria inválida")
	}

	if req.MaxInstallments < 0 || req.MaxInstallments > MaxInstallments {
		return nil, appErrors.NewValidationError("max_installments", "deve estar entre 0 e 24")
	}

	now := time.Now()
	method := &PaymentMethod{
		Id:                 pkg.GenerateULIDObject(),
		Name:               strings.TrimSpace(req.Name),
		Category:           req.Category,
		AllowsInstallments: req.AllowsInstallments,
		HasFees:            req.HasFees,
		MaxInstallments:    req.MaxInstallments,
		IsActive:           true,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := s.Repository.CreateMethod(ctx, method); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	return method, nil
}

func (s *Service) UpdateMethod(ctx context.Context, methodID ulid.ULID, req *UpdateMethodRequest) error {
	method, err := s.GetMethodById(ctx, methodID)
	if err != nil {
		return err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return appErrors.NewValidationError("name", "não pode ser vazio")
		}
		method.Name = name
	}

	if req.AllowsInstallments != nil {
		method.AllowsInstallments = *req.AllowsInstallments
	}

	if req.HasFees != nil {
		method.HasFees = *req.HasFees
	}

	if req.MaxInstallments != nil {
		if *req.MaxInstallments < 0 || *req.MaxInstallments > MaxInstallments {
			return appErrors.NewValidationError("max_installments", "deve estar entre 0 e 24")
		}
		method.MaxInstallments = *req.MaxInstallments
	}

	if req.IsActive != nil {
		method.IsActive = *req.IsActive
	}

	method.UpdatedAt = time.Now()

	return s.Repository.UpdateMethod(ctx, method)
}

func (s *Service) GetMethodById(ctx context.Context, methodID ulid.ULID) (*PaymentMethod, error) {
	method, err := s.Repository.GetMethodById(ctx, methodID)
	if err != nil {
		return nil, appErrors.ErrMethodNotFound.WithError(err)
	}
	return method, nil
}

func (s *Service) ListMethods(ctx context.Context, onlyActive bool, pagination *pkg.PaginationParams) ([]*PaymentMethod, int64, error) {
	return s.Repository.ListMethods(ctx, onlyActive, pagination)
}

func (s *Service) CreateBrand(ctx context.Context, name string) (*CardBrand, error) {
	if strings.TrimSpace(name) == "" {
		return nil, appErrors.NewValidationError("name", "é obrigatório")
	}

	now := time.Now()
	brand := &CardBrand{
		Id:        pkg.GenerateULIDObject(),
		Name:      strings.TrimSpace(name),
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.Repository.CreateBrand(ctx, brand); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	return brand, nil
}

func (s *Service) GetBrandById(ctx context.Context, brandID ulid.ULID) (*CardBrand, error) {
	brand, err := s.Repository.GetBrandById(ctx, brandID)
	if err != nil {
		return nil, appErrors.ErrBrandNotFound.WithError(err)
	}
	return brand, nil
}

func (s *Service) ListBrands(ctx context.Context) ([]*CardBrand, error) {
	return s.Repository.ListBrands(ctx, true)
}

func (s *Service) CreateFeeRule(ctx context.Context, req *CreateFeeRuleRequest) (*CardFeeRule, error) {
	if _, err := s.GetBrandById(ctx, req.CardBrandId); err != nil {
		return nil, err
	}

	if req.Installments < 1 || req.Installments > MaxInstallments {
		return nil, appErrors.NewValidationError("installments", "deve estar entre 1 e 24")
	}

	if req.FeePercentage < 0 {
		return nil, appErrors.NewValidationError("fee_percentage", "deve ser maior ou igual a zero")
	}

	if req.FixedFee < 0 {
		return nil, appErrors.NewValidationError("fixed_fee", "deve ser maior ou igual a zero")
	}

	existing, _ := s.Repository.GetFeeRuleByBrandAndInstallments(ctx, req.CardBrandId, req.Installments)
	if existing != nil {
		return nil, appErrors.NewConflictError("Regra de taxa para esta bandeira e parcelas")
	}

	now := time.Now()
	rule := &CardFeeRule{
		Id:            pkg.GenerateULIDObject(),
		CardBrandId:   req.CardBrandId,
		Installments:  req.Installments,
		FeePercentage: req.FeePercentage,
		FixedFee:      req.FixedFee,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.Repository.CreateFeeRule(ctx, rule); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	return rule, nil
}

func (s *Service) DeleteFeeRule(ctx context.Context, ruleID ulid.ULID) error {
	return s.Repository.DeleteFeeRule(ctx, ruleID)
}

func (s *Service) ListFeeRulesByBrand(ctx context.Context, brandID ulid.ULID) ([]CardFeeRule, error) {
	if _, err := s.GetBrandById(ctx, brandID); err != nil {
		return nil, err
	}
	return s.Repository.ListFeeRulesByBrand(ctx, brandID)
}

// BuildPlanInput resolve os dados de referência de um plano cru. Ids vazios
// viram ponteiros nil para o planejador acusar a validação correspondente;
// ids presentes mas inexistentes são erro do chamador. A ausência de regras
// de taxa nunca é erro: o plano degrada para parcelas sem taxa.
func (s *Service) BuildPlanInput(ctx context.Context, req *PlanRequest) (PlanInput, error) {
	in := PlanInput{
		Installments: req.Installments,
		Amount:       req.Amount,
		FirstDueDate: req.FirstDueDate,
	}

	if req.PaymentMethodId != "" {
		methodID, err := pkg.ParseULID(req.PaymentMethodId)
		if err != nil {
			return PlanInput{}, appErrors.NewValidationError("payment_method_id", "formato inválido")
		}
		method, err := s.GetMethodById(ctx, methodID)
		if err != nil {
			return PlanInput{}, err
		}
		in.Method = method
	}

	if req.CardBrandId != "" {
		brandID, err := pkg.ParseULID(req.CardBrandId)
		if err != nil {
			return PlanInput{}, appErrors.NewValidationError("card_brand_id", "formato inválido")
		}
		brand, err := s.GetBrandById(ctx, brandID)
		if err != nil {
			return PlanInput{}, err
		}
		in.Brand = brand
	}

	if in.Method != nil && in.Method.HasFees && in.Brand != nil {
		rules, err := s.Repository.ListFeeRulesByBrand(ctx, in.Brand.Id)
		if err != nil {
			return PlanInput{}, appErrors.NewDatabaseError(err)
		}
		in.FeeRules = rules
	}

	return in, nil
}

type CreateMethodRequest struct {
	Name               string
	Category           MethodCategory
	AllowsInstallments bool
	HasFees            bool
	MaxInstallments    int
}

type UpdateMethodRequest struct {
	Name               *string
	AllowsInstallments *bool
	HasFees            *bool
	MaxInstallments    *int
	IsActive           *bool
}

type CreateFeeRuleRequest struct {
	CardBrandId   ulid.ULID
	Installments  int
	FeePercentage float64
	FixedFee      float64
}

// PlanRequest é um plano como chega da entrada de venda: ids e valores ainda
// em texto.
type PlanRequest struct {
	PaymentMethodId string
	CardBrandId     string
	Installments    int
	Amount          string
	FirstDueDate    string
}
