package payment_test

import (
	"context"
	"errors"
	"testing"

	"Mobilia/internal/domain/payment"
	appErrors "Mobilia/internal/errors"
	"Mobilia/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type fakeRepository struct {
	createMethodFn                     func(ctx context.Context, method *payment.PaymentMethod) error
	updateMethodFn                     func(ctx context.Context, method *payment.PaymentMethod) error
	getMethodByIdFn                    func(ctx context.Context, methodID ulid.ULID) (*payment.PaymentMethod, error)
	listMethodsFn                      func(ctx context.Context, onlyActive bool, pagination *pkg.PaginationParams) ([]*payment.PaymentMethod, int64, error)
	createBrandFn                      func(ctx context.Context, brand *payment.CardBrand) error
	getBrandByIdFn                     func(ctx context.Context, brandID ulid.ULID) (*payment.CardBrand, error)
	listBrandsFn                       func(ctx context.Context, onlyActive bool) ([]*payment.CardBrand, error)
	createFeeRuleFn                    func(ctx context.Context, rule *payment.CardFeeRule) error
	deleteFeeRuleFn                    func(ctx context.Context, ruleID ulid.ULID) error
	getFeeRuleByBrandAndInstallmentsFn func(ctx context.Context, brandID ulid.ULID, installments int) (*payment.CardFeeRule, error)
	listFeeRulesByBrandFn              func(ctx context.Context, brandID ulid.ULID) ([]payment.CardFeeRule, error)
}

func (f *fakeRepository) CreateMethod(ctx context.Context, method *payment.PaymentMethod) error {
	return f.createMethodFn(ctx, method)
}

func (f *fakeRepository) UpdateMethod(ctx context.Context, method *payment.PaymentMethod) error {
	return f.updateMethodFn(ctx, method)
}

func (f *fakeRepository) GetMethodById(ctx context.Context, methodID ulid.ULID) (*payment.PaymentMethod, error) {
	return f.getMethodByIdFn(ctx, methodID)
}

func (f *fakeRepository) ListMethods(ctx context.Context, onlyActive bool, pagination *pkg.PaginationParams) ([]*payment.PaymentMethod, int64, error) {
	return f.listMethodsFn(ctx, onlyActive, pagination)
}

func (f *fakeRepository) CreateBrand(ctx context.Context, brand *payment.CardBrand) error {
	return f.createBrandFn(ctx, brand)
}

func (f *fakeRepository) GetBrandById(ctx context.Context, brandID ulid.ULID) (*payment.CardBrand, error) {
	return f.getBrandByIdFn(ctx, brandID)
}

func (f *fakeRepository) ListBrands(ctx context.Context, onlyActive bool) ([]*payment.CardBrand, error) {
	return f.listBrandsFn(ctx, onlyActive)
}

func (f *fakeRepository) CreateFeeRule(ctx context.Context, rule *payment.CardFeeRule) error {
	return f.createFeeRuleFn(ctx, rule)
}

func (f *fakeRepository) DeleteFeeRule(ctx context.Context, ruleID ulid.ULID) error {
	return f.deleteFeeRuleFn(ctx, ruleID)
}

func (f *fakeRepository) GetFeeRuleByBrandAndInstallments(ctx context.Context, brandID ulid.ULID, installments int) (*payment.CardFeeRule, error) {
	return f.getFeeRuleByBrandAndInstallmentsFn(ctx, brandID, installments)
}

func (f *fakeRepository) ListFeeRulesByBrand(ctx context.Context, brandID ulid.ULID) ([]payment.CardFeeRule, error) {
	return f.listFeeRulesByBrandFn(ctx, brandID)
}

func assertAppErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	appErr, ok := appErrors.AsAppError(err)
	if !ok {
		t.Fatalf("expected AppError, got %v", err)
	}
	if appErr.Code != code {
		t.Fatalf("expected code %s, got %s", code, appErr.Code)
	}
}

func TestCreateMethod(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		req      *payment.CreateMethodRequest
		wantCode string
	}{
		{
			name: "nome vazio",
			req: &payment.CreateMethodRequest{
				Name:     "   ",
				Category: payment.CategoryCash,
			},
			wantCode: "VALIDATION_ERROR",
		},
		{
			name: "categoria invalida",
			req: &payment.CreateMethodRequest{
				Name:     "Cheque",
				Category: payment.MethodCategory("CHEQUE"),
			},
			wantCode: "VALIDATION_ERROR",
		},
		{
			name: "teto de parcelas acima do limite",
			req: &payment.CreateMethodRequest{
				Name:            "Cartão de Crédito",
				Category:        payment.CategoryCreditCard,
				MaxInstallments: 48,
			},
			wantCode: "VALIDATION_ERROR",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			service := payment.NewService(&fakeRepository{})
			_, err := service.CreateMethod(context.Background(), tt.req)
			assertAppErrorCode(t, err, tt.wantCode)
		})
	}

	t.Run("sucesso", func(t *testing.T) {
		var saved *payment.PaymentMethod
		service := payment.NewService(&fakeRepository{
			createMethodFn: func(ctx context.Context, method *payment.PaymentMethod) error {
				saved = method
				return nil
			},
		})

		method, err := service.CreateMethod(context.Background(), &payment.CreateMethodRequest{
			Name:               "  Cartão de Crédito  ",
			Category:           payment.CategoryCreditCard,
			AllowsInstallments: true,
			HasFees:            true,
			MaxInstallments:    12,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if saved == nil {
			t.Fatal("method was not persisted")
		}
		if method.Name != "Cartão de Crédito" {
			t.Fatalf("name not trimmed: %q", method.Name)
		}
		if !method.IsActive {
			t.Fatal("new method should be active")
		}
		if pkg.IsEmptyULID(method.Id) {
			t.Fatal("method id was not generated")
		}
	})
}

func TestUpdateMethodPartialFields(t *testing.T) {
	t.Parallel()

	existing := &payment.PaymentMethod{
		Id:                 pkg.GenerateULIDObject(),
		Name:               "Boleto",
		Category:           payment.CategoryBankSlip,
		AllowsInstallments: true,
		MaxInstallments:    6,
		IsActive:           true,
	}

	var saved *payment.PaymentMethod
	service := payment.NewService(&fakeRepository{
		getMethodByIdFn: func(ctx context.Context, methodID ulid.ULID) (*payment.PaymentMethod, error) {
			copied := *existing
			return &copied, nil
		},
		updateMethodFn: func(ctx context.Context, method *payment.PaymentMethod) error {
			saved = method
			return nil
		},
	})

	inactive := false
	err := service.UpdateMethod(context.Background(), existing.Id, &payment.UpdateMethodRequest{
		IsActive: &inactive,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if saved.IsActive {
		t.Fatal("is_active was not applied")
	}
	if saved.Name != "Boleto" || saved.MaxInstallments != 6 {
		t.Fatalf("untouched fields changed: %+v", saved)
	}
}

func TestCreateFeeRule(t *testing.T) {
	t.Parallel()

	brand := &payment.CardBrand{Id: pkg.GenerateULIDObject(), Name: "Visa", IsActive: true}

	newService := func(existingRule *payment.CardFeeRule, createErr error) (*payment.Service, *bool) {
		created := false
		return payment.NewService(&fakeRepository{
			getBrandByIdFn: func(ctx context.Context, brandID ulid.ULID) (*payment.CardBrand, error) {
				if brandID == brand.Id {
					return brand, nil
				}
				return nil, errors.New("record not found")
			},
			getFeeRuleByBrandAndInstallmentsFn: func(ctx context.Context, brandID ulid.ULID, installments int) (*payment.CardFeeRule, error) {
				if existingRule != nil {
					return existingRule, nil
				}
				return nil, errors.New("record not found")
			},
			createFeeRuleFn: func(ctx context.Context, rule *payment.CardFeeRule) error {
				created = true
				return createErr
			},
		}), &created
	}

	t.Run("bandeira inexistente", func(t *testing.T) {
		service, _ := newService(nil, nil)
		_, err := service.CreateFeeRule(context.Background(), &payment.CreateFeeRuleRequest{
			CardBrandId:   pkg.GenerateULIDObject(),
			Installments:  3,
			FeePercentage: 3.5,
		})
		assertAppErrorCode(t, err, "CARD_BRAND_NOT_FOUND")
	})

	t.Run("parcelas fora da faixa", func(t *testing.T) {
		service, _ := newService(nil, nil)
		for _, installments := range []int{0, 25} {
			_, err := service.CreateFeeRule(context.Background(), &payment.CreateFeeRuleRequest{
				CardBrandId:  brand.Id,
				Installments: installments,
			})
			assertAppErrorCode(t, err, "VALIDATION_ERROR")
		}
	})

	t.Run("taxa negativa", func(t *testing.T) {
		service, _ := newService(nil, nil)
		_, err := service.CreateFeeRule(context.Background(), &payment.CreateFeeRuleRequest{
			CardBrandId:   brand.Id,
			Installments:  3,
			FeePercentage: -1,
		})
		assertAppErrorCode(t, err, "VALIDATION_ERROR")
	})

	t.Run("regra duplicada", func(t *testing.T) {
		existing := &payment.CardFeeRule{Id: pkg.GenerateULIDObject(), CardBrandId: brand.Id, Installments: 3}
		service, created := newService(existing, nil)
		_, err := service.CreateFeeRule(context.Background(), &payment.CreateFeeRuleRequest{
			CardBrandId:   brand.Id,
			Installments:  3,
			FeePercentage: 3.5,
		})
		assertAppErrorCode(t, err, "CONFLICT")
		if *created {
			t.Fatal("duplicate rule must not be persisted")
		}
	})

	t.Run("sucesso", func(t *testing.T) {
		service, created := newService(nil, nil)
		rule, err := service.CreateFeeRule(context.Background(), &payment.CreateFeeRuleRequest{
			CardBrandId:   brand.Id,
			Installments:  3,
			FeePercentage: 3.5,
			FixedFee:      0.5,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !*created {
			t.Fatal("rule was not persisted")
		}
		if rule.FeePercentage != 3.5 || rule.FixedFee != 0.5 {
			t.Fatalf("rule fields wrong: %+v", rule)
		}
	})
}

func TestBuildPlanInput(t *testing.T) {
	t.Parallel()

	method := &payment.PaymentMethod{
		Id:                 pkg.GenerateULIDObject(),
		Name:               "Cartão de Crédito",
		Category:           payment.CategoryCreditCard,
		AllowsInstallments: true,
		HasFees:            true,
		MaxInstallments:    12,
		IsActive:           true,
	}
	brand := &payment.CardBrand{Id: pkg.GenerateULIDObject(), Name: "Visa", IsActive: true}
	rules := []payment.CardFeeRule{
		{Id: pkg.GenerateULIDObject(), CardBrandId: brand.Id, Installments: 3, FeePercentage: 3.5},
	}

	listCalls := 0
	service := payment.NewService(&fakeRepository{
		getMethodByIdFn: func(ctx context.Context, methodID ulid.ULID) (*payment.PaymentMethod, error) {
			if methodID == method.Id {
				return method, nil
			}
			return nil, errors.New("record not found")
		},
		getBrandByIdFn: func(ctx context.Context, brandID ulid.ULID) (*payment.CardBrand, error) {
			if brandID == brand.Id {
				return brand, nil
			}
			return nil, errors.New("record not found")
		},
		listFeeRulesByBrandFn: func(ctx context.Context, brandID ulid.ULID) ([]payment.CardFeeRule, error) {
			listCalls++
			return rules, nil
		},
	})

	t.Run("ids vazios viram ponteiros nil", func(t *testing.T) {
		in, err := service.BuildPlanInput(context.Background(), &payment.PlanRequest{
			Amount:       "100",
			FirstDueDate: "2024-05-10",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if in.Method != nil || in.Brand != nil || in.FeeRules != nil {
			t.Fatalf("expected unresolved input, got %+v", in)
		}
	})

	t.Run("id de metodo invalido", func(t *testing.T) {
		_, err := service.BuildPlanInput(context.Background(), &payment.PlanRequest{
			PaymentMethodId: "nao-e-ulid",
			Amount:          "100",
			FirstDueDate:    "2024-05-10",
		})
		assertAppErrorCode(t, err, "VALIDATION_ERROR")
	})

	t.Run("metodo inexistente", func(t *testing.T) {
		_, err := service.BuildPlanInput(context.Background(), &payment.PlanRequest{
			PaymentMethodId: pkg.GenerateULID(),
			Amount:          "100",
			FirstDueDate:    "2024-05-10",
		})
		assertAppErrorCode(t, err, "PAYMENT_METHOD_NOT_FOUND")
	})

	t.Run("resolve metodo bandeira e regras", func(t *testing.T) {
		listCalls = 0
		in, err := service.BuildPlanInput(context.Background(), &payment.PlanRequest{
			PaymentMethodId: method.Id.String(),
			CardBrandId:     brand.Id.String(),
			Installments:    3,
			Amount:          "900",
			FirstDueDate:    "2024-05-10",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if in.Method != method || in.Brand != brand {
			t.Fatal("reference data not resolved")
		}
		if len(in.FeeRules) != 1 || listCalls != 1 {
			t.Fatalf("fee rules not loaded: %+v", in.FeeRules)
		}
	})

	t.Run("sem bandeira nao busca regras", func(t *testing.T) {
		listCalls = 0
		in, err := service.BuildPlanInput(context.Background(), &payment.PlanRequest{
			PaymentMethodId: method.Id.String(),
			Amount:          "900",
			FirstDueDate:    "2024-05-10",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if in.FeeRules != nil || listCalls != 0 {
			t.Fatal("fee rules should not be loaded without a brand")
		}
	})
}
