package catalog

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

func (s *Service) CreateProduct(ctx context.Context, req *CreateProductRequest) (*Product, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, appErrors.NewValidationError("name", "é obrigatório")
	}

	if req.Price <= 0 {
		return nil, appErrors.NewValidationError("price", "deve ser maior que zero")
	}

	if req.Cost < 0 {
		return nil, appErrors.NewValidationError("cost", "deve ser maior ou igual a zero")
	}

	if req.Stock < 0 {
		return nil, appErrors.NewValidationError("stock", "deve ser maior ou igual a zero")
	}

	if req.CategoryId != nil {
		if _, err := s.GetCategoryById(ctx, *req.CategoryId); err != nil {
			return nil, err
		}
	}

	now := time.Now()
	product := &Product{
		Id:               pkg.GenerateULIDObject(),
		Name:             strings.TrimSpace(req.Name),
		Description:      strings.TrimSpace(req.Description),
		Sku:              strings.TrimSpace(req.Sku),
		CategoryId:       req.CategoryId,
		Price:            req.Price,
		Cost:             req.Cost,
		Stock:            req.Stock,
		RequiresAssembly: req.RequiresAssembly,
		IsActive:         true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.Repository.CreateProduct(ctx, product); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	return product, nil
}

func (s *Service) UpdateProduct(ctx context.Context, productID ulid.ULID, req *UpdateProductRequest) error {
	product, err := s.GetProductById(ctx, productID)
	if err != nil {
		return err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return appErrors.NewValidationError("name", "não pode ser vazio")
		}
		product.Name = name
	}

	if req.Description != nil {
		product.Description = strings.TrimSpace(*req.Description)
	}

	if req.Price != nil {
		if *req.Price <= 0 {
			return appErrors.NewValidationError("price", "deve ser maior que zero")
		}
		product.Price = *req.Price
	}

	if req.Cost != nil {
		if *req.Cost < 0 {
			return appErrors.NewValidationError("cost", "deve ser maior ou igual a zero")
		}
		product.Cost = *req.Cost
	}

	if req.CategoryId != nil {
		if _, err := s.GetCategoryById(ctx, *req.CategoryId); err != nil {
			return err
		}
		product.CategoryId = req.CategoryId
	}

	if req.RequiresAssembly != nil {
		product.RequiresAssembly = *req.RequiresAssembly
	}

	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}

	product.UpdatedAt = time.Now()

	return s.Repository.UpdateProduct(ctx, product)
}

func (s *Service) GetProductById(ctx context.Context, productID ulid.ULID) (*Product, error) {
	product, err := s.Repository.GetProductById(ctx, productID)
	if err != nil {
		return nil, appErrors.ErrProductNotFound.WithError(err)
	}
	return product, nil
}

func (s *Service) ListProducts(ctx context.Context, filter ProductFilter, pagination *pkg.PaginationParams) ([]*Product, int64, error) {
	return s.Repository.ListProducts(ctx, filter, pagination)
}

// DecrementStock baixa o estoque do produto. Falha com estoque insuficiente
// antes de tocar o banco.
func (s *Service) DecrementStock(ctx context.Context, productID ulid.ULID, quantity int) error {
	if quantity <= 0 {
		return appErrors.NewValidationError("quantity", "deve ser maior que zero")
	}

	product, err := s.GetProductById(ctx, productID)
	if err != nil {
		return err
	}

	if product.Stock < quantity {
		return appErrors.ErrInsufficientStock.WithDetails(map[string]interface{}{
			"product_id": product.Id.String(),
			"available":  product.Stock,
			"requested":  quantity,
		})
	}

	return s.Repository.AdjustStock(ctx, productID, -quantity)
}

func (s *Service) IncrementStock(ctx context.Context, productID ulid.ULID, quantity int) error {
	if quantity <= 0 {
		return appErrors.NewValidationError("quantity", "deve ser maior que zero")
	}

	if _, err := s.GetProductById(ctx, productID); err != nil {
		return err
	}

	return s.Repository.AdjustStock(ctx, productID, quantity)
}

func (s *Service) CreateCategory(ctx context.Context, req *CreateCategoryRequest) (*Category, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, appErrors.NewValidationError("name", "é obrigatório")
	}

	if req.ParentId != nil {
		if _, err := s.GetCategoryById(ctx, *req.ParentId); err != nil {
			return nil, err
		}
	}

	now := time.Now()
	category := &Category{
		Id:        pkg.GenerateULIDObject(),
		Name:      strings.TrimSpace(req.Name),
		ParentId:  req.ParentId,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.Repository.CreateCategory(ctx, category); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	return category, nil
}

func (s *Service) GetCategoryById(ctx context.Context, categoryID ulid.ULID) (*Category, error) {
	category, err := s.Repository.GetCategoryById(ctx, categoryID)
	if err != nil {
		return nil, appErrors.ErrCategoryNotFound.WithError(err)
	}
	return category, nil
}

func (s *Service) GetCategoryTree(ctx context.Context) ([]*CategoryNode, error) {
	categories, err := s.Repository.ListCategories(ctx, true)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return BuildCategoryTree(categories), nil
}

type CreateProductRequest struct {
	Name             string
	Description      string
	Sku              string
	CategoryId       *ulid.ULID
	Price            float64
	Cost             float64
	Stock            int
	RequiresAssembly bool
}

type UpdateProductRequest struct {
	Name             *string
	Description      *string
	Price            *float64
	Cost             *float64
	CategoryId       *ulid.ULID
	RequiresAssembly *bool
	IsActive         *bool
}

type CreateCategoryRequest struct {
	Name     string
	ParentId *ulid.ULID
}
