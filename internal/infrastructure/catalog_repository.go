package infrastructure

import (
	"context"
	"time"

	"Mobilia/internal/domain/catalog"
	"Mobilia/internal/pkg"
	"Mobilia/internal/pkg/query"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type CatalogRepository struct {
	DB *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) catalog.Repository {
	return &CatalogRepository{DB: db}
}

type productDB struct {
	Id               string    `gorm:"type:varchar(26);primaryKey"`
	Name             string    `gorm:"type:varchar(150);not null"`
	Description      string    `gorm:"type:text"`
	Sku              string    `gorm:"type:varchar(50);index"`
	CategoryId       *string   `gorm:"type:varchar(26);index"`
	Price            float64   `gorm:"type:decimal(15,2);not null"`
	Cost             float64   `gorm:"type:decimal(15,2);not null;default:0"`
	Stock            int       `gorm:"not null;default:0"`
	RequiresAssembly bool      `gorm:"not null;default:false"`
	IsActive         bool      `gorm:"not null;default:true"`
	CreatedAt        time.Time `gorm:"not null"`
	UpdatedAt        time.Time `gorm:"not null"`
}

func (productDB) TableName() string {
	return "products"
}

type categoryDB struct {
	Id        string    `gorm:"type:varchar(26);primaryKey"`
	Name      string    `gorm:"type:varchar(100);not null"`
	ParentId  *string   `gorm:"type:varchar(26);index"`
	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (categoryDB) TableName() string {
	return "categories"
}

func toDomainProduct(pdb *productDB) (*catalog.Product, error) {
	id, err := pkg.ParseULID(pdb.Id)
	if err != nil {
		return nil, err
	}

	var categoryID *ulid.ULID
	if pdb.CategoryId != nil && *pdb.CategoryId != "" {
		parsed, err := pkg.ParseULID(*pdb.CategoryId)
		if err == nil {
			categoryID = &parsed
		}
	}

	return &catalog.Product{
		Id:               id,
		Name:             pdb.Name,
		Description:      pdb.Description,
		Sku:              pdb.Sku,
		CategoryId:       categoryID,
		Price:            pdb.Price,
		Cost:             pdb.Cost,
		Stock:            pdb.Stock,
		RequiresAssembly: pdb.RequiresAssembly,
		IsActive:         pdb.IsActive,
		CreatedAt:        pdb.CreatedAt,
		UpdatedAt:        pdb.UpdatedAt,
	}, nil
}

func toDBProduct(p *catalog.Product) *productDB {
	var categoryID *string
	if p.CategoryId != nil {
		s := p.CategoryId.String()
		categoryID = &s
	}

	return &productDB{
		Id:               p.Id.String(),
		Name:             p.Name,
		Description:      p.Description,
		Sku:              p.Sku,
		CategoryId:       categoryID,
		Price:            p.Price,
		Cost:             p.Cost,
		Stock:            p.Stock,
		RequiresAssembly: p.RequiresAssembly,
		IsActive:         p.IsActive,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

func toDomainCategory(cdb *categoryDB) (*catalog.Category, error) {
	id, err := pkg.ParseULID(cdb.Id)
	if err != nil {
		return nil, err
	}

	var parentID *ulid.ULID
	if cdb.ParentId != nil && *cdb.ParentId != "" {
		parsed, err := pkg.ParseULID(*cdb.ParentId)
		if err == nil {
			parentID = &parsed
		}
	}

	return &catalog.Category{
		Id:        id,
		Name:      cdb.Name,
		ParentId:  parentID,
		IsActive:  cdb.IsActive,
		CreatedAt: cdb.CreatedAt,
		UpdatedAt: cdb.UpdatedAt,
	}, nil
}

func (r *CatalogRepository) CreateProduct(ctx context.Context, product *catalog.Product) error {
	return r.DB.WithContext(ctx).Create(toDBProduct(product)).Error
}

func (r *CatalogRepository) UpdateProduct(ctx context.Context, product *catalog.Product) error {
	pdb := toDBProduct(product)
	return r.DB.WithContext(ctx).Model(&productDB{}).
		Where("id = ?", pdb.Id).
		Select("name", "description", "sku", "category_id", "price", "cost", "requires_assembly", "is_active", "updated_at").
		Updates(pdb).Error
}

func (r *CatalogRepository) GetProductById(ctx context.Context, productID ulid.ULID) (*catalog.Product, error) {
	var pdb productDB
	err := r.DB.WithContext(ctx).Where("id = ?", productID.String()).First(&pdb).Error
	if err != nil {
		return nil, err
	}
	return toDomainProduct(&pdb)
}

func (r *CatalogRepository) ListProducts(ctx context.Context, filter catalog.ProductFilter, pagination *pkg.PaginationParams) ([]*catalog.Product, int64, error) {
	baseQuery := r.DB.WithContext(ctx).Table("products")
	if filter.OnlyActive {
		baseQuery = baseQuery.Where("is_active = ?", true)
	}
	if filter.CategoryId != nil {
		baseQuery = baseQuery.Where("category_id = ?", filter.CategoryId.String())
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		baseQuery = baseQuery.Where("name LIKE ? OR sku LIKE ?", like, like)
	}
	return pkg.Paginate(baseQuery, pagination, "name ASC", toDomainProduct)
}

// AdjustStock aplica o delta direto na coluna para não perder atualizações
// concorrentes.
func (r *CatalogRepository) AdjustStock(ctx context.Context, productID ulid.ULID, delta int) error {
	return r.DB.WithContext(ctx).Model(&productDB{}).
		Where("id = ?", productID.String()).
		UpdateColumn("stock", gorm.Expr("stock + ?", delta)).
		UpdateColumn("updated_at", time.Now()).Error
}

func (r *CatalogRepository) CreateCategory(ctx context.Context, category *catalog.Category) error {
	var parentID *string
	if category.ParentId != nil {
		s := category.ParentId.String()
		parentID = &s
	}

	cdb := &categoryDB{
		Id:        category.Id.String(),
		Name:      category.Name,
		ParentId:  parentID,
		IsActive:  category.IsActive,
		CreatedAt: category.CreatedAt,
		UpdatedAt: category.UpdatedAt,
	}
	return r.DB.WithContext(ctx).Create(cdb).Error
}

func (r *CatalogRepository) UpdateCategory(ctx context.Context, category *catalog.Category) error {
	var parentID *string
	if category.ParentId != nil {
		s := category.ParentId.String()
		parentID = &s
	}

	return r.DB.WithContext(ctx).Model(&categoryDB{}).
		Where("id = ?", category.Id.String()).
		Select("name", "parent_id", "is_active", "updated_at").
		Updates(&categoryDB{
			Name:      category.Name,
			ParentId:  parentID,
			IsActive:  category.IsActive,
			UpdatedAt: category.UpdatedAt,
		}).Error
}

func (r *CatalogRepository) GetCategoryById(ctx context.Context, categoryID ulid.ULID) (*catalog.Category, error) {
	var cdb categoryDB
	err := r.DB.WithContext(ctx).Where("id = ?", categoryID.String()).First(&cdb).Error
	if err != nil {
		return nil, err
	}
	return toDomainCategory(&cdb)
}

func (r *CatalogRepository) ListCategories(ctx context.Context, onlyActive bool) ([]catalog.Category, error) {
	q := query.New[categoryDB](r.DB, "categories").
		Context(ctx).
		Order("created_at ASC")
	if onlyActive {
		q = q.Where("is_active = ?", true)
	}

	categories, err := query.ExecuteAll(q, toDomainCategory)
	if err != nil {
		return nil, err
	}

	out := make([]catalog.Category, 0, len(categories))
	for _, category := range categories {
		out = append(out, *category)
	}
	return out, nil
}
