package infrastructure

import (
	"context"
	"time"

	"Mobilia/internal/domain/person"
	"Mobilia/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type PersonRepository struct {
	DB *gorm.DB
}

func NewPersonRepository(db *gorm.DB) person.Repository {
	return &PersonRepository{DB: db}
}

type customerDB struct {
	Id        string    `gorm:"type:varchar(26);primaryKey"`
	Name      string    `gorm:"type:varchar(150);not null"`
	Document  string    `gorm:"type:varchar(20);index"`
	Email     string    `gorm:"type:varchar(150)"`
	Phone     string    `gorm:"type:varchar(20)"`
	Address   string    `gorm:"type:varchar(255)"`
	City      string    `gorm:"type:varchar(100)"`
	Notes     string    `gorm:"type:text"`
	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (customerDB) TableName() string {
	return "customers"
}

type supplierDB struct {
	Id        string    `gorm:"type:varchar(26);primaryKey"`
	Name      string    `gorm:"type:varchar(150);not null"`
	Document  string    `gorm:"type:varchar(20);index"`
	Email     string    `gorm:"type:varchar(150)"`
	Phone     string    `gorm:"type:varchar(20)"`
	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (supplierDB) TableName() string {
	return "suppliers"
}

type employeeDB struct {
	Id                   string    `gorm:"type:varchar(26);primaryKey"`
	Name                 string    `gorm:"type:varchar(150);not null"`
	Role                 string    `gorm:"type:varchar(20);not null;index"`
	CommissionPercentage float64   `gorm:"type:decimal(5,2);not null;default:0"`
	Phone                string    `gorm:"type:varchar(20)"`
	IsActive             bool      `gorm:"not null;default:true"`
	CreatedAt            time.Time `gorm:"not null"`
	UpdatedAt            time.Time `gorm:"not null"`
}

func (employeeDB) TableName() string {
	return "employees"
}

func toDomainCustomer(cdb *customerDB) (*person.Customer, error) {
	id, err := pkg.ParseULID(cdb.Id)
	if err != nil {
		return nil, err
	}

	return &person.Customer{
		Id:        id,
		Name:      cdb.Name,
		Document:  cdb.Document,
		Email:     cdb.Email,
		Phone:     cdb.Phone,
		Address:   cdb.Address,
		City:      cdb.City,
		Notes:     cdb.Notes,
		IsActive:  cdb.IsActive,
		CreatedAt: cdb.CreatedAt,
		UpdatedAt: cdb.UpdatedAt,
	}, nil
}

func toDBCustomer(c *person.Customer) *customerDB {
	return &customerDB{
		Id:        c.Id.String(),
		Name:      c.Name,
		Document:  c.Document,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		City:      c.City,
		Notes:     c.Notes,
		IsActive:  c.IsActive,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func toDomainSupplier(sdb *supplierDB) (*person.Supplier, error) {
	id, err := pkg.ParseULID(sdb.Id)
	if err != nil {
		return nil, err
	}

	return &person.Supplier{
		Id:        id,
		Name:      sdb.Name,
		Document:  sdb.Document,
		Email:     sdb.Email,
		Phone:     sdb.Phone,
		IsActive:  sdb.IsActive,
		CreatedAt: sdb.CreatedAt,
		UpdatedAt: sdb.UpdatedAt,
	}, nil
}

func toDomainEmployee(edb *employeeDB) (*person.Employee, error) {
	id, err := pkg.ParseULID(edb.Id)
	if err != nil {
		return nil, err
	}

	return &person.Employee{
		Id:                   id,
		Name:                 edb.Name,
		Role:                 person.EmployeeRole(edb.Role),
		CommissionPercentage: edb.CommissionPercentage,
		Phone:                edb.Phone,
		IsActive:             edb.IsActive,
		CreatedAt:            edb.CreatedAt,
		UpdatedAt:            edb.UpdatedAt,
	}, nil
}

func (r *PersonRepository) CreateCustomer(ctx context.Context, customer *person.Customer) error {
	return r.DB.WithContext(ctx).Create(toDBCustomer(customer)).Error
}

func (r *PersonRepository) UpdateCustomer(ctx context.Context, customer *person.Customer) error {
	cdb := toDBCustomer(customer)
	return r.DB.WithContext(ctx).Model(&customerDB{}).
		Where("id = ?", cdb.Id).
		Select("name", "document", "email", "phone", "address", "city", "notes", "is_active", "updated_at").
		Updates(cdb).Error
}

func (r *PersonRepository) GetCustomerById(ctx context.Context, customerID ulid.ULID) (*person.Customer, error) {
	var cdb customerDB
	err := r.DB.WithContext(ctx).Where("id = ?", customerID.String()).First(&cdb).Error
	if err != nil {
		return nil, err
	}
	return toDomainCustomer(&cdb)
}

func (r *PersonRepository) ListCustomers(ctx context.Context, search string, pagination *pkg.PaginationParams) ([]*person.Customer, int64, error) {
	baseQuery := r.DB.WithContext(ctx).Table("customers")
	if search != "" {
		like := "%" + search + "%"
		baseQuery = baseQuery.Where("name LIKE ? OR document LIKE ?", like, like)
	}
	return pkg.Paginate(baseQuery, pagination, "name ASC", toDomainCustomer)
}

func (r *PersonRepository) CreateSupplier(ctx context.Context, supplier *person.Supplier) error {
	sdb := &supplierDB{
		Id:        supplier.Id.String(),
		Name:      supplier.Name,
		Document:  supplier.Document,
		Email:     supplier.Email,
		Phone:     supplier.Phone,
		IsActive:  supplier.IsActive,
		CreatedAt: supplier.CreatedAt,
		UpdatedAt: supplier.UpdatedAt,
	}
	return r.DB.WithContext(ctx).Create(sdb).Error
}

func (r *PersonRepository) UpdateSupplier(ctx context.Context, supplier *person.Supplier) error {
	return r.DB.WithContext(ctx).Model(&supplierDB{}).
		Where("id = ?", supplier.Id.String()).
		Select("name", "document", "email", "phone", "is_active", "updated_at").
		Updates(&supplierDB{
			Name:      supplier.Name,
			Document:  supplier.Document,
			Email:     supplier.Email,
			Phone:     supplier.Phone,
			IsActive:  supplier.IsActive,
			UpdatedAt: supplier.UpdatedAt,
		}).Error
}

func (r *PersonRepository) GetSupplierById(ctx context.Context, supplierID ulid.ULID) (*person.Supplier, error) {
	var sdb supplierDB
	err := r.DB.WithContext(ctx).Where("id = ?", supplierID.String()).First(&sdb).Error
	if err != nil {
		return nil, err
	}
	return toDomainSupplier(&sdb)
}

func (r *PersonRepository) ListSuppliers(ctx context.Context, search string, pagination *pkg.PaginationParams) ([]*person.Supplier, int64, error) {
	baseQuery := r.DB.WithContext(ctx).Table("suppliers")
	if search != "" {
		like := "%" + search + "%"
		baseQuery = baseQuery.Where("name LIKE ? OR document LIKE ?", like, like)
	}
	return pkg.Paginate(baseQuery, pagination, "name ASC", toDomainSupplier)
}

func (r *PersonRepository) CreateEmployee(ctx context.Context, employee *person.Employee) error {
	edb := &employeeDB{
		Id:                   employee.Id.String(),
		Name:                 employee.Name,
		Role:                 string(employee.Role),
		CommissionPercentage: employee.CommissionPercentage,
		Phone:                employee.Phone,
		IsActive:             employee.IsActive,
		CreatedAt:            employee.CreatedAt,
		UpdatedAt:            employee.UpdatedAt,
	}
	return r.DB.WithContext(ctx).Create(edb).Error
}

func (r *PersonRepository) UpdateEmployee(ctx context.Context, employee *person.Employee) error {
	return r.DB.WithContext(ctx).Model(&employeeDB{}).
		Where("id = ?", employee.Id.String()).
		Select("name", "role", "commission_percentage", "is_active", "updated_at").
		Updates(&employeeDB{
			Name:                 employee.Name,
			Role:                 string(employee.Role),
			CommissionPercentage: employee.CommissionPercentage,
			IsActive:             employee.IsActive,
			UpdatedAt:            employee.UpdatedAt,
		}).Error
}

func (r *PersonRepository) GetEmployeeById(ctx context.Context, employeeID ulid.ULID) (*person.Employee, error) {
	var edb employeeDB
	err := r.DB.WithContext(ctx).Where("id = ?", employeeID.String()).First(&edb).Error
	if err != nil {
		return nil, err
	}
	return toDomainEmployee(&edb)
}

func (r *PersonRepository) ListEmployees(ctx context.Context, role person.EmployeeRole, pagination *pkg.PaginationParams) ([]*person.Employee, int64, error) {
	baseQuery := r.DB.WithContext(ctx).Table("employees")
	if role != "" {
		baseQuery = baseQuery.Where("role = ?", string(role))
	}
	return pkg.Paginate(baseQuery, pagination, "name ASC", toDomainEmployee)
}
