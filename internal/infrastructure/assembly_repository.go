package infrastructure

import (
	"context"
	"time"

	"Mobilia/internal/domain/assembly"
	"Mobilia/internal/pkg"
	"Mobilia/internal/pkg/query"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type AssemblyRepository struct {
	DB *gorm.DB
}

func NewAssemblyRepository(db *gorm.DB) assembly.Repository {
	return &AssemblyRepository{DB: db}
}

type assemblyDB struct {
	Id            string     `gorm:"type:varchar(26);primaryKey"`
	Number        int64      `gorm:"not null;uniqueIndex"`
	SaleId        string     `gorm:"type:varchar(26);index;not null"`
	ProductId     string     `gorm:"type:varchar(26);not null"`
	AssemblerId   *string    `gorm:"type:varchar(26)"`
	Status        string     `gorm:"type:varchar(12);not null;default:'OPEN'"`
	ScheduledDate *time.Time `gorm:"type:timestamp"`
	DoneAt        *time.Time `gorm:"type:timestamp"`
	Notes         string     `gorm:"type:text"`
	CreatedAt     time.Time  `gorm:"not null"`
	UpdatedAt     time.Time  `gorm:"not null"`
}

func (assemblyDB) TableName() string {
	return "assemblies"
}

func toDomainAssembly(adb *assemblyDB) (*assembly.Assembly, error) {
	id, err := pkg.ParseULID(adb.Id)
	if err != nil {
		return nil, err
	}
	saleID, err := pkg.ParseULID(adb.SaleId)
	if err != nil {
		return nil, err
	}
	productID, err := pkg.ParseULID(adb.ProductId)
	if err != nil {
		return nil, err
	}

	var assemblerID *ulid.ULID
	if adb.AssemblerId != nil && *adb.AssemblerId != "" {
		parsed, err := pkg.ParseULID(*adb.AssemblerId)
		if err == nil {
			assemblerID = &parsed
		}
	}

	return &assembly.Assembly{
		Id:            id,
		Number:        adb.Number,
		SaleId:        saleID,
		ProductId:     productID,
		AssemblerId:   assemblerID,
		Status:        assembly.Status(adb.Status),
		ScheduledDate: adb.ScheduledDate,
		DoneAt:        adb.DoneAt,
		Notes:         adb.Notes,
		CreatedAt:     adb.CreatedAt,
		UpdatedAt:     adb.UpdatedAt,
	}, nil
}

func toDBAssembly(a *assembly.Assembly) *assemblyDB {
	var assemblerID *string
	if a.AssemblerId != nil {
		s := a.AssemblerId.String()
		assemblerID = &s
	}

	return &assemblyDB{
		Id:            a.Id.String(),
		Number:        a.Number,
		SaleId:        a.SaleId.String(),
		ProductId:     a.ProductId.String(),
		AssemblerId:   assemblerID,
		Status:        string(a.Status),
		ScheduledDate: a.ScheduledDate,
		DoneAt:        a.DoneAt,
		Notes:         a.Notes,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

func (r *AssemblyRepository) Create(ctx context.Context, a *assembly.Assembly) error {
	return r.DB.WithContext(ctx).Create(toDBAssembly(a)).Error
}

func (r *AssemblyRepository) Update(ctx context.Context, a *assembly.Assembly) error {
	adb := toDBAssembly(a)
	return r.DB.WithContext(ctx).Model(&assemblyDB{}).
		Where("id = ?", adb.Id).
		Select("assembler_id", "status", "scheduled_date", "done_at", "notes", "updated_at").
		Updates(adb).Error
}

func (r *AssemblyRepository) GetById(ctx context.Context, assemblyID ulid.ULID) (*assembly.Assembly, error) {
	var adb assemblyDB
	err := r.DB.WithContext(ctx).Where("id = ?", assemblyID.String()).First(&adb).Error
	if err != nil {
		return nil, err
	}
	return toDomainAssembly(&adb)
}

func (r *AssemblyRepository) List(ctx context.Context, status assembly.Status, pagination *pkg.PaginationParams) ([]*assembly.Assembly, int64, error) {
	baseQuery := r.DB.WithContext(ctx).Table("assemblies")
	if status != "" {
		baseQuery = baseQuery.Where("status = ?", string(status))
	}
	return pkg.Paginate(baseQuery, pagination, "number DESC", toDomainAssembly)
}

func (r *AssemblyRepository) ListBySale(ctx context.Context, saleID ulid.ULID) ([]*assembly.Assembly, error) {
	return query.ExecuteAll(
		query.New[assemblyDB](r.DB, "assemblies").
			Context(ctx).
			Where("sale_id = ?", saleID.String()).
			Order("number ASC"),
		toDomainAssembly,
	)
}

func (r *AssemblyRepository) NextNumber(ctx context.Context) (int64, error) {
	var max int64
	err := r.DB.WithContext(ctx).Model(&assemblyDB{}).
		Select("COALESCE(MAX(number), 0)").
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	return max + 1, nil
}
