package employee

import (
	"context"
	"database/sql"
	"strings"

	"github.com/piyushraj0718/payrollmanagement/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, empl *Employee) error
	FindAllByOrganization(ctx context.Context, organization, search string) ([]Employee, error)
	FindOptionsByOrganization(ctx context.Context, organization string) ([]Employee, error)
	FindByIDAndOrganization(ctx context.Context, organization, id string) (*Employee, error)
	FindByNameAndOrganization(ctx context.Context, organization, name string) (*Employee, error)
	Update(ctx context.Context, empl *Employee) error
	Delete(ctx context.Context, organization, id string) error
	DeleteAttendances(ctx context.Context, employeeID string) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

// conn runs statements on the bound transaction when there is one.
func (r *repository) conn(ctx context.Context) *gorm.DB {
	db := r.db.WithContext(ctx)
	if r.tx != nil {
		db.Statement.ConnPool = r.tx
	}
	return db
}

func (r *repository) Create(ctx context.Context, empl *Employee) error {
	return r.conn(ctx).Create(empl).Error
}

func (r *repository) FindAllByOrganization(ctx context.Context, organization, search string) ([]Employee, error) {
	var empls []Employee
	q := r.conn(ctx).Scopes(tenant.Scope(organization))
	if search = strings.TrimSpace(search); search != "" {
		q = q.Where("LOWER(name) LIKE ? ESCAPE '\\'", "%"+escapeLike(strings.ToLower(search))+"%")
	}
	err := q.Order("name ASC").Find(&empls).Error
	return empls, err
}

func (r *repository) FindOptionsByOrganization(ctx context.Context, organization string) ([]Employee, error) {
	var empls []Employee
	err := r.conn(ctx).
		Select("id", "name").
		Scopes(tenant.Scope(organization)).
		Order("name ASC").
		Find(&empls).Error
	return empls, err
}

func (r *repository) FindByIDAndOrganization(ctx context.Context, organization, id string) (*Employee, error) {
	var empl Employee
	err := r.conn(ctx).
		Scopes(tenant.Scope(organization)).
		First(&empl, "id = ?", id).Error
	return &empl, err
}

// FindByNameAndOrganization returns the oldest employee carrying the exact name.
func (r *repository) FindByNameAndOrganization(ctx context.Context, organization, name string) (*Employee, error) {
	var empl Employee
	err := r.conn(ctx).
		Scopes(tenant.Scope(organization)).
		Where("name = ?", name).
		Order("created_at ASC").
		First(&empl).Error
	return &empl, err
}

func (r *repository) Update(ctx context.Context, empl *Employee) error {
	return r.conn(ctx).Save(empl).Error
}

func (r *repository) Delete(ctx context.Context, organization, id string) error {
	res := r.conn(ctx).
		Scopes(tenant.Scope(organization)).
		Delete(&Employee{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) DeleteAttendances(ctx context.Context, employeeID string) error {
	return r.conn(ctx).
		Exec("DELETE FROM attendances WHERE employee_id = ?", employeeID).Error
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
