package attendance

import (
	"context"
	"database/sql"
	"time"

	"github.com/piyushraj0718/payrollmanagement/internal/shared/calendar"
	"github.com/piyushraj0718/payrollmanagement/internal/tenant"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	EmployeeInOrganization(ctx context.Context, organization, employeeID string) (bool, error)
	Upsert(ctx context.Context, a *Attendance) error
	FindByEmployeeBetween(ctx context.Context, employeeID string, from, to calendar.Date) ([]Attendance, error)
	FindDailyRoster(ctx context.Context, organization string, date calendar.Date) ([]RosterRow, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	db := r.db.WithContext(ctx)
	if r.tx != nil {
		db.Statement.ConnPool = r.tx
	}
	return db
}

func (r *repository) EmployeeInOrganization(ctx context.Context, organization, employeeID string) (bool, error) {
	var count int64
	err := r.conn(ctx).
		Table("employees").
		Scopes(tenant.Scope(organization)).
		Where("id = ?", employeeID).
		Where("deleted_at IS NULL").
		Count(&count).Error
	return count > 0, err
}

// Upsert inserts the row or overwrites is_present of the existing
// (employee, date) row.
func (r *repository) Upsert(ctx context.Context, a *Attendance) error {
	return r.conn(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "employee_id"}, {Name: "attendance_date"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"is_present": a.IsPresent, "updated_at": time.Now().UTC()}),
		}).
		Create(a).Error
}

func (r *repository) FindByEmployeeBetween(ctx context.Context, employeeID string, from, to calendar.Date) ([]Attendance, error) {
	var rows []Attendance
	err := r.conn(ctx).
		Where("employee_id = ?", employeeID).
		Where("attendance_date BETWEEN ? AND ?", from.String(), to.String()).
		Order("attendance_date ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindDailyRoster(ctx context.Context, organization string, date calendar.Date) ([]RosterRow, error) {
	var rows []RosterRow
	err := r.conn(ctx).
		Table("employees").
		Select("employees.id AS employee_id, employees.name, employees.department, attendances.is_present").
		Joins("LEFT JOIN attendances ON attendances.employee_id = employees.id AND attendances.attendance_date = ?", date.String()).
		Scopes(tenant.ScopeTable("employees", organization)).
		Where("employees.deleted_at IS NULL").
		Order("employees.name ASC").
		Scan(&rows).Error
	return rows, err
}
