package employee

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Employee struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Organization string          `gorm:"type:varchar(255);not null;index"`
	Name         string          `gorm:"type:varchar(255);not null"`
	Department   string          `gorm:"type:varchar(255);not null"`
	BasicSalary  decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

func (Employee) TableName() string {
	return "employees"
}
