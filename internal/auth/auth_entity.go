package auth

import (
	"time"

	"github.com/google/uuid"
)

// User is an account of one organization. Usernames are unique across all
// organizations.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Username     string    `gorm:"type:varchar(100);uniqueIndex:uq_users_username;not null"`
	PasswordHash string    `gorm:"column:password_hash;type:varchar(255);not null"`
	Organization string    `gorm:"type:varchar(255);not null;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (User) TableName() string {
	return "users"
}
