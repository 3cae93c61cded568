// Package tenant restricts queries to the caller's organization.
package tenant

import "gorm.io/gorm"

func Scope(organization string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("organization = ?", organization)
	}
}

// ScopeTable qualifies the column for queries that join other tables.
func ScopeTable(table, organization string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(table+".organization = ?", organization)
	}
}
