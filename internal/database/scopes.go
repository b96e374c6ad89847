package database

import (
	"gorm.io/gorm"
)

// Paginate applies zero-based page/size pagination to a GORM query.
func Paginate(page, size int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(page * size).Limit(size)
	}
}
