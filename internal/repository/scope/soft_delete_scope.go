package scope

import "gorm.io/gorm"

// TrashedOnly restricts a query to soft-deleted rows. Callers must pair it
// with Unscoped, otherwise GORM filters the rows back out.
func TrashedOnly(db *gorm.DB) *gorm.DB {
	return db.Unscoped().Where("deleted_at IS NOT NULL")
}
