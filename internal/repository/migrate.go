package repository

import "gorm.io/gorm"

// AutoMigrate creates the store tables. Used by the seed binary and by
// tests running against in-memory SQLite; hosted Postgres deployments
// manage the schema on the store side.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&accountModel{},
		&leadModel{},
	)
}
