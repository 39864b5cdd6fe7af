package postgres

import (
	"roster/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Migrate creates or updates the schema for every persistence model.
// The person profile shape migrates twice, once per variant table.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.AccountModel{},
		&model.LocationModel{},
		&model.BusinessProfileModel{},
		&model.AuthTokenModel{},
	); err != nil {
		return errors.Wrap(err, "failed to migrate base tables")
	}

	for _, table := range []string{"user_profiles", "admin_profiles"} {
		if err := db.Table(table).AutoMigrate(&model.PersonProfileModel{}); err != nil {
			return errors.Wrapf(err, "failed to migrate %s", table)
		}
	}

	return nil
}
