// SPDX-License-Identifier: GPL-3.0-only

package migrations

import (
	"fmt"

	"matchbase-server/models"

	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

func List() []*gormigrate.Migration {
	return []*gormigrate.Migration{
		{
			// Accounts imported before display ordering existed have every
			// image at order 0; give them sequential orders by upload time.
			ID: "001_backfill_image_order",
			Migrate: func(tx *gorm.DB) error {
				var userIDs []uint
				if err := tx.Model(&models.UserProfile{}).
					Distinct("user_id").
					Pluck("user_id", &userIDs).Error; err != nil {
					return fmt.Errorf("failed to list profile owners: %w", err)
				}

				for _, userID := range userIDs {
					var profiles []models.UserProfile
					if err := tx.Where("user_id = ?", userID).
						Order("created_at ASC").
						Find(&profiles).Error; err != nil {
						return fmt.Errorf("failed to fetch profiles for user %d: %w", userID, err)
					}

					allZero := true
					for _, p := range profiles {
						if p.ImageOrder != 0 {
							allZero = false
							break
						}
					}
					if !allZero || len(profiles) < 2 {
						continue
					}

					for i := range profiles {
						if err := tx.Model(&profiles[i]).
							Update("image_order", i).Error; err != nil {
							return fmt.Errorf("failed to update profile %d: %w", profiles[i].ID, err)
						}
					}
				}
				return nil
			},
			Rollback: func(tx *gorm.DB) error { return nil },
		},
	}
}

// Run applies the data migrations after the schema migration has
// brought the tables up to date.
func Run(db *gorm.DB) error {
	return gormigrate.New(db, gormigrate.DefaultOptions, List()).Migrate()
}
