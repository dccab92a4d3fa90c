// SPDX-License-Identifier: GPL-3.0-only

package stores

import (
	"matchbase-server/models"

	"gorm.io/gorm"
)

type ProfileStore struct {
	db *gorm.DB
}

func NewProfileStore(db *gorm.DB) *ProfileStore {
	return &ProfileStore{db: db}
}

func (s *ProfileStore) WithTx(tx *gorm.DB) *ProfileStore {
	return &ProfileStore{db: tx}
}

// Create appends one image row. The image URL is trusted; the upload
// layer has already enforced type and size limits.
func (s *ProfileStore) Create(userID uint, imageURL string, order int) (*models.UserProfile, error) {
	profile := models.UserProfile{
		UserID:     userID,
		ImageURL:   imageURL,
		ImageOrder: order,
	}
	if err := s.db.Create(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// FindByUserID returns the user's images in display order. Order values
// need not be contiguous; created_at breaks ties.
func (s *ProfileStore) FindByUserID(userID uint) ([]models.UserProfile, error) {
	profiles := []models.UserProfile{}
	err := s.db.Where("user_id = ?", userID).
		Order("image_order ASC, created_at ASC").
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

// Delete removes one image only when both keys match. A false return
// means "not found or not owned"; callers must not distinguish the two.
func (s *ProfileStore) Delete(profileID, userID uint) (bool, error) {
	result := s.db.Where("id = ? AND user_id = ?", profileID, userID).
		Delete(&models.UserProfile{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (s *ProfileStore) DeleteByUserID(userID uint) error {
	return s.db.Where("user_id = ?", userID).Delete(&models.UserProfile{}).Error
}

// UpdateOrder moves one image to a new display position, with the same
// ownership-pair discipline as Delete.
func (s *ProfileStore) UpdateOrder(profileID, userID uint, order int) (bool, error) {
	result := s.db.Model(&models.UserProfile{}).
		Where("id = ? AND user_id = ?", profileID, userID).
		Update("image_order", order)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
