// SPDX-License-Identifier: GPL-3.0-only

package models

import (
	"time"
)

type UserProfile struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;index" json:"user_id"`
	User       User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	ImageURL   string    `gorm:"size:500;not null" json:"image_url"`
	ImageOrder int       `gorm:"not null;default:0" json:"image_order"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func init() {
	AllModels = append(AllModels, &UserProfile{})
}
