// SPDX-License-Identifier: GPL-3.0-only

package models

import (
	"time"
)

var AllModels []any

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	MobileNumber string    `gorm:"size:20;not null;uniqueIndex" json:"mobile_number"`
	Email        string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Password     string    `gorm:"size:255;not null" json:"-"`
	Name         string    `gorm:"size:255;not null" json:"name"`
	DOB          time.Time `gorm:"column:dob;not null" json:"dob"`
	Gender       string    `gorm:"size:10;not null" json:"gender"`
	Goals        *string   `gorm:"type:text;default:null" json:"goals"`
	Interest     *string   `gorm:"type:text;default:null" json:"interest"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func init() {
	AllModels = append(AllModels, &User{})
}
