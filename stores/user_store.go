// SPDX-License-Identifier: GPL-3.0-only

// Package stores keeps all SQL behind explicit repository types. Handlers
// never build queries themselves.
package stores

import (
	"errors"
	"time"

	"matchbase-server/crypto"
	"matchbase-server/models"
	"matchbase-server/validation"

	"gorm.io/gorm"
)

// UserView is the response-bound shape of an account. It has no password
// field at all, so a credential hash can never leak through serialization.
type UserView struct {
	ID           uint                 `json:"id"`
	MobileNumber string               `json:"mobile_number"`
	Email        string               `json:"email"`
	Name         string               `json:"name"`
	DOB          time.Time            `json:"dob"`
	Gender       string               `json:"gender"`
	Goals        *string              `json:"goals"`
	Interest     *string              `json:"interest"`
	CreatedAt    time.Time            `json:"created_at"`
	UpdatedAt    time.Time            `json:"updated_at"`
	Profiles     []models.UserProfile `json:"profiles"`
}

type UserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

// WithTx returns a store bound to an open transaction so account and
// profile writes can share one commit boundary.
func (s *UserStore) WithTx(tx *gorm.DB) *UserStore {
	return &UserStore{db: tx}
}

func (s *UserStore) EmailExists(email string) (bool, error) {
	var count int64
	err := s.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *UserStore) MobileExists(mobile string) (bool, error) {
	var count int64
	err := s.db.Model(&models.User{}).Where("mobile_number = ?", mobile).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create hashes the plaintext password and persists the account. The
// plaintext never reaches storage or the logs.
func (s *UserStore) Create(reg *validation.Registration) (*models.User, error) {
	hash, err := crypto.NewCrypto().HashPassword(reg.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		MobileNumber: reg.MobileNumber,
		Email:        reg.Email,
		Password:     hash,
		Name:         reg.Name,
		DOB:          reg.DOB,
		Gender:       reg.Gender,
		Goals:        reg.Goals,
		Interest:     reg.Interest,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserStore) FindByEmail(email string) (*models.User, error) {
	return s.findOne("email = ?", email)
}

func (s *UserStore) FindByMobile(mobile string) (*models.User, error) {
	return s.findOne("mobile_number = ?", mobile)
}

func (s *UserStore) FindByID(id uint) (*models.User, error) {
	return s.findOne("id = ?", id)
}

// findOne returns (nil, nil) when no row matches.
func (s *UserStore) findOne(query string, arg any) (*models.User, error) {
	var user models.User
	err := s.db.Where(query, arg).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// VerifyPassword compares through the hashing algorithm's verification
// primitive, never by string equality.
func (s *UserStore) VerifyPassword(plaintext, encodedHash string) bool {
	return crypto.NewCrypto().VerifyPassword(plaintext, encodedHash) == nil
}

// FindByIDWithProfiles composes the account lookup with its ordered
// profile images. Returns (nil, nil) when the account does not exist.
func (s *UserStore) FindByIDWithProfiles(id uint) (*UserView, error) {
	user, err := s.FindByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	profiles, err := NewProfileStore(s.db).FindByUserID(id)
	if err != nil {
		return nil, err
	}

	return &UserView{
		ID:           user.ID,
		MobileNumber: user.MobileNumber,
		Email:        user.Email,
		Name:         user.Name,
		DOB:          user.DOB,
		Gender:       user.Gender,
		Goals:        user.Goals,
		Interest:     user.Interest,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
		Profiles:     profiles,
	}, nil
}
