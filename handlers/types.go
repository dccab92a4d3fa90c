// SPDX-License-Identifier: GPL-3.0-only

package handlers

import "matchbase-server/stores"

// swagger:model RegisterRequest
type RegisterRequest struct {
	// Display name, minimum 2 characters
	// required: true
	Name string `json:"name" form:"name" example:"Jane Doe"`
	// Email address, globally unique
	// required: true
	Email string `json:"email" form:"email" example:"jane@example.com"`
	// Mobile number, 10-15 digits, globally unique
	// required: true
	MobileNumber string `json:"mobile_number" form:"mobile_number" example:"4155550142"`
	// Password, minimum 6 characters
	// required: true
	Password string `json:"password" form:"password" example:"MySecretPassword@123"`
	// Date of birth, must not be in the future
	// required: true
	DOB string `json:"dob" form:"dob" example:"1995-04-23"`
	// Gender, one of male, female, other
	// required: true
	Gender string `json:"gender" form:"gender" example:"female"`
	// Optional free-text goals
	Goals string `json:"goals" form:"goals" example:"Long-term relationship"`
	// Optional free-text interests
	Interest string `json:"interest" form:"interest" example:"Hiking, jazz"`
}

// swagger:model LoginRequest
type LoginRequest struct {
	// Email address; takes precedence over mobile number when both are given
	Email string `json:"email" form:"email" example:"jane@example.com"`
	// Mobile number, accepted in place of email
	MobileNumber string `json:"mobile_number" form:"mobile_number" example:"4155550142"`
	// User's password
	Password string `json:"password" form:"password" example:"MySecretPassword@123"`
}

// swagger:model UpdateProfileOrderRequest
type UpdateProfileOrderRequest struct {
	// New display position for the image
	ImageOrder int `json:"image_order" form:"image_order" example:"2"`
}

// AuthData carries the composed account plus the issued token. The token
// is omitted when issuance failed; Error on the envelope says why.
type AuthData struct {
	User  *stores.UserView `json:"user"`
	Token string           `json:"token,omitempty"`
}

// swagger:model AuthResponse
type AuthResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Data    AuthData `json:"data"`
	// Diagnostic set only when token issuance failed
	Error string `json:"error,omitempty"`
}

// swagger:model UserData
type UserData struct {
	User *stores.UserView `json:"user"`
}

// swagger:model UserResponse
type UserResponse struct {
	Success bool     `json:"success"`
	Data    UserData `json:"data"`
}

// swagger:model ValidationErrorResponse
type ValidationErrorResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Errors  []string `json:"errors"`
}

// swagger:model GenericResponse
type GenericResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
