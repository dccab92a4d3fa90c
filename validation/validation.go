// SPDX-License-Identifier: GPL-3.0-only

// Package validation holds the pure input checks for registration and
// login payloads. Every failing field is reported, not just the first,
// so clients see the complete violation list in one round trip.
package validation

import (
	"regexp"
	"strings"
	"time"
)

var (
	emailRegex  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	mobileRegex = regexp.MustCompile(`^[0-9]{10,15}$`)
)

var validGenders = []string{"male", "female", "other"}

// RegistrationInput is the raw, untrusted registration payload.
type RegistrationInput struct {
	Name         string
	Email        string
	MobileNumber string
	Password     string
	DOB          string
	Gender       string
	Goals        string
	Interest     string
}

// Registration is the normalized output of a successful validation.
// Goals and Interest are nil when absent from the payload.
type Registration struct {
	Name         string
	Email        string
	MobileNumber string
	Password     string
	DOB          time.Time
	Gender       string
	Goals        *string
	Interest     *string
}

// LoginInput is the raw login payload. Exactly one of Email or
// MobileNumber must be present.
type LoginInput struct {
	Email        string
	MobileNumber string
	Password     string
}

// Login is the normalized output of a successful login validation.
// Lookups must use these identifiers, not the raw payload; an identifier
// that was only whitespace comes back empty here.
type Login struct {
	Email        string
	MobileNumber string
	Password     string
}

func ValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

func ValidMobileNumber(mobile string) bool {
	return mobileRegex.MatchString(mobile)
}

func ValidPassword(password string) bool {
	return len(password) >= 6
}

// ParseDOB accepts a plain calendar date or an RFC 3339 timestamp.
func ParseDOB(dob string) (time.Time, bool) {
	if t, err := time.Parse("2006-01-02", dob); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, dob); err == nil {
		return t, true
	}
	return time.Time{}, false
}

func ValidGender(gender string) bool {
	g := strings.ToLower(gender)
	for _, v := range validGenders {
		if g == v {
			return true
		}
	}
	return false
}

// ValidateRegistration checks every field of the payload and returns
// either a normalized record or the full ordered list of errors.
func ValidateRegistration(input RegistrationInput) (*Registration, []string) {
	var errs []string

	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)
	mobile := strings.TrimSpace(input.MobileNumber)
	password := input.Password
	dob := strings.TrimSpace(input.DOB)
	gender := strings.TrimSpace(input.Gender)

	if len(name) < 2 {
		errs = append(errs, "Name must be at least 2 characters long")
	}

	if email == "" {
		errs = append(errs, "Email is required")
	} else if !ValidEmail(email) {
		errs = append(errs, "Please provide a valid email address")
	}

	if mobile == "" {
		errs = append(errs, "Mobile number is required")
	} else if !ValidMobileNumber(mobile) {
		errs = append(errs, "Please provide a valid mobile number (10-15 digits)")
	}

	if password == "" {
		errs = append(errs, "Password is required")
	} else if !ValidPassword(password) {
		errs = append(errs, "Password must be at least 6 characters long")
	}

	var dobTime time.Time
	if dob == "" {
		errs = append(errs, "Date of birth is required")
	} else {
		parsed, ok := ParseDOB(dob)
		if !ok || parsed.After(time.Now()) {
			errs = append(errs, "Please provide a valid date of birth")
		} else {
			dobTime = parsed
		}
	}

	if gender == "" {
		errs = append(errs, "Gender is required")
	} else if !ValidGender(gender) {
		errs = append(errs, "Please provide a valid gender (male, female, or other)")
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return &Registration{
		Name:         name,
		Email:        email,
		MobileNumber: mobile,
		Password:     password,
		DOB:          dobTime,
		Gender:       strings.ToLower(gender),
		Goals:        optional(input.Goals),
		Interest:     optional(input.Interest),
	}, nil
}

// ValidateLogin checks the payload and returns either the normalized
// identifiers or the full list of violations.
func ValidateLogin(input LoginInput) (*Login, []string) {
	var errs []string

	email := strings.TrimSpace(input.Email)
	mobile := strings.TrimSpace(input.MobileNumber)

	if email == "" && mobile == "" {
		errs = append(errs, "Please provide either email or mobile number")
	}

	if input.Password == "" {
		errs = append(errs, "Password is required")
	}

	if email != "" && !ValidEmail(email) {
		errs = append(errs, "Please provide a valid email address")
	}

	if mobile != "" && !ValidMobileNumber(mobile) {
		errs = append(errs, "Please provide a valid mobile number")
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return &Login{
		Email:        email,
		MobileNumber: mobile,
		Password:     input.Password,
	}, nil
}

func optional(s string) *string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
