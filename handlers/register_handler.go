// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"net/http"

	"matchbase-server/db"
	"matchbase-server/events"
	"matchbase-server/stores"
	"matchbase-server/tokens"
	"matchbase-server/uploads"
	"matchbase-server/validation"

	"github.com/labstack/echo/v4"
)

// RegisterHandler godoc
// @Summary      Register a new user
// @Description  Creates a new account with optional profile images and returns it with a bearer token.
// @Tags         auth
// @Accept       multipart/form-data
// @Produce      json
// @Param        name           formData  string  true   "Display name"
// @Param        email          formData  string  true   "Email address"
// @Param        mobile_number  formData  string  true   "Mobile number, 10-15 digits"
// @Param        password       formData  string  true   "Password, minimum 6 characters"
// @Param        dob            formData  string  true   "Date of birth"
// @Param        gender         formData  string  true   "male, female or other"
// @Param        goals          formData  string  false  "Free-text goals"
// @Param        interest       formData  string  false  "Free-text interests"
// @Param        user_profile   formData  file    false  "Up to 10 profile images"
// @Success      201 {object} AuthResponse             "Account created"
// @Failure      400 {object} ValidationErrorResponse  "Validation failed or duplicate email/mobile"
// @Failure      500 {object} echo.HTTPError           "Internal server error"
// @Router       /api/auth/register [post]
func RegisterHandler(c echo.Context) error {
	logger := c.Logger()

	input := validation.RegistrationInput{
		Name:         c.FormValue("name"),
		Email:        c.FormValue("email"),
		MobileNumber: c.FormValue("mobile_number"),
		Password:     c.FormValue("password"),
		DOB:          c.FormValue("dob"),
		Gender:       c.FormValue("gender"),
		Goals:        c.FormValue("goals"),
		Interest:     c.FormValue("interest"),
	}

	reg, validationErrs := validation.ValidateRegistration(input)
	if validationErrs != nil {
		logger.Errorf("Registration validation failed with %d errors", len(validationErrs))
		return c.JSON(http.StatusBadRequest, ValidationErrorResponse{
			Success: false,
			Message: "Validation failed",
			Errors:  validationErrs,
		})
	}

	userStore := stores.NewUserStore(db.Conn)

	emailTaken, err := userStore.EmailExists(reg.Email)
	if err != nil {
		logger.Errorf("Email existence check failed: %v", err)
		return echo.ErrInternalServerError
	}
	if emailTaken {
		logger.Error("Email already registered.")
		return c.JSON(http.StatusBadRequest, GenericResponse{
			Success: false,
			Message: "User Already Exists, Try Login!",
		})
	}

	mobileTaken, err := userStore.MobileExists(reg.MobileNumber)
	if err != nil {
		logger.Errorf("Mobile existence check failed: %v", err)
		return echo.ErrInternalServerError
	}
	if mobileTaken {
		logger.Error("Mobile number already registered.")
		return c.JSON(http.StatusBadRequest, GenericResponse{
			Success: false,
			Message: "Mobile Number Already Registered!",
		})
	}

	saver := uploads.NewSaver()

	var imageURLs []string
	if form, err := c.MultipartForm(); err == nil && form != nil {
		files := form.File["user_profile"]
		if len(files) > 0 {
			imageURLs, err = saver.SaveAll(files)
			if err != nil {
				logger.Errorf("Profile image upload rejected: %v", err)
				return c.JSON(http.StatusBadRequest, GenericResponse{
					Success: false,
					Message: err.Error(),
				})
			}
		}
	}

	// Account and image rows share one transaction so a failed image
	// insert never leaves a half-registered account behind. The images
	// are already on disk by now, so every rollback also removes them.
	tx := db.Conn.Begin()
	if tx.Error != nil {
		saver.Remove(imageURLs)
		logger.Errorf("Transaction begin failed: %v", tx.Error)
		return echo.ErrInternalServerError
	}

	user, err := userStore.WithTx(tx).Create(reg)
	if err != nil {
		tx.Rollback()
		saver.Remove(imageURLs)
		logger.Errorf("Failed to create user: %v", err)
		return echo.ErrInternalServerError
	}

	profileStore := stores.NewProfileStore(db.Conn)
	for i, url := range imageURLs {
		if _, err := profileStore.WithTx(tx).Create(user.ID, url, i); err != nil {
			tx.Rollback()
			saver.Remove(imageURLs)
			logger.Errorf("Failed to create profile image row: %v", err)
			return echo.ErrInternalServerError
		}
	}

	if err := tx.Commit().Error; err != nil {
		saver.Remove(imageURLs)
		logger.Errorf("Transaction commit failed: %v", err)
		return echo.ErrInternalServerError
	}

	view, err := userStore.FindByIDWithProfiles(user.ID)
	if err != nil {
		logger.Errorf("Failed to fetch created user: %v", err)
		return echo.ErrInternalServerError
	}

	events.NewPublisher().Publish(events.TypeRegistered, user.ID, user.Email)

	token, err := tokens.New().Issue(user.ID)
	if err != nil {
		logger.Errorf("Token issuance failed: %v", err)
		return c.JSON(http.StatusCreated, AuthResponse{
			Success: true,
			Message: "New User Added",
			Data:    AuthData{User: view},
			Error:   "Token generation failed. Please set JWT_SECRET in the environment.",
		})
	}

	logger.Info("User registered successfully")
	return c.JSON(http.StatusCreated, AuthResponse{
		Success: true,
		Message: "New User Added",
		Data:    AuthData{User: view, Token: token},
	})
}
