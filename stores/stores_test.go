// SPDX-License-Identifier: GPL-3.0-only

package stores

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"matchbase-server/models"
	"matchbase-server/validation"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// Fast argon2id parameters; production values come from the environment.
	t.Setenv("ARGON2_TIME", "1")
	t.Setenv("ARGON2_MEMORY", "8192")

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := conn.AutoMigrate(models.AllModels...); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	return conn
}

func testRegistration(email, mobile string) *validation.Registration {
	return &validation.Registration{
		Name:         "Jane Doe",
		Email:        email,
		MobileNumber: mobile,
		Password:     "secret123",
		DOB:          time.Date(1995, 4, 23, 0, 0, 0, 0, time.UTC),
		Gender:       "female",
	}
}

func TestUserStoreCreateHashesPassword(t *testing.T) {
	conn := newTestDB(t)
	store := NewUserStore(conn)

	user, err := store.Create(testRegistration("jane@example.com", "4155550142"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if user.ID == 0 {
		t.Error("Created user should have an assigned id")
	}
	if user.Password == "secret123" {
		t.Error("Persisted password must never equal the plaintext")
	}

	if !store.VerifyPassword("secret123", user.Password) {
		t.Error("VerifyPassword should accept the original plaintext")
	}
	if store.VerifyPassword("wrongguess", user.Password) {
		t.Error("VerifyPassword should reject a wrong guess")
	}
}

func TestUserStoreExistenceProbes(t *testing.T) {
	conn := newTestDB(t)
	store := NewUserStore(conn)

	if _, err := store.Create(testRegistration("jane@example.com", "4155550142")); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	exists, err := store.EmailExists("jane@example.com")
	if err != nil || !exists {
		t.Errorf("EmailExists should be true, got %v, %v", exists, err)
	}
	exists, err = store.EmailExists("nobody@example.com")
	if err != nil || exists {
		t.Errorf("EmailExists should be false for unknown email, got %v, %v", exists, err)
	}

	exists, err = store.MobileExists("4155550142")
	if err != nil || !exists {
		t.Errorf("MobileExists should be true, got %v, %v", exists, err)
	}
	exists, err = store.MobileExists("0000000000")
	if err != nil || exists {
		t.Errorf("MobileExists should be false for unknown mobile, got %v, %v", exists, err)
	}
}

func TestUserStoreLookupsReturnNilWhenAbsent(t *testing.T) {
	conn := newTestDB(t)
	store := NewUserStore(conn)

	for name, lookup := range map[string]func() (*models.User, error){
		"FindByEmail":  func() (*models.User, error) { return store.FindByEmail("ghost@example.com") },
		"FindByMobile": func() (*models.User, error) { return store.FindByMobile("9999999999") },
		"FindByID":     func() (*models.User, error) { return store.FindByID(12345) },
	} {
		user, err := lookup()
		if err != nil {
			t.Errorf("%s: absence must not be an error, got %v", name, err)
		}
		if user != nil {
			t.Errorf("%s: expected nil for missing row, got %+v", name, user)
		}
	}
}

func TestUserStoreFindByIdentifiers(t *testing.T) {
	conn := newTestDB(t)
	store := NewUserStore(conn)

	created, err := store.Create(testRegistration("jane@example.com", "4155550142"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	byEmail, err := store.FindByEmail("jane@example.com")
	if err != nil || byEmail == nil || byEmail.ID != created.ID {
		t.Errorf("FindByEmail should return the created user, got %+v, %v", byEmail, err)
	}
	byMobile, err := store.FindByMobile("4155550142")
	if err != nil || byMobile == nil || byMobile.ID != created.ID {
		t.Errorf("FindByMobile should return the created user, got %+v, %v", byMobile, err)
	}
	byID, err := store.FindByID(created.ID)
	if err != nil || byID == nil || byID.Email != "jane@example.com" {
		t.Errorf("FindByID should return the created user, got %+v, %v", byID, err)
	}
}

func TestFindByIDWithProfilesNeverExposesPassword(t *testing.T) {
	conn := newTestDB(t)
	store := NewUserStore(conn)

	user, err := store.Create(testRegistration("jane@example.com", "4155550142"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := NewProfileStore(conn).Create(user.ID, "/uploads/profile-images/a.jpg", 0); err != nil {
		t.Fatalf("Profile create failed: %v", err)
	}

	view, err := store.FindByIDWithProfiles(user.ID)
	if err != nil {
		t.Fatalf("FindByIDWithProfiles failed: %v", err)
	}
	if view == nil {
		t.Fatal("Expected a view for an existing user")
	}
	if len(view.Profiles) != 1 {
		t.Errorf("Expected 1 profile, got %d", len(view.Profiles))
	}

	raw, err := json.Marshal(view)
	if err != nil {
		t.Fatalf("Failed to marshal view: %v", err)
	}
	var asMap map[string]any
	if err := json.Unmarshal(raw, &asMap); err != nil {
		t.Fatalf("Failed to unmarshal view: %v", err)
	}
	if _, found := asMap["password"]; found {
		t.Error("Serialized view must not contain a password field")
	}
	if strings.Contains(string(raw), "argon2") {
		t.Error("Serialized view must not contain the password hash")
	}

	missing, err := store.FindByIDWithProfiles(99999)
	if err != nil {
		t.Errorf("Missing account must not be an error, got %v", err)
	}
	if missing != nil {
		t.Errorf("Expected nil view for missing account, got %+v", missing)
	}
}

func TestProfileStoreOrdering(t *testing.T) {
	conn := newTestDB(t)
	userStore := NewUserStore(conn)
	profileStore := NewProfileStore(conn)

	user, err := userStore.Create(testRegistration("jane@example.com", "4155550142"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// Insert out of order; the fetch must sort by image_order.
	for _, order := range []int{2, 0, 1} {
		url := fmt.Sprintf("/uploads/profile-images/img-%d.jpg", order)
		if _, err := profileStore.Create(user.ID, url, order); err != nil {
			t.Fatalf("Profile create failed: %v", err)
		}
	}

	profiles, err := profileStore.FindByUserID(user.ID)
	if err != nil {
		t.Fatalf("FindByUserID failed: %v", err)
	}
	if len(profiles) != 3 {
		t.Fatalf("Expected 3 profiles, got %d", len(profiles))
	}
	for i, p := range profiles {
		if p.ImageOrder != i {
			t.Errorf("Expected order %d at position %d, got %d", i, i, p.ImageOrder)
		}
	}

	empty, err := profileStore.FindByUserID(99999)
	if err != nil {
		t.Fatalf("FindByUserID for unknown user failed: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("Expected no profiles for unknown user, got %d", len(empty))
	}
}

func TestProfileStoreDeleteOwnershipPair(t *testing.T) {
	conn := newTestDB(t)
	userStore := NewUserStore(conn)
	profileStore := NewProfileStore(conn)

	owner, err := userStore.Create(testRegistration("owner@example.com", "4155550142"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	other, err := userStore.Create(testRegistration("other@example.com", "4155550143"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	profile, err := profileStore.Create(owner.ID, "/uploads/profile-images/a.jpg", 0)
	if err != nil {
		t.Fatalf("Profile create failed: %v", err)
	}

	// Wrong owner: reported as not found, row stays.
	deleted, err := profileStore.Delete(profile.ID, other.ID)
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if deleted {
		t.Error("Delete with mismatched owner must report false")
	}
	remaining, err := profileStore.FindByUserID(owner.ID)
	if err != nil || len(remaining) != 1 {
		t.Errorf("Row must survive a mismatched delete, got %d rows, %v", len(remaining), err)
	}

	deleted, err = profileStore.Delete(profile.ID, owner.ID)
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if !deleted {
		t.Error("Delete with matching owner must report true")
	}
	remaining, err = profileStore.FindByUserID(owner.ID)
	if err != nil || len(remaining) != 0 {
		t.Errorf("Row must be gone after a matching delete, got %d rows, %v", len(remaining), err)
	}
}

func TestProfileStoreUpdateOrderAndBulkDelete(t *testing.T) {
	conn := newTestDB(t)
	userStore := NewUserStore(conn)
	profileStore := NewProfileStore(conn)

	user, err := userStore.Create(testRegistration("jane@example.com", "4155550142"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	profile, err := profileStore.Create(user.ID, "/uploads/profile-images/a.jpg", 0)
	if err != nil {
		t.Fatalf("Profile create failed: %v", err)
	}

	updated, err := profileStore.UpdateOrder(profile.ID, user.ID+1, 5)
	if err != nil {
		t.Fatalf("UpdateOrder failed: %v", err)
	}
	if updated {
		t.Error("UpdateOrder with mismatched owner must report false")
	}

	updated, err = profileStore.UpdateOrder(profile.ID, user.ID, 5)
	if err != nil {
		t.Fatalf("UpdateOrder failed: %v", err)
	}
	if !updated {
		t.Error("UpdateOrder with matching owner must report true")
	}
	profiles, _ := profileStore.FindByUserID(user.ID)
	if len(profiles) != 1 || profiles[0].ImageOrder != 5 {
		t.Errorf("Expected order 5, got %+v", profiles)
	}

	if _, err := profileStore.Create(user.ID, "/uploads/profile-images/b.jpg", 1); err != nil {
		t.Fatalf("Profile create failed: %v", err)
	}
	if err := profileStore.DeleteByUserID(user.ID); err != nil {
		t.Fatalf("DeleteByUserID failed: %v", err)
	}
	profiles, _ = profileStore.FindByUserID(user.ID)
	if len(profiles) != 0 {
		t.Errorf("Expected no profiles after bulk delete, got %d", len(profiles))
	}
}
