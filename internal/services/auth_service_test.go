package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"cometjet/crewdesk/internal/auth"
	"cometjet/crewdesk/internal/common"
	"cometjet/crewdesk/internal/constants"
	gormModels "cometjet/crewdesk/internal/models/gorm"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func insertPilot(t *testing.T, db *gorm.DB, hasher common.Hasher, password string, firstLogin bool) *gormModels.Pilot {
	hash, err := hasher.Hash(password)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}

	pilot := &gormModels.Pilot{
		ID:               uuid.New().String(),
		Email:            "jan@example.com",
		Name:             "Jan Kowalski",
		PasswordHash:     hash,
		Role:             constants.RolePilot,
		FirstLogin:       firstLogin,
		RegistrationCode: "KW",
	}
	if err := db.Create(pilot).Error; err != nil {
		t.Fatalf("Failed to insert pilot: %v", err)
	}
	return pilot
}

func newTestAuthService(db *gorm.DB, mailer common.NotificationSender) (*AuthService, common.Hasher) {
	hasher := common.NewBcryptHasher()
	tokens := auth.NewTokenService("test-secret", time.Hour)
	return NewAuthService(db, hasher, tokens, mailer), hasher
}

func TestLogin_Success(t *testing.T) {
	db := setupTestDB(t)
	service, hasher := newTestAuthService(db, &mockMailer{})
	insertPilot(t, db, hasher, "hunter2hunter2", true)

	result, err := service.Login(context.Background(), "jan@example.com", "hunter2hunter2")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if result.Token == "" {
		t.Error("Expected a session token")
	}

	if !result.FirstLogin {
		t.Error("Expected first_login flag in login result")
	}

	if result.Role != "pilot" {
		t.Errorf("Expected role pilot, got %s", result.Role)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	db := setupTestDB(t)
	service, hasher := newTestAuthService(db, &mockMailer{})
	insertPilot(t, db, hasher, "hunter2hunter2", false)

	_, err := service.Login(context.Background(), "jan@example.com", "wrong-password")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("Expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_UnknownEmail(t *testing.T) {
	db := setupTestDB(t)
	service, _ := newTestAuthService(db, &mockMailer{})

	_, err := service.Login(context.Background(), "nobody@example.com", "whatever")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("Expected ErrInvalidCredentials, got %v", err)
	}
}

func TestChangePassword_FirstLoginSkipsCurrentCheck(t *testing.T) {
	db := setupTestDB(t)
	mailer := &mockMailer{}
	service, hasher := newTestAuthService(db, mailer)
	pilot := insertPilot(t, db, hasher, "temp-password", true)

	err := service.ChangePassword(context.Background(), pilot.ID, "", "new-password-1")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	var updated gormModels.Pilot
	db.Where("id = ?", pilot.ID).First(&updated)

	if updated.FirstLogin {
		t.Error("Expected first_login to be cleared")
	}

	if updated.PasswordHash == pilot.PasswordHash {
		t.Error("Expected password hash to change")
	}

	if !hasher.Compare("new-password-1", updated.PasswordHash) {
		t.Error("Expected new password to verify against stored hash")
	}

	if len(mailer.sent) != 1 {
		t.Errorf("Expected a confirmation mail, got %d", len(mailer.sent))
	}
}

func TestChangePassword_WrongCurrentPassword(t *testing.T) {
	db := setupTestDB(t)
	service, hasher := newTestAuthService(db, &mockMailer{})
	pilot := insertPilot(t, db, hasher, "hunter2hunter2", false)

	err := service.ChangePassword(context.Background(), pilot.ID, "wrong-current", "new-password-1")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("Expected ErrInvalidCredentials, got %v", err)
	}

	var updated gormModels.Pilot
	db.Where("id = ?", pilot.ID).First(&updated)

	if updated.PasswordHash != pilot.PasswordHash {
		t.Error("Expected account to be unchanged")
	}
}

func TestChangePassword_TooShort(t *testing.T) {
	db := setupTestDB(t)
	service, hasher := newTestAuthService(db, &mockMailer{})
	pilot := insertPilot(t, db, hasher, "hunter2hunter2", false)

	err := service.ChangePassword(context.Background(), pilot.ID, "hunter2hunter2", "short")
	if !errors.Is(err, ErrPasswordTooShort) {
		t.Fatalf("Expected ErrPasswordTooShort, got %v", err)
	}
}

func TestChangePassword_MailFailureIsLoggedOnly(t *testing.T) {
	db := setupTestDB(t)
	service, hasher := newTestAuthService(db, &mockMailer{err: errors.New("smtp unreachable")})
	pilot := insertPilot(t, db, hasher, "temp-password", true)

	if err := service.ChangePassword(context.Background(), pilot.ID, "", "new-password-1"); err != nil {
		t.Fatalf("Confirmation mail failure must not surface, got %v", err)
	}
}
