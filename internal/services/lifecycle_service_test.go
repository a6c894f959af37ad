package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"cometjet/crewdesk/internal/common"
	"cometjet/crewdesk/internal/constants"
	gormModels "cometjet/crewdesk/internal/models/gorm"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Mock NotificationSender
type sentMail struct {
	To      string
	Subject string
	Body    string
	IsHTML  bool
}

type mockMailer struct {
	sent []sentMail
	err  error
}

func (m *mockMailer) Send(to, subject, body string, isHTML bool) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentMail{To: to, Subject: subject, Body: body, IsHTML: isHTML})
	return nil
}

// Setup test database
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// Auto migrate
	if err := db.AutoMigrate(&gormModels.Application{}, &gormModels.Pilot{}); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	return db
}

func insertPendingApplication(t *testing.T, db *gorm.DB, aircraft string) *gormModels.Application {
	app := &gormModels.Application{
		ID:         uuid.New().String(),
		Name:       "Jan Kowalski",
		Email:      "jan@example.com",
		Callsign:   "CJT015",
		BirthDate:  time.Date(2000, 5, 14, 0, 0, 0, 0, time.UTC),
		Continent:  "EU",
		Experience: "500h on the 737",
		Reason:     "Flying with friends",
		Aircraft:   aircraft,
		Status:     constants.StatusPending,
	}
	if err := db.Create(app).Error; err != nil {
		t.Fatalf("Failed to insert application: %v", err)
	}
	return app
}

func newTestLifecycleService(db *gorm.DB, mailer common.NotificationSender) *LifecycleService {
	return NewLifecycleService(db, mailer, common.NewBcryptHasher(), "https://cometjet.example/login", nil)
}

func TestApplyDecision_AcceptGeneratesRegistrations(t *testing.T) {
	db := setupTestDB(t)
	mailer := &mockMailer{}
	app := insertPendingApplication(t, db, "Boeing 737, Airbus A320")

	service := newTestLifecycleService(db, mailer)

	result, err := service.ApplyDecision(context.Background(), app.ID, "accept", nil, "")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if result.Status != "accept" {
		t.Errorf("Expected status accept, got %s", result.Status)
	}

	if len(result.Registrations) != 2 {
		t.Fatalf("Expected 2 registrations, got %d", len(result.Registrations))
	}

	for model, reg := range result.Registrations {
		if !ValidTailNumber(reg) {
			t.Errorf("Registration %q for %s does not match pattern", reg, model)
		}
	}

	if !result.NotificationSent {
		t.Error("Expected welcome notification to be sent")
	}

	if len(mailer.sent) != 1 || !mailer.sent[0].IsHTML {
		t.Errorf("Expected one HTML welcome mail, got %+v", mailer.sent)
	}

	// Verify pilot account
	var pilot gormModels.Pilot
	if err := db.Where("email = ?", app.Email).First(&pilot).Error; err != nil {
		t.Fatalf("Pilot account not found: %v", err)
	}

	if !pilot.FirstLogin {
		t.Error("Expected first_login to be true on a fresh account")
	}

	if pilot.Role != constants.RolePilot {
		t.Errorf("Expected role pilot, got %s", pilot.Role)
	}

	if len(pilot.RegistrationCode) != 2 {
		t.Errorf("Expected 2-letter registration code, got %q", pilot.RegistrationCode)
	}

	// Verify application row
	var updated gormModels.Application
	if err := db.Where("id = ?", app.ID).First(&updated).Error; err != nil {
		t.Fatalf("Application not found: %v", err)
	}

	if updated.Status != constants.StatusAccept {
		t.Errorf("Expected status accept, got %s", updated.Status)
	}

	if updated.PilotID == nil || *updated.PilotID != pilot.ID {
		t.Error("Expected application to link to the new pilot account")
	}
}

func TestApplyDecision_SecondDecisionConflicts(t *testing.T) {
	db := setupTestDB(t)
	mailer := &mockMailer{}
	app := insertPendingApplication(t, db, "Boeing 737")

	service := newTestLifecycleService(db, mailer)

	if _, err := service.ApplyDecision(context.Background(), app.ID, "accept", nil, ""); err != nil {
		t.Fatalf("First decision failed: %v", err)
	}

	_, err := service.ApplyDecision(context.Background(), app.ID, "reject", nil, "")
	if !errors.Is(err, ErrAlreadyProcessed) {
		t.Fatalf("Expected ErrAlreadyProcessed, got %v", err)
	}

	var updated gormModels.Application
	db.Where("id = ?", app.ID).First(&updated)

	if updated.Status != constants.StatusAccept {
		t.Errorf("Expected status to remain accept, got %s", updated.Status)
	}
}

func TestApplyDecision_NotFound(t *testing.T) {
	db := setupTestDB(t)
	service := newTestLifecycleService(db, &mockMailer{})

	_, err := service.ApplyDecision(context.Background(), uuid.New().String(), "accept", nil, "")
	if !errors.Is(err, ErrApplicationNotFound) {
		t.Fatalf("Expected ErrApplicationNotFound, got %v", err)
	}
}

func TestApplyDecision_InvalidSuppliedRegistrationAborts(t *testing.T) {
	db := setupTestDB(t)
	mailer := &mockMailer{}
	app := insertPendingApplication(t, db, "Boeing 737")

	service := newTestLifecycleService(db, mailer)

	_, err := service.ApplyDecision(context.Background(), app.ID, "accept",
		map[string]string{"Boeing 737": "SP-1X"}, "")

	var regErr *InvalidRegistrationError
	if !errors.As(err, &regErr) {
		t.Fatalf("Expected InvalidRegistrationError, got %v", err)
	}

	if regErr.Model != "Boeing 737" || regErr.Value != "SP-1X" {
		t.Errorf("Expected offending pair to be reported, got %+v", regErr)
	}

	// No partial side effects: no pilot, status still pending, no mail
	var count int64
	db.Model(&gormModels.Pilot{}).Count(&count)
	if count != 0 {
		t.Error("Expected no pilot account to be created")
	}

	var updated gormModels.Application
	db.Where("id = ?", app.ID).First(&updated)
	if updated.Status != constants.StatusPending {
		t.Errorf("Expected status to remain pending, got %s", updated.Status)
	}

	if len(mailer.sent) != 0 {
		t.Error("Expected no mail on aborted accept")
	}
}

func TestApplyDecision_SuppliedRegistrationValidationIsFormatOnly(t *testing.T) {
	db := setupTestDB(t)
	app := insertPendingApplication(t, db, "Boeing 737")

	service := newTestLifecycleService(db, &mockMailer{})

	// The catalog maps Boeing 737 to 'N', but SP-XYZ passes: only the
	// SP-[A-Z]{3} shape is checked, not the middle letter.
	result, err := service.ApplyDecision(context.Background(), app.ID, "accept",
		map[string]string{"Boeing 737": "SP-XYZ"}, "")
	if err != nil {
		t.Fatalf("Expected format-only validation to pass, got %v", err)
	}

	if result.Registrations["Boeing 737"] != "SP-XYZ" {
		t.Errorf("Expected supplied registration to be persisted, got %v", result.Registrations)
	}
}

func TestApplyDecision_UnsupportedAircraftSkipped(t *testing.T) {
	db := setupTestDB(t)
	app := insertPendingApplication(t, db, "Boeing 737, Concorde")

	service := newTestLifecycleService(db, &mockMailer{})

	result, err := service.ApplyDecision(context.Background(), app.ID, "accept", nil, "")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(result.Registrations) != 1 {
		t.Errorf("Expected 1 registration, got %d", len(result.Registrations))
	}

	if len(result.SkippedAircraft) != 1 || result.SkippedAircraft[0] != "Concorde" {
		t.Errorf("Expected Concorde to be reported as skipped, got %v", result.SkippedAircraft)
	}
}

func TestApplyDecision_RejectStoresReason(t *testing.T) {
	db := setupTestDB(t)
	mailer := &mockMailer{}
	app := insertPendingApplication(t, db, "Boeing 737")

	service := newTestLifecycleService(db, mailer)

	result, err := service.ApplyDecision(context.Background(), app.ID, "reject", nil, "Not enough experience")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if result.Status != "reject" {
		t.Errorf("Expected status reject, got %s", result.Status)
	}

	var updated gormModels.Application
	db.Where("id = ?", app.ID).First(&updated)

	if updated.Status != constants.StatusReject {
		t.Errorf("Expected status reject, got %s", updated.Status)
	}

	if updated.RejectionReason == nil || *updated.RejectionReason != "Not enough experience" {
		t.Error("Expected rejection reason to be stored")
	}

	var count int64
	db.Model(&gormModels.Pilot{}).Count(&count)
	if count != 0 {
		t.Error("Expected no pilot account on rejection")
	}

	if len(mailer.sent) != 1 || mailer.sent[0].IsHTML {
		t.Errorf("Expected one plain text rejection mail, got %+v", mailer.sent)
	}
}

func TestApplyDecision_MailFailureIsPartialSuccess(t *testing.T) {
	db := setupTestDB(t)
	mailer := &mockMailer{err: errors.New("smtp unreachable")}
	app := insertPendingApplication(t, db, "Boeing 737")

	service := newTestLifecycleService(db, mailer)

	result, err := service.ApplyDecision(context.Background(), app.ID, "accept", nil, "")
	if err != nil {
		t.Fatalf("Mail failure must not fail the mutation, got %v", err)
	}

	if result.NotificationSent {
		t.Error("Expected NotificationSent to be false")
	}

	// The account still exists
	var pilot gormModels.Pilot
	if err := db.Where("email = ?", app.Email).First(&pilot).Error; err != nil {
		t.Fatalf("Pilot account not found: %v", err)
	}
}

func TestApplyDecision_UnknownDecision(t *testing.T) {
	db := setupTestDB(t)
	app := insertPendingApplication(t, db, "Boeing 737")

	service := newTestLifecycleService(db, &mockMailer{})

	_, err := service.ApplyDecision(context.Background(), app.ID, "postpone", nil, "")
	if !errors.Is(err, ErrUnknownDecision) {
		t.Fatalf("Expected ErrUnknownDecision, got %v", err)
	}
}
