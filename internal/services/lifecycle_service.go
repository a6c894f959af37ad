package services

import (
	"context"
	"errors"
	"fmt"

	"cometjet/crewdesk/internal/common"
	"cometjet/crewdesk/internal/constants"
	"cometjet/crewdesk/internal/logging"
	"cometjet/crewdesk/internal/metrics"
	"cometjet/crewdesk/internal/models"
	"cometjet/crewdesk/internal/models/dtos"
	gormModels "cometjet/crewdesk/internal/models/gorm"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const recruitmentMailSubject = "CometJet - Recruitment Outcome Notification"

// LifecycleService owns the application state machine: pending -> accept or
// pending -> reject, exactly once. Acceptance provisions the pilot account.
type LifecycleService struct {
	db       *gorm.DB
	mailer   common.NotificationSender
	hasher   common.Hasher
	loginURL string
	metrics  *metrics.MetricsRegistry
}

// NewLifecycleService creates a new lifecycle service. metricsReg may be nil
// in tests.
func NewLifecycleService(db *gorm.DB, mailer common.NotificationSender, hasher common.Hasher, loginURL string, metricsReg *metrics.MetricsRegistry) *LifecycleService {
	return &LifecycleService{
		db:       db,
		mailer:   mailer,
		hasher:   hasher,
		loginURL: loginURL,
		metrics:  metricsReg,
	}
}

// ApplyDecision transitions an application out of pending. Supplied
// registrations (admin override) are validated format-only; an empty map
// means one tail number is generated per selected aircraft. The mutation
// commits before any mail is sent; a mail failure is reported through
// NotificationSent, never rolled back.
func (svc *LifecycleService) ApplyDecision(
	ctx context.Context,
	applicationID string,
	decision string,
	supplied map[string]string,
	reason string,
) (*dtos.DecisionResult, error) {

	var app gormModels.Application
	err := svc.db.WithContext(ctx).
		Where("id = ?", applicationID).
		First(&app).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrApplicationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}

	// Must be checked before any mutation: at most one decision per application.
	if app.Status != constants.StatusPending {
		return nil, ErrAlreadyProcessed
	}

	switch decision {
	case string(constants.StatusAccept):
		return svc.acceptApplication(ctx, &app, supplied)
	case string(constants.StatusReject):
		return svc.rejectApplication(ctx, &app, reason)
	default:
		return nil, ErrUnknownDecision
	}
}

func (svc *LifecycleService) acceptApplication(
	ctx context.Context,
	app *gormModels.Application,
	supplied map[string]string,
) (*dtos.DecisionResult, error) {

	aircraft := NormalizeAircraftList(app.Aircraft)

	registrations := make(models.RegistrationMap)
	var skipped []string

	if len(supplied) == 0 {
		for _, model := range aircraft {
			tail, ok := GenerateTailNumber(model, GenerateRegistrationCode())
			if !ok {
				// Unsupported models get no registration. Kept lenient, but
				// logged and counted so the drop is visible.
				skipped = append(skipped, model)
				logging.Warn("Skipping registration for unsupported aircraft",
					"application_id", app.ID,
					"aircraft", model,
				)
				if svc.metrics != nil {
					svc.metrics.AircraftSkippedTotal.Inc()
				}
				continue
			}
			registrations[model] = tail
		}
	} else {
		for model, reg := range supplied {
			registrations[model] = reg
		}
	}

	// Validate everything before touching the database.
	for model, reg := range registrations {
		if !ValidTailNumber(reg) {
			return nil, &InvalidRegistrationError{Model: model, Value: reg}
		}
	}

	tempPassword := GenerateTempPassword()
	passwordHash, err := svc.hasher.Hash(tempPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to hash temporary password: %w", err)
	}

	pilot := gormModels.Pilot{
		ID:               uuid.New().String(),
		Email:            app.Email,
		Name:             app.Name,
		PasswordHash:     passwordHash,
		Role:             constants.RolePilot,
		FirstLogin:       true,
		RegistrationCode: GenerateRegistrationCode(),
		Registrations:    registrations,
	}

	err = svc.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&pilot).Error; err != nil {
			return fmt.Errorf("failed to create pilot account: %w", err)
		}

		// Conditional update: only one concurrent decision can observe
		// status = pending, so account creation happens at most once.
		res := tx.Model(&gormModels.Application{}).
			Where("id = ? AND status = ?", app.ID, constants.StatusPending).
			Updates(map[string]interface{}{
				"status":        constants.StatusAccept,
				"registrations": registrations,
				"pilot_id":      pilot.ID,
			})

		if res.Error != nil {
			return fmt.Errorf("failed to update application: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrAlreadyProcessed
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	if svc.metrics != nil {
		svc.metrics.DecisionsTotal.WithLabelValues("accept").Inc()
	}

	body, renderErr := common.RenderWelcomeMail(common.WelcomeMailData{
		Name:          app.Name,
		Callsign:      app.Callsign,
		TempPassword:  tempPassword,
		Registrations: registrations,
		LoginURL:      svc.loginURL,
	})

	notified := false
	if renderErr != nil {
		logging.Error("Failed to render welcome mail", "application_id", app.ID, "error", renderErr.Error())
	} else {
		notified = svc.sendNotification(app.Email, recruitmentMailSubject, body, true, app.ID)
	}

	return &dtos.DecisionResult{
		ApplicationID:    app.ID,
		Status:           string(constants.StatusAccept),
		PilotID:          pilot.ID,
		Registrations:    registrations,
		SkippedAircraft:  skipped,
		NotificationSent: notified,
	}, nil
}

func (svc *LifecycleService) rejectApplication(
	ctx context.Context,
	app *gormModels.Application,
	reason string,
) (*dtos.DecisionResult, error) {

	updates := map[string]interface{}{
		"status": constants.StatusReject,
	}
	if reason != "" {
		updates["rejection_reason"] = reason
	}

	res := svc.db.WithContext(ctx).
		Model(&gormModels.Application{}).
		Where("id = ? AND status = ?", app.ID, constants.StatusPending).
		Updates(updates)

	if res.Error != nil {
		return nil, fmt.Errorf("failed to update application: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrAlreadyProcessed
	}

	if svc.metrics != nil {
		svc.metrics.DecisionsTotal.WithLabelValues("reject").Inc()
	}

	body := "Unfortunately you did not qualify this time. Thank you for your interest in CometJet Virtual."
	if reason != "" {
		body += "\n\nReason: " + reason
	}
	notified := svc.sendNotification(app.Email, recruitmentMailSubject, body, false, app.ID)

	return &dtos.DecisionResult{
		ApplicationID:    app.ID,
		Status:           string(constants.StatusReject),
		NotificationSent: notified,
	}, nil
}

func (svc *LifecycleService) sendNotification(to, subject, body string, isHTML bool, applicationID string) bool {
	if err := svc.mailer.Send(to, subject, body, isHTML); err != nil {
		logging.Error("Failed to send decision notification",
			"application_id", applicationID,
			"error", err.Error(),
		)
		if svc.metrics != nil {
			svc.metrics.MailsTotal.WithLabelValues("failed").Inc()
		}
		return false
	}
	if svc.metrics != nil {
		svc.metrics.MailsTotal.WithLabelValues("sent").Inc()
	}
	return true
}
