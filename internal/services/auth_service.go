package services

import (
	"context"
	"errors"
	"fmt"

	"cometjet/crewdesk/internal/auth"
	"cometjet/crewdesk/internal/common"
	"cometjet/crewdesk/internal/logging"
	"cometjet/crewdesk/internal/models/dtos"
	gormModels "cometjet/crewdesk/internal/models/gorm"

	"gorm.io/gorm"
)

// AuthService handles pilot login and password changes.
type AuthService struct {
	db     *gorm.DB
	hasher common.Hasher
	tokens *auth.TokenService
	mailer common.NotificationSender
}

func NewAuthService(db *gorm.DB, hasher common.Hasher, tokens *auth.TokenService, mailer common.NotificationSender) *AuthService {
	return &AuthService{
		db:     db,
		hasher: hasher,
		tokens: tokens,
		mailer: mailer,
	}
}

// Login verifies email+password and issues a session token. Unknown email and
// wrong password yield the same error.
func (svc *AuthService) Login(ctx context.Context, email, password string) (*dtos.LoginResult, error) {

	var pilot gormModels.Pilot
	err := svc.db.WithContext(ctx).
		Where("email = ?", email).
		First(&pilot).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}

	if !svc.hasher.Compare(password, pilot.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	token, err := svc.tokens.IssueToken(pilot.ID, pilot.Role, pilot.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &dtos.LoginResult{
		Token:      token,
		PilotID:    pilot.ID,
		Name:       pilot.Name,
		Role:       pilot.Role.String(),
		FirstLogin: pilot.FirstLogin,
	}, nil
}

// ChangePassword rehashes the pilot's password and clears first_login. The
// current password check is skipped only while first_login is set. The
// confirmation mail is best-effort: a failure is logged, never surfaced.
func (svc *AuthService) ChangePassword(ctx context.Context, pilotID, currentPassword, newPassword string) error {

	if len(newPassword) < 8 {
		return ErrPasswordTooShort
	}

	var pilot gormModels.Pilot
	err := svc.db.WithContext(ctx).
		Where("id = ?", pilotID).
		First(&pilot).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrPilotNotFound
	}
	if err != nil {
		return fmt.Errorf("database error: %w", err)
	}

	if !pilot.FirstLogin && !svc.hasher.Compare(currentPassword, pilot.PasswordHash) {
		return ErrInvalidCredentials
	}

	passwordHash, err := svc.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	err = svc.db.WithContext(ctx).
		Model(&gormModels.Pilot{}).
		Where("id = ?", pilot.ID).
		Updates(map[string]interface{}{
			"password_hash": passwordHash,
			"first_login":   false,
		}).Error

	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	if mailErr := svc.mailer.Send(pilot.Email, "CometJet - Password Changed",
		"Your crew center password was changed. If this was not you, contact staff immediately.", false); mailErr != nil {
		logging.Warn("Failed to send password change confirmation",
			"pilot_id", pilot.ID,
			"error", mailErr.Error(),
		)
	}

	return nil
}
