package gorm

import (
	"time"

	"cometjet/crewdesk/internal/constants"
	"cometjet/crewdesk/internal/models"
)

type Application struct {
	ID              string                      `gorm:"column:id;primaryKey;type:uuid"`
	Name            string                      `gorm:"column:name"`
	Email           string                      `gorm:"column:email"`
	Callsign        string                      `gorm:"column:callsign"`
	Discord         *string                     `gorm:"column:discord"`
	BirthDate       time.Time                   `gorm:"column:birth_date"`
	Continent       string                      `gorm:"column:continent"`
	Experience      string                      `gorm:"column:experience"`
	Reason          string                      `gorm:"column:reason"`
	Aircraft        string                      `gorm:"column:aircraft"`
	Status          constants.ApplicationStatus `gorm:"column:status;type:application_status;default:pending"`
	Registrations   models.RegistrationMap      `gorm:"column:registrations;type:jsonb"`
	RejectionReason *string                     `gorm:"column:rejection_reason"`
	PilotID         *string                     `gorm:"column:pilot_id;type:uuid"`
	CreatedAt       time.Time                   `gorm:"column:created_at;autoCreateTime"`
}

// TableName specifies the table name for GORM
func (Application) TableName() string {
	return "applications"
}
