package gorm

import (
	"time"

	"cometjet/crewdesk/internal/constants"
	"cometjet/crewdesk/internal/models"
)

type Pilot struct {
	ID               string                 `gorm:"column:id;primaryKey;type:uuid"`
	Email            string                 `gorm:"column:email;uniqueIndex"`
	Name             string                 `gorm:"column:name"`
	PasswordHash     string                 `gorm:"column:password_hash"`
	Role             constants.PilotRole    `gorm:"column:role;type:pilot_role;default:pilot"`
	FirstLogin       bool                   `gorm:"column:first_login;default:true"`
	RegistrationCode string                 `gorm:"column:registration_code"`
	Registrations    models.RegistrationMap `gorm:"column:registrations;type:jsonb"`
	CreatedAt        time.Time              `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt        time.Time              `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Pilot) TableName() string {
	return "pilots"
}
