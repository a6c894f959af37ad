package entities

import (
	"time"

	"cometjet/crewdesk/internal/constants"
	"cometjet/crewdesk/internal/models"
)

type Pilot struct {
	ID               string                 `db:"id"`
	Email            string                 `db:"email"`
	Name             string                 `db:"name"`
	PasswordHash     string                 `db:"password_hash"`
	Role             constants.PilotRole    `db:"role"`
	FirstLogin       bool                   `db:"first_login"`
	RegistrationCode string                 `db:"registration_code"`
	Registrations    models.RegistrationMap `db:"registrations"`
	CreatedAt        time.Time              `db:"created_at"`
	UpdatedAt        time.Time              `db:"updated_at"`
}
