package entities

import (
	"time"

	"cometjet/crewdesk/internal/constants"
	"cometjet/crewdesk/internal/models"
)

type Application struct {
	ID              string                      `db:"id"`
	Name            string                      `db:"name"`
	Email           string                      `db:"email"`
	Callsign        string                      `db:"callsign"`
	Discord         *string                     `db:"discord"`
	BirthDate       time.Time                   `db:"birth_date"`
	Continent       string                      `db:"continent"`
	Experience      string                      `db:"experience"`
	Reason          string                      `db:"reason"`
	Aircraft        string                      `db:"aircraft"`
	Status          constants.ApplicationStatus `db:"status"`
	Registrations   models.RegistrationMap      `db:"registrations"`
	RejectionReason *string                     `db:"rejection_reason"`
	PilotID         *string                     `db:"pilot_id"`
	CreatedAt       time.Time                   `db:"created_at"`
}
