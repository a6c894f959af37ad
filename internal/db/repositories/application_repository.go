package repositories

import (
	"context"
	"time"

	"cometjet/crewdesk/internal/constants"
	"cometjet/crewdesk/internal/models/entities"

	"github.com/jmoiron/sqlx"
)

type ApplicationRepository struct {
	db *sqlx.DB
}

func NewApplicationRepository(db *sqlx.DB) *ApplicationRepository {
	return &ApplicationRepository{db}
}

func (r *ApplicationRepository) InsertApplication(ctx context.Context, app *entities.Application) error {
	return r.db.QueryRowxContext(ctx, constants.InsertApplication,
		app.Name,
		app.Email,
		app.Callsign,
		app.Discord,
		app.BirthDate.Format(time.DateOnly),
		app.Continent,
		app.Experience,
		app.Reason,
		app.Aircraft,
	).StructScan(app)
}

func (r *ApplicationRepository) FindApplicationById(ctx context.Context, id string) (*entities.Application, error) {

	var app entities.Application

	err := r.db.QueryRowxContext(ctx, constants.GetApplicationById, id).StructScan(&app)
	if err != nil {
		return nil, err
	}

	return &app, nil
}

func (r *ApplicationRepository) ListApplications(ctx context.Context) ([]entities.Application, error) {

	apps := make([]entities.Application, 0)

	if err := r.db.SelectContext(ctx, &apps, constants.ListApplications); err != nil {
		return nil, err
	}

	return apps, nil
}
