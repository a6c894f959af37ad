package repositories

import (
	"context"

	"cometjet/crewdesk/internal/constants"
	"cometjet/crewdesk/internal/models"
	"cometjet/crewdesk/internal/models/entities"

	"github.com/jmoiron/sqlx"
)

type PilotRepository struct {
	db *sqlx.DB
}

func NewPilotRepository(db *sqlx.DB) *PilotRepository {
	return &PilotRepository{db}
}

func (r *PilotRepository) FindPilotById(ctx context.Context, id string) (*entities.Pilot, error) {

	var pilot entities.Pilot

	err := r.db.QueryRowxContext(ctx, constants.GetPilotById, id).StructScan(&pilot)
	if err != nil {
		return nil, err
	}

	return &pilot, nil
}

func (r *PilotRepository) ListPilots(ctx context.Context) ([]entities.Pilot, error) {

	pilots := make([]entities.Pilot, 0)

	if err := r.db.SelectContext(ctx, &pilots, constants.ListPilots); err != nil {
		return nil, err
	}

	return pilots, nil
}

func (r *PilotRepository) UpdatePilotProfile(ctx context.Context, id string, name string, registrations models.RegistrationMap) (*entities.Pilot, error) {

	var pilot entities.Pilot

	err := r.db.QueryRowxContext(ctx, constants.UpdatePilotProfile, id, name, registrations).StructScan(&pilot)
	if err != nil {
		return nil, err
	}

	return &pilot, nil
}

func (r *PilotRepository) DeletePilot(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, constants.DeletePilotById, id)
	return err
}
