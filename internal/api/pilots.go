package api

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"cometjet/crewdesk/internal/auth"
	"cometjet/crewdesk/internal/common"
	"cometjet/crewdesk/internal/constants"
	"cometjet/crewdesk/internal/db/repositories"
	"cometjet/crewdesk/internal/models/dtos"
	"cometjet/crewdesk/internal/models/entities"
	"cometjet/crewdesk/internal/services"

	"github.com/go-chi/chi/v5"
)

func pilotProfile(p *entities.Pilot) *dtos.PilotProfile {
	return &dtos.PilotProfile{
		ID:               p.ID,
		Email:            p.Email,
		Name:             p.Name,
		Role:             p.Role.String(),
		FirstLogin:       p.FirstLogin,
		RegistrationCode: p.RegistrationCode,
		Registrations:    p.Registrations,
	}
}

// MeHandler handles GET /api/v1/pilots/me
func MeHandler(repo *repositories.PilotRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			common.RespondError(w, initTime, nil, "Unauthorized: missing claims", http.StatusUnauthorized)
			return
		}

		pilot, err := repo.FindPilotById(r.Context(), claims.UserID())
		if errors.Is(err, sql.ErrNoRows) {
			common.RespondError(w, initTime, nil, constants.MsgPilotNotFound, http.StatusNotFound)
			return
		}
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to fetch profile", http.StatusInternalServerError)
			return
		}

		common.RespondSuccess(w, initTime, "Profile fetched", pilotProfile(pilot))
	}
}

// ListPilotsHandler handles GET /api/v1/pilots (admin)
func ListPilotsHandler(repo *repositories.PilotRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		pilots, err := repo.ListPilots(r.Context())
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to fetch pilots", http.StatusInternalServerError)
			return
		}

		profiles := make([]*dtos.PilotProfile, 0, len(pilots))
		for i := range pilots {
			profiles = append(profiles, pilotProfile(&pilots[i]))
		}

		common.RespondSuccess(w, initTime, "Pilots fetched", profiles)
	}
}

// GetPilotHandler handles GET /api/v1/pilots/{id} (admin)
func GetPilotHandler(repo *repositories.PilotRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		pilot, err := repo.FindPilotById(r.Context(), chi.URLParam(r, "id"))
		if errors.Is(err, sql.ErrNoRows) {
			common.RespondError(w, initTime, nil, constants.MsgPilotNotFound, http.StatusNotFound)
			return
		}
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to fetch pilot", http.StatusInternalServerError)
			return
		}

		common.RespondSuccess(w, initTime, "Pilot fetched", pilotProfile(pilot))
	}
}

// UpdatePilotHandler handles PUT /api/v1/pilots/{id} (admin)
func UpdatePilotHandler(repo *repositories.PilotRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.UpdatePilotReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}

		if req.Name == "" {
			common.RespondError(w, initTime, nil, "name is required", http.StatusBadRequest)
			return
		}

		// Admin-supplied registrations go through the same format check as
		// the decision flow
		for model, reg := range req.Registrations {
			if !services.ValidTailNumber(reg) {
				common.RespondError(w, initTime, nil,
					"invalid registration "+reg+" for aircraft "+model, http.StatusBadRequest)
				return
			}
		}

		pilot, err := repo.UpdatePilotProfile(r.Context(), chi.URLParam(r, "id"), req.Name, req.Registrations)
		if errors.Is(err, sql.ErrNoRows) {
			common.RespondError(w, initTime, nil, constants.MsgPilotNotFound, http.StatusNotFound)
			return
		}
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to update pilot", http.StatusInternalServerError)
			return
		}

		common.RespondSuccess(w, initTime, "Pilot updated", pilotProfile(pilot))
	}
}

// DeletePilotHandler handles DELETE /api/v1/pilots/{id} (admin)
func DeletePilotHandler(repo *repositories.PilotRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		if err := repo.DeletePilot(r.Context(), chi.URLParam(r, "id")); err != nil {
			common.RespondError(w, initTime, err, "Failed to delete pilot", http.StatusInternalServerError)
			return
		}

		common.RespondSuccess(w, initTime, "Pilot deleted", nil)
	}
}
