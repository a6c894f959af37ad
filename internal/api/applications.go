package api

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"cometjet/crewdesk/internal/common"
	"cometjet/crewdesk/internal/constants"
	"cometjet/crewdesk/internal/db/repositories"
	"cometjet/crewdesk/internal/logging"
	"cometjet/crewdesk/internal/metrics"
	"cometjet/crewdesk/internal/models/dtos"
	"cometjet/crewdesk/internal/models/entities"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// applicationStore is the slice of ApplicationRepository the submit handler needs.
type applicationStore interface {
	InsertApplication(ctx context.Context, app *entities.Application) error
}

// SubmitApplicationHandler handles POST /api/v1/applications. metricsReg may
// be nil in tests.
func SubmitApplicationHandler(store applicationStore, mailer common.NotificationSender, metricsReg *metrics.MetricsRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.SubmitApplicationReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}

		if err := validate.Struct(&req); err != nil {
			common.RespondError(w, initTime, nil, validationMessage(err), http.StatusBadRequest)
			return
		}

		birthDate, err := time.Parse(time.DateOnly, req.BirthDate)
		if err != nil {
			common.RespondError(w, initTime, nil, "birth_date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		if age(birthDate) < constants.MinApplicantAge {
			common.RespondError(w, initTime, nil,
				fmt.Sprintf("Applicants must be at least %d years old", constants.MinApplicantAge), http.StatusBadRequest)
			return
		}

		if _, ok := constants.ICAORegions[req.Continent]; !ok {
			common.RespondError(w, initTime, nil, "continent is not a supported ICAO region code", http.StatusBadRequest)
			return
		}

		if len(req.Aircraft) < constants.MinSelectedAircraft || len(req.Aircraft) > constants.MaxSelectedAircraft {
			common.RespondError(w, initTime, nil,
				fmt.Sprintf("Select between %d and %d aircraft", constants.MinSelectedAircraft, constants.MaxSelectedAircraft), http.StatusBadRequest)
			return
		}

		for _, model := range req.Aircraft {
			if _, ok := constants.AircraftRegistrationLetters[model]; !ok {
				common.RespondError(w, initTime, nil,
					fmt.Sprintf("aircraft %q is not in the supported catalog", model), http.StatusBadRequest)
				return
			}
		}

		app := &entities.Application{
			Name:       req.Name,
			Email:      req.Email,
			Callsign:   req.Callsign,
			BirthDate:  birthDate,
			Continent:  req.Continent,
			Experience: req.Experience,
			Reason:     req.Reason,
			Aircraft:   strings.Join(req.Aircraft, ", "),
		}
		if req.Discord != "" {
			app.Discord = &req.Discord
		}

		if err := store.InsertApplication(r.Context(), app); err != nil {
			common.RespondError(w, initTime, err, "Failed to save application", http.StatusInternalServerError)
			return
		}

		if metricsReg != nil {
			metricsReg.ApplicationsSubmittedTotal.Inc()
		}

		// Reception ack is best-effort
		if err := mailer.Send(app.Email, "Thank you for your application!",
			"Your application has been received. We will get back to you within 3 days.", false); err != nil {
			logging.Warn("Failed to send application ack", "application_id", app.ID, "error", err.Error())
		}

		common.RespondSuccess(w, initTime, "Application submitted", app, http.StatusCreated)
	}
}

// ListApplicationsHandler handles GET /api/v1/applications (admin)
func ListApplicationsHandler(repo *repositories.ApplicationRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		apps, err := repo.ListApplications(r.Context())
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to fetch applications", http.StatusInternalServerError)
			return
		}

		common.RespondSuccess(w, initTime, "Applications fetched", apps)
	}
}

// GetApplicationHandler handles GET /api/v1/applications/{id} (admin)
func GetApplicationHandler(repo *repositories.ApplicationRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id := chi.URLParam(r, "id")

		app, err := repo.FindApplicationById(r.Context(), id)
		if errors.Is(err, sql.ErrNoRows) {
			common.RespondError(w, initTime, nil, constants.MsgApplicationNotFound, http.StatusNotFound)
			return
		}
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to fetch application", http.StatusInternalServerError)
			return
		}

		common.RespondSuccess(w, initTime, "Application fetched", app)
	}
}

// validationMessage extracts the first offending field from a validator error.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		f := verrs[0]
		switch f.Tag() {
		case "required":
			return fmt.Sprintf("%s is required", strings.ToLower(f.Field()))
		case "email":
			return fmt.Sprintf("%s must be a valid email address", strings.ToLower(f.Field()))
		case "min", "max":
			return fmt.Sprintf("%s is out of range", strings.ToLower(f.Field()))
		default:
			return fmt.Sprintf("%s is invalid", strings.ToLower(f.Field()))
		}
	}
	return "Invalid request"
}

func age(birthDate time.Time) int {
	now := time.Now()
	years := now.Year() - birthDate.Year()
	if now.YearDay() < birthDate.YearDay() {
		years--
	}
	return years
}
