package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"cometjet/crewdesk/internal/common"
	"cometjet/crewdesk/internal/constants"
	"cometjet/crewdesk/internal/models/dtos"
	"cometjet/crewdesk/internal/services"

	"github.com/go-chi/chi/v5"
)

// lifecycleService is the slice of LifecycleService the decision handler needs.
type lifecycleService interface {
	ApplyDecision(ctx context.Context, applicationID, decision string, supplied map[string]string, reason string) (*dtos.DecisionResult, error)
}

// DecisionHandler handles POST /api/v1/applications/{id}/decision (admin)
func DecisionHandler(svc lifecycleService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id := chi.URLParam(r, "id")

		var req dtos.DecisionReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}

		if req.Decision != string(constants.StatusAccept) && req.Decision != string(constants.StatusReject) {
			common.RespondError(w, initTime, nil, "decision must be accept or reject", http.StatusBadRequest)
			return
		}

		result, err := svc.ApplyDecision(r.Context(), id, req.Decision, req.Registrations, req.Reason)

		if err != nil {
			var regErr *services.InvalidRegistrationError
			switch {
			case errors.Is(err, services.ErrApplicationNotFound):
				common.RespondError(w, initTime, nil, constants.MsgApplicationNotFound, http.StatusNotFound)
			case errors.Is(err, services.ErrAlreadyProcessed):
				common.RespondError(w, initTime, nil, constants.MsgAlreadyProcessed, http.StatusConflict)
			case errors.As(err, &regErr):
				common.RespondError(w, initTime, nil, regErr.Error(), http.StatusBadRequest)
			default:
				common.RespondError(w, initTime, err, "Failed to process decision", http.StatusInternalServerError)
			}
			return
		}

		message := "Application rejected"
		if result.Status == string(constants.StatusAccept) {
			message = "Application accepted"
		}
		if !result.NotificationSent {
			// Mutation committed; only the mail failed
			message += " " + constants.MsgNotificationFailed
		}

		common.RespondSuccess(w, initTime, message, result)
	}
}
