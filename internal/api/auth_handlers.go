package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"cometjet/crewdesk/internal/auth"
	"cometjet/crewdesk/internal/common"
	"cometjet/crewdesk/internal/constants"
	"cometjet/crewdesk/internal/models/dtos"
	"cometjet/crewdesk/internal/services"
)

type authService interface {
	Login(ctx context.Context, email, password string) (*dtos.LoginResult, error)
	ChangePassword(ctx context.Context, pilotID, currentPassword, newPassword string) error
}

// LoginHandler handles POST /api/v1/auth/login
func LoginHandler(svc authService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.LoginReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}

		if req.Email == "" || req.Password == "" {
			common.RespondError(w, initTime, nil, "Email and password are required", http.StatusBadRequest)
			return
		}

		result, err := svc.Login(r.Context(), req.Email, req.Password)
		if errors.Is(err, services.ErrInvalidCredentials) {
			common.RespondError(w, initTime, nil, constants.MsgInvalidCredentials, http.StatusUnauthorized)
			return
		}
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to process login", http.StatusInternalServerError)
			return
		}

		common.RespondSuccess(w, initTime, "Logged in", result)
	}
}

// ChangePasswordHandler handles POST /api/v1/auth/password
func ChangePasswordHandler(svc authService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			common.RespondError(w, initTime, nil, "Unauthorized: missing claims", http.StatusUnauthorized)
			return
		}

		var req dtos.ChangePasswordReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}

		err := svc.ChangePassword(r.Context(), claims.UserID(), req.CurrentPassword, req.NewPassword)

		switch {
		case errors.Is(err, services.ErrPasswordTooShort):
			common.RespondError(w, initTime, nil, constants.MsgPasswordTooShort, http.StatusBadRequest)
		case errors.Is(err, services.ErrInvalidCredentials):
			common.RespondError(w, initTime, nil, "Current password does not match", http.StatusUnauthorized)
		case errors.Is(err, services.ErrPilotNotFound):
			common.RespondError(w, initTime, nil, constants.MsgPilotNotFound, http.StatusNotFound)
		case err != nil:
			common.RespondError(w, initTime, err, "Failed to change password", http.StatusInternalServerError)
		default:
			common.RespondSuccess(w, initTime, "Password changed", nil)
		}
	}
}
