package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"cometjet/crewdesk/internal/models/dtos"
	"cometjet/crewdesk/internal/services"

	"github.com/go-chi/chi/v5"
)

// Mock LifecycleService
type mockLifecycleService struct {
	applyDecisionFunc func(ctx context.Context, applicationID, decision string, supplied map[string]string, reason string) (*dtos.DecisionResult, error)
}

func (m *mockLifecycleService) ApplyDecision(ctx context.Context, applicationID, decision string, supplied map[string]string, reason string) (*dtos.DecisionResult, error) {
	return m.applyDecisionFunc(ctx, applicationID, decision, supplied, reason)
}

func newDecisionRequest(t *testing.T, id string, body dtos.DecisionReq) *http.Request {
	t.Helper()

	bodyBytes, _ := json.Marshal(body)
	req := httptest.NewRequest("POST", "/api/v1/applications/"+id+"/decision", bytes.NewReader(bodyBytes))
	req.Header.Set("Content-Type", "application/json")

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestDecisionHandler_Accept(t *testing.T) {
	mockService := &mockLifecycleService{
		applyDecisionFunc: func(ctx context.Context, applicationID, decision string, supplied map[string]string, reason string) (*dtos.DecisionResult, error) {
			if applicationID != "app-1" {
				t.Errorf("Expected application id app-1, got %s", applicationID)
			}
			return &dtos.DecisionResult{
				ApplicationID:    applicationID,
				Status:           "accept",
				PilotID:          "pilot-1",
				Registrations:    map[string]string{"Boeing 737": "SP-ANB"},
				NotificationSent: true,
			}, nil
		},
	}

	handler := DecisionHandler(mockService)

	req := newDecisionRequest(t, "app-1", dtos.DecisionReq{Decision: "accept"})
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rr.Code)
	}

	var response dtos.APIResponse
	if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if response.Status != "ok" {
		t.Errorf("Expected status ok, got %s", response.Status)
	}
	if response.Message != "Application accepted" {
		t.Errorf("Unexpected message: %s", response.Message)
	}
}

func TestDecisionHandler_MailFailureStillSucceeds(t *testing.T) {
	mockService := &mockLifecycleService{
		applyDecisionFunc: func(ctx context.Context, applicationID, decision string, supplied map[string]string, reason string) (*dtos.DecisionResult, error) {
			return &dtos.DecisionResult{
				ApplicationID:    applicationID,
				Status:           "accept",
				PilotID:          "pilot-1",
				NotificationSent: false,
			}, nil
		},
	}

	handler := DecisionHandler(mockService)

	req := newDecisionRequest(t, "app-1", dtos.DecisionReq{Decision: "accept"})
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rr.Code)
	}

	var response dtos.APIResponse
	if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if response.Message == "Application accepted" {
		t.Error("Expected the message to mention the failed notification")
	}
}

func TestDecisionHandler_UnknownDecision(t *testing.T) {
	mockService := &mockLifecycleService{
		applyDecisionFunc: func(ctx context.Context, applicationID, decision string, supplied map[string]string, reason string) (*dtos.DecisionResult, error) {
			t.Fatal("Service should not be called for an invalid decision")
			return nil, nil
		},
	}

	handler := DecisionHandler(mockService)

	req := newDecisionRequest(t, "app-1", dtos.DecisionReq{Decision: "promote"})
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rr.Code)
	}
}

func TestDecisionHandler_NotFound(t *testing.T) {
	mockService := &mockLifecycleService{
		applyDecisionFunc: func(ctx context.Context, applicationID, decision string, supplied map[string]string, reason string) (*dtos.DecisionResult, error) {
			return nil, services.ErrApplicationNotFound
		},
	}

	handler := DecisionHandler(mockService)

	req := newDecisionRequest(t, "missing", dtos.DecisionReq{Decision: "reject"})
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", rr.Code)
	}
}

func TestDecisionHandler_AlreadyProcessed(t *testing.T) {
	mockService := &mockLifecycleService{
		applyDecisionFunc: func(ctx context.Context, applicationID, decision string, supplied map[string]string, reason string) (*dtos.DecisionResult, error) {
			return nil, services.ErrAlreadyProcessed
		},
	}

	handler := DecisionHandler(mockService)

	req := newDecisionRequest(t, "app-1", dtos.DecisionReq{Decision: "accept"})
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusConflict {
		t.Errorf("Expected status 409, got %d", rr.Code)
	}
}

func TestDecisionHandler_InvalidRegistration(t *testing.T) {
	mockService := &mockLifecycleService{
		applyDecisionFunc: func(ctx context.Context, applicationID, decision string, supplied map[string]string, reason string) (*dtos.DecisionResult, error) {
			return nil, &services.InvalidRegistrationError{Model: "Boeing 737", Value: "N12345"}
		},
	}

	handler := DecisionHandler(mockService)

	req := newDecisionRequest(t, "app-1", dtos.DecisionReq{
		Decision:      "accept",
		Registrations: map[string]string{"Boeing 737": "N12345"},
	})
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rr.Code)
	}
}
