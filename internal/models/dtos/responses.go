package dtos

type APIResponse struct {
	Status       string `json:"status"`
	Message      string `json:"message"`
	ResponseTime string `json:"response_time"`
	Data         any    `json:"data,omitempty"`
}

// DecisionResult reports the outcome of a lifecycle decision. NotificationSent
// is false when the mutation committed but the follow-up mail failed.
type DecisionResult struct {
	ApplicationID    string            `json:"application_id"`
	Status           string            `json:"status"`
	PilotID          string            `json:"pilot_id,omitempty"`
	Registrations    map[string]string `json:"registrations,omitempty"`
	SkippedAircraft  []string          `json:"skipped_aircraft,omitempty"`
	NotificationSent bool              `json:"notification_sent"`
}

type LoginResult struct {
	Token      string `json:"token"`
	PilotID    string `json:"pilot_id"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	FirstLogin bool   `json:"first_login"`
}

type PilotProfile struct {
	ID               string            `json:"id"`
	Email            string            `json:"email"`
	Name             string            `json:"name"`
	Role             string            `json:"role"`
	FirstLogin       bool              `json:"first_login"`
	RegistrationCode string            `json:"registration_code"`
	Registrations    map[string]string `json:"registrations,omitempty"`
}
