package dtos

type SubmitApplicationReq struct {
	Name       string   `json:"name" validate:"required"`
	Email      string   `json:"email" validate:"required,email"`
	Callsign   string   `json:"callsign" validate:"required"`
	Discord    string   `json:"discord"`
	BirthDate  string   `json:"birth_date" validate:"required"`
	Continent  string   `json:"continent" validate:"required"`
	Experience string   `json:"experience" validate:"required"`
	Reason     string   `json:"reason" validate:"required"`
	Aircraft   []string `json:"aircraft" validate:"required"`
}

type DecisionReq struct {
	Decision      string            `json:"decision" validate:"required,oneof=accept reject"`
	Registrations map[string]string `json:"registrations,omitempty"`
	Reason        string            `json:"reason,omitempty"`
}

type LoginReq struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ChangePasswordReq struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}

type UpdatePilotReq struct {
	Name          string            `json:"name"`
	Registrations map[string]string `json:"registrations,omitempty"`
}

type SavePostReq struct {
	ID          string `json:"id,omitempty"`
	Title       string `json:"title" validate:"required"`
	Content     string `json:"content" validate:"required"`
	Author      string `json:"author"`
	ImageURL    string `json:"image_url"`
	IsPublished bool   `json:"is_published"`
}

type SendMailReq struct {
	To      string `json:"to" validate:"required,email"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}
