package constants

const (
	MsgApplicationNotFound = "Application not found"
	MsgAlreadyProcessed    = "Application has already been processed"
	MsgPilotNotFound       = "Pilot not found"
	MsgInvalidCredentials  = "Invalid email or password"
	MsgPasswordTooShort    = "New password must be at least 8 characters"
	MsgNotificationFailed  = "but the notification email could not be sent"
	MsgPostNotFound        = "Post not found"
)
