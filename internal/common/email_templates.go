package common

import (
	"bytes"
	"html/template"
)

// WelcomeMailData feeds the welcome email template for accepted applicants.
type WelcomeMailData struct {
	Name          string
	Callsign      string
	TempPassword  string
	Registrations map[string]string
	LoginURL      string
}

var welcomeMailTmpl = template.Must(template.New("welcome").Parse(`
<html>
  <body style="font-family: Arial, sans-serif; color: #1a1a2e;">
    <h2>Welcome aboard, {{.Name}}!</h2>
    <p>Your application to CometJet Virtual has been accepted. Your callsign is <b>{{.Callsign}}</b>.</p>
    <p>A pilot account has been created for you. Sign in with this temporary password and change it on first login:</p>
    <p style="font-size: 1.2em;"><code>{{.TempPassword}}</code></p>
    {{if .Registrations}}
    <p>Your assigned aircraft registrations:</p>
    <table border="1" cellpadding="6" cellspacing="0">
      <tr><th>Aircraft</th><th>Registration</th></tr>
      {{range $model, $reg := .Registrations}}
      <tr><td>{{$model}}</td><td>{{$reg}}</td></tr>
      {{end}}
    </table>
    {{end}}
    <p><a href="{{.LoginURL}}">Log in to the crew center</a></p>
    <p>Blue skies,<br>CometJet Recruitment</p>
  </body>
</html>
`))

// RenderWelcomeMail renders the acceptance email body.
func RenderWelcomeMail(data WelcomeMailData) (string, error) {
	var buf bytes.Buffer
	if err := welcomeMailTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
