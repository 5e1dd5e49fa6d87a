package mail

import (
	"bytes"
	"fmt"
	"html/template"
	"os"

	"gopkg.in/gomail.v2"
)

var reminderTemplate = template.Must(template.New("reminder").Parse(`
<p>Hi {{.Name}},</p>
<p>Your <b>{{.PlanName}}</b> subscription expires in {{.DaysRemaining}} day(s).</p>
<p>Renew now to keep your access uninterrupted:</p>
<p><a href="{{.RenewLink}}">Renew my subscription</a></p>
<p>— Team GrowthDesk</p>
`))

func NewEmailSender(host string, port int, user, password string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     "no-reply@growthdesk.in",
	}
}

// SendExpiryReminder nudges a subscriber whose plan is about to lapse.
func (s *EmailSender) SendExpiryReminder(to, name, planName string, daysRemaining int) error {
	data := reminderEmailData{
		Name:          name,
		PlanName:      planName,
		DaysRemaining: daysRemaining,
		RenewLink:     os.Getenv("RENEW_LINK"),
	}

	var body bytes.Buffer
	if err := reminderTemplate.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to render reminder template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("%s, your %s access expires soon", name, planName))
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send SMTP email: %w", err)
	}

	return nil
}
