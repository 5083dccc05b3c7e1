package mailer

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
)

const ConfirmationSubject = "Please confirm your email"

var confirmationTemplate = template.Must(template.New("confirmation").Parse(
	`<p>Welcome! Thanks for signing up. Please follow this link to activate your account:</p>
<p><a href="{{.URL}}">{{.URL}}</a></p>
<br>
<p>Cheers!</p>
`))

// RenderConfirmation returns the HTML body linking to confirmURL.
func RenderConfirmation(confirmURL string) (string, error) {
	var buf bytes.Buffer
	if err := confirmationTemplate.Execute(&buf, struct{ URL string }{confirmURL}); err != nil {
		return "", fmt.Errorf("render confirmation email: %w", err)
	}
	return buf.String(), nil
}

// SendConfirmation mails the account activation link to the given address.
func (m *Mailer) SendConfirmation(ctx context.Context, to, confirmURL string) error {
	body, err := RenderConfirmation(confirmURL)
	if err != nil {
		return err
	}
	return m.Send(ctx, to, ConfirmationSubject, body)
}
