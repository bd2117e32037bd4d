package templates

import (
	"finitefield.org/library-web/internal/web/forms"
	"finitefield.org/library-web/internal/web/navbar"
)

// PageData is the chrome shared by every page: title, environment badge,
// CSRF token and the navbar projection.
type PageData struct {
	Title       string
	Environment string
	CSRFToken   string
	Nav         navbar.View
	// NavOOB re-renders the navbar as an htmx out-of-band swap alongside a
	// form fragment.
	NavOOB bool
}

// LoginPageData encapsulates rendering state for the login screen.
type LoginPageData struct {
	PageData
	Form *forms.Form
	// State is the login state machine value: unsubmitted, rejected or accepted.
	State string
	// EchoSecrets keeps password values in re-rendered inputs. Only field
	// event fragments set it so typing is not lost on swap.
	EchoSecrets bool
}

// RegistrationView is the collected record shown after a valid submission.
type RegistrationView struct {
	ID       string
	Name     string
	LastName string
	Email    string
}

// RegisterPageData encapsulates rendering state for the registration screen.
type RegisterPageData struct {
	PageData
	Form        *forms.Form
	Submitted   bool
	Accepted    bool
	Record      *RegistrationView
	EchoSecrets bool
}

// FieldData is what the shared field partial renders.
type FieldData struct {
	FormName    string
	Action      string
	Field       *forms.Field
	EchoSecrets bool
}

// ShowValue reports whether the input should carry its current value.
func (d FieldData) ShowValue() bool {
	return d.Field.Type != "password" || d.EchoSecrets
}
