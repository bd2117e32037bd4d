// Package pages implements the login and registration page controllers. A
// controller owns one form for the lifetime of a page and decides what a
// submission does to the auth state.
package pages

import (
	"finitefield.org/library-web/internal/web/authstate"
	"finitefield.org/library-web/internal/web/credentials"
	"finitefield.org/library-web/internal/web/forms"
)

// RoleUser is the role assigned on a successful login.
const RoleUser = "user"

// LoginState is the outcome of the most recent submission.
type LoginState int

const (
	// Unsubmitted means the form has not been submitted yet.
	Unsubmitted LoginState = iota
	// Rejected means the form was invalid or the credentials did not match.
	Rejected
	// Accepted means the credentials matched and the auth state was updated.
	Accepted
)

func (s LoginState) String() string {
	switch s {
	case Unsubmitted:
		return "unsubmitted"
	case Rejected:
		return "rejected"
	case Accepted:
		return "accepted"
	default:
		return "unknown"
	}
}

// Login drives the login page.
type Login struct {
	auth      *authstate.Store
	reference credentials.Credential
	form      *forms.Form
	state     LoginState
}

// NewLogin builds a controller around form. A nil form yields an empty login form.
func NewLogin(auth *authstate.Store, reference credentials.Credential, form *forms.Form) *Login {
	if auth == nil {
		panic("pages: auth state store is required")
	}
	if form == nil {
		form = forms.NewLoginForm()
	}
	return &Login{auth: auth, reference: reference, form: form}
}

// Form returns the controller's form.
func (l *Login) Form() *forms.Form {
	return l.form
}

// State returns the outcome of the last submission.
func (l *Login) State() LoginState {
	return l.state
}

// CredentialsValid reports the result of the last submission. submitted is
// false until Submit has been called at least once.
func (l *Login) CredentialsValid() (valid, submitted bool) {
	return l.state == Accepted, l.state != Unsubmitted
}

// Submit evaluates the form from scratch. Wrong email and wrong password are
// reported identically.
func (l *Login) Submit() LoginState {
	l.form.MarkAllTouched()

	email := l.form.Value(forms.FieldEmail)
	password := l.form.Value(forms.FieldPassword)
	if l.form.Invalid() || !l.reference.Matches(email, password) {
		l.state = Rejected
		return l.state
	}

	l.auth.SetUsername(email)
	l.auth.SetRole(RoleUser)
	l.auth.SetIsLoggedIn(true)
	l.state = Accepted
	return l.state
}

// SignOut clears the auth state and returns the controller to Unsubmitted.
func (l *Login) SignOut() {
	l.auth.Reset()
	l.state = Unsubmitted
}
