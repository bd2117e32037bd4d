package pages

import (
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"finitefield.org/library-web/internal/web/forms"
)

const (
	redacted             = "[redacted]"
	registrationIDPrefix = "reg_"
)

// Registration is the record collected by a valid registration submission.
type Registration struct {
	// ID is a reference for the submission, shown to the user and logged.
	ID       string
	Name     string
	LastName string
	Email    string
	Password string
}

// Register drives the registration page. It only validates and reports; it
// never creates an account or changes the auth state.
type Register struct {
	form      *forms.Form
	logger    *zap.Logger
	newID     func() string
	submitted bool
	accepted  bool
}

// NewRegister builds a controller around form. A nil form yields an empty
// registration form.
func NewRegister(form *forms.Form, logger *zap.Logger) *Register {
	if form == nil {
		form = forms.NewRegisterForm()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Register{form: form, logger: logger, newID: newRegistrationID}
}

// Form returns the controller's form.
func (r *Register) Form() *forms.Form {
	return r.form
}

// Submitted reports whether Submit has been called.
func (r *Register) Submitted() bool {
	return r.submitted
}

// Accepted reports whether the last submission was valid.
func (r *Register) Accepted() bool {
	return r.accepted
}

// Submit validates the form. When valid it returns the collected record and
// true; otherwise it logs the per-field failures and returns false.
func (r *Register) Submit() (Registration, bool) {
	r.submitted = true
	r.form.MarkAllTouched()

	if r.form.Invalid() {
		r.accepted = false
		flags := r.form.InvalidFlags()
		r.logger.Info("form is invalid",
			zap.String("form", r.form.Name()),
			zap.Bool("name_invalid", flags[forms.FieldName]),
			zap.Bool("last_name_invalid", flags[forms.FieldLastName]),
			zap.Bool("email_invalid", flags[forms.FieldEmail]),
			zap.Bool("password_invalid", flags[forms.FieldPassword]),
		)
		return Registration{}, false
	}

	rec := Registration{
		ID:       r.newID(),
		Name:     r.form.Value(forms.FieldName),
		LastName: r.form.Value(forms.FieldLastName),
		Email:    r.form.Value(forms.FieldEmail),
		Password: r.form.Value(forms.FieldPassword),
	}
	r.accepted = true
	r.logger.Info("registration collected",
		zap.String("form", r.form.Name()),
		zap.String("registration_id", rec.ID),
		zap.String("name", rec.Name),
		zap.String("last_name", rec.LastName),
		zap.String("email", rec.Email),
		zap.String("password", redacted),
	)
	return rec, true
}

func newRegistrationID() string {
	return registrationIDPrefix + ulid.Make().String()
}
