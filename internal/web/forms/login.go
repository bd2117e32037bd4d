package forms

// Login form field names.
const (
	FieldEmail    = "email"
	FieldPassword = "password"
)

// NewLoginForm builds an empty login form: email (required, email shape) and
// password (required).
func NewLoginForm() *Form {
	return newForm("login",
		fieldSpec{name: FieldEmail, label: "Email", typ: "email", rules: RulesEmail},
		fieldSpec{name: FieldPassword, label: "Password", typ: "password", rules: RulesRequired},
	)
}
