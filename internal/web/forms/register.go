package forms

// Register form field names in addition to FieldEmail and FieldPassword.
const (
	FieldName     = "name"
	FieldLastName = "lastName"
)

// NewRegisterForm builds an empty registration form.
func NewRegisterForm() *Form {
	return newForm("register",
		fieldSpec{name: FieldName, label: "First name", typ: "text", rules: RulesRequired},
		fieldSpec{name: FieldLastName, label: "Last name", typ: "text", rules: RulesRequired},
		fieldSpec{name: FieldEmail, label: "Email", typ: "email", rules: RulesEmail},
		fieldSpec{name: FieldPassword, label: "Password", typ: "password", rules: RulesPassword},
	)
}
