package credentials

import "crypto/subtle"

// Credential is an email/password pair accepted by the login flow.
type Credential struct {
	Email    string
	Password string
}

// Reference is the single credential pair the login page accepts.
var Reference = Credential{
	Email:    "user@example.com",
	Password: "Zaq12wsx!@",
}

// Matches reports whether the submitted pair equals c exactly. Comparison is
// case-sensitive and performs no trimming or normalisation.
func (c Credential) Matches(email, password string) bool {
	if c.Email == "" || c.Password == "" {
		return false
	}
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(c.Email)) == 1
	passwordOK := subtle.ConstantTimeCompare([]byte(password), []byte(c.Password)) == 1
	return emailOK && passwordOK
}

// Validate checks the submitted pair against Reference.
func Validate(email, password string) bool {
	return Reference.Matches(email, password)
}
