package forms

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

const (
	// TagDottedDomain requires at least one dot in the domain part of an address.
	TagDottedDomain = "dotted_domain"
	// TagPasswordPolicy requires length >= 8, an uppercase letter, a digit and a
	// non-alphanumeric character.
	TagPasswordPolicy = "password_policy"

	// Rule sets used by the login and register forms.
	RulesRequired = "required"
	RulesEmail    = "required,email," + TagDottedDomain
	RulesPassword = "required,min=8," + TagPasswordPolicy

	passwordMinLength = 8
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation(TagDottedDomain, func(fl validator.FieldLevel) bool {
		return HasDottedDomain(fl.Field().String())
	}); err != nil {
		panic(fmt.Sprintf("forms: register %s: %v", TagDottedDomain, err))
	}
	if err := v.RegisterValidation(TagPasswordPolicy, func(fl validator.FieldLevel) bool {
		return MeetsPasswordPolicy(fl.Field().String())
	}); err != nil {
		panic(fmt.Sprintf("forms: register %s: %v", TagPasswordPolicy, err))
	}
	return v
}

// HasDottedDomain reports whether the part after the last '@' contains a dot
// that is neither leading nor trailing.
func HasDottedDomain(value string) bool {
	at := strings.LastIndex(value, "@")
	if at <= 0 || at == len(value)-1 {
		return false
	}
	domain := value[at+1:]
	if strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	return strings.Contains(domain, ".")
}

// MeetsPasswordPolicy reports whether value satisfies the password-complexity rule.
func MeetsPasswordPolicy(value string) bool {
	if utf8.RuneCountInString(value) < passwordMinLength {
		return false
	}
	var upper, digit, special bool
	for _, r := range value {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		case !unicode.IsLetter(r):
			special = true
		}
	}
	return upper && digit && special
}

// Check evaluates value against a rule set and returns the tag of the first
// failing rule, or "" when every rule passes.
func Check(value, rules string) string {
	if rules == "" {
		return ""
	}
	err := validate.Var(value, rules)
	if err == nil {
		return ""
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return verrs[0].Tag()
	}
	// InvalidValidationError only happens on programmer error; treat as a failure.
	return "invalid"
}

func messageFor(label, tag, rules string) string {
	switch tag {
	case "":
		return ""
	case "required":
		return fmt.Sprintf("%s is required.", label)
	case "email", TagDottedDomain:
		return "Enter a valid email address."
	case "min":
		return fmt.Sprintf("%s must be at least %s characters.", label, minParam(rules))
	case TagPasswordPolicy:
		return fmt.Sprintf("%s needs an uppercase letter, a digit and a special character.", label)
	default:
		return fmt.Sprintf("%s is invalid.", label)
	}
}

func minParam(rules string) string {
	for _, rule := range strings.Split(rules, ",") {
		if strings.HasPrefix(rule, "min=") {
			return strings.TrimPrefix(rule, "min=")
		}
	}
	return ""
}
