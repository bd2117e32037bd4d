package forms

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPasswordRules(t *testing.T) {
	t.Parallel()

	cases := []struct {
		password string
		valid    bool
		tag      string
	}{
		{password: "Ab1!", valid: false, tag: "min"},
		{password: "TestTest!@#", valid: false, tag: TagPasswordPolicy},
		{password: "testtest123!@#", valid: false, tag: TagPasswordPolicy},
		{password: "TesTTesT123321", valid: false, tag: TagPasswordPolicy},
		{password: "", valid: false, tag: "required"},
		{password: "Test123!*", valid: true},
		{password: "TesT123!*", valid: true},
		{password: "Test123!", valid: true},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.password, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.valid, MeetsPasswordPolicy(tc.password))
			require.Equal(t, tc.tag, Check(tc.password, RulesPassword))
		})
	}
}

func TestEmailShape(t *testing.T) {
	t.Parallel()

	require.Equal(t, "email", Check("testexample", RulesEmail))
	require.Equal(t, "required", Check("", RulesEmail))
	require.Empty(t, Check("test2@example.com", RulesEmail))
	require.Empty(t, Check("user@example.com", RulesEmail))

	require.False(t, HasDottedDomain("user@localhost"))
	require.False(t, HasDottedDomain("user@example."))
	require.False(t, HasDottedDomain("@example.com"))
	require.True(t, HasDottedDomain("user@mail.example.com"))
}

func TestMessages(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Password must be at least 8 characters.", messageFor("Password", "min", RulesPassword))
	require.Equal(t, "Email is required.", messageFor("Email", "required", RulesEmail))
	require.Equal(t, "Enter a valid email address.", messageFor("Email", TagDottedDomain, RulesEmail))
	require.Empty(t, messageFor("Email", "", RulesEmail))
}
