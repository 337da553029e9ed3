package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateRegistration(t *testing.T) {
	valid := RegisterInput{
		FirstName:       "Ada",
		LastName:        "Lovelace",
		Email:           "ada@example.com",
		Password:        "analytical",
		ConfirmPassword: "analytical",
	}

	tests := []struct {
		name   string
		mutate func(in *RegisterInput)
		want   []string
	}{
		{name: "valid", mutate: func(in *RegisterInput) {}, want: nil},
		{name: "short first name", mutate: func(in *RegisterInput) { in.FirstName = "Al" }, want: []string{MsgFirstNameTooShort}},
		{name: "short last name", mutate: func(in *RegisterInput) { in.LastName = "Li" }, want: []string{MsgLastNameTooShort}},
		{name: "three rune name is enough", mutate: func(in *RegisterInput) { in.FirstName = "Zoë" }, want: nil},
		{name: "email without tld", mutate: func(in *RegisterInput) { in.Email = "ada@example" }, want: []string{MsgInvalidEmail}},
		{name: "email without at", mutate: func(in *RegisterInput) { in.Email = "ada.example.com" }, want: []string{MsgInvalidEmail}},
		{name: "email with plus", mutate: func(in *RegisterInput) { in.Email = "ada+x@mail.example.org" }, want: nil},
		{name: "mismatch", mutate: func(in *RegisterInput) { in.ConfirmPassword = "analytica1" }, want: []string{MsgPasswordMismatch}},
		{
			name: "short password",
			mutate: func(in *RegisterInput) {
				in.Password = "short"
				in.ConfirmPassword = "short"
			},
			want: []string{MsgPasswordTooShort},
		},
		{
			name: "everything wrong keeps order",
			mutate: func(in *RegisterInput) {
				*in = RegisterInput{FirstName: "A", LastName: "B", Email: "nope", Password: "x", ConfirmPassword: "y"}
			},
			want: []string{MsgFirstNameTooShort, MsgLastNameTooShort, MsgInvalidEmail, MsgPasswordMismatch, MsgPasswordTooShort},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)
			assert.Equal(t, tt.want, validateRegistration(in))
		})
	}
}

func TestValidateMessage(t *testing.T) {
	assert.Equal(t, []string{MsgTweetEmpty}, validateMessage(""))
	assert.Nil(t, validateMessage("a"))
	assert.Nil(t, validateMessage(strings.Repeat("a", 140)))
	assert.Equal(t, []string{MsgTweetTooLong}, validateMessage(strings.Repeat("a", 141)))
	// characters, not bytes
	assert.Nil(t, validateMessage(strings.Repeat("é", 140)))
}

func TestValidationError(t *testing.T) {
	assert.Nil(t, newValidationError(nil))

	err := newValidationError([]string{"one", "two"})
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"one", "two"}, verr.Messages)
	assert.Equal(t, "validation failed: one; two", err.Error())
}

func TestRegistrationMessages_Wording(t *testing.T) {
	assert.Equal(t, "passwords don't match", MsgPasswordMismatch)
	assert.Equal(t, "password isn't long enough", MsgPasswordTooShort)
}
