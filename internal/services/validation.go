package services

import (
	"regexp"
	"unicode/utf8"

	"github.com/sbilibin2017/gw-twitter/internal/models"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9.+_-]+@[a-zA-Z0-9._-]+\.[a-zA-Z]+$`)

// Registration validation messages, reported in this order.
const (
	MsgFirstNameTooShort = "first name is not long enough"
	MsgLastNameTooShort  = "last name is not long enough"
	MsgInvalidEmail      = "invalid email"
	MsgPasswordMismatch  = "passwords don't match"
	MsgPasswordTooShort  = "password isn't long enough"
)

// Tweet validation messages.
const (
	MsgTweetEmpty   = "tweet message can't be empty"
	MsgTweetTooLong = "tweet message can't be longer than 140 characters"
)

const (
	minNameLength     = 3
	minPasswordLength = 8
)

// RegisterInput is the registration form.
type RegisterInput struct {
	FirstName       string
	LastName        string
	Email           string
	Password        string
	ConfirmPassword string
}

func validateRegistration(in RegisterInput) []string {
	var errs []string
	if utf8.RuneCountInString(in.FirstName) < minNameLength {
		errs = append(errs, MsgFirstNameTooShort)
	}
	if utf8.RuneCountInString(in.LastName) < minNameLength {
		errs = append(errs, MsgLastNameTooShort)
	}
	if !emailRegex.MatchString(in.Email) {
		errs = append(errs, MsgInvalidEmail)
	}
	if in.Password != in.ConfirmPassword {
		errs = append(errs, MsgPasswordMismatch)
	}
	if utf8.RuneCountInString(in.Password) < minPasswordLength {
		errs = append(errs, MsgPasswordTooShort)
	}
	return errs
}

func validateMessage(message string) []string {
	switch n := utf8.RuneCountInString(message); {
	case n == 0:
		return []string{MsgTweetEmpty}
	case n > models.MaxTweetLength:
		return []string{MsgTweetTooLong}
	}
	return nil
}
