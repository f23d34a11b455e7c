package user

import (
	"errors"
	"net/url"
	"strings"
)

var (
	ErrEmptyUsername   = errors.New("username cannot be empty")
	ErrInvalidUsername = errors.New("username must not contain whitespace")
	ErrEmptyPassword   = errors.New("password cannot be empty")
	ErrInvalidRole     = errors.New("invalid role")
)

// AdminUsername is the account that can never be left pending.
const AdminUsername = "admin"

type Username struct {
	value string
}

func NewUsername(s string) (Username, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Username{}, ErrEmptyUsername
	}
	if strings.ContainsAny(s, " \t\r\n") {
		return Username{}, ErrInvalidUsername
	}
	return Username{value: s}, nil
}

func (u Username) Value() string {
	return u.value
}

// Equal compares usernames case-insensitively.
func (u Username) Equal(other string) bool {
	return strings.EqualFold(u.value, other)
}

// DefaultAvatar builds a generated avatar URL for accounts without a picture.
func DefaultAvatar(name string) string {
	return "https://ui-avatars.com/api/?name=" + url.QueryEscape(name) + "&background=random"
}
