package user

import "strings"

// User is a staff account of the booking desk. Passwords are stored as given.
type User struct {
	id       string
	username string
	password string
	name     string
	role     Role
	status   Status
	avatar   string
}

// NewUser registers a self-service account: role user, waiting for approval.
func NewUser(id string, username Username, password, name string) (*User, error) {
	if password == "" {
		return nil, ErrEmptyPassword
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = username.Value()
	}
	u := &User{
		id:       id,
		username: username.Value(),
		password: password,
		name:     name,
		role:     RoleUser,
		status:   StatusPending,
		avatar:   DefaultAvatar(name),
	}
	u.applyFailSafe()
	return u, nil
}

// Reconstruct rebuilds an account from storage. The admin fail-safe still applies.
func Reconstruct(id, username, password, name string, role Role, status Status, avatar string) *User {
	u := &User{
		id:       id,
		username: username,
		password: password,
		name:     name,
		role:     role,
		status:   status,
		avatar:   avatar,
	}
	u.applyFailSafe()
	return u
}

func (u *User) applyFailSafe() {
	if IsAdminUsername(u.username) {
		u.status = StatusApproved
	}
}

// IsAdminUsername reports whether username is the built-in admin, ignoring case.
func IsAdminUsername(username string) bool {
	return strings.EqualFold(username, AdminUsername)
}

func (u *User) Approve(role Role) error {
	if !role.IsValid() {
		return ErrInvalidRole
	}
	u.role = role
	u.status = StatusApproved
	return nil
}

func (u *User) IsApproved() bool {
	return u.status == StatusApproved
}

func (u *User) IsAdmin() bool {
	return u.role == RoleAdmin
}

func (u *User) SameUsername(username string) bool {
	return strings.EqualFold(u.username, strings.TrimSpace(username))
}

func (u *User) ID() string       { return u.id }
func (u *User) Username() string { return u.username }
func (u *User) Password() string { return u.password }
func (u *User) Name() string     { return u.name }
func (u *User) Role() Role       { return u.role }
func (u *User) Status() Status   { return u.status }
func (u *User) Avatar() string   { return u.avatar }
