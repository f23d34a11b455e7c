package response

import "parkstay/internal/domain/user"

// UserResponse never carries the password.
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Status   string `json:"status"`
	Avatar   string `json:"avatar"`
}

func FromUser(u *user.User) *UserResponse {
	return &UserResponse{
		ID:       u.ID(),
		Username: u.Username(),
		Name:     u.Name(),
		Role:     u.Role().String(),
		Status:   u.Status().String(),
		Avatar:   u.Avatar(),
	}
}

func FromUsers(us []*user.User) []*UserResponse {
	res := make([]*UserResponse, len(us))
	for i, u := range us {
		res[i] = FromUser(u)
	}
	return res
}
