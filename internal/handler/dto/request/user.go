package request

import (
	"parkstay/internal/usecase/commands"
)

type RegisterUserRequest struct {
	Username string `json:"username" binding:"required,max=100"`
	Password string `json:"password" binding:"required,max=255"`
	Name     string `json:"name" binding:"omitempty,max=255"`
}

type ApproveUserRequest struct {
	Role string `json:"role" binding:"omitempty,oneof=admin user ADMIN USER"`
}

func (r *RegisterUserRequest) ToParams() commands.RegisterUserParams {
	return commands.RegisterUserParams{
		Username: r.Username,
		Password: r.Password,
		Name:     r.Name,
	}
}
