package dto

import (
	"time"

	"github.com/SscSPs/erp_backoffice/internal/core/domain"
)

type CreateUserRequest struct {
	Username string      `json:"username" binding:"required,min=3,max=64"`
	Password string      `json:"password" binding:"required,min=8,max=72"`
	Role     domain.Role `json:"role" binding:"required,oneof=ADMIN USER"`
}

type UserResponse struct {
	ID        string      `json:"id"`
	Username  string      `json:"username"`
	Role      domain.Role `json:"role"`
	CreatedAt time.Time   `json:"createdAt"`
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
