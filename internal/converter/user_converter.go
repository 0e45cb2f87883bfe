package converter

import (
	"bookfast-web/internal/delivery/dto"
	"bookfast-web/internal/domain/entity"
)

// UserToResponse converts a User entity to UserResponse DTO
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	return &dto.UserResponse{
		ID:       user.ID,
		Username: user.Username,
		FullName: user.DisplayName(),
		Email:    user.DisplayEmail(),
		Role:     user.Role().String(),
	}
}
