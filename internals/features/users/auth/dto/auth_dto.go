// file: internals/features/users/auth/dto/auth_dto.go
package dto

import (
	"github.com/google/uuid"

	userModel "faithtracker_backend/internals/features/users/user/model"
)

type RegisterDTO struct {
	UserName     string `json:"user_name" validate:"required,min=3,max=50"`
	UserEmail    string `json:"user_email" validate:"required,email,max=100"`
	UserPassword string `json:"user_password" validate:"required,min=8,max=72"`
	UserCampusID string `json:"user_campus_id" validate:"required,uuid4"`
}

type LoginDTO struct {
	UserEmail    string `json:"user_email" validate:"required,email"`
	UserPassword string `json:"user_password" validate:"required"`
}

type GoogleLoginDTO struct {
	IDToken      string  `json:"id_token" validate:"required"`
	UserCampusID *string `json:"user_campus_id,omitempty" validate:"omitempty,uuid4"`
}

type UserResponse struct {
	UserID       uuid.UUID  `json:"user_id"`
	UserCampusID *uuid.UUID `json:"user_campus_id,omitempty"`
	UserName     string     `json:"user_name"`
	UserEmail    string     `json:"user_email"`
	UserRole     string     `json:"user_role"`
}

func ToUserResponse(u userModel.UserModel) UserResponse {
	return UserResponse{
		UserID:       u.UserID,
		UserCampusID: u.UserCampusID,
		UserName:     u.UserName,
		UserEmail:    u.UserEmail,
		UserRole:     u.UserRole,
	}
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}
