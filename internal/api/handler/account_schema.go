package handler

import (
	"encoding/base64"
	"time"

	"github.com/clockline/timetrack-api/internal/core/domain"
	"github.com/clockline/timetrack-api/internal/core/ports"
)

// --- Request / Response types ---

type registerRequest struct {
	FirstName       string `json:"first_name"       validate:"required,alpha"`
	LastName        string `json:"last_name"        validate:"required,alpha"`
	Email           string `json:"email"            validate:"required,email"`
	Password        string `json:"password"         validate:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type updateProfileRequest struct {
	FirstName             *string  `json:"first_name"              validate:"omitempty,alpha"`
	LastName              *string  `json:"last_name"               validate:"omitempty,alpha"`
	Email                 *string  `json:"email"                   validate:"omitempty,email"`
	PreferredWorkingHours *float64 `json:"preferred_working_hours" validate:"omitempty,gte=0,lte=24"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	Password        string `json:"password"         validate:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
}

// userResponse is the read view of a user. The password hash never leaves the
// service layer.
type userResponse struct {
	ID                    string    `json:"id"`
	FirstName             string    `json:"first_name"`
	LastName              string    `json:"last_name"`
	Email                 string    `json:"email"`
	Role                  string    `json:"role"`
	PreferredWorkingHours *float64  `json:"preferred_working_hours"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

type authResponse struct {
	Token string        `json:"token,omitempty"`
	User  *userResponse `json:"user,omitempty"`
}

// exportResponse carries a rendered PDF as a base64 data URI, matching what
// the web client feeds into a download link.
type exportResponse struct {
	File string `json:"file"`
	Name string `json:"name"`
}

func toUserResponse(u *domain.User) *userResponse {
	if u == nil {
		return nil
	}
	return &userResponse{
		ID:                    u.ID,
		FirstName:             u.FirstName,
		LastName:              u.LastName,
		Email:                 u.Email,
		Role:                  u.Role.String(),
		PreferredWorkingHours: u.PreferredWorkingHours,
		CreatedAt:             u.CreatedAt,
		UpdatedAt:             u.UpdatedAt,
	}
}

func toExportResponse(f *ports.ExportFile) exportResponse {
	return exportResponse{
		File: "data:application/pdf;base64," + base64.StdEncoding.EncodeToString(f.Data),
		Name: f.Name,
	}
}
