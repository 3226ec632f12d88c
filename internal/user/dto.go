package user

import (
	"github.com/google/uuid"

	User "github.com/rahuljangu01/NEXUS/internal/user/model"
)

// Output DTOs
type ProfileDTO struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Department string    `json:"department,omitempty"`
	PhotoURL   string    `json:"profilePhotoUrl,omitempty"`
}

func ToProfileDTO(u *User.User) *ProfileDTO {
	return &ProfileDTO{
		ID:         u.ID,
		Name:       u.Name,
		Department: u.Department,
		PhotoURL:   u.PhotoURL,
	}
}
