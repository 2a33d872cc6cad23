package identity

import (
	"time"

	"github.com/google/uuid"

	"github.com/careernest/backend/internal/domain/identity"
)

// UserDTO is the user view returned by the identity services
type UserDTO struct {
	ID             uuid.UUID  `json:"id"`
	Username       string     `json:"username"`
	Email          string     `json:"email"`
	FirstName      string     `json:"first_name,omitempty"`
	LastName       string     `json:"last_name,omitempty"`
	Bio            string     `json:"bio,omitempty"`
	Skills         []string   `json:"skills"`
	Interests      []string   `json:"interests"`
	ProfilePicture string     `json:"profile_picture,omitempty"`
	Status         string     `json:"status"`
	LastLoginAt    *time.Time `json:"last_login_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// toUserDTO converts a domain User to its DTO. The password hash and
// lockout counters never leave the service layer.
func toUserDTO(user *identity.User) *UserDTO {
	skills := user.Skills
	if skills == nil {
		skills = []string{}
	}
	interests := user.Interests
	if interests == nil {
		interests = []string{}
	}
	return &UserDTO{
		ID:             user.ID,
		Username:       user.Username,
		Email:          user.Email,
		FirstName:      user.FirstName,
		LastName:       user.LastName,
		Bio:            user.Bio,
		Skills:         skills,
		Interests:      interests,
		ProfilePicture: user.ProfilePicture,
		Status:         string(user.Status),
		LastLoginAt:    user.LastLoginAt,
		CreatedAt:      user.CreatedAt,
		UpdatedAt:      user.UpdatedAt,
	}
}
