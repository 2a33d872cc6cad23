package models

import (
	"fmt"
	"time"

	"github.com/careernest/backend/internal/domain/identity"
)

// UserModel is the persistence model for users
type UserModel struct {
	AggregateModel
	Username       string `gorm:"type:varchar(50);not null;uniqueIndex"`
	Email          string `gorm:"type:varchar(254);not null;uniqueIndex"`
	PasswordHash   string `gorm:"type:varchar(100);not null"`
	FirstName      string `gorm:"type:varchar(100)"`
	LastName       string `gorm:"type:varchar(100)"`
	Bio            string `gorm:"type:text"`
	Skills         string `gorm:"type:jsonb;default:'[]'"`
	Interests      string `gorm:"type:jsonb;default:'[]'"`
	ProfilePicture string `gorm:"type:varchar(500)"`
	Status         string `gorm:"type:varchar(20);not null;default:'active';index"`
	LastLoginAt    *time.Time
	FailedAttempts int `gorm:"not null;default:0"`
	LockedUntil    *time.Time
}

// TableName returns the table name for UserModel
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts UserModel to domain User
func (m *UserModel) ToDomain() (*identity.User, error) {
	user := &identity.User{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Username:          m.Username,
		Email:             m.Email,
		PasswordHash:      m.PasswordHash,
		FirstName:         m.FirstName,
		LastName:          m.LastName,
		Bio:               m.Bio,
		Skills:            []string{},
		Interests:         []string{},
		ProfilePicture:    m.ProfilePicture,
		Status:            identity.UserStatus(m.Status),
		LastLoginAt:       m.LastLoginAt,
		FailedAttempts:    m.FailedAttempts,
		LockedUntil:       m.LockedUntil,
	}
	if err := unmarshalJSON(m.Skills, &user.Skills); err != nil {
		return nil, fmt.Errorf("user %s: %w", m.ID, err)
	}
	if err := unmarshalJSON(m.Interests, &user.Interests); err != nil {
		return nil, fmt.Errorf("user %s: %w", m.ID, err)
	}
	return user, nil
}

// UserModelFromDomain converts domain User to UserModel
func UserModelFromDomain(user *identity.User) *UserModel {
	model := &UserModel{
		Username:       user.Username,
		Email:          user.Email,
		PasswordHash:   user.PasswordHash,
		FirstName:      user.FirstName,
		LastName:       user.LastName,
		Bio:            user.Bio,
		Skills:         marshalJSON(user.Skills),
		Interests:      marshalJSON(user.Interests),
		ProfilePicture: user.ProfilePicture,
		Status:         string(user.Status),
		LastLoginAt:    user.LastLoginAt,
		FailedAttempts: user.FailedAttempts,
		LockedUntil:    user.LockedUntil,
	}
	model.FromDomainAggregateRoot(user.BaseAggregateRoot)
	return model
}
