package model

import (
	"time"

	"github.com/kunalkt5656/Taskflow/pkg/constants"
)

type User struct {
	ID              string         `gorm:"primaryKey;size:36" json:"id"`
	Name            string         `gorm:"not null" json:"name"`
	Email           string         `gorm:"uniqueIndex;size:191;not null" json:"email"`
	PasswordHash    string         `gorm:"size:191;not null" json:"-"`
	Role            constants.Role `gorm:"type:varchar(16);not null;default:member" json:"role"`
	ProfileImageURL string         `json:"profileImageUrl,omitempty"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
}
