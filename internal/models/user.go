package models

import "time"

type User struct {
	BaseModel
	FullName     string   `gorm:"not null" json:"full_name"`
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"not null" json:"-"`
	Bio          string   `json:"bio"`
	Location     string   `json:"location"`
	Role         UserRole `gorm:"type:varchar(20);not null;default:'learner'" json:"role"`

	// Relations
	Skills        []Skill        `gorm:"foreignKey:UserID" json:"skills,omitempty"`
	RefreshTokens []RefreshToken `gorm:"foreignKey:UserID" json:"-"`
}

type RefreshToken struct {
	BaseModel
	UserID    string    `gorm:"not null;index" json:"user_id"`
	Token     string    `gorm:"not null;uniqueIndex" json:"token"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
}
